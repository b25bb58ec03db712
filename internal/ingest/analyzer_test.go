// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtractions(t *testing.T) {
	raw := `[
		{"role_en": "Software Engineer", "role_mn": "Програм хангамжийн инженер", "salary": 3500000, "experience": 4, "industry": "Information Technology"},
		{"role_en": "DevOps Engineer", "role_mn": "", "salary": 4200000, "experience": 6, "industry": "Information Technology"}
	]`

	extractions, err := ParseExtractions(raw)
	require.NoError(t, err)
	require.Len(t, extractions, 2)
	assert.Equal(t, "Software Engineer", extractions[0].RoleEN)
	assert.Equal(t, 3_500_000.0, extractions[0].Salary)
	assert.Equal(t, 6, extractions[1].ExperienceYears)
}

func TestParseExtractionsStripsCodeFences(t *testing.T) {
	raw := "```json\n[{\"role_en\": \"Accountant\", \"role_mn\": \"Нягтлан\", \"salary\": 2000000, \"experience\": 3, \"industry\": \"Finance\"}]\n```"

	extractions, err := ParseExtractions(raw)
	require.NoError(t, err)
	require.Len(t, extractions, 1)
	assert.Equal(t, "Accountant", extractions[0].RoleEN)
}

func TestParseExtractionsDropsInvalidEntries(t *testing.T) {
	raw := `[
		{"role_en": "", "salary": 1000000, "experience": 2, "industry": "Finance"},
		{"role_en": "Teller", "salary": 0, "experience": 2, "industry": "Finance"},
		{"role_en": "Analyst", "salary": 1500000, "experience": -1, "industry": "Finance"},
		{"role_en": "Manager", "salary": 2500000, "experience": 5, "industry": ""},
		{"role_en": "Auditor", "salary": 3000000, "experience": 7, "industry": "Finance"}
	]`

	extractions, err := ParseExtractions(raw)
	require.NoError(t, err)
	require.Len(t, extractions, 1)
	assert.Equal(t, "Auditor", extractions[0].RoleEN)
}

func TestParseExtractionsCapsAtMax(t *testing.T) {
	raw := `[
		{"role_en": "A", "salary": 1, "experience": 1, "industry": "X"},
		{"role_en": "B", "salary": 1, "experience": 1, "industry": "X"},
		{"role_en": "C", "salary": 1, "experience": 1, "industry": "X"},
		{"role_en": "D", "salary": 1, "experience": 1, "industry": "X"},
		{"role_en": "E", "salary": 1, "experience": 1, "industry": "X"},
		{"role_en": "F", "salary": 1, "experience": 1, "industry": "X"}
	]`

	extractions, err := ParseExtractions(raw)
	require.NoError(t, err)
	assert.Len(t, extractions, MaxExtractions)
}

func TestParseExtractionsRejectsGarbage(t *testing.T) {
	_, err := ParseExtractions("I could not find any salary information.")
	assert.Error(t, err)
}
