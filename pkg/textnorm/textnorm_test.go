// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Software Engineer", "software engineer"},
		{"trims whitespace", "  Data Analyst \t", "data analyst"},
		{"cyrillic lowercases", "Программ Хангамжийн Инженер", "программ хангамжийн инженер"},
		{"composes combining marks", "é", "é"},
		{"blank collapses to empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestFoldIsExactMatch(t *testing.T) {
	// Folding is for casing and composition only, never fuzzy matching.
	assert.NotEqual(t, Fold("Software Engineer"), Fold("Software Engineers"))
	assert.NotEqual(t, Fold("Data Analyst"), Fold("DataAnalyst"))
}

func TestFoldSet(t *testing.T) {
	set := FoldSet("Software Engineer", "Программ хангамжийн инженер", "", "  ")

	assert.Len(t, set, 2)
	assert.True(t, set[Fold("SOFTWARE ENGINEER")])
	assert.True(t, set[Fold("программ хангамжийн инженер")])
	assert.False(t, set[Fold("Software Engineers")])
}
