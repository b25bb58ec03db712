// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(salary float64, level int) *Post {
	return &Post{Salary: salary, Level: level, IsActive: true}
}

func TestOverall(t *testing.T) {
	aggregate := Overall([]*Post{post(1000, 3), post(2000, 3), post(3000, 3)})

	require.NotNil(t, aggregate)
	assert.Equal(t, 2000.0, aggregate.AvgSalary)
	assert.Equal(t, 1000.0, aggregate.MinSalary)
	assert.Equal(t, 3000.0, aggregate.MaxSalary)
	assert.Equal(t, 3, aggregate.Count)
}

func TestOverallEmpty(t *testing.T) {
	assert.Nil(t, Overall(nil))
	assert.Nil(t, Overall([]*Post{}))
}

func TestByLevel(t *testing.T) {
	aggregates := ByLevel([]*Post{
		post(3_000_000, 5),
		post(1_000_000, 2),
		post(2_000_000, 5),
		post(1_500_000, 2),
	})

	require.Len(t, aggregates, 2)

	// Ascending by level regardless of input order.
	assert.Equal(t, 2, aggregates[0].Level)
	assert.Equal(t, 1_250_000.0, aggregates[0].AvgSalary)
	assert.Equal(t, 2, aggregates[0].Count)

	assert.Equal(t, 5, aggregates[1].Level)
	assert.Equal(t, 2_500_000.0, aggregates[1].AvgSalary)
	assert.Equal(t, 3_000_000.0, aggregates[1].MaxSalary)
}

func TestByLevelEmpty(t *testing.T) {
	aggregates := ByLevel(nil)
	require.NotNil(t, aggregates, "empty input must encode as [], not null")
	assert.Empty(t, aggregates)
}

func TestForLevel(t *testing.T) {
	posts := []*Post{post(1_000_000, 2), post(2_000_000, 5)}

	aggregate := ForLevel(posts, 5)
	require.NotNil(t, aggregate)
	assert.Equal(t, 2_000_000.0, aggregate.AvgSalary)
	assert.Equal(t, 1, aggregate.Count)

	assert.Nil(t, ForLevel(posts, 9), "no observations at the level means null, not zeroes")
}
