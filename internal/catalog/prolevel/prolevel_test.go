// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package prolevel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromYears(t *testing.T) {
	cases := []struct {
		years int
		level int
	}{
		{-3, 1},
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 4},
		{4, 5},
		{5, 5},
		{6, 6},
		{7, 6},
		{8, 7},
		{9, 7},
		{10, 8},
		{11, 8},
		{12, 9},
		{14, 9},
		{15, 10},
		{50, 10},
	}

	for _, c := range cases {
		assert.Equal(t, c.level, FromYears(c.years), "years=%d", c.years)
	}
}

func TestFromYearsIsMonotonic(t *testing.T) {
	previous := FromYears(0)
	for years := 1; years <= 60; years++ {
		level := FromYears(years)
		assert.GreaterOrEqual(t, level, previous, "level must never drop as experience grows (years=%d)", years)
		assert.GreaterOrEqual(t, level, MinLevel)
		assert.LessOrEqual(t, level, MaxLevel)
		previous = level
	}
}
