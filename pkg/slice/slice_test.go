// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package slice

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestMapNilPassthrough(t *testing.T) {
	assert.Nil(t, Map(nil, strconv.Itoa))
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)
}

func TestFilterNilPassthrough(t *testing.T) {
	assert.Nil(t, Filter(nil, func(int) bool { return true }))
}
