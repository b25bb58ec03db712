// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequestClamping(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"defaults", "", DefaultPage, DefaultLimit},
		{"explicit values", "page=3&limit=25", 3, 25},
		{"zero page falls back", "page=0", DefaultPage, DefaultLimit},
		{"negative page falls back", "page=-2", DefaultPage, DefaultLimit},
		{"zero limit falls back", "limit=0", DefaultPage, DefaultLimit},
		{"limit above max falls back", "limit=10000", DefaultPage, DefaultLimit},
		{"limit at max kept", "limit=500", DefaultPage, MaxLimit},
		{"garbage falls back", "page=abc&limit=xyz", DefaultPage, DefaultLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/salary-posts?"+tt.query, nil)
			params := FromRequest(r)
			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
		})
	}
}

func TestParamsOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 100}.Offset())
	assert.Equal(t, 100, Params{Page: 2, Limit: 100}.Offset())
	assert.Equal(t, 50, Params{Page: 3, Limit: 25}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{Page: 2, Limit: 100}, 100, 250)

	assert.Equal(t, 100, meta.Count)
	assert.Equal(t, 250, meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.Pages)
}

func TestNewMetaEmptyResult(t *testing.T) {
	meta := NewMeta(Params{Page: 1, Limit: 100}, 0, 0)

	assert.Equal(t, 0, meta.Count)
	assert.Equal(t, 0, meta.Pages)
}
