// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

// Package position manages the job title catalog within industries.
//
// Positions denormalize their parent industry's sort order and display
// names at write time, so that listing screens render without joins. The
// copies are refreshed only when a position is re-created or explicitly
// updated; industry renames do not fan out.
package position

import "time"

// Position represents one job title inside an industry.
type Position struct {
	ID         string `json:"id"`
	IndustryID string `json:"industry_id"`

	// IndustrySortOrder, IndustryNameMN and IndustryNameEN are copied from
	// the parent industry when the position is created.
	IndustrySortOrder int    `json:"industry_sort_order"`
	IndustryNameMN    string `json:"industry_name_mn"`
	IndustryNameEN    string `json:"industry_name_en"`

	NameMN    string `json:"name_mn"`
	NameEN    string `json:"name_en"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input carries the client-supplied fields for creating a position.
type Input struct {
	IndustryID string `json:"industry_id"`
	NameMN     string `json:"name_mn"`
	NameEN     string `json:"name_en"`
	SortOrder  *int   `json:"sort_order"`
	IsActive   *bool  `json:"is_active"`
}

// UpdateInput carries the optional fields for a partial position update.
type UpdateInput struct {
	NameMN    *string `json:"name_mn"`
	NameEN    *string `json:"name_en"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// Filter restricts position listings. Zero value means no constraint.
type Filter struct {
	IndustryID string
	IsActive   *bool
}
