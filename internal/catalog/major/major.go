// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

// Package major manages the academic major catalog and its mapping onto
// job positions.
//
// A major carries a synonym list ("software engineering" also answers to
// "програм хангамж"). Resolution compares the major's names and synonyms
// against position names under case-insensitive equality — no substring
// or fuzzy matching, so "Software Engineers" never matches "Software
// Engineer".
package major

import "time"

// DefaultSortOrder places majors without an explicit order at the end.
const DefaultSortOrder = 999

// DefaultSource marks catalog entries that came from the seed data set.
const DefaultSource = "seed"

// Major represents one academic major within an industry.
type Major struct {
	ID         string    `json:"id"`
	IndustryID string    `json:"industry_id"`
	NameMN     string    `json:"name_mn"`
	NameEN     string    `json:"name_en"`
	Synonyms   []string  `json:"synonyms"`
	SortOrder  int       `json:"sort_order"`
	IsActive   bool      `json:"is_active"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Input carries the client-supplied fields for creating a major.
type Input struct {
	IndustryID string   `json:"industry_id"`
	NameMN     string   `json:"name_mn"`
	NameEN     string   `json:"name_en"`
	Synonyms   []string `json:"synonyms"`
	SortOrder  *int     `json:"sort_order"`
	IsActive   *bool    `json:"is_active"`
	Source     string   `json:"source"`
}

// Filter restricts major listings. Zero value means no constraint.
type Filter struct {
	IndustryID string
	IsActive   *bool
}
