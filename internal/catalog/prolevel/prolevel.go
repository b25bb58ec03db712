// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

// Package prolevel manages the ten-step professional level ladder.
//
// Levels run from 1 (entry) to 10 (principal) and map salary observations
// to a career stage. The ladder doubles as a classifier: [FromYears]
// converts years of experience into a level without touching the database.
package prolevel

import "time"

// MinLevel and MaxLevel bound the professional ladder.
const (
	MinLevel = 1
	MaxLevel = 10
)

// ProLevel represents one rung of the professional ladder.
type ProLevel struct {
	ID        string    `json:"id"`
	Level     int       `json:"level"`
	NameMN    string    `json:"name_mn"`
	NameEN    string    `json:"name_en"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input carries the client-supplied fields for creating a level.
type Input struct {
	Level     int    `json:"level"`
	NameMN    string `json:"name_mn"`
	NameEN    string `json:"name_en"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// FromYears classifies years of professional experience into a level.
//
// The mapping widens as seniority grows: the first steps are one year
// each, then two, then three, and everything from 15 years up lands on
// the top level. Negative input classifies as level 1.
func FromYears(years int) int {
	switch {
	case years <= 0:
		return 1
	case years == 1:
		return 2
	case years == 2:
		return 3
	case years == 3:
		return 4
	case years <= 5:
		return 5
	case years <= 7:
		return 6
	case years <= 9:
		return 7
	case years <= 11:
		return 8
	case years <= 14:
		return 9
	default:
		return 10
	}
}
