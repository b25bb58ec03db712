// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package schema

// SalaryPostTable represents the 'salary.post' table
type SalaryPostTable struct {
	Table           string
	ID              string
	IndustryID      string
	PositionID      string
	Source          string
	Salary          string
	Level           string
	LevelNameMN     string
	LevelNameEN     string
	ExperienceYears string
	IsVerified      string
	IsActive        string
	CreatedAt       string
	UpdatedAt       string
}

// SalaryPost is the schema definition for salary.post
var SalaryPost = SalaryPostTable{
	Table:           "salary.post",
	ID:              "id",
	IndustryID:      "industry_id",
	PositionID:      "position_id",
	Source:          "source",
	Salary:          "salary",
	Level:           "level",
	LevelNameMN:     "level_name_mn",
	LevelNameEN:     "level_name_en",
	ExperienceYears: "experience_years",
	IsVerified:      "is_verified",
	IsActive:        "is_active",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}
