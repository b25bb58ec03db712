// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

// Package salary manages crowd-submitted salary observations and the
// aggregation, estimation and distribution queries computed over them.
//
// An observation ties a salary figure to an industry, a position and a
// professional level. Observations reference the catalog by identifier
// only; there are no foreign keys, so referential integrity is by
// convention. Level display names are denormalized into each row at
// write time and never re-synced afterwards.
package salary

import (
	"time"

	"github.com/tsalin/api/pkg/convert"
)

// Observation sources.
const (
	SourceUserSubmission = "user_submission"
	SourceCVUpload       = "cv_upload"
	SourceLambda         = "lambda"
	SourceThirdParty     = "third_party"
	SourceOther          = "other"
)

// Sources lists every accepted observation source tag.
var Sources = []string{
	SourceUserSubmission, SourceCVUpload, SourceLambda, SourceThirdParty, SourceOther,
}

// MaxExperienceYears bounds the accepted years-of-experience input.
const MaxExperienceYears = 50

// Post represents one salary observation.
type Post struct {
	ID         string `json:"id"`
	IndustryID string `json:"industry_id"`
	PositionID string `json:"position_id"`
	Source     string `json:"source"`

	Salary float64 `json:"salary"`
	Level  int     `json:"level"`

	// LevelNameMN and LevelNameEN are copied from the professional level
	// catalog when the observation is written. They go stale if the
	// catalog is renamed later; readers accept that.
	LevelNameMN *string `json:"level_name_mn"`
	LevelNameEN *string `json:"level_name_en"`

	ExperienceYears int  `json:"experience_years"`
	IsVerified      bool `json:"is_verified"`
	IsActive        bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WithNames is an observation annotated with catalog display names,
// resolved by a read-time join for list responses.
type WithNames struct {
	Post

	IndustryNameMN string `json:"industry_name_mn"`
	IndustryNameEN string `json:"industry_name_en"`
	PositionNameMN string `json:"position_name_mn"`
	PositionNameEN string `json:"position_name_en"`
}

// Input carries the client-supplied fields for creating an observation.
type Input struct {
	IndustryID      string  `json:"industry_id"`
	PositionID      string  `json:"position_id"`
	Source          string  `json:"source"`
	Salary          float64 `json:"salary"`
	Level           int     `json:"level"`
	ExperienceYears int     `json:"experience_years"`
	IsVerified      *bool   `json:"is_verified"`
	IsActive        *bool   `json:"is_active"`
}

// UpdateInput carries the optional fields for a partial observation update.
// Nil fields are left untouched. Setting Level triggers re-enrichment of
// the denormalized level names.
type UpdateInput struct {
	Source          *string  `json:"source"`
	Salary          *float64 `json:"salary"`
	Level           *int     `json:"level"`
	ExperienceYears *int     `json:"experience_years"`
	IsVerified      *bool    `json:"is_verified"`
	IsActive        *bool    `json:"is_active"`
}

// Filter restricts observation listings. Every field defaults to
// "no constraint"; the store builds its predicate from the set fields.
type Filter struct {
	IndustryID      string
	PositionID      string
	Level           *int
	ExperienceYears *int
	IsVerified      *bool
	IsActive        *bool
	MinSalary       *float64
	MaxSalary       *float64
}

// Aggregate holds the summary statistics of one group of observations.
type Aggregate struct {
	AvgSalary float64 `json:"avgSalary"`
	MinSalary float64 `json:"minSalary"`
	MaxSalary float64 `json:"maxSalary"`
	Count     int     `json:"count"`
}

// LevelAggregate is an [Aggregate] keyed by professional level.
type LevelAggregate struct {
	Level     int     `json:"level"`
	AvgSalary float64 `json:"avgSalary"`
	MinSalary float64 `json:"minSalary"`
	MaxSalary float64 `json:"maxSalary"`
	Count     int     `json:"count"`
}

// SeriesPoint is one entry of the chartable salary series returned by
// Summary. Exactly one of the three kinds applies: a real observation,
// a synthetic interpolation point, or the querying user's own figure.
type SeriesPoint struct {
	Salary          float64 `json:"salary"`
	Level           *int    `json:"level"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
	PositionName    string  `json:"position_name,omitempty"`
	IsVerified      bool    `json:"is_verified"`
	IsSynthetic     bool    `json:"is_synthetic"`
	IsUser          bool    `json:"is_user"`
}

// EstimateRequest is the body of the estimate operation. ExperienceYears
// accepts a number or a numeric string; blank and null mean "not provided".
type EstimateRequest struct {
	IndustryID      string              `json:"industry_id"`
	PositionID      string              `json:"position_id"`
	ExperienceYears convert.OptionalInt `json:"experience_years"`
}

// FilterRequest is the body of the filter operation. Level and
// ExperienceYear are exact stored-field matches; the experience value is
// deliberately not run through the level classifier.
type FilterRequest struct {
	IndustryID     string              `json:"industry_id"`
	PositionID     string              `json:"position_id"`
	Level          convert.OptionalInt `json:"level"`
	ExperienceYear convert.OptionalInt `json:"experience_year"`
}

// SummaryRequest is the body of the summary operation.
type SummaryRequest struct {
	IndustryID     string                `json:"industry_id"`
	Salary         convert.OptionalFloat `json:"salary"`
	ExperienceYear convert.OptionalInt   `json:"experience_year"`
	ProLevel       convert.OptionalInt   `json:"pro_level"`
}

// StatsResponse is the payload of the stats operation. Overall is null
// when no observation matches; ByLevel is always an array, possibly empty.
type StatsResponse struct {
	Success bool             `json:"success"`
	Overall *Aggregate       `json:"overall"`
	ByLevel []LevelAggregate `json:"byLevel"`
}

// EstimateResponse is the payload of the estimate operation.
// ComputedLevel and ForLevel are null when no experience was provided.
type EstimateResponse struct {
	Success       bool             `json:"success"`
	ComputedLevel *int             `json:"computedLevel"`
	Overall       *Aggregate       `json:"overall"`
	ForLevel      *Aggregate       `json:"forLevel"`
	ByLevel       []LevelAggregate `json:"byLevel"`
}

// FilterResponse is the payload of the filter operation.
type FilterResponse struct {
	Success bool         `json:"success"`
	Count   int          `json:"count"`
	Data    []*WithNames `json:"data"`
}

// SummaryResponse is the payload of the summary operation. Field names
// mirror the original chart endpoint consumed by the mobile client.
type SummaryResponse struct {
	Success bool `json:"success"`

	// UserLevel is the querying user's professional level, explicit or
	// classified from experience; null when neither was provided.
	UserLevel *int `json:"userLevel"`

	// TotalCount counts real observations only.
	TotalCount int `json:"totalCount"`

	IndustryMinSalary    *float64     `json:"industryMinSalary"`
	IndustryMaxSalary    *float64     `json:"industryMaxSalary"`
	IndustryAvgSalary    *float64     `json:"industryAvgSalary"`
	IndustrySalaryRanges SalaryRanges `json:"industrySalaryRanges"`

	// Actual statistics are computed over real observations only and
	// rounded to the nearest whole amount; null when no real points exist.
	ActualMinSalary *float64 `json:"actualMinSalary"`
	ActualMaxSalary *float64 `json:"actualMaxSalary"`
	ActualAvgSalary *float64 `json:"actualAvgSalary"`

	SalaryPosts []SeriesPoint `json:"salaryPosts"`
}

// SalaryRanges echoes the industry's configured salary bands.
type SalaryRanges struct {
	Average *float64 `json:"average"`
	Junior  *float64 `json:"junior"`
	Mid     *float64 `json:"mid"`
	Senior  *float64 `json:"senior"`
}
