// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

// Package industry manages the top-level economic sector catalog.
//
// Industries are seed-time reference data: they are created by admins or bulk
// import, referenced by positions, majors and salary observations, and are
// never cascading-deleted (referential cleanup is the caller's responsibility).
package industry

import "time"

// SalaryBands holds an industry's configured salary breakdown in MNT.
// Every band is optional; absent bands marshal as null.
type SalaryBands struct {
	Average *float64 `json:"average"`
	Junior  *float64 `json:"junior"`
	Mid     *float64 `json:"mid"`
	Senior  *float64 `json:"senior"`
}

// Industry represents one economic sector.
//
// The JSON field names mirror the original API contract consumed by the
// mobile client.
type Industry struct {
	ID     string `json:"id"`
	NameMN string `json:"name_mn"`
	NameEN string `json:"name_en"`

	// Description is free text shown on the industry detail screen.
	Description *string `json:"description,omitempty"`

	// AverageSalary is a legacy human-readable salary description
	// (e.g. "1.5-2.5 сая"). Computations use the numeric fields below.
	AverageSalary string `json:"average_salary"`

	// SalaryBands and the min/max bounds are the numeric salary reference
	// for the industry; the distribution builder interpolates between the
	// bounds when both are set.
	SalaryBands  SalaryBands `json:"avg_salary_mnt"`
	MinSalaryMNT *float64    `json:"avg_salary_min_mnt"`
	MaxSalaryMNT *float64    `json:"avg_salary_max_mnt"`

	SortOrder int  `json:"sort_order"`
	IsActive  bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input carries the client-supplied fields for creating an industry.
type Input struct {
	NameMN        string      `json:"name_mn"`
	NameEN        string      `json:"name_en"`
	Description   *string     `json:"description"`
	AverageSalary string      `json:"average_salary"`
	SalaryBands   SalaryBands `json:"avg_salary_mnt"`
	MinSalaryMNT  *float64    `json:"avg_salary_min_mnt"`
	MaxSalaryMNT  *float64    `json:"avg_salary_max_mnt"`
	SortOrder     int         `json:"sort_order"`
	IsActive      *bool       `json:"is_active"`
}

// UpdateInput carries the optional fields for a partial industry update.
// Nil fields are left untouched.
type UpdateInput struct {
	NameMN        *string      `json:"name_mn"`
	NameEN        *string      `json:"name_en"`
	Description   *string      `json:"description"`
	AverageSalary *string      `json:"average_salary"`
	SalaryBands   *SalaryBands `json:"avg_salary_mnt"`
	MinSalaryMNT  *float64     `json:"avg_salary_min_mnt"`
	MaxSalaryMNT  *float64     `json:"avg_salary_max_mnt"`
	SortOrder     *int         `json:"sort_order"`
	IsActive      *bool        `json:"is_active"`
}

// Filter restricts industry listings. Zero value means no constraint.
type Filter struct {
	IsActive *bool
}
