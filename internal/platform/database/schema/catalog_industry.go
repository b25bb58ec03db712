// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package schema

// CatalogIndustryTable represents the 'catalog.industry' table
type CatalogIndustryTable struct {
	Table            string
	ID               string
	NameMN           string
	NameEN           string
	Description      string
	AverageSalary    string
	AvgSalaryAverage string
	AvgSalaryJunior  string
	AvgSalaryMid     string
	AvgSalarySenior  string
	AvgSalaryMin     string
	AvgSalaryMax     string
	SortOrder        string
	IsActive         string
	CreatedAt        string
	UpdatedAt        string
}

// CatalogIndustry is the schema definition for catalog.industry
var CatalogIndustry = CatalogIndustryTable{
	Table:            "catalog.industry",
	ID:               "id",
	NameMN:           "name_mn",
	NameEN:           "name_en",
	Description:      "description",
	AverageSalary:    "average_salary",
	AvgSalaryAverage: "avg_salary_average",
	AvgSalaryJunior:  "avg_salary_junior",
	AvgSalaryMid:     "avg_salary_mid",
	AvgSalarySenior:  "avg_salary_senior",
	AvgSalaryMin:     "avg_salary_min",
	AvgSalaryMax:     "avg_salary_max",
	SortOrder:        "sort_order",
	IsActive:         "is_active",
	CreatedAt:        "created_at",
	UpdatedAt:        "updated_at",
}
