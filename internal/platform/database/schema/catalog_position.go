// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package schema

// CatalogPositionTable represents the 'catalog.position' table
type CatalogPositionTable struct {
	Table             string
	ID                string
	IndustryID        string
	IndustrySortOrder string
	IndustryNameMN    string
	IndustryNameEN    string
	NameMN            string
	NameEN            string
	SortOrder         string
	IsActive          string
	CreatedAt         string
	UpdatedAt         string
}

// CatalogPosition is the schema definition for catalog.position
var CatalogPosition = CatalogPositionTable{
	Table:             "catalog.position",
	ID:                "id",
	IndustryID:        "industry_id",
	IndustrySortOrder: "industry_sort_order",
	IndustryNameMN:    "industry_name_mn",
	IndustryNameEN:    "industry_name_en",
	NameMN:            "name_mn",
	NameEN:            "name_en",
	SortOrder:         "sort_order",
	IsActive:          "is_active",
	CreatedAt:         "created_at",
	UpdatedAt:         "updated_at",
}
