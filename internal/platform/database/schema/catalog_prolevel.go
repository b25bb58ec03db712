// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package schema

// CatalogProLevelTable represents the 'catalog.pro_level' table
type CatalogProLevelTable struct {
	Table     string
	ID        string
	Level     string
	NameMN    string
	NameEN    string
	SortOrder string
	IsActive  string
	CreatedAt string
	UpdatedAt string
}

// CatalogProLevel is the schema definition for catalog.pro_level
var CatalogProLevel = CatalogProLevelTable{
	Table:     "catalog.pro_level",
	ID:        "id",
	Level:     "level",
	NameMN:    "name_mn",
	NameEN:    "name_en",
	SortOrder: "sort_order",
	IsActive:  "is_active",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}
