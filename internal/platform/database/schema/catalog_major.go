// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package schema

// CatalogMajorTable represents the 'catalog.major' table
type CatalogMajorTable struct {
	Table      string
	ID         string
	IndustryID string
	NameMN     string
	NameEN     string
	Synonyms   string
	SortOrder  string
	IsActive   string
	Source     string
	CreatedAt  string
	UpdatedAt  string
}

// CatalogMajor is the schema definition for catalog.major
var CatalogMajor = CatalogMajorTable{
	Table:      "catalog.major",
	ID:         "id",
	IndustryID: "industry_id",
	NameMN:     "name_mn",
	NameEN:     "name_en",
	Synonyms:   "synonyms",
	SortOrder:  "sort_order",
	IsActive:   "is_active",
	Source:     "source",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}
