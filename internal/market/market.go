// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

// Package market serves market-wide overview statistics: how many
// positions each industry carries and how much salary data backs them.
//
// The queries scan the whole observation set, so results are served from
// Redis snapshots that a background warmer refreshes periodically. Reads
// fall back to direct computation when the snapshot is cold.
package market

// PositionCount is one position's share of the market overview.
type PositionCount struct {
	PositionID       string `json:"position_id"`
	NameMN           string `json:"name_mn"`
	NameEN           string `json:"name_en"`
	ObservationCount int    `json:"observation_count"`
}

// IndustryPositions is one industry's active positions with their
// observation counts.
type IndustryPositions struct {
	IndustryID    string          `json:"industry_id"`
	NameMN        string          `json:"name_mn"`
	NameEN        string          `json:"name_en"`
	SortOrder     int             `json:"sort_order"`
	PositionCount int             `json:"position_count"`
	Positions     []PositionCount `json:"positions"`
}

// IndustryTally is one industry's active position count, including
// industries with no positions at all.
type IndustryTally struct {
	IndustryID    string `json:"industry_id"`
	NameMN        string `json:"name_mn"`
	NameEN        string `json:"name_en"`
	SortOrder     int    `json:"sort_order"`
	PositionCount int    `json:"position_count"`
}

// ObservedPositions is the number of distinct positions in one industry
// that have at least one active salary observation.
type ObservedPositions struct {
	IndustryID        string `json:"industry_id"`
	NameMN            string `json:"name_mn"`
	NameEN            string `json:"name_en"`
	SortOrder         int    `json:"sort_order"`
	DistinctPositions int    `json:"distinct_positions"`
}
