// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package salary

import (
	"context"

	"github.com/tsalin/api/internal/catalog/industry"
	"github.com/tsalin/api/internal/catalog/position"
	"github.com/tsalin/api/internal/catalog/prolevel"
	"github.com/tsalin/api/pkg/pagination"
)

type Repository interface {
	// List returns one page of observations matching the filter, newest
	// first, with display names resolved, plus the total match count.
	List(ctx context.Context, filter Filter, params pagination.Params) ([]*WithNames, int, error)

	GetByID(ctx context.Context, id string) (*Post, error)
	Insert(ctx context.Context, post *Post) error
	InsertMany(ctx context.Context, posts []*Post) error
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id string) error

	// ListForPair returns all active observations of one
	// (industry, position) pair for in-process aggregation.
	ListForPair(ctx context.Context, industryID, positionID string) ([]*Post, error)

	// ListByPositions returns one page of active observations belonging
	// to any of the given positions, newest first, plus the total count.
	ListByPositions(ctx context.Context, industryID string, positionIDs []string, params pagination.Params) ([]*WithNames, int, error)

	// ListActiveByIndustry returns all active observations of one
	// industry ordered ascending by salary, with display names resolved.
	ListActiveByIndustry(ctx context.Context, industryID string) ([]*WithNames, error)
}

// LevelNames is the slice of the professional level catalog needed for
// write-time level-name enrichment.
type LevelNames interface {
	ByNumber(ctx context.Context, level int) (*prolevel.ProLevel, error)
}

// IndustryDirectory is the slice of the industry catalog the summary
// builder needs.
type IndustryDirectory interface {
	Get(ctx context.Context, id string) (*industry.Industry, error)
}

// MajorResolver maps a major onto the matching positions of an industry.
type MajorResolver interface {
	ResolvePositions(ctx context.Context, industryID, majorID string) ([]*position.Position, error)
}

// StatsCache caches per-pair aggregation responses. Cache failures must
// degrade to direct computation; the cache is never a correctness
// dependency.
type StatsCache interface {
	GetStats(ctx context.Context, industryID, positionID string) (*StatsResponse, bool)
	SetStats(ctx context.Context, industryID, positionID string, stats *StatsResponse)
	InvalidateStats(ctx context.Context, industryID, positionID string)
}
