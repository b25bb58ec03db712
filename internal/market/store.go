// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package market

import "context"

type Repository interface {
	// PositionsPerIndustry returns every industry that has active
	// positions, each with per-position observation counts, ordered by
	// position count descending then industry sort order ascending.
	PositionsPerIndustry(ctx context.Context) ([]*IndustryPositions, error)

	// IndustryTallies returns every industry with its active position
	// count, zeroes included, same ordering.
	IndustryTallies(ctx context.Context) ([]*IndustryTally, error)

	// ObservedPositions returns per industry the count of distinct
	// positions backed by at least one active observation.
	ObservedPositions(ctx context.Context) ([]*ObservedPositions, error)
}

// SnapshotCache stores precomputed overview payloads. Failures degrade
// to direct computation.
type SnapshotCache interface {
	Get(ctx context.Context, key string, target any) bool
	Set(ctx context.Context, key string, value any)
}
