// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package major

import (
	"context"

	"github.com/tsalin/api/internal/catalog/position"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Major, error)
	GetByID(ctx context.Context, id string) (*Major, error)
	Insert(ctx context.Context, major *Major) error
	InsertMany(ctx context.Context, majors []*Major) error
}

// PositionFinder is the slice of the position catalog the resolver needs.
type PositionFinder interface {
	ByIndustry(ctx context.Context, industryID string) ([]*position.Position, error)
}
