// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package position

import (
	"context"

	"github.com/tsalin/api/internal/catalog/industry"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Position, error)
	CountByIndustry(ctx context.Context, industryID string) (int, error)
	GetByID(ctx context.Context, id string) (*Position, error)
	Insert(ctx context.Context, position *Position) error
	InsertMany(ctx context.Context, positions []*Position) error
	Update(ctx context.Context, position *Position) error
	Delete(ctx context.Context, id string) error
}

// IndustryDirectory is the slice of the industry catalog the position
// service needs for denormalization.
type IndustryDirectory interface {
	Get(ctx context.Context, id string) (*industry.Industry, error)
}
