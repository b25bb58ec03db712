// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package industry

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Industry, error)
	GetByID(ctx context.Context, id string) (*Industry, error)
	GetByNameEN(ctx context.Context, nameEN string) (*Industry, error)
	Insert(ctx context.Context, industry *Industry) error
	InsertMany(ctx context.Context, industries []*Industry) error
	Update(ctx context.Context, industry *Industry) error
	Delete(ctx context.Context, id string) error
}
