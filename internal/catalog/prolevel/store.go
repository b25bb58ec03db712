// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package prolevel

import "context"

type Repository interface {
	List(ctx context.Context, onlyActive bool) ([]*ProLevel, error)
	GetByID(ctx context.Context, id string) (*ProLevel, error)
	GetByNumber(ctx context.Context, level int) (*ProLevel, error)
	Insert(ctx context.Context, level *ProLevel) error
	InsertMany(ctx context.Context, levels []*ProLevel) error
}
