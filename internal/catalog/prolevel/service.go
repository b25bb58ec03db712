// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package prolevel

import (
	"context"
	"log/slog"
	"time"

	"github.com/tsalin/api/internal/platform/validate"
	"github.com/tsalin/api/pkg/pointer"
	"github.com/tsalin/api/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns the ladder ordered by level number.
func (service *Service) List(ctx context.Context, onlyActive bool) ([]*ProLevel, error) {
	return service.repo.List(ctx, onlyActive)
}

func (service *Service) Get(ctx context.Context, id string) (*ProLevel, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetByID(ctx, id)
}

// ByNumber returns the level entry for a ladder number (1-10).
func (service *Service) ByNumber(ctx context.Context, level int) (*ProLevel, error) {
	v := &validate.Validator{}
	if err := v.Range("level", level, MinLevel, MaxLevel).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetByNumber(ctx, level)
}

func (service *Service) Create(ctx context.Context, input Input) (*ProLevel, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	level := fromInput(input)
	if err := service.repo.Insert(ctx, level); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "pro_level_created",
		slog.Int("level", level.Level),
		slog.String("name_en", level.NameEN),
	)
	return level, nil
}

// CreateMany inserts a batch of levels, typically the full ladder at seed time.
func (service *Service) CreateMany(ctx context.Context, inputs []Input) ([]*ProLevel, error) {
	if len(inputs) == 0 {
		return nil, validate.RequiredError("pro_levels", "A non-empty array is required")
	}

	levels := make([]*ProLevel, 0, len(inputs))
	for _, input := range inputs {
		if err := validateInput(input); err != nil {
			return nil, err
		}
		levels = append(levels, fromInput(input))
	}

	if err := service.repo.InsertMany(ctx, levels); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "pro_levels_bulk_inserted", slog.Int("count", len(levels)))
	return levels, nil
}

func validateInput(input Input) error {
	v := &validate.Validator{}
	v.Range("level", input.Level, MinLevel, MaxLevel).
		Required("name_mn", input.NameMN).
		Required("name_en", input.NameEN)
	return v.Err()
}

func fromInput(input Input) *ProLevel {
	now := time.Now().UTC()
	return &ProLevel{
		ID:        uuid.New(),
		Level:     input.Level,
		NameMN:    input.NameMN,
		NameEN:    input.NameEN,
		SortOrder: input.SortOrder,
		IsActive:  pointer.Fallback(input.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
