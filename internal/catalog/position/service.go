// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package position

import (
	"context"
	"log/slog"
	"time"

	"github.com/tsalin/api/internal/catalog/industry"
	"github.com/tsalin/api/internal/platform/validate"
	"github.com/tsalin/api/pkg/pointer"
	"github.com/tsalin/api/pkg/textnorm"
	"github.com/tsalin/api/pkg/uuid"
)

type Service struct {
	repo       Repository
	industries IndustryDirectory
	logger     *slog.Logger
}

func NewService(repo Repository, industries IndustryDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		industries: industries,
		logger:     logger,
	}
}

func (service *Service) List(ctx context.Context, filter Filter) ([]*Position, error) {
	if filter.IndustryID != "" {
		v := &validate.Validator{}
		if err := v.UUID("industry_id", filter.IndustryID).Err(); err != nil {
			return nil, err
		}
	}
	return service.repo.List(ctx, filter)
}

// ByIndustry lists a single industry's positions ordered by sort order.
func (service *Service) ByIndustry(ctx context.Context, industryID string) ([]*Position, error) {
	return service.List(ctx, Filter{IndustryID: industryID})
}

func (service *Service) Get(ctx context.Context, id string) (*Position, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetByID(ctx, id)
}

// Create validates the input, snapshots the parent industry's display
// fields and inserts the position. A missing sort order defaults to the
// end of the industry's current list.
func (service *Service) Create(ctx context.Context, input Input) (*Position, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	parent, err := service.industries.Get(ctx, input.IndustryID)
	if err != nil {
		return nil, err
	}

	sortOrder := 0
	if input.SortOrder != nil {
		sortOrder = *input.SortOrder
	} else {
		count, err := service.repo.CountByIndustry(ctx, input.IndustryID)
		if err != nil {
			return nil, err
		}
		sortOrder = count + 1
	}

	position := fromInput(input, parent, sortOrder)
	if err := service.repo.Insert(ctx, position); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "position_created",
		slog.String("position_id", position.ID),
		slog.String("industry_id", position.IndustryID),
		slog.String("name_en", position.NameEN),
	)
	return position, nil
}

// CreateMany validates and inserts a batch of positions. All entries must
// reference existing industries; the batch fails on the first bad entry.
func (service *Service) CreateMany(ctx context.Context, inputs []Input) ([]*Position, error) {
	if len(inputs) == 0 {
		return nil, validate.RequiredError("positions", "A non-empty array is required")
	}

	// Cache parent lookups: bulk imports repeat the same industry many times.
	parents := make(map[string]*industry.Industry)

	positions := make([]*Position, 0, len(inputs))
	for index, input := range inputs {
		if err := validateInput(input); err != nil {
			return nil, err
		}

		parent, found := parents[input.IndustryID]
		if !found {
			loaded, err := service.industries.Get(ctx, input.IndustryID)
			if err != nil {
				return nil, err
			}
			parent = loaded
			parents[input.IndustryID] = parent
		}

		sortOrder := index + 1
		if input.SortOrder != nil {
			sortOrder = *input.SortOrder
		}
		positions = append(positions, fromInput(input, parent, sortOrder))
	}

	if err := service.repo.InsertMany(ctx, positions); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "positions_bulk_inserted", slog.Int("count", len(positions)))
	return positions, nil
}

// Update applies the non-nil fields of input to an existing position.
// The industry snapshot fields are not updatable through this path.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Position, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}

	position, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.NameMN != nil {
		position.NameMN = *input.NameMN
	}
	if input.NameEN != nil {
		position.NameEN = *input.NameEN
	}
	if input.SortOrder != nil {
		position.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		position.IsActive = *input.IsActive
	}
	position.UpdatedAt = time.Now().UTC()

	if err := service.repo.Update(ctx, position); err != nil {
		return nil, err
	}
	return position, nil
}

func (service *Service) Delete(ctx context.Context, id string) error {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return err
	}
	return service.repo.Delete(ctx, id)
}

// FindOrCreate returns the industry's position whose English or Mongolian
// name equals the given title under case-insensitive comparison, creating
// it at the end of the industry's list when no match exists.
//
// Resume ingestion relies on this to avoid duplicating job titles that
// differ only in casing.
func (service *Service) FindOrCreate(ctx context.Context, industryID, title string) (*Position, error) {
	v := &validate.Validator{}
	v.UUID("industry_id", industryID).Required("title", title)
	if err := v.Err(); err != nil {
		return nil, err
	}

	existing, err := service.repo.List(ctx, Filter{
		IndustryID: industryID,
		IsActive:   pointer.To(true),
	})
	if err != nil {
		return nil, err
	}

	folded := textnorm.Fold(title)
	for _, candidate := range existing {
		if textnorm.Fold(candidate.NameEN) == folded || textnorm.Fold(candidate.NameMN) == folded {
			return candidate, nil
		}
	}

	return service.Create(ctx, Input{
		IndustryID: industryID,
		NameMN:     title,
		NameEN:     title,
		SortOrder:  pointer.To(len(existing) + 1),
	})
}

func validateInput(input Input) error {
	v := &validate.Validator{}
	v.UUID("industry_id", input.IndustryID).
		Required("name_mn", input.NameMN).
		Required("name_en", input.NameEN)
	if input.SortOrder != nil {
		v.Custom("sort_order", *input.SortOrder < 0, "Must be a non-negative integer")
	}
	return v.Err()
}

func fromInput(input Input, parent *industry.Industry, sortOrder int) *Position {
	now := time.Now().UTC()
	return &Position{
		ID:                uuid.New(),
		IndustryID:        parent.ID,
		IndustrySortOrder: parent.SortOrder,
		IndustryNameMN:    parent.NameMN,
		IndustryNameEN:    parent.NameEN,
		NameMN:            input.NameMN,
		NameEN:            input.NameEN,
		SortOrder:         sortOrder,
		IsActive:          pointer.Fallback(input.IsActive, true),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
