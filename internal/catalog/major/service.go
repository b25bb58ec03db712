// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package major

import (
	"context"
	"log/slog"
	"time"

	"github.com/tsalin/api/internal/catalog/position"
	"github.com/tsalin/api/internal/platform/validate"
	"github.com/tsalin/api/pkg/pointer"
	"github.com/tsalin/api/pkg/textnorm"
	"github.com/tsalin/api/pkg/uuid"
)

type Service struct {
	repo      Repository
	positions PositionFinder
	logger    *slog.Logger
}

func NewService(repo Repository, positions PositionFinder, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		positions: positions,
		logger:    logger,
	}
}

func (service *Service) List(ctx context.Context, filter Filter) ([]*Major, error) {
	if filter.IndustryID != "" {
		v := &validate.Validator{}
		if err := v.UUID("industry_id", filter.IndustryID).Err(); err != nil {
			return nil, err
		}
	}
	return service.repo.List(ctx, filter)
}

func (service *Service) Get(ctx context.Context, id string) (*Major, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetByID(ctx, id)
}

func (service *Service) Create(ctx context.Context, input Input) (*Major, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	major := fromInput(input)
	if err := service.repo.Insert(ctx, major); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "major_created",
		slog.String("major_id", major.ID),
		slog.String("name_en", major.NameEN),
	)
	return major, nil
}

func (service *Service) CreateMany(ctx context.Context, inputs []Input) ([]*Major, error) {
	if len(inputs) == 0 {
		return nil, validate.RequiredError("majors", "A non-empty array is required")
	}

	majors := make([]*Major, 0, len(inputs))
	for _, input := range inputs {
		if err := validateInput(input); err != nil {
			return nil, err
		}
		majors = append(majors, fromInput(input))
	}

	if err := service.repo.InsertMany(ctx, majors); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "majors_bulk_inserted", slog.Int("count", len(majors)))
	return majors, nil
}

// ResolvePositions returns the industry's active positions whose English
// or Mongolian name equals one of the major's names or synonyms.
//
// Matching is exact after case folding and Unicode normalization. An
// empty result is a valid answer: the major simply has no mapped
// positions yet.
func (service *Service) ResolvePositions(ctx context.Context, industryID, majorID string) ([]*position.Position, error) {
	v := &validate.Validator{}
	v.UUID("industry_id", industryID).UUID("major_id", majorID)
	if err := v.Err(); err != nil {
		return nil, err
	}

	major, err := service.repo.GetByID(ctx, majorID)
	if err != nil {
		return nil, err
	}

	candidates := append([]string{major.NameEN, major.NameMN}, major.Synonyms...)
	wanted := textnorm.FoldSet(candidates...)

	all, err := service.positions.ByIndustry(ctx, industryID)
	if err != nil {
		return nil, err
	}

	matched := make([]*position.Position, 0)
	for _, candidate := range all {
		if !candidate.IsActive {
			continue
		}
		if wanted[textnorm.Fold(candidate.NameEN)] || wanted[textnorm.Fold(candidate.NameMN)] {
			matched = append(matched, candidate)
		}
	}

	return matched, nil
}

func validateInput(input Input) error {
	v := &validate.Validator{}
	v.UUID("industry_id", input.IndustryID).
		Required("name_mn", input.NameMN).
		Required("name_en", input.NameEN)
	return v.Err()
}

func fromInput(input Input) *Major {
	now := time.Now().UTC()

	source := input.Source
	if source == "" {
		source = DefaultSource
	}

	synonyms := input.Synonyms
	if synonyms == nil {
		synonyms = []string{}
	}

	return &Major{
		ID:         uuid.New(),
		IndustryID: input.IndustryID,
		NameMN:     input.NameMN,
		NameEN:     input.NameEN,
		Synonyms:   synonyms,
		SortOrder:  pointer.Fallback(input.SortOrder, DefaultSortOrder),
		IsActive:   pointer.Fallback(input.IsActive, true),
		Source:     source,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
