// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package industry

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

func (service *Service) List(ctx context.Context, filter Filter) ([]*Industry, error) {
	return service.repo.List(ctx, filter)
}

func (service *Service) Get(ctx context.Context, id string) (*Industry, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetByID(ctx, id)
}

// Create validates the input and inserts a new industry.
func (service *Service) Create(ctx context.Context, input Input) (*Industry, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	industry := fromInput(input)
	if err := service.repo.Insert(ctx, industry); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "industry_created",
		slog.String("industry_id", industry.ID),
		slog.String("name_en", industry.NameEN),
	)
	return industry, nil
}

// CreateMany validates and inserts a batch of industries in one statement.
func (service *Service) CreateMany(ctx context.Context, inputs []Input) ([]*Industry, error) {
	if len(inputs) == 0 {
		return nil, validate.RequiredError("industries", "A non-empty array is required")
	}

	industries := make([]*Industry, 0, len(inputs))
	for _, input := range inputs {
		if err := validateInput(input); err != nil {
			return nil, err
		}
		industries = append(industries, fromInput(input))
	}

	if err := service.repo.InsertMany(ctx, industries); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "industries_bulk_inserted", slog.Int("count", len(industries)))
	return industries, nil
}

// Update applies the non-nil fields of input to an existing industry.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Industry, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}

	industry, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.NameMN != nil {
		industry.NameMN = *input.NameMN
	}
	if input.NameEN != nil {
		industry.NameEN = *input.NameEN
	}
	if input.Description != nil {
		industry.Description = input.Description
	}
	if input.AverageSalary != nil {
		industry.AverageSalary = *input.AverageSalary
	}
	if input.SalaryBands != nil {
		industry.SalaryBands = *input.SalaryBands
	}
	if input.MinSalaryMNT != nil {
		industry.MinSalaryMNT = input.MinSalaryMNT
	}
	if input.MaxSalaryMNT != nil {
		industry.MaxSalaryMNT = input.MaxSalaryMNT
	}
	if input.SortOrder != nil {
		industry.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		industry.IsActive = *input.IsActive
	}
	industry.UpdatedAt = time.Now().UTC()

	if err := service.repo.Update(ctx, industry); err != nil {
		return nil, err
	}
	return industry, nil
}

// Delete removes an industry. Positions, majors and salary observations
// referencing it are left in place — referential cleanup is the caller's job.
func (service *Service) Delete(ctx context.Context, id string) error {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return err
	}
	return service.repo.Delete(ctx, id)
}

func validateInput(input Input) error {
	v := &validate.Validator{}
	v.Required("name_mn", input.NameMN).
		Required("name_en", input.NameEN).
		Required("average_salary", input.AverageSalary).
		Custom("sort_order", input.SortOrder < 0, "Must be a non-negative integer")
	return v.Err()
}

func fromInput(input Input) *Industry {
	now := time.Now().UTC()
	return &Industry{
		ID:            uuid.New(),
		NameMN:        input.NameMN,
		NameEN:        input.NameEN,
		Description:   input.Description,
		AverageSalary: input.AverageSalary,
		SalaryBands:   input.SalaryBands,
		MinSalaryMNT:  input.MinSalaryMNT,
		MaxSalaryMNT:  input.MaxSalaryMNT,
		SortOrder:     input.SortOrder,
		IsActive:      pointer.Fallback(input.IsActive, true),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
