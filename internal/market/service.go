// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package market

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	cache  SnapshotCache
	logger *slog.Logger
}

func NewService(repo Repository, cache SnapshotCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// PositionsPerIndustry serves the per-industry position breakdown from
// the snapshot, recomputing on a cold cache.
func (service *Service) PositionsPerIndustry(ctx context.Context) ([]*IndustryPositions, error) {
	var cached []*IndustryPositions
	if service.cache.Get(ctx, keyPositions, &cached) {
		return cached, nil
	}

	overview, err := service.repo.PositionsPerIndustry(ctx)
	if err != nil {
		return nil, err
	}
	service.cache.Set(ctx, keyPositions, overview)
	return overview, nil
}

// IndustryTallies serves the full industry list with position counts,
// zeroes included.
func (service *Service) IndustryTallies(ctx context.Context) ([]*IndustryTally, error) {
	var cached []*IndustryTally
	if service.cache.Get(ctx, keyTallies, &cached) {
		return cached, nil
	}

	tallies, err := service.repo.IndustryTallies(ctx)
	if err != nil {
		return nil, err
	}
	service.cache.Set(ctx, keyTallies, tallies)
	return tallies, nil
}

// ObservedPositions serves the distinct observed-position counts.
func (service *Service) ObservedPositions(ctx context.Context) ([]*ObservedPositions, error) {
	var cached []*ObservedPositions
	if service.cache.Get(ctx, keyObserved, &cached) {
		return cached, nil
	}

	observed, err := service.repo.ObservedPositions(ctx)
	if err != nil {
		return nil, err
	}
	service.cache.Set(ctx, keyObserved, observed)
	return observed, nil
}

// Warm recomputes all three snapshots and refreshes the cache. Errors
// are logged, not returned: a failed refresh leaves the previous
// snapshot serving until the next run.
func (service *Service) Warm(ctx context.Context) {
	if overview, err := service.repo.PositionsPerIndustry(ctx); err == nil {
		service.cache.Set(ctx, keyPositions, overview)
	} else {
		service.logger.ErrorContext(ctx, "market_warm_positions_failed", slog.String("error", err.Error()))
	}

	if tallies, err := service.repo.IndustryTallies(ctx); err == nil {
		service.cache.Set(ctx, keyTallies, tallies)
	} else {
		service.logger.ErrorContext(ctx, "market_warm_tallies_failed", slog.String("error", err.Error()))
	}

	if observed, err := service.repo.ObservedPositions(ctx); err == nil {
		service.cache.Set(ctx, keyObserved, observed)
	} else {
		service.logger.ErrorContext(ctx, "market_warm_observed_failed", slog.String("error", err.Error()))
	}

	service.logger.InfoContext(ctx, "market_snapshots_refreshed")
}
