// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package market

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Warmer refreshes the market snapshots on a fixed interval so that
// overview reads rarely hit the database.
type Warmer struct {
	cron    *cron.Cron
	service *Service
	spec    string
	logger  *slog.Logger
}

// NewWarmer creates a warmer that fires every intervalMinutes minutes.
func NewWarmer(service *Service, intervalMinutes int, logger *slog.Logger) *Warmer {
	return &Warmer{
		cron:    cron.New(),
		service: service,
		spec:    fmt.Sprintf("@every %dm", intervalMinutes),
		logger:  logger,
	}
}

// Start registers the refresh job and starts the scheduler. One refresh
// runs immediately so the snapshots are hot before the first tick.
func (warmer *Warmer) Start(ctx context.Context) error {
	_, err := warmer.cron.AddFunc(warmer.spec, func() {
		warmer.service.Warm(ctx)
	})
	if err != nil {
		return fmt.Errorf("market warmer: %w", err)
	}

	warmer.cron.Start()
	warmer.logger.Info("market warmer started", slog.String("spec", warmer.spec))

	go warmer.service.Warm(ctx)
	return nil
}

// Stop shuts the scheduler down. Running refreshes finish on their own.
func (warmer *Warmer) Stop() {
	warmer.cron.Stop()
	warmer.logger.Info("market warmer stopped")
}
