// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

// Command api is the entry point for the Tsalin HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire domain services and HTTP handlers.
//  7. Start the market snapshot warmer.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tsalin/api/internal/api"
	"github.com/tsalin/api/internal/catalog/industry"
	"github.com/tsalin/api/internal/catalog/major"
	"github.com/tsalin/api/internal/catalog/position"
	"github.com/tsalin/api/internal/catalog/prolevel"
	"github.com/tsalin/api/internal/ingest"
	"github.com/tsalin/api/internal/market"
	"github.com/tsalin/api/internal/platform/config"
	"github.com/tsalin/api/internal/platform/constants"
	"github.com/tsalin/api/internal/platform/migration"
	pgstore "github.com/tsalin/api/internal/platform/postgres"
	redisstore "github.com/tsalin/api/internal/platform/redis"
	"github.com/tsalin/api/internal/salary"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Tsalin] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Long-lived context for background workers, cancelled on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	industryService := industry.NewService(industry.NewPostgresRepository(pool), log)
	positionService := position.NewService(position.NewPostgresRepository(pool), industryService, log)
	proLevelService := prolevel.NewService(prolevel.NewPostgresRepository(pool), log)
	majorService := major.NewService(major.NewPostgresRepository(pool), positionService, log)

	salaryService := salary.NewService(
		salary.NewPostgresRepository(pool),
		proLevelService,
		industryService,
		majorService,
		salary.NewRedisStatsCache(rdb, log),
		log,
	)

	marketService := market.NewService(
		market.NewPostgresRepository(pool),
		market.NewRedisSnapshotCache(rdb, log),
		log,
	)

	var ingestHandler *ingest.Handler
	if cfg.IngestionEnabled() {
		analyzer, err := ingest.NewAnthropicAnalyzer(cfg.AnthropicAPIKey, cfg.AnalyzerModel)
		must(log, err, "initialize resume analyzer")

		ingestService := ingest.NewService(analyzer, industryService, positionService, salaryService, log)
		ingestHandler = ingest.NewHandler(ingestService)
		log.Info("resume_ingestion_enabled", slog.String("model", cfg.AnalyzerModel))
	} else {
		log.Info("resume_ingestion_disabled")
	}

	// ── 8. Market Snapshot Warmer ─────────────────────────────────────────
	warmer := market.NewWarmer(marketService, cfg.MarketRefreshMinutes, log)
	must(log, warmer.Start(appCtx), "start market warmer")
	defer warmer.Stop()

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Industry:  industry.NewHandler(industryService),
		Position:  position.NewHandler(positionService),
		ProLevel:  prolevel.NewHandler(proLevelService),
		Major:     major.NewHandler(majorService),
		Salary:    salary.NewHandler(salaryService),
		Market:    market.NewHandler(marketService),
		Ingest:    ingestHandler,
	}

	server := api.NewServer(appCtx, cfg, log, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	appCancel()

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
