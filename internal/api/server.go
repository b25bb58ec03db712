// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tsalin/api/internal/catalog/industry"
	"github.com/tsalin/api/internal/catalog/major"
	"github.com/tsalin/api/internal/catalog/position"
	"github.com/tsalin/api/internal/catalog/prolevel"
	"github.com/tsalin/api/internal/ingest"
	"github.com/tsalin/api/internal/market"
	"github.com/tsalin/api/internal/platform/config"
	"github.com/tsalin/api/internal/platform/constants"
	"github.com/tsalin/api/internal/platform/middleware"
	"github.com/tsalin/api/internal/salary"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Industry manages the economic sector catalog.
	Industry *industry.Handler

	// Position manages job titles within industries.
	Position *position.Handler

	// ProLevel manages the professional level ladder.
	ProLevel *prolevel.Handler

	// Major manages academic majors and their position mapping.
	Major *major.Handler

	// Salary handles observations, aggregation and distribution queries.
	Salary *salary.Handler

	// Market serves market-wide overview statistics.
	Market *market.Handler

	// Ingest handles resume ingestion. Nil when no analyzer is configured;
	// the routes are then not registered.
	Ingest *ingest.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution. Request deadlines
	// are applied per route group below, not globally.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg, cfg.ExtraOrigins))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Group(func(infra chi.Router) {
		infra.Use(chimw.Timeout(constants.GlobalRequestTimeout))
		infra.Get("/health", h.Liveness)
		infra.Get("/ready", h.Readiness)
	})

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Group(func(std chi.Router) {
			std.Use(chimw.Timeout(constants.GlobalRequestTimeout))
			std.Mount("/industries", h.Industry.Routes())
			std.Mount("/positions", h.Position.Routes())
			std.Mount("/pro-levels", h.ProLevel.Routes())
			std.Mount("/majors", h.Major.Routes())
			std.Mount("/salary-posts", h.Salary.Routes())
			std.Mount("/market", h.Market.Routes())
		})

		// Resume ingestion blocks on the language model, so it gets a
		// longer deadline than the rest of the API.
		if h.Ingest != nil {
			api.Group(func(slow chi.Router) {
				slow.Use(chimw.Timeout(constants.IngestRequestTimeout))
				slow.Mount("/ingest", h.Ingest.Routes())
			})
		}
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
