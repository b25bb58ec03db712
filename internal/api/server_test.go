// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsalin/api/internal/catalog/industry"
	"github.com/tsalin/api/internal/catalog/major"
	"github.com/tsalin/api/internal/catalog/position"
	"github.com/tsalin/api/internal/catalog/prolevel"
	"github.com/tsalin/api/internal/ingest"
	"github.com/tsalin/api/internal/market"
	"github.com/tsalin/api/internal/platform/config"
	"github.com/tsalin/api/internal/platform/constants"
	"github.com/tsalin/api/internal/salary"
)

// deadlineAnalyzer records how much of its request deadline is left when
// the analysis starts.
type deadlineAnalyzer struct {
	remaining   time.Duration
	sawDeadline bool
}

func (analyzer *deadlineAnalyzer) Analyze(ctx context.Context, _ string, _ []string) ([]ingest.Extraction, error) {
	if deadline, ok := ctx.Deadline(); ok {
		analyzer.remaining = time.Until(deadline)
		analyzer.sawDeadline = true
	}
	return nil, nil
}

type emptyIndustryCatalog struct{}

func (emptyIndustryCatalog) List(_ context.Context, _ industry.Filter) ([]*industry.Industry, error) {
	return nil, nil
}

func newTestHandlers(ingestHandler *ingest.Handler, liveness http.HandlerFunc) Handlers {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if liveness == nil {
		liveness = func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}
	}
	return Handlers{
		Liveness:  liveness,
		Readiness: liveness,
		Industry:  industry.NewHandler(industry.NewService(nil, log)),
		Position:  position.NewHandler(position.NewService(nil, nil, log)),
		ProLevel:  prolevel.NewHandler(prolevel.NewService(nil, log)),
		Major:     major.NewHandler(major.NewService(nil, nil, log)),
		Salary:    salary.NewHandler(salary.NewService(nil, nil, nil, nil, nil, log)),
		Market:    market.NewHandler(market.NewService(nil, nil, log)),
		Ingest:    ingestHandler,
	}
}

func newTestServer(t *testing.T, h Handlers) *Server {
	t.Helper()
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "development"}
	return NewServer(context.Background(), cfg, log, h)
}

func TestIngestRouteCarriesExtendedDeadline(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	analyzer := &deadlineAnalyzer{}
	ingestService := ingest.NewService(analyzer, emptyIndustryCatalog{}, nil, nil, log)

	server := newTestServer(t, newTestHandlers(ingest.NewHandler(ingestService), nil))

	body := strings.NewReader(`{"resumeText":"Ten years as a backend engineer in Ulaanbaatar."}`)
	request := httptest.NewRequest(http.MethodPost, "/api/v1/ingest/resume", body)
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)

	// No extractions survive, so the request itself is unprocessable; the
	// analyzer must still have run under the route's own, longer deadline.
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	require.True(t, analyzer.sawDeadline)
	assert.Greater(t, analyzer.remaining, constants.GlobalRequestTimeout)
	assert.LessOrEqual(t, analyzer.remaining, constants.IngestRequestTimeout)
}

func TestStandardRoutesKeepGlobalDeadline(t *testing.T) {
	var remaining time.Duration
	liveness := func(writer http.ResponseWriter, request *http.Request) {
		if deadline, ok := request.Context().Deadline(); ok {
			remaining = time.Until(deadline)
		}
		writer.WriteHeader(http.StatusOK)
	}

	server := newTestServer(t, newTestHandlers(nil, liveness))

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Greater(t, remaining, time.Duration(0))
	assert.LessOrEqual(t, remaining, constants.GlobalRequestTimeout)
}

func TestIngestRoutesAbsentWithoutAnalyzer(t *testing.T) {
	server := newTestServer(t, newTestHandlers(nil, nil))

	request := httptest.NewRequest(http.MethodPost, "/api/v1/ingest/resume", strings.NewReader(`{}`))
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
