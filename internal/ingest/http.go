// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package ingest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tsalin/api/internal/platform/constants"
	requestutil "github.com/tsalin/api/internal/platform/request"
	"github.com/tsalin/api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the ingestion endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/resume", handler.resume)

	return router
}

func (handler *Handler) resume(writer http.ResponseWriter, request *http.Request) {
	// Analysis outlives the server-wide write timeout, so the connection
	// deadline must be pushed out to match the route's own deadline.
	// Not every ResponseWriter supports this (test recorders don't).
	_ = http.NewResponseController(writer).SetWriteDeadline(time.Now().Add(constants.IngestRequestTimeout))

	var req Request
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.IngestResume(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusCreated, result)
}
