// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package market

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tsalin/api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the market overview endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/positions", handler.positionsPerIndustry)
	router.Get("/industries", handler.industryTallies)
	router.Get("/observed-positions", handler.observedPositions)

	return router
}

func (handler *Handler) positionsPerIndustry(writer http.ResponseWriter, request *http.Request) {
	overview, err := handler.service.PositionsPerIndustry(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, overview)
}

func (handler *Handler) industryTallies(writer http.ResponseWriter, request *http.Request) {
	tallies, err := handler.service.IndustryTallies(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tallies)
}

func (handler *Handler) observedPositions(writer http.ResponseWriter, request *http.Request) {
	observed, err := handler.service.ObservedPositions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, observed)
}
