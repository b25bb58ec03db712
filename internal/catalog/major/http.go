// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package major

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tsalin/api/internal/platform/request"
	"github.com/tsalin/api/internal/platform/respond"
	"github.com/tsalin/api/pkg/convert"
	"github.com/tsalin/api/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the major endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Post("/bulk", handler.bulkInsert)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/positions", handler.resolvePositions)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		IndustryID: requestutil.Query(request, "industry_id"),
	}
	if raw := requestutil.Query(request, "is_active"); raw != "" {
		filter.IsActive = pointer.To(convert.ToBool(raw))
	}

	majors, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, majors)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	major, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, major)
}

// resolvePositions maps a major onto the positions of an industry given
// via the industry_id query parameter.
func (handler *Handler) resolvePositions(writer http.ResponseWriter, request *http.Request) {
	positions, err := handler.service.ResolvePositions(
		request.Context(),
		requestutil.Query(request, "industry_id"),
		requestutil.ID(request, "id"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, positions)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	major, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, major)
}

func (handler *Handler) bulkInsert(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Majors []Input `json:"majors"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	majors, err := handler.service.CreateMany(request.Context(), body.Majors)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, majors)
}
