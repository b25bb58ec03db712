// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package prolevel

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tsalin/api/internal/platform/request"
	"github.com/tsalin/api/internal/platform/respond"
	"github.com/tsalin/api/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the professional level endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Post("/bulk", handler.bulkInsert)
	router.Get("/by-number/{level}", handler.byNumber)
	router.Get("/{id}", handler.get)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	onlyActive := false
	if raw := requestutil.Query(request, "is_active"); raw != "" {
		onlyActive = convert.ToBool(raw)
	}

	levels, err := handler.service.List(request.Context(), onlyActive)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, levels)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	level, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, level)
}

func (handler *Handler) byNumber(writer http.ResponseWriter, request *http.Request) {
	level, err := handler.service.ByNumber(request.Context(), convert.ToInt(requestutil.ID(request, "level")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, level)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	level, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, level)
}

func (handler *Handler) bulkInsert(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		ProLevels []Input `json:"pro_levels"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	levels, err := handler.service.CreateMany(request.Context(), body.ProLevels)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, levels)
}
