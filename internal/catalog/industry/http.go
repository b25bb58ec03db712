// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package industry

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

// Routes returns a [chi.Router] configured with the industry endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Post("/bulk", handler.bulkInsert)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{}
	if raw := requestutil.Query(request, "is_active"); raw != "" {
		filter.IsActive = pointer.To(convert.ToBool(raw))
	}

	industries, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, industries)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	industry, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, industry)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	industry, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, industry)
}

func (handler *Handler) bulkInsert(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Industries []Input `json:"industries"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	industries, err := handler.service.CreateMany(request.Context(), body.Industries)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, industries)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	industry, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, industry)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Industry deleted successfully"})
}
