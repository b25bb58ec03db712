// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package position

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

// Routes returns a [chi.Router] configured with the position endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Post("/bulk", handler.bulkInsert)
	router.Get("/by-industry/{industry_id}", handler.byIndustry)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		IndustryID: requestutil.Query(request, "industry_id"),
	}
	if raw := requestutil.Query(request, "is_active"); raw != "" {
		filter.IsActive = pointer.To(convert.ToBool(raw))
	}

	positions, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, positions)
}

func (handler *Handler) byIndustry(writer http.ResponseWriter, request *http.Request) {
	positions, err := handler.service.ByIndustry(request.Context(), requestutil.ID(request, "industry_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, positions)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	position, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, position)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	position, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, position)
}

func (handler *Handler) bulkInsert(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Positions []Input `json:"positions"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	positions, err := handler.service.CreateMany(request.Context(), body.Positions)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, positions)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	position, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, position)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Position deleted successfully"})
}
