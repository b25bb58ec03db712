// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package salary

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tsalin/api/internal/platform/request"
	"github.com/tsalin/api/internal/platform/respond"
	"github.com/tsalin/api/pkg/convert"
	"github.com/tsalin/api/pkg/pagination"
	"github.com/tsalin/api/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the salary post endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Post("/bulk", handler.bulkInsert)

	router.Get("/stats/{industry_id}/{position_id}", handler.stats)
	router.Post("/estimate", handler.estimate)
	router.Post("/filter", handler.filter)
	router.Post("/summary", handler.summary)
	router.Get("/by-major", handler.byMajor)

	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		IndustryID: requestutil.Query(request, "industry_id"),
		PositionID: requestutil.Query(request, "position_id"),
	}
	if raw := requestutil.Query(request, "level"); raw != "" {
		filter.Level = pointer.To(convert.ToInt(raw))
	}
	if raw := requestutil.Query(request, "is_verified"); raw != "" {
		filter.IsVerified = pointer.To(convert.ToBool(raw))
	}
	if raw := requestutil.Query(request, "is_active"); raw != "" {
		filter.IsActive = pointer.To(convert.ToBool(raw))
	}
	if raw := requestutil.Query(request, "min_salary"); raw != "" {
		filter.MinSalary = pointer.To(convert.ToFloat64(raw))
	}
	if raw := requestutil.Query(request, "max_salary"); raw != "" {
		filter.MaxSalary = pointer.To(convert.ToFloat64(raw))
	}

	params := pagination.FromRequest(request)
	posts, meta, err := handler.service.List(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, posts, meta)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, post)
}

func (handler *Handler) bulkInsert(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Posts []Input `json:"posts"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	posts, err := handler.service.CreateMany(request.Context(), body.Posts)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, posts)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"message": "Salary post deleted successfully"})
}

func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(
		request.Context(),
		requestutil.ID(request, "industry_id"),
		requestutil.ID(request, "position_id"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, stats)
}

func (handler *Handler) estimate(writer http.ResponseWriter, request *http.Request) {
	var req EstimateRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	response, err := handler.service.Estimate(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, response)
}

func (handler *Handler) filter(writer http.ResponseWriter, request *http.Request) {
	var req FilterRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	response, err := handler.service.Filter(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, response)
}

func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	var req SummaryRequest
	if err := requestutil.DecodeJSON(request, &req); err != nil {
		respond.Error(writer, request, err)
		return
	}

	response, err := handler.service.Summary(request.Context(), req)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, response)
}

func (handler *Handler) byMajor(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	posts, meta, err := handler.service.ByMajor(
		request.Context(),
		requestutil.Query(request, "industry_id"),
		requestutil.Query(request, "major_id"),
		params,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, posts, meta)
}
