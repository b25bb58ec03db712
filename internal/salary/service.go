// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package salary

import (
	"context"
	"log/slog"
	"time"

	"github.com/tsalin/api/internal/catalog/prolevel"
	"github.com/tsalin/api/internal/platform/apperr"
	"github.com/tsalin/api/internal/platform/validate"
	"github.com/tsalin/api/internal/catalog/position"
	"github.com/tsalin/api/pkg/pagination"
	"github.com/tsalin/api/pkg/pointer"
	"github.com/tsalin/api/pkg/slice"
	"github.com/tsalin/api/pkg/uuid"
)

type Service struct {
	repo       Repository
	levels     LevelNames
	industries IndustryDirectory
	majors     MajorResolver
	cache      StatsCache
	logger     *slog.Logger
}

func NewService(
	repo Repository,
	levels LevelNames,
	industries IndustryDirectory,
	majors MajorResolver,
	cache StatsCache,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:       repo,
		levels:     levels,
		industries: industries,
		majors:     majors,
		cache:      cache,
		logger:     logger,
	}
}

func (service *Service) List(ctx context.Context, filter Filter, params pagination.Params) ([]*WithNames, pagination.Meta, error) {
	v := &validate.Validator{}
	if filter.IndustryID != "" {
		v.UUID("industry_id", filter.IndustryID)
	}
	if filter.PositionID != "" {
		v.UUID("position_id", filter.PositionID)
	}
	if err := v.Err(); err != nil {
		return nil, pagination.Meta{}, err
	}

	posts, total, err := service.repo.List(ctx, filter, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return posts, pagination.NewMeta(params, len(posts), total), nil
}

func (service *Service) Get(ctx context.Context, id string) (*Post, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}
	return service.repo.GetByID(ctx, id)
}

// Create validates the input, enriches the denormalized level names and
// inserts the observation.
func (service *Service) Create(ctx context.Context, input Input) (*Post, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	post := fromInput(input)
	if err := service.enrichLevelNames(ctx, post); err != nil {
		return nil, err
	}

	if err := service.repo.Insert(ctx, post); err != nil {
		return nil, err
	}

	service.cache.InvalidateStats(ctx, post.IndustryID, post.PositionID)
	service.logger.InfoContext(ctx, "salary_post_created",
		slog.String("post_id", post.ID),
		slog.String("source", post.Source),
		slog.Int("level", post.Level),
	)
	return post, nil
}

// CreateMany validates, enriches and inserts a batch of observations in
// one round trip. The batch fails atomically on the first invalid entry.
func (service *Service) CreateMany(ctx context.Context, inputs []Input) ([]*Post, error) {
	if len(inputs) == 0 {
		return nil, validate.RequiredError("posts", "A non-empty array is required")
	}

	// One catalog lookup per distinct level, not per row.
	names := make(map[int]*prolevel.ProLevel)

	posts := make([]*Post, 0, len(inputs))
	for _, input := range inputs {
		if err := validateInput(input); err != nil {
			return nil, err
		}

		post := fromInput(input)
		entry, seen := names[post.Level]
		if !seen {
			loaded, err := service.lookupLevel(ctx, post.Level)
			if err != nil {
				return nil, err
			}
			entry = loaded
			names[post.Level] = entry
		}
		applyLevelNames(post, entry)
		posts = append(posts, post)
	}

	if err := service.repo.InsertMany(ctx, posts); err != nil {
		return nil, err
	}

	for pair := range affectedPairs(posts) {
		service.cache.InvalidateStats(ctx, pair.industryID, pair.positionID)
	}
	service.logger.InfoContext(ctx, "salary_posts_bulk_inserted", slog.Int("count", len(posts)))
	return posts, nil
}

// Update applies the non-nil fields of input. When the level is set, the
// denormalized level names are re-enriched from the catalog; a level with
// no catalog row leaves the previous names in place.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Post, error) {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return nil, err
	}
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	post, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Source != nil {
		post.Source = *input.Source
	}
	if input.Salary != nil {
		post.Salary = *input.Salary
	}
	if input.ExperienceYears != nil {
		post.ExperienceYears = *input.ExperienceYears
	}
	if input.IsVerified != nil {
		post.IsVerified = *input.IsVerified
	}
	if input.IsActive != nil {
		post.IsActive = *input.IsActive
	}
	if input.Level != nil {
		post.Level = *input.Level
		if err := service.enrichLevelNames(ctx, post); err != nil {
			return nil, err
		}
	}
	post.UpdatedAt = time.Now().UTC()

	if err := service.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	service.cache.InvalidateStats(ctx, post.IndustryID, post.PositionID)
	return post, nil
}

func (service *Service) Delete(ctx context.Context, id string) error {
	v := &validate.Validator{}
	if err := v.UUID("id", id).Err(); err != nil {
		return err
	}

	// Load first: the cache key needs the observation's pair.
	post, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.cache.InvalidateStats(ctx, post.IndustryID, post.PositionID)
	return nil
}

// Stats aggregates the active observations of one (industry, position)
// pair, overall and per level. Results are cached briefly; writes to the
// pair invalidate the entry.
func (service *Service) Stats(ctx context.Context, industryID, positionID string) (*StatsResponse, error) {
	v := &validate.Validator{}
	v.UUID("industry_id", industryID).UUID("position_id", positionID)
	if err := v.Err(); err != nil {
		return nil, err
	}

	if cached, found := service.cache.GetStats(ctx, industryID, positionID); found {
		return cached, nil
	}

	posts, err := service.repo.ListForPair(ctx, industryID, positionID)
	if err != nil {
		return nil, err
	}

	stats := &StatsResponse{
		Success: true,
		Overall: Overall(posts),
		ByLevel: ByLevel(posts),
	}

	service.cache.SetStats(ctx, industryID, positionID, stats)
	return stats, nil
}

// Estimate extends Stats with a classifier-derived level aggregate. The
// experience input is optional: absent, null and blank all leave
// ComputedLevel and ForLevel null even when matching observations exist.
func (service *Service) Estimate(ctx context.Context, req EstimateRequest) (*EstimateResponse, error) {
	v := &validate.Validator{}
	v.UUID("industry_id", req.IndustryID).UUID("position_id", req.PositionID)
	if err := v.Err(); err != nil {
		return nil, err
	}

	posts, err := service.repo.ListForPair(ctx, req.IndustryID, req.PositionID)
	if err != nil {
		return nil, err
	}

	response := &EstimateResponse{
		Success: true,
		Overall: Overall(posts),
		ByLevel: ByLevel(posts),
	}

	if req.ExperienceYears.Present {
		computed := prolevel.FromYears(req.ExperienceYears.Value)
		response.ComputedLevel = &computed
		response.ForLevel = ForLevel(posts, computed)
	}

	return response, nil
}

// Filter lists observations of a pair with optional exact-match level and
// experience predicates. The experience value filters the stored field
// directly; unlike Estimate it is never run through the classifier.
func (service *Service) Filter(ctx context.Context, req FilterRequest) (*FilterResponse, error) {
	v := &validate.Validator{}
	v.UUID("industry_id", req.IndustryID).UUID("position_id", req.PositionID)
	if err := v.Err(); err != nil {
		return nil, err
	}

	filter := Filter{
		IndustryID: req.IndustryID,
		PositionID: req.PositionID,
		IsActive:   pointer.To(true),
	}
	if req.Level.Present {
		filter.Level = &req.Level.Value
	}
	if req.ExperienceYear.Present {
		filter.ExperienceYears = &req.ExperienceYear.Value
	}

	posts, _, err := service.repo.List(ctx, filter, pagination.Params{
		Page:  pagination.DefaultPage,
		Limit: pagination.DefaultLimit,
	})
	if err != nil {
		return nil, err
	}

	return &FilterResponse{
		Success: true,
		Count:   len(posts),
		Data:    posts,
	}, nil
}

// Summary builds the chartable salary series for one industry: real
// observations, synthetic interpolation points across the industry's
// configured bounds, and optionally the querying user's own figure.
func (service *Service) Summary(ctx context.Context, req SummaryRequest) (*SummaryResponse, error) {
	v := &validate.Validator{}
	if err := v.UUID("industry_id", req.IndustryID).Err(); err != nil {
		return nil, err
	}

	ind, err := service.industries.Get(ctx, req.IndustryID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("Industry")
		}
		return nil, err
	}

	observations, err := service.repo.ListActiveByIndustry(ctx, req.IndustryID)
	if err != nil {
		return nil, err
	}

	real := slice.Map(observations, observationPoint)

	var synthetic []SeriesPoint
	if ind.MinSalaryMNT != nil && ind.MaxSalaryMNT != nil {
		synthetic = SyntheticPoints(*ind.MinSalaryMNT, *ind.MaxSalaryMNT)
	}

	userLevel := resolveUserLevel(req)

	var user *SeriesPoint
	if req.Salary.Present {
		var experience *int
		if req.ExperienceYear.Present {
			experience = &req.ExperienceYear.Value
		}
		point := UserPoint(req.Salary.Value, userLevel, experience)
		user = &point
	}

	series := BuildSeries(real, synthetic, user)
	actualMin, actualMax, actualAvg := ActualStats(series)

	return &SummaryResponse{
		Success:           true,
		UserLevel:         userLevel,
		TotalCount:        len(real),
		IndustryMinSalary: ind.MinSalaryMNT,
		IndustryMaxSalary: ind.MaxSalaryMNT,
		IndustryAvgSalary: ind.SalaryBands.Average,
		IndustrySalaryRanges: SalaryRanges{
			Average: ind.SalaryBands.Average,
			Junior:  ind.SalaryBands.Junior,
			Mid:     ind.SalaryBands.Mid,
			Senior:  ind.SalaryBands.Senior,
		},
		ActualMinSalary: actualMin,
		ActualMaxSalary: actualMax,
		ActualAvgSalary: actualAvg,
		SalaryPosts:     series,
	}, nil
}

// ByMajor lists observations whose position matches the major's names or
// synonyms within an industry. A major with no matching positions yields
// an empty page, not an error.
func (service *Service) ByMajor(ctx context.Context, industryID, majorID string, params pagination.Params) ([]*WithNames, pagination.Meta, error) {
	positions, err := service.majors.ResolvePositions(ctx, industryID, majorID)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if len(positions) == 0 {
		return []*WithNames{}, pagination.NewMeta(params, 0, 0), nil
	}

	positionIDs := slice.Map(positions, func(p *position.Position) string { return p.ID })

	posts, total, err := service.repo.ListByPositions(ctx, industryID, positionIDs, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return posts, pagination.NewMeta(params, len(posts), total), nil
}

// enrichLevelNames copies the display names of the observation's level
// from the catalog. A level number with no catalog row is tolerated: the
// existing names stay untouched.
func (service *Service) enrichLevelNames(ctx context.Context, post *Post) error {
	entry, err := service.lookupLevel(ctx, post.Level)
	if err != nil {
		return err
	}
	applyLevelNames(post, entry)
	return nil
}

// lookupLevel fetches a catalog level, mapping "not found" to nil.
func (service *Service) lookupLevel(ctx context.Context, level int) (*prolevel.ProLevel, error) {
	entry, err := service.levels.ByNumber(ctx, level)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

func applyLevelNames(post *Post, entry *prolevel.ProLevel) {
	if entry == nil {
		return
	}
	post.LevelNameMN = pointer.To(entry.NameMN)
	post.LevelNameEN = pointer.To(entry.NameEN)
}

// resolveUserLevel derives the querying user's level: the explicit level
// wins, then the classifier over experience, then null.
func resolveUserLevel(req SummaryRequest) *int {
	if req.ProLevel.Present {
		return pointer.To(req.ProLevel.Value)
	}
	if req.ExperienceYear.Present {
		return pointer.To(prolevel.FromYears(req.ExperienceYear.Value))
	}
	return nil
}

// observationPoint projects a stored observation into a series point,
// preferring the Mongolian position name for display.
func observationPoint(observation *WithNames) SeriesPoint {
	name := observation.PositionNameMN
	if name == "" {
		name = observation.PositionNameEN
	}
	return SeriesPoint{
		Salary:          observation.Salary,
		Level:           pointer.To(observation.Level),
		ExperienceYears: pointer.To(observation.ExperienceYears),
		PositionName:    name,
		IsVerified:      observation.IsVerified,
	}
}

type pair struct {
	industryID string
	positionID string
}

func affectedPairs(posts []*Post) map[pair]struct{} {
	pairs := make(map[pair]struct{}, len(posts))
	for _, post := range posts {
		pairs[pair{post.IndustryID, post.PositionID}] = struct{}{}
	}
	return pairs
}

func validateInput(input Input) error {
	v := &validate.Validator{}
	v.UUID("industry_id", input.IndustryID).
		UUID("position_id", input.PositionID).
		OneOf("source", input.Source, Sources...).
		NonNegative("salary", input.Salary).
		Range("level", input.Level, prolevel.MinLevel, prolevel.MaxLevel).
		Range("experience_years", input.ExperienceYears, 0, MaxExperienceYears)
	return v.Err()
}

func validateUpdate(input UpdateInput) error {
	v := &validate.Validator{}
	if input.Source != nil {
		v.OneOf("source", *input.Source, Sources...)
	}
	if input.Salary != nil {
		v.NonNegative("salary", *input.Salary)
	}
	if input.Level != nil {
		v.Range("level", *input.Level, prolevel.MinLevel, prolevel.MaxLevel)
	}
	if input.ExperienceYears != nil {
		v.Range("experience_years", *input.ExperienceYears, 0, MaxExperienceYears)
	}
	return v.Err()
}

func fromInput(input Input) *Post {
	now := time.Now().UTC()
	return &Post{
		ID:              uuid.New(),
		IndustryID:      input.IndustryID,
		PositionID:      input.PositionID,
		Source:          input.Source,
		Salary:          input.Salary,
		Level:           input.Level,
		ExperienceYears: input.ExperienceYears,
		IsVerified:      pointer.Fallback(input.IsVerified, false),
		IsActive:        pointer.Fallback(input.IsActive, true),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
