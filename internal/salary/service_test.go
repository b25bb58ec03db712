// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package salary

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsalin/api/internal/catalog/industry"
	"github.com/tsalin/api/internal/catalog/position"
	"github.com/tsalin/api/internal/catalog/prolevel"
	"github.com/tsalin/api/internal/platform/apperr"
	"github.com/tsalin/api/pkg/pagination"
	"github.com/tsalin/api/pkg/pointer"
	"github.com/tsalin/api/pkg/uuid"
)

type fakeRepository struct {
	posts   map[string]*Post
	byPair  []*Post
	active  []*WithNames
	inserts []*Post
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{posts: make(map[string]*Post)}
}

func (repo *fakeRepository) List(_ context.Context, _ Filter, _ pagination.Params) ([]*WithNames, int, error) {
	return []*WithNames{}, 0, nil
}

func (repo *fakeRepository) GetByID(_ context.Context, id string) (*Post, error) {
	post, found := repo.posts[id]
	if !found {
		return nil, apperr.NotFound("Salary post")
	}
	copied := *post
	return &copied, nil
}

func (repo *fakeRepository) Insert(_ context.Context, post *Post) error {
	repo.posts[post.ID] = post
	repo.inserts = append(repo.inserts, post)
	return nil
}

func (repo *fakeRepository) InsertMany(_ context.Context, posts []*Post) error {
	for _, post := range posts {
		repo.posts[post.ID] = post
	}
	repo.inserts = append(repo.inserts, posts...)
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, post *Post) error {
	repo.posts[post.ID] = post
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	delete(repo.posts, id)
	return nil
}

func (repo *fakeRepository) ListForPair(_ context.Context, _, _ string) ([]*Post, error) {
	return repo.byPair, nil
}

func (repo *fakeRepository) ListByPositions(_ context.Context, _ string, _ []string, _ pagination.Params) ([]*WithNames, int, error) {
	return repo.active, len(repo.active), nil
}

func (repo *fakeRepository) ListActiveByIndustry(_ context.Context, _ string) ([]*WithNames, error) {
	return repo.active, nil
}

// fakeLevels knows only the levels it is seeded with.
type fakeLevels struct {
	known map[int]*prolevel.ProLevel
}

func (levels *fakeLevels) ByNumber(_ context.Context, level int) (*prolevel.ProLevel, error) {
	entry, found := levels.known[level]
	if !found {
		return nil, apperr.NotFound("Professional level")
	}
	return entry, nil
}

type fakeIndustries struct {
	industries map[string]*industry.Industry
}

func (directory *fakeIndustries) Get(_ context.Context, id string) (*industry.Industry, error) {
	entry, found := directory.industries[id]
	if !found {
		return nil, apperr.NotFound("Industry")
	}
	return entry, nil
}

type fakeMajors struct {
	positions []*position.Position
}

func (resolver *fakeMajors) ResolvePositions(_ context.Context, _, _ string) ([]*position.Position, error) {
	return resolver.positions, nil
}

type noopCache struct{}

func (noopCache) GetStats(_ context.Context, _, _ string) (*StatsResponse, bool) { return nil, false }
func (noopCache) SetStats(_ context.Context, _, _ string, _ *StatsResponse)      {}
func (noopCache) InvalidateStats(_ context.Context, _, _ string)                 {}

func newTestService(repo *fakeRepository, levels *fakeLevels, industries *fakeIndustries) *Service {
	if levels == nil {
		levels = &fakeLevels{known: map[int]*prolevel.ProLevel{}}
	}
	if industries == nil {
		industries = &fakeIndustries{industries: map[string]*industry.Industry{}}
	}
	return NewService(repo, levels, industries, &fakeMajors{}, noopCache{}, slog.Default())
}

func validInput() Input {
	return Input{
		IndustryID:      uuid.New(),
		PositionID:      uuid.New(),
		Source:          SourceUserSubmission,
		Salary:          2_500_000,
		Level:           5,
		ExperienceYears: 4,
	}
}

func TestCreateEnrichesLevelNames(t *testing.T) {
	repo := newFakeRepository()
	levels := &fakeLevels{known: map[int]*prolevel.ProLevel{
		5: {Level: 5, NameMN: "Ахлах", NameEN: "Senior"},
	}}
	service := newTestService(repo, levels, nil)

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.NotNil(t, created.LevelNameMN)
	require.NotNil(t, created.LevelNameEN)
	assert.Equal(t, "Ахлах", *created.LevelNameMN)
	assert.Equal(t, "Senior", *created.LevelNameEN)
}

func TestCreateToleratesUnknownLevel(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, nil, nil)

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err, "a level with no catalog row is not an error")
	assert.Nil(t, created.LevelNameMN)
	assert.Nil(t, created.LevelNameEN)
}

func TestUpdateToUnknownLevelKeepsNames(t *testing.T) {
	repo := newFakeRepository()
	levels := &fakeLevels{known: map[int]*prolevel.ProLevel{
		5: {Level: 5, NameMN: "Ахлах", NameEN: "Senior"},
	}}
	service := newTestService(repo, levels, nil)

	created, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	// Level 9 has no catalog row; the stale names must survive.
	updated, err := service.Update(context.Background(), created.ID, UpdateInput{Level: pointer.To(9)})
	require.NoError(t, err)

	assert.Equal(t, 9, updated.Level)
	require.NotNil(t, updated.LevelNameMN)
	assert.Equal(t, "Ахлах", *updated.LevelNameMN)
	assert.Equal(t, "Senior", *updated.LevelNameEN)
}

func TestCreateRejectsBadInput(t *testing.T) {
	service := newTestService(newFakeRepository(), nil, nil)

	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"malformed industry id", func(i *Input) { i.IndustryID = "abc123" }},
		{"unknown source", func(i *Input) { i.Source = "scraped" }},
		{"negative salary", func(i *Input) { i.Salary = -1 }},
		{"level out of range", func(i *Input) { i.Level = 11 }},
		{"experience out of range", func(i *Input) { i.ExperienceYears = 51 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := validInput()
			c.mutate(&input)
			_, err := service.Create(context.Background(), input)
			assert.Error(t, err)
		})
	}
}

func TestEstimateGatesOnExperience(t *testing.T) {
	repo := newFakeRepository()
	repo.byPair = []*Post{post(1_000_000, 5), post(2_000_000, 5)}
	service := newTestService(repo, nil, nil)

	req := EstimateRequest{IndustryID: uuid.New(), PositionID: uuid.New()}

	response, err := service.Estimate(context.Background(), req)
	require.NoError(t, err)

	// Matching-level observations exist, but no experience was given.
	assert.Nil(t, response.ComputedLevel)
	assert.Nil(t, response.ForLevel)
	require.NotNil(t, response.Overall)
	assert.Equal(t, 2, response.Overall.Count)
}

func TestEstimateComputesLevel(t *testing.T) {
	repo := newFakeRepository()
	repo.byPair = []*Post{post(1_000_000, 5), post(3_000_000, 7)}
	service := newTestService(repo, nil, nil)

	req := EstimateRequest{IndustryID: uuid.New(), PositionID: uuid.New()}
	require.NoError(t, req.ExperienceYears.UnmarshalJSON([]byte(`"4"`)))

	response, err := service.Estimate(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, response.ComputedLevel)
	assert.Equal(t, 5, *response.ComputedLevel)
	require.NotNil(t, response.ForLevel)
	assert.Equal(t, 1_000_000.0, response.ForLevel.AvgSalary)
}

func TestSummaryUnknownIndustry(t *testing.T) {
	service := newTestService(newFakeRepository(), nil, nil)

	_, err := service.Summary(context.Background(), SummaryRequest{IndustryID: uuid.New()})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSummaryBuildsSeries(t *testing.T) {
	industryID := uuid.New()

	repo := newFakeRepository()
	repo.active = []*WithNames{
		{Post: Post{Salary: 1_100_000, Level: 3, IsActive: true}, PositionNameMN: "Инженер"},
		{Post: Post{Salary: 1_900_000, Level: 6, IsActive: true}, PositionNameMN: "Ахлах инженер"},
	}

	industries := &fakeIndustries{industries: map[string]*industry.Industry{
		industryID: {
			ID:           industryID,
			MinSalaryMNT: pointer.To(1_000_000.0),
			MaxSalaryMNT: pointer.To(1_400_000.0),
			SalaryBands:  industry.SalaryBands{Average: pointer.To(1_200_000.0)},
		},
	}}
	service := newTestService(repo, nil, industries)

	req := SummaryRequest{IndustryID: industryID}
	require.NoError(t, req.Salary.UnmarshalJSON([]byte(`1250000`)))
	require.NoError(t, req.ExperienceYear.UnmarshalJSON([]byte(`8`)))

	response, err := service.Summary(context.Background(), req)
	require.NoError(t, err)

	// 2 real + 3 synthetic + 1 user point.
	assert.Len(t, response.SalaryPosts, 6)
	assert.Equal(t, 2, response.TotalCount)

	require.NotNil(t, response.UserLevel)
	assert.Equal(t, 7, *response.UserLevel, "8 years classify as level 7")

	require.NotNil(t, response.ActualAvgSalary)
	assert.Equal(t, 1_500_000.0, *response.ActualAvgSalary, "synthetic and user points stay out of actual stats")
	assert.Equal(t, 1_100_000.0, *response.ActualMinSalary)
	assert.Equal(t, 1_900_000.0, *response.ActualMaxSalary)

	assert.Equal(t, 1_200_000.0, *response.IndustryAvgSalary)
}

func TestByMajorWithoutMatchesReturnsEmptyPage(t *testing.T) {
	service := newTestService(newFakeRepository(), nil, nil)

	posts, meta, err := service.ByMajor(context.Background(), uuid.New(), uuid.New(), pagination.Params{Page: 1, Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, 0, meta.Total)
}
