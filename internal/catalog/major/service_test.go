// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package major

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsalin/api/internal/catalog/position"
	"github.com/tsalin/api/pkg/uuid"
)

type fakeRepository struct {
	majors map[string]*Major
}

func (repo *fakeRepository) List(_ context.Context, _ Filter) ([]*Major, error) {
	out := make([]*Major, 0, len(repo.majors))
	for _, m := range repo.majors {
		out = append(out, m)
	}
	return out, nil
}

func (repo *fakeRepository) GetByID(_ context.Context, id string) (*Major, error) {
	return repo.majors[id], nil
}

func (repo *fakeRepository) Insert(_ context.Context, major *Major) error {
	repo.majors[major.ID] = major
	return nil
}

func (repo *fakeRepository) InsertMany(_ context.Context, majors []*Major) error {
	for _, m := range majors {
		repo.majors[m.ID] = m
	}
	return nil
}

type fakePositionFinder struct {
	positions []*position.Position
}

func (finder *fakePositionFinder) ByIndustry(_ context.Context, _ string) ([]*position.Position, error) {
	return finder.positions, nil
}

func newPosition(nameEN, nameMN string, active bool) *position.Position {
	return &position.Position{
		ID:        uuid.New(),
		NameEN:    nameEN,
		NameMN:    nameMN,
		IsActive:  active,
		CreatedAt: time.Now(),
	}
}

func TestResolvePositions(t *testing.T) {
	industryID := uuid.New()

	softwareEngineer := newPosition("Software Engineer", "Програм хангамжийн инженер", true)
	dataAnalyst := newPosition("Data Analyst", "Дата аналист", true)
	retiredEngineer := newPosition("software engineer", "хуучин нэр", false)

	major := &Major{
		ID:         uuid.New(),
		IndustryID: industryID,
		NameMN:     "Програм хангамж",
		NameEN:     "Software Engineering",
		Synonyms:   []string{"Software Engineer", ""},
		IsActive:   true,
	}

	repo := &fakeRepository{majors: map[string]*Major{major.ID: major}}
	finder := &fakePositionFinder{positions: []*position.Position{softwareEngineer, dataAnalyst, retiredEngineer}}
	service := NewService(repo, finder, slog.Default())

	matched, err := service.ResolvePositions(context.Background(), industryID, major.ID)
	require.NoError(t, err)

	// "software engineer" matches case-insensitively via the synonym, but
	// inactive positions are excluded and "Data Analyst" has no synonym.
	require.Len(t, matched, 1)
	assert.Equal(t, softwareEngineer.ID, matched[0].ID)
}

func TestResolvePositionsNoPartialMatch(t *testing.T) {
	industryID := uuid.New()

	plural := newPosition("Software Engineers", "Инженерүүд", true)

	major := &Major{
		ID:         uuid.New(),
		IndustryID: industryID,
		NameMN:     "Програм хангамж",
		NameEN:     "Software Engineering",
		Synonyms:   []string{"Software Engineer"},
		IsActive:   true,
	}

	repo := &fakeRepository{majors: map[string]*Major{major.ID: major}}
	finder := &fakePositionFinder{positions: []*position.Position{plural}}
	service := NewService(repo, finder, slog.Default())

	matched, err := service.ResolvePositions(context.Background(), industryID, major.ID)
	require.NoError(t, err)

	// Equality matching only: the plural job title must not match the
	// singular synonym.
	assert.Empty(t, matched)
}

func TestResolvePositionsRejectsMalformedIDs(t *testing.T) {
	service := NewService(&fakeRepository{majors: map[string]*Major{}}, &fakePositionFinder{}, slog.Default())

	_, err := service.ResolvePositions(context.Background(), "not-a-uuid", uuid.New())
	assert.Error(t, err)
}
