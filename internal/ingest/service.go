// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package ingest

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tsalin/api/internal/catalog/industry"
	"github.com/tsalin/api/internal/catalog/position"
	"github.com/tsalin/api/internal/catalog/prolevel"
	"github.com/tsalin/api/internal/platform/apperr"
	"github.com/tsalin/api/internal/platform/validate"
	"github.com/tsalin/api/internal/salary"
	"github.com/tsalin/api/pkg/pointer"
	"github.com/tsalin/api/pkg/textnorm"
)

// MinResumeLength is the smallest trimmed resume text worth analyzing.
const MinResumeLength = 20

// IndustryCatalog is the slice of the industry catalog the ingester needs.
type IndustryCatalog interface {
	List(ctx context.Context, filter industry.Filter) ([]*industry.Industry, error)
}

// PositionFinder resolves or creates a position by title within an industry.
type PositionFinder interface {
	FindOrCreate(ctx context.Context, industryID, title string) (*position.Position, error)
}

// ObservationWriter persists extracted observations through the salary
// service, so write-time level-name enrichment applies.
type ObservationWriter interface {
	CreateMany(ctx context.Context, inputs []salary.Input) ([]*salary.Post, error)
}

// Request is the body of the resume ingestion endpoint.
type Request struct {
	ResumeText string `json:"resumeText"`
}

// Result reports what one resume yielded.
type Result struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Data    []*salary.Post `json:"data"`
}

type Service struct {
	analyzer     Analyzer
	industries   IndustryCatalog
	positions    PositionFinder
	observations ObservationWriter
	logger       *slog.Logger
}

func NewService(
	analyzer Analyzer,
	industries IndustryCatalog,
	positions PositionFinder,
	observations ObservationWriter,
	logger *slog.Logger,
) *Service {
	return &Service{
		analyzer:     analyzer,
		industries:   industries,
		positions:    positions,
		observations: observations,
		logger:       logger,
	}
}

// IngestResume analyzes resume text and stores the extracted salary
// estimates as verified cv_upload observations.
//
// Tuples naming an industry outside the catalog are skipped, not failed:
// the model is allowed to be partially wrong as long as something usable
// survives.
func (service *Service) IngestResume(ctx context.Context, req Request) (*Result, error) {
	text := strings.TrimSpace(req.ResumeText)

	v := &validate.Validator{}
	v.Required("resumeText", text).
		Custom("resumeText", len([]rune(text)) < MinResumeLength, "Resume text is too short to analyze")
	if err := v.Err(); err != nil {
		return nil, err
	}

	active, err := service.industries.List(ctx, industry.Filter{IsActive: pointer.To(true)})
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*industry.Industry, len(active))
	names := make([]string, 0, len(active))
	for _, entry := range active {
		byName[textnorm.Fold(entry.NameEN)] = entry
		names = append(names, entry.NameEN)
	}

	extractions, err := service.analyzer.Analyze(ctx, text, names)
	if err != nil {
		return nil, err
	}

	inputs := make([]salary.Input, 0, len(extractions))
	for _, extraction := range extractions {
		parent, known := byName[textnorm.Fold(extraction.IndustryNameEN)]
		if !known {
			service.logger.WarnContext(ctx, "ingest_unknown_industry",
				slog.String("industry", extraction.IndustryNameEN))
			continue
		}

		title := extraction.RoleEN
		if extraction.RoleMN != "" {
			title = extraction.RoleMN
		}
		matched, err := service.positions.FindOrCreate(ctx, parent.ID, title)
		if err != nil {
			return nil, err
		}

		if extraction.ExperienceYears > salary.MaxExperienceYears {
			extraction.ExperienceYears = salary.MaxExperienceYears
		}

		inputs = append(inputs, salary.Input{
			IndustryID:      parent.ID,
			PositionID:      matched.ID,
			Source:          salary.SourceCVUpload,
			Salary:          extraction.Salary,
			Level:           prolevel.FromYears(extraction.ExperienceYears),
			ExperienceYears: extraction.ExperienceYears,
			IsVerified:      pointer.To(true),
		})
	}

	if len(inputs) == 0 {
		return nil, apperr.Unprocessable("No usable salary data could be extracted from the resume")
	}

	posts, err := service.observations.CreateMany(ctx, inputs)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "resume_ingested",
		slog.Int("extracted", len(extractions)),
		slog.Int("stored", len(posts)),
	)
	return &Result{
		Success: true,
		Count:   len(posts),
		Data:    posts,
	}, nil
}
