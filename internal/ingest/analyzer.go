// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

// Package ingest turns resume text into salary observations.
//
// A language model extracts up to five (role, salary, experience,
// industry) tuples from the resume; the service maps them onto the
// catalog and stores them as verified cv_upload observations. Document
// text extraction (PDF, DOCX, crawling) happens upstream — this package
// accepts pre-extracted text only.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"

	"github.com/tsalin/api/internal/platform/apperr"
)

// MaxExtractions caps how many salary tuples one resume may yield.
const MaxExtractions = 5

// Extraction is one salary estimate pulled out of a resume.
type Extraction struct {
	RoleEN          string  `json:"role_en"`
	RoleMN          string  `json:"role_mn"`
	Salary          float64 `json:"salary"`
	ExperienceYears int     `json:"experience"`
	IndustryNameEN  string  `json:"industry"`
}

// Analyzer extracts salary tuples from resume text. Implementations may
// call an external model; failures surface as upstream errors.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText string, industries []string) ([]Extraction, error)
}

const promptTemplate = `You are a salary data extraction assistant for the Mongolian job market.

Analyze the resume text below and extract up to %d salary estimates the candidate could command today, one per distinct role.

Rules:
- "industry" must be exactly one of: %s
- "salary" is the estimated monthly salary in MNT (a plain number, no separators).
- "experience" is the candidate's total years of experience for that role (integer).
- "role_en" is the job title in English; "role_mn" is the same title in Mongolian if you can translate it, otherwise repeat the English title.
- Respond with a JSON array only. No markdown, no commentary.

Output schema:
[{"role_en": "...", "role_mn": "...", "salary": 0, "experience": 0, "industry": "..."}]

Resume:
%s`

// AnthropicAnalyzer implements [Analyzer] on top of the Anthropic API.
type AnthropicAnalyzer struct {
	model llms.Model
}

// NewAnthropicAnalyzer builds an analyzer for the given API key and
// model name.
func NewAnthropicAnalyzer(apiKey, model string) (*AnthropicAnalyzer, error) {
	llm, err := anthropic.New(
		anthropic.WithToken(apiKey),
		anthropic.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("ingest: anthropic client: %w", err)
	}
	return &AnthropicAnalyzer{model: llm}, nil
}

func (analyzer *AnthropicAnalyzer) Analyze(ctx context.Context, resumeText string, industries []string) ([]Extraction, error) {
	prompt := fmt.Sprintf(promptTemplate, MaxExtractions, strings.Join(industries, ", "), resumeText)

	response, err := llms.GenerateFromSinglePrompt(ctx, analyzer.model, prompt,
		llms.WithTemperature(0.2),
		llms.WithMaxTokens(2000),
	)
	if err != nil {
		return nil, apperr.Upstream("Resume analysis failed", err)
	}

	extractions, err := ParseExtractions(response)
	if err != nil {
		return nil, apperr.Upstream("Resume analysis returned an unreadable answer", err)
	}
	return extractions, nil
}

// ParseExtractions decodes the model's answer. Models occasionally wrap
// JSON in markdown fences despite instructions, so fences are stripped
// first. Invalid entries are dropped, and at most [MaxExtractions]
// survive.
func ParseExtractions(raw string) ([]Extraction, error) {
	cleaned := stripCodeFences(raw)

	var extractions []Extraction
	if err := json.Unmarshal([]byte(cleaned), &extractions); err != nil {
		return nil, fmt.Errorf("ingest: decode extractions: %w", err)
	}

	valid := make([]Extraction, 0, len(extractions))
	for _, extraction := range extractions {
		if strings.TrimSpace(extraction.RoleEN) == "" {
			continue
		}
		if extraction.Salary <= 0 || extraction.ExperienceYears < 0 {
			continue
		}
		if strings.TrimSpace(extraction.IndustryNameEN) == "" {
			continue
		}
		valid = append(valid, extraction)
		if len(valid) == MaxExtractions {
			break
		}
	}

	return valid, nil
}

func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}

	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
