// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsalin/api/internal/platform/apperr"
)

func TestValidatorPassesOnValidInput(t *testing.T) {
	v := &Validator{}
	err := v.
		Required("name_en", "Software Engineer").
		MaxLen("name_en", "Software Engineer", 255).
		Range("level", 5, 1, 10).
		NonNegative("salary", 1500000).
		UUID("industry_id", "0191a2b3-c4d5-7abc-8def-0123456789ab").
		OneOf("source", "cv_upload", "user_submission", "cv_upload", "lambda").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

func TestValidatorCollectsAllFailures(t *testing.T) {
	v := &Validator{}
	err := v.
		Required("name_en", "  ").
		Range("level", 42, 1, 10).
		UUID("industry_id", "not-a-uuid").
		Err()

	require.Error(t, err)

	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.Len(t, appErr.Details, 3)
	assert.Equal(t, "name_en", appErr.Details[0].Field)
	assert.Equal(t, "level", appErr.Details[1].Field)
	assert.Equal(t, "industry_id", appErr.Details[2].Field)
}

func TestValidatorUUID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"uuid v7", "0191a2b3-c4d5-7abc-8def-0123456789ab", true},
		{"uppercase accepted", "0191A2B3-C4D5-7ABC-8DEF-0123456789AB", true},
		{"empty", "", false},
		{"missing dashes", "0191a2b3c4d57abc8def0123456789ab", false},
		{"too short", "0191a2b3-c4d5-7abc-8def-0123456789a", false},
		{"non-hex characters", "0191a2b3-c4d5-7abc-8def-0123456789zz", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Validator{}).UUID("id", tt.value).Err()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidatorMaxLenCountsRunes(t *testing.T) {
	// Cyrillic characters are multi-byte; the limit must apply to characters.
	name := "Программ хангамжийн инженер"

	assert.NoError(t, (&Validator{}).MaxLen("name_mn", name, 27).Err())
	assert.Error(t, (&Validator{}).MaxLen("name_mn", name, 26).Err())
}

func TestValidatorRangeBounds(t *testing.T) {
	assert.NoError(t, (&Validator{}).Range("level", 1, 1, 10).Err())
	assert.NoError(t, (&Validator{}).Range("level", 10, 1, 10).Err())
	assert.Error(t, (&Validator{}).Range("level", 0, 1, 10).Err())
	assert.Error(t, (&Validator{}).Range("level", 11, 1, 10).Err())
}

func TestValidatorCustom(t *testing.T) {
	assert.NoError(t, (&Validator{}).Custom("salary", false, "bad").Err())

	err := (&Validator{}).Custom("salary", true, "Must be positive").Err()
	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr))
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "Must be positive", appErr.Details[0].Message)
}

func TestRequiredError(t *testing.T) {
	err := RequiredError("resumeText", "This field is required")

	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "resumeText", err.Details[0].Field)
}
