// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsalin/api/internal/platform/apperr"
)

func decodeErrorEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestErrorSurfacesStoreDiagnostic(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/salary-posts", nil)

	Error(recorder, request, apperr.Internal(errors.New("dial tcp: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	envelope := decodeErrorEnvelope(t, recorder)
	assert.False(t, envelope.Success)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Code)
	assert.Equal(t, "An unexpected error occurred", envelope.Error)
	assert.Equal(t, "dial tcp: connection refused", envelope.Diagnostic)
}

func TestErrorWrapsUnknownErrors(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/industries", nil)

	Error(recorder, request, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	envelope := decodeErrorEnvelope(t, recorder)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Code)
	assert.Equal(t, "boom", envelope.Diagnostic)
}

func TestErrorClientErrorsCarryNoDiagnostic(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/salary-posts", nil)

	Error(recorder, request, apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   "industry_id",
		Message: "Must be a valid UUID",
	}))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	envelope := decodeErrorEnvelope(t, recorder)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
	require.Len(t, envelope.Details, 1)
	assert.Empty(t, envelope.Diagnostic)
}
