// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package convert

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalIntCoercion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		present bool
		value   int
	}{
		{"number", `7`, true, 7},
		{"numeric string", `"7"`, true, 7},
		{"fraction truncates", `4.9`, true, 4},
		{"negative fraction truncates toward zero", `-4.9`, true, -4},
		{"null means absent", `null`, false, 0},
		{"blank string means absent", `""`, false, 0},
		{"whitespace string means absent", `"  "`, false, 0},
		{"garbage string coerces to zero", `"abc"`, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o OptionalInt
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &o))
			assert.Equal(t, tt.present, o.Present)
			assert.Equal(t, tt.value, o.Value)
		})
	}
}

func TestOptionalIntAbsentWhenOmitted(t *testing.T) {
	var payload struct {
		Years OptionalInt `json:"experience_year"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	assert.False(t, payload.Years.Present)
}

func TestOptionalFloatCoercion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		present bool
		value   float64
	}{
		{"number", `1500000.5`, true, 1500000.5},
		{"numeric string", `"1500000.5"`, true, 1500000.5},
		{"null means absent", `null`, false, 0},
		{"blank string means absent", `""`, false, 0},
		{"garbage string coerces to zero", `"lots"`, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o OptionalFloat
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &o))
			assert.Equal(t, tt.present, o.Present)
			assert.Equal(t, tt.value, o.Value)
		})
	}
}

func TestOptionalMarshal(t *testing.T) {
	absent, err := json.Marshal(OptionalInt{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(absent))

	present, err := json.Marshal(OptionalFloat{Value: 2.5, Present: true})
	require.NoError(t, err)
	assert.Equal(t, "2.5", string(present))
}
