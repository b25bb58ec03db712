// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package convert

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// OptionalInt is a JSON scalar that clients may send as a number, a numeric
// string, a blank string, or omit entirely.
//
// # Coercion Contract
//
// The legacy clients of this API send numeric fields inconsistently, so the
// contract is lenient: null, "" and absence all mean "not provided", while a
// present non-numeric string coerces to 0 rather than erroring. Fractional
// numbers are truncated toward zero.
type OptionalInt struct {
	Value   int
	Present bool
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	value, present := coerceNumber(data)
	if !present {
		return nil
	}
	o.Value = int(math.Trunc(value))
	o.Present = true
	return nil
}

// MarshalJSON implements [json.Marshaler]. Absent values serialize as null.
func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// OptionalFloat is the float64 counterpart of [OptionalInt] with the same
// coercion contract.
type OptionalFloat struct {
	Value   float64
	Present bool
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	value, present := coerceNumber(data)
	if !present {
		return nil
	}
	o.Value = value
	o.Present = true
	return nil
}

// MarshalJSON implements [json.Marshaler]. Absent values serialize as null.
func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// coerceNumber interprets a raw JSON token as a lenient number.
// The second return value is false when the token means "not provided".
func coerceNumber(data []byte) (float64, bool) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	// String form: blank means absent, garbage coerces to 0.
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, true
		}
		return v, true
	}

	// Number form.
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, true
	}
	return v, true
}
