// Package optional provides a tri-state wrapper for partial-update payloads:
// a field can be absent, explicitly null, or set to a value.
package optional

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var (
	nullLiteral  = []byte("null")
	emptyLiteral = []byte(`""`)
)

// Value records whether a JSON field was present and whether it carried null.
// An empty JSON string is treated as null.
type Value[T any] struct {
	Present bool
	Null    bool
	V       T
}

func Of[T any](v T) Value[T] { return Value[T]{Present: true, V: v} }

func Null[T any]() Value[T] { return Value[T]{Present: true, Null: true} }

// Get returns the value and true only when it is present and not null.
func (v Value[T]) Get() (T, bool) {
	return v.V, v.Present && !v.Null
}

// Ptr returns nil for absent or null values.
func (v Value[T]) Ptr() *T {
	if !v.Present || v.Null {
		return nil
	}
	out := v.V
	return &out
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Present = true
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, nullLiteral) || bytes.Equal(raw, emptyLiteral) {
		var zero T
		v.Null, v.V = true, zero
		return nil
	}

	switch target := any(&v.V).(type) {
	case *float64:
		if raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return err
			}
			f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
			if err != nil {
				return fmt.Errorf("optional: %q is not a number", s)
			}
			*target = f
			return nil
		}
	case *bool:
		if raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return err
			}
			b, err := strconv.ParseBool(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("optional: %q is not a boolean", s)
			}
			*target = b
			return nil
		}
	case *string:
		// numbers and booleans are kept verbatim (e.g. "numero": 120)
		if raw[0] != '"' && raw[0] != '{' && raw[0] != '[' {
			*target = string(raw)
			return nil
		}
	}

	return json.Unmarshal(raw, &v.V)
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.Present || v.Null {
		return nullLiteral, nil
	}
	return json.Marshal(v.V)
}
