package registry

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Coerce converts raw to the storage representation of t:
// string for TypeString and TypeDate, float64 for numeric types and bool
// for TypeBoolean. The returned error is a *CoercionError.
func Coerce(name string, t Type, raw any) (any, error) {
	fail := &CoercionError{Name: name, Type: t, Value: raw}
	switch {
	case t.IsNumeric():
		f, ok := toNumber(raw)
		if !ok {
			return nil, fail
		}
		return f, nil
	case t == TypeBoolean:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
		return nil, fail
	case t == TypeDate:
		return toDateString(raw), nil
	default:
		if raw == nil {
			return "", nil
		}
		if s, ok := raw.(string); ok {
			return s, nil
		}
		return fmt.Sprint(raw), nil
	}
}

// InferType picks a type for a value set on an unknown name.
// Go numeric kinds infer TypeNumber. Everything else infers TypeString,
// bools and numeric-looking strings included.
func InferType(raw any) Type {
	switch raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return TypeNumber
	default:
		return TypeString
	}
}

// toNumber converts numeric kinds and numeric strings to a finite float64.
func toNumber(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toDateString normalizes a date value to a string. time.Time and unix
// seconds become RFC3339 in UTC; strings are kept as given so that the
// formatter can report unparsable input instead of losing it here.
func toDateString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.UTC().Format(time.RFC3339)
	}
	if f, ok := toNumber(raw); ok {
		return time.Unix(int64(f), 0).UTC().Format(time.RFC3339)
	}
	return fmt.Sprint(raw)
}
