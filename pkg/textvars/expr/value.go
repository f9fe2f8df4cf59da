package expr

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind is the type of a Value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Value is the result of evaluating an expression. Only the field matching
// Kind is meaningful.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue returns a numeric Value.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// String renders the value for substitution. Numbers use the shortest
// decimal form that round-trips: 350, 0.5, 1234.56.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return FormatNumber(v.Num)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// Truthy reports whether v selects the first branch of a conditional.
// false, 0, NaN and "" are falsy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNumber:
		return v.Num != 0 && !math.IsNaN(v.Num)
	case KindBool:
		return v.Bool
	default:
		return v.Str != ""
	}
}

// Interface returns v as a Go value: string, float64 or bool.
func (v Value) Interface() any {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	default:
		return v.Str
	}
}

// FormatNumber renders f without exponent and without trailing zeros.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FromAny converts a variable value into a Value. Go numeric types and
// json.Number become numbers, bools stay bools and nil becomes "".
// Everything else is rendered with fmt.Sprint.
func FromAny(x any) Value {
	switch v := x.(type) {
	case nil:
		return StringValue("")
	case Value:
		return v
	case string:
		return StringValue(v)
	case bool:
		return BoolValue(v)
	case float64:
		return NumberValue(v)
	case float32:
		return NumberValue(float64(v))
	case int:
		return NumberValue(float64(v))
	case int8:
		return NumberValue(float64(v))
	case int16:
		return NumberValue(float64(v))
	case int32:
		return NumberValue(float64(v))
	case int64:
		return NumberValue(float64(v))
	case uint:
		return NumberValue(float64(v))
	case uint8:
		return NumberValue(float64(v))
	case uint16:
		return NumberValue(float64(v))
	case uint32:
		return NumberValue(float64(v))
	case uint64:
		return NumberValue(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return NumberValue(f)
		}
		return StringValue(v.String())
	case time.Time:
		return StringValue(v.UTC().Format(time.RFC3339))
	default:
		return StringValue(fmt.Sprint(v))
	}
}
