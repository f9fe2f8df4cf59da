package format

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/randalmurphal/textvars/pkg/textvars/expr"
	"github.com/randalmurphal/textvars/pkg/textvars/registry"
)

// DefaultCurrencySymbol is used when neither the pipe nor the definition
// names a symbol.
const DefaultCurrencySymbol = "$"

// Formatter renders values. It is safe for concurrent use; casers are
// created per call because cases.Caser is stateful.
type Formatter struct {
	currencySymbol string
	dateFormat     string
	lang           language.Tag
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithCurrencySymbol sets the fallback currency symbol.
func WithCurrencySymbol(symbol string) Option {
	return func(f *Formatter) {
		if symbol != "" {
			f.currencySymbol = symbol
		}
	}
}

// WithDateFormat sets the fallback date pattern.
func WithDateFormat(pattern string) Option {
	return func(f *Formatter) {
		if pattern != "" {
			f.dateFormat = pattern
		}
	}
}

// WithLanguage sets the language used by the case pipes.
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) {
		f.lang = tag
	}
}

// New creates a Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		currencySymbol: DefaultCurrencySymbol,
		dateFormat:     DefaultDateFormat,
		lang:           language.Und,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders value. A non-empty pipe takes precedence over the
// definition's type; def may be nil. The returned error is non-nil when the
// output is a fallback; the string is always usable.
func (f *Formatter) Format(value any, def *registry.Definition, pipe string) (string, error) {
	if pipe = strings.TrimSpace(pipe); pipe != "" {
		return f.formatPipe(value, def, pipe)
	}
	if def == nil {
		return stringify(value), nil
	}

	switch def.Type {
	case registry.TypeCurrency:
		return f.currency(value, f.symbolFor(def, ""))
	case registry.TypePercentage:
		n, ok := toNumber(value)
		if !ok {
			return stringify(value), &NotNumberError{Value: value, Format: string(def.Type)}
		}
		return expr.FormatNumber(n) + "%", nil
	case registry.TypeDate:
		return FormatDate(value, f.patternFor(def, ""))
	case registry.TypeNumber:
		n, ok := toNumber(value)
		if !ok {
			return stringify(value), &NotNumberError{Value: value, Format: string(def.Type)}
		}
		return group(n), nil
	case registry.TypeBoolean:
		return yesNo(value), nil
	default:
		return stringify(value), nil
	}
}

func (f *Formatter) formatPipe(value any, def *registry.Definition, pipe string) (string, error) {
	name, arg, _ := strings.Cut(pipe, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	arg = strings.TrimSpace(arg)

	switch name {
	case "formatdate", "date":
		return FormatDate(value, f.patternFor(def, arg))
	case "formatcurrency", "currency":
		return f.currency(value, f.symbolFor(def, arg))
	case "uppercase":
		return cases.Upper(f.lang).String(stringify(value)), nil
	case "lowercase":
		return cases.Lower(f.lang).String(stringify(value)), nil
	case "capitalize":
		return f.capitalize(stringify(value)), nil
	case "round", "floor", "ceil":
		return roundPipe(value, name, arg)
	default:
		return stringify(value), nil
	}
}

// symbolFor picks the pipe argument, then a currency definition's format,
// then the formatter default.
func (f *Formatter) symbolFor(def *registry.Definition, arg string) string {
	switch {
	case arg != "":
		return arg
	case def != nil && def.Type == registry.TypeCurrency && def.Format != "":
		return def.Format
	default:
		return f.currencySymbol
	}
}

// patternFor picks the pipe argument, then a date definition's format,
// then the formatter default.
func (f *Formatter) patternFor(def *registry.Definition, arg string) string {
	switch {
	case arg != "":
		return arg
	case def != nil && def.Type == registry.TypeDate && def.Format != "":
		return def.Format
	default:
		return f.dateFormat
	}
}

func (f *Formatter) currency(value any, symbol string) (string, error) {
	n, ok := toNumber(value)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return stringify(value), &NotNumberError{Value: value, Format: "currency"}
	}
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + symbol + money(n), nil
}

// capitalize uppercases the first rune and leaves the rest unchanged.
func (f *Formatter) capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(f.lang).String(string(r)) + s[size:]
}

// money groups n with whole amounts shown without decimals and fractional
// amounts with two.
func money(n float64) string {
	cents := math.Round(n * 100)
	if math.Mod(cents, 100) == 0 {
		return humanize.FormatFloat("#,###.", cents/100)
	}
	return humanize.FormatFloat("#,###.##", cents/100)
}

func group(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return expr.FormatNumber(n)
	}
	return humanize.Commaf(n)
}

func roundPipe(value any, mode, arg string) (string, error) {
	n, ok := toNumber(value)
	if !ok {
		return stringify(value), &NotNumberError{Value: value, Format: mode}
	}
	scale := 1.0
	if places, err := strconv.Atoi(arg); err == nil && places > 0 && places <= 10 {
		scale = math.Pow(10, float64(places))
	}
	switch mode {
	case "floor":
		n = math.Floor(n*scale) / scale
	case "ceil":
		n = math.Ceil(n*scale) / scale
	default:
		n = math.Round(n*scale) / scale
	}
	return expr.FormatNumber(n), nil
}

func yesNo(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return yesNo(b)
		}
	}
	return stringify(value)
}

// toNumber converts Go numbers, json.Number and numeric strings.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	}
	ev := expr.FromAny(value)
	return ev.Num, ev.Kind == expr.KindNumber
}

func stringify(value any) string {
	return expr.FromAny(value).String()
}

var defaultFormatter = New()

// Value renders value with the default formatter and drops the fallback
// error.
func Value(value any, def *registry.Definition, pipe string) string {
	s, _ := defaultFormatter.Format(value, def, pipe)
	return s
}
