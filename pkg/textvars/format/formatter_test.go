package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
	"github.com/randalmurphal/textvars/pkg/textvars/registry"
)

func def(t registry.Type, format string) *registry.Definition {
	return &registry.Definition{Name: "v", Type: t, Format: format}
}

func TestFormat_ByType(t *testing.T) {
	tests := []struct {
		name  string
		value any
		def   *registry.Definition
		want  string
	}{
		{"currency whole", 1234.0, def(registry.TypeCurrency, "$"), "$1,234"},
		{"currency fraction", 1234.5, def(registry.TypeCurrency, "$"), "$1,234.50"},
		{"currency rounds to cents", 9.999, def(registry.TypeCurrency, ""), "$10"},
		{"currency custom symbol", 500.0, def(registry.TypeCurrency, "€"), "€500"},
		{"currency default symbol", 0.0, def(registry.TypeCurrency, ""), "$0"},
		{"currency negative", -12.5, def(registry.TypeCurrency, "$"), "-$12.50"},
		{"currency millions", 2500000.0, def(registry.TypeCurrency, "$"), "$2,500,000"},
		{"percentage", 15.0, def(registry.TypePercentage, ""), "15%"},
		{"percentage fraction", 12.5, def(registry.TypePercentage, ""), "12.5%"},
		{"number grouped", 12500.0, def(registry.TypeNumber, ""), "12,500"},
		{"number fraction", 1234.5, def(registry.TypeNumber, ""), "1,234.5"},
		{"number small", 3.0, def(registry.TypeNumber, ""), "3"},
		{"number from int", 42, def(registry.TypeNumber, ""), "42"},
		{"boolean true", true, def(registry.TypeBoolean, ""), "Yes"},
		{"boolean false", false, def(registry.TypeBoolean, ""), "No"},
		{"boolean string", "true", def(registry.TypeBoolean, ""), "Yes"},
		{"string", "Ada", def(registry.TypeString, ""), "Ada"},
		{"date definition format", "2025-12-31", def(registry.TypeDate, "DD MMM YYYY"), "31 Dec 2025"},
		{"date default format", "2025-12-31", def(registry.TypeDate, ""), "31 Dec 2025"},
		{"empty date", "", def(registry.TypeDate, "DD MMM YYYY"), ""},
		{"no definition number", 350.0, nil, "350"},
		{"no definition bool", true, nil, "true"},
		{"no definition nil", nil, nil, ""},
	}

	f := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.value, tt.def, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Pipes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		def   *registry.Definition
		pipe  string
		want  string
	}{
		{"formatDate", "2025-12-31", nil, "formatDate", "31 Dec 2025"},
		{"date case-insensitive", "2025-12-31", nil, "FORMATDATE", "31 Dec 2025"},
		{"date with pattern", "2025-12-31", nil, "date:MMM D", "Dec 31"},
		{"date uses definition format", "2025-03-05", def(registry.TypeDate, "DD/MM/YY"), "date", "05/03/25"},
		{"formatCurrency", 1500.0, nil, "formatCurrency", "$1,500"},
		{"currency with symbol", 1500.0, nil, "currency:£", "£1,500"},
		{"currency from definition", 19.9, def(registry.TypeCurrency, "€"), "currency", "€19.90"},
		{"currency numeric string", "250", nil, "currency", "$250"},
		{"uppercase", "ada", nil, "uppercase", "ADA"},
		{"uppercase unicode", "straße", nil, "uppercase", "STRASSE"},
		{"lowercase", "ADA", nil, "lowercase", "ada"},
		{"capitalize", "hello world", nil, "capitalize", "Hello world"},
		{"capitalize keeps rest", "hELLO", nil, "capitalize", "HELLO"},
		{"capitalize unicode", "élan", nil, "capitalize", "Élan"},
		{"capitalize empty", "", nil, "capitalize", ""},
		{"round", 2.5, nil, "round", "3"},
		{"round places", 2.346, nil, "round:2", "2.35"},
		{"floor", 2.9, nil, "floor", "2"},
		{"ceil", 2.1, nil, "ceil", "3"},
		{"ceil negative", -2.1, nil, "ceil", "-2"},
		{"unknown pipe", "Ada", nil, "sparkle", "Ada"},
		{"pipe wins over type", 1234.0, def(registry.TypeCurrency, "$"), "uppercase", "1234"},
		{"padded pipe", "ada", nil, "  Uppercase ", "ADA"},
	}

	f := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.value, tt.def, tt.pipe)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Fallbacks(t *testing.T) {
	f := New()

	got, err := f.Format("not a date", def(registry.TypeDate, ""), "")
	assert.Equal(t, "not a date", got)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, diag.KindInvalidDate, diag.KindOf(err))

	got, err = f.Format("abc", nil, "currency")
	assert.Equal(t, "abc", got)
	assert.ErrorIs(t, err, ErrNotNumber)

	got, err = f.Format("abc", def(registry.TypeNumber, ""), "")
	assert.Equal(t, "abc", got)
	assert.ErrorIs(t, err, ErrNotNumber)

	got, err = f.Format(true, nil, "round")
	assert.Equal(t, "true", got)
	assert.ErrorIs(t, err, ErrNotNumber)
}

func TestFormatter_Options(t *testing.T) {
	f := New(WithCurrencySymbol("¥"), WithDateFormat("YYYY-MM-DD"), WithLanguage(language.Turkish))

	got, err := f.Format(1000.0, def(registry.TypeCurrency, ""), "")
	require.NoError(t, err)
	assert.Equal(t, "¥1,000", got)

	got, err = f.Format("2025-12-31", nil, "date")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", got)

	got, err = f.Format("i", nil, "uppercase")
	require.NoError(t, err)
	assert.Equal(t, "İ", got)

	// Empty options keep defaults.
	f = New(WithCurrencySymbol(""), WithDateFormat(""))
	assert.Equal(t, DefaultCurrencySymbol, f.currencySymbol)
	assert.Equal(t, DefaultDateFormat, f.dateFormat)
}

func TestValue(t *testing.T) {
	d := def(registry.TypeDate, "DD MMM YYYY")
	assert.Equal(t, "31 Dec 2025", Value("2025-12-31", d, ""))
	assert.Equal(t, "garbage", Value("garbage", d, ""))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		value   any
		pattern string
		want    string
	}{
		{"all tokens", ts, "YYYY YY MMMM MMM MM M DD D", "2025 25 March Mar 03 3 07 7"},
		{"literal text", ts, "D of MMMM, YYYY", "7 of March, 2025"},
		{"longest token first", ts, "MMMMM", "March3"},
		{"RFC3339", "2025-12-31T10:00:00Z", "DD MMM YYYY", "31 Dec 2025"},
		{"RFC3339 with offset keeps local day", "2025-12-31T23:30:00-05:00", "DD", "31"},
		{"datetime without zone", "2025-12-31T10:00:00", "DD MM YYYY", "31 12 2025"},
		{"slashes", "2025/01/02", "D/M/YY", "2/1/25"},
		{"unix seconds", int64(1735603200), "DD MMM YYYY", "31 Dec 2024"},
		{"unix seconds float", 1735603200.0, "YYYY", "2024"},
		{"unix seconds string", "1735603200", "YYYY", "2024"},
		{"empty pattern", "2025-12-31", "", "31 Dec 2025"},
		{"pointer", &ts, "YYYY", "2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.value, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDate_Invalid(t *testing.T) {
	tests := []any{"31/12/2025", "tomorrow", true, []string{"x"}, (*time.Time)(nil)}

	for _, v := range tests {
		got, err := FormatDate(v, "DD MMM YYYY")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDate)

		var ide *InvalidDateError
		require.ErrorAs(t, err, &ide)
		assert.Equal(t, v, ide.Value)
		assert.Equal(t, stringify(v), got)
	}
}
