package placeholder

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Placeholder
	}{
		{
			name:    "simple reference",
			content: "userName",
			want:    Placeholder{Kind: KindSimpleRef, Content: "userName", Name: "userName"},
		},
		{
			name:    "simple reference trimmed",
			content: "  userName ",
			want:    Placeholder{Kind: KindSimpleRef, Content: "userName", Name: "userName"},
		},
		{
			name:    "pipe format",
			content: "offerExpiry | formatDate",
			want:    Placeholder{Kind: KindSimpleRef, Content: "offerExpiry | formatDate", Name: "offerExpiry", Format: "formatDate"},
		},
		{
			name:    "pipe splits on first bar only",
			content: "a|b|c",
			want:    Placeholder{Kind: KindSimpleRef, Content: "a|b|c", Name: "a", Format: "b|c"},
		},
		{
			name:    "arithmetic",
			content: "freeShippingThreshold - cartValue",
			want:    Placeholder{Kind: KindExpression, Content: "freeShippingThreshold - cartValue"},
		},
		{
			name:    "comparison",
			content: "a >= b",
			want:    Placeholder{Kind: KindExpression, Content: "a >= b"},
		},
		{
			name:    "conditional",
			content: `cartValue >= 500 ? "yes" : "no"`,
			want:    Placeholder{Kind: KindExpression, Content: `cartValue >= 500 ? "yes" : "no"`, IsConditional: true},
		},
		{
			name:    "operator wins over pipe",
			content: "a | b + c",
			want:    Placeholder{Kind: KindExpression, Content: "a | b + c"},
		},
		{
			name:    "question mark wins over everything",
			content: "a | b ?",
			want:    Placeholder{Kind: KindExpression, Content: "a | b ?", IsConditional: true},
		},
		{
			name:    "call syntax without operators is a simple reference",
			content: "alert(1)",
			want:    Placeholder{Kind: KindSimpleRef, Content: "alert(1)", Name: "alert(1)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.content))
		})
	}
}

func TestScan_Spans(t *testing.T) {
	text := "Hi {userName}, you're {freeShippingThreshold - cartValue} away"
	res := Scan(text)

	require.Empty(t, res.Errors)
	require.Len(t, res.Placeholders, 2)

	p := res.Placeholders[0]
	assert.Equal(t, KindSimpleRef, p.Kind)
	assert.Equal(t, "{userName}", p.Raw)
	assert.Equal(t, "userName", p.Name)
	assert.Equal(t, "{userName}", text[p.Start:p.End])

	p = res.Placeholders[1]
	assert.Equal(t, KindExpression, p.Kind)
	assert.Equal(t, "freeShippingThreshold - cartValue", p.Content)
	assert.Equal(t, p.Raw, text[p.Start:p.End])
}

func TestScan_LiteralBraces(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no braces", "plain text", 0},
		{"empty braces", "a {} b", 0},
		{"whitespace braces", "a {   } b", 0},
		{"unmatched open", "a {b", 0},
		{"stray close", "a } b {c}", 1},
		{"adjacent", "{a}{b}{c}", 3},
		{"unmatched open after span", "{a} {b", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Scan(tt.text)
			assert.Len(t, res.Placeholders, tt.want)
			assert.Empty(t, res.Errors)
		})
	}
}

func TestScan_NestedBracesRejected(t *testing.T) {
	text := "Before {outer {inner} tail} middle {ok} end"
	res := Scan(text)

	require.Len(t, res.Placeholders, 1, "only the well-formed span survives")
	assert.Equal(t, "ok", res.Placeholders[0].Name)

	require.Len(t, res.Errors, 1)
	var nested *NestedBraceError
	require.True(t, errors.As(res.Errors[0], &nested))
	assert.Equal(t, 7, nested.Offset)
	assert.Equal(t, "{outer {inner} tail}", nested.Text)
	assert.ErrorIs(t, res.Errors[0], ErrNestedBrace)
	assert.Equal(t, diag.KindNestedPlaceholder, diag.KindOf(res.Errors[0]))
}

func TestScan_NestedBracesUnclosed(t *testing.T) {
	res := Scan("x {a {b} y")

	assert.Empty(t, res.Placeholders)
	require.Len(t, res.Errors, 1)
	var nested *NestedBraceError
	require.True(t, errors.As(res.Errors[0], &nested))
	assert.Equal(t, "{a {b} y", nested.Text)
}

func TestScan_StrayOpenSwallowsLaterSpans(t *testing.T) {
	res := Scan("Use { here. Hi {userName}")

	assert.Empty(t, res.Placeholders)
	require.Len(t, res.Errors, 1)
	var nested *NestedBraceError
	require.True(t, errors.As(res.Errors[0], &nested))
	assert.Equal(t, 4, nested.Offset)
	assert.Equal(t, "{ here. Hi {userName}", nested.Text)
}

func TestScanner_MaxLength(t *testing.T) {
	s := NewScanner(WithMaxLength(5))
	res := s.Scan("{short} {muchTooLong}")

	require.Len(t, res.Placeholders, 1)
	assert.Equal(t, "short", res.Placeholders[0].Name)
	require.Len(t, res.Errors, 1)

	var limit *LimitError
	require.True(t, errors.As(res.Errors[0], &limit))
	assert.Equal(t, "length", limit.Limit)
	assert.Equal(t, 5, limit.Max)
	assert.Equal(t, 8, limit.Offset)
	assert.Equal(t, diag.KindLimitExceeded, diag.KindOf(res.Errors[0]))
}

func TestScanner_MaxPlaceholders(t *testing.T) {
	s := NewScanner(WithMaxPlaceholders(2))
	res := s.Scan("{a}{b}{c}{d}")

	assert.Len(t, res.Placeholders, 2)
	require.Len(t, res.Errors, 1)
	assert.ErrorIs(t, res.Errors[0], ErrLimit)
}

func TestScanner_IgnoresNonPositiveLimits(t *testing.T) {
	s := NewScanner(WithMaxPlaceholders(0), WithMaxLength(-1))
	assert.Equal(t, DefaultMaxPlaceholders, s.maxPlaceholders)
	assert.Equal(t, DefaultMaxLength, s.maxLength)
}

func TestScan_LargeInputIsBounded(t *testing.T) {
	text := strings.Repeat("{a}", DefaultMaxPlaceholders+10)
	res := Scan(text)
	assert.Len(t, res.Placeholders, DefaultMaxPlaceholders)
	assert.Len(t, res.Errors, 1)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Hi {userName}"))
	assert.False(t, Contains("Hi userName"))
	assert.False(t, Contains("Hi {}"))
	assert.False(t, Contains("{a {b}}"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "simple", KindSimpleRef.String())
	assert.Equal(t, "expression", KindExpression.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
