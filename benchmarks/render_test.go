package benchmarks

import (
	"strings"
	"testing"

	"github.com/randalmurphal/textvars/pkg/textvars"
	"github.com/randalmurphal/textvars/pkg/textvars/registry"
)

const banner = `Hi {userFirstName | capitalize}, {cartValue >= freeShippingThreshold ? "FREE shipping!" : "Add " + (freeShippingThreshold - cartValue) + " more"} Offer ends {offerExpiry}.`

func newEngine() *textvars.Engine {
	reg := registry.New()
	reg.SetValues(map[string]any{
		"userFirstName": "ada",
		"cartValue":     150,
		"offerExpiry":   "2025-12-31",
	})
	return textvars.New(reg)
}

// BenchmarkEvaluate_Plain renders text without placeholders.
func BenchmarkEvaluate_Plain(b *testing.B) {
	e := newEngine()
	text := strings.Repeat("no placeholders here ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.EvaluateVariables(text, nil)
	}
}

// BenchmarkEvaluate_SimpleRef renders a single variable.
func BenchmarkEvaluate_SimpleRef(b *testing.B) {
	e := newEngine()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.EvaluateVariables("Hi {userFirstName}", nil)
	}
}

// BenchmarkEvaluate_Banner renders a mix of references, pipes and a conditional.
func BenchmarkEvaluate_Banner(b *testing.B) {
	e := newEngine()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.EvaluateVariables(banner, nil)
	}
}

// BenchmarkEvaluate_Overrides renders with per-call overrides.
func BenchmarkEvaluate_Overrides(b *testing.B) {
	e := newEngine()
	overrides := map[string]any{"cartValue": 600, "userFirstName": "grace"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.EvaluateVariables(banner, overrides)
	}
}

// BenchmarkEvaluate_ManyPlaceholders renders the maximum placeholder count.
func BenchmarkEvaluate_ManyPlaceholders(b *testing.B) {
	e := newEngine()
	text := strings.Repeat("{cartValue * 2} ", 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.EvaluateVariables(text, nil)
	}
}

// BenchmarkExtractVariableNames extracts names from the banner.
func BenchmarkExtractVariableNames(b *testing.B) {
	e := newEngine()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.ExtractVariableNames(banner)
	}
}

// BenchmarkValidateExpression validates an expression with a typo.
func BenchmarkValidateExpression(b *testing.B) {
	e := newEngine()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.ValidateExpression("{freeShippingThreshold - cartVal}")
	}
}
