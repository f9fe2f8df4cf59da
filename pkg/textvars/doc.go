/*
Package textvars personalizes campaign text by substituting typed variables,
arithmetic and conditional expressions, and formatted values into
placeholders.

# Overview

	reg := registry.New()
	reg.SetValues(map[string]any{"userName": "Ada", "cartValue": 150})

	engine := textvars.New(reg)
	engine.EvaluateVariables(
	    "Hi {userName}, you're {freeShippingThreshold - cartValue} away from free shipping",
	    nil,
	)
	// "Hi Ada, you're 350 away from free shipping"

# Placeholders

A placeholder is a brace-delimited span. Its content decides how it renders:

	{userName}                       variable, formatted by its declared type
	{offerExpiry | formatDate}       variable with a pipe format
	{cartValue * 2}                  arithmetic expression
	{cartValue >= 500 ? "A" : "B"}   conditional expression

See package placeholder for the classification rules and package expr for
the expression language.

# Failure Handling

Rendering never returns an error and never panics. A placeholder that cannot
be rendered stays verbatim in the output and a diag.Warning is delivered to
the handler set with WithWarningHandler:

  - an unknown variable in a simple reference (diag.KindUnknownVariable)
  - an expression naming anything other than a known variable (diag.KindUnsafeExpression)
  - a syntax or runtime error in an expression (diag.KindEvaluationError)
  - nested braces or an exceeded scan limit

A date that cannot be parsed is rendered as the raw value with a
diag.KindInvalidDate warning.

ValidateExpression is the one operation that reports problems directly,
for use by editors before a template is saved.

# Observability

WithLogger enables structured logs through log/slog. WithMetrics and
WithTracing enable OpenTelemetry instruments and a textvars.render span per
call; see package observability.
*/
package textvars
