package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartRenderSpan starts a span for rendering one text.
	StartRenderSpan(ctx context.Context, textLen int) (context.Context, trace.Span)

	// EndRenderSpan records the render outcome and completes the span.
	EndRenderSpan(span trace.Span, placeholders, warnings int)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider at span start, so
// the provider may be configured after construction:
//
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartRenderSpan starts a render span.
func (m *otelSpanManager) StartRenderSpan(ctx context.Context, textLen int) (context.Context, trace.Span) {
	return otel.Tracer("textvars").Start(ctx, "textvars.render",
		trace.WithAttributes(attribute.Int("text.length", textLen)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndRenderSpan completes a render span. Renders never fail, so warnings
// are recorded as an attribute rather than an error status.
func (m *otelSpanManager) EndRenderSpan(span trace.Span, placeholders, warnings int) {
	if span == nil {
		return
	}
	span.SetAttributes(
		attribute.Int("placeholder.count", placeholders),
		attribute.Int("warning.count", warnings),
	)
	span.SetStatus(codes.Ok, "")
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
