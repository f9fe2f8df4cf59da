package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
)

// Placeholder outcomes recorded by RecordPlaceholder.
const (
	OutcomeSubstituted = "substituted"
	OutcomeFallback    = "fallback"
)

// MetricsRecorder records textvars metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRender records a completed render with its duration and placeholder count.
	RecordRender(ctx context.Context, duration time.Duration, placeholders int)

	// RecordPlaceholder records one placeholder outcome. kind is
	// "simple" or "expression"; outcome is OutcomeSubstituted or OutcomeFallback.
	RecordPlaceholder(ctx context.Context, kind, outcome string)

	// RecordWarning records an emitted warning.
	RecordWarning(ctx context.Context, kind diag.Kind)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	renders       metric.Int64Counter
	renderLatency metric.Float64Histogram
	placeholders  metric.Int64Counter
	warnings      metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the shared OTel instruments.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("textvars")

	renders, err := meter.Int64Counter("textvars.render.count",
		metric.WithDescription("Number of rendered texts"),
	)
	if err != nil {
		return nil, err
	}

	renderLatency, err := meter.Float64Histogram("textvars.render.latency_ms",
		metric.WithDescription("Render latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	placeholders, err := meter.Int64Counter("textvars.placeholder.count",
		metric.WithDescription("Number of processed placeholders by kind and outcome"),
	)
	if err != nil {
		return nil, err
	}

	warnings, err := meter.Int64Counter("textvars.warning.count",
		metric.WithDescription("Number of emitted warnings by kind"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		renders:       renders,
		renderLatency: renderLatency,
		placeholders:  placeholders,
		warnings:      warnings,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRender records a render.
func (m *otelMetrics) RecordRender(ctx context.Context, duration time.Duration, placeholders int) {
	m.renders.Add(ctx, 1)
	m.renderLatency.Record(ctx, float64(duration.Microseconds())/1000,
		metric.WithAttributes(attribute.Bool("has_placeholders", placeholders > 0)))
}

// RecordPlaceholder records a placeholder outcome.
func (m *otelMetrics) RecordPlaceholder(ctx context.Context, kind, outcome string) {
	m.placeholders.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

// RecordWarning records a warning.
func (m *otelMetrics) RecordWarning(ctx context.Context, kind diag.Kind) {
	m.warnings.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind.String()),
	))
}
