// Package observability provides structured logging, metrics, and tracing
// for textvars.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
)

// LogWarning logs a non-fatal textvars warning.
func LogWarning(logger *slog.Logger, w diag.Warning) {
	if logger == nil {
		return
	}
	attrs := []any{
		slog.String("kind", w.Kind.String()),
		slog.String("subject", w.Subject),
	}
	if w.Err != nil {
		attrs = append(attrs, slog.String("error", w.Err.Error()))
	}
	logger.Warn(w.Message, attrs...)
}

// LogRegistryChange logs a structural registry change.
// name is empty for operations that affect the whole registry.
func LogRegistryChange(logger *slog.Logger, op, name string) {
	if logger == nil {
		return
	}
	if name == "" {
		logger.Debug("registry changed", slog.String("operation", op))
		return
	}
	logger.Debug("registry changed",
		slog.String("operation", op),
		slog.String("name", name),
	)
}

// LogRender logs a completed render.
func LogRender(logger *slog.Logger, textLen, placeholders, warnings int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("text rendered",
		slog.Int("text_length", textLen),
		slog.Int("placeholders", placeholders),
		slog.Int("warnings", warnings),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogPanic logs a recovered panic during placeholder evaluation.
func LogPanic(logger *slog.Logger, placeholder string, value any) {
	if logger == nil {
		return
	}
	logger.Error("placeholder evaluation panicked",
		slog.String("placeholder", placeholder),
		slog.Any("panic", value),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
