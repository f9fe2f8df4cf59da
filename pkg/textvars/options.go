package textvars

import (
	"log/slog"

	"github.com/randalmurphal/textvars/pkg/textvars/config"
	"github.com/randalmurphal/textvars/pkg/textvars/diag"
)

// MissingAction specifies how unknown simple references are rendered.
type MissingAction int

const (
	// MissingKeep leaves the placeholder verbatim. This is the default.
	MissingKeep MissingAction = iota

	// MissingEmpty replaces the placeholder with an empty string.
	MissingEmpty
)

// Option configures an Engine.
type Option func(*Engine)

// WithMissingAction sets how unknown simple references are rendered.
// Failed expressions always stay verbatim.
//
// Default: MissingKeep
func WithMissingAction(action MissingAction) Option {
	return func(e *Engine) {
		e.missing = action
	}
}

// WithSettings applies loaded settings: scan limits, expression depth,
// fallback currency symbol and date pattern, and the missing action.
//
// Example:
//
//	cfg, _ := config.FromFile("textvars.yaml")
//	engine := textvars.New(reg, textvars.WithSettings(cfg.Settings()))
func WithSettings(s config.Settings) Option {
	return func(e *Engine) {
		e.settings = s
		if s.Missing == config.MissingEmpty {
			e.missing = MissingEmpty
		} else {
			e.missing = MissingKeep
		}
	}
}

// WithWarningHandler sets the handler that receives render warnings.
func WithWarningHandler(h diag.Handler) Option {
	return func(e *Engine) {
		e.warn = h
	}
}

// WithLogger sets the logger for render diagnostics. nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics enables or disables OpenTelemetry metrics.
//
// Default: false
func WithMetrics(enabled bool) Option {
	return func(e *Engine) {
		e.metricsEnabled = enabled
	}
}

// WithTracing enables or disables OpenTelemetry tracing.
//
// Default: false
func WithTracing(enabled bool) Option {
	return func(e *Engine) {
		e.tracingEnabled = enabled
	}
}
