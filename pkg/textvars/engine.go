package textvars

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/textvars/pkg/textvars/config"
	"github.com/randalmurphal/textvars/pkg/textvars/diag"
	"github.com/randalmurphal/textvars/pkg/textvars/expr"
	"github.com/randalmurphal/textvars/pkg/textvars/format"
	"github.com/randalmurphal/textvars/pkg/textvars/observability"
	"github.com/randalmurphal/textvars/pkg/textvars/placeholder"
	"github.com/randalmurphal/textvars/pkg/textvars/registry"
)

// Engine renders template text against a variable registry.
//
// Engine holds no mutable state after New and is safe for concurrent use.
// Rendering never fails: unresolvable placeholders are left verbatim and
// reported through the warning handler.
type Engine struct {
	reg       *registry.Registry
	scanner   *placeholder.Scanner
	evaluator *expr.Evaluator
	formatter *format.Formatter

	settings       config.Settings
	missing        MissingAction
	warn           diag.Handler
	logger         *slog.Logger
	metricsEnabled bool
	tracingEnabled bool
	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
}

// New creates an Engine that reads values and definitions from reg.
// A nil registry is replaced with a fresh one holding only the system
// variables.
func New(reg *registry.Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = registry.New()
	}
	e := &Engine{
		reg:      reg,
		settings: config.DefaultSettings(),
		missing:  MissingKeep,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.scanner = placeholder.NewScanner(
		placeholder.WithMaxPlaceholders(e.settings.MaxPlaceholders),
		placeholder.WithMaxLength(e.settings.MaxPlaceholderLength),
	)
	e.evaluator = expr.New(
		expr.WithMaxDepth(e.settings.MaxExpressionDepth),
		expr.WithMaxLength(e.settings.MaxPlaceholderLength),
	)
	e.formatter = format.New(
		format.WithCurrencySymbol(e.settings.CurrencySymbol),
		format.WithDateFormat(e.settings.DateFormat),
	)

	e.metrics = observability.NoopMetrics{}
	if e.metricsEnabled {
		e.metrics = observability.NewMetricsRecorder()
	}
	e.spans = observability.NoopSpanManager{}
	if e.tracingEnabled {
		e.spans = observability.NewSpanManager()
	}
	return e
}

// Registry returns the registry the engine reads from.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// EvaluateVariables substitutes every placeholder in text. overrides take
// precedence over registry values for this call only; the registry is not
// modified. Text without placeholders is returned unchanged.
//
// Example:
//
//	reg := registry.New()
//	reg.SetValues(map[string]any{"cartValue": 150, "userName": "Ada"})
//	engine := textvars.New(reg)
//	engine.EvaluateVariables("Hi {userName}, {freeShippingThreshold - cartValue} to go", nil)
//	// "Hi Ada, 350 to go"
func (e *Engine) EvaluateVariables(text string, overrides map[string]any) string {
	return e.RenderContext(context.Background(), text, overrides)
}

// RenderContext is EvaluateVariables with a context for tracing.
func (e *Engine) RenderContext(ctx context.Context, text string, overrides map[string]any) string {
	out, _ := e.render(ctx, text, overrides)
	return out
}

// ContainsVariables reports whether text has at least one placeholder.
func (e *Engine) ContainsVariables(text string) bool {
	return len(e.scanner.Scan(text).Placeholders) > 0
}

// ExtractVariableNames returns the names referenced by the placeholders in
// text, in order of first appearance and without duplicates. The literals
// true and false are excluded, as are simple references whose name is not
// an identifier, such as {alert(1)}.
func (e *Engine) ExtractVariableNames(text string) []string {
	var names []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" || name == "true" || name == "false" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, p := range e.scanner.Scan(text).Placeholders {
		if p.Kind == placeholder.KindSimpleRef {
			if expr.IsIdentifier(p.Name) {
				add(p.Name)
			}
			continue
		}
		for _, name := range expr.Identifiers(p.Content) {
			add(name)
		}
	}
	return names
}

// EvaluateAll renders every string in texts with the same overrides.
func (e *Engine) EvaluateAll(texts []string, overrides map[string]any) []string {
	if texts == nil {
		return nil
	}
	out := make([]string, len(texts))
	for i, s := range texts {
		out[i] = e.EvaluateVariables(s, overrides)
	}
	return out
}

// EvaluateMap renders every string value of m, descending into nested maps
// and slices. Other values are copied as is.
//
// Example:
//
//	campaign := map[string]any{
//	    "title": "Hi {userFirstName}",
//	    "body":  map[string]any{"cta": "Only {freeShippingThreshold - cartValue} to go"},
//	    "priority": 3,
//	}
//	rendered := engine.EvaluateMap(campaign, nil)
func (e *Engine) EvaluateMap(m map[string]any, overrides map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = e.evaluateValue(v, overrides)
	}
	return out
}

func (e *Engine) evaluateValue(v any, overrides map[string]any) any {
	switch val := v.(type) {
	case string:
		return e.EvaluateVariables(val, overrides)
	case map[string]any:
		return e.EvaluateMap(val, overrides)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = e.evaluateValue(item, overrides)
		}
		return out
	case []string:
		return e.EvaluateAll(val, overrides)
	default:
		return v
	}
}

// renderState carries the per-call data of one render.
type renderState struct {
	ctx      context.Context
	snapshot map[string]any
	used     map[string]any
	warnings int
}

// render substitutes placeholders and returns the output along with the
// values the placeholders actually used.
func (e *Engine) render(ctx context.Context, text string, overrides map[string]any) (string, map[string]any) {
	if ctx == nil {
		ctx = context.Background()
	}
	done := observability.TimedOperation()
	ctx, span := e.spans.StartRenderSpan(ctx, len(text))

	st := &renderState{ctx: ctx, used: make(map[string]any)}
	res := e.scanner.Scan(text)
	for _, err := range res.Errors {
		e.emit(st, diag.FromError("", err))
	}

	out := text
	if len(res.Placeholders) > 0 {
		st.snapshot = e.snapshot(st, overrides)

		var b strings.Builder
		b.Grow(len(text))
		last := 0
		for _, p := range res.Placeholders {
			b.WriteString(text[last:p.Start])
			b.WriteString(e.substitute(st, p))
			last = p.End
		}
		b.WriteString(text[last:])
		out = b.String()
	}

	elapsed := done()
	e.spans.EndRenderSpan(span, len(res.Placeholders), st.warnings)
	e.metrics.RecordRender(ctx, elapsed, len(res.Placeholders))
	observability.LogRender(e.logger, len(text), len(res.Placeholders), st.warnings,
		float64(elapsed.Microseconds())/1000)
	return out, st.used
}

// snapshot merges registry values with overrides. Overrides for registered
// variables are coerced to the declared type; an override that does not
// coerce is used as given.
func (e *Engine) snapshot(st *renderState, overrides map[string]any) map[string]any {
	snap := e.reg.Values()
	for name, raw := range overrides {
		def, ok := e.reg.Definition(name)
		if !ok {
			snap[name] = raw
			continue
		}
		v, err := registry.Coerce(name, def.Type, raw)
		if err != nil {
			e.emit(st, diag.FromError(name, err))
			v = raw
		}
		snap[name] = v
	}
	return snap
}

// substitute renders one placeholder. A panic while rendering leaves the
// placeholder verbatim.
func (e *Engine) substitute(st *renderState, p placeholder.Placeholder) (out string) {
	kind := p.Kind.String()
	defer func() {
		if r := recover(); r != nil {
			observability.LogPanic(e.logger, p.Raw, r)
			e.emit(st, diag.Warning{
				Kind:    diag.KindInternal,
				Subject: p.Raw,
				Message: fmt.Sprintf("recovered panic: %v", r),
			})
			e.fallback(st, kind, p.Raw)
			out = p.Raw
		}
	}()

	var ok bool
	if p.Kind == placeholder.KindExpression {
		out, ok = e.substituteExpression(st, p)
	} else {
		out, ok = e.substituteRef(st, p)
	}

	if !ok {
		e.fallback(st, kind, p.Raw)
		return out
	}
	e.metrics.RecordPlaceholder(st.ctx, kind, observability.OutcomeSubstituted)
	return out
}

// fallback records a placeholder that was not substituted.
func (e *Engine) fallback(st *renderState, kind, raw string) {
	e.metrics.RecordPlaceholder(st.ctx, kind, observability.OutcomeFallback)
	e.spans.AddSpanEvent(st.ctx, "placeholder.fallback",
		attribute.String("placeholder.kind", kind),
		attribute.String("placeholder.raw", raw),
	)
}

func (e *Engine) substituteRef(st *renderState, p placeholder.Placeholder) (string, bool) {
	v, ok := st.snapshot[p.Name]
	if !ok {
		e.emit(st, diag.FromError(p.Name, &UnknownVariableError{Name: p.Name}))
		if e.missing == MissingEmpty {
			return "", false
		}
		return p.Raw, false
	}
	st.used[p.Name] = v

	var defp *registry.Definition
	if def, found := e.reg.Definition(p.Name); found {
		defp = &def
	}
	s, err := e.formatter.Format(v, defp, p.Format)
	if err != nil {
		e.emit(st, diag.FromError(p.Name, err))
	}
	return s, true
}

func (e *Engine) substituteExpression(st *renderState, p placeholder.Placeholder) (string, bool) {
	v, err := e.evaluator.Evaluate(p.Content, st.snapshot)
	if err != nil {
		e.emit(st, diag.FromError(p.Raw, err))
		return p.Raw, false
	}
	for _, name := range expr.Identifiers(p.Content) {
		st.used[name] = st.snapshot[name]
	}
	return v.String(), true
}

// emit logs, counts and delivers a warning.
func (e *Engine) emit(st *renderState, w diag.Warning) {
	st.warnings++
	observability.LogWarning(e.logger, w)
	e.metrics.RecordWarning(st.ctx, w.Kind)
	e.deliver(w)
}

// deliver calls the warning handler. A panicking handler is logged and
// otherwise ignored.
func (e *Engine) deliver(w diag.Warning) {
	defer func() {
		if r := recover(); r != nil {
			observability.LogPanic(e.logger, w.Subject, r)
		}
	}()
	e.warn.Emit(w)
}
