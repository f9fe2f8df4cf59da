package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
	"github.com/randalmurphal/textvars/pkg/textvars/observability"
)

// Registry is a typed store of variable definitions and their current values.
// It uses sync.RWMutex for read-heavy workloads: previews read far more
// often than editors write.
//
// No method panics or returns an error for bad input. Failures are reported
// through the warning handler and leave the registry unchanged.
type Registry struct {
	mu     sync.RWMutex
	defs   map[string]Definition
	values map[string]any
	order  []string
	system map[string]struct{}

	warn   diag.Handler
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithWarningHandler sets the handler that receives registry warnings.
func WithWarningHandler(h diag.Handler) Option {
	return func(r *Registry) {
		r.warn = h
	}
}

// WithLogger sets the logger for registry changes and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithClock sets the clock used to seed currentDate.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates a registry seeded with the system variables.
func New(opts ...Option) *Registry {
	r := &Registry{
		defs:   make(map[string]Definition),
		values: make(map[string]any),
		system: make(map[string]struct{}),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	var warnings []diag.Warning
	for _, def := range SystemDefinitions(r.now()) {
		r.system[def.Name] = struct{}{}
		warnings = append(warnings, r.registerLocked(def)...)
	}
	r.emit(warnings)
	return r
}

// Register adds or replaces a definition and seeds its value from the
// definition's default. Re-registering a name overwrites the definition and
// resets its value.
func (r *Registry) Register(def Definition) {
	r.mu.Lock()
	warnings := r.registerLocked(def)
	r.mu.Unlock()

	r.emit(warnings)
	observability.LogRegistryChange(r.logger, "register", def.Name)
}

// RegisterAll registers every definition in order.
func (r *Registry) RegisterAll(defs []Definition) {
	for _, def := range defs {
		r.Register(def)
	}
}

// registerLocked normalizes and stores def. Callers hold the write lock.
func (r *Registry) registerLocked(def Definition) []diag.Warning {
	def.Name = strings.TrimSpace(def.Name)
	if def.Name == "" {
		return []diag.Warning{{
			Kind:    diag.KindInvalidDefinition,
			Message: "definition has an empty name",
			Err:     ErrInvalidDefinition,
		}}
	}
	if def.Type == "" {
		def.Type = TypeString
	}
	if def.Category == "" {
		def.Category = CategoryCustom
	}
	if def.ID == "" {
		def.ID = uuid.NewString()
	}

	var warnings []diag.Warning
	value, err := Coerce(def.Name, def.Type, def.DefaultValue)
	if err != nil {
		warnings = append(warnings, diag.FromError(def.Name, err))
		value = zeroValue(def.Type)
	}
	def.DefaultValue = value

	if _, exists := r.defs[def.Name]; !exists {
		r.order = append(r.order, def.Name)
	}
	r.defs[def.Name] = def
	r.values[def.Name] = value
	return warnings
}

// SetValue coerces raw to the variable's declared type and stores it.
//
// An unparsable value leaves the previous value in place and emits a
// KindCoercionFailed warning. An unknown name registers a custom variable
// with a type inferred from raw and emits a KindImplicitRegistration warning.
func (r *Registry) SetValue(name string, raw any) {
	r.mu.Lock()
	warnings := r.setLocked(name, raw)
	r.mu.Unlock()

	r.emit(warnings)
}

// SetValues sets several values. Names are applied in sorted order so that
// warnings are emitted deterministically.
func (r *Registry) SetValues(values map[string]any) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var warnings []diag.Warning
	r.mu.Lock()
	for _, name := range names {
		warnings = append(warnings, r.setLocked(name, values[name])...)
	}
	r.mu.Unlock()

	r.emit(warnings)
}

// setLocked stores one value. Callers hold the write lock.
func (r *Registry) setLocked(name string, raw any) []diag.Warning {
	name = strings.TrimSpace(name)
	def, ok := r.defs[name]
	if !ok {
		t := InferType(raw)
		warnings := r.registerLocked(Definition{
			Name:         name,
			Type:         t,
			DefaultValue: raw,
			Category:     CategoryCustom,
		})
		if name != "" {
			warnings = append(warnings, diag.Warning{
				Kind:    diag.KindImplicitRegistration,
				Subject: name,
				Message: fmt.Sprintf("registered unknown variable as custom %s", t),
			})
		}
		return warnings
	}

	value, err := Coerce(name, def.Type, raw)
	if err != nil {
		return []diag.Warning{diag.FromError(name, err)}
	}
	r.values[name] = value
	return nil
}

// Value returns the current value of name.
func (r *Registry) Value(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[name]
	return v, ok
}

// Values returns a copy of all current values.
func (r *Registry) Values() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Definition returns the definition of name.
func (r *Registry) Definition(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Definitions returns all definitions in registration order,
// system variables first.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}

// ByCategory returns the definitions in cat, in registration order.
func (r *Registry) ByCategory(cat Category) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Definition
	for _, name := range r.order {
		if def := r.defs[name]; def.Category == cat {
			out = append(out, def)
		}
	}
	return out
}

// Has returns true if name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[name]
	return ok
}

// IsSystem returns true if name belongs to the fixed system set.
func (r *Registry) IsSystem(name string) bool {
	_, ok := r.system[name]
	return ok
}

// Len returns the number of registered variables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Remove deletes a custom variable and reports whether it was removed.
// System variables cannot be removed; attempting it emits a
// KindSystemVariable warning.
func (r *Registry) Remove(name string) bool {
	if r.IsSystem(name) {
		r.emit([]diag.Warning{{
			Kind:    diag.KindSystemVariable,
			Subject: name,
			Message: "system variables cannot be removed",
			Err:     ErrSystemVariable,
		}})
		return false
	}

	r.mu.Lock()
	_, ok := r.defs[name]
	if ok {
		r.deleteLocked(name)
	}
	r.mu.Unlock()

	if ok {
		observability.LogRegistryChange(r.logger, "remove", name)
	}
	return ok
}

// deleteLocked removes name from every index. Callers hold the write lock.
func (r *Registry) deleteLocked(name string) {
	delete(r.defs, name)
	delete(r.values, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// ResetToDefaults restores every variable's value to its default.
// Custom definitions are kept.
func (r *Registry) ResetToDefaults() {
	r.mu.Lock()
	for name, def := range r.defs {
		r.values[name] = def.DefaultValue
	}
	r.mu.Unlock()

	observability.LogRegistryChange(r.logger, "reset", "")
}

// ClearCustomVariables removes every variable outside the system set.
func (r *Registry) ClearCustomVariables() {
	r.mu.Lock()
	for _, name := range append([]string(nil), r.order...) {
		if !r.IsSystem(name) {
			r.deleteLocked(name)
		}
	}
	r.mu.Unlock()

	observability.LogRegistryChange(r.logger, "clear_custom", "")
}

// UpdateFormat changes the display format of name.
// Returns false if name is not registered.
func (r *Registry) UpdateFormat(name, format string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	def, ok := r.defs[name]
	if !ok {
		return false
	}
	def.Format = format
	r.defs[name] = def
	return true
}

// UpdateDefault changes the default value of name without touching its
// current value. Returns false if name is not registered or the value
// does not fit the declared type.
func (r *Registry) UpdateDefault(name string, value any) bool {
	r.mu.Lock()
	def, ok := r.defs[name]
	if !ok {
		r.mu.Unlock()
		return false
	}
	coerced, err := Coerce(name, def.Type, value)
	if err == nil {
		def.DefaultValue = coerced
		r.defs[name] = def
	}
	r.mu.Unlock()

	if err != nil {
		r.emit([]diag.Warning{diag.FromError(name, err)})
		return false
	}
	return true
}

// Range iterates over a snapshot of definitions and values in registration
// order. If fn returns false, iteration stops. It is safe to mutate the
// registry from fn.
func (r *Registry) Range(fn func(def Definition, value any) bool) {
	r.mu.RLock()
	defs := make([]Definition, 0, len(r.order))
	values := make([]any, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.defs[name])
		values = append(values, r.values[name])
	}
	r.mu.RUnlock()

	for i := range defs {
		if !fn(defs[i], values[i]) {
			return
		}
	}
}

// emit delivers warnings outside the lock so handlers may call back into
// the registry.
func (r *Registry) emit(warnings []diag.Warning) {
	for _, w := range warnings {
		observability.LogWarning(r.logger, w)
		r.warn.Emit(w)
	}
}

// zeroValue returns the storage zero value of t.
func zeroValue(t Type) any {
	switch {
	case t.IsNumeric():
		return 0.0
	case t == TypeBoolean:
		return false
	default:
		return ""
	}
}
