package diag

import (
	"fmt"
	"sync"
)

// Warning describes a non-fatal failure and the fallback that was applied.
type Warning struct {
	// Kind classifies the failure.
	Kind Kind
	// Subject is the variable name or raw placeholder text involved.
	Subject string
	// Message is a human readable description.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// String formats the warning for logs and test output.
func (w Warning) String() string {
	if w.Subject == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", w.Kind, w.Subject, w.Message)
}

// FromError builds a warning whose kind and message come from err.
func FromError(subject string, err error) Warning {
	return Warning{
		Kind:    KindOf(err),
		Subject: subject,
		Message: err.Error(),
		Err:     err,
	}
}

// Handler receives warnings as they are emitted.
type Handler func(Warning)

// Emit calls h with w. A nil handler discards the warning.
func (h Handler) Emit(w Warning) {
	if h == nil {
		return
	}
	h(w)
}

// Collector accumulates warnings. It is safe for concurrent use.
//
// Example:
//
//	var c diag.Collector
//	reg := registry.New(registry.WithWarningHandler(c.Handle))
//	reg.SetValue("cartValue", "abc")
//	c.Warnings() // [coercion_failed: cartValue: ...]
type Collector struct {
	mu       sync.Mutex
	warnings []Warning
}

// Handle records w. Its signature matches Handler.
func (c *Collector) Handle(w Warning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, w)
}

// Warnings returns a copy of the recorded warnings in emission order.
func (c *Collector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Has reports whether a warning of kind k was recorded.
func (c *Collector) Has(k Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range c.warnings {
		if w.Kind == k {
			return true
		}
	}
	return false
}

// Len returns the number of recorded warnings.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warnings)
}

// Reset discards all recorded warnings.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = nil
}
