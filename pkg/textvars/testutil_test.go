package textvars

import (
	"testing"
	"time"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
	"github.com/randalmurphal/textvars/pkg/textvars/registry"
)

var fixedNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

// newTestEngine returns an engine over a fresh registry with a fixed clock,
// and a collector receiving the engine's warnings.
func newTestEngine(t *testing.T, opts ...Option) (*Engine, *diag.Collector) {
	t.Helper()
	reg := registry.New(registry.WithClock(func() time.Time { return fixedNow }))
	c := &diag.Collector{}
	opts = append([]Option{WithWarningHandler(c.Handle)}, opts...)
	return New(reg, opts...), c
}
