package diag

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type kindedErr struct{ kind Kind }

func (e *kindedErr) Error() string     { return "kinded" }
func (e *kindedErr) WarningKind() Kind { return e.kind }

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknownVariable, "unknown_variable"},
		{KindUnsafeExpression, "unsafe_expression"},
		{KindEvaluationError, "evaluation_error"},
		{KindInvalidDate, "invalid_date"},
		{KindNestedPlaceholder, "nested_placeholder"},
		{KindLimitExceeded, "limit_exceeded"},
		{KindCoercionFailed, "coercion_failed"},
		{KindImplicitRegistration, "implicit_registration"},
		{KindSystemVariable, "system_variable"},
		{KindInvalidDefinition, "invalid_definition"},
		{KindInternal, "internal"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind(%d).String() = %s, want %s", tt.kind, got, tt.expected)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"nil error", nil, KindInternal},
		{"kinded error", &kindedErr{kind: KindInvalidDate}, KindInvalidDate},
		{"wrapped kinded error", fmt.Errorf("render: %w", &kindedErr{kind: KindUnsafeExpression}), KindUnsafeExpression},
		{"plain error", errors.New("boom"), KindEvaluationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestFromError(t *testing.T) {
	err := &kindedErr{kind: KindCoercionFailed}
	w := FromError("cartValue", err)

	assert.Equal(t, KindCoercionFailed, w.Kind)
	assert.Equal(t, "cartValue", w.Subject)
	assert.Equal(t, "kinded", w.Message)
	assert.Same(t, err, w.Err)
	assert.Equal(t, "coercion_failed: cartValue: kinded", w.String())
}

func TestWarningStringWithoutSubject(t *testing.T) {
	w := Warning{Kind: KindLimitExceeded, Message: "too many placeholders"}
	assert.Equal(t, "limit_exceeded: too many placeholders", w.String())
}

func TestHandlerEmitNil(t *testing.T) {
	var h Handler
	assert.NotPanics(t, func() {
		h.Emit(Warning{Kind: KindInternal})
	})
}

func TestCollector(t *testing.T) {
	var c Collector
	h := Handler(c.Handle)

	h.Emit(Warning{Kind: KindUnknownVariable, Subject: "a"})
	h.Emit(Warning{Kind: KindInvalidDate, Subject: "b"})

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has(KindUnknownVariable))
	assert.False(t, c.Has(KindUnsafeExpression))

	ws := c.Warnings()
	assert.Equal(t, "a", ws[0].Subject)
	assert.Equal(t, "b", ws[1].Subject)

	// Returned slice is a copy.
	ws[0].Subject = "changed"
	assert.Equal(t, "a", c.Warnings()[0].Subject)

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestCollectorConcurrent(t *testing.T) {
	var c Collector
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Handle(Warning{Kind: KindInternal})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}
