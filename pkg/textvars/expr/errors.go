package expr

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
)

// Sentinel errors.
var (
	// ErrUnsafe indicates an expression referenced an unknown identifier.
	ErrUnsafe = errors.New("unsafe expression")

	// ErrSyntax indicates an expression could not be tokenized or parsed.
	ErrSyntax = errors.New("expression syntax error")

	// ErrRuntime indicates an expression failed during evaluation.
	ErrRuntime = errors.New("expression evaluation failed")
)

// UnsafeError reports the first identifier that did not resolve.
type UnsafeError struct {
	Expr string
	Name string
}

// Error implements the error interface.
func (e *UnsafeError) Error() string {
	return fmt.Sprintf("unknown identifier %q in expression %q", e.Name, e.Expr)
}

// Unwrap returns ErrUnsafe for errors.Is support.
func (e *UnsafeError) Unwrap() error {
	return ErrUnsafe
}

// WarningKind implements diag.Kinded.
func (e *UnsafeError) WarningKind() diag.Kind {
	return diag.KindUnsafeExpression
}

// SyntaxError reports a lexical or grammatical error.
type SyntaxError struct {
	Expr string
	// Pos is the byte offset of the offending input.
	Pos int
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d in %q: %s", e.Pos, e.Expr, e.Msg)
}

// Unwrap returns ErrSyntax for errors.Is support.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// WarningKind implements diag.Kinded.
func (e *SyntaxError) WarningKind() diag.Kind {
	return diag.KindEvaluationError
}

// RuntimeError reports an evaluation failure such as division by zero
// or arithmetic on a non-number.
type RuntimeError struct {
	Expr string
	Pos  int
	Msg  string
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("evaluation error at %d in %q: %s", e.Pos, e.Expr, e.Msg)
}

// Unwrap returns ErrRuntime for errors.Is support.
func (e *RuntimeError) Unwrap() error {
	return ErrRuntime
}

// WarningKind implements diag.Kinded.
func (e *RuntimeError) WarningKind() diag.Kind {
	return diag.KindEvaluationError
}
