package placeholder

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
)

// Sentinel errors.
var (
	// ErrNestedBrace indicates a '{' inside an open placeholder.
	ErrNestedBrace = errors.New("nested placeholder braces are not supported")

	// ErrLimit indicates a scan limit was exceeded.
	ErrLimit = errors.New("placeholder limit exceeded")
)

// NestedBraceError reports a region that contains nested braces.
// The region is left verbatim.
type NestedBraceError struct {
	// Offset is the byte offset of the outer '{'.
	Offset int
	// Text is the rejected region.
	Text string
}

// Error implements the error interface.
func (e *NestedBraceError) Error() string {
	return fmt.Sprintf("nested '{' in placeholder at offset %d: %q", e.Offset, e.Text)
}

// Unwrap returns ErrNestedBrace for errors.Is support.
func (e *NestedBraceError) Unwrap() error {
	return ErrNestedBrace
}

// WarningKind implements diag.Kinded.
func (e *NestedBraceError) WarningKind() diag.Kind {
	return diag.KindNestedPlaceholder
}

// LimitError reports a placeholder skipped because of a scan limit.
type LimitError struct {
	// Limit names the exceeded limit: "count" or "length".
	Limit string
	// Max is the configured maximum.
	Max int
	// Offset is the byte offset of the first skipped placeholder.
	Offset int
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	return fmt.Sprintf("placeholder %s limit %d exceeded at offset %d", e.Limit, e.Max, e.Offset)
}

// Unwrap returns ErrLimit for errors.Is support.
func (e *LimitError) Unwrap() error {
	return ErrLimit
}

// WarningKind implements diag.Kinded.
func (e *LimitError) WarningKind() diag.Kind {
	return diag.KindLimitExceeded
}
