package textvars

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
)

// ErrUnknownVariable indicates a placeholder referenced a variable that is
// neither registered nor overridden.
var ErrUnknownVariable = errors.New("unknown variable")

// UnknownVariableError reports an unresolved simple reference.
type UnknownVariableError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %q", e.Name)
}

// Unwrap returns ErrUnknownVariable for errors.Is support.
func (e *UnknownVariableError) Unwrap() error {
	return ErrUnknownVariable
}

// WarningKind implements diag.Kinded.
func (e *UnknownVariableError) WarningKind() diag.Kind {
	return diag.KindUnknownVariable
}
