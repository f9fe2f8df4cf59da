package registry

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
)

// Sentinel errors.
var (
	// ErrCoercion indicates a value could not be converted to a variable's type.
	ErrCoercion = errors.New("value coercion failed")

	// ErrSystemVariable indicates an operation is not allowed on a system variable.
	ErrSystemVariable = errors.New("system variable")

	// ErrInvalidDefinition indicates a definition was rejected.
	ErrInvalidDefinition = errors.New("invalid variable definition")
)

// CoercionError reports a value that does not fit a variable's declared type.
type CoercionError struct {
	// Name is the variable name.
	Name string
	// Type is the declared type.
	Type Type
	// Value is the rejected raw value.
	Value any
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot use %#v as %s for %s", e.Value, e.Type, e.Name)
}

// Unwrap returns ErrCoercion for errors.Is support.
func (e *CoercionError) Unwrap() error {
	return ErrCoercion
}

// WarningKind implements diag.Kinded.
func (e *CoercionError) WarningKind() diag.Kind {
	return diag.KindCoercionFailed
}
