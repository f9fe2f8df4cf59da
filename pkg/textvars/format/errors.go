package format

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/textvars/pkg/textvars/diag"
)

// Sentinel errors.
var (
	// ErrInvalidDate indicates a value that could not be parsed as a date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNotNumber indicates a numeric pipe or type applied to a non-number.
	ErrNotNumber = errors.New("value is not a number")
)

// InvalidDateError reports a value the date formatter could not parse.
type InvalidDateError struct {
	Value any
}

// Error implements the error interface.
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q", fmt.Sprint(e.Value))
}

// Unwrap returns ErrInvalidDate for errors.Is support.
func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}

// WarningKind implements diag.Kinded.
func (e *InvalidDateError) WarningKind() diag.Kind {
	return diag.KindInvalidDate
}

// NotNumberError reports a numeric format applied to a non-numeric value.
type NotNumberError struct {
	Value any
	// Format is the pipe or type that required a number.
	Format string
}

// Error implements the error interface.
func (e *NotNumberError) Error() string {
	return fmt.Sprintf("%s: %q is not a number", e.Format, fmt.Sprint(e.Value))
}

// Unwrap returns ErrNotNumber for errors.Is support.
func (e *NotNumberError) Unwrap() error {
	return ErrNotNumber
}

// WarningKind implements diag.Kinded.
func (e *NotNumberError) WarningKind() diag.Kind {
	return diag.KindCoercionFailed
}
