// Package diag provides the warning taxonomy shared by the textvars packages.
//
// Nothing in textvars fails loudly: an unknown variable, an unsafe expression
// or an unparsable date degrades to a fallback value and a Warning. Kind
// classifies those warnings so hosts can decide which ones to surface.
package diag

import "errors"

// Kind identifies the class of a non-fatal failure.
type Kind int

const (
	// KindUnknownVariable indicates a placeholder referenced a name that is
	// not registered and not supplied as an override.
	KindUnknownVariable Kind = iota

	// KindUnsafeExpression indicates an expression referenced an identifier
	// outside the known variable set. The expression was never evaluated.
	KindUnsafeExpression

	// KindEvaluationError indicates a syntax or runtime failure while
	// evaluating an expression.
	KindEvaluationError

	// KindInvalidDate indicates a date value could not be parsed.
	KindInvalidDate

	// KindNestedPlaceholder indicates a '{' appeared inside an open placeholder.
	KindNestedPlaceholder

	// KindLimitExceeded indicates input exceeded a configured size limit.
	KindLimitExceeded

	// KindCoercionFailed indicates a value could not be coerced to the
	// declared type of its variable. The previous value was kept.
	KindCoercionFailed

	// KindImplicitRegistration indicates a value was set for an unknown name
	// and a custom variable was registered for it.
	KindImplicitRegistration

	// KindSystemVariable indicates an attempt to remove a system variable.
	KindSystemVariable

	// KindInvalidDefinition indicates a variable definition was rejected,
	// for example because its name is empty.
	KindInvalidDefinition

	// KindInternal indicates a recovered panic. It should never happen.
	KindInternal
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnknownVariable:
		return "unknown_variable"
	case KindUnsafeExpression:
		return "unsafe_expression"
	case KindEvaluationError:
		return "evaluation_error"
	case KindInvalidDate:
		return "invalid_date"
	case KindNestedPlaceholder:
		return "nested_placeholder"
	case KindLimitExceeded:
		return "limit_exceeded"
	case KindCoercionFailed:
		return "coercion_failed"
	case KindImplicitRegistration:
		return "implicit_registration"
	case KindSystemVariable:
		return "system_variable"
	case KindInvalidDefinition:
		return "invalid_definition"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Kinded is implemented by errors that know their warning kind.
type Kinded interface {
	error
	WarningKind() Kind
}

// KindOf determines the warning kind of err.
// Errors that do not carry a kind are reported as KindEvaluationError.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var k Kinded
	if errors.As(err, &k) {
		return k.WarningKind()
	}
	return KindEvaluationError
}
