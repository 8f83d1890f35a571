package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports an input shape the engine cannot price: missing or
// non-positive base dimensions, unknown references. It is the only error
// class raised out of a breakdown computation; formula and lookup failures
// degrade to zero contributions instead.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
