package options

import (
	"errors"
	"fmt"
)

// ValidationError reports an option definition that cannot be used, such as
// an initial value outside its bounds. It is a fatal configuration error.
type ValidationError struct {
	Field   string // Offending field, e.g. "clock.hours" (may be empty)
	Message string // Human-readable description
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("Validation Error: %s", e.Message)
	}
	return fmt.Sprintf("Validation Error: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error (or anything it wraps) is a validation error
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
