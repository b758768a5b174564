// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Field-level details are carried by FieldError, which wraps this sentinel.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// FieldError describes a validation failure on a single input field.
// The Field name matches the JSON field of the request payload (e.g. "ano"),
// and Message is the user-facing text returned in 422 responses.
type FieldError struct {
	Field   string
	Message string
}

// NewFieldError creates a FieldError for the given field and message.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap ties every FieldError to ErrValidation so callers can use
// errors.Is(err, ErrValidation) without caring about the specific field.
func (e *FieldError) Unwrap() error {
	return ErrValidation
}
