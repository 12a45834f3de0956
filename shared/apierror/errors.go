// Package apierror defines the error types surfaced by the API layers.
package apierror

import "strings"

// ValidationError is returned when a request payload fails a validation rule.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, ", ")
}

// NewValidationError creates a ValidationError with the given reasons.
func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}

// StoreError wraps a persistence failure. Message is the client-facing text,
// Err holds the underlying driver error for server-side logging only.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError with a fixed client message.
func NewStoreError(message string, err error) *StoreError {
	return &StoreError{Message: message, Err: err}
}

// NotFoundError is raised by the service layer for empty-collection results.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// BadRequestError carries an expected negative outcome back to the client.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// NewBadRequestError creates a BadRequestError.
func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}
