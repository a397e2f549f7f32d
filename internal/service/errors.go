package service

import (
	"errors"
	"fmt"
)

// ErrNilResult indicates the generator returned neither a result nor an error.
var ErrNilResult = errors.New("generator returned no result")

// ServiceError wraps errors from the flashcard service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "normalize", "generate")
	Operation string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("flashcard service %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError, or returns nil for a nil err.
func NewServiceError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Operation: operation, Err: err}
}
