// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an inbound request fails validation.
	// It is wrapped by ValidationError, so callers can match it with errors.Is.
	ErrValidation = errors.New("validation failed")
)

// Validation error codes. They are stable identifiers for logs and tests;
// the Message of a ValidationError is what clients see.
const (
	CodeNotJSON       = "not_json"
	CodeEmptyPrompt   = "empty_prompt"
	CodeInvalidCount  = "invalid_count"
	CodePromptTooLong = "prompt_too_long"
)

// ValidationError describes a client-caused problem with a generation request.
type ValidationError struct {
	// Code is one of the Code* constants.
	Code string
	// Message is a human-readable description safe to return to clients.
	Message string
}

// NewValidationError creates a ValidationError with the given code and message.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
