// Package errors provides domain-specific error types and sentinel errors
// for the chat pipeline, translation providers and account store.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrEmptyMessage indicates a chat message that is missing, not a string, or blank.
	ErrEmptyMessage = errors.New("empty message")

	// ErrInvalidInput indicates the caller provided malformed input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimitExceeded indicates rate limit has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = errors.New("operation timed out")

	// ErrTranslationFailed indicates every configured translator failed.
	ErrTranslationFailed = errors.New("translation failed")

	// ErrHandlerPanic marks a reply handler that panicked.
	ErrHandlerPanic = errors.New("handler panicked")

	// ErrUserExists indicates a username is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials indicates a failed password check.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// TranslationError records which provider failed and how.
type TranslationError struct {
	Provider   string
	Target     string
	StatusCode int
	Err        error
}

func (e *TranslationError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("translation error (provider=%s, target=%s, status=%d): %v", e.Provider, e.Target, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("translation error (provider=%s, target=%s): %v", e.Provider, e.Target, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// NewTranslationError creates a new translation error.
func NewTranslationError(provider, target string, statusCode int, err error) *TranslationError {
	return &TranslationError{
		Provider:   provider,
		Target:     target,
		StatusCode: statusCode,
		Err:        err,
	}
}
