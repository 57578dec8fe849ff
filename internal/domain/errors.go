package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUpload   = errors.New("invalid upload")
	ErrInvalidParams   = errors.New("invalid parameters")
	ErrProviderFailure = errors.New("provider failure")
)

// ValidationError reports a rejected input before any upstream call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidParams || target == ErrInvalidUpload
}

// ServiceError wraps a failure from an external provider so handlers can
// report which side of the pipeline broke without inspecting SDK error types.
type ServiceError struct {
	Provider string
	Err      error
}

func NewServiceError(provider string, err error) *ServiceError {
	return &ServiceError{Provider: provider, Err: err}
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func (e *ServiceError) Is(target error) bool { return target == ErrProviderFailure }
