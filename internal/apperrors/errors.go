package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidDateRange indicates that a requested end date lies before its start date.
var ErrInvalidDateRange = errors.New("invalid date range: end before start")

// ErrAmbiguousLevel indicates that an account's hierarchy level could not be determined.
var ErrAmbiguousLevel = errors.New("ambiguous account level")

// ErrPartialSourceFailure indicates that one posting source could not be read.
var ErrPartialSourceFailure = errors.New("posting source unavailable")

// AppError carries an HTTP-ish status code alongside a wrapped infrastructure error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// SourceError records the failure of a single posting source.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap lets callers match both the sentinel and the underlying cause.
func (e *SourceError) Unwrap() []error {
	return []error{ErrPartialSourceFailure, e.Err}
}
