// Package errors provides coded errors for stable matching in tests
// and exit handling.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrThemeLoad   ErrorCode = "THEME_LOAD"

	// Input errors
	ErrInputOpen   ErrorCode = "INPUT_OPEN"
	ErrInputParse  ErrorCode = "INPUT_PARSE"
	ErrInputFormat ErrorCode = "INPUT_FORMAT"

	// Output errors
	ErrOutputWrite  ErrorCode = "OUTPUT_WRITE"
	ErrOutputCreate ErrorCode = "OUTPUT_CREATE"
	ErrAborted      ErrorCode = "ABORTED"
)

// TabcatError is a structured error with a code and optional wrapped
// cause.
type TabcatError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface
func (e *TabcatError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TabcatError) Unwrap() error {
	return e.Wrapped
}

// Is matches two TabcatErrors by code
func (e *TabcatError) Is(target error) bool {
	var targetErr *TabcatError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TabcatError with the given code and message
func New(code ErrorCode, message string) *TabcatError {
	return &TabcatError{Code: code, Message: message}
}

// Newf creates a new TabcatError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TabcatError {
	return &TabcatError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error. Wrapping nil returns nil.
func Wrap(err error, code ErrorCode, message string) *TabcatError {
	if err == nil {
		return nil
	}
	return &TabcatError{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TabcatError {
	if err == nil {
		return nil
	}
	return &TabcatError{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// CodeOf returns the code of err when it is a TabcatError, ErrUnknown
// otherwise.
func CodeOf(err error) ErrorCode {
	var terr *TabcatError
	if errors.As(err, &terr) {
		return terr.Code
	}
	return ErrUnknown
}
