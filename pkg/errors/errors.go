// Package errors provides structured error types for floatpos.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine, scene loader and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (placement, strategy, scene)
//   - PLATFORM_*: A host platform failed or broke its measurement contract
//   - RESET_LIMIT: The middleware pipeline did not converge
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPlacement, "invalid placement: %q", p)
//	if errors.Is(err, errors.ErrCodeInvalidPlacement) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMiddleware, origErr, "middleware %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidPlacement Code = "INVALID_PLACEMENT"
	ErrCodeInvalidStrategy  Code = "INVALID_STRATEGY"
	ErrCodeInvalidScene     Code = "INVALID_SCENE"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Host platform errors
	ErrCodePlatform         Code = "PLATFORM_ERROR"
	ErrCodePlatformContract Code = "PLATFORM_CONTRACT"

	// Pipeline errors
	ErrCodeMiddleware Code = "MIDDLEWARE_FAILED"
	ErrCodeResetLimit Code = "RESET_LIMIT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message and its causes without code prefixes.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}

// ResetLimitError reports a middleware pipeline that kept requesting resets.
type ResetLimitError struct {
	Limit      int    // Configured maximum number of resets
	Middleware string // Name of the middleware that requested the last reset
}

// Error implements the error interface.
func (e *ResetLimitError) Error() string {
	return fmt.Sprintf("reset limit of %d exceeded (last reset requested by %q)", e.Limit, e.Middleware)
}

// Code returns the error code for this error type.
func (e *ResetLimitError) Code() Code {
	return ErrCodeResetLimit
}
