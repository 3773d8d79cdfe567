// Package calcerr provides the structured error type shared by the offcalc
// calculators.
//
// Every calculator fails the same way: synchronously, at the point where a
// precondition is violated, with a message naming that precondition. Errors
// carry a machine-readable Code so the CLI and the TUI can tell a usage error
// apart from anything else.
//
// # Usage
//
//	if diameter <= 0 {
//	    return 0, calcerr.New(calcerr.ErrCodeInvalidArgument, "diameter must be positive, got %g", diameter)
//	}
//
//	if errors.Is(err, calcerr.ErrInvalidArgument) {
//	    // report usage error
//	}
package calcerr

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// ErrCodeInvalidArgument marks a violated input precondition: a
	// non-positive dimension, a non-positive waterplane area or an
	// unsupported geometry or chain quality.
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
)

// ErrInvalidArgument matches any *Error carrying ErrCodeInvalidArgument when
// used with errors.Is.
var ErrInvalidArgument = &Error{Code: ErrCodeInvalidArgument}

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

// Is reports whether target is an *Error with the same code. It lets
// errors.Is(err, ErrInvalidArgument) match regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
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

// Invalid is shorthand for New(ErrCodeInvalidArgument, ...).
func Invalid(format string, args ...any) *Error {
	return New(ErrCodeInvalidArgument, format, args...)
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
