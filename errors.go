package wordgraph

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

// Error codes returned by the graph and its collaborators.
const (
	// ErrCodeInvalidState is returned when a word is inserted into, or
	// Minimize is called on, a graph that is already minimized.
	ErrCodeInvalidState Code = "INVALID_STATE"

	// ErrCodeInvalidArgument is returned by Fuse for an empty set, unknown
	// nodes, or nodes of differing acceptance.
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"

	// ErrCodeInternalInvariant is returned when two nodes being fused
	// disagree on the target of one symbol. It means the grouping that
	// selected them was wrong and is never retried.
	ErrCodeInternalInvariant Code = "INTERNAL_INVARIANT_VIOLATION"

	// ErrCodeUnsupportedTraversal guards Traverse against unknown modes.
	ErrCodeUnsupportedTraversal Code = "UNSUPPORTED_TRAVERSAL_MODE"

	// ErrCodeInvalidInput is used by loaders and the command line.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
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

// NewError creates an Error with the given code and formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates an Error wrapping cause.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether any error in err's chain is an *Error with the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from err, or "" if err is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
