// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-mem library.

package api

import "fmt"

// Common errors used across the library. Every failure a pool or array can
// report wraps one of these sentinels, so callers dispatch with errors.Is.
var (
	ErrInvalidCapacity   = fmt.Errorf("capacity must be at least 1")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrAllocationFailure = fmt.Errorf("raw allocator exhausted")
	ErrCapacityOverflow  = fmt.Errorf("node capacity growth overflows")
	ErrOutOfRange        = fmt.Errorf("index out of range")
	ErrDoubleRelease     = fmt.Errorf("node already empty")
	ErrForeignPointer    = fmt.Errorf("pointer does not belong to any node")
	ErrPoolClosed        = fmt.Errorf("pool is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeAllocationFailure
	ErrCodeOverflow
	ErrCodeOutOfRange
	ErrCodeDoubleRelease
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the wrapped sentinel or underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewError creates a new structured error wrapping cause.
func NewError(code ErrorCode, cause error, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
		cause:   cause,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
