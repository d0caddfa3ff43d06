// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with contextual information and
//              metadata. This provides a structured error handling system that
//              maintains compatibility with Go's standard error interface while
//              adding error codes, operations, and key-value details.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with contextual errors

package error

import (
	"encoding/json"
	"fmt"
	"time"
)

// Error represents a structured error with code, operation, and metadata
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	timestamp time.Time

	// Context and metadata
	details   map[string]interface{}
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If err is already our Error type, preserve its information
	if lfErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     lfErr,
			code:      lfErr.code,
			timestamp: time.Now(),
			details:   make(map[string]interface{}),
			operation: lfErr.operation,
		}
		// Copy details from the original error
		for k, v := range lfErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	// Wrap standard error
	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// RootCause returns the deepest error in the chain
func (e *Error) RootCause() error {
	var current error = e
	var last error = e

	for current != nil {
		last = current
		if lfErr, ok := current.(*Error); ok {
			current = lfErr.cause
		} else {
			break
		}
	}

	return last
}

// String returns a detailed string representation of the error
func (e *Error) String() string {
	s := fmt.Sprintf("[%s] %s", e.code, e.message)
	if e.operation != "" {
		s += fmt.Sprintf(" (operation: %s)", e.operation)
	}
	if e.cause != nil {
		s += fmt.Sprintf(" caused by: %s", e.cause.Error())
	}
	return s
}

// MarshalJSON implements custom JSON marshaling for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if len(e.details) > 0 {
		data["details"] = e.details
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	return json.Marshal(data)
}

// HasCode checks if an error has a specific code
func HasCode(err error, code Code) bool {
	if lfErr, ok := err.(*Error); ok {
		return lfErr.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if not a lazyfactory error
func GetCode(err error) Code {
	if lfErr, ok := err.(*Error); ok {
		return lfErr.code
	}
	return CodeUnknown
}
