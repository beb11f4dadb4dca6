// Package errcode provides layered error codes for the settings library.
// Error code format: MMBBBB (MM = module code 2 digits, BBBB = business code 4 digits)
package errcode

import (
	"fmt"
)

// Error is a layered error code.
// Supports error chaining, dynamic messages and context data.
type Error struct {
	module string         // Module name (settings, validator)
	code   int            // Complete error code (MMBBBB, e.g., 100001)
	msg    string         // Default message
	data   map[string]any // context data (source path, key path, variable name)
	cause  error          // Original error (error chain)
}

// New creates a layered error code.
// moduleCode: module code (10-99)
// businessCode: business code (0001-9999)
// module: module name (settings, validator)
// msg: default message
func New(moduleCode, businessCode int, module, msg string) *Error {
	return &Error{
		module: module,
		code:   moduleCode*10000 + businessCode,
		msg:    msg,
		data:   make(map[string]any),
	}
}

// Implement error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Code gets error code
func (e *Error) Code() int {
	return e.code
}

// Module gets module name
func (e *Error) Module() string {
	return e.module
}

// Message gets error message
func (e *Error) Message() string {
	return e.msg
}

// Data retrieves context data
func (e *Error) Data() map[string]any {
	return e.data
}

// Cause gets original error
func (e *Error) Cause() error {
	return e.cause
}

// Unwrap supports Go 1.13+ error chains
func (e *Error) Unwrap() error {
	return e.cause
}

// WithMsg replaces the error message (returns a new instance, does not modify the original)
func (e *Error) WithMsg(msg string) *Error {
	clone := *e
	clone.msg = msg
	return &clone
}

// WithMsgf format-replaces the error message (returns a new instance)
func (e *Error) WithMsgf(format string, args ...any) *Error {
	clone := *e
	clone.msg = fmt.Sprintf(format, args...)
	return &clone
}

// WithData adds single context data (returns a new instance)
func (e *Error) WithData(key string, value any) *Error {
	clone := *e
	clone.data = e.cloneData()
	clone.data[key] = value
	return &clone
}

// WithFields batch-adds context data (returns a new instance)
func (e *Error) WithFields(fields map[string]any) *Error {
	clone := *e
	clone.data = e.cloneData()
	for k, v := range fields {
		clone.data[k] = v
	}
	return &clone
}

// Wrap wraps the original error (returns a new instance)
func (e *Error) Wrap(cause error) *Error {
	if cause == nil {
		return e
	}
	clone := *e
	clone.cause = cause
	return &clone
}

// Wrapf wraps the original error and formats the message (returns a new instance)
func (e *Error) Wrapf(cause error, format string, args ...any) *Error {
	if cause == nil {
		return e.WithMsgf(format, args...)
	}
	clone := *e
	clone.cause = cause
	clone.msg = fmt.Sprintf(format, args...)
	return &clone
}

// Is implements support for errors.Is() (equality by code)
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.code == t.code
}

// cloneData clones context data (shallow copy of the map)
func (e *Error) cloneData() map[string]any {
	data := make(map[string]any, len(e.data))
	for k, v := range e.data {
		data[k] = v
	}
	return data
}

// String returns an error string representation (for debugging)
func (e *Error) String() string {
	if e.cause != nil {
		return fmt.Sprintf("Error{code:%d, module:%s, msg:%s, cause:%v}",
			e.code, e.module, e.msg, e.cause)
	}
	return fmt.Sprintf("Error{code:%d, module:%s, msg:%s}",
		e.code, e.module, e.msg)
}
