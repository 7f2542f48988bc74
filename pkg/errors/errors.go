// Package errors provides structured error types for the data portal.
//
// Every failure surfaced by a data manager carries a [Code] so hosts can
// tell configuration problems from missing files or unsupported operations
// without matching on message text.
//
// # Error Codes
//
//   - IO / FILE_NOT_FOUND: the data source cannot be opened or read
//   - INVALID_*: malformed input (options, dataset files, names)
//   - MISSING_COMPONENT: a model component has no entry in the data
//   - NOT_IMPLEMENTED / UNSUPPORTED: the manager cannot perform the operation
//   - UNKNOWN_FORMAT: no manager is registered for a format
//
// # Usage
//
//	err := errors.New(errors.ErrCodeIO, "no filename specified")
//	if errors.Is(err, errors.ErrCodeIO) {
//	    // Handle configuration error
//	}
//
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "create %s", path)
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidName    Code = "INVALID_NAME"
	ErrCodeInvalidDataset Code = "INVALID_DATASET"

	// Data source errors
	ErrCodeIO               Code = "IO_ERROR"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeMissingComponent Code = "MISSING_COMPONENT"

	// Capability errors
	ErrCodeNotImplemented Code = "NOT_IMPLEMENTED"
	ErrCodeUnsupported    Code = "UNSUPPORTED"
	ErrCodeUnknownFormat  Code = "UNKNOWN_FORMAT"
	ErrCodeDuplicate      Code = "DUPLICATE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsIO reports whether err is an I/O-class failure, covering both
// configuration problems and missing files.
func IsIO(err error) bool {
	switch GetCode(err) {
	case ErrCodeIO, ErrCodeFileNotFound:
		return true
	}
	return false
}
