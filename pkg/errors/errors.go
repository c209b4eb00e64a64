// Package errors provides structured error types for the rackroom
// application boundary layers (CLI and HTTP API).
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - OUT_OF_BOUNDS / OVERLAP / DUPLICATE_ID: Placement rejections
//   - NOT_FOUND_*: Resource not found
//   - STORE_*: Persistence backend failures
//   - INTERNAL_*: Unexpected internal errors
//
// The core engine (pkg/plan, pkg/ladder) reports outcomes through its
// own sentinel errors; [FromPlacement] translates those into coded
// errors at the boundary. Placement rejections are expected outcomes of
// interactive use, never faults.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "rack units must be positive: %d", units)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStore, origErr, "failed to save plan %s", roomID)
package errors

import (
	"errors"
	"fmt"

	"github.com/matzehuels/rackroom/pkg/ladder"
	"github.com/matzehuels/rackroom/pkg/plan"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Placement rejections
	ErrCodeOutOfBounds Code = "OUT_OF_BOUNDS"
	ErrCodeOverlap     Code = "OVERLAP"
	ErrCodeDuplicateID Code = "DUPLICATE_ID"

	// Resource not found errors
	ErrCodeNotFound          Code = "NOT_FOUND"
	ErrCodeRoomNotFound      Code = "ROOM_NOT_FOUND"
	ErrCodeFootprintNotFound Code = "FOOTPRINT_NOT_FOUND"
	ErrCodeSectionNotFound   Code = "SECTION_NOT_FOUND"
	ErrCodeLadderNotFound    Code = "LADDER_NOT_FOUND"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"

	// Persistence errors
	ErrCodeStore Code = "STORE_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// FromPlacement translates a core engine sentinel error into a coded
// Error for the CLI and API boundary. Unknown errors are classified as
// internal; nil passes through unchanged.
func FromPlacement(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, plan.ErrOutOfBounds):
		return Wrap(ErrCodeOutOfBounds, err, "placement out of bounds")
	case errors.Is(err, plan.ErrOverlap):
		return Wrap(ErrCodeOverlap, err, "placement overlaps occupied tiles")
	case errors.Is(err, plan.ErrDuplicateID):
		return Wrap(ErrCodeDuplicateID, err, "id already in use")
	case errors.Is(err, plan.ErrNotFound):
		return Wrap(ErrCodeFootprintNotFound, err, "no such footprint")
	case errors.Is(err, plan.ErrInvalidConfig), errors.Is(err, ladder.ErrInvalidConfig):
		return Wrap(ErrCodeInvalidConfig, err, "invalid configuration")
	case errors.Is(err, ladder.ErrNotFound):
		return Wrap(ErrCodeSectionNotFound, err, "no such section")
	case errors.Is(err, ladder.ErrEmpty):
		return Wrap(ErrCodeSectionNotFound, err, "ladder has no sections")
	default:
		return Wrap(ErrCodeInternal, err, "placement failed")
	}
}
