package query

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of a recoverable error.
type ErrorCode int

const (
	// ErrValidation indicates bad user input: a malformed expression, an
	// unknown column, an unsupported aggregation kind, an invalid sort
	// direction, or a structurally invalid input file.
	ErrValidation ErrorCode = iota + 1
	// ErrNotFound indicates the input file does not exist.
	ErrNotFound
	// ErrDecoding indicates the input file is not UTF-8 text or could not
	// be parsed as CSV.
	ErrDecoding
)

// Error is the structured error type returned for all recoverable
// failures. Use Code (or the Is* helpers) to programmatically distinguish
// error categories; the message is a ready-to-print user-facing
// diagnostic.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode
	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewValidationError returns a validation error with a formatted message.
func NewValidationError(format string, args ...interface{}) *Error {
	return &Error{Code: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError returns a not-found error with a formatted message.
func NewNotFoundError(format string, args ...interface{}) *Error {
	return &Error{Code: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewDecodingError returns a decoding error with a formatted message.
func NewDecodingError(format string, args ...interface{}) *Error {
	return &Error{Code: ErrDecoding, Message: fmt.Sprintf(format, args...)}
}

// IsValidation returns true if err is a validation error.
func IsValidation(err error) bool {
	return hasCode(err, ErrValidation)
}

// IsNotFound returns true if err indicates a missing input file.
func IsNotFound(err error) bool {
	return hasCode(err, ErrNotFound)
}

// IsDecoding returns true if err indicates an unreadable input file.
func IsDecoding(err error) bool {
	return hasCode(err, ErrDecoding)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
