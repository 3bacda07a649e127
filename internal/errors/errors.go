// Package errors provides unified error handling with structured error codes.
// Codes classify failures so callers can react without matching on strings.
package errors

import "fmt"

// Code identifies a failure class.
type Code int

const (
	CodeUnknown Code = iota
	CodeInternal
	CodeInvalidRegion  // capture rectangle has zero or negative extent
	CodeInvalidColumns // column count outside the binding table's domain
	CodeMalformedFrame // empty grid, ragged rows, or non-binary samples
	CodeCaptureFailed  // screen grab collaborator failed
	CodeInjectFailed   // OS key injection failed
	CodeConfigInvalid  // unusable configuration value
)

// String returns the code's symbolic name.
func (c Code) String() string {
	switch c {
	case CodeInternal:
		return "INTERNAL"
	case CodeInvalidRegion:
		return "INVALID_REGION"
	case CodeInvalidColumns:
		return "INVALID_COLUMNS"
	case CodeMalformedFrame:
		return "MALFORMED_FRAME"
	case CodeCaptureFailed:
		return "CAPTURE_FAILED"
	case CodeInjectFailed:
		return "INJECT_FAILED"
	case CodeConfigInvalid:
		return "CONFIG_INVALID"
	default:
		return "UNKNOWN"
	}
}

// AppError is the base error type with structured error code and metadata.
type AppError struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
	if len(e.Metadata) > 0 {
		s += fmt.Sprintf(" %v", e.Metadata)
	}
	if e.Cause != nil {
		s += fmt.Sprintf(" caused by: %v", e.Cause)
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error { return e.Cause }

// New creates a new AppError with the given code and message.
func New(code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

// Newf creates a new AppError with formatted message.
func Newf(code Code, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError.
func Wrap(err error, code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg, Cause: err}
}

// Wrapf wraps an existing error with formatted message.
func Wrapf(err error, code Code, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// WithMetadata adds metadata to an AppError.
func (e *AppError) WithMetadata(key, value string) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
	return e
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code Code) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}
