package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Path resolution errors
	ErrInvalidEnvVar  ErrorCode = "INVALID_ENV_VAR"
	ErrInvalidNameRef ErrorCode = "INVALID_NAME_REF"
	ErrNoParent       ErrorCode = "NO_PARENT"

	// FileSystem errors
	ErrIO ErrorCode = "IO"

	// Reconciliation errors
	ErrLinkFailed ErrorCode = "LINK_FAILED"
)

// DotError represents a structured error with code and details
type DotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same code.
func (e *DotError) Is(target error) bool {
	var targetErr *DotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotError with the given code and message
func New(code ErrorCode, message string) *DotError {
	return &DotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotError {
	return &DotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotError
func Wrap(err error, code ErrorCode, message string) *DotError {
	if err == nil {
		return nil
	}
	return &DotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotError {
	if err == nil {
		return nil
	}
	return &DotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotError) WithDetail(key string, value interface{}) *DotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotErr *DotError
	if errors.As(err, &dotErr) {
		return dotErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotError
func GetErrorCode(err error) ErrorCode {
	var dotErr *DotError
	if errors.As(err, &dotErr) {
		return dotErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotError
func GetErrorDetails(err error) map[string]interface{} {
	var dotErr *DotError
	if errors.As(err, &dotErr) {
		return dotErr.Details
	}
	return nil
}

// Path errors. Each one corresponds to a failure the reconciler reports per
// link instead of aborting the run.

// InvalidEnvVar reports an environment reference in path that is not set.
func InvalidEnvVar(path, variable string) *DotError {
	return Newf(ErrInvalidEnvVar, "could not find environment variable %s in %s", variable, path).
		WithDetail("path", path).
		WithDetail("var", variable)
}

// InvalidNameRef reports a {{name}} reference to an app that is not registered.
func InvalidNameRef(path, name string) *DotError {
	return Newf(ErrInvalidNameRef, "invalid name reference %s in %s", name, path).
		WithDetail("path", path).
		WithDetail("name", name)
}

// NoParent reports a link path that has no parent directory.
func NoParent(path string) *DotError {
	return Newf(ErrNoParent, "%s must have a parent directory", path).
		WithDetail("path", path)
}

// IO wraps a filesystem failure on path.
func IO(err error, path, message string) *DotError {
	e := Wrap(err, ErrIO, message)
	if e == nil {
		return nil
	}
	return e.WithDetail("path", path)
}
