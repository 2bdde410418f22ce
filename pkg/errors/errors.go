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

	// Rule-set errors
	ErrRuleSetMalformed ErrorCode = "RULESET_MALFORMED"
	ErrPatternInvalid   ErrorCode = "PATTERN_INVALID"
	ErrPathInvalid      ErrorCode = "PATH_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Documentation errors
	ErrDocNotFound ErrorCode = "DOC_NOT_FOUND"
	ErrDocAccess   ErrorCode = "DOC_ACCESS"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// DocrulesError represents a structured error with code and details
type DocrulesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DocrulesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DocrulesError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DocrulesError) Is(target error) bool {
	var targetErr *DocrulesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DocrulesError with the given code and message
func New(code ErrorCode, message string) *DocrulesError {
	return &DocrulesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DocrulesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DocrulesError {
	return &DocrulesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DocrulesError
func Wrap(err error, code ErrorCode, message string) *DocrulesError {
	if err == nil {
		return nil
	}
	return &DocrulesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DocrulesError {
	if err == nil {
		return nil
	}
	return &DocrulesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DocrulesError) WithDetail(key string, value interface{}) *DocrulesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var drErr *DocrulesError
	if errors.As(err, &drErr) {
		return drErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DocrulesError
func GetErrorCode(err error) ErrorCode {
	var drErr *DocrulesError
	if errors.As(err, &drErr) {
		return drErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DocrulesError
func GetErrorDetails(err error) map[string]interface{} {
	var drErr *DocrulesError
	if errors.As(err, &drErr) {
		return drErr.Details
	}
	return nil
}
