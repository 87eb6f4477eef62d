package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for callers that need to decide whether a
// failed call is retryable or a caller bug.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates missing or invalid process
	// configuration (e.g. absent API credentials). Fatal at startup.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"

	// ErrCodeValidation indicates bad caller input. Calls failing
	// validation never reach the network.
	ErrCodeValidation ErrorCode = "VALIDATION"

	// ErrCodeTransport indicates a network failure or a non-2xx HTTP
	// status from the upstream API.
	ErrCodeTransport ErrorCode = "TRANSPORT"

	// ErrCodeTimeout is the timeout subtype of a transport failure.
	ErrCodeTimeout ErrorCode = "TIMEOUT"

	// ErrCodeUpstream indicates the upstream returned 2xx but the payload
	// was malformed or carried an embedded failure status.
	ErrCodeUpstream ErrorCode = "UPSTREAM"
)

// AppError is a structured error with a stable code, a human-readable
// message, and optional details. Credential values must never appear in
// any field.
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// GetHTTPCode returns the HTTP status code this error maps to.
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Newf creates a new AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an AppError.
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeTransport, ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors

// ValidationError creates a validation error naming the offending field.
func ValidationError(field string, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// ConfigError creates a configuration error for a missing or invalid key.
func ConfigError(key string, reason string) *AppError {
	return New(ErrCodeConfiguration, fmt.Sprintf("configuration error for '%s': %s", key, reason)).
		WithDetail("key", key).
		WithDetail("reason", reason)
}

// TransportError creates a transport error carrying the HTTP status code
// the upstream returned.
func TransportError(statusCode int) *AppError {
	return New(ErrCodeTransport, fmt.Sprintf("upstream returned status %d", statusCode)).
		WithDetail("statusCode", statusCode)
}

// TimeoutError creates the timeout subtype of a transport error.
func TimeoutError(operation string, cause error) *AppError {
	return Wrap(cause, ErrCodeTimeout, fmt.Sprintf("operation '%s' timed out", operation)).
		WithDetail("operation", operation)
}

// UpstreamError creates an error for an upstream-reported logical failure
// or a payload that violates the upstream contract.
func UpstreamError(message string) *AppError {
	return New(ErrCodeUpstream, message)
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeTransport
}

// GetHTTPCode extracts the HTTP status code from an error.
func GetHTTPCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}
