// Package errors defines the typed errors use cases return and the HTTP status
// each one maps to.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType is the machine-readable kind reported in error responses.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"
	ErrorTypeUnavailable  ErrorType = "unavailable"
	ErrorTypeTimeout      ErrorType = "timeout"

	// Raised while talking to the network-management device behind the session gate.
	ErrorTypeDeviceAuth        ErrorType = "device_auth_failed"
	ErrorTypeDeviceUnreachable ErrorType = "device_unreachable"
)

var statusByType = map[ErrorType]int{
	ErrorTypeValidation:        http.StatusBadRequest,
	ErrorTypeNotFound:          http.StatusNotFound,
	ErrorTypeConflict:          http.StatusConflict,
	ErrorTypeUnauthorized:      http.StatusUnauthorized,
	ErrorTypeForbidden:         http.StatusForbidden,
	ErrorTypeInternal:          http.StatusInternalServerError,
	ErrorTypeBadRequest:        http.StatusBadRequest,
	ErrorTypeUnavailable:       http.StatusServiceUnavailable,
	ErrorTypeTimeout:           http.StatusGatewayTimeout,
	ErrorTypeDeviceAuth:        http.StatusUnauthorized,
	ErrorTypeDeviceUnreachable: http.StatusBadGateway,
}

// AppError is an error that knows how it should be rendered to the client.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// New builds an AppError of type t. Only the first detail is kept.
// Unknown types render as 500.
func New(t ErrorType, message string, details ...string) *AppError {
	code, ok := statusByType[t]
	if !ok {
		code = http.StatusInternalServerError
	}
	appErr := &AppError{Type: t, Message: message, Code: code}
	if len(details) > 0 {
		appErr.Details = details[0]
	}
	return appErr
}

func NewValidationError(message string, details ...string) *AppError {
	return New(ErrorTypeValidation, message, details...)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return New(ErrorTypeNotFound, message, details...)
}

func NewConflictError(message string, details ...string) *AppError {
	return New(ErrorTypeConflict, message, details...)
}

func NewUnauthorizedError(message string, details ...string) *AppError {
	return New(ErrorTypeUnauthorized, message, details...)
}

func NewInternalError(message string, details ...string) *AppError {
	return New(ErrorTypeInternal, message, details...)
}

// NewUnavailableError reports a dependency that is temporarily refusing calls,
// such as a router behind an open breaker.
func NewUnavailableError(message string, details ...string) *AppError {
	return New(ErrorTypeUnavailable, message, details...)
}

// NewTimeoutError reports an upstream call that did not answer in time.
func NewTimeoutError(message string, details ...string) *AppError {
	return New(ErrorTypeTimeout, message, details...)
}

// NewDeviceAuthError reports that the device rejected the supplied credentials.
func NewDeviceAuthError(message string, details ...string) *AppError {
	return New(ErrorTypeDeviceAuth, message, details...)
}

// NewDeviceUnreachableError reports a transport failure between the server and the device.
func NewDeviceUnreachableError(message string, details ...string) *AppError {
	return New(ErrorTypeDeviceUnreachable, message, details...)
}

func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError returns the first *AppError in err's chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err wraps an AppError of type t.
func IsType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsNotFoundError(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}
