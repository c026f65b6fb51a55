// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Type classifies an application error.
type Type string

const (
	TypeValidation    Type = "validation_error"
	TypeRemoteService Type = "remote_service_error"
	TypePersistence   Type = "persistence_error"
	TypeConflict      Type = "conflict"
	TypeNotFound      Type = "not_found"
)

// AppError carries a typed, user-presentable error with an optional cause.
type AppError struct {
	Type    Type
	Message string
	Err     error
	Code    string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError of the given type.
func New(errType Type, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     cause,
		Code:    codeFor(errType),
	}
}

// NewValidation creates a validation error (bad or missing input).
func NewValidation(message string, cause error) *AppError {
	return New(TypeValidation, message, cause)
}

// NewRemoteService creates a remote analysis service error. These are always
// recoverable: the orchestrator falls back to local analysis.
func NewRemoteService(message string, cause error) *AppError {
	return New(TypeRemoteService, message, cause)
}

// NewPersistence creates a history store read/write error.
func NewPersistence(message string, cause error) *AppError {
	return New(TypePersistence, message, cause)
}

// NewConflict creates a conflict error (analysis already in progress).
func NewConflict(message string, cause error) *AppError {
	return New(TypeConflict, message, cause)
}

// NewNotFound creates a not-found error.
func NewNotFound(message string, cause error) *AppError {
	return New(TypeNotFound, message, cause)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return is(err, TypeValidation) }

// IsRemoteService reports whether err is a remote service error.
func IsRemoteService(err error) bool { return is(err, TypeRemoteService) }

// IsPersistence reports whether err is a persistence error.
func IsPersistence(err error) bool { return is(err, TypePersistence) }

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool { return is(err, TypeConflict) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return is(err, TypeNotFound) }

func is(err error, errType Type) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

func codeFor(errType Type) string {
	switch errType {
	case TypeValidation:
		return "VALIDATION_ERROR"
	case TypeRemoteService:
		return "REMOTE_SERVICE_ERROR"
	case TypePersistence:
		return "PERSISTENCE_ERROR"
	case TypeConflict:
		return "CONFLICT"
	case TypeNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN_ERROR"
	}
}
