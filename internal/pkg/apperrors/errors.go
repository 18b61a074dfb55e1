package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Store errors. The store layer wraps driver failures into one of these so
// callers never look at vendor error codes.
var (
	ErrConstraintViolation   = errors.New("constraint violation")
	ErrConnectionUnavailable = errors.New("store connection unavailable")
	ErrStore                 = errors.New("store error")
)

// Deletion errors
var (
	ErrDeletionBlocked = errors.New("deletion blocked by dependent records")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// DeletionBlockedError is returned when an owner cannot be deleted because
// other records still reference it. Labels holds the display name of every
// blocking record, in the order the store returned them.
type DeletionBlockedError struct {
	Entity string
	ID     int64
	Labels []string
}

// NewDeletionBlockedError creates a DeletionBlockedError
func NewDeletionBlockedError(entity string, id int64, labels []string) *DeletionBlockedError {
	return &DeletionBlockedError{
		Entity: entity,
		ID:     id,
		Labels: labels,
	}
}

// Error implements error interface
func (e *DeletionBlockedError) Error() string {
	return fmt.Sprintf("cannot delete %s %d: referenced by %s", e.Entity, e.ID, strings.Join(e.Labels, ", "))
}

// Unwrap lets errors.Is match ErrDeletionBlocked
func (e *DeletionBlockedError) Unwrap() error {
	return ErrDeletionBlocked
}
