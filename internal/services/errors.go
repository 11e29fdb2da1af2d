package services

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType int

const (
	ErrTypeBadRequest ErrorType = iota
	ErrTypeUnauthorized
	ErrTypeNotFound
	ErrTypeValidation
	ErrTypeInternal
)

// ServiceError is a standardized error for all services. Validation errors
// are raised before any store call; not-found errors mark logical absence as
// opposed to a store failure.
type ServiceError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error type to the transport status code.
func (e *ServiceError) HTTPStatus() int {
	switch e.Type {
	case ErrTypeBadRequest, ErrTypeValidation:
		return 400
	case ErrTypeUnauthorized:
		return 401
	case ErrTypeNotFound:
		return 404
	default:
		return 500
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *ServiceError {
	return &ServiceError{Type: ErrTypeBadRequest, Message: message}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *ServiceError {
	return &ServiceError{Type: ErrTypeUnauthorized, Message: message}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Type: ErrTypeNotFound, Message: message}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *ServiceError {
	return &ServiceError{Type: ErrTypeValidation, Message: message}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *ServiceError {
	return &ServiceError{Type: ErrTypeInternal, Message: message, Err: err}
}

// IsNotFound checks if error is NotFound
func IsNotFound(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Type == ErrTypeNotFound
	}
	return false
}

// IsValidation checks if error is a validation failure
func IsValidation(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Type == ErrTypeValidation || svcErr.Type == ErrTypeBadRequest
	}
	return false
}
