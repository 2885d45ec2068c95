package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// Account errors
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrDuplicateUsername = errors.New("employee with this username already exists")
)

// Order errors
var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyItems    = NewValidationError("items array is required and must not be empty")
	ErrMissingUser   = NewValidationError("user ID is required")
	ErrInvalidShop   = NewValidationError("shop must be one of restaurant1, restaurant2")
	ErrInvalidStatus = NewValidationError("status must be one of pending, processing, completed, cancelled")
	ErrInvalidPeriod = NewValidationError("month and year are required and must be valid")
)

// ValidationError describes rejected input. It matches ErrValidation.
type ValidationError struct {
	Message string
}

// NewValidationError builds a ValidationError with a formatted message
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
