// Package derrors provides custom error types for graphsh.
// Every error carries a stable code so the command layer can tell caller-input
// defects apart from environment failures.
package derrors

import (
	"fmt"
)

// GraphshError is the base interface for all graphsh errors
type GraphshError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all graphsh errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// InvalidFilterCode is the code carried by every InvalidFilterError
const InvalidFilterCode = "INVALID_FILTER_CONFIGURATION"

// InvalidFilterError reports an illegal (field, operator, value shape) combination.
// It is a caller-input defect: never retried, never corrected.
type InvalidFilterError struct {
	baseError
	Field    string
	Operator string
}

// NewInvalidFilterError creates a new invalid filter configuration error
func NewInvalidFilterError(field, operator, reason string) *InvalidFilterError {
	return &InvalidFilterError{
		baseError: baseError{
			code:    InvalidFilterCode,
			message: reason,
		},
		Field:    field,
		Operator: operator,
	}
}

// ConfigurationError represents errors in configuration or filter files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents errors while converting raw input into typed values
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// NotFoundError represents errors when an entity or field is not found
type NotFoundError struct {
	baseError
	Resource string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			code:    "NOT_FOUND",
			message: message,
			cause:   nil,
		},
		Resource: resource,
	}
}
