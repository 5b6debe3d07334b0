// Package error defines domain-specific errors for the ledger.
package error

import (
	"errors"
	"fmt"
)

// Validation domain errors.
var (
	// ErrInvalidAmount is returned when a monetary amount is zero or negative where it must be positive.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidEnum is returned when a value is outside its closed enumeration.
	ErrInvalidEnum = errors.New("unrecognized enumeration value")

	// ErrInvalidRange is returned when a numeric field is outside its allowed range.
	ErrInvalidRange = errors.New("value out of range")
)

// ValidationErrorCode defines error codes for validation errors.
// Format: VAL-XXYYYY where XX is category and YYYY is specific error.
type ValidationErrorCode string

const (
	// Field errors (01XXXX)
	ErrCodeInvalidAmount ValidationErrorCode = "VAL-010001"
	ErrCodeMissingField  ValidationErrorCode = "VAL-010002"
	ErrCodeInvalidEnum   ValidationErrorCode = "VAL-010003"
	ErrCodeInvalidRange  ValidationErrorCode = "VAL-010004"
)

// ValidationError reports a rejected input field. Field always names the offending field.
type ValidationError struct {
	Code    ValidationErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(code ValidationErrorCode, field, message string, err error) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// NewInvalidAmountError reports a non-positive amount in field.
func NewInvalidAmountError(field string) *ValidationError {
	return NewValidationError(ErrCodeInvalidAmount, field, field+" must be greater than zero", ErrInvalidAmount)
}

// NewMissingFieldError reports an empty required field.
func NewMissingFieldError(field string) *ValidationError {
	return NewValidationError(ErrCodeMissingField, field, field+" is required", ErrMissingField)
}

// NewInvalidEnumError reports a value outside the enumeration accepted by field.
func NewInvalidEnumError(field string, value any) *ValidationError {
	return NewValidationError(ErrCodeInvalidEnum, field, fmt.Sprintf("%s has unrecognized value %q", field, fmt.Sprint(value)), ErrInvalidEnum)
}

// NewNegativeValueError reports a negative value in a field that must be zero or more.
func NewNegativeValueError(field string) *ValidationError {
	return NewValidationError(ErrCodeInvalidRange, field, field+" must not be negative", ErrInvalidRange)
}

// NewOutOfRangeError reports a value too large to compute with.
func NewOutOfRangeError(field string) *ValidationError {
	return NewValidationError(ErrCodeInvalidRange, field, field+" is out of range", ErrInvalidRange)
}
