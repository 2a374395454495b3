package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// External dependency errors
	ErrExternalService = errors.New("external service error")
	ErrStorage         = errors.New("storage error")
)

// Student errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrRollNumberExists = errors.New("roll number already exists")
)

// Certificate errors
var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrInvalidHashFormat   = errors.New("invalid certificate hash format")
)

// Chain errors
var (
	ErrChainUnavailable = errors.New("blockchain registry unavailable")
	ErrChainRejected    = errors.New("blockchain transaction rejected")
)

// NewValidationError creates a custom error for malformed input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewExternalServiceError creates a custom error for chain client failures
func NewExternalServiceError(message string) error {
	return &CustomError{
		Err:     ErrExternalService,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
