// Package errors defines the application error taxonomy surfaced to API callers.
package errors

import (
	"fmt"
	"net/http"

	"contacts/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so errors built with
// WithMessage or WithDetails still match the predefined sentinels.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message, keeping the code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource could not be found",
		"",
	)

	ErrUnsupportedValue = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_VALUE",
		"Unsupported value",
		"",
	)

	ErrExternalReferenceNotFound = NewBaseError(
		http.StatusBadRequest,
		"EXTERNAL_REFERENCE_NOT_FOUND",
		"Referenced record could not be found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failure",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// NewNotFoundError reports that the named record does not exist.
func NewNotFoundError(kind string, id any) *BaseError {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s (%v) could not be found", kind, id))
}

// NewUnsupportedValueError reports a coded value that is unknown or no longer active in its group.
func NewUnsupportedValueError(group, code string) *BaseError {
	return ErrUnsupportedValue.WithMessage(fmt.Sprintf("Unsupported %s (%s)", group, code))
}

// NewExternalReferenceNotFoundError reports an organisation id or prisoner number that its owner does not know.
func NewExternalReferenceNotFoundError(kind string, value any) *BaseError {
	return ErrExternalReferenceNotFound.WithMessage(fmt.Sprintf("%s (%v) could not be found", kind, value))
}

// NewValidationError reports a field-level constraint violation.
func NewValidationError(message string) *BaseError {
	return ErrValidationFailed.WithMessage(message)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// PublishFailure records that a committed mutation's event could not be handed to the delivery channel.
// It is an operational error: it is logged and retried, never returned to the API caller.
type PublishFailure struct {
	EventID string
	Kind    string
	Err     error
}

// Error implements the error interface
func (e *PublishFailure) Error() string {
	return fmt.Sprintf("publish %s (%s) failed: %v", e.Kind, e.EventID, e.Err)
}

// Unwrap exposes the delivery error.
func (e *PublishFailure) Unwrap() error {
	return e.Err
}
