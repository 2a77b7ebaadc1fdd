package errors

import (
	"net/http"

	"backoffice/internal/errors"
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
	return e.message
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

// Predefined error types
var (
	// Login-related errors
	ErrInvalidAuthInfo = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AUTH_INFO",
		"invalid auth info",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_NOT_FOUND",
		"could not find your account",
		"",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusBadRequest,
		"WRONG_PASSWORD",
		"wrong password",
		"",
	)

	ErrAccountLocked = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_LOCKED",
		"account is locked",
		"",
	)

	// Token-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"invalid or expired access token",
		"",
	)

	ErrPendingVerification = NewBaseError(
		http.StatusUnprocessableEntity,
		"PENDING_VERIFICATION",
		"email has not been verified",
		"",
	)

	// Authorization-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusForbidden,
		"INVALID_CREDENTIALS",
		"not authorized",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_NOT_VERIFIED",
		"email has not been verified",
		"",
	)

	ErrAccountSuspended = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_SUSPENDED",
		"account has been suspended",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// General errors
	ErrDataInconsistent = NewBaseError(
		http.StatusInternalServerError,
		"DATA_INCONSISTENT",
		"data inconsistency detected",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrAccountConflict = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_CONFLICT",
		"account already exists",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
