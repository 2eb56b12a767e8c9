// Package errors provides custom error types for the fintrack API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Validation errors. User-correctable; the message is surfaced verbatim.
var (
	ErrValidation      = &AppError{Code: "VALIDATION_ERROR", Message: "Validation failed", StatusCode: http.StatusBadRequest}
	ErrInvalidAmount   = &AppError{Code: "VALIDATION_ERROR", Message: "Amount must be a number greater than zero", StatusCode: http.StatusBadRequest}
	ErrInvalidDate     = &AppError{Code: "VALIDATION_ERROR", Message: "Date does not match the expected format", StatusCode: http.StatusBadRequest}
	ErrInvalidType     = &AppError{Code: "VALIDATION_ERROR", Message: "Type must be income or expense", StatusCode: http.StatusBadRequest}
	ErrInvalidCategory = &AppError{Code: "VALIDATION_ERROR", Message: "Category is not in the allowed list", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Store errors. Persistence failures are logged with their internal cause
// and surfaced as a generic failure, never retried automatically.
var (
	ErrStore = &AppError{Code: "STORE_ERROR", Message: "The data store reported a failure", StatusCode: http.StatusInternalServerError}
)

// Export errors.
var (
	ErrExportIO          = &AppError{Code: "EXPORT_IO_ERROR", Message: "Could not write the export target", StatusCode: http.StatusInternalServerError}
	ErrUnsupportedFormat = &AppError{Code: "UNSUPPORTED_FORMAT", Message: "Unsupported export format", StatusCode: http.StatusBadRequest}
)
