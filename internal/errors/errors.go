// Package errors provides custom error types for the Stockbook API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional machine-readable
// details, and optional internal error.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	StatusCode int            `json:"-"`
	Internal   error          `json:"-"`
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

// WithDetails creates a new AppError with a custom message and structured
// details (e.g. the exact shortfall of an oversold sale).
func WithDetails(sentinel *AppError, message string, details map[string]any) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Details:    details,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	// ErrDuplicateDate: the ledger admits at most one event per calendar day.
	ErrDuplicateDate = &AppError{Code: "DUPLICATE_DATE", Message: "An event already exists on this date", StatusCode: http.StatusConflict}
	// ErrInsufficientInventory: a sale would drive the stock on hand negative.
	// Use WithDetails to attach the exact shortfall.
	ErrInsufficientInventory = &AppError{Code: "INSUFFICIENT_INVENTORY", Message: "Insufficient inventory for this sale", StatusCode: http.StatusBadRequest}
	ErrEventNotFound         = &AppError{Code: "EVENT_NOT_FOUND", Message: "Ledger event not found", StatusCode: http.StatusNotFound}
	// ErrPersistence: the atomic commit failed; the ledger is unchanged and
	// the whole operation may be retried.
	ErrPersistence = &AppError{Code: "PERSISTENCE_ERROR", Message: "The ledger could not be updated", StatusCode: http.StatusInternalServerError}
)
