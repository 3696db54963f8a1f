package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses. Business
// tap outcomes (denials, failed debits) are NOT errors; AppError covers
// validation problems and infrastructure faults only.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Request validation (REQ) ----

// Validation returns a 400 for malformed tap or query input.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

func ErrMissingField(field string) *AppError {
	return New("REQ_002", fmt.Sprintf("Missing required field: %s", field), http.StatusBadRequest)
}

// ---- Reporting lookups (RPT) ----

func ErrNotFound(entity string) *AppError {
	return New("RPT_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & infrastructure (SYS) ----

// InternalError wraps a store or infrastructure failure. These propagate
// to the caller as retryable faults and are never conflated with
// business denials like insufficient balance.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}

func ErrStoreUnavailable(name string, err error) *AppError {
	return Wrap("SYS_003", fmt.Sprintf("%s unavailable", name), http.StatusServiceUnavailable, err)
}
