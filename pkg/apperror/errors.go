package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
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

// ---- Configuration (CFG) ----

// ErrConfiguration signals a missing or invalid startup setting, such as an
// absent rail credential or an unresolvable primary chain. Never retried.
func ErrConfiguration(detail string) *AppError {
	return New("CFG_001", fmt.Sprintf("Invalid configuration: %s", detail), http.StatusInternalServerError)
}

// ---- Payment Rail (RAIL) ----

// ErrRailCall wraps a failed call to the payment rail. Operation names the
// rail primitive (e.g. "createWalletSet"); chain may be empty for calls that
// are not chain-scoped.
func ErrRailCall(operation string, chain string, err error) *AppError {
	msg := fmt.Sprintf("Payment rail call %s failed", operation)
	if chain != "" {
		msg = fmt.Sprintf("Payment rail call %s failed on chain %s", operation, chain)
	}
	return Wrap("RAIL_001", msg, http.StatusBadGateway, err)
}

// ---- Validation & Lookup (VAL / PAY) ----

// Validation returns a 400 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ErrNotFound returns a 404 for a missing entity.
func ErrNotFound(entity string) *AppError {
	return New("PAY_404", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrDatabaseError wraps a persistence failure.
func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
