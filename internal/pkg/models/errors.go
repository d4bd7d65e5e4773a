package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind is the outward-facing class of a failed auth operation
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindThrottled    ErrorKind = "throttled"
	KindDelivery     ErrorKind = "delivery"
	KindUnauthorized ErrorKind = "unauthorized"
	KindInternal     ErrorKind = "internal"
)

// AppError is the only error shape that crosses the usecase boundary.
// Err keeps the underlying cause for logging and is never rendered to callers.
type AppError struct {
	Kind       ErrorKind
	Message    string
	RetryAfter time.Duration
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a client input error
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewThrottledError creates a retryable, time-bound rejection
func NewThrottledError(message string, retryAfter time.Duration) *AppError {
	return &AppError{Kind: KindThrottled, Message: message, RetryAfter: retryAfter}
}

// DeliveryRetryAfter is the retry hint sent with a failed SMS delivery. A
// failed delivery does not start the cooldown, so a short pause is enough.
const DeliveryRetryAfter = 5 * time.Second

// NewDeliveryError creates a retryable SMS delivery failure
func NewDeliveryError(message string, err error) *AppError {
	return &AppError{Kind: KindDelivery, Message: message, RetryAfter: DeliveryRetryAfter, Err: err}
}

// NewUnauthorizedError creates an authentication failure
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

// NewInternalError wraps an infrastructure failure
func NewInternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal server error", Err: err}
}

// KindOf reports the kind of err, treating anything that is not an AppError as internal
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrPatientExists   = errors.New("patient already exists")
	ErrStaffNotFound   = errors.New("staff user not found")
)
