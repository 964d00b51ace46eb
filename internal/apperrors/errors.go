package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found or is soft-deleted.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource is in a state that does not allow the operation.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvariantViolation indicates that an accounting rule would be broken by the operation.
// The whole unit of work is aborted when it is returned.
var ErrInvariantViolation = errors.New("invariant violation")

// ErrStorage indicates a failure of the underlying store (begin, commit, rollback, query).
var ErrStorage = errors.New("storage error")

var (
	ErrUnbalanced          = fmt.Errorf("%w: debits do not equal credits", ErrInvariantViolation)
	ErrOverpayment         = fmt.Errorf("%w: payment exceeds remaining balance", ErrInvariantViolation)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrInvariantViolation)
	ErrInvalidState        = fmt.Errorf("%w: invalid state transition", ErrInvariantViolation)
)

// AppError carries an HTTP-ish status code together with a message and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStorage) match any 5xx AppError.
func (e *AppError) Is(target error) bool {
	return target == ErrStorage && e.Code >= http.StatusInternalServerError
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewStorageError wraps a store failure so that it matches ErrStorage.
func NewStorageError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

// NewNotFoundError creates an error that wraps ErrNotFound for the given entity.
func NewNotFoundError(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}

// OverpaymentError reports the remaining balance a payment was checked against.
type OverpaymentError struct {
	Remaining string
	Requested string
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("Payment amount cannot exceed remaining balance of $%s (requested $%s)", e.Remaining, e.Requested)
}

func (e *OverpaymentError) Unwrap() error {
	return ErrOverpayment
}

// InsufficientBalanceError reports how much was available when a deduction was attempted.
type InsufficientBalanceError struct {
	Available string
	Requested string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient petty cash balance: available $%s, requested $%s", e.Available, e.Requested)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// HTTPStatus maps an error to the status code handlers respond with.
func HTTPStatus(err error) int {
	var appErr *AppError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvariantViolation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &appErr) && appErr.Code > 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}
