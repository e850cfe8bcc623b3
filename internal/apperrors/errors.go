package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that an attempt was made to create a resource that already exists.
var ErrConflict = errors.New("resource already exists")

// ErrForbidden indicates that the operation is not allowed given the current state.
var ErrForbidden = errors.New("operation forbidden")

// ErrUnauthorized indicates a missing, invalid or unmatched session token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidCredentials indicates a failed sign-in attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInternal indicates an unanticipated failure that is surfaced generically.
var ErrInternal = errors.New("internal error")

// AppError carries a status code alongside a message and an optional wrapped
// cause. Repositories use it for infrastructure failures.
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

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
