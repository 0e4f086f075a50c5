package errors

import "fmt"

// ErrorCode represents a cradle error code.
type ErrorCode string

const (
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT" // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// CradleError represents a structured error with code, status, and details.
type CradleError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *CradleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidArgument creates a 400 error for malformed record input.
func NewInvalidArgument(msg string) *CradleError {
	return &CradleError{
		Code:    ErrInvalidArgument,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a record cannot be found.
func NewNotFound(kind, id string) *CradleError {
	return &CradleError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found: %s", kind, id),
		Details: map[string]any{"kind": kind, "id": id},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *CradleError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &CradleError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a CradleError with the given code.
func Is(err error, code ErrorCode) bool {
	if cErr, ok := err.(*CradleError); ok {
		return cErr.Code == code
	}
	return false
}
