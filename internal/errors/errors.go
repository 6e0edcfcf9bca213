package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies an Origami error.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // bad or non-canonical arguments
	ErrNotFound       ErrorCode = "NOT_FOUND"       // fold id or detail blob missing
	ErrInternal       ErrorCode = "INTERNAL"        // storage or serialization failure
)

// OrigamiError is a structured error with a code and human message.
// NOT_FOUND and INVALID_REQUEST are domain misses: the dispatcher turns
// them into plain-text tool results rather than protocol faults.
type OrigamiError struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *OrigamiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates an error for invalid request parameters.
func NewInvalidRequest(msg string) *OrigamiError {
	return &OrigamiError{Code: ErrInvalidRequest, Message: msg}
}

// NewNotFound creates an error for an unknown fold id.
func NewNotFound(id string) *OrigamiError {
	return &OrigamiError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("fold not found: %s", id),
	}
}

// NewDetailNotFound creates an error for a fold whose index entry exists
// but whose detail blob does not.
func NewDetailNotFound(id string) *OrigamiError {
	return &OrigamiError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("detail not found for %s", id),
	}
}

// NewInternal wraps an unexpected internal error.
func NewInternal(err error) *OrigamiError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &OrigamiError{Code: ErrInternal, Message: msg}
}

// From extracts the OrigamiError wrapped in err, if any.
func From(err error) (*OrigamiError, bool) {
	var oErr *OrigamiError
	if stderrors.As(err, &oErr) {
		return oErr, true
	}
	return nil, false
}

// Is reports whether err is (or wraps) an OrigamiError with the given code.
func Is(err error, code ErrorCode) bool {
	var oErr *OrigamiError
	if stderrors.As(err, &oErr) {
		return oErr.Code == code
	}
	return false
}
