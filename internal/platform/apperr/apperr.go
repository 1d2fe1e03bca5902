package apperr

import (
	"errors"
	"fmt"
)

// ===== Error model =====

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }

// Wrap attaches the underlying cause so it can be logged server-side.
func Wrap(code Code, msg string, err error) *APIError {
	return &APIError{Code: code, Message: msg, Err: err}
}

// CodeOf returns INTERNAL for anything that is not an *APIError.
func CodeOf(err error) Code {
	var api *APIError
	if errors.As(err, &api) {
		return api.Code
	}
	return CodeInternal
}

// IsLogical reports whether err is an expected business failure
// (bad input, missing row, constraint) rather than an unexpected one.
func IsLogical(err error) bool {
	switch CodeOf(err) {
	case CodeInvalidArgument, CodeNotFound, CodeConflict:
		return true
	default:
		return false
	}
}
