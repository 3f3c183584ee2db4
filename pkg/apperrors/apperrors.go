package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Code is a stable error category used by handlers to pick a response.
type Code string

const (
	CodeUnknown  Code = "unknown"
	CodeInvalid  Code = "invalid"
	CodeNotFound Code = "not_found"
	CodeConflict Code = "conflict"
	CodeStorage  Code = "storage"
)

// AppError carries a code, a user-facing message, the wrapped cause and,
// for validation failures, the per-field messages.
type AppError struct {
	Code    Code
	Message string
	Err     error
	Fields  map[string]string
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}
		msg += " (" + strings.Join(parts, "; ") + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error { return e.Err }

// New creates an AppError without a cause.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps err with a code and message. A nil err yields a plain New.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return New(code, message)
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// Validation builds an invalid-input error from field messages.
func Validation(fields map[string]string) *AppError {
	return &AppError{Code: CodeInvalid, Message: "validation failed", Fields: fields}
}

// Storage wraps a persistence failure.
func Storage(err error, message string) *AppError {
	return Wrap(err, CodeStorage, message)
}

// CodeOf returns the code of the first AppError in err's chain.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// FieldErrors returns the per-field messages of a validation error, or nil.
func FieldErrors(err error) map[string]string {
	var ae *AppError
	if errors.As(err, &ae) && ae.Code == CodeInvalid {
		return ae.Fields
	}
	return nil
}

// HTTPStatus maps err to the response status handlers should use.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalid:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to show to a user.
func PublicMessage(err error) string {
	var ae *AppError
	if errors.As(err, &ae) && ae.Code != CodeStorage && ae.Code != CodeUnknown {
		return ae.Message
	}
	return "internal server error"
}
