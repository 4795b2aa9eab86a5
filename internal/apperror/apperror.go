// Package apperror defines the operational error type shared by usecases,
// middleware, and the central HTTP responder. An operational error is one
// raised deliberately: it is expected, carries a status and machine code,
// and is safe to describe to the client. Anything that is not an *Error is
// treated as a programming or infrastructure failure and hidden behind a
// generic response in production.
package apperror

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to clients.
const (
	CodeValidationError           = "VALIDATION_ERROR"
	CodeValidationMiddlewareError = "VALIDATION_MIDDLEWARE_ERROR"
	CodeInvalidJSON               = "INVALID_JSON"
	CodeJSONSyntaxError           = "JSON_SYNTAX_ERROR"
	CodePayloadTooLarge           = "PAYLOAD_TOO_LARGE"
	CodeInvalidID                 = "INVALID_ID"
	CodeDuplicateField            = "DUPLICATE_FIELD"
	CodeEmailExists               = "EMAIL_EXISTS"
	CodeInvalidCredentials        = "INVALID_CREDENTIALS"
	CodeNoToken                   = "NO_TOKEN"
	CodeTokenExpired              = "TOKEN_EXPIRED"
	CodeTokenInvalid              = "TOKEN_INVALID"
	CodeForbidden                 = "FORBIDDEN"
	CodeNotFound                  = "NOT_FOUND"
	CodeCareerClosed              = "CAREER_CLOSED"
	CodeInternalError             = "INTERNAL_ERROR"
)

// FieldError describes one failed validation constraint. Value is omitted
// for redacted (password-like) fields.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error is an operational error: deliberately raised, safe to show.
type Error struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates an operational error.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Newf creates an operational error with a formatted message.
func Newf(status int, code, format string, args ...any) *Error {
	return New(status, code, fmt.Sprintf(format, args...))
}

// WithDetails attaches field-level detail entries and returns the error.
func (e *Error) WithDetails(details []FieldError) *Error {
	e.Details = details
	return e
}

// BadRequest creates a 400 operational error.
func BadRequest(code, message string) *Error {
	return New(http.StatusBadRequest, code, message)
}

// Unauthorized creates a 401 operational error.
func Unauthorized(code, message string) *Error {
	return New(http.StatusUnauthorized, code, message)
}

// Forbidden creates a 403 operational error.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, CodeForbidden, message)
}

// NotFound creates a 404 operational error.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, CodeNotFound, message)
}
