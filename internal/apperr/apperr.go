package apperr

import (
	"net/http"
	"time"
)

// Error codes surfaced to API callers.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeConflict          = "CONFLICT"
	CodeInternal          = "INTERNAL_ERROR"
	CodeDatabase          = "DATABASE_ERROR"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInvalidOperation  = "INVALID_OPERATION"
)

// Error is a coded API error. Services return these; the HTTP layer maps them
// to the wire shape without inspecting messages.
type Error struct {
	Code    string
	Status  int
	Message string
	Details any
}

func (e *Error) Error() string { return e.Message }

// Response is the JSON body every error surfaces as.
type Response struct {
	Err       string `json:"error"`
	Code      string `json:"code"`
	Details   any    `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (e *Error) Response() Response {
	return Response{
		Err:       e.Message,
		Code:      e.Code,
		Details:   e.Details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func New(status int, code, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, CodeNotFound, message)
}

func Validation(message string, details any) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: message, Details: details}
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, CodeForbidden, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, CodeConflict, message)
}

func InsufficientStock(message string) *Error {
	return New(http.StatusBadRequest, CodeInsufficientStock, message)
}

func InvalidOperation(message string) *Error {
	return New(http.StatusBadRequest, CodeInvalidOperation, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, CodeInternal, message)
}
