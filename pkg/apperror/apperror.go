package apperror

import (
	"errors"
	"net/http"
)

// Code identifies the failure class independently of the HTTP status.
type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeInvalidState Code = "INVALID_STATE"
	CodeConflict     Code = "CONFLICT"
	CodeValidation   Code = "VALIDATION"
	CodeExternal     Code = "EXTERNAL_PROVIDER"
	CodeInternal     Code = "INTERNAL"
)

// AppError is an expected, operational error carrying the HTTP status it
// should be rendered with. Unexpected errors stay plain and render as 500.
type AppError struct {
	StatusCode int
	Code       Code
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

func New(statusCode int, code Code, message string) *AppError {
	return &AppError{StatusCode: statusCode, Code: code, Message: message}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, CodeNotFound, message)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, CodeUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, CodeForbidden, message)
}

func InvalidState(message string) *AppError {
	return New(http.StatusBadRequest, CodeInvalidState, message)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, CodeConflict, message)
}

func Validation(message string) *AppError {
	return New(http.StatusBadRequest, CodeValidation, message)
}

func External(message string) *AppError {
	return New(http.StatusBadGateway, CodeExternal, message)
}

func Internal(message string) *AppError {
	return New(http.StatusInternalServerError, CodeInternal, message)
}

// From extracts an *AppError from err, if it carries one.
func From(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err is an AppError with the given code.
func Is(err error, code Code) bool {
	appErr, ok := From(err)
	return ok && appErr.Code == code
}
