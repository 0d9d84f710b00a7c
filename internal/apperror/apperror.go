package apperror

import (
	"errors"
	"fmt"
)

// Error categories. Handlers map these to HTTP statuses; services wrap them
// with a human-readable message.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrExpired      = errors.New("expired")
)

type AppError struct {
	Err     error  // category sentinel
	Message string // surfaced verbatim to the caller
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...interface{}) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...interface{}) *AppError {
	return &AppError{Err: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *AppError {
	return &AppError{Err: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *AppError {
	return &AppError{Err: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func Expired(format string, args ...interface{}) *AppError {
	return &AppError{Err: ErrExpired, Message: fmt.Sprintf(format, args...)}
}
