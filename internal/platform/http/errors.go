package http

import (
	"errors"
	"net/http"
)

// Error carries the status code and client-facing message for a failed
// request. Err is the cause; it is logged but never sent to the client.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(statusCode int, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func NewNotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

func NewInternalServerError(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// StatusOf reports the status code carried by err, or 500 when err is not an *Error.
func StatusOf(err error) int {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return http.StatusInternalServerError
}
