package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/smarthire/internal/answers"
	"github.com/jonathan/smarthire/internal/extraction"
	"github.com/jonathan/smarthire/internal/session"
)

// ErrInvalidCredentials indicates invalid admin login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrAdminDisabled indicates the admin surface is not configured
type ErrAdminDisabled struct{}

func (e *ErrAdminDisabled) Error() string {
	return "admin surface is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound    *session.NotFoundError
		transition  *session.InvalidTransitionError
		outOfRange  *answers.ErrIndexOutOfRange
		unsupported *extraction.UnsupportedTypeError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &transition):
		return http.StatusConflict
	case errors.As(err, &outOfRange):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrAdminDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
