package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")

	ErrUpstream    = errors.New("upstream error")
	ErrUnavailable = errors.New("service unavailable")
)

// FromStatus — сентинел по HTTP-статусу ответа сервера.
func FromStatus(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidInput
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusServiceUnavailable:
		return ErrUnavailable
	default:
		if status >= 500 {
			return ErrUpstream
		}
		return ErrInvalidInput
	}
}
