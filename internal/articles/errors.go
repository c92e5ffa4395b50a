package articles

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("article not found")
	ErrInvalidTitle = errors.New("article title is required")
)

// MapHTTPStatus translates domain errors into HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidTitle):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
