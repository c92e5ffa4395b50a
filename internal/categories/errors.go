package categories

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound    = errors.New("category not found")
	ErrDuplicate   = errors.New("category already exists")
	ErrInvalidName = errors.New("category name is required")
)

// MapHTTPStatus translates domain errors into HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
