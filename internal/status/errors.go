package status

import (
	"errors"
	"net/http"
)

var ErrInvalidClientName = errors.New("client name is required")

// MapHTTPStatus translates domain errors into HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidClientName) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
