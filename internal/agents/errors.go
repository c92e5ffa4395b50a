package agents

import (
	"errors"
	"net/http"
)

var ErrUnknownType = errors.New("unknown agent type")

// MapHTTPStatus translates domain errors into HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknownType) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
