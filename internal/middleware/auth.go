package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pressbox-io/pressbox/pkg/handlers"
)

// TokenVerifier validates a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

var errMissingToken = errors.New("missing bearer token")

// RequireBearer returns route middleware that rejects requests lacking a
// valid Authorization bearer token.
func RequireBearer(verifier TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				handlers.RespondError(w, logger, http.StatusUnauthorized, errMissingToken)
				return
			}

			if _, err := verifier.Verify(token); err != nil {
				handlers.RespondError(w, logger, http.StatusUnauthorized, err)
				return
			}

			next(w, r)
		}
	}
}
