// Package auth provides admin credential verification and signed session
// tokens. Credentials are a single configured admin account; sessions are
// stateless HS256 JWTs.
package auth

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pressbox-io/pressbox/internal/config"
)

// Session is an issued admin session token.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Service struct {
	cfg    *config.AuthConfig
	logger *slog.Logger
}

func NewService(cfg *config.AuthConfig, logger *slog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger.With("system", "auth"),
	}
}

// Login verifies the admin credentials and issues a session token. Both the
// username and password comparisons run in constant time.
func (s *Service) Login(username, password string) (*Session, error) {
	usernameMatch := subtle.ConstantTimeCompare(
		[]byte(username), []byte(s.cfg.AdminUsername)) == 1

	err := bcrypt.CompareHashAndPassword(
		[]byte(s.cfg.AdminPasswordHash), []byte(password))

	if !usernameMatch || err != nil {
		s.logger.Warn("failed login attempt", "username", username)
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().UTC().Add(s.cfg.TokenTTLDuration())
	claims := jwt.RegisteredClaims{
		Subject:   s.cfg.AdminUsername,
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.
		NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.TokenSecret))
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	s.logger.Info("admin login", "username", username)
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify parses and validates a session token, returning the subject claim.
func (s *Service) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(s.cfg.TokenSecret), nil
		})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
