package auth

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pressbox-io/pressbox/internal/config"
)

func testService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(&config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		TokenSecret:       "test-secret",
		TokenTTL:          "1h",
	}, slog.New(slog.DiscardHandler))
}

func TestLogin(t *testing.T) {
	service := testService(t)

	session, err := service.Login("admin", "hunter2")
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.False(t, session.ExpiresAt.IsZero())
}

func TestLoginInvalidCredentials(t *testing.T) {
	service := testService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "letmein"},
		{"wrong username", "root", "hunter2"},
		{"both wrong", "root", "letmein"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Login(tc.username, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestVerify(t *testing.T) {
	service := testService(t)

	session, err := service.Login("admin", "hunter2")
	require.NoError(t, err)

	subject, err := service.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	service := testService(t)

	session, err := service.Login("admin", "hunter2")
	require.NoError(t, err)

	_, err = service.Verify(session.Token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	service := testService(t)

	_, err := service.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
