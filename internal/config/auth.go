package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvAuthAdminUsername overrides the admin username.
	EnvAuthAdminUsername = "AUTH_ADMIN_USERNAME"

	// EnvAuthAdminPasswordHash overrides the bcrypt hash of the admin password.
	EnvAuthAdminPasswordHash = "AUTH_ADMIN_PASSWORD_HASH"

	// EnvAuthTokenSecret overrides the session token signing secret.
	EnvAuthTokenSecret = "AUTH_TOKEN_SECRET"

	// EnvAuthTokenTTL overrides the session token lifetime.
	EnvAuthTokenTTL = "AUTH_TOKEN_TTL"
)

// AuthConfig contains admin authentication configuration.
type AuthConfig struct {
	AdminUsername     string `toml:"admin_username"`
	AdminPasswordHash string `toml:"admin_password_hash"`
	TokenSecret       string `toml:"token_secret"`
	TokenTTL          string `toml:"token_ttl"`
}

// TokenTTLDuration parses and returns the token lifetime as a time.Duration.
func (c *AuthConfig) TokenTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenTTL)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the auth configuration.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.AdminUsername != "" {
		c.AdminUsername = overlay.AdminUsername
	}
	if overlay.AdminPasswordHash != "" {
		c.AdminPasswordHash = overlay.AdminPasswordHash
	}
	if overlay.TokenSecret != "" {
		c.TokenSecret = overlay.TokenSecret
	}
	if overlay.TokenTTL != "" {
		c.TokenTTL = overlay.TokenTTL
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
	}
	if c.TokenTTL == "" {
		c.TokenTTL = "12h"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthAdminUsername); v != "" {
		c.AdminUsername = v
	}
	if v := os.Getenv(EnvAuthAdminPasswordHash); v != "" {
		c.AdminPasswordHash = v
	}
	if v := os.Getenv(EnvAuthTokenSecret); v != "" {
		c.TokenSecret = v
	}
	if v := os.Getenv(EnvAuthTokenTTL); v != "" {
		c.TokenTTL = v
	}
}

func (c *AuthConfig) validate() error {
	if c.AdminPasswordHash == "" {
		return fmt.Errorf("admin_password_hash required")
	}
	if c.TokenSecret == "" {
		return fmt.Errorf("token_secret required")
	}
	if _, err := time.ParseDuration(c.TokenTTL); err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	return nil
}
