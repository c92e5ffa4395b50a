// Package pagination provides page-request parsing and paged result
// envelopes for list endpoints.
package pagination

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override the pagination section.
const (
	EnvDefaultPageSize = "PAGINATION_DEFAULT_PAGE_SIZE"
	EnvMaxPageSize     = "PAGINATION_MAX_PAGE_SIZE"
)

const (
	defaultPageSize    = 20
	defaultMaxPageSize = 100
)

// Config bounds the page sizes clients may request.
type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// Finalize fills defaults, applies env overrides, and validates the result.
func (c *Config) Finalize() error {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = defaultPageSize
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = defaultMaxPageSize
	}

	if v := os.Getenv(EnvDefaultPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.DefaultPageSize = n
		}
	}
	if v := os.Getenv(EnvMaxPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxPageSize = n
		}
	}

	if c.DefaultPageSize < 1 || c.MaxPageSize < 1 {
		return fmt.Errorf("page sizes must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default_page_size cannot exceed max_page_size")
	}
	return nil
}

// Merge overlays non-zero values from another config onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
}
