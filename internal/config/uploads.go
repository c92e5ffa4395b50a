package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

const (
	// EnvUploadsMaxUploadSize overrides the maximum accepted upload size.
	EnvUploadsMaxUploadSize = "UPLOADS_MAX_UPLOAD_SIZE"
)

// UploadsConfig contains image upload configuration.
type UploadsConfig struct {
	// MaxUploadSize is a human-readable size limit, e.g. "5MB".
	MaxUploadSize    string   `toml:"max_upload_size"`
	AllowedTypes     []string `toml:"allowed_types"`
	maxUploadSizeVal int64
}

// MaxUploadSizeBytes returns the parsed upload size limit in bytes.
func (c *UploadsConfig) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the uploads configuration.
func (c *UploadsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *UploadsConfig) Merge(overlay *UploadsConfig) {
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	if overlay.AllowedTypes != nil {
		c.AllowedTypes = overlay.AllowedTypes
	}
}

func (c *UploadsConfig) loadDefaults() {
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "5MB"
	}
	if c.AllowedTypes == nil {
		c.AllowedTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}
	}
}

func (c *UploadsConfig) loadEnv() {
	if v := os.Getenv(EnvUploadsMaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *UploadsConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	if len(c.AllowedTypes) == 0 {
		return fmt.Errorf("allowed_types required")
	}
	return nil
}
