package logging

import "os"

// Env names the environment variables that override file configuration.
// A nil Env disables environment overrides.
type Env struct {
	Level  string
	Format string
}

// Config is the logging section of the service configuration.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize fills defaults, applies env overrides, and validates the result.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if v := os.Getenv(env.Level); v != "" {
			c.Level = Level(v)
		}
		if v := os.Getenv(env.Format); v != "" {
			c.Format = Format(v)
		}
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

// Merge overlays non-zero values from another config onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}
