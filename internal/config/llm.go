package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// EnvLLMBaseURL overrides the LLM runtime base URL.
	EnvLLMBaseURL = "LLM_BASE_URL"

	// EnvLLMAPIKey overrides the LLM runtime API key.
	EnvLLMAPIKey = "LLM_API_KEY"

	// EnvLLMChatModel overrides the chat agent model.
	EnvLLMChatModel = "LLM_CHAT_MODEL"

	// EnvLLMSearchModel overrides the search agent model.
	EnvLLMSearchModel = "LLM_SEARCH_MODEL"

	// EnvLLMRequestTimeout overrides the per-request timeout.
	EnvLLMRequestTimeout = "LLM_REQUEST_TIMEOUT"
)

// LLMConfig contains connection settings for the external language-model
// runtime. The runtime speaks the OpenAI-compatible chat completions API.
type LLMConfig struct {
	BaseURL        string  `toml:"base_url"`
	APIKey         string  `toml:"api_key"`
	ChatModel      string  `toml:"chat_model"`
	SearchModel    string  `toml:"search_model"`
	Temperature    float64 `toml:"temperature"`
	MaxTokens      int     `toml:"max_tokens"`
	RequestTimeout string  `toml:"request_timeout"`
}

// RequestTimeoutDuration parses and returns the request timeout as a time.Duration.
func (c *LLMConfig) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the LLM configuration.
func (c *LLMConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *LLMConfig) Merge(overlay *LLMConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.ChatModel != "" {
		c.ChatModel = overlay.ChatModel
	}
	if overlay.SearchModel != "" {
		c.SearchModel = overlay.SearchModel
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
}

func (c *LLMConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.ChatModel == "" {
		c.ChatModel = "gpt-4o-mini"
	}
	if c.SearchModel == "" {
		c.SearchModel = c.ChatModel
	}
	if c.Temperature == 0 {
		c.Temperature = 0.2
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 1024
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "120s"
	}
}

func (c *LLMConfig) loadEnv() {
	if v := os.Getenv(EnvLLMBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvLLMAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvLLMChatModel); v != "" {
		c.ChatModel = v
	}
	if v := os.Getenv(EnvLLMSearchModel); v != "" {
		c.SearchModel = v
	}
	if v := os.Getenv(EnvLLMRequestTimeout); v != "" {
		c.RequestTimeout = v
	}
}

func (c *LLMConfig) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url required")
	}
	if c.ChatModel == "" {
		return fmt.Errorf("chat_model required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %s", strconv.FormatFloat(c.Temperature, 'f', -1, 64))
	}
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	return nil
}
