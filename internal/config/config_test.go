package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMConfigDefaults(t *testing.T) {
	cfg := LLMConfig{}
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "https://api.openai.com/v1", cfg.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
	assert.Equal(t, cfg.ChatModel, cfg.SearchModel)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 1024, cfg.MaxTokens)
	assert.NotZero(t, cfg.RequestTimeoutDuration())
}

func TestLLMConfigSearchModelFollowsChatModel(t *testing.T) {
	cfg := LLMConfig{ChatModel: "custom-model"}
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "custom-model", cfg.SearchModel)
}

func TestLLMConfigEnvOverride(t *testing.T) {
	t.Setenv(EnvLLMBaseURL, "http://localhost:11434/v1")
	t.Setenv(EnvLLMChatModel, "llama3")

	cfg := LLMConfig{}
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
	assert.Equal(t, "llama3", cfg.ChatModel)
}

func TestLLMConfigMerge(t *testing.T) {
	cfg := LLMConfig{BaseURL: "http://a", ChatModel: "one", Temperature: 0.5}
	cfg.Merge(&LLMConfig{ChatModel: "two"})

	assert.Equal(t, "http://a", cfg.BaseURL)
	assert.Equal(t, "two", cfg.ChatModel)
	assert.Equal(t, 0.5, cfg.Temperature)
}

func TestLLMConfigInvalidTemperature(t *testing.T) {
	cfg := LLMConfig{Temperature: 3.5}
	assert.Error(t, cfg.Finalize())
}

func TestAuthConfigRequiredFields(t *testing.T) {
	cfg := AuthConfig{TokenSecret: "secret"}
	assert.ErrorContains(t, cfg.Finalize(), "admin_password_hash")

	cfg = AuthConfig{AdminPasswordHash: "hash"}
	assert.ErrorContains(t, cfg.Finalize(), "token_secret")
}

func TestAuthConfigDefaults(t *testing.T) {
	cfg := AuthConfig{AdminPasswordHash: "hash", TokenSecret: "secret"}
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "12h", cfg.TokenTTL)
}

func TestUploadsConfigParsesHumanSize(t *testing.T) {
	cfg := UploadsConfig{MaxUploadSize: "5MB"}
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, int64(5*1000*1000), cfg.MaxUploadSizeBytes())
	assert.Contains(t, cfg.AllowedTypes, "image/png")
}

func TestUploadsConfigInvalidSize(t *testing.T) {
	cfg := UploadsConfig{MaxUploadSize: "lots"}
	assert.Error(t, cfg.Finalize())
}

func TestServerConfigDefaults(t *testing.T) {
	cfg := ServerConfig{}
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, 8001, cfg.Port)
	assert.NotEmpty(t, cfg.Addr())
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{Name: "pressbox", User: "pressbox"}
	require.NoError(t, cfg.Finalize())

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestDatabaseConfigRequiredFields(t *testing.T) {
	cfg := DatabaseConfig{User: "pressbox"}
	assert.ErrorContains(t, cfg.Finalize(), "name")
}

func TestDatabaseConfigEnvOverride(t *testing.T) {
	t.Setenv(EnvDatabaseHost, "db.internal")

	cfg := DatabaseConfig{Name: "pressbox", User: "pressbox"}
	require.NoError(t, cfg.Finalize())

	assert.Contains(t, cfg.DSN(), "host=db.internal")
}
