package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AnthropicRequiresKey(t *testing.T) {
	cfg := Default()
	cfg.Provider = "anthropic"

	assert.Error(t, cfg.Validate())

	cfg.AnthropicAPIKey = "sk-test"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_OpenAIRequiresKey(t *testing.T) {
	cfg := Default()
	cfg.Provider = "openai"

	assert.Error(t, cfg.Validate())

	cfg.OpenAIAPIKey = "sk-test"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := Default()
	cfg.Provider = "groq"

	assert.Error(t, cfg.Validate())
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PROMPTPOLISH_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PROMPTPOLISH_DELIVERY_TARGET", "claude")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "claude", cfg.DeliveryTarget)
}

func TestDefault_HasUsableValues(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "web", cfg.DeliveryTarget)
	assert.NotEmpty(t, cfg.StorageDir)
	assert.NotEmpty(t, cfg.UsersDBPath)
	assert.Greater(t, cfg.MaxOutputTokens, int64(0))
}
