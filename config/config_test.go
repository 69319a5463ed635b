package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLARITY_SERVER_PORT", "")
	t.Setenv("CLARITY_LOG_LEVEL", "")
	t.Setenv("CLARITY_HTTP_TIMEOUT_SECONDS", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_MODEL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30, cfg.HTTPTimeoutSeconds)
	assert.Equal(t, "", cfg.OpenAI.APIKey)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 0.2, cfg.OpenAI.Temperature)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CLARITY_SERVER_PORT", "9000")
	t.Setenv("CLARITY_LOG_LEVEL", "debug")
	t.Setenv("CLARITY_HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_TEMPERATURE", "0.7")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.HTTPTimeoutSeconds)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, 0.7, cfg.OpenAI.Temperature)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("CLARITY_HTTP_TIMEOUT_SECONDS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 30, cfg.HTTPTimeoutSeconds)
}
