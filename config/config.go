// Package config loads runtime configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// OpenAIConfig configures the optional full-report model call.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// Config is the full runtime configuration.
type Config struct {
	ServerPort         string
	LogLevel           string
	HTTPTimeoutSeconds int
	OpenAI             OpenAIConfig
}

// Load reads configuration from the environment. A missing .env file is
// not an error; every value has a default except the OpenAI key, which
// stays empty when unset (the full-report surface then reports it).
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:         getEnv("CLARITY_SERVER_PORT", "8080"),
		LogLevel:           getEnv("CLARITY_LOG_LEVEL", "info"),
		HTTPTimeoutSeconds: getEnvInt("CLARITY_HTTP_TIMEOUT_SECONDS", 30),
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature: getEnvFloat("OPENAI_TEMPERATURE", 0.2),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
