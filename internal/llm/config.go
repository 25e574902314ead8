package llm

import (
	"os"
	"strconv"
)

// DefaultEndpoint is the base URL of the chat-completions service.
const DefaultEndpoint = "https://createhack-grupo-15.apologetics.bot/api/v1"

// AskConfig holds all configuration for the ask collaborator.
type AskConfig struct {
	Enabled   bool
	LogCalls  bool
	Endpoint  string
	APIKey    string
	TimeoutMs int
	MaxTokens int
}

// DefaultConfig returns an AskConfig with the production endpoint.
func DefaultConfig() AskConfig {
	return AskConfig{
		Enabled:   true,
		LogCalls:  false,
		Endpoint:  DefaultEndpoint,
		TimeoutMs: 15000,
		MaxTokens: 1000,
	}
}

// LoadConfig reads ask configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() AskConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("JORNADA_ASK_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("JORNADA_ASK_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("JORNADA_ASK_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("JORNADA_ASK_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("JORNADA_ASK_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("JORNADA_ASK_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}

	return cfg
}
