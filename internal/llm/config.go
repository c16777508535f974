package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures the coach's provider. It is filled by
// internal/config from the coach.* keys.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock" or "" (coach disabled).
	Provider string

	Anthropic  ProviderConfig
	OpenAI     ProviderConfig
	Gemini     ProviderConfig
	OpenRouter ProviderConfig
	Retry      RetryConfig

	// Timeout bounds one coach request including retries.
	Timeout time.Duration
}

// ProviderConfig is the per-provider part of Config.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string // OpenAI-compatible endpoints only
}

// RetryConfig configures retry behaviour for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults. The coach stays disabled until a
// provider is chosen or discovered.
func DefaultConfig() Config {
	return Config{
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// Enabled reports whether a provider has been selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// Discover fills Provider and its key from the vendors' standard
// environment variables when no provider was configured explicitly.
// It reports whether a key was found.
func (c *Config) Discover() bool {
	if c.Provider != "" {
		return true
	}
	candidates := []struct {
		env      string
		provider string
		target   *ProviderConfig
	}{
		{"ANTHROPIC_API_KEY", "anthropic", &c.Anthropic},
		{"OPENAI_API_KEY", "openai", &c.OpenAI},
		{"GEMINI_API_KEY", "gemini", &c.Gemini},
		{"OPENROUTER_API_KEY", "openrouter", &c.OpenRouter},
	}
	for _, cand := range candidates {
		if k := os.Getenv(cand.env); k != "" {
			c.Provider = cand.provider
			if cand.target.APIKey == "" {
				cand.target.APIKey = k
			}
			return true
		}
	}
	return false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var pc ProviderConfig
	switch c.Provider {
	case "anthropic":
		pc = c.Anthropic
	case "openai":
		pc = c.OpenAI
	case "gemini":
		pc = c.Gemini
	case "openrouter":
		pc = c.OpenRouter
	case "mock", "":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if pc.APIKey == "" {
		return fmt.Errorf("coach.%s.api_key (WORTSCHATZ_COACH_%s_API_KEY) is required for the %s provider",
			c.Provider, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}

// resolveModel maps a short alias to a full model ID. Unknown names pass
// through so full IDs can be configured directly.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
