package coach

import "time"

// Config holds tip generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one Explain call including retries.
	Timeout time.Duration
}

// DefaultConfig returns the defaults used by the TUI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.7,
		Timeout:     20 * time.Second,
	}
}
