package quote

import (
	"os"
	"strconv"
)

// Config holds configuration for the remote quote provider.
type Config struct {
	Endpoint  string
	TimeoutMs int
}

// DefaultConfig returns a Config pointing at the public ZenQuotes API.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://zenquotes.io/api/random",
		TimeoutMs: 4500,
	}
}

// LoadConfig reads quote provider configuration from environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TICKED_QUOTE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TICKED_QUOTE_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMs = ms
		}
	}

	return cfg
}
