package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "ticked.db"
	DefaultSessionName    = "session"
)

// QuoteConfig controls the remote quote provider.
type QuoteConfig struct {
	Endpoint  string `toml:"endpoint"`
	TimeoutMs int    `toml:"timeout_ms"`
}

// AuthConfig controls session token signing. The secret can always be
// overridden with the TICKED_AUTH_SECRET environment variable.
type AuthConfig struct {
	Secret string `toml:"secret"`
}

type Config struct {
	DBPath      string      `toml:"db_path"`
	SessionPath string      `toml:"session_path"`
	Quote       QuoteConfig `toml:"quote"`
	Auth        AuthConfig  `toml:"auth"`
}

// Dir returns the directory holding ticked's config, database and
// session files, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "ticked")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// LoadOrCreate reads the config file at path, writing defaults there
// first if it does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	fallback := defaultConfig(filepath.Dir(path))
	if cfg.DBPath == "" {
		cfg.DBPath = fallback.DBPath
	}
	if cfg.SessionPath == "" {
		cfg.SessionPath = fallback.SessionPath
	}
	if cfg.Quote.Endpoint == "" {
		cfg.Quote.Endpoint = fallback.Quote.Endpoint
	}
	if cfg.Quote.TimeoutMs <= 0 {
		cfg.Quote.TimeoutMs = fallback.Quote.TimeoutMs
	}
	if cfg.Auth.Secret == "" {
		cfg.Auth.Secret = fallback.Auth.Secret
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv("TICKED_AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	return cfg
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(dir string) Config {
	return Config{
		DBPath:      filepath.Join(dir, DefaultDBName),
		SessionPath: filepath.Join(dir, DefaultSessionName),
		Quote: QuoteConfig{
			Endpoint:  "https://zenquotes.io/api/random",
			TimeoutMs: 4500,
		},
		Auth: AuthConfig{
			Secret: "dev-only-change-me",
		},
	}
}
