package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment
// variables, optionally seeded from a .env file.
type Config struct {
	Port    int    `env:"PORT" envDefault:"3000"`
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// TLS certificate and key for the HTTPS listener. When either is empty
	// the server falls back to plain HTTP with a warning.
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the optional .env file and parses the environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is authoritative.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address in :port form.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// TLSEnabled reports whether a certificate/key pair is configured.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}
