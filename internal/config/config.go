// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// API base URLs per environment. The backend host is selected from APP_ENV
// unless API_BASE_URL is set explicitly.
const (
	ProductionAPIBaseURL  = "https://api.phish.directory"
	DevelopmentAPIBaseURL = "http://localhost:3000"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Backend API. Empty means: derive from APP_ENV.
	APIBaseURL string `env:"API_BASE_URL"`

	// Session token persistence: "file" or "redis".
	SessionStore string `env:"SESSION_STORE" envDefault:"file"`

	// Path for the file token store. Empty means a default under the
	// user config directory.
	TokenFile string `env:"TOKEN_FILE"`

	// Redis connection, required only when SESSION_STORE=redis.
	RedisURL string `env:"REDIS_URL"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Outbound API call timeout
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// ResolveAPIBaseURL returns the backend base URL, honoring an explicit
// API_BASE_URL override before falling back to the environment default.
func (c *Config) ResolveAPIBaseURL() string {
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	if c.IsProduction() {
		return ProductionAPIBaseURL
	}
	return DevelopmentAPIBaseURL
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	switch c.SessionStore {
	case "file":
		// TokenFile may be empty; the store picks a default path.
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q (want \"file\" or \"redis\")", c.SessionStore)
	}
	return nil
}

// Load parses environment variables and returns a Config.
// Returns an error if required variables are missing or inconsistent.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
