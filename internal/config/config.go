// Package config reads the settings of the contact book from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the service and the interactive bot.
//
// Usage example:
// > PORT=8080 GIN_LOGGING=OFF LOG_LEVEL=debug BIRTHDAY_HORIZON_DAYS=14 go run ./cmd/service
type Config struct {
	Host        string `env:"HOST" envDefault:"localhost"`
	Port        int    `env:"PORT" envDefault:"8080"`
	GinLogging  string `env:"GIN_LOGGING" envDefault:"on"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HorizonDays int    `env:"BIRTHDAY_HORIZON_DAYS" envDefault:"7"`
}

// Load parses the environment variables into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the value ranges that the environment parser cannot express.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.HorizonDays < 0 {
		return fmt.Errorf("invalid BIRTHDAY_HORIZON_DAYS %d", c.HorizonDays)
	}
	return nil
}

// Address returns the host and port the service listens on.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RequestLogging returns false if HTTP request logging has been turned off.
func (c Config) RequestLogging() bool {
	return !strings.EqualFold(c.GinLogging, "off")
}
