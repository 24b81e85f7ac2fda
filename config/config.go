// Package config loads the harness settings from environment variables.
// Every setting has a matching command-line flag; the environment provides
// the defaults and the flags override.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Netflix/go-env"
)

// Environment holds every setting the harness reads from the environment.
// CLMS_UI_URL has no default: leaving it unset disables the browser suite.
type Environment struct {
	APIBaseURL     string        `env:"CLMS_API_URL,default=http://localhost:3001/api"`
	UIBaseURL      string        `env:"CLMS_UI_URL"`
	Username       string        `env:"CLMS_USERNAME,default=admin"`
	Password       string        `env:"CLMS_PASSWORD,default=admin123"`
	RequestTimeout time.Duration `env:"CLMS_REQUEST_TIMEOUT,default=10s"`
	StartupTimeout time.Duration `env:"CLMS_STARTUP_TIMEOUT,default=30s"`
	Headless       bool          `env:"CLMS_HEADLESS,default=true"`
}

// Load reads and validates the environment.
func Load() (*Environment, error) {
	var cfg Environment
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Environment) error {
	if err := checkURL("CLMS_API_URL", cfg.APIBaseURL); err != nil {
		return err
	}
	if cfg.UIBaseURL != "" {
		if err := checkURL("CLMS_UI_URL", cfg.UIBaseURL); err != nil {
			return err
		}
	}
	if cfg.Username == "" {
		return fmt.Errorf("CLMS_USERNAME must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("CLMS_REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}
	if cfg.StartupTimeout <= 0 {
		return fmt.Errorf("CLMS_STARTUP_TIMEOUT must be positive, got %s", cfg.StartupTimeout)
	}
	return nil
}

func checkURL(name, value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http or https URL, got %q", name, value)
	}
	return nil
}
