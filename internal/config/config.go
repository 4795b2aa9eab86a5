package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Environment modes. Development returns full error detail to clients;
// production never does.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all process-wide configuration. It is parsed once at startup
// and never mutated afterwards; components receive it (or slices of it) by
// constructor injection.
type Config struct {
	Environment string `env:"APP_ENV"   envDefault:"development"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB"  envDefault:"corporate_site"`

	Token TokenConfig

	SMTP SMTPConfig

	// TrustedProxies is consumed by an external rate-limiting collaborator;
	// the API itself only carries it.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// TokenConfig configures the token service.
type TokenConfig struct {
	Secret    string        `env:"JWT_SECRET"`
	Issuer    string        `env:"JWT_ISSUER"   envDefault:"corporate-site-api"`
	Audience  string        `env:"JWT_AUDIENCE" envDefault:"corporate-site"`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN"`
}

// SMTPConfig configures the notification mailer. NotifyTo is where new
// inquiry and application notifications are sent.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
	NotifyTo string `env:"SMTP_NOTIFY_TO"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if cfg.Token.ExpiresIn == 0 {
		if cfg.IsProduction() {
			cfg.Token.ExpiresIn = 15 * time.Minute
		} else {
			cfg.Token.ExpiresIn = 24 * time.Hour
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid APP_ENV %q: must be %q or %q", c.Environment, EnvDevelopment, EnvProduction)
	}

	if c.MongoURI == "" {
		return fmt.Errorf("missing MONGO_URI environment variable")
	}
	if c.MongoDB == "" {
		return fmt.Errorf("missing MONGO_DB environment variable")
	}
	if strings.TrimSpace(c.Token.Secret) == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}

	return nil
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
