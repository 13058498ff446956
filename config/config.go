package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	GinMode        string   `env:"GIN_MODE" envDefault:"debug"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	// Logging
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"` // empty = stdout only
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
	// Form instances
	FormInstanceTTL     time.Duration `env:"FORM_INSTANCE_TTL" envDefault:"30m"`
	FormMaxInstances    int           `env:"FORM_MAX_INSTANCES" envDefault:"10000"`
	FormCleanupInterval time.Duration `env:"FORM_CLEANUP_INTERVAL" envDefault:"5m"`
	// Rate Limiting Configuration
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; a missing file is fine
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// Trailing slashes would never match an Origin header
	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimRight(strings.TrimSpace(origin), "/")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(cfg.AllowedOrigins) == 0 {
		log.Println("WARNING: ALLOWED_ORIGINS is empty. Cross-origin requests will be rejected.")
	}

	return cfg, nil
}

// Validate checks the limits that would otherwise make the server unusable.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.FormInstanceTTL <= 0 {
		errs = append(errs, errors.New("FORM_INSTANCE_TTL must be positive"))
	}
	if c.FormMaxInstances <= 0 {
		errs = append(errs, errors.New("FORM_MAX_INSTANCES must be positive"))
	}
	if c.FormCleanupInterval <= 0 {
		errs = append(errs, errors.New("FORM_CLEANUP_INTERVAL must be positive"))
	}
	if c.RateLimitRPS <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must be positive"))
	}
	if c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be positive"))
	}
	return errors.Join(errs...)
}
