// Package config reads process settings from the environment, optionally
// seeded from a local .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"github.com/tinoosan/social/internal/service/message"
)

// StoreKind names the storage backend selected by the configuration.
type StoreKind string

const (
	StorePostgres StoreKind = "postgres"
	StoreSQLite   StoreKind = "sqlite"
	StoreMemory   StoreKind = "memory"
)

type Config struct {
	HTTPAddr           string        `env:"HTTP_ADDR,default=:8080"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	SQLitePath         string        `env:"SQLITE_PATH"`
	LogLevel           string        `env:"LOG_LEVEL,default=info"`
	LogFormat          string        `env:"LOG_FORMAT,default=json"`
	// PostedByPolicy decides who may create a message. "account" (default)
	// accepts any registered account. "prior_message" accepts only accounts
	// that already have a message, so a store with no messages rejects every
	// create.
	PostedByPolicy     string        `env:"POSTED_BY_POLICY,default=account"`
	AuthRateLimitRPS   float64       `env:"AUTH_RATE_LIMIT_RPS,default=0"`
	AuthRateLimitBurst int           `env:"AUTH_RATE_LIMIT_BURST,default=5"`
	DevSeed            bool          `env:"DEV_SEED,default=false"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return FromEnvSet(es)
}

// FromEnvSet decodes and validates a configuration from an explicit set.
func FromEnvSet(es env.EnvSet) (Config, error) {
	var cfg Config
	if err := env.Unmarshal(es, &cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if _, err := cfg.PosterPolicy(); err != nil {
		return Config{}, err
	}
	if cfg.AuthRateLimitRPS < 0 {
		return Config{}, errors.New("AUTH_RATE_LIMIT_RPS must not be negative")
	}
	if cfg.AuthRateLimitRPS > 0 && cfg.AuthRateLimitBurst < 1 {
		return Config{}, errors.New("AUTH_RATE_LIMIT_BURST must be at least 1")
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return cfg, nil
}

// Store picks postgres when DATABASE_URL is set, then sqlite, then memory.
func (c Config) Store() StoreKind {
	switch {
	case strings.TrimSpace(c.DatabaseURL) != "":
		return StorePostgres
	case strings.TrimSpace(c.SQLitePath) != "":
		return StoreSQLite
	default:
		return StoreMemory
	}
}

func (c Config) PosterPolicy() (message.PosterPolicy, error) {
	return message.ParsePosterPolicy(c.PostedByPolicy)
}
