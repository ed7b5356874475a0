package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"postgres" validate:"oneof=postgres mysql sqlite"`
	DatabaseURL    string `envconfig:"DATABASE_URL" validate:"required"`
	Environment    string `envconfig:"ENVIRONMENT" default:"development" validate:"oneof=development test production"`

	// Connection pool
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10" validate:"gte=0"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5" validate:"gte=0"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m" validate:"gte=0"`

	ConnectTimeout     time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s" validate:"gt=0"`
	SlowQueryThreshold time.Duration `envconfig:"DB_SLOW_QUERY_THRESHOLD" default:"200ms" validate:"gte=0"`
	AutoMigrate        bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

var validate = validator.New()

// Load reads .env (if present) and the process environment.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	// Containers pass variables directly, so a missing .env is fine
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// IsDevelopment returns true unless running in production
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}
