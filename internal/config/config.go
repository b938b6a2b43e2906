package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string
	Database    DatabaseConfig
}

// DatabaseConfig holds connection pool configuration.
//
// The pool ceiling is deliberately small: many process instances may run
// concurrently and each opens its own pool, so total connections scale with
// instance count, not with this number.
type DatabaseConfig struct {
	URL             string
	MaxConns        int
	AcquireTimeout  time.Duration
	MaxConnIdleTime time.Duration
}

// Validate checks the parts of the database configuration that have no
// usable default. It is called on first storage access, not at process
// start.
func (c DatabaseConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	return nil
}

// Load loads configuration from environment variables, with a .env file as
// a local-development convenience.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_MAX_CONNS", 3)
	viper.SetDefault("DB_ACQUIRE_TIMEOUT", "5s")
	viper.SetDefault("DB_MAX_CONN_IDLE_TIME", "30s")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Database: DatabaseConfig{
			URL:             viper.GetString("DATABASE_URL"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			AcquireTimeout:  viper.GetDuration("DB_ACQUIRE_TIMEOUT"),
			MaxConnIdleTime: viper.GetDuration("DB_MAX_CONN_IDLE_TIME"),
		},
	}

	return config, nil
}
