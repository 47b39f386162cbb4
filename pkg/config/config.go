package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Point exchange settings (spec'd as external configuration: members
	// exchange PointExchangeRate points for PointUnitValue currency).
	PointExchangeRate    int64
	PointUnitValue       int64
	PointExchangeMinimum int64

	// RateLimit is a ulule/limiter formatted rate, e.g. "120-M".
	RateLimit string

	ShutdownTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("POINT_EXCHANGE_RATE", 10)
	viper.SetDefault("POINT_UNIT_VALUE", 1000)
	viper.SetDefault("POINT_EXCHANGE_MINIMUM", 10)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.PointExchangeRate = viper.GetInt64("POINT_EXCHANGE_RATE")
	cfg.PointUnitValue = viper.GetInt64("POINT_UNIT_VALUE")
	cfg.PointExchangeMinimum = viper.GetInt64("POINT_EXCHANGE_MINIMUM")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.ShutdownTimeout = viper.GetDuration("SHUTDOWN_TIMEOUT")

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is required")
	}
	if cfg.PointExchangeRate <= 0 {
		return nil, fmt.Errorf("POINT_EXCHANGE_RATE must be positive, got %d", cfg.PointExchangeRate)
	}
	if cfg.PointUnitValue <= 0 {
		return nil, fmt.Errorf("POINT_UNIT_VALUE must be positive, got %d", cfg.PointUnitValue)
	}
	if cfg.PointExchangeMinimum < cfg.PointExchangeRate {
		return nil, fmt.Errorf("POINT_EXCHANGE_MINIMUM (%d) must be at least one rate unit (%d)", cfg.PointExchangeMinimum, cfg.PointExchangeRate)
	}

	return cfg, nil
}
