// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries every tunable the service reads at startup.
type Config struct {
	Port     string
	MongoURI string
	DBName   string
	LogLevel string

	// JWTSecret empty disables bearer auth (local development).
	JWTSecret string

	// Disclosure feed ingestion.
	FeedURL      string
	FeedRPS      float64
	SyncInterval time.Duration
}

// Load reads the environment into a Config, applying defaults for
// everything optional.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getenv("PORT", "5000"),
		MongoURI:     os.Getenv("MONGODB_URI"),
		DBName:       getenv("DB_NAME", "tradewatch"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		FeedURL:      os.Getenv("FEED_URL"),
		FeedRPS:      2,
		SyncInterval: time.Hour,
	}

	if raw := os.Getenv("FEED_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("FEED_RPS must be a number, got %q", raw)
		}
		cfg.FeedRPS = rps
	}
	if raw := os.Getenv("SYNC_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("SYNC_INTERVAL must be a duration, got %q", raw)
		}
		cfg.SyncInterval = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required fields are set and values are sane.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return errors.New("MONGODB_URI is required")
	}
	if c.DBName == "" {
		return errors.New("DB_NAME must not be empty")
	}
	if c.FeedRPS <= 0 {
		return errors.New("FEED_RPS must be > 0")
	}
	if c.SyncInterval < time.Minute {
		return fmt.Errorf("SYNC_INTERVAL must be at least 1m, got %s", c.SyncInterval)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
