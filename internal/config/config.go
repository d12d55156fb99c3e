package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
)

// Config holds the application configuration
type Config struct {
	// Development switches the logger to zap's development preset
	Development bool

	// Logging configuration
	LogLevel    zapcore.Level
	LogEncoding string // "console" or "json"
	LogOutput   string // zap output path; stderr keeps logs off the menu on stdout
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	config := &Config{}

	// Environment (default: production)
	switch env := os.Getenv("APP_ENV"); env {
	case "", "production":
		config.Development = false
	case "development":
		config.Development = true
	default:
		return nil, fmt.Errorf("invalid APP_ENV: %s (expected production or development)", env)
	}

	// Log level (default: warn)
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "warn"
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	config.LogLevel = level

	// Log encoding (default: console)
	config.LogEncoding = os.Getenv("LOG_ENCODING")
	if config.LogEncoding == "" {
		config.LogEncoding = "console"
	}
	if config.LogEncoding != "console" && config.LogEncoding != "json" {
		return nil, fmt.Errorf("invalid LOG_ENCODING: %s (expected console or json)", config.LogEncoding)
	}

	// Log output (default: stderr)
	config.LogOutput = os.Getenv("LOG_OUTPUT")
	if config.LogOutput == "" {
		config.LogOutput = "stderr"
	}

	return config, nil
}
