// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"

	"blogcms/internal/models"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host            string
	Port            string
	Env             string // "development", "production", "testing"
	LogLevel        slog.Level
	ShutdownTimeout time.Duration

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Blog listing defaults
	PageSize    int
	MaxPageSize int

	// View counter throttling per client and post. A zero limit disables it.
	ViewRateLimit  int
	ViewRateWindow time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first when present; variables already set in the environment
// win. Returns an error if critical values are missing in production mode.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	p := &parser{}
	cfg := &Config{
		Host:            envOrDefault("APP_HOST", "0.0.0.0"),
		Port:            envOrDefault("APP_PORT", "8080"),
		Env:             envOrDefault("APP_ENV", "development"),
		LogLevel:        p.level("LOG_LEVEL", slog.LevelInfo),
		ShutdownTimeout: p.duration("SHUTDOWN_TIMEOUT", 10*time.Second),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "blogcms"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "blogcms"),

		PageSize:    p.int("BLOG_PAGE_SIZE", models.DefaultPageSize),
		MaxPageSize: p.int("BLOG_MAX_PAGE_SIZE", models.MaxPageSize),

		ViewRateLimit:  p.int("VIEW_RATE_LIMIT", 1),
		ViewRateWindow: p.duration("VIEW_RATE_WINDOW", time.Minute),
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// validate checks value ranges. Errors are keyed by environment variable.
func (c *Config) validate() error {
	return validation.Errors{
		"APP_ENV":            validation.Validate(c.Env, validation.In("development", "production", "testing")),
		"BLOG_PAGE_SIZE":     validation.Validate(c.PageSize, validation.Min(1)),
		"BLOG_MAX_PAGE_SIZE": validation.Validate(c.MaxPageSize, validation.Min(1), validation.Max(models.MaxPageSize)),
		"VIEW_RATE_LIMIT":    validation.Validate(c.ViewRateLimit, validation.Min(0)),
		"VIEW_RATE_WINDOW":   validation.Validate(c.ViewRateWindow, validation.Min(time.Second)),
		"SHUTDOWN_TIMEOUT":   validation.Validate(c.ShutdownTimeout, validation.Min(time.Duration(0))),
	}.Filter()
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parser collects typed environment values, remembering every variable
// that failed to parse.
type parser struct {
	errs validation.Errors
}

func (p *parser) fail(key string, err error) {
	if p.errs == nil {
		p.errs = validation.Errors{}
	}
	p.errs[key] = err
}

func (p *parser) int(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, errors.New("must be an integer"))
		return fallback
	}
	return n
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, errors.New("must be a duration such as 30s or 1m"))
		return fallback
	}
	return d
}

func (p *parser) level(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		p.fail(key, errors.New("must be one of debug, info, warn, error"))
		return fallback
	}
	return l
}
