package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	MigrationsPath   string
	JWTSecret        string
	JWTExpiry        time.Duration
	RolloverInterval time.Duration
	DefaultLocale    string
	LogLevel         string
	LogFormat        string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment
		// itself (Docker, CI, etc.).
	}

	cfg := &Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogFormat:      os.Getenv("LOG_FORMAT"),
	}

	expiryMinutes := 30
	if raw := strings.TrimSpace(os.Getenv("JWT_EXPIRY_MINUTES")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("config: JWT_EXPIRY_MINUTES must be a positive integer, got %q", raw)
		}
		expiryMinutes = parsed
	}
	cfg.JWTExpiry = time.Duration(expiryMinutes) * time.Minute

	cfg.RolloverInterval = time.Hour
	if raw := strings.TrimSpace(os.Getenv("ROLLOVER_INTERVAL")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("config: ROLLOVER_INTERVAL must be a positive duration, got %q", raw)
		}
		cfg.RolloverInterval = parsed
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET is required and cannot be empty")
	}

	if strings.TrimSpace(c.Port) == "" {
		c.Port = "8080"
	}
	for _, r := range c.Port {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: PORT must be numeric, got %q", c.Port)
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/eventdesk?sslmode=disable"
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = "info"
	}

	return nil
}
