package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// SMTPConfig holds outbound mail credentials.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL         string
	Port                string
	AllowedOrigins      []string
	JWTSecret           string
	TokenTTL            time.Duration
	Environment         string
	OwnerEmail          string
	SMTP                SMTPConfig
	RateLimitContact    RateLimitConfig
	RateLimitNewsletter RateLimitConfig
}

// Development reports whether the app runs outside production.
func (c *Config) Development() bool {
	return c.Environment != "production"
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:       parseDuration(getEnv("JWT_TTL", "24h")),
		Environment:    getEnv("APP_ENV", "development"),
		OwnerEmail:     getEnv("OWNER_EMAIL", "michelle@michellealmonte.com"),
		SMTP: SMTPConfig{
			Host: getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port: parseInt(getEnv("SMTP_PORT", "587"), 587),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
		},
	}
	cfg.SMTP.From = getEnv("MAIL_FROM", cfg.SMTP.User)

	contact, err := parseRateLimit(getEnv("RATE_LIMIT_CONTACT", "5/hour"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CONTACT value: %w", err)
	}
	cfg.RateLimitContact = contact

	newsletter, err := parseRateLimit(getEnv("RATE_LIMIT_NEWSLETTER", "3/hour"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_NEWSLETTER value: %w", err)
	}
	cfg.RateLimitNewsletter = newsletter

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseInt(input string, fallback int) int {
	n, err := strconv.Atoi(input)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
