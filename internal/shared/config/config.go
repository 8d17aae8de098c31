package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DatabaseURL        string
	Port               string
	Env                string
	LogLevel           string
	SummaryRefreshCron string
	MaxPointRows       int
	MaxAggregateRows   int
	AuditEnabled       bool
	CORSOrigins        string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:        NormalizeDatabaseURL(os.Getenv("DATABASE_URL")),
		Port:               os.Getenv("PORT"),
		Env:                os.Getenv("ENV"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		SummaryRefreshCron: os.Getenv("SUMMARY_REFRESH_CRON"),
		MaxPointRows:       getEnvInt("MAX_POINT_ROWS", 500),
		MaxAggregateRows:   getEnvInt("MAX_AGGREGATE_ROWS", 1000),
		AuditEnabled:       getEnvBool("AUDIT_ENABLED", true),
		CORSOrigins:        os.Getenv("CORS_ORIGINS"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "3001"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.SummaryRefreshCron == "" {
		// Every 30 minutes, seconds field first
		cfg.SummaryRefreshCron = "0 */30 * * * *"
	}
	if cfg.CORSOrigins == "" {
		cfg.CORSOrigins = "*"
	}

	return cfg
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// NormalizeDatabaseURL accepts the legacy postgres:// scheme.
func NormalizeDatabaseURL(url string) string {
	url = strings.TrimSpace(url)
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid integer env value, using default")
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
