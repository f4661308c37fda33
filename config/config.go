// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Billing  BillingConfig
	Email    EmailConfig
	CatchUp  CatchUpConfig
	Throttle ThrottleConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Driver          string // sqlite or postgres
	URL             string // DSN for postgres, file path for sqlite
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis configuration. Batch runs are only recorded when enabled.
type RedisConfig struct {
	Enabled  bool
	URL      string
	Password string
	DB       int
	RunTTL   time.Duration
}

// BillingConfig holds reconciliation engine settings.
type BillingConfig struct {
	PayeeCodeWidth            int
	PlaceholderBroadcastCount int
	Timezone                  string
}

// EmailConfig holds reconciliation report email configuration.
type EmailConfig struct {
	ResendAPIKey    string
	FromName        string
	FromEmail       string
	ReportRecipient string
	ResendBaseURL   string // Empty uses the Resend default
}

// ThrottleConfig limits how often one client may trigger batch endpoints.
// A non-positive MaxTriggers disables throttling.
type ThrottleConfig struct {
	MaxTriggers int
	Window      time.Duration
}

// CatchUpConfig holds the periodic generation catch-up worker configuration.
type CatchUpConfig struct {
	Enabled  bool
	Interval time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "127.0.0.1"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DATABASE_DRIVER", "sqlite"),
			URL:             getEnv("DATABASE_URL", "billing.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			URL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			RunTTL:   getEnvAsDuration("REDIS_BATCH_RUN_TTL", 30*24*time.Hour),
		},
		Billing: BillingConfig{
			PayeeCodeWidth:            getEnvAsInt("BILLING_PAYEE_CODE_WIDTH", 4),
			PlaceholderBroadcastCount: getEnvAsInt("BILLING_PLACEHOLDER_BROADCAST_COUNT", 4),
			Timezone:                  getEnv("BILLING_TIMEZONE", "Asia/Tokyo"),
		},
		Email: EmailConfig{
			ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
			FromName:        getEnv("RESEND_FROM_NAME", "Billing Reconciliation"),
			FromEmail:       getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
			ReportRecipient: getEnv("REPORT_RECIPIENT", ""),
			ResendBaseURL:   getEnv("RESEND_BASE_URL", ""),
		},
		CatchUp: CatchUpConfig{
			Enabled:  getEnvAsBool("CATCHUP_WORKER_ENABLED", true),
			Interval: getEnvAsPositiveDuration("CATCHUP_WORKER_INTERVAL", time.Hour),
		},
		Throttle: ThrottleConfig{
			MaxTriggers: getEnvAsInt("BATCH_TRIGGER_LIMIT", 10),
			Window:      getEnvAsDuration("BATCH_TRIGGER_WINDOW", time.Minute),
		},
	}
}

// ReportEnabled reports whether a reconciliation report can be sent.
func (c EmailConfig) ReportEnabled() bool {
	return c.ResendAPIKey != "" && c.ReportRecipient != ""
}

// Location resolves the billing timezone, falling back to UTC.
func (c BillingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsPositiveDuration is getEnvAsDuration for settings that drive a ticker;
// zero and negative values fall back to the default.
func getEnvAsPositiveDuration(key string, defaultValue time.Duration) time.Duration {
	if duration := getEnvAsDuration(key, defaultValue); duration > 0 {
		return duration
	}
	return defaultValue
}
