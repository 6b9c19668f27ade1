// internal/config/config.go
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
		AllowOrigins []string      `json:"allow_origins"`
	}
	Email struct {
		Provider string `json:"provider"`
		FromName string `json:"from_name"`
	} `json:"email"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	Redis struct {
		URL    string `json:"url"`
		Prefix string `json:"prefix"`
	} `json:"redis"`
	Quota struct {
		Store                string `json:"store"`
		Timezone             string `json:"timezone"`
		InternshipLimit      int    `json:"internship_limit"`
		ProjectLimit         int    `json:"project_limit"`
		ApplicationsPerMonth int    `json:"applications_per_month"`
	} `json:"quota"`
	Workflow struct {
		DwellTime       time.Duration `json:"dwell_time"`
		ScrollThreshold float64       `json:"scroll_threshold"`
		ClaimTimeout    time.Duration `json:"claim_timeout"`
	} `json:"workflow"`
	Premium struct {
		PeriodMonths int `json:"period_months"`
	} `json:"premium"`
	BaseURL string `json:"base_url"`
}

const (
	QuotaStorePostgres = "postgres"
	QuotaStoreRedis    = "redis"
)

func Load() *Config {
	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "nextintern")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = time.Hour * 24

	// Email configuration
	cfg.Email.Provider = getEnv("EMAIL_PROVIDER", "sendgrid")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "NextIntern")
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")
	cfg.SMTP.Host = getEnv("SMTP_HOST", "localhost")
	cfg.SMTP.Port = getEnvInt("SMTP_PORT", 587)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "")

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.AllowOrigins = []string{getEnv("CORS_ALLOW_ORIGIN", "http://localhost:3000")}

	// Quota ledger
	cfg.Quota.Store = getEnv("QUOTA_STORE", QuotaStorePostgres)
	cfg.Quota.Timezone = getEnv("QUOTA_TIMEZONE", "UTC")
	cfg.Quota.InternshipLimit = getEnvInt("QUOTA_LIMIT_INTERNSHIP", 3)
	cfg.Quota.ProjectLimit = getEnvInt("QUOTA_LIMIT_PROJECT", 2)
	cfg.Quota.ApplicationsPerMonth = getEnvInt("QUOTA_APPLICATION_LIMIT", 0)
	cfg.Redis.URL = getEnv("REDIS_URL", "redis://localhost:6379/0")
	cfg.Redis.Prefix = getEnv("REDIS_PREFIX", "nextintern:quota")

	// Submission workflow
	cfg.Workflow.DwellTime = getEnvDuration("WORKFLOW_DWELL_TIME", 30*time.Second)
	cfg.Workflow.ScrollThreshold = float64(getEnvInt("WORKFLOW_SCROLL_THRESHOLD", 50))
	cfg.Workflow.ClaimTimeout = getEnvDuration("WORKFLOW_CLAIM_TIMEOUT", 2*time.Minute)

	cfg.Premium.PeriodMonths = getEnvInt("PREMIUM_PERIOD_MONTHS", 1)

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:3000")

	return cfg
}

// Location resolves the quota timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Quota.Timezone)
	if err != nil {
		slog.Warn("Unknown quota timezone, using UTC", "timezone", c.Quota.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Ignoring invalid integer setting", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Ignoring invalid duration setting", "key", key, "value", value)
		return defaultValue
	}
	return d
}
