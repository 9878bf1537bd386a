package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	Environment   string
	RunMigrations bool
	MigrationsDir string

	AdminEmail    string
	AdminPassword string

	CompanyName      string
	CompanyAddress   string
	CompanyHRManager string
	DocumentsDir     string

	DefaultAnnualLeaveDays int

	ContractWarningDays       int
	MedicalExamWarningDays    int
	SafetyTrainingWarningDays int
	NotifyCheckInterval       time.Duration
	NotifyDedupHistory        bool

	EmailEnabled bool
	EmailFrom    string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPUseTLS   bool
}

func Load() Config {
	return Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		Environment:   getEnv("APP_ENV", "development"),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		CompanyName:      getEnv("COMPANY_NAME", "Example Sp. z o.o."),
		CompanyAddress:   getEnv("COMPANY_ADDRESS", ""),
		CompanyHRManager: getEnv("COMPANY_HR_MANAGER", ""),
		DocumentsDir:     getEnv("DOCUMENTS_DIR", "documents"),

		DefaultAnnualLeaveDays: getEnvInt("DEFAULT_ANNUAL_LEAVE_DAYS", 26),

		ContractWarningDays:       getEnvInt("CONTRACT_EXPIRY_WARNING_DAYS", 30),
		MedicalExamWarningDays:    getEnvInt("MEDICAL_EXAM_WARNING_DAYS", 30),
		SafetyTrainingWarningDays: getEnvInt("SAFETY_TRAINING_WARNING_DAYS", 30),
		NotifyCheckInterval:       getEnvDuration("NOTIFY_CHECK_INTERVAL", time.Hour),
		NotifyDedupHistory:        getEnvBool("NOTIFY_DEDUP_HISTORY", false),

		EmailEnabled: getEnvBool("EMAIL_ENABLED", false),
		EmailFrom:    getEnv("EMAIL_FROM", "no-reply@example.com"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPUseTLS:   getEnvBool("SMTP_USE_TLS", true),
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if strings.TrimSpace(c.AdminPassword) == "" {
			return fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
	}
	if c.ContractWarningDays <= 0 || c.MedicalExamWarningDays <= 0 || c.SafetyTrainingWarningDays <= 0 {
		return fmt.Errorf("warning windows must be positive day counts")
	}
	if c.NotifyCheckInterval <= 0 {
		return fmt.Errorf("NOTIFY_CHECK_INTERVAL must be positive")
	}
	if c.EmailEnabled && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST must be set when EMAIL_ENABLED is true")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvDuration accepts either a Go duration string or a
// bare number of seconds, matching the legacy configuration.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
