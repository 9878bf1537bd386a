package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ContractWarningDays != 30 {
		t.Fatalf("expected default contract warning of 30 days, got %d", cfg.ContractWarningDays)
	}
	if cfg.NotifyCheckInterval != time.Hour {
		t.Fatalf("expected default check interval of 1h, got %v", cfg.NotifyCheckInterval)
	}
	if cfg.DefaultAnnualLeaveDays != 26 {
		t.Fatalf("expected default annual leave of 26 days, got %d", cfg.DefaultAnnualLeaveDays)
	}
}

func TestGetEnvDurationSeconds(t *testing.T) {
	t.Setenv("NOTIFY_CHECK_INTERVAL", "3600")
	if got := getEnvDuration("NOTIFY_CHECK_INTERVAL", time.Minute); got != time.Hour {
		t.Fatalf("expected 3600s to parse as 1h, got %v", got)
	}

	t.Setenv("NOTIFY_CHECK_INTERVAL", "90s")
	if got := getEnvDuration("NOTIFY_CHECK_INTERVAL", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}

	t.Setenv("NOTIFY_CHECK_INTERVAL", "not-a-duration")
	if got := getEnvDuration("NOTIFY_CHECK_INTERVAL", time.Minute); got != time.Minute {
		t.Fatalf("expected fallback for invalid value, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}

	cfg.DatabaseURL = "postgres://localhost/hr"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.EmailEnabled = true
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when email enabled without SMTP host")
	}
}
