package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PAYMENT_DELAY", "")

	cfg, err := Load("marhaba")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Payment.Delay != 2500*time.Millisecond {
		t.Errorf("Payment.Delay = %v; want 2.5s", cfg.Payment.Delay)
	}
	if cfg.DefaultLang != "ar" {
		t.Errorf("DefaultLang = %q; want ar", cfg.DefaultLang)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PAYMENT_DELAY", "10ms")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load("marhaba")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Payment.Delay != 10*time.Millisecond {
		t.Errorf("Payment.Delay = %v; want 10ms", cfg.Payment.Delay)
	}
	if cfg.JWT.ExpirationHours != 2 {
		t.Errorf("JWT.ExpirationHours = %d; want 2", cfg.JWT.ExpirationHours)
	}
	if cfg.Cache.RedisURL == "" {
		t.Error("Cache.RedisURL should be set")
	}
}

func TestLoadRejectsNonPositiveExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_HOURS", "0")

	if _, err := Load("marhaba"); err == nil {
		t.Fatal("expected error for zero expiration")
	}
}
