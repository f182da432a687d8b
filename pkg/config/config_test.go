package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected development default env, got %q", cfg.App.Env)
	}
	if cfg.Payments.ConfirmationDelay != 3*time.Second {
		t.Fatalf("unexpected confirmation delay %s", cfg.Payments.ConfirmationDelay)
	}
	if cfg.Cart.RemovalGraceMS != 300 {
		t.Fatalf("unexpected removal grace %d", cfg.Cart.RemovalGraceMS)
	}
	if cfg.DB.DSN == "" {
		t.Fatal("expected in-memory DSN default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WARUNGKITA_APP_ENV", "production")
	t.Setenv("WARUNGKITA_PAYMENTS_CONFIRMATION_DELAY", "50ms")
	t.Setenv("WARUNGKITA_CHECKOUT_SESSION_TTL_MINUTES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected production env, got %q", cfg.App.Env)
	}
	if cfg.Payments.ConfirmationDelay != 50*time.Millisecond {
		t.Fatalf("unexpected confirmation delay %s", cfg.Payments.ConfirmationDelay)
	}
	if cfg.Checkout.SessionTTL() != 5*time.Minute {
		t.Fatalf("unexpected session ttl %s", cfg.Checkout.SessionTTL())
	}
}
