package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":4000" {
		t.Fatalf("unexpected default addr: %q", cfg.Addr)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Fatalf("unexpected default frontend URL: %q", cfg.FrontendURL)
	}
	if cfg.TokenExpiresMin != 60 || cfg.TokenTTL() != 60*time.Minute {
		t.Fatalf("unexpected default token lifetime: %d", cfg.TokenExpiresMin)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("unexpected default bcrypt cost: %d", cfg.BcryptCost)
	}
	if cfg.TicketBackend != "file" {
		t.Fatalf("unexpected default ticket backend: %q", cfg.TicketBackend)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	// envconfig reads the process environment; make sure the secret is
	// absent for this case.
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected missing JWT_SECRET to be rejected")
	}
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Setenv("TOKEN_EXPIRES_MIN", "0")
	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected zero token lifetime to be rejected")
	}
	t.Setenv("TOKEN_EXPIRES_MIN", "60")

	t.Setenv("TICKET_BACKEND", "mongodb")
	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected unknown ticket backend to be rejected")
	}
}

func TestLoadMailFromFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("EMAIL_USER", "app@example.com")
	t.Setenv("MAIL_FROM", "")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MailFrom != "app@example.com" {
		t.Fatalf("expected MailFrom to fall back to EMAIL_USER, got %q", cfg.MailFrom)
	}
}
