package config

import (
	"encoding/base64"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGOSTRING", "mongodb://localhost:27017")
	t.Setenv("PASETO_SECRET", base64.URLEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef")))
	t.Setenv("SESSION_TTL", "")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("PORT", "3000")
	t.Setenv("BASE_URL", "")
}

func TestLoadConfigMissingMongo(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MONGOSTRING", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing MONGOSTRING")
	}
}

func TestLoadConfigSuccess(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("APP_TIMEZONE", "Asia/Jakarta")
	t.Setenv("BASE_URL", "https://portal.example.com/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("expected 2h session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.Location.String() != "Asia/Jakarta" {
		t.Fatalf("unexpected location %s", cfg.Location)
	}
	if cfg.BaseURL != "https://portal.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.BaseURL)
	}
	if cfg.MongoDB != "employee-portal-db" {
		t.Fatalf("unexpected default database %s", cfg.MongoDB)
	}
}

func TestLoadConfigInvalidTTL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_TTL", "not-a-duration")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for invalid SESSION_TTL")
	}
}

func TestLoadConfigInvalidTimezone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown APP_TIMEZONE")
	}
}

func TestLoadConfigShortSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PASETO_SECRET", base64.URLEncoding.EncodeToString([]byte("short")))

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for a PASETO_SECRET that is not 32 bytes")
	}
}

func TestLoadConfigGeneratesSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PASETO_SECRET", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := base64.URLEncoding.DecodeString(cfg.PasetoSecret)
	if err != nil || len(decoded) != 32 {
		t.Fatalf("expected a generated 32-byte secret, got %q (%v)", cfg.PasetoSecret, err)
	}
}

func TestGetAllowedOriginsIncludesBaseURL(t *testing.T) {
	origins := GetAllowedOrigins(&AppConfig{BaseURL: "https://portal.example.com"})
	if origins[len(origins)-1] != "https://portal.example.com" {
		t.Fatalf("expected base URL in allowed origins, got %v", origins)
	}
}
