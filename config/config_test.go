package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfigDefaults(t *testing.T) {
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.HTTP.Addr, ":8080")
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("Postgres.Port = %d, want 5432", cfg.Postgres.Port)
	}
	if !cfg.Postgres.RunMigrationsOnStart {
		t.Error("Postgres.RunMigrationsOnStart should default to true")
	}
	if cfg.Auth.Session.CookieName != "edinfinite_session" {
		t.Errorf("Auth.Session.CookieName = %q, want %q", cfg.Auth.Session.CookieName, "edinfinite_session")
	}
	if cfg.Auth.Session.TTL != 168*time.Hour {
		t.Errorf("Auth.Session.TTL = %v, want 168h", cfg.Auth.Session.TTL)
	}
	if cfg.Auth.CSRF.CookieName != "csrf_token" {
		t.Errorf("Auth.CSRF.CookieName = %q, want %q", cfg.Auth.CSRF.CookieName, "csrf_token")
	}
	if cfg.Auth.CSRF.HeaderName != "X-CSRF-Token" {
		t.Errorf("Auth.CSRF.HeaderName = %q, want %q", cfg.Auth.CSRF.HeaderName, "X-CSRF-Token")
	}
	if cfg.Auth.DevOverride.Enabled {
		t.Error("Auth.DevOverride.Enabled should default to false")
	}
}

func TestAppConfigFromEnvironment(t *testing.T) {
	environment := map[string]string{
		"HTTP_ADDR":                ":9090",
		"DB_HOST":                  "db.internal",
		"DB_PASSWORD":              "sekret",
		"AUTH_SESSION_SIGNING_KEY": "0123456789abcdef",
		"AUTH_SESSION_TTL":         "24h",
		"AUTH_CSRF_COOKIE_NAME":    "xsrf",
		"AUTH_DEV_OVERRIDE_ENABLED": "true",
		"AUTH_DEV_OVERRIDE_USER_ID": "dev-user-1",
	}

	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{
		Environment: environment,
		Prefix:      "",
	}); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.HTTP.Addr, ":9090")
	}
	if cfg.Postgres.Host != "db.internal" {
		t.Errorf("Postgres.Host = %q, want %q", cfg.Postgres.Host, "db.internal")
	}
	if cfg.Auth.Session.SigningKey != "0123456789abcdef" {
		t.Errorf("Auth.Session.SigningKey = %q", cfg.Auth.Session.SigningKey)
	}
	if cfg.Auth.Session.TTL != 24*time.Hour {
		t.Errorf("Auth.Session.TTL = %v, want 24h", cfg.Auth.Session.TTL)
	}
	if cfg.Auth.CSRF.CookieName != "xsrf" {
		t.Errorf("Auth.CSRF.CookieName = %q, want %q", cfg.Auth.CSRF.CookieName, "xsrf")
	}
	if !cfg.Auth.DevOverride.Enabled {
		t.Error("Auth.DevOverride.Enabled should be true")
	}
	if cfg.Auth.DevOverride.UserID != "dev-user-1" {
		t.Errorf("Auth.DevOverride.UserID = %q, want %q", cfg.Auth.DevOverride.UserID, "dev-user-1")
	}
}

func TestAuthConfigSanitizeRestoresEmptyNames(t *testing.T) {
	a := AuthConfig{}
	a.Sanitize()

	if a.Session.CookieName == "" || a.CSRF.CookieName == "" || a.CSRF.HeaderName == "" {
		t.Errorf("Sanitize left empty cookie/header names: %+v", a)
	}
	if a.Session.TTL <= 0 {
		t.Errorf("Sanitize left non-positive session TTL: %v", a.Session.TTL)
	}
}
