package config

import "time"

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	// SigningKey is the HMAC key for session tokens. Required outside dev.
	SigningKey string `env:"SIGNING_KEY"`

	// CookieName is the name of the session cookie.
	CookieName string `env:"COOKIE_NAME" envDefault:"edinfinite_session"`

	// TTL is the maximum lifetime of an issued session token.
	// Revocation happens server-side via nonce rotation regardless of TTL.
	TTL time.Duration `env:"TTL" envDefault:"168h"`
}

// CSRFConfig controls the double-submit CSRF cookie and header names.
type CSRFConfig struct {
	// CookieName is the name of the CSRF cookie (readable by JavaScript).
	CookieName string `env:"COOKIE_NAME" envDefault:"csrf_token"`

	// HeaderName is the request header carrying the submitted token.
	HeaderName string `env:"HEADER_NAME" envDefault:"X-CSRF-Token"`
}

// DevOverrideConfig controls the non-production identity override.
// The resolver is only constructed when Enabled is true; otherwise the
// override path does not exist in the request pipeline.
type DevOverrideConfig struct {
	// Enabled turns the override on. Never set in production.
	Enabled bool `env:"ENABLED" envDefault:"false"`

	// UserID is the fallback identity used when no X-Dev-User-Id header
	// is present on the request.
	UserID string `env:"USER_ID"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Session cookie configuration.
	Session SessionConfig `envPrefix:"SESSION_"`

	// CSRF double-submit configuration.
	CSRF CSRFConfig `envPrefix:"CSRF_"`

	// DevOverride configuration (development only).
	DevOverride DevOverrideConfig `envPrefix:"DEV_OVERRIDE_"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.Session.CookieName == "" {
		a.Session.CookieName = "edinfinite_session"
	}
	if a.Session.TTL <= 0 {
		a.Session.TTL = 168 * time.Hour
	}
	if a.CSRF.CookieName == "" {
		a.CSRF.CookieName = "csrf_token"
	}
	if a.CSRF.HeaderName == "" {
		a.CSRF.HeaderName = "X-CSRF-Token"
	}
}
