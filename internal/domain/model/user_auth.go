//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"

	domainauth "github.com/edinfinite/platform-api/internal/domain/auth"
)

// UserAuth is the persistent authentication record for one principal.
// It shares its id with the principal's profile row and is deleted only by
// cascade from it. Timestamps are ms-epoch integers, matching the schema.
type UserAuth struct {
	ID           string  `json:"id"            db:"id"`
	Email        string  `json:"email"         db:"email"`
	PasswordHash *string `json:"-"             db:"password"`
	IsActive     bool    `json:"is_active"     db:"is_active"`
	CreatedAt    int64   `json:"created_at"    db:"created_at"`
	UpdatedAt    int64   `json:"updated_at"    db:"updated_at"`
	LastLoginAt  *int64  `json:"last_login_at" db:"last_login_at"`
	// FailedAttempts counts consecutive failures within the current
	// unlocked window; it resets to zero whenever locked_until is set and
	// whenever a login succeeds.
	FailedAttempts         int               `json:"-" db:"failed_attempts"`
	LockedUntil            *int64            `json:"-" db:"locked_until"`
	AuthMethod             domainauth.Method `json:"auth_method" db:"auth_method"`
	RequiresPasswordChange bool              `json:"requires_password_change" db:"requires_password_change"`
	// SessionNonce is the rotating per-user secret embedded in session
	// tokens at issuance. Rotating it invalidates every outstanding session.
	SessionNonce string `json:"-" db:"session_nonce"`
}

// LockedAt reports whether the record is locked at the given ms-epoch instant.
func (u *UserAuth) LockedAt(nowMs int64) bool {
	return u.LockedUntil != nil && *u.LockedUntil > nowMs
}

// LoginRequest carries the credentials submitted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates LoginRequest. The password is opaque and only checked
// for presence; the email is trimmed before lookup.
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required and cannot be empty")
	}
	if r.Password == "" {
		return errors.New("password is required and cannot be empty")
	}
	return nil
}

// NormalizedEmail returns the trimmed login email. Case folding is left to
// the citext column.
func (r *LoginRequest) NormalizedEmail() string {
	return strings.TrimSpace(r.Email)
}
