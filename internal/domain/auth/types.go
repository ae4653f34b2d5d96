package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

// Method is how a principal authenticates.
// Keep string form for easy persistence and token claims.
type Method string

const (
	// MethodPassword is email/password login.
	MethodPassword Method = "password"
	// MethodOther covers externally provisioned accounts with no local password.
	MethodOther Method = "other"
)

// SessionPayload is the client-held session content. It is embedded in a
// signed cookie token; nothing is persisted server-side beyond the per-user
// nonce it is checked against.
type SessionPayload struct {
	UserID     string `json:"user_id"`
	AuthMethod Method `json:"auth_method"`
	// Nonce is the user's session_nonce observed at issuance. The session
	// is valid only while it still equals the live value on the auth record.
	Nonce string `json:"nv"`
}

// Complete reports whether the payload carries everything needed to
// resolve a principal. A payload missing either field fails closed.
func (p SessionPayload) Complete() bool {
	return p.UserID != "" && p.Nonce != ""
}

// Principal is the resolved identity attached to a request.
type Principal struct {
	UserID     string
	AuthMethod Method
	// DevOverride marks principals resolved through the development
	// override rather than a validated session.
	DevOverride bool
}
