package sessioncookie

// Package sessioncookie implements the client-held session token as an
// HMAC-signed JWT. The token is opaque to clients in practice but carries
// the user id, auth method, and the session nonce observed at issuance;
// revocation happens by rotating the server-side nonce, never by tracking
// tokens.

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/edinfinite/platform-api/internal/domain/auth"
)

// ErrInvalidToken is returned for tokens that fail signature, shape, or
// expiry checks. Callers treat it as an unauthenticated request.
var ErrInvalidToken = errors.New("invalid session token")

const minKeyLen = 16

// sessionClaims is the JWT claim set for a session token.
type sessionClaims struct {
	jwt.RegisteredClaims
	AuthMethod string `json:"amr,omitempty"`
	Nonce      string `json:"nv,omitempty"`
}

// Codec issues and decodes HS256 session tokens.
type Codec struct {
	key []byte
	ttl time.Duration
}

// Config groups parameters for NewCodec.
type Config struct {
	// SigningKey is the HMAC secret. Must be at least 16 bytes.
	SigningKey string
	// TTL bounds token lifetime. Revocation does not wait for expiry; the
	// nonce check handles that. Defaults to 7 days when zero.
	TTL time.Duration
}

// NewCodec constructs a session codec from Config.
func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.SigningKey) < minKeyLen {
		return nil, fmt.Errorf("session signing key must be at least %d bytes", minKeyLen)
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Codec{key: []byte(cfg.SigningKey), ttl: ttl}, nil
}

// Issue signs a token for the given payload.
func (c *Codec) Issue(payload domainauth.SessionPayload) (string, error) {
	if payload.UserID == "" {
		return "", errors.New("session payload requires a user id")
	}
	if payload.Nonce == "" {
		return "", errors.New("session payload requires a nonce")
	}

	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		AuthMethod: string(payload.AuthMethod),
		Nonce:      payload.Nonce,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature and expiry and returns the embedded
// payload. The nonce it carries is NOT validated here; the auth service
// compares it against the live credential record on every request.
func (c *Codec) Decode(token string) (domainauth.SessionPayload, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(_ *jwt.Token) (any, error) {
		return c.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domainauth.SessionPayload{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return domainauth.SessionPayload{}, ErrInvalidToken
	}

	return domainauth.SessionPayload{
		UserID:     claims.Subject,
		AuthMethod: domainauth.Method(claims.AuthMethod),
		Nonce:      claims.Nonce,
	}, nil
}
