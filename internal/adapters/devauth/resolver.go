package devauth

// Package devauth provides the non-production identity override. A
// Resolver is only constructed when the dev-override flag is enabled;
// production wiring passes a nil ports.DevOverrideResolver, so the
// override path cannot activate by accident.

import "strings"

// Resolver resolves a principal from the X-Dev-User-Id request header,
// falling back to a statically configured identity.
type Resolver struct {
	fallbackUserID string
}

// NewResolver constructs a dev override resolver. fallbackUserID may be
// empty, in which case only the per-request header resolves an identity.
func NewResolver(fallbackUserID string) *Resolver {
	return &Resolver{fallbackUserID: strings.TrimSpace(fallbackUserID)}
}

// Resolve returns the override identity. Precedence: explicit header
// value, then the configured fallback, then none.
func (r *Resolver) Resolve(headerValue string) (string, bool) {
	if v := strings.TrimSpace(headerValue); v != "" {
		return v, true
	}
	if r.fallbackUserID != "" {
		return r.fallbackUserID, true
	}
	return "", false
}
