package errors

import (
	"fmt"
	"testing"
)

func TestAuthErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantCode ErrorCode
		check    func(error) bool
	}{
		{"invalid credentials", InvalidCredentials(), ErrCodeInvalidCredentials, IsInvalidCredentials},
		{"account locked", AccountLocked(), ErrCodeAccountLocked, IsAccountLocked},
		{"unauthenticated", Unauthenticated("unauthenticated"), ErrCodeUnauthenticated, IsUnauthenticated},
		{"csrf", CSRFValidationFailed(), ErrCodeCSRF, IsCSRF},
		{"forbidden", Forbidden("room access denied"), ErrCodeForbidden, IsForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.wantCode)
			}
			if !tt.check(tt.err) {
				t.Errorf("code predicate returned false for %v", tt.err)
			}
			// Predicates must see through wrapping.
			wrapped := fmt.Errorf("handler: %w", tt.err)
			if !tt.check(wrapped) {
				t.Errorf("code predicate returned false for wrapped %v", wrapped)
			}
		})
	}
}

func TestInvalidCredentialsIsUniform(t *testing.T) {
	// Unknown user, inactive user, and wrong password share one constructor;
	// the message must not vary by cause.
	a, b := InvalidCredentials(), InvalidCredentials()
	if a.Message != b.Message || a.Code != b.Code {
		t.Errorf("InvalidCredentials() is not uniform: %+v vs %+v", a, b)
	}
}
