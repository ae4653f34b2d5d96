package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/edinfinite/platform-api/internal/domain/auth"
	"github.com/edinfinite/platform-api/internal/domain/model"
	apperrors "github.com/edinfinite/platform-api/internal/errors"
	"github.com/edinfinite/platform-api/internal/ports"
)

const (
	// maxFailedAttempts is the failed-login count that trips a lockout.
	maxFailedAttempts = 5
	// lockoutDuration is how long a tripped lockout lasts.
	lockoutDuration = 15 * time.Minute
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Credentials ports.CredentialStore
	Passwords   ports.PasswordHasher
	Sessions    ports.SessionCodec
	// DevOverride is nil in production wiring.
	DevOverride ports.DevOverrideResolver
	// Now overrides the clock in tests.
	Now func() time.Time
}

// AuthService implements the login state machine, per-request principal
// resolution, and session revocation.
type AuthService struct {
	creds    ports.CredentialStore
	hasher   ports.PasswordHasher
	sessions ports.SessionCodec
	dev      ports.DevOverrideResolver
	now      func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		creds:    opts.Credentials,
		hasher:   opts.Passwords,
		sessions: opts.Sessions,
		dev:      opts.DevOverride,
		now:      now,
	}
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	UserID                 string `json:"user_id"`
	Email                  string `json:"email"`
	RequiresPasswordChange bool   `json:"requires_password_change"`

	// Token is the issued session token, delivered to the client as a
	// cookie by the HTTP layer.
	Token string `json:"-"`
}

// Login runs the credential check and lockout state machine.
//
// Unknown emails and wrong passwords return the same invalid-credentials
// error so callers cannot probe for account existence. A locked account
// rejects immediately without consuming a further attempt.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	nowMs := s.now().UnixMilli()

	user, err := s.creds.GetByEmail(ctx, req.NormalizedEmail())
	if err != nil {
		if errors.Is(err, ports.ErrUserNotFound) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.InvalidCredentials()
	}
	if user.LockedAt(nowMs) {
		return nil, apperrors.AccountLocked()
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		// The mismatch that trips the lock still reports invalid
		// credentials; only attempts against an already-active lock see
		// the locked error.
		if _, recErr := s.creds.RecordFailure(ctx, ports.FailureParams{
			UserID:    user.ID,
			NowMs:     nowMs,
			Threshold: maxFailedAttempts,
			LockoutMs: lockoutDuration.Milliseconds(),
		}); recErr != nil {
			return nil, fmt.Errorf("record failed attempt: %w", recErr)
		}
		return nil, apperrors.InvalidCredentials()
	}

	if err := s.creds.RecordSuccess(ctx, user.ID, nowMs); err != nil {
		return nil, fmt.Errorf("record successful login: %w", err)
	}

	token, err := s.sessions.Issue(auth.SessionPayload{
		UserID:     user.ID,
		AuthMethod: auth.MethodPassword,
		Nonce:      user.SessionNonce,
	})
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	return &LoginResult{
		UserID:                 user.ID,
		Email:                  user.Email,
		RequiresPasswordChange: user.RequiresPasswordChange,
		Token:                  token,
	}, nil
}

// CurrentUser resolves the principal for a request from its session token.
// Every path that cannot positively establish identity fails closed with an
// unauthenticated error.
//
// The dev override only applies when no token is presented at all; a
// presented-but-invalid token is never silently upgraded.
func (s *AuthService) CurrentUser(ctx context.Context, token, devHeader string) (*auth.Principal, error) {
	if token == "" {
		if s.dev != nil {
			if userID, ok := s.dev.Resolve(devHeader); ok {
				return &auth.Principal{
					UserID:      userID,
					AuthMethod:  auth.MethodOther,
					DevOverride: true,
				}, nil
			}
		}
		return nil, apperrors.Unauthenticated("not authenticated")
	}

	payload, err := s.sessions.Decode(token)
	if err != nil {
		return nil, apperrors.Unauthenticated("invalid session")
	}
	if !payload.Complete() {
		return nil, apperrors.Unauthenticated("invalid session")
	}

	user, err := s.creds.GetByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, ports.ErrUserNotFound) {
			return nil, apperrors.Unauthenticated("invalid session")
		}
		return nil, fmt.Errorf("lookup session user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.Unauthenticated("invalid session")
	}
	if subtle.ConstantTimeCompare([]byte(payload.Nonce), []byte(user.SessionNonce)) != 1 {
		// Nonce rotated since the token was issued: session revoked.
		return nil, apperrors.Unauthenticated("invalid session")
	}

	return &auth.Principal{
		UserID:     user.ID,
		AuthMethod: payload.AuthMethod,
	}, nil
}

// MeResult describes the authenticated account for the profile endpoint.
type MeResult struct {
	UserID                 string      `json:"user_id"`
	Email                  string      `json:"email"`
	AuthMethod             auth.Method `json:"auth_method"`
	RequiresPasswordChange bool        `json:"requires_password_change"`
}

// Me returns the profile view of an authenticated account.
func (s *AuthService) Me(ctx context.Context, userID string) (*MeResult, error) {
	user, err := s.creds.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ports.ErrUserNotFound) {
			return nil, apperrors.Unauthenticated("invalid session")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return &MeResult{
		UserID:                 user.ID,
		Email:                  user.Email,
		AuthMethod:             user.AuthMethod,
		RequiresPasswordChange: user.RequiresPasswordChange,
	}, nil
}

// RevokeSessions rotates the user's session nonce, invalidating every
// outstanding session at once. Tokens already in the wild keep decoding but
// fail the per-request nonce check.
func (s *AuthService) RevokeSessions(ctx context.Context, userID string) error {
	if _, err := s.creds.RotateNonce(ctx, userID); err != nil {
		if errors.Is(err, ports.ErrUserNotFound) {
			return apperrors.NotFound("user not found")
		}
		return fmt.Errorf("rotate session nonce: %w", err)
	}
	return nil
}
