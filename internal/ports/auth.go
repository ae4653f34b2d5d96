package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/data; orchestration
// in internal/service.

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/edinfinite/platform-api/internal/domain/auth"
	"github.com/edinfinite/platform-api/internal/domain/model"
)

// Store-level sentinels shared by implementations and consumers.
var (
	// ErrUserNotFound is returned when no auth record matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoomNotFound is returned when a room is not found.
	ErrRoomNotFound = errors.New("room not found")
	// ErrLibraryNotFound is returned when a library is not found.
	ErrLibraryNotFound = errors.New("library not found")
	// ErrAssistantNotFound is returned when a room has no assistant row.
	ErrAssistantNotFound = errors.New("assistant not found")
)

// CredentialStore persists per-user authentication records. Only the login
// state machine and the administrative revoke operation mutate records;
// everything else is read-only against it.
type CredentialStore interface {
	// GetByEmail looks up a record by (citext) email.
	GetByEmail(ctx context.Context, email string) (*model.UserAuth, error)

	// GetByID looks up a record by user id.
	GetByID(ctx context.Context, id string) (*model.UserAuth, error)

	// RecordFailure atomically increments failed_attempts and, when the
	// post-increment count reaches the lockout threshold, sets locked_until
	// and resets the counter. Returns the post-increment count.
	RecordFailure(ctx context.Context, p FailureParams) (int, error)

	// RecordSuccess resets counters, clears any lock, and stamps
	// last_login_at, all in one statement.
	RecordSuccess(ctx context.Context, userID string, nowMs int64) error

	// RotateNonce replaces session_nonce with a fresh value, invalidating
	// every outstanding session for the user.
	RotateNonce(ctx context.Context, userID string) (string, error)
}

// FailureParams groups parameters for CredentialStore.RecordFailure.
type FailureParams struct {
	UserID string
	NowMs  int64
	// Threshold is the failed-attempt count that triggers a lockout.
	Threshold int
	// LockoutMs is how long the lock lasts once triggered.
	LockoutMs int64
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A nil/empty hash never
	// matches (records provisioned for non-password auth).
	Verify(password string, hash *string) bool
}

// SessionCodec issues and decodes the client-held session token. Decoding
// proves integrity only; the caller still checks the embedded nonce against
// the credential store on every request.
type SessionCodec interface {
	Issue(payload domainauth.SessionPayload) (string, error)
	Decode(token string) (domainauth.SessionPayload, error)
}

// RoomStore persists rooms, memberships, messages, and knowledge
// attachments.
type RoomStore interface {
	Create(ctx context.Context, room *model.Room, memberIDs []string) error
	GetByID(ctx context.Context, id string) (*model.Room, error)
	ListByCreator(ctx context.Context, userID string) ([]*model.Room, error)
	MemberCount(ctx context.Context, roomID string) (int, error)
	// HasMember reports whether an explicit membership row exists.
	HasMember(ctx context.Context, roomID, userID string) (bool, error)
	ListMessages(ctx context.Context, q MessageQuery) ([]*model.Message, error)
	InsertMessage(ctx context.Context, msg *model.Message) error
	// AttachKnowledge upserts attachments for the given library ids.
	AttachKnowledge(ctx context.Context, attachments []model.KnowledgeAttachment) error
	GetAssistant(ctx context.Context, roomID string) (*model.Assistant, error)
	// UpsertAssistant creates or replaces the room's single assistant row.
	UpsertAssistant(ctx context.Context, a *model.Assistant) (*model.Assistant, error)
}

// MessageQuery controls message listing.
type MessageQuery struct {
	RoomID string
	Limit  int
}

// LibraryStore persists user-owned libraries.
type LibraryStore interface {
	Create(ctx context.Context, lib *model.Library) error
	ListByOwner(ctx context.Context, userID string) ([]*model.Library, error)
	// FilterOwned narrows ids down to those owned by userID, preserving no
	// particular order.
	FilterOwned(ctx context.Context, userID string, ids []string) (map[string]bool, error)
}

// MemberCountCache caches display-only member counts. It is never consulted
// for authorization decisions.
type MemberCountCache interface {
	Get(ctx context.Context, roomID string) (int, bool, error)
	Set(ctx context.Context, roomID string, count int, ttl time.Duration) error
	Invalidate(ctx context.Context, roomID string) error
}

// DevOverrideResolver resolves a principal outside of a session. It exists
// only in development wiring; production builds pass nil.
type DevOverrideResolver interface {
	// Resolve returns the override identity for the given request header
	// value, falling back to a configured default. ok is false when neither
	// is present.
	Resolve(headerValue string) (userID string, ok bool)
}
