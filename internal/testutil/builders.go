package testutil

import (
	"github.com/google/uuid"

	domainauth "github.com/edinfinite/platform-api/internal/domain/auth"
	"github.com/edinfinite/platform-api/internal/domain/model"
)

// UserAuthBuilder provides a fluent interface for building UserAuth fixtures.
type UserAuthBuilder struct {
	user *model.UserAuth
}

// NewUserAuth creates a new UserAuthBuilder with sensible defaults: an
// active password-login account with a fresh id and nonce.
func NewUserAuth() *UserAuthBuilder {
	nonce := uuid.NewString()
	return &UserAuthBuilder{
		user: &model.UserAuth{
			ID:           uuid.NewString(),
			Email:        "student@example.edu",
			IsActive:     true,
			AuthMethod:   domainauth.MethodPassword,
			SessionNonce: nonce,
		},
	}
}

// WithID sets the user id.
func (b *UserAuthBuilder) WithID(id string) *UserAuthBuilder {
	b.user.ID = id
	return b
}

// WithEmail sets the login email.
func (b *UserAuthBuilder) WithEmail(email string) *UserAuthBuilder {
	b.user.Email = email
	return b
}

// WithPasswordHash sets the stored bcrypt hash.
func (b *UserAuthBuilder) WithPasswordHash(hash string) *UserAuthBuilder {
	b.user.PasswordHash = &hash
	return b
}

// Inactive marks the account disabled.
func (b *UserAuthBuilder) Inactive() *UserAuthBuilder {
	b.user.IsActive = false
	return b
}

// WithFailedAttempts sets the consecutive failure counter.
func (b *UserAuthBuilder) WithFailedAttempts(n int) *UserAuthBuilder {
	b.user.FailedAttempts = n
	return b
}

// LockedUntil sets the lockout expiry in ms-epoch.
func (b *UserAuthBuilder) LockedUntil(untilMs int64) *UserAuthBuilder {
	b.user.LockedUntil = &untilMs
	return b
}

// WithSessionNonce sets the session nonce.
func (b *UserAuthBuilder) WithSessionNonce(nonce string) *UserAuthBuilder {
	b.user.SessionNonce = nonce
	return b
}

// RequiringPasswordChange forces a password change on next login.
func (b *UserAuthBuilder) RequiringPasswordChange() *UserAuthBuilder {
	b.user.RequiresPasswordChange = true
	return b
}

// Build returns the constructed UserAuth.
func (b *UserAuthBuilder) Build() *model.UserAuth {
	return b.user
}

// RoomBuilder provides a fluent interface for building Room fixtures.
type RoomBuilder struct {
	room *model.Room
}

// NewRoom creates a new RoomBuilder with sensible defaults.
func NewRoom(createdBy string) *RoomBuilder {
	return &RoomBuilder{
		room: &model.Room{
			ID:              uuid.NewString(),
			ClassID:         uuid.NewString(),
			CreatedByUserID: createdBy,
			Name:            "Period 3 Biology",
		},
	}
}

// WithID sets the room id.
func (b *RoomBuilder) WithID(id string) *RoomBuilder {
	b.room.ID = id
	return b
}

// WithName sets the room name.
func (b *RoomBuilder) WithName(name string) *RoomBuilder {
	b.room.Name = name
	return b
}

// WithDescription sets the room description.
func (b *RoomBuilder) WithDescription(desc string) *RoomBuilder {
	b.room.Description = &desc
	return b
}

// Archived marks the room archived.
func (b *RoomBuilder) Archived() *RoomBuilder {
	b.room.IsArchived = true
	return b
}

// Build returns the constructed Room.
func (b *RoomBuilder) Build() *model.Room {
	return b.room
}

// LibraryBuilder provides a fluent interface for building Library fixtures.
type LibraryBuilder struct {
	lib *model.Library
}

// NewLibrary creates a new LibraryBuilder owned by the given user.
func NewLibrary(ownerID string) *LibraryBuilder {
	return &LibraryBuilder{
		lib: &model.Library{
			ID:     uuid.NewString(),
			UserID: ownerID,
			Name:   "Unit 4 Readings",
		},
	}
}

// WithID sets the library id.
func (b *LibraryBuilder) WithID(id string) *LibraryBuilder {
	b.lib.ID = id
	return b
}

// WithName sets the library name.
func (b *LibraryBuilder) WithName(name string) *LibraryBuilder {
	b.lib.Name = name
	return b
}

// Build returns the constructed Library.
func (b *LibraryBuilder) Build() *model.Library {
	return b.lib
}
