// Package mocks provides mock implementations for testing the platform services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	creds := mocks.NewMockCredentialStore(ctrl)
//	creds.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
package mocks

// Generate mock for CredentialStore interface from internal/ports package.
// This creates MockCredentialStore with methods for all CredentialStore interface methods:
// GetByEmail, GetByID, RecordFailure, RecordSuccess, RotateNonce
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=credential_store_mock.go github.com/edinfinite/platform-api/internal/ports CredentialStore

// Generate mock for PasswordHasher interface from internal/ports package.
// This creates MockPasswordHasher with methods for all PasswordHasher interface methods:
// Hash, Verify
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=password_hasher_mock.go github.com/edinfinite/platform-api/internal/ports PasswordHasher

// Generate mock for SessionCodec interface from internal/ports package.
// This creates MockSessionCodec with methods for all SessionCodec interface methods:
// Issue, Decode
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_codec_mock.go github.com/edinfinite/platform-api/internal/ports SessionCodec

// Generate mock for RoomStore interface from internal/ports package.
// This creates MockRoomStore with methods for all RoomStore interface methods:
// Create, GetByID, ListByCreator, MemberCount, HasMember, ListMessages, InsertMessage,
// AttachKnowledge, GetAssistant, UpsertAssistant
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=room_store_mock.go github.com/edinfinite/platform-api/internal/ports RoomStore

// Generate mock for LibraryStore interface from internal/ports package.
// This creates MockLibraryStore with methods for all LibraryStore interface methods:
// Create, ListByOwner, FilterOwned
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=library_store_mock.go github.com/edinfinite/platform-api/internal/ports LibraryStore

// Generate mock for MemberCountCache interface from internal/ports package.
// This creates MockMemberCountCache with methods for all MemberCountCache interface methods:
// Get, Set, Invalidate
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=member_count_cache_mock.go github.com/edinfinite/platform-api/internal/ports MemberCountCache

// Generate mock for DevOverrideResolver interface from internal/ports package.
// This creates MockDevOverrideResolver with methods for all DevOverrideResolver interface methods:
// Resolve
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=dev_override_resolver_mock.go github.com/edinfinite/platform-api/internal/ports DevOverrideResolver
