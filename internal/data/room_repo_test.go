package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinfinite/platform-api/internal/domain/model"
	"github.com/edinfinite/platform-api/internal/ports"
	"github.com/edinfinite/platform-api/internal/testutil"
)

func TestRoomRepo_Create_Get_Members(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewRoomRepo(db)

		owner := createTestUser(t, db)
		member := createTestUser(t, db)
		outsider := createTestUser(t, db)

		room := testutil.NewRoom(owner.ID).Build()
		require.NoError(t, repo.Create(ctx, room, []string{member.ID}))

		got, err := repo.GetByID(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, room.Name, got.Name)
		assert.Equal(t, owner.ID, got.CreatedByUserID)
		assert.NotZero(t, got.CreatedAt)

		_, err = repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ports.ErrRoomNotFound)

		// The creator gets a membership row of their own, so a fresh room
		// counts the owner plus every explicit member. Outsiders stay out.
		isMember, err := repo.HasMember(ctx, room.ID, owner.ID)
		require.NoError(t, err)
		assert.True(t, isMember)

		isMember, err = repo.HasMember(ctx, room.ID, member.ID)
		require.NoError(t, err)
		assert.True(t, isMember)

		isMember, err = repo.HasMember(ctx, room.ID, outsider.ID)
		require.NoError(t, err)
		assert.False(t, isMember)

		count, err := repo.MemberCount(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		rooms, err := repo.ListByCreator(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, room.ID, rooms[0].ID)
	})
}

func TestRoomRepo_Messages(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewRoomRepo(db)

		owner := createTestUser(t, db)
		room := testutil.NewRoom(owner.ID).Build()
		require.NoError(t, repo.Create(ctx, room, nil))

		for i := 0; i < 3; i++ {
			msg := &model.Message{
				ID:      uuid.NewString(),
				RoomID:  room.ID,
				UserID:  owner.ID,
				Content: fmt.Sprintf("message %d", i),
			}
			require.NoError(t, repo.InsertMessage(ctx, msg))
		}

		msgs, err := repo.ListMessages(ctx, ports.MessageQuery{RoomID: room.ID, Limit: 10})
		require.NoError(t, err)
		require.Len(t, msgs, 3)

		limited, err := repo.ListMessages(ctx, ports.MessageQuery{RoomID: room.ID, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})
}

func TestRoomRepo_AttachKnowledge(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewRoomRepo(db)
		libs := NewLibraryRepo(db)

		owner := createTestUser(t, db)
		room := testutil.NewRoom(owner.ID).Build()
		require.NoError(t, repo.Create(ctx, room, nil))

		lib := testutil.NewLibrary(owner.ID).Build()
		require.NoError(t, libs.Create(ctx, lib))

		attachment := model.KnowledgeAttachment{
			RoomID:          room.ID,
			LibraryID:       lib.ID,
			CreatedByUserID: owner.ID,
		}
		require.NoError(t, repo.AttachKnowledge(ctx, []model.KnowledgeAttachment{attachment}))

		// Re-attaching the same library is a no-op, not a conflict.
		require.NoError(t, repo.AttachKnowledge(ctx, []model.KnowledgeAttachment{attachment}))
	})
}

func TestRoomRepo_Assistant_Upsert(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewRoomRepo(db)

		owner := createTestUser(t, db)
		room := testutil.NewRoom(owner.ID).Build()
		require.NoError(t, repo.Create(ctx, room, nil))

		_, err := repo.GetAssistant(ctx, room.ID)
		assert.ErrorIs(t, err, ports.ErrAssistantNotFound)

		created, err := repo.UpsertAssistant(ctx, &model.Assistant{
			ID:              uuid.NewString(),
			RoomID:          room.ID,
			CreatedByUserID: owner.ID,
			ModelID:         "gpt-4o-mini",
			Temperature:     0.7,
			InvocationMode:  "manual",
		})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", created.ModelID)

		// Second upsert for the same room replaces in place.
		updated, err := repo.UpsertAssistant(ctx, &model.Assistant{
			ID:              uuid.NewString(),
			RoomID:          room.ID,
			CreatedByUserID: owner.ID,
			ModelID:         "claude-sonnet",
			Temperature:     1.2,
			InvocationMode:  "auto",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "claude-sonnet", updated.ModelID)
		assert.InDelta(t, 1.2, updated.Temperature, 0.0001)

		got, err := repo.GetAssistant(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, "claude-sonnet", got.ModelID)
	})
}

func TestLibraryRepo_FilterOwned(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		libs := NewLibraryRepo(db)

		owner := createTestUser(t, db)
		other := createTestUser(t, db)

		mine := testutil.NewLibrary(owner.ID).Build()
		require.NoError(t, libs.Create(ctx, mine))
		theirs := testutil.NewLibrary(other.ID).Build()
		require.NoError(t, libs.Create(ctx, theirs))

		owned, err := libs.FilterOwned(ctx, owner.ID, []string{mine.ID, theirs.ID, uuid.NewString()})
		require.NoError(t, err)
		assert.True(t, owned[mine.ID])
		assert.False(t, owned[theirs.ID])

		list, err := libs.ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, mine.ID, list[0].ID)
	})
}
