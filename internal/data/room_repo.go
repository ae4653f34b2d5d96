package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edinfinite/platform-api/internal/data/pgxutil"
	"github.com/edinfinite/platform-api/internal/domain/model"
	"github.com/edinfinite/platform-api/internal/ports"
)

// ErrRoomNotFound is returned when a room is not found.
var ErrRoomNotFound = ports.ErrRoomNotFound

const roomColumns = `
	id, class_id, created_by_user_id, name, description, channel_type,
	is_archived, created_at, updated_at`

// RoomRepo provides database operations for class rooms, memberships,
// messages, and knowledge attachments.
type RoomRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewRoomRepo creates a new RoomRepo with real time provider.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewRoomRepoWithTimeProvider creates a new RoomRepo with a custom time provider (useful for tests).
func NewRoomRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *RoomRepo {
	return &RoomRepo{DB: db, timeProvider: tp}
}

// Create inserts a room, its backing user group, and any initial
// memberships in one transaction.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room, memberIDs []string) error {
	if room == nil {
		return errors.New("room is required")
	}
	nowMs := r.timeProvider.Now().UnixMilli()
	room.CreatedAt = nowMs
	room.UpdatedAt = nowMs

	return pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_group (id, created_at) VALUES ($1, $2)`,
			room.ClassID, nowMs); err != nil {
			return fmt.Errorf("insert user group: %w", err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO user_group_member (group_id, user_id, role_in_group)
			VALUES ($1, $2, 'owner')
			ON CONFLICT (group_id, user_id) DO UPDATE SET role_in_group = EXCLUDED.role_in_group
		`, room.ClassID, room.CreatedByUserID); err != nil {
			return fmt.Errorf("insert group owner: %w", err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO class_room (
				id, class_id, created_by_user_id, name, description,
				channel_type, is_archived, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, false, $7, $7)
		`,
			room.ID,
			room.ClassID,
			room.CreatedByUserID,
			room.Name,
			room.Description,
			room.ChannelType,
			nowMs,
		); err != nil {
			return fmt.Errorf("insert room: %w", err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO class_room_member (class_room_id, user_id, role_in_room)
			VALUES ($1, $2, 'owner')
		`, room.ID, room.CreatedByUserID); err != nil {
			return fmt.Errorf("insert room owner: %w", err)
		}
		for _, memberID := range memberIDs {
			if memberID == room.CreatedByUserID {
				continue // owner row already inserted
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO class_room_member (class_room_id, user_id, role_in_room)
				VALUES ($1, $2, 'member')
				ON CONFLICT (class_room_id, user_id) DO NOTHING
			`, room.ID, memberID); err != nil {
				return fmt.Errorf("insert room member %s: %w", memberID, err)
			}
		}
		return nil
	}})
}

// GetByID retrieves a room by id.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var out model.Room
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+roomColumns+` FROM class_room WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Room])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}
	return &out, nil
}

// ListByCreator retrieves the rooms created by a user, newest first.
func (r *RoomRepo) ListByCreator(ctx context.Context, userID string) ([]*model.Room, error) {
	var rowsOut []model.Room
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+roomColumns+` FROM class_room WHERE created_by_user_id = $1 ORDER BY created_at DESC`,
			userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Room])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	result := make([]*model.Room, len(rowsOut))
	for i := range rowsOut {
		result[i] = &rowsOut[i]
	}
	return result, nil
}

// MemberCount returns the number of explicit membership rows for a room.
func (r *RoomRepo) MemberCount(ctx context.Context, roomID string) (int, error) {
	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT COUNT(user_id) FROM class_room_member WHERE class_room_id = $1`,
			roomID).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count room members: %w", err)
	}
	return count, nil
}

// HasMember reports whether an explicit membership row exists for the pair.
func (r *RoomRepo) HasMember(ctx context.Context, roomID, userID string) (bool, error) {
	var exists bool
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT EXISTS(
				SELECT 1 FROM class_room_member
				WHERE class_room_id = $1 AND user_id = $2
			)`, roomID, userID).Scan(&exists)
	}); err != nil {
		return false, fmt.Errorf("failed to check room membership: %w", err)
	}
	return exists, nil
}

// ListMessages retrieves the most recent messages in a room, newest first.
func (r *RoomRepo) ListMessages(ctx context.Context, q ports.MessageQuery) ([]*model.Message, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	var rowsOut []model.Message
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, class_room_id, user_id, parent_id, target_user_id, content, created_at
			FROM class_message
			WHERE class_room_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		`, q.RoomID, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Message])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	result := make([]*model.Message, len(rowsOut))
	for i := range rowsOut {
		result[i] = &rowsOut[i]
	}
	return result, nil
}

// InsertMessage stores a new message.
func (r *RoomRepo) InsertMessage(ctx context.Context, msg *model.Message) error {
	if msg == nil {
		return errors.New("message is required")
	}
	msg.CreatedAt = r.timeProvider.Now().UnixMilli()
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO class_message (id, class_room_id, user_id, parent_id, target_user_id, content, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, msg.ID, msg.RoomID, msg.UserID, msg.ParentID, msg.TargetUserID, msg.Content, msg.CreatedAt)
		return err
	}); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// AttachKnowledge upserts knowledge attachments in one transaction.
func (r *RoomRepo) AttachKnowledge(ctx context.Context, attachments []model.KnowledgeAttachment) error {
	if len(attachments) == 0 {
		return nil
	}
	nowMs := r.timeProvider.Now().UnixMilli()
	return pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		for _, a := range attachments {
			if _, err := tx.Exec(ctx, `
				INSERT INTO class_knowledge (class_room_id, library_id, created_by_user_id, created_at)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (class_room_id, library_id) DO NOTHING
			`, a.RoomID, a.LibraryID, a.CreatedByUserID, nowMs); err != nil {
				return fmt.Errorf("attach library %s: %w", a.LibraryID, err)
			}
		}
		return nil
	}})
}

const assistantColumns = `
	id, class_room_id, created_by_user_id, model_id, name, system_prompt,
	temperature::float8 AS temperature, invocation_mode, tool_config, is_active,
	created_at, updated_at`

// GetAssistant retrieves a room's assistant configuration.
func (r *RoomRepo) GetAssistant(ctx context.Context, roomID string) (*model.Assistant, error) {
	var out model.Assistant
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+assistantColumns+` FROM class_assistant WHERE class_room_id = $1`,
			roomID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Assistant])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrAssistantNotFound
		}
		return nil, fmt.Errorf("failed to get assistant: %w", err)
	}
	return &out, nil
}

// UpsertAssistant creates or replaces the single assistant row for a room
// and returns the stored state.
func (r *RoomRepo) UpsertAssistant(ctx context.Context, a *model.Assistant) (*model.Assistant, error) {
	if a == nil {
		return nil, errors.New("assistant is required")
	}
	nowMs := r.timeProvider.Now().UnixMilli()
	toolConfig := a.ToolConfig
	if len(toolConfig) == 0 {
		toolConfig = []byte(`{}`)
	}
	var out model.Assistant
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO class_assistant (
				id, class_room_id, created_by_user_id, model_id, name,
				system_prompt, temperature, invocation_mode, tool_config,
				created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
			ON CONFLICT (class_room_id) DO UPDATE SET
				model_id = EXCLUDED.model_id,
				name = EXCLUDED.name,
				system_prompt = EXCLUDED.system_prompt,
				temperature = EXCLUDED.temperature,
				invocation_mode = EXCLUDED.invocation_mode,
				tool_config = EXCLUDED.tool_config,
				updated_at = EXCLUDED.updated_at
			RETURNING `+assistantColumns,
			a.ID, a.RoomID, a.CreatedByUserID, a.ModelID, a.Name,
			a.SystemPrompt, a.Temperature, a.InvocationMode, toolConfig, nowMs)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Assistant])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to upsert assistant: %w", err)
	}
	return &out, nil
}
