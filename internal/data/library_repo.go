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

// ErrLibraryNotFound is returned when a library is not found.
var ErrLibraryNotFound = ports.ErrLibraryNotFound

// LibraryRepo provides database operations for user-owned libraries.
type LibraryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewLibraryRepo creates a new LibraryRepo with real time provider.
func NewLibraryRepo(db *sql.DB) *LibraryRepo {
	return &LibraryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewLibraryRepoWithTimeProvider creates a new LibraryRepo with a custom time provider (useful for tests).
func NewLibraryRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *LibraryRepo {
	return &LibraryRepo{DB: db, timeProvider: tp}
}

// Create inserts a new library.
func (r *LibraryRepo) Create(ctx context.Context, lib *model.Library) error {
	if lib == nil {
		return errors.New("library is required")
	}
	nowMs := r.timeProvider.Now().UnixMilli()
	lib.CreatedAt = nowMs
	lib.UpdatedAt = nowMs
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO library (id, user_id, name, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
		`, lib.ID, lib.UserID, lib.Name, lib.Description, nowMs)
		return err
	}); err != nil {
		return fmt.Errorf("failed to insert library: %w", err)
	}
	return nil
}

// ListByOwner retrieves the libraries owned by a user, newest first.
func (r *LibraryRepo) ListByOwner(ctx context.Context, userID string) ([]*model.Library, error) {
	var rowsOut []model.Library
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, user_id, name, description, created_at, updated_at
			FROM library
			WHERE user_id = $1
			ORDER BY created_at DESC
		`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Library])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list libraries: %w", err)
	}

	result := make([]*model.Library, len(rowsOut))
	for i := range rowsOut {
		result[i] = &rowsOut[i]
	}
	return result, nil
}

// FilterOwned narrows the given ids down to those owned by userID.
func (r *LibraryRepo) FilterOwned(ctx context.Context, userID string, ids []string) (map[string]bool, error) {
	owned := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return owned, nil
	}
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT id FROM library WHERE user_id = $1 AND id = ANY($2)`,
			userID, ids)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id string
			if scanErr := rows.Scan(&id); scanErr != nil {
				return scanErr
			}
			owned[id] = true
		}
		return rows.Err()
	}); err != nil {
		return nil, fmt.Errorf("failed to filter owned libraries: %w", err)
	}
	return owned, nil
}
