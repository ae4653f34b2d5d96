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

// ErrUserNotFound is returned when no auth record matches the lookup.
var ErrUserNotFound = ports.ErrUserNotFound

const userAuthColumns = `
	id, email, password, is_active, created_at, updated_at, last_login_at,
	failed_attempts, locked_until, auth_method, requires_password_change, session_nonce`

// UserAuthRepo provides database operations for user_auth records. It is
// the only writer of lockout fields and the session nonce.
type UserAuthRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserAuthRepo creates a new UserAuthRepo with real time provider.
func NewUserAuthRepo(db *sql.DB) *UserAuthRepo {
	return &UserAuthRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserAuthRepoWithTimeProvider creates a new UserAuthRepo with a custom time provider (useful for tests).
func NewUserAuthRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserAuthRepo {
	return &UserAuthRepo{DB: db, timeProvider: tp}
}

// GetByEmail retrieves a record by email. The column is citext, so matching
// is case-insensitive without lowering in SQL.
func (r *UserAuthRepo) GetByEmail(ctx context.Context, email string) (*model.UserAuth, error) {
	return r.getByQuery(ctx,
		`SELECT `+userAuthColumns+` FROM user_auth WHERE email = $1`,
		"failed to get user by email", email)
}

// GetByID retrieves a record by user id.
func (r *UserAuthRepo) GetByID(ctx context.Context, id string) (*model.UserAuth, error) {
	return r.getByQuery(ctx,
		`SELECT `+userAuthColumns+` FROM user_auth WHERE id = $1`,
		"failed to get user by id", id)
}

func (r *UserAuthRepo) getByQuery(ctx context.Context, query, errMsg string, arg any) (*model.UserAuth, error) {
	var out model.UserAuth
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserAuth])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &out, nil
}

// RecordFailure registers a failed login attempt as a single atomic UPDATE
// so concurrent failures cannot under-count toward the threshold. When the
// post-increment count reaches p.Threshold the row is locked until
// now+p.LockoutMs and the counter resets to zero (the counter only tracks
// attempts within the current unlocked window). Returns the post-increment
// count.
func (r *UserAuthRepo) RecordFailure(ctx context.Context, p ports.FailureParams) (int, error) {
	var (
		attempts    int
		lockedUntil *int64
	)
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			UPDATE user_auth SET
				failed_attempts = CASE WHEN failed_attempts + 1 >= $2 THEN 0 ELSE failed_attempts + 1 END,
				locked_until    = CASE WHEN failed_attempts + 1 >= $2 THEN $3::bigint + $4::bigint ELSE locked_until END,
				updated_at      = $3
			WHERE id = $1
			RETURNING failed_attempts, locked_until
		`, p.UserID, p.Threshold, p.NowMs, p.LockoutMs).Scan(&attempts, &lockedUntil)
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to record login failure: %w", err)
	}

	// A reset counter with an active lock means this attempt tripped the
	// threshold; report the threshold as the post-increment count.
	if attempts == 0 && lockedUntil != nil && *lockedUntil > p.NowMs {
		return p.Threshold, nil
	}
	return attempts, nil
}

// RecordSuccess resets the failure counter, clears any lock, and stamps
// last_login_at in one statement.
func (r *UserAuthRepo) RecordSuccess(ctx context.Context, userID string, nowMs int64) error {
	return r.execOnUser(ctx, `
		UPDATE user_auth SET
			failed_attempts = 0,
			locked_until    = NULL,
			last_login_at   = $2,
			updated_at      = $2
		WHERE id = $1
	`, "failed to record login success", userID, nowMs)
}

// RotateNonce replaces the session nonce with a fresh random value,
// invalidating every outstanding session for the user.
func (r *UserAuthRepo) RotateNonce(ctx context.Context, userID string) (string, error) {
	nowMs := r.timeProvider.Now().UnixMilli()
	var nonce string
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			UPDATE user_auth SET
				session_nonce = encode(gen_random_bytes(16), 'hex'),
				updated_at    = $2
			WHERE id = $1
			RETURNING session_nonce
		`, userID, nowMs).Scan(&nonce)
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to rotate session nonce: %w", err)
	}
	return nonce, nil
}

// ClearLock removes an active lockout without touching anything else
// (admin unlock operation).
func (r *UserAuthRepo) ClearLock(ctx context.Context, userID string) error {
	nowMs := r.timeProvider.Now().UnixMilli()
	return r.execOnUser(ctx, `
		UPDATE user_auth SET
			failed_attempts = 0,
			locked_until    = NULL,
			updated_at      = $2
		WHERE id = $1
	`, "failed to clear lockout", userID, nowMs)
}

// Insert creates a new auth record (admin create-user and dev seeding).
// The profile row must already exist; the id is shared with it.
func (r *UserAuthRepo) Insert(ctx context.Context, user *model.UserAuth) error {
	if user == nil {
		return errors.New("user auth record is required")
	}
	nowMs := r.timeProvider.Now().UnixMilli()
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO user_auth (
				id, email, password, is_active, created_at, updated_at,
				auth_method, requires_password_change
			) VALUES ($1, $2, $3, $4, $5, $5, $6, $7)
		`,
			user.ID,
			user.Email,
			user.PasswordHash,
			user.IsActive,
			nowMs,
			user.AuthMethod,
			user.RequiresPasswordChange,
		)
		return err
	}); err != nil {
		return fmt.Errorf("failed to insert user auth record: %w", err)
	}
	return nil
}

// CreateAccount inserts the profile row and its auth record in one
// transaction. Used by provisioning, not the login path.
func (r *UserAuthRepo) CreateAccount(ctx context.Context, user *model.UserAuth, displayName string) error {
	if user == nil {
		return errors.New("user auth record is required")
	}
	nowMs := r.timeProvider.Now().UnixMilli()
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted},
		Fn: func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, `
				INSERT INTO user_profile (id, display_name, created_at, updated_at)
				VALUES ($1, $2, $3, $3)
			`, user.ID, displayName, nowMs); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `
				INSERT INTO user_auth (
					id, email, password, is_active, created_at, updated_at,
					auth_method, requires_password_change
				) VALUES ($1, $2, $3, $4, $5, $5, $6, $7)
			`,
				user.ID,
				user.Email,
				user.PasswordHash,
				user.IsActive,
				nowMs,
				user.AuthMethod,
				user.RequiresPasswordChange,
			)
			return err
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *UserAuthRepo) execOnUser(ctx context.Context, query, errMsg, userID string, nowMs int64) error {
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, query, userID, nowMs)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrUserNotFound
		}
		return nil
	}); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	return nil
}
