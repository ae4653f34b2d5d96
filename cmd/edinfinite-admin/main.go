package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edinfinite/platform-api/config"
	"github.com/edinfinite/platform-api/internal/bootstrap"
	"github.com/edinfinite/platform-api/internal/data"
	domainauth "github.com/edinfinite/platform-api/internal/domain/auth"
	"github.com/edinfinite/platform-api/internal/domain/model"
	"github.com/edinfinite/platform-api/internal/ports"
	"github.com/edinfinite/platform-api/internal/service"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultMigrationTimeout = 5 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrations,
		},
		"create-user": {
			name:        "create-user",
			description: "Provision a user account with a bcrypt password",
			run:         runCreateUser,
		},
		"revoke-sessions": {
			name:        "revoke-sessions",
			description: "Rotate a user's session nonce, invalidating every outstanding session",
			run:         runRevokeSessions,
		},
		"unlock-user": {
			name:        "unlock-user",
			description: "Clear a user's failed-attempt counter and lockout",
			run:         runUnlockUser,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: edinfinite-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	names := make([]string, 0)
	all := commands()
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := all[name]
		if err := writef(os.Stdout, "  %-18s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultMigrationTimeout, "migration timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, *timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer closeDB(cmdCtx.Logger, db)

	return bootstrap.RunMigrations(ctx, db, cmdCtx.Logger)
}

type createUserOptions struct {
	Email                 string
	Password              string
	DisplayName           string
	RequirePasswordChange bool
}

func runCreateUser(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	opts := createUserOptions{}
	fs.StringVar(&opts.Email, "email", "", "login email (required)")
	fs.StringVar(&opts.Password, "password", "", "initial password (required)")
	fs.StringVar(&opts.DisplayName, "name", "", "display name")
	fs.BoolVar(&opts.RequirePasswordChange, "require-password-change", false, "force a password change on first login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(opts.Email) == "" || opts.Password == "" {
		return errors.New("both -email and -password are required")
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 30*time.Second)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer closeDB(cmdCtx.Logger, db)

	hashed, err := service.NewBcryptHasher(0).Hash(opts.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.UserAuth{
		ID:                     uuid.NewString(),
		Email:                  strings.TrimSpace(opts.Email),
		PasswordHash:           &hashed,
		IsActive:               true,
		AuthMethod:             domainauth.MethodPassword,
		RequiresPasswordChange: opts.RequirePasswordChange,
	}
	if err := data.NewUserAuthRepo(db).CreateAccount(ctx, user, opts.DisplayName); err != nil {
		return err
	}
	return writef(os.Stdout, "created user %s (%s)\n", user.Email, user.ID)
}

func runRevokeSessions(cmdCtx *commandContext, args []string) error {
	return runUserMaintenance(cmdCtx, args, "revoke-sessions",
		func(ctx context.Context, repo *data.UserAuthRepo, userID string) (string, error) {
			if _, err := repo.RotateNonce(ctx, userID); err != nil {
				return "", err
			}
			return "revoked all sessions for user %s\n", nil
		})
}

func runUnlockUser(cmdCtx *commandContext, args []string) error {
	return runUserMaintenance(cmdCtx, args, "unlock-user",
		func(ctx context.Context, repo *data.UserAuthRepo, userID string) (string, error) {
			if err := repo.ClearLock(ctx, userID); err != nil {
				return "", err
			}
			return "cleared lockout for user %s\n", nil
		})
}

// runUserMaintenance handles the shared lookup-by-email-or-id plumbing of the
// per-user maintenance commands.
func runUserMaintenance(
	cmdCtx *commandContext,
	args []string,
	name string,
	op func(ctx context.Context, repo *data.UserAuthRepo, userID string) (string, error),
) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	email := fs.String("email", "", "login email of the target user")
	id := fs.String("id", "", "user id of the target user")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*email == "") == (*id == "") {
		return errors.New("exactly one of -email or -id is required")
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 30*time.Second)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer closeDB(cmdCtx.Logger, db)

	repo := data.NewUserAuthRepo(db)
	userID := *id
	if userID == "" {
		user, lookupErr := repo.GetByEmail(ctx, *email)
		if lookupErr != nil {
			if errors.Is(lookupErr, ports.ErrUserNotFound) {
				return fmt.Errorf("no user with email %q", *email)
			}
			return lookupErr
		}
		userID = user.ID
	}

	format, err := op(ctx, repo, userID)
	if err != nil {
		if errors.Is(err, ports.ErrUserNotFound) {
			return fmt.Errorf("no user with id %q", userID)
		}
		return err
	}
	return writef(os.Stdout, format, userID)
}

func closeDB(logger *slog.Logger, db interface{ Close() error }) {
	if err := db.Close(); err != nil {
		logger.Warn("db close failed", "error", err)
	}
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
