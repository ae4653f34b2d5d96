package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/edinfinite/platform-api/config"
	"github.com/edinfinite/platform-api/internal/adapters/devauth"
	"github.com/edinfinite/platform-api/internal/adapters/sessioncookie"
	"github.com/edinfinite/platform-api/internal/data"
	"github.com/edinfinite/platform-api/internal/ports"
	"github.com/edinfinite/platform-api/internal/service"
)

// ServiceDeps carries the shared infrastructure services are built from.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Rooms     *service.RoomService
	Libraries *service.LibraryService
}

// NewServices wires repositories, adapters, and services together.
//
// The dev override resolver only exists when configuration enables it; in
// every other wiring the auth service holds nil and the override header is
// inert.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config

	codec, err := sessioncookie.NewCodec(sessioncookie.Config{
		SigningKey: cfg.Auth.Session.SigningKey,
		TTL:        cfg.Auth.Session.TTL,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build session codec: %w", err)
	}

	var devResolver ports.DevOverrideResolver
	if cfg.Auth.DevOverride.Enabled {
		devResolver = devauth.NewResolver(cfg.Auth.DevOverride.UserID)
		if deps.Logger != nil {
			deps.Logger.Warn("dev identity override enabled; never run this in production")
		}
	}

	userRepo := data.NewUserAuthRepo(deps.DB)
	roomRepo := data.NewRoomRepo(deps.DB)
	libraryRepo := data.NewLibraryRepo(deps.DB)
	hasher := service.NewBcryptHasher(0)

	var counts ports.MemberCountCache
	if deps.RedisClient != nil {
		counts = data.NewRedisMemberCountCache(deps.RedisClient)
	}

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Credentials: userRepo,
			Passwords:   hasher,
			Sessions:    codec,
			DevOverride: devResolver,
		}),
		Rooms: service.NewRoomService(service.RoomServiceOptions{
			Rooms:     roomRepo,
			Libraries: libraryRepo,
			Counts:    counts,
			CacheTTL:  cfg.Cache.MemberCountTTL,
		}),
		Libraries: service.NewLibraryService(service.LibraryServiceOptions{
			Libraries: libraryRepo,
		}),
	}, nil
}
