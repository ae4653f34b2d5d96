package httpx

import (
	"log/slog"
	"net/http"

	"github.com/edinfinite/platform-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Rooms     *service.RoomService
	Libraries *service.LibraryService

	Session SessionCookieParams
	CSRF    CSRFConfig
	Logger  *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
//
// Pipeline order is deliberate: recovery and logging wrap everything;
// login lives outside the CSRF guard (the caller has no token yet) while
// logout and every guarded endpoint sit behind CSRF then authentication.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	csrf := CSRFProtection(services.CSRF)
	requireAuth := RequireAuth(services.Auth, services.Session.Name, logger)
	guarded := func(h http.HandlerFunc) http.Handler {
		return csrf(requireAuth(h))
	}

	authHandlers := &AuthHandlers{
		Svc:     services.Auth,
		Session: services.Session,
		CSRF:    services.CSRF,
		Logger:  logger,
	}
	roomHandlers := &RoomHandlers{Svc: services.Rooms, Logger: logger}
	libraryHandlers := &LibraryHandlers{Svc: services.Libraries, Logger: logger}

	mux.Handle("POST /api/v1/auth/login", http.HandlerFunc(authHandlers.Login))
	mux.Handle("POST /api/v1/auth/logout", csrf(http.HandlerFunc(authHandlers.Logout)))
	mux.Handle("GET /api/v1/auth/me", guarded(authHandlers.Me))

	mux.Handle("GET /api/v1/rooms", guarded(roomHandlers.List))
	mux.Handle("POST /api/v1/rooms", guarded(roomHandlers.Create))
	mux.Handle("GET /api/v1/rooms/{id}", guarded(roomHandlers.Get))
	mux.Handle("GET /api/v1/rooms/{id}/messages", guarded(roomHandlers.ListMessages))
	mux.Handle("POST /api/v1/rooms/{id}/messages", guarded(roomHandlers.PostMessage))

	mux.Handle("POST /api/v1/class_rooms/{id}/knowledge", guarded(roomHandlers.AttachKnowledge))
	mux.Handle("GET /api/v1/class_rooms/{id}/assistant", guarded(roomHandlers.GetAssistant))
	mux.Handle("POST /api/v1/class_rooms/{id}/assistant", guarded(roomHandlers.UpsertAssistant))

	mux.Handle("GET /api/v1/libraries", guarded(libraryHandlers.List))
	mux.Handle("POST /api/v1/libraries", guarded(libraryHandlers.Create))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return Chain(mux, Recover(logger), Logging(logger))
}
