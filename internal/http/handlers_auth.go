package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/edinfinite/platform-api/internal/domain/model"
	"github.com/edinfinite/platform-api/internal/service"
)

// SessionCookieParams describes how the session cookie is issued.
type SessionCookieParams struct {
	Name   string
	Domain string
	TTL    time.Duration
}

// AuthHandlers serves login, logout, and the profile endpoint.
type AuthHandlers struct {
	Svc     *service.AuthService
	Session SessionCookieParams
	CSRF    CSRFConfig
	Logger  *slog.Logger
}

// Login handles POST /api/v1/auth/login. On success it sets the HttpOnly
// session cookie plus a fresh CSRF cookie, so a client is ready for
// state-changing calls straight away.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), &req)
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}

	h.setSessionCookie(w, r, result.Token, h.Session.TTL)

	cfg := h.CSRF
	cfg.applyDefaults()
	csrfToken, err := generateCSRFToken(cfg.TokenLength)
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	setCSRFCookie(w, r, csrfCookieParams{
		Name:   cfg.CookieName,
		Domain: cfg.CookieDomain,
		Token:  csrfToken,
	})

	WriteJSON(w, http.StatusOK, result)
}

// Logout handles POST /api/v1/auth/logout. Clearing an absent cookie is
// fine; the endpoint is idempotent.
func (h *AuthHandlers) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Session.Name,
		Value:    "",
		Path:     "/",
		Domain:   h.Session.Domain,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me for the authenticated principal.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.Me(r.Context(), CurrentUserID(r.Context()))
	if err != nil {
		WriteAppError(w, h.Logger, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, token string, ttl time.Duration) {
	isSecure := r.TLS != nil || isForwardedHTTPS(r)
	http.SetCookie(w, &http.Cookie{
		Name:     h.Session.Name,
		Value:    token,
		Path:     "/",
		Domain:   h.Session.Domain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl / time.Second),
	})
}
