package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/edinfinite/platform-api/internal/domain/auth"
	"github.com/edinfinite/platform-api/internal/domain/model"
	"github.com/edinfinite/platform-api/internal/mocks"
	"github.com/edinfinite/platform-api/internal/ports"
	"github.com/edinfinite/platform-api/internal/service"
)

const (
	routerTestUserID = "11111111-1111-1111-1111-111111111111"
	routerTestEmail  = "teacher@example.com"
	routerTestNonce  = "a1b2c3d4e5f60718a1b2c3d4e5f60718"
	sessionCookie    = "edinfinite_session"
)

type routerDeps struct {
	creds    *mocks.MockCredentialStore
	hasher   *mocks.MockPasswordHasher
	sessions *mocks.MockSessionCodec
	rooms    *mocks.MockRoomStore
	libs     *mocks.MockLibraryStore
}

// newTestRouter wires the full router over mock stores so tests exercise
// the real middleware pipeline.
func newTestRouter(t *testing.T) (routerDeps, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := routerDeps{
		creds:    mocks.NewMockCredentialStore(ctrl),
		hasher:   mocks.NewMockPasswordHasher(ctrl),
		sessions: mocks.NewMockSessionCodec(ctrl),
		rooms:    mocks.NewMockRoomStore(ctrl),
		libs:     mocks.NewMockLibraryStore(ctrl),
	}

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Credentials: deps.creds,
		Passwords:   deps.hasher,
		Sessions:    deps.sessions,
	})
	roomSvc := service.NewRoomService(service.RoomServiceOptions{
		Rooms:     deps.rooms,
		Libraries: deps.libs,
	})
	libSvc := service.NewLibraryService(service.LibraryServiceOptions{Libraries: deps.libs})

	router := NewRouter(RouterServices{
		Auth:      authSvc,
		Rooms:     roomSvc,
		Libraries: libSvc,
		Session:   SessionCookieParams{Name: sessionCookie, TTL: time.Hour},
		Logger:    slog.New(slog.DiscardHandler),
	})
	return deps, router
}

func routerActiveUser() *model.UserAuth {
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	return &model.UserAuth{
		ID:           routerTestUserID,
		Email:        routerTestEmail,
		PasswordHash: &hash,
		IsActive:     true,
		AuthMethod:   domainauth.MethodPassword,
		SessionNonce: routerTestNonce,
	}
}

// authedRequest builds a request carrying a valid session cookie and a
// matching CSRF pair, with the decode expectations registered.
func authedRequest(deps routerDeps, method, target string, body string) *http.Request {
	deps.sessions.EXPECT().Decode("signed-token").Return(domainauth.SessionPayload{
		UserID:     routerTestUserID,
		AuthMethod: domainauth.MethodPassword,
		Nonce:      routerTestNonce,
	}, nil)
	deps.creds.EXPECT().GetByID(gomock.Any(), routerTestUserID).Return(routerActiveUser(), nil)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "signed-token"})
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "csrf-value"})
	req.Header.Set(DefaultCSRFHeaderName, "csrf-value")
	return req
}

func TestRouter_Login_Success(t *testing.T) {
	t.Parallel()
	deps, router := newTestRouter(t)

	user := routerActiveUser()
	deps.creds.EXPECT().GetByEmail(gomock.Any(), routerTestEmail).Return(user, nil)
	deps.hasher.EXPECT().Verify("correct-horse", user.PasswordHash).Return(true)
	deps.creds.EXPECT().RecordSuccess(gomock.Any(), routerTestUserID, gomock.Any()).Return(nil)
	deps.sessions.EXPECT().Issue(gomock.Any()).Return("signed-token", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"teacher@example.com","password":"correct-horse"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, routerTestUserID, body["user_id"])
	assert.Equal(t, routerTestEmail, body["email"])
	assert.NotContains(t, body, "token")

	session := findCookie(t, rec, sessionCookie)
	require.NotNil(t, session)
	assert.Equal(t, "signed-token", session.Value)
	assert.True(t, session.HttpOnly)

	csrf := findCookie(t, rec, DefaultCSRFCookieName)
	require.NotNil(t, csrf)
	assert.NotEmpty(t, csrf.Value)
	assert.False(t, csrf.HttpOnly)
}

// Login must work without any CSRF token; it is where the token comes from.
func TestRouter_Login_OutsideCSRFGuard(t *testing.T) {
	t.Parallel()
	deps, router := newTestRouter(t)

	deps.creds.EXPECT().GetByEmail(gomock.Any(), routerTestEmail).
		Return(nil, ports.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"teacher@example.com","password":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// 401 from the credential check, not 403 from a CSRF guard.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Login_LockedMapsTo423(t *testing.T) {
	t.Parallel()
	deps, router := newTestRouter(t)

	lockedUntil := time.Now().Add(10 * time.Minute).UnixMilli()
	user := routerActiveUser()
	user.LockedUntil = &lockedUntil
	deps.creds.EXPECT().GetByEmail(gomock.Any(), routerTestEmail).Return(user, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"teacher@example.com","password":"correct-horse"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusLocked, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "account_locked", body["error"])
}

// Logout sits inside the CSRF guard.
func TestRouter_Logout_RequiresCSRF(t *testing.T) {
	t.Parallel()
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Logout_ClearsSessionCookie(t *testing.T) {
	t.Parallel()
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "csrf-value"})
	req.Header.Set(DefaultCSRFHeaderName, "csrf-value")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	cleared := findCookie(t, rec, sessionCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

// Logout with no session is still a 204; clearing twice is harmless.
func TestRouter_Logout_Idempotent(t *testing.T) {
	t.Parallel()
	_, router := newTestRouter(t)

	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "csrf-value"})
		req.Header.Set(DefaultCSRFHeaderName, "csrf-value")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRouter_Me_Success(t *testing.T) {
	t.Parallel()
	deps, router := newTestRouter(t)

	req := authedRequest(deps, http.MethodGet, "/api/v1/auth/me", "")
	deps.creds.EXPECT().GetByID(gomock.Any(), routerTestUserID).Return(routerActiveUser(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, routerTestEmail, body["email"])
	assert.Equal(t, "password", body["auth_method"])
}

func TestRouter_Me_NoSession(t *testing.T) {
	t.Parallel()
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unauthenticated", body["error"])
}

// A revoked session (rotated nonce) is rejected on the very next request.
func TestRouter_Me_RevokedSession(t *testing.T) {
	t.Parallel()
	deps, router := newTestRouter(t)

	rotated := routerActiveUser()
	rotated.SessionNonce = "ffffffffffffffffffffffffffffffff"
	deps.sessions.EXPECT().Decode("signed-token").Return(domainauth.SessionPayload{
		UserID:     routerTestUserID,
		AuthMethod: domainauth.MethodPassword,
		Nonce:      routerTestNonce,
	}, nil)
	deps.creds.EXPECT().GetByID(gomock.Any(), routerTestUserID).Return(rotated, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "signed-token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()
	_, router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
