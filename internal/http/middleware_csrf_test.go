package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestHandler(t *testing.T) http.Handler {
	t.Helper()
	return CSRFProtection(CSRFConfig{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestCSRF_SafeMethodPassesAndMintsCookie(t *testing.T) {
	t.Parallel()
	handler := csrfTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(t, rec, DefaultCSRFCookieName)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.False(t, cookie.HttpOnly)
}

func TestCSRF_PostWithoutCookieRejected(t *testing.T) {
	t.Parallel()
	handler := csrfTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/rooms", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRF_PostWithoutHeaderRejected(t *testing.T) {
	t.Parallel()
	handler := csrfTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "token-value"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRF_PostWithMismatchedHeaderRejected(t *testing.T) {
	t.Parallel()
	handler := csrfTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "token-value"})
	req.Header.Set(DefaultCSRFHeaderName, "different-value")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRF_PostWithMatchingHeaderPasses(t *testing.T) {
	t.Parallel()
	handler := csrfTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "token-value"})
	req.Header.Set(DefaultCSRFHeaderName, "token-value")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// All rejection modes return the same code and body so a cross-site probe
// cannot tell which check failed.
func TestCSRF_FailureResponseIsUniform(t *testing.T) {
	t.Parallel()
	handler := csrfTestHandler(t)

	noCookie := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", nil)

	noHeader := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", nil)
	noHeader.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "token-value"})

	mismatch := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", nil)
	mismatch.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: "token-value"})
	mismatch.Header.Set(DefaultCSRFHeaderName, "wrong")

	var bodies []map[string]string
	for _, req := range []*http.Request{noCookie, noHeader, mismatch} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		bodies = append(bodies, body)
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
	assert.Equal(t, "csrf_validation_failed", bodies[0]["error"])
}

func TestCSRF_CustomNames(t *testing.T) {
	t.Parallel()
	handler := CSRFProtection(CSRFConfig{
		CookieName: "my_csrf",
		HeaderName: "X-My-Csrf",
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", nil)
	req.AddCookie(&http.Cookie{Name: "my_csrf", Value: "token-value"})
	req.Header.Set("X-My-Csrf", "token-value")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
