package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookie(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	return r
}

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	userID := uuid.New()

	w := httptest.NewRecorder()
	require.NoError(t, m.Issue(w, userID))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	got, ok := m.Resolve(requestWithCookie(cookie.Value))
	require.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestSessionMissingCookie(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	_, ok := m.Resolve(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestSessionWrongSecret(t *testing.T) {
	issuer := NewSessionManager("test-secret", time.Hour)
	verifier := NewSessionManager("different-secret", time.Hour)

	token, err := issuer.Token(uuid.New())
	require.NoError(t, err)

	_, ok := verifier.Resolve(requestWithCookie(token))
	assert.False(t, ok)
}

func TestSessionExpired(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute)

	token, err := m.Token(uuid.New())
	require.NoError(t, err)

	_, ok := m.Resolve(requestWithCookie(token))
	assert.False(t, ok)
}

func TestSessionGarbageToken(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	_, ok := m.Resolve(requestWithCookie("not-a-token"))
	assert.False(t, ok)
}

func TestSessionClear(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	w := httptest.NewRecorder()
	m.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestPrincipal(t *testing.T) {
	assert.False(t, Anonymous().IsAuthenticated())
	assert.Equal(t, uuid.Nil, Anonymous().UserID())

	id := uuid.New()
	p := Authenticated(id)
	assert.True(t, p.IsAuthenticated())
	assert.Equal(t, id, p.UserID())
}
