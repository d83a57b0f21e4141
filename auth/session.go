package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

var errInvalidToken = errors.New("invalid session token")

// SessionManager issues and verifies the signed session token. The token is
// an HS256 JWT whose subject is the user id; it lives only in an HttpOnly
// cookie, so the server keeps no session state of its own.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

// Token signs a session token for the given user id.
func (m *SessionManager) Token(userID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
	})
	return token.SignedString(m.secret)
}

// Issue signs a token for userID and sets it on the client.
func (m *SessionManager) Issue(w http.ResponseWriter, userID uuid.UUID) error {
	tokenString, err := m.Token(userID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Resolve extracts the user id from the request's session cookie. A missing
// cookie, bad signature, or expired token all mean the request is anonymous,
// never an error the caller has to handle.
func (m *SessionManager) Resolve(r *http.Request) (uuid.UUID, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return uuid.Nil, false
	}
	userID, err := m.parse(cookie.Value)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// Clear expires the session cookie on the client.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionManager) parse(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, errInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errInvalidToken
	}
	return userID, nil
}
