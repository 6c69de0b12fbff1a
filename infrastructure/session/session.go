package session

import (
	"net/http"
	"time"
)

const CookieName = "X-Session-Token"

// IdentityCookie returns the session cookie. maxAge 0 produces a browser
// session cookie, so the identity survives reloads but not a new browser
// session; -1 clears it.
func IdentityCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
}

// DefaultExpiry bounds the server-side session row regardless of how long
// the browser keeps its session cookie alive.
func DefaultExpiry() time.Time {
	return time.Now().Add(12 * time.Hour)
}
