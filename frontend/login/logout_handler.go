package login

import (
	"net/http"

	"fisiovida/infrastructure/cache"
	sessioncookie "fisiovida/infrastructure/session"
	"fisiovida/infrastructure/sqlite"
)

// LogoutHandler removes session state and clears the cookie unconditionally.
func LogoutHandler(db *sqlite.DB, sessionCache *cache.SessionCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessioncookie.CookieName)
		if err == nil && cookie.Value != "" {
			sessionCache.Delete(cookie.Value)
			_ = DeleteSessionByToken(r.Context(), db, cookie.Value)
		}
		http.SetCookie(w, sessioncookie.IdentityCookie("", -1))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
