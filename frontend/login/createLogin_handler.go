package login

import (
	"net/http"
	"net/url"
	"strings"

	"fisiovida/infrastructure/cache"
	sessioncookie "fisiovida/infrastructure/session"
	"fisiovida/infrastructure/sqlite"
	"fisiovida/models"
)

// CreateLoginHandler mints an identity session. There is no credential
// store: the admin area opens for any fully filled-in form.
func CreateLoginHandler(db *sqlite.DB, sessionCache *cache.SessionCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("dados do formulário inválidos"), http.StatusSeeOther)
			return
		}

		name := strings.TrimSpace(r.FormValue("nome"))
		email := strings.TrimSpace(r.FormValue("email"))
		password := strings.TrimSpace(r.FormValue("senha"))
		if name == "" || email == "" || password == "" {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("Por favor, preencha todos os campos"), http.StatusSeeOther)
			return
		}

		session := newSession(models.Identity{Name: name, Email: email})
		if err := persistSession(r.Context(), db, session); err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("não foi possível iniciar a sessão"), http.StatusSeeOther)
			return
		}
		sessionCache.Add(session)

		// Browser-session cookie: the identity survives reloads but not a
		// fresh browser session.
		http.SetCookie(w, sessioncookie.IdentityCookie(session.ID, 0))
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
	}
}

func newSession(identity models.Identity) models.Session {
	return models.Session{
		ID:        newSessionToken(),
		Name:      identity.Name,
		Email:     identity.Email,
		ExpiresAt: sessioncookie.DefaultExpiry(),
	}
}
