package http

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uptrace/bun"

	"fisiovida/infrastructure/audit"
	"fisiovida/infrastructure/cache"
	"fisiovida/infrastructure/localdir"
	"fisiovida/infrastructure/sqlite"
)

type integrationEnv struct {
	server       *httptest.Server
	db           *sqlite.DB
	sessionCache *cache.SessionCache
}

func setupIntegrationServer(t *testing.T) (*integrationEnv, *http.Client) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "server-integration.db")
	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	sessionCache := cache.NewSessionCache()
	auditSvc := audit.NewService(db)
	dir := localdir.NewStore(db)

	s := NewServer("127.0.0.1:0", db, sessionCache, auditSvc, dir, nil, false)
	ts := httptest.NewServer(s.router)
	env := &integrationEnv{server: ts, db: db, sessionCache: sessionCache}
	t.Cleanup(func() {
		env.server.Close()
		_ = env.db.Close()
	})

	return env, newHTTPClient(t)
}

func newHTTPClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postForm(t *testing.T, client *http.Client, baseURL, path string, data url.Values) *http.Response {
	t.Helper()
	if data == nil {
		data = url.Values{}
	}
	if token := csrfToken(t, client, baseURL); token != "" {
		data.Set("_csrf", token)
	}
	resp, err := client.PostForm(baseURL+path, data)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp
}

func get(t *testing.T, client *http.Client, baseURL, path string) *http.Response {
	t.Helper()
	resp, err := client.Get(baseURL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return resp
}

func csrfToken(t *testing.T, client *http.Client, baseURL string) string {
	t.Helper()
	u, err := url.Parse(baseURL)
	if err != nil {
		t.Fatalf("parse base url: %v", err)
	}
	for _, c := range client.Jar.Cookies(u) {
		if c.Name == "X-CSRF-Token" {
			return c.Value
		}
	}
	return ""
}

func loginAs(t *testing.T, client *http.Client, baseURL, name, email, password string) {
	t.Helper()

	resp := get(t, client, baseURL, "/login")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected login page 200, got %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp = postForm(t, client, baseURL, "/login", url.Values{
		"nome":  {name},
		"email": {email},
		"senha": {password},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login 303, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Header.Get("Location"), "/admin/users") {
		t.Fatalf("unexpected login redirect: %s", resp.Header.Get("Location"))
	}
	_ = resp.Body.Close()
}

func countAuditRows(t *testing.T, db *sqlite.DB, action string) int64 {
	t.Helper()
	var count int64
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT COUNT(*) FROM audit_logs WHERE action = ?`, action).Scan(ctx, &count)
	})
	if err != nil {
		t.Fatalf("count audit rows: %v", err)
	}
	return count
}

func TestCSRFPostWithoutTokenRejected(t *testing.T) {
	env, client := setupIntegrationServer(t)

	// No GET first: no CSRF token available in cookie or form.
	resp, err := client.PostForm(env.server.URL+"/login", url.Values{
		"nome":  {"Lorena Alves"},
		"email": {"lorena@fisiovida.com"},
		"senha": {"qualquer"},
	})
	if err != nil {
		t.Fatalf("post login: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for missing csrf, got %d", resp.StatusCode)
	}
}

func TestCSRFPostWithTokenAccepted(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "Lorena Alves", "lorena@fisiovida.com", "qualquer")
}

func TestHealthAndLandingArePublic(t *testing.T) {
	env, client := setupIntegrationServer(t)

	resp := get(t, client, env.server.URL, "/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected health 200, got %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp = get(t, client, env.server.URL, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected landing 200, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read landing body: %v", err)
	}
	_ = resp.Body.Close()
	if !strings.Contains(string(body), "FisioVida") {
		t.Fatalf("expected clinic branding on landing page")
	}
}

func TestAdminUsersRequiresSession(t *testing.T) {
	env, client := setupIntegrationServer(t)

	resp := get(t, client, env.server.URL, "/admin/users")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect without session, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Location") != "/login" {
		t.Fatalf("expected login redirect, got %s", resp.Header.Get("Location"))
	}
	_ = resp.Body.Close()
}

func TestSignupWithoutBackendShowsUnavailableMessage(t *testing.T) {
	env, client := setupIntegrationServer(t)

	// Prime the CSRF cookie.
	resp := get(t, client, env.server.URL, "/")
	_ = resp.Body.Close()

	resp = postForm(t, client, env.server.URL, "/cadastro", url.Values{
		"nome":  {"Ana Lima"},
		"email": {"ana@example.com"},
		"senha": {"segredo1"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected signup redirect 303, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Header.Get("Location"), "cadastro_error=") {
		t.Fatalf("expected unavailable error redirect, got %s", resp.Header.Get("Location"))
	}
	_ = resp.Body.Close()
}

func TestServerEndToEndDirectoryFlow(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "Lorena Alves", "lorena@fisiovida.com", "qualquer")

	// Create.
	resp := postForm(t, client, env.server.URL, "/admin/users", url.Values{
		"page":          {"0"},
		"nome_completo": {"Clara Costa"},
		"email":         {"clara@example.com"},
		"telefone":      {"(11) 91234-5678"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected create 303, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Header.Get("Location"), "status=") {
		t.Fatalf("expected success status redirect, got %s", resp.Header.Get("Location"))
	}
	_ = resp.Body.Close()

	// List shows the new record.
	resp = get(t, client, env.server.URL, "/admin/users")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected list 200, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read list body: %v", err)
	}
	_ = resp.Body.Close()
	if !strings.Contains(string(body), "Clara Costa") {
		t.Fatalf("expected created record in list")
	}

	// Edit.
	resp = postForm(t, client, env.server.URL, "/admin/users", url.Values{
		"page":          {"0"},
		"id":            {"1"},
		"nome_completo": {"Clara Costa Silva"},
		"email":         {"clara@example.com"},
		"telefone":      {"(11) 91234-5678"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected update 303, got %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp = get(t, client, env.server.URL, "/admin/users")
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read updated list body: %v", err)
	}
	_ = resp.Body.Close()
	if !strings.Contains(string(body), "Clara Costa Silva") {
		t.Fatalf("expected updated name in list")
	}

	// CSV export includes the record.
	resp = get(t, client, env.server.URL, "/admin/exports/users.csv")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected export 200, got %d", resp.StatusCode)
	}
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read export body: %v", err)
	}
	_ = resp.Body.Close()
	csvText := string(body)
	if !strings.Contains(csvText, "id,nome_completo,email,telefone") {
		t.Fatalf("missing csv header")
	}
	if !strings.Contains(csvText, "Clara Costa Silva") {
		t.Fatalf("missing exported record")
	}

	// Delete.
	resp = postForm(t, client, env.server.URL, "/admin/users/1/delete", url.Values{
		"page": {"0"},
		"rows": {"1"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected delete 303, got %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp = get(t, client, env.server.URL, "/admin/users")
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read final list body: %v", err)
	}
	_ = resp.Body.Close()
	if strings.Contains(string(body), "Clara Costa Silva") {
		t.Fatalf("expected record removed from list")
	}

	for _, action := range []string{"user.create", "user.update", "user.delete", "export.csv"} {
		if countAuditRows(t, env.db, action) != 1 {
			t.Fatalf("expected 1 audit row for %s", action)
		}
	}
}

func TestExpiredSessionCookieIsCleared(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "Lorena Alves", "lorena@fisiovida.com", "qualquer")

	// Expire the persisted session, then drop the cache entry so the
	// middleware reloads from sqlite and sees the stale row.
	err := env.db.WithWriteTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `UPDATE sessions SET expires_at = DATETIME('now', '-1 hour')`)
		return err
	})
	if err != nil {
		t.Fatalf("expire session: %v", err)
	}
	u, err := url.Parse(env.server.URL)
	if err != nil {
		t.Fatalf("parse base url: %v", err)
	}
	for _, c := range client.Jar.Cookies(u) {
		if c.Name == "X-Session-Token" {
			env.sessionCache.Delete(c.Value)
		}
	}

	resp := get(t, client, env.server.URL, "/admin/users")
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/login" {
		t.Fatalf("expected login redirect for expired session, got %d %s", resp.StatusCode, resp.Header.Get("Location"))
	}
	_ = resp.Body.Close()
}
