package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fisiovida/infrastructure/directory"
)

func TestUserService_ListMapsPageEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/usuario/listar" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "1" || r.URL.Query().Get("size") != "10" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"id": 11, "nomeCompleto": "Maria Santos", "email": "maria@example.com", "telefone": "(11) 90000-0001"},
			},
			"totalElements": 11,
			"totalPages":    2,
			"size":          10,
			"number":        1,
			"first":         false,
			"last":          true,
			"empty":         false,
		})
	}))
	defer srv.Close()

	svc := NewUserService(NewClient(srv.URL, 0))
	page, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalItems != 11 || page.TotalPages != 2 || page.PageIndex != 1 || page.PageSize != 10 {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
	if page.First || !page.Last || page.Empty {
		t.Fatalf("unexpected page flags: %+v", page)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(page.Items))
	}
	want := directory.UserRecord{ID: 11, FullName: "Maria Santos", Email: "maria@example.com", Phone: "(11) 90000-0001"}
	if page.Items[0] != want {
		t.Fatalf("expected %+v, got %+v", want, page.Items[0])
	}
	if len(page.Items) > page.PageSize {
		t.Fatalf("page holds more items than its size: %+v", page)
	}
}

func TestUserService_CreateSendsPortugueseFieldNames(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/usuario/criar" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "nomeCompleto": body["nomeCompleto"], "email": body["email"], "telefone": body["telefone"]})
	}))
	defer srv.Close()

	svc := NewUserService(NewClient(srv.URL, 0))
	rec, err := svc.Create(context.Background(), directory.UserInput{FullName: "Clara Costa", Email: "clara@example.com", Phone: "(21) 98888-0000"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if body["nomeCompleto"] != "Clara Costa" || body["email"] != "clara@example.com" || body["telefone"] != "(21) 98888-0000" {
		t.Fatalf("unexpected request body: %v", body)
	}
	if rec.ID != 3 || rec.FullName != "Clara Costa" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestUserService_UpdatePutsToRecordPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/usuario/7" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "nomeCompleto": "João Silva", "email": "joao@example.com"})
	}))
	defer srv.Close()

	svc := NewUserService(NewClient(srv.URL, 0))
	rec, err := svc.Update(context.Background(), 7, directory.UserInput{FullName: "João Silva", Email: "joao@example.com"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.ID != 7 || rec.Phone != "" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestUserService_DeleteAcceptsEmptyBody(t *testing.T) {
	var called int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/usuario/9" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		called++
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	svc := NewUserService(NewClient(srv.URL, 0))
	if err := svc.Delete(context.Background(), 9); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if called != 1 {
		t.Fatalf("expected exactly one delete call, got %d", called)
	}
}

func TestSignupService_RegisterSingleRoundTrip(t *testing.T) {
	var calls int
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/cadastro/cadastrar" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		calls++
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 5, "nome": body["nome"], "email": body["email"], "mensagem": "cadastro efetuado"})
	}))
	defer srv.Close()

	svc := NewSignupService(NewClient(srv.URL, 0))
	res, err := svc.Register(context.Background(), SignupInput{Name: "Ana Lima", Email: "ana@example.com", Password: "segredo1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one signup call, got %d", calls)
	}
	if body["nome"] != "Ana Lima" || body["email"] != "ana@example.com" || body["senha"] != "segredo1" {
		t.Fatalf("unexpected request body: %v", body)
	}
	if res.ID != 5 || res.Name != "Ana Lima" || res.Message != "cadastro efetuado" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
