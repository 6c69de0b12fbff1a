package adminusers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	sessioncontext "fisiovida/frontend/shared/context"
	"fisiovida/infrastructure/audit"
	"fisiovida/infrastructure/backend"
	"fisiovida/infrastructure/directory"
)

var errInvalidRecordID = errors.New("registro inválido")

// UsersPageQueryHandler renders the paginated user directory with its
// add/edit modal and delete confirmation driven by query parameters.
func UsersPageQueryHandler(dir directory.Directory, requirePhone bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		pageIndex := parsePageIndex(r.URL.Query().Get("page"))
		data := PageData{NavName: session.Name}

		page, err := dir.List(r.Context(), pageIndex, directory.PageSize)
		if err != nil {
			slog.Error("admin users: load page failed", slog.Int("page", pageIndex), slog.Any("err", err))
			data.LoadFailed = true
			data.ErrorMessage = backend.UserMessage(err, "Não foi possível carregar os usuários. Tente novamente.")
		} else {
			// Requesting a page past the end is a no-op on the directory:
			// redirect to the nearest valid index instead of showing a hole.
			if clamped := directory.ClampPageIndex(pageIndex, page.TotalPages); clamped != pageIndex {
				query := r.URL.Query()
				query.Set("page", strconv.Itoa(clamped))
				http.Redirect(w, r, "/admin/users?"+query.Encode(), http.StatusSeeOther)
				return
			}
			data.Page = page
		}

		data.Status = r.URL.Query().Get("status")
		if data.ErrorMessage == "" {
			data.ErrorMessage = r.URL.Query().Get("error")
		}
		data.Modal = resolveModal(r, dir, requirePhone, &data)
		if raw := r.URL.Query().Get("confirm"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				data.ConfirmID = id
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := UsersListPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render users page", http.StatusInternalServerError)
			return
		}
	}
}

// resolveModal reconstructs the open modal from query state. A failed
// submit reopens the modal with the draft values carried in the query; a
// plain edit link loads the record fresh from the directory.
func resolveModal(r *http.Request, dir directory.Directory, requirePhone bool, data *PageData) *ModalView {
	query := r.URL.Query()

	if query.Get("modal") == "new" {
		return &ModalView{
			Form:         draftFromQuery(query),
			RequirePhone: requirePhone,
		}
	}

	raw := query.Get("edit")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}

	if query.Has("nome_completo") || query.Has("email") || query.Has("telefone") {
		return &ModalView{Edit: true, ID: id, Form: draftFromQuery(query), RequirePhone: requirePhone}
	}

	record, err := dir.Get(r.Context(), id)
	if err != nil {
		slog.Error("admin users: load record for edit failed", slog.Int64("id", id), slog.Any("err", err))
		if data.ErrorMessage == "" {
			data.ErrorMessage = backend.UserMessage(err, "Não foi possível carregar o usuário selecionado.")
		}
		return nil
	}
	draft := directory.DraftFromRecord(record)
	return &ModalView{Edit: true, ID: draft.ID, Form: draft.UserInput, RequirePhone: requirePhone}
}

func draftFromQuery(query url.Values) directory.UserInput {
	return directory.UserInput{
		FullName: query.Get("nome_completo"),
		Email:    query.Get("email"),
		Phone:    query.Get("telefone"),
	}
}

// parseDraft builds the submit draft from the modal form. A present id
// field makes it an edit draft, otherwise a create draft.
func parseDraft(r *http.Request) (directory.Draft, error) {
	in := directory.UserInput{
		FullName: strings.TrimSpace(r.FormValue("nome_completo")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Phone:    strings.TrimSpace(r.FormValue("telefone")),
	}

	raw := strings.TrimSpace(r.FormValue("id"))
	if raw == "" {
		return directory.CreateDraft{UserInput: in}, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errInvalidRecordID
	}
	return directory.EditDraft{ID: id, UserInput: in}, nil
}

// SaveUserCommandHandler submits the add/edit modal: create when the draft
// has no id, update otherwise. Failures reopen the modal with the entered
// values preserved.
func SaveUserCommandHandler(dir directory.Directory, auditSvc *audit.Service, requirePhone bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/admin/users?error="+url.QueryEscape("dados do formulário inválidos"), http.StatusSeeOther)
			return
		}

		pageIndex := parsePageIndex(r.FormValue("page"))
		draft, err := parseDraft(r)
		if err != nil {
			http.Redirect(w, r, listURL(pageIndex, "", "registro inválido"), http.StatusSeeOther)
			return
		}

		record, err := directory.Submit(r.Context(), dir, draft, requirePhone)
		if err != nil {
			http.Redirect(w, r, modalReopenURL(pageIndex, draft, backend.UserMessage(err, err.Error())), http.StatusSeeOther)
			return
		}

		switch draft.(type) {
		case directory.EditDraft:
			auditSvc.Record(r.Context(), session.Email, "user.update", "directory_user", strconv.FormatInt(record.ID, 10), nil, record)
			http.Redirect(w, r, listURL(pageIndex, "Usuário atualizado com sucesso", ""), http.StatusSeeOther)
		default:
			auditSvc.Record(r.Context(), session.Email, "user.create", "directory_user", strconv.FormatInt(record.ID, 10), nil, record)
			http.Redirect(w, r, listURL(pageIndex, "Usuário criado com sucesso", ""), http.StatusSeeOther)
		}
	}
}

// DeleteUserCommandHandler deletes a record after confirmation. The form
// carries the current page index and its row count so the redirect can step
// back a page when the deleted row was the last one on it.
func DeleteUserCommandHandler(dir directory.Directory, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/admin/users?error="+url.QueryEscape("dados do formulário inválidos"), http.StatusSeeOther)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			http.Redirect(w, r, "/admin/users?error="+url.QueryEscape("registro inválido"), http.StatusSeeOther)
			return
		}

		pageIndex := parsePageIndex(r.FormValue("page"))
		rowsOnPage, _ := strconv.Atoi(r.FormValue("rows"))

		if err := dir.Delete(r.Context(), id); err != nil {
			slog.Error("admin users: delete failed", slog.Int64("id", id), slog.Any("err", err))
			http.Redirect(w, r, listURL(pageIndex, "", backend.UserMessage(err, "Não foi possível excluir o usuário.")), http.StatusSeeOther)
			return
		}

		auditSvc.Record(r.Context(), session.Email, "user.delete", "directory_user", strconv.FormatInt(id, 10), nil, nil)
		http.Redirect(w, r, listURL(directory.PageAfterDelete(pageIndex, rowsOnPage), "Usuário excluído com sucesso", ""), http.StatusSeeOther)
	}
}

func parsePageIndex(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

func listURL(pageIndex int, status, errorMessage string) string {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pageIndex))
	if status != "" {
		query.Set("status", status)
	}
	if errorMessage != "" {
		query.Set("error", errorMessage)
	}
	return "/admin/users?" + query.Encode()
}

func modalReopenURL(pageIndex int, draft directory.Draft, errorMessage string) string {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pageIndex))
	query.Set("error", errorMessage)

	in := draft.Input()
	query.Set("nome_completo", in.FullName)
	query.Set("email", in.Email)
	query.Set("telefone", in.Phone)

	if edit, ok := draft.(directory.EditDraft); ok {
		query.Set("edit", strconv.FormatInt(edit.ID, 10))
	} else {
		query.Set("modal", "new")
	}
	return "/admin/users?" + query.Encode()
}
