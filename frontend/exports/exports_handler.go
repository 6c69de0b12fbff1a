package exports

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	sessioncontext "fisiovida/frontend/shared/context"
	"fisiovida/infrastructure/audit"
	"fisiovida/infrastructure/backend"
	"fisiovida/infrastructure/directory"
)

// ExportsPageQueryHandler renders the export page with the current
// directory size and the download links.
func ExportsPageQueryHandler(dir directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		data := PageData{NavName: session.Name}
		page, err := dir.List(r.Context(), 0, directory.PageSize)
		if err != nil {
			slog.Error("exports: load directory size failed", slog.Any("err", err))
			data.LoadFailed = true
			data.ErrorMessage = backend.UserMessage(err, "Não foi possível carregar o diretório de usuários.")
		} else {
			data.TotalUsers = page.TotalItems
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ExportsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render exports page", http.StatusInternalServerError)
			return
		}
	}
}

// UsersExportCSVHandler streams the whole directory as CSV, walking every
// page of the backing store.
func UsersExportCSVHandler(dir directory.Directory, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		records, err := collectAllUsers(r.Context(), dir)
		if err != nil {
			slog.Error("exports: collect users for csv failed", slog.Any("err", err))
			http.Error(w, "failed to export csv", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=usuarios.csv")
		if err := writeUsersCSV(w, records); err != nil {
			slog.Error("exports: write csv failed", slog.Any("err", err))
			return
		}
		auditSvc.Record(r.Context(), session.Email, "export.csv", "directory", strconv.Itoa(len(records)), nil, nil)
	}
}

// UsersExportPDFHandler renders the directory contact sheet PDF.
func UsersExportPDFHandler(dir directory.Directory, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		records, err := collectAllUsers(r.Context(), dir)
		if err != nil {
			slog.Error("exports: collect users for pdf failed", slog.Any("err", err))
			http.Error(w, "failed to export pdf", http.StatusInternalServerError)
			return
		}
		if len(records) == 0 {
			http.Error(w, "nenhum usuário para exportar", http.StatusNotFound)
			return
		}

		pdfBytes, err := renderUserSheetPDF(records, time.Now())
		if err != nil {
			slog.Error("exports: render pdf failed", slog.Any("err", err))
			http.Error(w, "failed to export pdf", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=usuarios.pdf")
		if _, err := w.Write(pdfBytes); err != nil {
			slog.Error("exports: write pdf response failed", slog.Any("err", err))
			return
		}
		auditSvc.Record(r.Context(), session.Email, "export.pdf", "directory", strconv.Itoa(len(records)), nil, nil)
	}
}
