package home

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"fisiovida/infrastructure/backend"
)

// MinPasswordLength mirrors the minimum the signup form always enforced.
const MinPasswordLength = 6

// Registrar is the slice of the signup service the handler needs.
type Registrar interface {
	Register(ctx context.Context, in backend.SignupInput) (backend.SignupResult, error)
}

// SignupCommandHandler submits the public signup form to the backend and
// redirects back to the form anchor with the outcome. On failure the entered
// name and email are carried back so the form keeps its values.
func SignupCommandHandler(registrar Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			redirectSignupError(w, r, "dados do formulário inválidos", SignupForm{})
			return
		}

		form := SignupForm{
			Name:  strings.TrimSpace(r.FormValue("nome")),
			Email: strings.TrimSpace(r.FormValue("email")),
		}
		password := r.FormValue("senha")

		if form.Name == "" || form.Email == "" || strings.TrimSpace(password) == "" {
			redirectSignupError(w, r, "Por favor, preencha todos os campos", form)
			return
		}
		if len(password) < MinPasswordLength {
			redirectSignupError(w, r, "A senha deve ter no mínimo 6 caracteres", form)
			return
		}
		if registrar == nil {
			redirectSignupError(w, r, "Cadastro indisponível no momento. Tente novamente mais tarde.", form)
			return
		}

		result, err := registrar.Register(r.Context(), backend.SignupInput{
			Name:     form.Name,
			Email:    form.Email,
			Password: password,
		})
		if err != nil {
			slog.Error("signup failed", slog.Any("err", err))
			redirectSignupError(w, r, backend.UserMessage(err, "Erro ao realizar cadastro. Tente novamente."), form)
			return
		}

		query := url.Values{}
		query.Set("cadastro", "ok")
		query.Set("nome", result.Name)
		http.Redirect(w, r, "/?"+query.Encode()+"#cadastro", http.StatusSeeOther)
	}
}

func redirectSignupError(w http.ResponseWriter, r *http.Request, message string, form SignupForm) {
	query := url.Values{}
	query.Set("cadastro_error", message)
	if form.Name != "" {
		query.Set("nome", form.Name)
	}
	if form.Email != "" {
		query.Set("email", form.Email)
	}
	http.Redirect(w, r, "/?"+query.Encode()+"#cadastro", http.StatusSeeOther)
}
