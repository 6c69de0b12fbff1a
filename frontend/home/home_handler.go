package home

import (
	"fmt"
	"net/http"
)

// HomePageQueryHandler renders the public landing page.
func HomePageQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			Services:     defaultServices(),
			Testimonials: defaultTestimonials(),
			Form: SignupForm{
				Name:  r.URL.Query().Get("nome"),
				Email: r.URL.Query().Get("email"),
			},
		}
		if r.URL.Query().Get("cadastro") == "ok" {
			data.Status = fmt.Sprintf("Cadastro realizado com sucesso! Bem-vindo(a), %s!", r.URL.Query().Get("nome"))
			data.Form = SignupForm{}
		}
		data.ErrorMessage = r.URL.Query().Get("cadastro_error")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := HomePage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render home page", http.StatusInternalServerError)
			return
		}
	}
}
