package http

import (
	adminusers "fisiovida/frontend/adminUsers"
	exportspage "fisiovida/frontend/exports"
	"fisiovida/frontend/home"
	"fisiovida/frontend/login"

	"github.com/go-chi/chi/v5"
)

// RegisterPublicRoutes registers the landing page and visitor signup.
func (s *Server) RegisterPublicRoutes() {
	s.router.Get("/", home.HomePageQueryHandler())
	s.router.Post("/cadastro", home.SignupCommandHandler(s.Registrar))
}

// RegisterLoginRoutes registers login/logout routes.
func (s *Server) RegisterLoginRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler)
	s.router.Post("/login", login.CreateLoginHandler(s.DB, s.SessionCache))
	s.router.Post("/logout", login.LogoutHandler(s.DB, s.SessionCache))
}

// RegisterAdminRoutes registers the authenticated admin panel.
func (s *Server) RegisterAdminRoutes(r chi.Router) chi.Router {
	r.Get("/users", adminusers.UsersPageQueryHandler(s.Directory, s.RequirePhone))
	r.Post("/users", adminusers.SaveUserCommandHandler(s.Directory, s.Audit, s.RequirePhone))
	r.Post("/users/{id}/delete", adminusers.DeleteUserCommandHandler(s.Directory, s.Audit))

	r.Get("/exports", exportspage.ExportsPageQueryHandler(s.Directory))
	r.Get("/exports/users.csv", exportspage.UsersExportCSVHandler(s.Directory, s.Audit))
	r.Get("/exports/users.pdf", exportspage.UsersExportPDFHandler(s.Directory, s.Audit))
	return r
}
