package nav

import (
	"fmt"

	"github.com/a-h/templ"

	"fisiovida/models"
)

// TopNavData is shared with the admin page renderers.
type TopNavData struct {
	Name string
}

func BuildTopNavData(session models.Session) TopNavData {
	return TopNavData{Name: session.Name}
}

// RenderAdminNav renders the admin header bar with the signed-in identity
// and the logout control.
func RenderAdminNav(data TopNavData) string {
	name := data.Name
	if name == "" {
		name = "Admin"
	}
	return fmt.Sprintf(`<header class="navbar navbar-dark bg-primary shadow-sm">
  <div class="container-fluid">
    <span class="navbar-brand mb-0 h1"><i class="bi bi-speedometer2"></i> Painel de Administração</span>
    <div class="d-flex align-items-center">
      <a class="text-white me-3 text-decoration-none" href="/admin/users"><i class="bi bi-people"></i> Usuários</a>
      <a class="text-white me-3 text-decoration-none" href="/admin/exports"><i class="bi bi-download"></i> Exportar</a>
      <span class="text-white me-3"><i class="bi bi-person-circle"></i> %s</span>
      <form method="POST" action="/logout" class="mb-0">
        <button type="submit" class="btn btn-outline-light btn-sm"><i class="bi bi-box-arrow-right"></i> Sair</button>
      </form>
    </div>
  </div>
</header>`, templ.EscapeString(name))
}
