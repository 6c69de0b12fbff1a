package exports

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"fisiovida/frontend/shared/html"
	"fisiovida/frontend/shared/nav"
)

// ExportsPage renders the directory export options.
func ExportsPage(data PageData) templ.Component {
	var b strings.Builder

	b.WriteString(nav.RenderAdminNav(nav.TopNavData{Name: data.NavName}))
	b.WriteString(`<main class="container py-4"><div class="row justify-content-center"><div class="col-lg-8">`)
	b.WriteString(`<h2 class="h3 mb-4"><i class="bi bi-download"></i> Exportar Usuários</h2>`)

	if data.ErrorMessage != "" {
		fmt.Fprintf(&b, `<div class="alert alert-danger" role="alert"><i class="bi bi-exclamation-triangle"></i> %s</div>`,
			templ.EscapeString(data.ErrorMessage))
	}

	b.WriteString(`<div class="card shadow-sm"><div class="card-body">`)
	if data.LoadFailed {
		b.WriteString(`<p class="text-muted mb-0">O diretório está indisponível no momento. Tente novamente mais tarde.</p>`)
	} else {
		fmt.Fprintf(&b, `<p class="mb-4">%d usuário(s) cadastrado(s) no diretório.</p>`, data.TotalUsers)
		b.WriteString(`<div class="d-flex gap-3">`)
		b.WriteString(`<a href="/admin/exports/users.csv" class="btn btn-primary"><i class="bi bi-filetype-csv"></i> Baixar CSV</a>`)
		b.WriteString(`<a href="/admin/exports/users.pdf" class="btn btn-outline-primary"><i class="bi bi-filetype-pdf"></i> Baixar ficha de contatos (PDF)</a>`)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></div>`)

	b.WriteString(`</div></div></main>`)
	return html.Document("Exportar Usuários - FisioVida", b.String())
}
