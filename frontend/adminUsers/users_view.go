package adminusers

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"fisiovida/frontend/shared/html"
	"fisiovida/frontend/shared/nav"
)

// UsersListPage renders the directory table, pagination controls and the
// two modals.
func UsersListPage(data PageData) templ.Component {
	var b strings.Builder

	b.WriteString(nav.RenderAdminNav(nav.TopNavData{Name: data.NavName}))
	b.WriteString(`<main class="container py-4"><div class="row"><div class="col-12">`)

	fmt.Fprintf(&b, `<div class="d-flex justify-content-between align-items-center mb-4"><h2 class="h3 mb-0"><i class="bi bi-people"></i> Gerenciamento de Usuários</h2><a href="%s" class="btn btn-success"><i class="bi bi-plus-circle"></i> Adicionar Usuário</a></div>`,
		pageHref(data.Page.PageIndex, "modal=new"))

	if data.Status != "" {
		fmt.Fprintf(&b, `<div class="alert alert-success alert-dismissible" role="alert"><i class="bi bi-check-circle"></i> %s<a href="%s" class="btn-close"></a></div>`,
			templ.EscapeString(data.Status), pageHref(data.Page.PageIndex, ""))
	}
	if data.ErrorMessage != "" {
		fmt.Fprintf(&b, `<div class="alert alert-danger alert-dismissible" role="alert"><i class="bi bi-exclamation-triangle"></i> %s<a href="%s" class="btn-close"></a></div>`,
			templ.EscapeString(data.ErrorMessage), pageHref(data.Page.PageIndex, ""))
	}

	switch {
	case data.LoadFailed:
		b.WriteString(`<div class="alert alert-warning text-center" role="alert"><i class="bi bi-wifi-off fs-3"></i><p class="mb-0 mt-2">Não foi possível carregar a lista de usuários.</p></div>`)
	case data.Page.Empty:
		b.WriteString(`<div class="alert alert-info text-center" role="alert"><i class="bi bi-info-circle fs-3"></i><p class="mb-0 mt-2">Nenhum usuário cadastrado. Clique em "Adicionar Usuário" para começar.</p></div>`)
	default:
		renderTable(&b, data)
		renderPagination(&b, data)
	}

	b.WriteString(`</div></div></main>`)

	if data.Modal != nil {
		renderUserModal(&b, data)
	}
	if data.ConfirmID > 0 {
		renderConfirmModal(&b, data)
	}

	return html.Document("Painel de Administração - FisioVida", b.String())
}

func renderTable(b *strings.Builder, data PageData) {
	b.WriteString(`<div class="card shadow-sm"><div class="card-body p-0"><div class="table-responsive"><table class="table table-hover table-striped mb-0"><thead class="table-primary"><tr><th scope="col">ID</th><th scope="col">Nome</th><th scope="col">Email</th><th scope="col">Telefone</th><th scope="col" class="text-center">Ações</th></tr></thead><tbody>`)
	for _, rec := range data.Page.Items {
		phone := rec.Phone
		if phone == "" {
			phone = "-"
		}
		fmt.Fprintf(b, `<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td class="text-center"><a href="%s" class="btn btn-sm btn-warning me-2"><i class="bi bi-pencil"></i> Editar</a><a href="%s" class="btn btn-sm btn-danger"><i class="bi bi-trash"></i> Excluir</a></td></tr>`,
			rec.ID,
			templ.EscapeString(rec.FullName),
			templ.EscapeString(rec.Email),
			templ.EscapeString(phone),
			pageHref(data.Page.PageIndex, fmt.Sprintf("edit=%d", rec.ID)),
			pageHref(data.Page.PageIndex, fmt.Sprintf("confirm=%d", rec.ID)))
	}
	b.WriteString(`</tbody></table></div></div></div>`)
}

func renderPagination(b *strings.Builder, data PageData) {
	page := data.Page
	if page.TotalPages <= 1 {
		fmt.Fprintf(b, `<p class="text-muted mt-3">%d usuário(s) cadastrado(s)</p>`, page.TotalItems)
		return
	}

	b.WriteString(`<nav class="mt-4" aria-label="Paginação de usuários"><ul class="pagination justify-content-center">`)

	if page.First {
		b.WriteString(`<li class="page-item disabled"><span class="page-link">Anterior</span></li>`)
	} else {
		fmt.Fprintf(b, `<li class="page-item"><a class="page-link" href="%s">Anterior</a></li>`, pageHref(page.PageIndex-1, ""))
	}

	for i := 0; i < page.TotalPages; i++ {
		if i == page.PageIndex {
			fmt.Fprintf(b, `<li class="page-item active"><span class="page-link">%d</span></li>`, i+1)
			continue
		}
		fmt.Fprintf(b, `<li class="page-item"><a class="page-link" href="%s">%d</a></li>`, pageHref(i, ""), i+1)
	}

	if page.Last {
		b.WriteString(`<li class="page-item disabled"><span class="page-link">Próxima</span></li>`)
	} else {
		fmt.Fprintf(b, `<li class="page-item"><a class="page-link" href="%s">Próxima</a></li>`, pageHref(page.PageIndex+1, ""))
	}

	b.WriteString(`</ul></nav>`)
	fmt.Fprintf(b, `<p class="text-muted text-center">Página %d de %d (%d usuários)</p>`, page.PageIndex+1, page.TotalPages, page.TotalItems)
}

func renderUserModal(b *strings.Builder, data PageData) {
	modal := data.Modal
	title := "Adicionar"
	if modal.Edit {
		title = "Editar"
	}

	b.WriteString(`<div class="modal show d-block" tabindex="-1" style="background-color: rgba(0,0,0,0.5)"><div class="modal-dialog modal-dialog-centered"><div class="modal-content">`)
	fmt.Fprintf(b, `<div class="modal-header bg-primary text-white"><h5 class="modal-title"><i class="bi bi-person-plus"></i> %s Usuário</h5><a href="%s" class="btn-close btn-close-white"></a></div>`,
		title, pageHref(data.Page.PageIndex, ""))

	b.WriteString(`<div class="modal-body"><form method="POST" action="/admin/users" id="formUsuario">`)
	fmt.Fprintf(b, `<input type="hidden" name="page" value="%d">`, data.Page.PageIndex)
	if modal.Edit {
		fmt.Fprintf(b, `<input type="hidden" name="id" value="%d">`, modal.ID)
	}

	fmt.Fprintf(b, `<div class="mb-3"><label for="usuarioNome" class="form-label"><i class="bi bi-person"></i> Nome Completo</label><input type="text" class="form-control" id="usuarioNome" name="nome_completo" value="%s" placeholder="Digite o nome completo" required></div>`,
		templ.EscapeString(modal.Form.FullName))
	fmt.Fprintf(b, `<div class="mb-3"><label for="usuarioEmail" class="form-label"><i class="bi bi-envelope"></i> Email</label><input type="email" class="form-control" id="usuarioEmail" name="email" value="%s" placeholder="Digite o email" required></div>`,
		templ.EscapeString(modal.Form.Email))

	phoneRequired := ""
	if modal.RequirePhone {
		phoneRequired = " required"
	}
	fmt.Fprintf(b, `<div class="mb-3"><label for="usuarioTelefone" class="form-label"><i class="bi bi-telephone"></i> Telefone</label><input type="tel" class="form-control" id="usuarioTelefone" name="telefone" value="%s" placeholder="(00) 00000-0000"%s></div>`,
		templ.EscapeString(modal.Form.Phone), phoneRequired)

	b.WriteString(`</form></div>`)
	fmt.Fprintf(b, `<div class="modal-footer"><a href="%s" class="btn btn-secondary"><i class="bi bi-x-circle"></i> Cancelar</a><button type="submit" form="formUsuario" class="btn btn-primary"><i class="bi bi-check-circle"></i> Salvar</button></div>`,
		pageHref(data.Page.PageIndex, ""))
	b.WriteString(`</div></div></div>`)
}

func renderConfirmModal(b *strings.Builder, data PageData) {
	b.WriteString(`<div class="modal show d-block" tabindex="-1" style="background-color: rgba(0,0,0,0.5)"><div class="modal-dialog modal-dialog-centered"><div class="modal-content">`)
	fmt.Fprintf(b, `<div class="modal-header bg-danger text-white"><h5 class="modal-title"><i class="bi bi-exclamation-triangle"></i> Confirmar Exclusão</h5><a href="%s" class="btn-close btn-close-white"></a></div>`,
		pageHref(data.Page.PageIndex, ""))
	b.WriteString(`<div class="modal-body"><p class="mb-0">Tem certeza que deseja excluir este usuário? Esta ação não pode ser desfeita.</p></div>`)

	fmt.Fprintf(b, `<div class="modal-footer"><a href="%s" class="btn btn-secondary"><i class="bi bi-x-circle"></i> Cancelar</a><form method="POST" action="/admin/users/%d/delete" class="mb-0"><input type="hidden" name="page" value="%d"><input type="hidden" name="rows" value="%d"><button type="submit" class="btn btn-danger"><i class="bi bi-trash"></i> Excluir</button></form></div>`,
		pageHref(data.Page.PageIndex, ""), data.ConfirmID, data.Page.PageIndex, len(data.Page.Items))
	b.WriteString(`</div></div></div>`)
}

func pageHref(pageIndex int, extra string) string {
	href := fmt.Sprintf("/admin/users?page=%d", pageIndex)
	if extra != "" {
		href += "&" + extra
	}
	return href
}
