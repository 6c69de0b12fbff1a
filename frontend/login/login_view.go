package login

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"fisiovida/frontend/shared/html"
)

// GetLoginScreen renders the admin login card.
func GetLoginScreen(errorMessage string) templ.Component {
	var b strings.Builder

	b.WriteString(`<main class="main-login min-vh-100 d-flex align-items-center py-5 bg-light"><div class="container"><div class="row justify-content-center"><div class="col-md-6 col-lg-5">`)
	b.WriteString(`<div class="mb-3"><a href="/" class="btn btn-outline-secondary btn-sm"><i class="bi bi-arrow-left"></i> Voltar</a></div>`)
	b.WriteString(`<div class="card shadow-lg border-0"><div class="card-body p-5">`)
	b.WriteString(`<div class="text-center mb-4"><div class="mb-3"><i class="bi bi-person-circle fs-1 text-primary"></i></div><h2 class="fw-bold">Bem-vindo</h2><p class="text-muted">Acesse o painel de administração</p></div>`)

	if errorMessage != "" {
		fmt.Fprintf(&b, `<div class="alert alert-danger" role="alert"><i class="bi bi-exclamation-triangle"></i> %s</div>`, templ.EscapeString(errorMessage))
	}

	b.WriteString(`<form method="POST" action="/login">`)
	b.WriteString(`<div class="mb-3"><label for="nome" class="form-label"><i class="bi bi-person"></i> Nome</label><input type="text" class="form-control form-control-lg" id="nome" name="nome" placeholder="Digite seu nome" required></div>`)
	b.WriteString(`<div class="mb-3"><label for="email" class="form-label"><i class="bi bi-envelope"></i> Email</label><input type="email" class="form-control form-control-lg" id="email" name="email" placeholder="Digite seu email" required></div>`)
	b.WriteString(`<div class="mb-4"><label for="senha" class="form-label"><i class="bi bi-lock"></i> Senha</label><input type="password" class="form-control form-control-lg" id="senha" name="senha" placeholder="Digite sua senha" required></div>`)
	b.WriteString(`<div class="d-grid gap-2"><button type="submit" class="btn btn-primary btn-lg"><i class="bi bi-box-arrow-in-right"></i> Entrar</button><button type="reset" class="btn btn-outline-secondary"><i class="bi bi-x-circle"></i> Limpar</button></div>`)
	b.WriteString(`</form>`)
	b.WriteString(`<hr class="my-4"><div class="text-center"><small class="text-muted"><i class="bi bi-shield-check"></i> Seus dados estão protegidos</small></div>`)
	b.WriteString(`</div></div></div></div></div></main>`)

	return html.Document("Login - FisioVida", b.String())
}
