package home

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"fisiovida/frontend/shared/html"
)

// HomePage renders the full landing page: hero, about, services,
// testimonials, contact and the signup form.
func HomePage(data PageData) templ.Component {
	var b strings.Builder

	b.WriteString(renderHeader())
	b.WriteString(`<main class="container-fluid p-0">`)
	b.WriteString(renderHero())
	b.WriteString(renderAbout())
	b.WriteString(renderServices(data.Services))
	b.WriteString(renderTestimonials(data.Testimonials))
	b.WriteString(renderContactAndSignup(data))
	b.WriteString(`</main>`)
	b.WriteString(renderFooter())

	return html.Document("FisioVida - Dra. Lorena Alves", b.String())
}

func renderHeader() string {
	return `<header class="navbar navbar-expand-lg navbar-light bg-white shadow-sm sticky-top">
  <div class="container">
    <a class="navbar-brand fw-bold text-primary" href="/"><i class="bi bi-heart-pulse"></i> FisioVida</a>
    <nav class="navbar-nav ms-auto flex-row gap-3">
      <a class="nav-link" href="#sobre">Sobre</a>
      <a class="nav-link" href="#servicos">Serviços</a>
      <a class="nav-link" href="#depoimentos">Depoimentos</a>
      <a class="nav-link" href="#cadastro">Cadastro</a>
      <a class="nav-link" href="/login"><i class="bi bi-person"></i> Área Restrita</a>
    </nav>
  </div>
</header>`
}

func renderHero() string {
	return `<section class="home py-5">
  <div class="container">
    <div class="row align-items-center justify-content-center">
      <div class="col-lg-6">
        <div class="mb-4"><h1 class="display-4 fw-bold">Cuidado Especializado<br><span class="text-primary">para sua Recuperação</span></h1></div>
        <div class="mb-4"><p class="lead">Fisioterapia personalizada com técnicas avançadas para sua reabilitação completa.<br>Mais de 10 anos de experiência cuidando da sua saúde e bem-estar.</p></div>
        <div class="mb-4">
          <a href="#cadastro" class="btn btn-primary btn-lg me-2 mb-2">Agendar Consulta</a>
          <a href="#servicos" class="btn btn-outline-primary btn-lg mb-2">Conhecer Serviços</a>
        </div>
        <div class="row g-3">
          <div class="col-6 col-md-3"><div class="card h-100 text-center p-3 shadow-sm"><i class="bi bi-award fs-1 text-primary"></i><p class="mb-0 mt-2 fw-bold">Especializada</p></div></div>
          <div class="col-6 col-md-3"><div class="card h-100 text-center p-3 shadow-sm"><i class="bi bi-people fs-1 text-primary"></i><p class="mb-0 mt-2 fw-bold">500+ Pacientes</p></div></div>
          <div class="col-6 col-md-3"><div class="card h-100 text-center p-3 shadow-sm"><i class="bi bi-clock-history fs-1 text-primary"></i><p class="mb-0 mt-2 fw-bold">10+ Anos</p></div></div>
          <div class="col-6 col-md-3"><div class="card h-100 text-center p-3 shadow-sm"><i class="bi bi-check-circle fs-1 text-primary"></i><p class="mb-0 mt-2 fw-bold">Resultados</p></div></div>
        </div>
      </div>
      <div class="col-lg-5 text-center mt-4 mt-lg-0">
        <img src="/assets/img/imagem-doutora.svg" class="img-fluid rounded shadow" alt="Imagem da doutora" style="max-width: 500px">
      </div>
    </div>
  </div>
</section>`
}

func renderAbout() string {
	return `<section id="sobre" class="sobre bg-light py-5">
  <div class="container">
    <div class="row align-items-center">
      <div class="col-lg-4 mb-4 mb-lg-0">
        <img src="/assets/img/imagem-doutora.svg" class="img-fluid rounded shadow" alt="Foto da doutora Lorena Alves">
      </div>
      <div class="col-lg-8">
        <div class="mb-4">
          <h2 class="display-5 fw-bold">Sobre Dra. Lorena Alves</h2>
          <p class="lead">Fisioterapeuta formada pela Universidade Federal com especialização em Fisioterapia Neurológica e Ortopédica. Mais de 10 anos de experiência dedicados ao cuidado e reabilitação de pacientes.</p>
          <p>Minha missão é proporcionar tratamentos personalizados e eficazes, sempre priorizando o bem-estar e a recuperação completa de cada paciente.</p>
        </div>
        <div class="row g-3">
          <div class="col-md-6"><div class="card h-100 border-0 shadow-sm"><div class="card-body text-center"><i class="bi bi-mortarboard fs-1 text-primary"></i><h5 class="card-title mt-2">Formação Acadêmica</h5><p class="card-text">Universidade Federal</p></div></div></div>
          <div class="col-md-6"><div class="card h-100 border-0 shadow-sm"><div class="card-body text-center"><i class="bi bi-hospital fs-1 text-primary"></i><h5 class="card-title mt-2">Experiência Profissional</h5><p class="card-text">+10 anos</p></div></div></div>
          <div class="col-md-6"><div class="card h-100 border-0 shadow-sm"><div class="card-body text-center"><i class="bi bi-star fs-1 text-primary"></i><h5 class="card-title mt-2">Abordagem Humanizada</h5><p class="card-text">Tratamento centrado no paciente</p></div></div></div>
          <div class="col-md-6"><div class="card h-100 border-0 shadow-sm"><div class="card-body text-center"><i class="bi bi-briefcase fs-1 text-primary"></i><h5 class="card-title mt-2">Atendimento Personalizado</h5><p class="card-text">200+ Atendidos</p></div></div></div>
        </div>
      </div>
    </div>
  </div>
</section>`
}

func renderServices(services []Service) string {
	var b strings.Builder
	b.WriteString(`<section id="servicos" class="servicos py-5"><div class="container">`)
	b.WriteString(`<div class="text-center mb-5"><h2 class="display-5 fw-bold">Serviços Especializados</h2><p class="lead">Oferecemos uma ampla gama de tratamentos fisioterapêuticos personalizados para atender suas necessidades específicas de reabilitação.</p></div>`)
	b.WriteString(`<div class="row g-4">`)
	for _, svc := range services {
		fmt.Fprintf(&b, `<div class="col-md-6 col-lg-4"><div class="card h-100 border-0 shadow"><div class="card-body text-center"><i class="bi %s fs-1 text-primary mb-3"></i><h5 class="card-title">%s</h5><p class="card-text">%s</p></div></div></div>`,
			templ.EscapeString(svc.Icon), templ.EscapeString(svc.Title), templ.EscapeString(svc.Description))
	}
	b.WriteString(`</div></div></section>`)
	return b.String()
}

func renderTestimonials(testimonials []Testimonial) string {
	var b strings.Builder
	b.WriteString(`<section id="depoimentos" class="depoimentos bg-light py-5"><div class="container">`)
	b.WriteString(`<div class="text-center mb-5"><h2 class="display-5 fw-bold">O que Dizem Nossos Pacientes</h2><p class="lead">Histórias reais de recuperação e transformação através do cuidado especializado.</p></div>`)
	b.WriteString(`<div class="row g-4">`)
	for _, tm := range testimonials {
		b.WriteString(`<div class="col-lg-4"><div class="card h-100 border-0 shadow"><div class="card-body"><div class="text-warning mb-3">`)
		for i := 0; i < tm.Stars; i++ {
			b.WriteString(`<i class="bi bi-star-fill"></i>`)
		}
		fmt.Fprintf(&b, `</div><blockquote class="blockquote"><p class="mb-4">%s</p></blockquote><hr><p class="fw-bold mb-0">%s</p><small class="text-muted">%s</small></div></div></div>`,
			templ.EscapeString(tm.Text), templ.EscapeString(tm.Name), templ.EscapeString(tm.Role))
	}
	b.WriteString(`</div></div></section>`)
	return b.String()
}

func renderContactAndSignup(data PageData) string {
	var b strings.Builder
	b.WriteString(`<section id="cadastro" class="contato py-5"><div class="container">`)
	b.WriteString(`<div class="text-center mb-5"><h2 class="display-5 fw-bold">Entre em Contato</h2><p class="lead">Estamos aqui para ajudar você. Cadastre-se para agendar sua consulta ou esclarecer suas dúvidas.</p></div>`)
	b.WriteString(`<div class="row justify-content-center"><div class="col-md-8 col-lg-6"><div class="card shadow border-0"><div class="card-body p-4">`)

	if data.Status != "" {
		fmt.Fprintf(&b, `<div class="alert alert-success" role="alert"><i class="bi bi-check-circle"></i> %s</div>`, templ.EscapeString(data.Status))
	}
	if data.ErrorMessage != "" {
		fmt.Fprintf(&b, `<div class="alert alert-danger" role="alert"><i class="bi bi-exclamation-triangle"></i> %s</div>`, templ.EscapeString(data.ErrorMessage))
	}

	b.WriteString(`<form method="POST" action="/cadastro">`)
	fmt.Fprintf(&b, `<div class="mb-3"><label for="cadastroNome" class="form-label"><i class="bi bi-person"></i> Nome</label><input type="text" class="form-control" id="cadastroNome" name="nome" value="%s" placeholder="Digite seu nome" required></div>`, templ.EscapeString(data.Form.Name))
	fmt.Fprintf(&b, `<div class="mb-3"><label for="cadastroEmail" class="form-label"><i class="bi bi-envelope"></i> Email</label><input type="email" class="form-control" id="cadastroEmail" name="email" value="%s" placeholder="Digite seu email" required></div>`, templ.EscapeString(data.Form.Email))
	b.WriteString(`<div class="mb-4"><label for="cadastroSenha" class="form-label"><i class="bi bi-lock"></i> Senha</label><input type="password" class="form-control" id="cadastroSenha" name="senha" placeholder="Mínimo de 6 caracteres" minlength="6" required></div>`)
	b.WriteString(`<div class="d-grid"><button type="submit" class="btn btn-primary btn-lg"><i class="bi bi-send"></i> Cadastrar</button></div>`)
	b.WriteString(`</form>`)

	b.WriteString(`</div></div></div></div>`)
	b.WriteString(`<div class="row text-center mt-5 g-4">
    <div class="col-md-4"><i class="bi bi-geo-alt fs-1 text-primary"></i><h5 class="mt-2">Endereço</h5><p>Av. Paulista, 1000 - São Paulo, SP</p></div>
    <div class="col-md-4"><i class="bi bi-telephone fs-1 text-primary"></i><h5 class="mt-2">Telefone</h5><p>(11) 99999-0000</p></div>
    <div class="col-md-4"><i class="bi bi-envelope fs-1 text-primary"></i><h5 class="mt-2">Email</h5><p>contato@fisiovida.com.br</p></div>
  </div>`)
	b.WriteString(`</div></section>`)
	return b.String()
}

func renderFooter() string {
	return `<footer class="bg-dark text-white py-4">
  <div class="container text-center">
    <p class="mb-1 fw-bold"><i class="bi bi-heart-pulse"></i> FisioVida - Dra. Lorena Alves</p>
    <small class="text-muted">Cuidando da sua saúde e bem-estar.</small>
  </div>
</footer>`
}
