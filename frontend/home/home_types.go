package home

// Service is one treatment offered on the landing page.
type Service struct {
	Title       string
	Description string
	Icon        string
}

// Testimonial is one patient quote.
type Testimonial struct {
	Name  string
	Role  string
	Text  string
	Stars int
}

// SignupForm holds the values re-rendered after a failed submission. The
// password never round-trips.
type SignupForm struct {
	Name  string
	Email string
}

// PageData drives the landing page render.
type PageData struct {
	Status       string
	ErrorMessage string
	Form         SignupForm
	Services     []Service
	Testimonials []Testimonial
}

func defaultServices() []Service {
	return []Service{
		{Title: "Fisioterapia Ortopédica", Description: "Tratamento especializado para lesões musculoesqueléticas, fraturas e pós-operatório ortopédico.", Icon: "bi-activity"},
		{Title: "Fisioterapia Neurológica", Description: "Reabilitação neurológica para AVC, Parkinson, lesões medulares e outras condições neurológicas.", Icon: "bi-brain"},
		{Title: "Fisioterapia Cardiorrespiratória", Description: "Tratamento para condições cardíacas e respiratórias, melhorando capacidade pulmonar e cardíaca.", Icon: "bi-heart-pulse"},
		{Title: "Fisioterapia Esportiva", Description: "Prevenção e tratamento de lesões esportivas, otimização de performance atlética.", Icon: "bi-trophy"},
		{Title: "Eletroterapia", Description: "Uso de recursos eletroterapêuticos para alívio da dor e aceleração da recuperação.", Icon: "bi-lightning"},
		{Title: "Fisioterapia Preventiva", Description: "Programas de prevenção e orientações para manutenção da saúde e qualidade de vida.", Icon: "bi-shield-check"},
	}
}

func defaultTestimonials() []Testimonial {
	return []Testimonial{
		{Name: "Maria Santos", Role: "Recuperação pós-cirúrgica", Text: "A Dra. Lorena Alves foi fundamental na minha recuperação após a cirurgia no joelho. Seu cuidado e dedicação fizeram toda a diferença. Hoje estou 100% recuperada!", Stars: 5},
		{Name: "João Silva", Role: "Fisioterapia neurológica", Text: "Após o AVC, pensei que não voltaria a andar normalmente. Com o tratamento da Dra. Lorena Alves, recuperei minha mobilidade e independência. Sou muito grato!", Stars: 5},
		{Name: "Clara Costa", Role: "Dor nas costas", Text: "Sofria com dores crônicas nas costas há anos. O tratamento personalizado da Dra. Lorena Alves me devolveu a qualidade de vida. Profissional excepcional!", Stars: 5},
	}
}
