package backend

import (
	"context"
	"net/http"
)

// SignupInput is the public signup form payload.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// SignupResult is the backend's answer to a signup.
type SignupResult struct {
	ID      int64
	Name    string
	Email   string
	Message string
}

// SignupService creates signup records; the resource is create-only.
type SignupService struct {
	client *Client
}

func NewSignupService(client *Client) *SignupService {
	return &SignupService{client: client}
}

type cadastroRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type cadastroResponse struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Mensagem string `json:"mensagem,omitempty"`
}

// Register submits the signup form in a single round trip.
func (s *SignupService) Register(ctx context.Context, in SignupInput) (SignupResult, error) {
	req := cadastroRequest{Nome: in.Name, Email: in.Email, Senha: in.Password}
	var resp cadastroResponse
	if err := s.client.do(ctx, http.MethodPost, "/cadastro/cadastrar", nil, req, &resp); err != nil {
		return SignupResult{}, err
	}
	return SignupResult{ID: resp.ID, Name: resp.Nome, Email: resp.Email, Message: resp.Mensagem}, nil
}
