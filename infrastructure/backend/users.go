package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"fisiovida/infrastructure/directory"
)

// UserService is the directory.Directory implementation backed by the
// backend's /usuario resource.
type UserService struct {
	client *Client
}

func NewUserService(client *Client) *UserService {
	return &UserService{client: client}
}

type usuarioRequest struct {
	NomeCompleto string `json:"nomeCompleto"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone,omitempty"`
}

type usuarioResponse struct {
	ID           int64  `json:"id"`
	NomeCompleto string `json:"nomeCompleto"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone,omitempty"`
}

// pageResponse is the Spring-style page envelope the backend returns.
type pageResponse struct {
	Content       []usuarioResponse `json:"content"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	Size          int               `json:"size"`
	Number        int               `json:"number"`
	First         bool              `json:"first"`
	Last          bool              `json:"last"`
	Empty         bool              `json:"empty"`
}

func toRecord(u usuarioResponse) directory.UserRecord {
	return directory.UserRecord{ID: u.ID, FullName: u.NomeCompleto, Email: u.Email, Phone: u.Telefone}
}

func toRequest(in directory.UserInput) usuarioRequest {
	return usuarioRequest{NomeCompleto: in.FullName, Email: in.Email, Telefone: in.Phone}
}

func (s *UserService) Create(ctx context.Context, in directory.UserInput) (directory.UserRecord, error) {
	var resp usuarioResponse
	if err := s.client.do(ctx, http.MethodPost, "/usuario/criar", nil, toRequest(in), &resp); err != nil {
		return directory.UserRecord{}, err
	}
	return toRecord(resp), nil
}

func (s *UserService) List(ctx context.Context, pageIndex, pageSize int) (directory.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pageIndex))
	query.Set("size", strconv.Itoa(pageSize))

	var resp pageResponse
	if err := s.client.do(ctx, http.MethodGet, "/usuario/listar", query, nil, &resp); err != nil {
		return directory.Page{}, err
	}

	items := make([]directory.UserRecord, 0, len(resp.Content))
	for _, u := range resp.Content {
		items = append(items, toRecord(u))
	}
	return directory.Page{
		Items:      items,
		TotalItems: resp.TotalElements,
		TotalPages: resp.TotalPages,
		PageSize:   resp.Size,
		PageIndex:  resp.Number,
		First:      resp.First,
		Last:       resp.Last,
		Empty:      resp.Empty,
	}, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (directory.UserRecord, error) {
	var resp usuarioResponse
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/usuario/%d", id), nil, nil, &resp); err != nil {
		return directory.UserRecord{}, err
	}
	return toRecord(resp), nil
}

func (s *UserService) Update(ctx context.Context, id int64, in directory.UserInput) (directory.UserRecord, error) {
	var resp usuarioResponse
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/usuario/%d", id), nil, toRequest(in), &resp); err != nil {
		return directory.UserRecord{}, err
	}
	return toRecord(resp), nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/usuario/%d", id), nil, nil, nil)
}
