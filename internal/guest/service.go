package guest

import (
	"context"
	"errors"
	"strings"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
)

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Contact   *string
	Address   *string
}

type UpdateRequest struct {
	FirstName *string
	LastName  *string
	Contact   *string
	Address   *string
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Guest, error)
	Authenticate(ctx context.Context, email, password string) (*Guest, error)
	GetByID(ctx context.Context, id string) (*Guest, error)
	List(ctx context.Context, filter Filter) ([]*Guest, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Guest, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Guest, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" ||
		strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, ErrInvalidInput
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	g := &Guest{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Contact:      req.Contact,
		Address:      req.Address,
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*Guest, error) {
	g, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(g.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return g, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Guest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Guest, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Guest, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		g.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		g.LastName = *req.LastName
	}
	if req.Contact != nil {
		g.Contact = req.Contact
	}
	if req.Address != nil {
		g.Address = req.Address
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
