package employee

import (
	"context"
	"errors"
	"strings"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
)

type CreateRequest struct {
	HotelID   *string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

type UpdateRequest struct {
	HotelID   *string
	FirstName *string
	LastName  *string
	Role      *string
	Status    *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Employee, error)
	Authenticate(ctx context.Context, email, password string) (*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context, filter Filter) ([]*Employee, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Employee, error)
	Delete(ctx context.Context, id string) error
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

func (s *service) Create(ctx context.Context, req CreateRequest) (*Employee, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" ||
		strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, ErrInvalidInput
	}

	// New accounts default to the lowest staff role.
	role := auth.RoleStaff
	if req.Role != "" {
		parsed, err := auth.ParseRole(req.Role)
		if err != nil {
			return nil, ErrInvalidRole
		}
		// Guests are not employees.
		if parsed == auth.RoleGuest {
			return nil, ErrInvalidRole
		}
		role = parsed
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	e := &Employee{
		HotelID:      req.HotelID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
		Status:       StatusActive,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*Employee, error) {
	e, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if e.Status != StatusActive {
		return nil, ErrAccountInactive
	}
	if err := s.hasher.Compare(e.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Employee, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.HotelID != nil {
		e.HotelID = req.HotelID
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Role != nil {
		role, err := auth.ParseRole(*req.Role)
		if err != nil || role == auth.RoleGuest {
			return nil, ErrInvalidRole
		}
		e.Role = role
	}
	if req.Status != nil {
		st := Status(*req.Status)
		if st != StatusActive && st != StatusInactive {
			return nil, ErrInvalidInput
		}
		e.Status = st
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
