package room

import (
	"context"
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/hotel"
)

type CreateRequest struct {
	HotelID   string
	RoomType  string
	Location  string
	Capacity  int
	Amenities []string
	Price     float64
}

type UpdateRequest struct {
	RoomType  *string
	Location  *string
	Capacity  *int
	Amenities []string
	Price     *float64
	// Status is the administrative override; normal transitions go
	// through reservation check-in/check-out.
	Status *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id string) error

	// SetStatus flips the occupancy state. Reserved for reservation
	// check-in/check-out and admin overrides.
	SetStatus(ctx context.Context, id string, status Status) error

	// AvailableRooms returns rooms with no active reservation
	// overlapping [start, end).
	AvailableRooms(ctx context.Context, start, end time.Time, hotelID string) ([]*Room, error)
}

type service struct {
	repo         Repository
	hotelService hotel.Service
}

func NewService(repo Repository, hotelService hotel.Service) Service {
	return &service{
		repo:         repo,
		hotelService: hotelService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if req.HotelID == "" {
		return nil, ErrInvalidHotel
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if _, err := s.hotelService.GetByID(ctx, req.HotelID); err != nil {
		return nil, ErrInvalidHotel
	}

	capacity := req.Capacity
	if capacity < 1 {
		capacity = 1
	}
	amenities := req.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	rm := &Room{
		HotelID:   req.HotelID,
		RoomType:  req.RoomType,
		Location:  req.Location,
		Capacity:  capacity,
		Amenities: amenities,
		Price:     req.Price,
		Status:    StatusAvailable,
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomType != nil {
		rm.RoomType = *req.RoomType
	}
	if req.Location != nil {
		rm.Location = *req.Location
	}
	if req.Capacity != nil && *req.Capacity > 0 {
		rm.Capacity = *req.Capacity
	}
	if req.Amenities != nil {
		rm.Amenities = req.Amenities
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		rm.Price = *req.Price
	}
	if req.Status != nil {
		st := Status(*req.Status)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		rm.Status = st
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) SetStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) AvailableRooms(ctx context.Context, start, end time.Time, hotelID string) ([]*Room, error) {
	return s.repo.ListAvailable(ctx, start, end, hotelID)
}
