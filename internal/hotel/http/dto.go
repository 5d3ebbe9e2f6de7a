package http

import (
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/hotel"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/request"
)

// HotelTag is the compact hotel reference embedded in other responses.
type HotelTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type HotelResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Location:  h.Location,
		Contact:   h.Contact,
		Email:     h.Email,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

type ListHotelsRequest struct {
	request.ListParams
}

type CreateHotelBody struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type UpdateHotelBody struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Contact  *string `json:"contact"`
	Email    *string `json:"email" binding:"omitempty,email"`
}
