package http

import (
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/guest"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/request"
)

// GuestTag is the compact guest reference embedded in other responses.
type GuestTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GuestResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Contact   *string   `json:"contact"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGuestResponse(g *guest.Guest) GuestResponse {
	return GuestResponse{
		ID:        g.ID,
		Email:     g.Email,
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Contact:   g.Contact,
		Address:   g.Address,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

type ListGuestsRequest struct {
	request.ListParams
}

type UpdateGuestBody struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Contact   *string `json:"contact"`
	Address   *string `json:"address"`
}
