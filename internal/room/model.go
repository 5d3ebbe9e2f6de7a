package room

import (
	"net/http"
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "room not found")
	ErrInvalidStatus = apperror.New(http.StatusBadRequest, "invalid room status")
	ErrInvalidPrice  = apperror.New(http.StatusBadRequest, "room price cannot be negative")
	ErrInvalidHotel  = apperror.New(http.StatusBadRequest, "invalid hotel_id")
)

// Status is the physical occupancy state of a room. It tracks whether a
// guest currently holds the room; future availability is derived from
// reservations, not from this field.
type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
)

// Valid reports whether s is a known room status.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusOccupied
}

// Room represents a bookable room in a hotel.
type Room struct {
	ID        string
	HotelID   string
	HotelName string
	RoomType  string
	Location  string
	Capacity  int
	Amenities []string
	Price     float64 // nightly rate
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	HotelID  string
	RoomType string
	Status   string
	Page     int
	PageSize int
}
