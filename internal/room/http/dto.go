package http

import (
	"time"

	hotelHttp "github.com/hotelworks/hotel-ops-backend/internal/hotel/http"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/apperror"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/request"
	"github.com/hotelworks/hotel-ops-backend/internal/room"
)

// ErrInvalidDateRange rejects availability queries whose start is not
// strictly before the end.
var ErrInvalidDateRange = apperror.New(400, "start date must be before end date")

// RoomTag is the compact room reference embedded in other responses.
type RoomTag struct {
	ID       string `json:"id"`
	RoomType string `json:"room_type"`
}

type RoomResponse struct {
	ID        string             `json:"id"`
	Hotel     hotelHttp.HotelTag `json:"hotel"`
	RoomType  string             `json:"room_type"`
	Location  string             `json:"location"`
	Capacity  int                `json:"capacity"`
	Amenities []string           `json:"amenities"`
	Price     float64            `json:"price"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	amenities := rm.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return RoomResponse{
		ID:        rm.ID,
		Hotel:     hotelHttp.HotelTag{ID: rm.HotelID, Name: rm.HotelName},
		RoomType:  rm.RoomType,
		Location:  rm.Location,
		Capacity:  rm.Capacity,
		Amenities: amenities,
		Price:     rm.Price,
		Status:    string(rm.Status),
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

type ListRoomsRequest struct {
	request.ListParams
	HotelID  string `form:"hotel_id" binding:"omitempty,uuid"`
	RoomType string `form:"room_type"`
	Status   string `form:"status" binding:"omitempty,oneof=available occupied"`
}

type CreateRoomBody struct {
	HotelID   string   `json:"hotel_id" binding:"omitempty,uuid"`
	RoomType  string   `json:"room_type" binding:"required"`
	Location  string   `json:"location"`
	Capacity  int      `json:"capacity" binding:"omitempty,min=1"`
	Amenities []string `json:"amenities"`
	Price     float64  `json:"price" binding:"omitempty,min=0"`
}

type UpdateRoomBody struct {
	RoomType  *string  `json:"room_type"`
	Location  *string  `json:"location"`
	Capacity  *int     `json:"capacity" binding:"omitempty,min=1"`
	Amenities []string `json:"amenities"`
	Price     *float64 `json:"price" binding:"omitempty,min=0"`
	Status    *string  `json:"status" binding:"omitempty,oneof=available occupied"`
}

type AvailabilityRequest struct {
	StartDate time.Time `form:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time `form:"end_date" binding:"required" time_format:"2006-01-02"`
	HotelID   string    `form:"hotel_id" binding:"omitempty,uuid"`
}

// Validate performs custom validation for AvailabilityRequest.
func (r *AvailabilityRequest) Validate() error {
	if !r.StartDate.Before(r.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}
