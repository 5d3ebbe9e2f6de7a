package http

import (
	"time"

	guestHttp "github.com/hotelworks/hotel-ops-backend/internal/guest/http"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/request"
	"github.com/hotelworks/hotel-ops-backend/internal/reservation"
	roomHttp "github.com/hotelworks/hotel-ops-backend/internal/room/http"
)

type ReservationResponse struct {
	ID         string             `json:"id"`
	Guest      guestHttp.GuestTag `json:"guest"`
	Room       roomHttp.RoomTag   `json:"room"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	TotalPrice float64            `json:"total_price"`
	Status     string             `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

const dateLayout = "2006-01-02"

func NewReservationResponse(res *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         res.ID,
		Guest:      guestHttp.GuestTag{ID: res.GuestID, Name: res.GuestName},
		Room:       roomHttp.RoomTag{ID: res.RoomID, RoomType: res.RoomType},
		StartDate:  res.StartDate.Format(dateLayout),
		EndDate:    res.EndDate.Format(dateLayout),
		TotalPrice: res.TotalPrice,
		Status:     string(res.Status),
		CreatedAt:  res.CreatedAt,
		UpdatedAt:  res.UpdatedAt,
	}
}

type ListReservationsRequest struct {
	request.ListParams
	GuestID string `form:"guest_id" binding:"omitempty,uuid"`
	RoomID  string `form:"room_id" binding:"omitempty,uuid"`
	Status  string `form:"status" binding:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
}

type CreateReservationBody struct {
	RoomID    string    `json:"room_id" binding:"required,uuid"`
	GuestID   string    `json:"guest_id" binding:"omitempty,uuid"`
	StartDate time.Time `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time `json:"end_date" binding:"required" time_format:"2006-01-02"`
}

// Validate performs custom validation for CreateReservationBody.
func (r *CreateReservationBody) Validate() error {
	if !r.StartDate.Before(r.EndDate) {
		return reservation.ErrInvalidDateRange
	}
	return nil
}

type UpdateReservationBody struct {
	StartDate *time.Time `json:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `json:"end_date" time_format:"2006-01-02"`
}
