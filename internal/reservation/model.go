package reservation

import (
	"math"
	"net/http"
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "reservation not found")
	ErrInvalidInput      = apperror.New(http.StatusBadRequest, "room, guest, start date, and end date are required")
	ErrInvalidDateRange  = apperror.New(http.StatusBadRequest, "start date must be before end date")
	ErrInvalidRoom       = apperror.New(http.StatusBadRequest, "invalid room_id")
	ErrInvalidGuest      = apperror.New(http.StatusBadRequest, "invalid guest_id")
	ErrRoomUnavailable   = apperror.New(http.StatusBadRequest, "room is already booked for these dates")
	ErrInvalidTransition = apperror.New(http.StatusBadRequest, "invalid reservation state transition")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
)

// Status is a reservation's lifecycle state.
//
//	pending -> confirmed -> checked_in -> checked_out
//	pending|confirmed -> cancelled
//
// checked_out and cancelled are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

// CanTransitionTo reports whether next is a legal successor state.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCheckedIn || next == StatusCancelled
	case StatusCheckedIn:
		return next == StatusCheckedOut
	default:
		return false
	}
}

// IsActive reports whether the reservation blocks room availability.
// Only confirmed and checked_in stays hold a room for their date range.
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// Nights is the number of calendar nights charged for [start, end):
// the ceiling of the date difference, so partial days round up to a
// full night.
func Nights(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// Overlaps reports whether [s1, e1) and [s2, e2) share any night.
// Half-open ranges: a stay ending on the day another begins does not
// conflict.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// Reservation is a guest's booking of a room for a date range.
type Reservation struct {
	ID         string
	GuestID    string
	GuestName  string
	RoomID     string
	RoomType   string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter defines parameters for listing reservations.
type Filter struct {
	GuestID  string
	RoomID   string
	Status   string
	Page     int
	PageSize int
}
