package billing

import (
	"net/http"
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "billing record not found")
	ErrInvalidInput       = apperror.New(http.StatusBadRequest, "guest and a positive amount are required")
	ErrInvalidStatus      = apperror.New(http.StatusBadRequest, "invalid billing status")
	ErrReservationBilled  = apperror.New(http.StatusBadRequest, "reservation already has a billing record")
	ErrInvalidReservation = apperror.New(http.StatusBadRequest, "invalid reservation_id")
)

// Status is a billing record's payment state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Billing is a charge against a guest, usually tied to a reservation's
// stay but also usable for standalone charges (minibar, damages).
type Billing struct {
	ID            string
	GuestID       string
	GuestName     string
	ReservationID *string
	Amount        float64
	PaymentMethod string
	Status        Status
	TransactionID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines parameters for listing billing records.
type Filter struct {
	GuestID  string
	Status   string
	Page     int
	PageSize int
}
