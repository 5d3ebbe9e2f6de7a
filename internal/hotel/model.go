package hotel

import (
	"net/http"
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "hotel not found")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "hotel name cannot be empty")
)

// Hotel represents a property managed by the system.
type Hotel struct {
	ID        string
	Name      string
	Location  string
	Contact   string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing hotels.
type Filter struct {
	Page     int
	PageSize int
}
