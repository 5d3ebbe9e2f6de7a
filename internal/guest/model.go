package guest

import (
	"net/http"
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "guest not found")
	ErrEmailTaken         = apperror.New(http.StatusBadRequest, "email already registered")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid credentials")
	ErrInvalidInput       = apperror.New(http.StatusBadRequest, "email, password, first name, and last name are required")
)

// Guest is a hotel customer account.
type Guest struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Contact      *string
	Address      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing guests.
type Filter struct {
	Page     int
	PageSize int
}
