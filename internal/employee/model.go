package employee

import (
	"net/http"
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "employee not found")
	ErrEmailTaken         = apperror.New(http.StatusBadRequest, "email already registered")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid credentials")
	ErrAccountInactive    = apperror.New(http.StatusForbidden, "account is inactive")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "invalid role")
	ErrInvalidInput       = apperror.New(http.StatusBadRequest, "email, password, first name, and last name are required")
)

// Status marks whether an employee account may log in.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee is a member of hotel personnel: staff, receptionist, admin
// or superadmin.
type Employee struct {
	ID           string
	HotelID      *string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         auth.Role
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing employees.
type Filter struct {
	HotelID  string
	Role     string
	Status   string
	Page     int
	PageSize int
}
