package http

import (
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/employee"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/request"
)

type EmployeeResponse struct {
	ID        string    `json:"id"`
	HotelID   *string   `json:"hotel_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEmployeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		HotelID:   e.HotelID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Role:      string(e.Role),
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type ListEmployeesRequest struct {
	request.ListParams
	HotelID string `form:"hotel_id" binding:"omitempty,uuid"`
	Role    string `form:"role" binding:"omitempty,oneof=staff receptionist admin superadmin"`
	Status  string `form:"status" binding:"omitempty,oneof=active inactive"`
}

type CreateEmployeeBody struct {
	HotelID   *string `json:"hotel_id" binding:"omitempty,uuid"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	Role      string  `json:"role" binding:"omitempty,oneof=staff receptionist admin superadmin"`
}

type UpdateEmployeeBody struct {
	HotelID   *string `json:"hotel_id" binding:"omitempty,uuid"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role" binding:"omitempty,oneof=staff receptionist admin superadmin"`
	Status    *string `json:"status" binding:"omitempty,oneof=active inactive"`
}
