package http

import (
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/billing"
	guestHttp "github.com/hotelworks/hotel-ops-backend/internal/guest/http"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/request"
)

type BillingResponse struct {
	ID            string             `json:"id"`
	Guest         guestHttp.GuestTag `json:"guest"`
	ReservationID *string            `json:"reservation_id"`
	Amount        float64            `json:"amount"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	TransactionID *string            `json:"transaction_id"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func NewBillingResponse(b *billing.Billing) BillingResponse {
	return BillingResponse{
		ID:            b.ID,
		Guest:         guestHttp.GuestTag{ID: b.GuestID, Name: b.GuestName},
		ReservationID: b.ReservationID,
		Amount:        b.Amount,
		PaymentMethod: b.PaymentMethod,
		Status:        string(b.Status),
		TransactionID: b.TransactionID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type ListBillingsRequest struct {
	request.ListParams
	GuestID string `form:"guest_id" binding:"omitempty,uuid"`
	Status  string `form:"status" binding:"omitempty,oneof=pending completed"`
}

type CreateBillingBody struct {
	GuestID       string  `json:"guest_id" binding:"required,uuid"`
	ReservationID *string `json:"reservation_id" binding:"omitempty,uuid"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,oneof=cash card online"`
}

type UpdateBillingBody struct {
	Amount        *float64 `json:"amount" binding:"omitempty,gt=0"`
	PaymentMethod *string  `json:"payment_method" binding:"omitempty,oneof=cash card online"`
	Status        *string  `json:"status" binding:"omitempty,oneof=pending completed"`
}

type PayBillingBody struct {
	PaymentMethod *string `json:"payment_method" binding:"omitempty,oneof=cash card online"`
	TransactionID *string `json:"transaction_id"`
}
