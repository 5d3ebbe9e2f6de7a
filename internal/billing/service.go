package billing

import (
	"context"
	"errors"

	"github.com/hotelworks/hotel-ops-backend/internal/event"
	"github.com/hotelworks/hotel-ops-backend/internal/guest"
)

type CreateRequest struct {
	GuestID       string
	ReservationID *string
	Amount        float64
	PaymentMethod string
}

type UpdateRequest struct {
	Amount        *float64
	PaymentMethod *string
	Status        *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Billing, error)
	GetByID(ctx context.Context, id string) (*Billing, error)
	List(ctx context.Context, filter Filter) ([]*Billing, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Billing, error)

	// Pay settles the billing record, optionally recording how it was
	// paid. Paying a completed record is a no-op; paying a pending
	// record also confirms its reservation if one is attached and
	// still pending.
	Pay(ctx context.Context, id string, method, transactionID *string) (*Billing, error)

	// EnsureForCheckout guarantees a billing record exists for the
	// reservation, creating a pending one when absent.
	EnsureForCheckout(ctx context.Context, reservationID, guestID string, amount float64) error
}

type service struct {
	repo         Repository
	guestService guest.Service
	publisher    event.Publisher
}

func NewService(repo Repository, guestService guest.Service, publisher event.Publisher) Service {
	return &service{repo: repo, guestService: guestService, publisher: publisher}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Billing, error) {
	if req.GuestID == "" || req.Amount <= 0 {
		return nil, ErrInvalidInput
	}

	if _, err := s.guestService.GetByID(ctx, req.GuestID); err != nil {
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = "cash"
	}

	b := &Billing{
		GuestID:       req.GuestID,
		ReservationID: req.ReservationID,
		Amount:        req.Amount,
		PaymentMethod: method,
		Status:        StatusPending,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Billing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Billing, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Billing, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, ErrInvalidInput
		}
		b.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		b.PaymentMethod = *req.PaymentMethod
	}
	if req.Status != nil {
		next := Status(*req.Status)
		if !next.Valid() {
			return nil, ErrInvalidStatus
		}
		b.Status = next
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Pay(ctx context.Context, id string, method, transactionID *string) (*Billing, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status == StatusCompleted {
		return b, nil
	}

	if err := s.repo.MarkCompleted(ctx, b.ID, method, transactionID); err != nil {
		return nil, err
	}
	b.Status = StatusCompleted
	b.TransactionID = transactionID
	if method != nil {
		b.PaymentMethod = *method
	}

	// Settling the stay's bill confirms a reservation a guest paid for
	// up front.
	if b.ReservationID != nil {
		if err := s.repo.ConfirmPendingReservation(ctx, *b.ReservationID); err != nil {
			return nil, err
		}
	}

	payload := map[string]any{
		"billing_id": b.ID,
		"guest_id":   b.GuestID,
		"amount":     b.Amount,
	}
	if b.ReservationID != nil {
		payload["reservation_id"] = *b.ReservationID
	}
	s.publisher.Publish(ctx, event.New("billing.paid", payload))

	return b, nil
}

func (s *service) EnsureForCheckout(ctx context.Context, reservationID, guestID string, amount float64) error {
	b := &Billing{
		GuestID:       guestID,
		ReservationID: &reservationID,
		Amount:        amount,
		PaymentMethod: "cash",
		Status:        StatusPending,
	}

	err := s.repo.Create(ctx, b)
	if errors.Is(err, ErrReservationBilled) {
		return nil
	}
	return err
}
