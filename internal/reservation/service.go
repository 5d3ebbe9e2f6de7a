package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
	"github.com/hotelworks/hotel-ops-backend/internal/event"
	"github.com/hotelworks/hotel-ops-backend/internal/guest"
	"github.com/hotelworks/hotel-ops-backend/internal/room"
)

type CreateRequest struct {
	GuestID   string
	RoomID    string
	StartDate time.Time
	EndDate   time.Time
}

type UpdateDatesRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Ledger creates the billing record at checkout when absent. Implemented
// by the billing service; the indirection keeps billing free to depend
// on reservation data without an import cycle.
type Ledger interface {
	EnsureForCheckout(ctx context.Context, reservationID, guestID string, amount float64) error
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	UpdateDates(ctx context.Context, id string, req UpdateDatesRequest) (*Reservation, error)
	Confirm(ctx context.Context, id string) (*Reservation, error)
	CheckIn(ctx context.Context, id string) (*Reservation, error)
	CheckOut(ctx context.Context, id string) (*Reservation, error)
	Cancel(ctx context.Context, id string, actorID string, actorRole auth.Role) (*Reservation, error)
}

type service struct {
	repo         Repository
	roomService  room.Service
	guestService guest.Service
	ledger       Ledger
	publisher    event.Publisher
}

func NewService(
	repo Repository,
	roomService room.Service,
	guestService guest.Service,
	ledger Ledger,
	publisher event.Publisher,
) Service {
	return &service{
		repo:         repo,
		roomService:  roomService,
		guestService: guestService,
		ledger:       ledger,
		publisher:    publisher,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	if req.RoomID == "" || req.GuestID == "" || req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, ErrInvalidInput
	}
	if !req.StartDate.Before(req.EndDate) {
		return nil, ErrInvalidDateRange
	}

	rm, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrInvalidRoom
		}
		return nil, err
	}

	if _, err := s.guestService.GetByID(ctx, req.GuestID); err != nil {
		if errors.Is(err, guest.ErrNotFound) {
			return nil, ErrInvalidGuest
		}
		return nil, err
	}

	res := &Reservation{
		GuestID:    req.GuestID,
		RoomID:     req.RoomID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: rm.Price * float64(Nights(req.StartDate, req.EndDate)),
		Status:     StatusPending,
	}

	// Overlap check and insert run in one serializable transaction so
	// concurrent requests for the same room and range cannot both win.
	if err := s.repo.CreateIfAvailable(ctx, res); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, event.New("reservation.created", map[string]any{
		"reservation_id": res.ID,
		"guest_id":       res.GuestID,
		"room_id":        res.RoomID,
	}))

	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateDates(ctx context.Context, id string, req UpdateDatesRequest) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStart := res.StartDate
	newEnd := res.EndDate
	changed := false

	if req.StartDate != nil {
		newStart = *req.StartDate
		changed = true
	}
	if req.EndDate != nil {
		newEnd = *req.EndDate
		changed = true
	}
	if !changed {
		return res, nil
	}

	if !newStart.Before(newEnd) {
		return nil, ErrInvalidDateRange
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, res.RoomID, newStart, newEnd, res.ID)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrRoomUnavailable
	}

	// Price follows the dates; it is not recomputed otherwise.
	rm, err := s.roomService.GetByID(ctx, res.RoomID)
	if err != nil {
		return nil, err
	}
	newPrice := rm.Price * float64(Nights(newStart, newEnd))

	if err := s.repo.UpdateDates(ctx, res.ID, newStart, newEnd, newPrice); err != nil {
		return nil, err
	}

	res.StartDate = newStart
	res.EndDate = newEnd
	res.TotalPrice = newPrice
	return res, nil
}

func (s *service) Confirm(ctx context.Context, id string) (*Reservation, error) {
	return s.transition(ctx, id, StatusConfirmed, "reservation.confirmed")
}

func (s *service) CheckIn(ctx context.Context, id string) (*Reservation, error) {
	res, err := s.transition(ctx, id, StatusCheckedIn, "reservation.checked_in")
	if err != nil {
		return nil, err
	}

	if err := s.roomService.SetStatus(ctx, res.RoomID, room.StatusOccupied); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) CheckOut(ctx context.Context, id string) (*Reservation, error) {
	res, err := s.transition(ctx, id, StatusCheckedOut, "reservation.checked_out")
	if err != nil {
		return nil, err
	}

	if err := s.roomService.SetStatus(ctx, res.RoomID, room.StatusAvailable); err != nil {
		return nil, err
	}

	// Guarantees a billing record for the stay; a second checkout or a
	// manually created billing leaves exactly one row.
	if err := s.ledger.EnsureForCheckout(ctx, res.ID, res.GuestID, res.TotalPrice); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Cancel(ctx context.Context, id string, actorID string, actorRole auth.Role) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Guests may only cancel their own reservations. Staff and above
	// may cancel any.
	if !actorRole.IsStaff() && res.GuestID != actorID {
		return nil, ErrPermissionDenied
	}

	if !res.Status.CanTransitionTo(StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, res.ID, StatusCancelled); err != nil {
		return nil, err
	}
	res.Status = StatusCancelled

	s.publisher.Publish(ctx, event.New("reservation.cancelled", map[string]any{
		"reservation_id": res.ID,
		"guest_id":       res.GuestID,
		"room_id":        res.RoomID,
	}))

	return res, nil
}

// transition moves a reservation to next after validating the state
// machine, then publishes eventType.
func (s *service) transition(ctx context.Context, id string, next Status, eventType string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !res.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, res.ID, next); err != nil {
		return nil, err
	}
	res.Status = next

	s.publisher.Publish(ctx, event.New(eventType, map[string]any{
		"reservation_id": res.ID,
		"guest_id":       res.GuestID,
		"room_id":        res.RoomID,
	}))

	return res, nil
}
