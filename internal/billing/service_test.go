package billing

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelworks/hotel-ops-backend/internal/event"
	"github.com/hotelworks/hotel-ops-backend/internal/guest"
)

// ==== Fakes ====

type fakeRepo struct {
	billings       map[string]*Billing
	byReservation  map[string]string
	confirmedCalls []string
	nextID         int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		billings:      map[string]*Billing{},
		byReservation: map[string]string{},
	}
}

func (r *fakeRepo) Create(_ context.Context, b *Billing) error {
	if b.ReservationID != nil {
		if _, exists := r.byReservation[*b.ReservationID]; exists {
			return ErrReservationBilled
		}
	}
	r.nextID++
	b.ID = "bill-" + strconv.Itoa(r.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	r.billings[b.ID] = &cp
	if b.ReservationID != nil {
		r.byReservation[*b.ReservationID] = b.ID
	}
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Billing, error) {
	b, ok := r.billings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) GetByReservation(_ context.Context, reservationID string) (*Billing, error) {
	id, ok := r.byReservation[reservationID]
	if !ok {
		return nil, ErrNotFound
	}
	return r.GetByID(context.Background(), id)
}

func (r *fakeRepo) List(_ context.Context, filter Filter) ([]*Billing, int, error) {
	var out []*Billing
	for _, b := range r.billings {
		if filter.GuestID != "" && b.GuestID != filter.GuestID {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, b *Billing) error {
	stored, ok := r.billings[b.ID]
	if !ok {
		return ErrNotFound
	}
	*stored = *b
	return nil
}

func (r *fakeRepo) MarkCompleted(_ context.Context, id string, method, transactionID *string) error {
	b, ok := r.billings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = StatusCompleted
	b.TransactionID = transactionID
	if method != nil {
		b.PaymentMethod = *method
	}
	return nil
}

func (r *fakeRepo) ConfirmPendingReservation(_ context.Context, reservationID string) error {
	r.confirmedCalls = append(r.confirmedCalls, reservationID)
	return nil
}

type fakeGuestService struct{}

func (fakeGuestService) Register(context.Context, guest.RegisterRequest) (*guest.Guest, error) {
	panic("not used")
}

func (fakeGuestService) Authenticate(context.Context, string, string) (*guest.Guest, error) {
	panic("not used")
}

func (fakeGuestService) GetByID(_ context.Context, id string) (*guest.Guest, error) {
	if id == "guest-404" {
		return nil, guest.ErrNotFound
	}
	return &guest.Guest{ID: id}, nil
}

func (fakeGuestService) List(context.Context, guest.Filter) ([]*guest.Guest, int, error) {
	panic("not used")
}

func (fakeGuestService) Update(context.Context, string, guest.UpdateRequest) (*guest.Guest, error) {
	panic("not used")
}

type recordingPublisher struct {
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e event.Event) {
	p.events = append(p.events, e)
}

func newFixture() (*fakeRepo, *recordingPublisher, Service) {
	repo := newFakeRepo()
	publisher := &recordingPublisher{}
	return repo, publisher, NewService(repo, fakeGuestService{}, publisher)
}

// ==== Tests ====

func TestCreateBilling(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to cash and pending", func(t *testing.T) {
		_, _, svc := newFixture()

		b, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", Amount: 120})
		require.NoError(t, err)
		assert.Equal(t, "cash", b.PaymentMethod)
		assert.Equal(t, StatusPending, b.Status)
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		_, _, svc := newFixture()

		_, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", Amount: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects unknown guest", func(t *testing.T) {
		_, _, svc := newFixture()

		_, err := svc.Create(ctx, CreateRequest{GuestID: "guest-404", Amount: 50})
		assert.ErrorIs(t, err, guest.ErrNotFound)
	})

	t.Run("rejects second billing for same reservation", func(t *testing.T) {
		_, _, svc := newFixture()

		resID := "res-1"
		_, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", ReservationID: &resID, Amount: 100})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateRequest{GuestID: "guest-1", ReservationID: &resID, Amount: 100})
		assert.ErrorIs(t, err, ErrReservationBilled)
	})
}

func TestPayBilling(t *testing.T) {
	ctx := context.Background()

	t.Run("completes and emits event", func(t *testing.T) {
		_, publisher, svc := newFixture()

		b, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", Amount: 100})
		require.NoError(t, err)

		txn := "txn-1"
		paid, err := svc.Pay(ctx, b.ID, nil, &txn)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, paid.Status)
		require.NotNil(t, paid.TransactionID)
		assert.Equal(t, "txn-1", *paid.TransactionID)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, "billing.paid", publisher.events[0].Type)
	})

	t.Run("paying twice is a no-op", func(t *testing.T) {
		repo, publisher, svc := newFixture()

		b, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", Amount: 100})
		require.NoError(t, err)

		_, err = svc.Pay(ctx, b.ID, nil, nil)
		require.NoError(t, err)
		_, err = svc.Pay(ctx, b.ID, nil, nil)
		require.NoError(t, err)

		assert.Len(t, publisher.events, 1, "second pay must not emit")
		assert.Empty(t, repo.confirmedCalls)
	})

	t.Run("paying confirms attached pending reservation", func(t *testing.T) {
		repo, _, svc := newFixture()

		resID := "res-7"
		b, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", ReservationID: &resID, Amount: 300})
		require.NoError(t, err)

		_, err = svc.Pay(ctx, b.ID, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"res-7"}, repo.confirmedCalls)
	})

	t.Run("records payment method", func(t *testing.T) {
		_, _, svc := newFixture()

		b, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", Amount: 100})
		require.NoError(t, err)

		method := "card"
		paid, err := svc.Pay(ctx, b.ID, &method, nil)
		require.NoError(t, err)
		assert.Equal(t, "card", paid.PaymentMethod)
	})

	t.Run("unknown billing", func(t *testing.T) {
		_, _, svc := newFixture()

		_, err := svc.Pay(ctx, "missing", nil, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEnsureForCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending billing", func(t *testing.T) {
		repo, _, svc := newFixture()

		require.NoError(t, svc.EnsureForCheckout(ctx, "res-1", "guest-1", 400))

		b, err := repo.GetByReservation(ctx, "res-1")
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
		assert.Equal(t, 400.0, b.Amount)
		assert.Equal(t, "cash", b.PaymentMethod)
	})

	t.Run("idempotent when billing exists", func(t *testing.T) {
		repo, _, svc := newFixture()

		require.NoError(t, svc.EnsureForCheckout(ctx, "res-1", "guest-1", 400))
		require.NoError(t, svc.EnsureForCheckout(ctx, "res-1", "guest-1", 400))

		assert.Len(t, repo.billings, 1)
	})

	t.Run("prepaid billing survives checkout untouched", func(t *testing.T) {
		repo, _, svc := newFixture()

		resID := "res-1"
		b, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", ReservationID: &resID, Amount: 400, PaymentMethod: "card"})
		require.NoError(t, err)
		_, err = svc.Pay(ctx, b.ID, nil, nil)
		require.NoError(t, err)

		require.NoError(t, svc.EnsureForCheckout(ctx, "res-1", "guest-1", 400))

		got, err := repo.GetByReservation(ctx, "res-1")
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, got.Status)
		assert.Equal(t, "card", got.PaymentMethod)
	})
}

func TestUpdateBilling(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		_, _, svc := newFixture()

		b, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", Amount: 100})
		require.NoError(t, err)

		amount := 150.0
		method := "card"
		got, err := svc.Update(ctx, b.ID, UpdateRequest{Amount: &amount, PaymentMethod: &method})
		require.NoError(t, err)
		assert.Equal(t, 150.0, got.Amount)
		assert.Equal(t, "card", got.PaymentMethod)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, _, svc := newFixture()

		b, err := svc.Create(ctx, CreateRequest{GuestID: "guest-1", Amount: 100})
		require.NoError(t, err)

		bad := "refunded"
		_, err = svc.Update(ctx, b.ID, UpdateRequest{Status: &bad})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}
