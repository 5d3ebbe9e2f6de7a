package room

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelworks/hotel-ops-backend/internal/hotel"
)

type fakeRepo struct {
	rooms  map[string]*Room
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rooms: map[string]*Room{}}
}

func (r *fakeRepo) Create(_ context.Context, rm *Room) error {
	r.nextID++
	rm.ID = "room-" + strconv.Itoa(r.nextID)
	rm.CreatedAt = time.Now()
	rm.UpdatedAt = rm.CreatedAt
	cp := *rm
	r.rooms[rm.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Room, error) {
	rm, ok := r.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rm
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Room, int, error) {
	var out []*Room
	for _, rm := range r.rooms {
		cp := *rm
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, rm *Room) error {
	stored, ok := r.rooms[rm.ID]
	if !ok {
		return ErrNotFound
	}
	*stored = *rm
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	rm, ok := r.rooms[id]
	if !ok {
		return ErrNotFound
	}
	rm.Status = status
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(r.rooms, id)
	return nil
}

func (r *fakeRepo) ListAvailable(context.Context, time.Time, time.Time, string) ([]*Room, error) {
	panic("not used")
}

type fakeHotelService struct{}

func (fakeHotelService) Create(context.Context, hotel.CreateRequest) (*hotel.Hotel, error) {
	panic("not used")
}

func (fakeHotelService) GetByID(_ context.Context, id string) (*hotel.Hotel, error) {
	if id != "hotel-1" {
		return nil, hotel.ErrNotFound
	}
	return &hotel.Hotel{ID: id, Name: "Grand Plaza"}, nil
}

func (fakeHotelService) List(context.Context, hotel.Filter) ([]*hotel.Hotel, int, error) {
	panic("not used")
}

func (fakeHotelService) Update(context.Context, string, hotel.UpdateRequest) (*hotel.Hotel, error) {
	panic("not used")
}

func (fakeHotelService) Delete(context.Context, string) error {
	panic("not used")
}

func newService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, fakeHotelService{}), repo
}

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults capacity and amenities", func(t *testing.T) {
		svc, _ := newService()

		rm, err := svc.Create(ctx, CreateRequest{
			HotelID:  "hotel-1",
			RoomType: "double",
			Price:    120,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, rm.Capacity)
		assert.NotNil(t, rm.Amenities)
		assert.Empty(t, rm.Amenities)
		assert.Equal(t, StatusAvailable, rm.Status)
	})

	t.Run("rejects unknown hotel", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.Create(ctx, CreateRequest{HotelID: "hotel-404", RoomType: "double", Price: 120})
		assert.ErrorIs(t, err, ErrInvalidHotel)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.Create(ctx, CreateRequest{HotelID: "hotel-1", RoomType: "double", Price: -1})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestUpdateRoom(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *Room) {
		t.Helper()
		svc, _ := newService()
		rm, err := svc.Create(ctx, CreateRequest{HotelID: "hotel-1", RoomType: "double", Price: 120})
		require.NoError(t, err)
		return svc, rm
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		svc, rm := setup(t)

		price := 150.0
		got, err := svc.Update(ctx, rm.ID, UpdateRequest{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, 150.0, got.Price)
		assert.Equal(t, "double", got.RoomType)
	})

	t.Run("status override", func(t *testing.T) {
		svc, rm := setup(t)

		occupied := string(StatusOccupied)
		got, err := svc.Update(ctx, rm.ID, UpdateRequest{Status: &occupied})
		require.NoError(t, err)
		assert.Equal(t, StatusOccupied, got.Status)
	})

	t.Run("rejects bogus status", func(t *testing.T) {
		svc, rm := setup(t)

		bad := "under_construction"
		_, err := svc.Update(ctx, rm.ID, UpdateRequest{Status: &bad})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestSetRoomStatus(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()

	rm, err := svc.Create(ctx, CreateRequest{HotelID: "hotel-1", RoomType: "double", Price: 120})
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, rm.ID, StatusOccupied))
	got, err := repo.GetByID(ctx, rm.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusOccupied, got.Status)

	assert.ErrorIs(t, svc.SetStatus(ctx, rm.ID, Status("broken")), ErrInvalidStatus)
}
