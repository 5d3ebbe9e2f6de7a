package employee

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
)

type fakeRepo struct {
	byID    map[string]*Employee
	byEmail map[string]*Employee
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*Employee{}, byEmail: map[string]*Employee{}}
}

func (r *fakeRepo) Create(_ context.Context, e *Employee) error {
	if _, exists := r.byEmail[e.Email]; exists {
		return ErrEmailTaken
	}
	r.nextID++
	e.ID = "emp-" + strconv.Itoa(r.nextID)
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	r.byID[e.ID] = &cp
	r.byEmail[e.Email] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*Employee, error) {
	e, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Employee, int, error) {
	var out []*Employee
	for _, e := range r.byID {
		cp := *e
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, e *Employee) error {
	stored, ok := r.byID[e.ID]
	if !ok {
		return ErrNotFound
	}
	*stored = *e
	r.byEmail[e.Email] = stored
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	e, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.byEmail, e.Email)
	delete(r.byID, id)
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func newService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, plainHasher{}), repo
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to staff role and active status", func(t *testing.T) {
		svc, _ := newService()

		e, err := svc.Create(ctx, CreateRequest{
			FirstName: "Mei",
			LastName:  "Lin",
			Email:     "mei@hotel.test",
			Password:  "s3cretpass",
		})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleStaff, e.Role)
		assert.Equal(t, StatusActive, e.Status)
	})

	t.Run("accepts explicit role", func(t *testing.T) {
		svc, _ := newService()

		e, err := svc.Create(ctx, CreateRequest{
			FirstName: "Mei",
			LastName:  "Lin",
			Email:     "mei@hotel.test",
			Password:  "s3cretpass",
			Role:      "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, e.Role)
	})

	t.Run("rejects guest role", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.Create(ctx, CreateRequest{
			FirstName: "Mei",
			LastName:  "Lin",
			Email:     "mei@hotel.test",
			Password:  "s3cretpass",
			Role:      "guest",
		})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.Create(ctx, CreateRequest{
			FirstName: "Mei",
			LastName:  "Lin",
			Email:     "mei@hotel.test",
			Password:  "s3cretpass",
			Role:      "janitor",
		})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestAuthenticateEmployee(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *Employee) {
		t.Helper()
		svc, _ := newService()
		e, err := svc.Create(ctx, CreateRequest{
			FirstName: "Mei",
			LastName:  "Lin",
			Email:     "mei@hotel.test",
			Password:  "s3cretpass",
		})
		require.NoError(t, err)
		return svc, e
	}

	t.Run("valid credentials", func(t *testing.T) {
		svc, _ := setup(t)

		e, err := svc.Authenticate(ctx, "mei@hotel.test", "s3cretpass")
		require.NoError(t, err)
		assert.Equal(t, "mei@hotel.test", e.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Authenticate(ctx, "mei@hotel.test", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account blocked before password check", func(t *testing.T) {
		svc, e := setup(t)

		inactive := string(StatusInactive)
		_, err := svc.Update(ctx, e.ID, UpdateRequest{Status: &inactive})
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, "mei@hotel.test", "s3cretpass")
		assert.ErrorIs(t, err, ErrAccountInactive)
	})
}
