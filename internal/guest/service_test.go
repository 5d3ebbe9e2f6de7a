package guest

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID    map[string]*Guest
	byEmail map[string]*Guest
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]*Guest{}, byEmail: map[string]*Guest{}}
}

func (r *fakeRepo) Create(_ context.Context, g *Guest) error {
	if _, exists := r.byEmail[g.Email]; exists {
		return ErrEmailTaken
	}
	r.nextID++
	g.ID = "guest-" + strconv.Itoa(r.nextID)
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	cp := *g
	r.byID[g.ID] = &cp
	r.byEmail[g.Email] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Guest, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*Guest, error) {
	g, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Guest, int, error) {
	var out []*Guest
	for _, g := range r.byID {
		cp := *g
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, g *Guest) error {
	stored, ok := r.byID[g.ID]
	if !ok {
		return ErrNotFound
	}
	*stored = *g
	return nil
}

// plainHasher marks hashes without real bcrypt work.
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

func TestGuestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and lowercases email", func(t *testing.T) {
		svc, _ := newService()

		g, err := svc.Register(ctx, RegisterRequest{
			Email:     " Alice@Example.COM ",
			Password:  "s3cretpass",
			FirstName: "Alice",
			LastName:  "Chen",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", g.Email)
		assert.Equal(t, "hashed:s3cretpass", g.PasswordHash)
		assert.NotEmpty(t, g.ID)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.Register(ctx, RegisterRequest{Email: "a@b.test", Password: "pass"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _ := newService()

		req := RegisterRequest{Email: "a@b.test", Password: "pass", FirstName: "A", LastName: "B"}
		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestGuestAuthenticate(t *testing.T) {
	ctx := context.Background()

	svc, _ := newService()
	_, err := svc.Register(ctx, RegisterRequest{
		Email: "alice@example.com", Password: "s3cretpass", FirstName: "Alice", LastName: "Chen",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		g, err := svc.Authenticate(ctx, "Alice@Example.com", "s3cretpass")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", g.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost@example.com", "s3cretpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestGuestUpdate(t *testing.T) {
	ctx := context.Background()

	svc, _ := newService()
	g, err := svc.Register(ctx, RegisterRequest{
		Email: "alice@example.com", Password: "s3cretpass", FirstName: "Alice", LastName: "Chen",
	})
	require.NoError(t, err)

	contact := "+886-900-000-000"
	got, err := svc.Update(ctx, g.ID, UpdateRequest{Contact: &contact})
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)
	require.NotNil(t, got.Contact)
	assert.Equal(t, contact, *got.Contact)
}
