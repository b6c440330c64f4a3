package hotel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu     sync.Mutex
	hotels map[string]*Hotel
	seq    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{hotels: make(map[string]*Hotel)}
}

func (r *fakeRepo) Create(_ context.Context, h *Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	h.ID = fmt.Sprintf("hotel-%d", r.seq)
	cp := *h
	r.hotels[h.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Hotel, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Hotel
	for _, h := range r.hotels {
		cp := *h
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, h *Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hotels[h.ID]; !ok {
		return ErrNotFound
	}
	cp := *h
	r.hotels[h.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hotels[id]; !ok {
		return ErrNotFound
	}
	delete(r.hotels, id)
	return nil
}

func (r *fakeRepo) ExistsByNameOrEmail(_ context.Context, name, email, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, h := range r.hotels {
		if id != excludeID && (h.Name == name || h.Email == email) {
			return true, nil
		}
	}
	return false, nil
}

func validCreate(name, email string) CreateHotelRequest {
	return CreateHotelRequest{
		Name:     name,
		Email:    email,
		Location: "Goa",
		IsActive: true,
	}
}

func TestCreateHotel(t *testing.T) {
	ctx := context.Background()

	t.Run("Normalizes and stores", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		h, err := svc.Create(ctx, CreateHotelRequest{
			Name:      "  Sea View ",
			Email:     " Desk@SeaView.example ",
			Location:  " Goa ",
			CreatedBy: "admin-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sea View", h.Name)
		assert.Equal(t, "desk@seaview.example", h.Email)
		assert.Equal(t, "Goa", h.Location)
		require.NotNil(t, h.CreatedBy)
		assert.Equal(t, "admin-1", *h.CreatedBy)
	})

	t.Run("Required fields", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.Create(ctx, CreateHotelRequest{Email: "a@b.c", Location: "Goa"})
		assert.True(t, errors.Is(err, ErrNameRequired))
		_, err = svc.Create(ctx, CreateHotelRequest{Name: "A", Location: "Goa"})
		assert.True(t, errors.Is(err, ErrEmailRequired))
		_, err = svc.Create(ctx, CreateHotelRequest{Name: "A", Email: "a@b.c"})
		assert.True(t, errors.Is(err, ErrLocationRequired))
	})

	t.Run("Duplicate name or email", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.Create(ctx, validCreate("Palm", "palm@example.com"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, validCreate("Palm", "other@example.com"))
		assert.True(t, errors.Is(err, ErrDuplicate))
		_, err = svc.Create(ctx, validCreate("Other", "PALM@example.com"))
		assert.True(t, errors.Is(err, ErrDuplicate))
	})
}

func TestUpdateHotel(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo())

	a, err := svc.Create(ctx, validCreate("Alpha", "alpha@example.com"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, validCreate("Beta", "beta@example.com"))
	require.NoError(t, err)

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		desc := "Beachfront"
		updated, err := svc.Update(ctx, a.ID, UpdateHotelRequest{Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, "Beachfront", updated.Description)
		assert.Equal(t, "Alpha", updated.Name)
	})

	t.Run("Renaming onto another hotel's name conflicts", func(t *testing.T) {
		name := "Beta"
		_, err := svc.Update(ctx, a.ID, UpdateHotelRequest{Name: &name})
		assert.True(t, errors.Is(err, ErrDuplicate))
	})

	t.Run("Keeping its own name is not a conflict", func(t *testing.T) {
		name := "Alpha"
		_, err := svc.Update(ctx, a.ID, UpdateHotelRequest{Name: &name})
		assert.NoError(t, err)
	})

	t.Run("Unknown hotel", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", UpdateHotelRequest{})
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
