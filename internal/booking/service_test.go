package booking_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking/bookingtest"
)

const (
	room5 = "room-5"
	room6 = "room-6"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestService() (booking.Service, *bookingtest.Memory) {
	repo := bookingtest.NewMemory()
	repo.AddRoom(room5, bookingtest.Room{Number: "5", Price: 2500, HotelName: "Sea Breeze", HotelLocation: "Goa"})
	repo.AddRoom(room6, bookingtest.Room{Number: "6", Price: 3000, HotelName: "Sea Breeze", HotelLocation: "Goa"})
	return booking.NewService(repo), repo
}

func request(roomID, userID, in, out string) booking.CreateRequest {
	return booking.CreateRequest{RoomID: roomID, UserID: userID, CheckIn: day(in), CheckOut: day(out)}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns enriched booking", func(t *testing.T) {
		svc, _ := newTestService()
		b, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, booking.StatusActive, b.Status)
		assert.Equal(t, "5", b.RoomNumber)
		assert.Equal(t, 2500.0, b.RoomPrice)
		assert.Equal(t, "Sea Breeze", b.HotelName)
		assert.Equal(t, "Goa", b.HotelLocation)
	})

	t.Run("checkout day equals next checkin is rejected", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, request(room5, "user-2", "2024-06-05", "2024-06-08"))
		assert.ErrorIs(t, err, booking.ErrConflict)
		assert.Equal(t, 1, repo.Count(room5))
	})

	t.Run("day after checkout is accepted", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, request(room5, "user-2", "2024-06-06", "2024-06-08"))
		assert.NoError(t, err)
		assert.Equal(t, 2, repo.Count(room5))
	})

	t.Run("other room is unaffected", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
		require.NoError(t, err)
		_, err = svc.Create(ctx, request(room6, "user-1", "2024-06-01", "2024-06-05"))
		assert.NoError(t, err)
	})

	t.Run("rejection is idempotent", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err = svc.Create(ctx, request(room5, "user-2", "2024-06-03", "2024-06-04"))
			assert.ErrorIs(t, err, booking.ErrConflict)
		}
		assert.Equal(t, 1, repo.Count(room5))
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(ctx, request(room5, "user-1", "2024-06-05", "2024-06-05"))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

		_, err = svc.Create(ctx, request(room5, "user-1", "2024-06-06", "2024-06-05"))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

		req := request(room5, "user-1", "2024-06-01", "2024-06-05")
		status := booking.Status(2)
		req.Status = &status
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Create(ctx, request("missing", "user-1", "2024-06-01", "2024-06-05"))
		assert.ErrorIs(t, err, booking.ErrRoomNotFound)
	})
}

func TestCreateBookingConcurrent(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	const attempts = 20
	var admitted, conflicts atomic.Int32

	var g errgroup.Group
	for i := 0; i < attempts; i++ {
		g.Go(func() error {
			_, err := svc.Create(ctx, request(room5, "user-1", "2024-07-01", "2024-07-04"))
			switch {
			case err == nil:
				admitted.Add(1)
			case errors.Is(err, booking.ErrConflict):
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), admitted.Load())
	assert.Equal(t, int32(attempts-1), conflicts.Load())
	assert.Equal(t, 1, repo.Count(room5))
}

func TestCreateBookingConcurrentDifferentRooms(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	var g errgroup.Group
	for _, roomID := range []string{room5, room6} {
		g.Go(func() error {
			_, err := svc.Create(ctx, request(roomID, "user-1", "2024-07-01", "2024-07-04"))
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1, repo.Count(room5))
	assert.Equal(t, 1, repo.Count(room6))
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("frees capacity", func(t *testing.T) {
		svc, _ := newTestService()
		b, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, request(room5, "user-2", "2024-06-02", "2024-06-03"))
		require.ErrorIs(t, err, booking.ErrConflict)

		require.NoError(t, svc.Cancel(ctx, b.ID, "user-1", false))

		_, err = svc.Create(ctx, request(room5, "user-2", "2024-06-02", "2024-06-03"))
		assert.NoError(t, err)
	})

	t.Run("nonexistent", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
		require.NoError(t, err)

		err = svc.Cancel(ctx, "missing", "user-1", true)
		assert.ErrorIs(t, err, booking.ErrNotFound)
		assert.Equal(t, 1, repo.Count(room5))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		svc, repo := newTestService()
		b, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
		require.NoError(t, err)

		err = svc.Cancel(ctx, b.ID, "user-2", false)
		assert.ErrorIs(t, err, booking.ErrPermissionDenied)
		assert.Equal(t, 1, repo.Count(room5))
	})

	t.Run("admin may cancel any booking", func(t *testing.T) {
		svc, repo := newTestService()
		b, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
		require.NoError(t, err)

		require.NoError(t, svc.Cancel(ctx, b.ID, "admin-1", true))
		assert.Equal(t, 0, repo.Count(room5))
	})
}

func TestBookingHistory(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, request(room6, "user-1", "2024-08-01", "2024-08-03"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, request(room5, "user-2", "2024-09-01", "2024-09-03"))
	require.NoError(t, err)

	history, err := svc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, day("2024-08-01"), history[0].CheckIn)
	assert.Equal(t, day("2024-06-01"), history[1].CheckIn)
}

func TestGetAndConfirmation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	b, err := svc.Create(ctx, request(room5, "user-1", "2024-06-01", "2024-06-05"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, b.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = svc.Get(ctx, b.ID, "user-2", false)
	assert.ErrorIs(t, err, booking.ErrPermissionDenied)

	pdf, err := svc.Confirmation(ctx, b.ID, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	_, err = svc.Confirmation(ctx, "missing", "user-1", false)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}
