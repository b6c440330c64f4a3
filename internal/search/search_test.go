package search_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking/bookingtest"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
	"github.com/nekogravitycat/hotel-booking-backend/internal/search"
)

// fakeRooms serves a fixed set of listings and applies listing filters.
type fakeRooms struct {
	room.Service
	listings []*room.Listing
}

func (f *fakeRooms) ListListings(_ context.Context, filter room.ListingFilter) ([]*room.Listing, error) {
	var out []*room.Listing
	for _, l := range f.listings {
		if filter.Location != nil && l.Location != *filter.Location {
			continue
		}
		if filter.MinPrice != nil && l.PricePerNight < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && l.PricePerNight > *filter.MaxPrice {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func stay(in, out string) *booking.DateRange {
	return &booking.DateRange{CheckIn: day(in), CheckOut: day(out)}
}

func ptr[T any](v T) *T { return &v }

type fixture struct {
	search   search.Service
	bookings booking.Service
}

// newFixture has room-5 and room-7 in Goa and room-9 in Delhi.
// room-5 is booked from 2024-06-01 to 2024-06-05.
func newFixture(t *testing.T) fixture {
	t.Helper()

	listings := []*room.Listing{
		{HotelID: "h-goa", HotelName: "Sea Breeze", Location: "Goa", RoomID: "room-5", RoomNumber: "5", PricePerNight: 2500},
		{HotelID: "h-goa", HotelName: "Sea Breeze", Location: "Goa", RoomID: "room-7", RoomNumber: "7", PricePerNight: 4000},
		{HotelID: "h-delhi", HotelName: "Capital Inn", Location: "Delhi", RoomID: "room-9", RoomNumber: "9", PricePerNight: 1800},
	}

	repo := bookingtest.NewMemory()
	for _, l := range listings {
		repo.AddRoom(l.RoomID, bookingtest.Room{Number: l.RoomNumber, Price: l.PricePerNight, HotelName: l.HotelName, HotelLocation: l.Location})
	}

	bookings := booking.NewService(repo)
	_, err := bookings.Create(context.Background(), booking.CreateRequest{
		RoomID: "room-5", UserID: "user-1", CheckIn: day("2024-06-01"), CheckOut: day("2024-06-05"),
	})
	require.NoError(t, err)

	return fixture{
		search:   search.NewService(&fakeRooms{listings: listings}, repo),
		bookings: bookings,
	}
}

func roomIDs(listings []*room.Listing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.RoomID
	}
	return ids
}

func TestSearchGoaScenario(t *testing.T) {
	f := newFixture(t)

	got, err := f.search.Search(context.Background(), search.Filter{
		Location: ptr("Goa"),
		Stay:     stay("2024-06-02", "2024-06-04"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"room-7"}, roomIDs(got))
}

func TestSearchFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter search.Filter
		want   []string
	}{
		{"no filters returns everything", search.Filter{}, []string{"room-5", "room-7", "room-9"}},
		{"no dates ignores bookings", search.Filter{Location: ptr("Goa")}, []string{"room-5", "room-7"}},
		{"inclusive price bounds", search.Filter{MinPrice: ptr(1800.0), MaxPrice: ptr(2500.0)}, []string{"room-5", "room-9"}},
		{"min price only", search.Filter{MinPrice: ptr(3000.0)}, []string{"room-7"}},
		{"boundary day is unavailable", search.Filter{Stay: stay("2024-06-05", "2024-06-07")}, []string{"room-7", "room-9"}},
		{"day after checkout is available", search.Filter{Stay: stay("2024-06-06", "2024-06-07")}, []string{"room-5", "room-7", "room-9"}},
		{"unknown location", search.Filter{Location: ptr("Pune")}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.search.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, roomIDs(got))
		})
	}
}

func TestSearchValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.search.Search(ctx, search.Filter{MinPrice: ptr(5000.0), MaxPrice: ptr(100.0)})
	assert.ErrorIs(t, err, search.ErrInvalidPriceRange)

	_, err = f.search.Search(ctx, search.Filter{MinPrice: ptr(-1.0)})
	assert.ErrorIs(t, err, search.ErrInvalidPrice)

	_, err = f.search.Search(ctx, search.Filter{Stay: stay("2024-06-05", "2024-06-05")})
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
}

// A room shows up as available exactly when a booking for it would be admitted.
func TestSearchAgreesWithAdmission(t *testing.T) {
	ctx := context.Background()

	candidates := []*booking.DateRange{
		stay("2024-05-20", "2024-05-31"),
		stay("2024-05-25", "2024-06-01"),
		stay("2024-06-02", "2024-06-03"),
		stay("2024-06-05", "2024-06-06"),
		stay("2024-06-06", "2024-06-10"),
		stay("2024-05-01", "2024-07-01"),
	}

	for _, c := range candidates {
		f := newFixture(t)

		got, err := f.search.Search(ctx, search.Filter{Stay: c})
		require.NoError(t, err)
		listed := false
		for _, id := range roomIDs(got) {
			if id == "room-5" {
				listed = true
			}
		}

		_, err = f.bookings.Create(ctx, booking.CreateRequest{
			RoomID: "room-5", UserID: "user-2", CheckIn: c.CheckIn, CheckOut: c.CheckOut,
		})
		if err != nil && !errors.Is(err, booking.ErrConflict) {
			require.NoError(t, err)
		}
		admitted := err == nil

		assert.Equal(t, admitted, listed, "stay %s to %s",
			booking.FormatDate(c.CheckIn), booking.FormatDate(c.CheckOut))
	}
}
