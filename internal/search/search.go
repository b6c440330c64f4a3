// Package search finds rooms that match listing filters and are free for a stay.
package search

import (
	"context"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

var (
	ErrIncompleteDates   = apperror.BadRequest("checkInDate and checkOutDate must be supplied together")
	ErrInvalidPrice      = apperror.BadRequest("price filters must be non-negative numbers")
	ErrInvalidPriceRange = apperror.BadRequest("minPrice must not exceed maxPrice")
)

// Filter narrows a search. Nil fields impose no constraint.
type Filter struct {
	Location *string
	MinPrice *float64
	MaxPrice *float64
	// Stay, when set, excludes rooms with any booking overlapping it.
	Stay *booking.DateRange
}

func (f Filter) Validate() error {
	if (f.MinPrice != nil && *f.MinPrice < 0) || (f.MaxPrice != nil && *f.MaxPrice < 0) {
		return ErrInvalidPrice
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return ErrInvalidPriceRange
	}
	if f.Stay != nil && !f.Stay.Valid() {
		return booking.ErrInvalidDateRange
	}
	return nil
}

type Service interface {
	Search(ctx context.Context, filter Filter) ([]*room.Listing, error)
}

type service struct {
	rooms    room.Service
	bookings booking.Store
}

func NewService(rooms room.Service, bookings booking.Store) Service {
	return &service{rooms: rooms, bookings: bookings}
}

func (s *service) Search(ctx context.Context, filter Filter) ([]*room.Listing, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	listings, err := s.rooms.ListListings(ctx, room.ListingFilter{
		Location: filter.Location,
		MinPrice: filter.MinPrice,
		MaxPrice: filter.MaxPrice,
	})
	if err != nil {
		return nil, err
	}
	if filter.Stay == nil || len(listings) == 0 {
		return listings, nil
	}

	roomIDs := make([]string, len(listings))
	for i, l := range listings {
		roomIDs[i] = l.RoomID
	}

	bookings, err := s.bookings.ListByRooms(ctx, roomIDs)
	if err != nil {
		return nil, err
	}

	byRoom := make(map[string][]booking.DateRange)
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b.Range())
	}

	available := make([]*room.Listing, 0, len(listings))
	for _, l := range listings {
		if !booking.Overlaps(byRoom[l.RoomID], *filter.Stay) {
			available = append(available, l)
		}
	}
	return available, nil
}
