package booking

import (
	"context"
	"time"
)

type CreateRequest struct {
	RoomID   string
	UserID   string
	CheckIn  time.Time
	CheckOut time.Time
	// Status is optional; only StatusActive is accepted.
	Status *Status
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Get(ctx context.Context, id, requesterID string, isAdmin bool) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	Cancel(ctx context.Context, id, requesterID string, isAdmin bool) error
	Confirmation(ctx context.Context, id, requesterID string, isAdmin bool) ([]byte, error)
	Availability(ctx context.Context, roomID string, window DateRange) (*Availability, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create admits a booking if its dates do not overlap any booking of the room.
// The check and the insert run inside the room's scope, so concurrent requests
// for the same room cannot both pass the check.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	candidate := DateRange{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	if !candidate.Valid() {
		return nil, ErrInvalidDateRange
	}
	if req.Status != nil && *req.Status != StatusActive {
		return nil, ErrInvalidStatus
	}

	var created *Booking
	err := s.repo.InRoomScope(ctx, req.RoomID, func(ctx context.Context, store Store) error {
		existing, err := store.ListByRoom(ctx, req.RoomID)
		if err != nil {
			return err
		}
		if Overlaps(Ranges(existing), candidate) {
			return ErrConflict
		}

		b := &Booking{
			RoomID:   req.RoomID,
			UserID:   req.UserID,
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
			Status:   StatusActive,
		}
		if err := store.Create(ctx, b); err != nil {
			return err
		}

		created, err = store.GetByID(ctx, b.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// authorize loads the booking and checks that the requester owns it or is an admin.
func (s *service) authorize(ctx context.Context, id, requesterID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.UserID != requesterID {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) Get(ctx context.Context, id, requesterID string, isAdmin bool) (*Booking, error) {
	return s.authorize(ctx, id, requesterID, isAdmin)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Cancel hard-deletes the booking, which frees its dates for new admissions.
func (s *service) Cancel(ctx context.Context, id, requesterID string, isAdmin bool) error {
	if _, err := s.authorize(ctx, id, requesterID, isAdmin); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Confirmation(ctx context.Context, id, requesterID string, isAdmin bool) ([]byte, error) {
	b, err := s.authorize(ctx, id, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}
	return RenderConfirmation(b)
}

// Availability lists the booked and free days of a room within window.
func (s *service) Availability(ctx context.Context, roomID string, window DateRange) (*Availability, error) {
	if window.CheckOut.Before(window.CheckIn) {
		return nil, ErrInvalidDateRange
	}
	if window.CheckOut.Sub(window.CheckIn) > maxAvailabilityDays*oneDay {
		return nil, ErrWindowTooLarge
	}

	exists, err := s.repo.RoomExists(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRoomNotFound
	}

	bookings, err := s.repo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	ranges := Ranges(bookings)
	booked := make([]DateRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Overlaps(window) {
			booked = append(booked, r)
		}
	}

	return &Availability{
		RoomID: roomID,
		Window: window,
		Booked: booked,
		Free:   FreeRanges(booked, window),
	}, nil
}
