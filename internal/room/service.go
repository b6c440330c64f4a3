package room

import (
	"context"
	"errors"
	"strings"

	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
)

// CreateRoomRequest carries data to create a room.
type CreateRoomRequest struct {
	HotelID       string
	RoomNumber    string
	RoomType      string
	PricePerNight float64
	MaxGuests     int
	Size          string
	Amenities     string
	Description   string
	IsAvailable   bool
	IsActive      bool
	IsFeatured    bool
	ImageFileID   *string
}

// UpdateRoomRequest carries data for partial updates. A room cannot move between hotels.
type UpdateRoomRequest struct {
	RoomNumber    *string
	RoomType      *string
	PricePerNight *float64
	MaxGuests     *int
	Size          *string
	Amenities     *string
	Description   *string
	IsAvailable   *bool
	IsActive      *bool
	IsFeatured    *bool
	ImageFileID   *string
}

type Service interface {
	Create(ctx context.Context, req CreateRoomRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRoomRequest) (*Room, error)
	Delete(ctx context.Context, id string) error
	ListListings(ctx context.Context, filter ListingFilter) ([]*Listing, error)
}

type service struct {
	repo         Repository
	hotelService hotel.Service
}

func NewService(repo Repository, hotelService hotel.Service) Service {
	return &service{repo: repo, hotelService: hotelService}
}

func validateRoom(rm *Room) error {
	rm.RoomNumber = strings.TrimSpace(rm.RoomNumber)
	rm.RoomType = strings.TrimSpace(rm.RoomType)

	if rm.RoomNumber == "" {
		return ErrRoomNumberRequired
	}
	if rm.RoomType == "" {
		return ErrRoomTypeRequired
	}
	if rm.PricePerNight < 0 {
		return ErrInvalidPrice
	}
	if rm.MaxGuests < 1 {
		return ErrInvalidMaxGuests
	}
	return nil
}

func (s *service) ensureUnique(ctx context.Context, rm *Room) error {
	exists, err := s.repo.ExistsByNumber(ctx, rm.HotelID, rm.RoomNumber, rm.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	rm := &Room{
		HotelID:       req.HotelID,
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Size:          strings.TrimSpace(req.Size),
		Amenities:     strings.TrimSpace(req.Amenities),
		Description:   strings.TrimSpace(req.Description),
		IsAvailable:   req.IsAvailable,
		IsActive:      req.IsActive,
		IsFeatured:    req.IsFeatured,
		ImageFileID:   req.ImageFileID,
	}

	if err := validateRoom(rm); err != nil {
		return nil, err
	}

	h, err := s.hotelService.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotel.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	if err := s.ensureUnique(ctx, rm); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	rm.HotelName = h.Name
	rm.HotelLocation = h.Location
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRoomRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply non-nil fields
	if req.RoomNumber != nil {
		rm.RoomNumber = *req.RoomNumber
	}
	if req.RoomType != nil {
		rm.RoomType = *req.RoomType
	}
	if req.PricePerNight != nil {
		rm.PricePerNight = *req.PricePerNight
	}
	if req.MaxGuests != nil {
		rm.MaxGuests = *req.MaxGuests
	}
	if req.Size != nil {
		rm.Size = strings.TrimSpace(*req.Size)
	}
	if req.Amenities != nil {
		rm.Amenities = strings.TrimSpace(*req.Amenities)
	}
	if req.Description != nil {
		rm.Description = strings.TrimSpace(*req.Description)
	}
	if req.IsAvailable != nil {
		rm.IsAvailable = *req.IsAvailable
	}
	if req.IsActive != nil {
		rm.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		rm.IsFeatured = *req.IsFeatured
	}
	if req.ImageFileID != nil {
		rm.ImageFileID = req.ImageFileID
	}

	if err := validateRoom(rm); err != nil {
		return nil, err
	}
	if req.RoomNumber != nil {
		if err := s.ensureUnique(ctx, rm); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListListings(ctx context.Context, filter ListingFilter) ([]*Listing, error) {
	if filter.Location != nil {
		loc := strings.TrimSpace(*filter.Location)
		filter.Location = &loc
	}
	return s.repo.ListListings(ctx, filter)
}
