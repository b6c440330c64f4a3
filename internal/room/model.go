package room

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.NotFound("room not found")
	ErrHotelNotFound      = apperror.NotFound("hotel not found")
	ErrDuplicate          = apperror.Conflict("room number already exists in this hotel")
	ErrRoomNumberRequired = apperror.BadRequest("room_number is required")
	ErrRoomTypeRequired   = apperror.BadRequest("room_type is required")
	ErrInvalidPrice       = apperror.BadRequest("price_per_night must not be negative")
	ErrInvalidMaxGuests   = apperror.BadRequest("max_guests must be at least 1")
)

// Room belongs to exactly one hotel. RoomNumber is unique within the hotel.
type Room struct {
	ID            string
	HotelID       string
	HotelName     string
	HotelLocation string
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
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines parameters for the admin room list.
type Filter struct {
	HotelID  string
	Page     int
	PageSize int
}

// Listing is the room-and-hotel projection shown to guests.
type Listing struct {
	HotelID       string
	HotelName     string
	Location      string
	RoomID        string
	RoomNumber    string
	RoomType      string
	PricePerNight float64
	MaxGuests     int
	Description   string
	ImageFileID   *string
}

// ListingFilter narrows listings. Nil fields impose no constraint; price bounds are inclusive.
type ListingFilter struct {
	Location *string
	MinPrice *float64
	MaxPrice *float64
}
