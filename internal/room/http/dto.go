package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/file"
	hotelHttp "github.com/nekogravitycat/hotel-booking-backend/internal/hotel/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

// Bodies accept multipart/form-data (with an optional room_image file) or JSON.

type CreateRoomBody struct {
	HotelID       string  `form:"hotel_id" json:"hotel_id" binding:"required,uuid"`
	RoomNumber    string  `form:"room_number" json:"room_number" binding:"required"`
	RoomType      string  `form:"room_type" json:"room_type" binding:"required"`
	PricePerNight float64 `form:"price_per_night" json:"price_per_night" binding:"min=0"`
	MaxGuests     int     `form:"max_guests" json:"max_guests" binding:"required,min=1"`
	Size          string  `form:"size" json:"size"`
	Amenities     string  `form:"amenities" json:"amenities"`
	Description   string  `form:"description" json:"description"`
	IsAvailable   *bool   `form:"is_available" json:"is_available"`
	IsActive      *bool   `form:"is_active" json:"is_active"`
	IsFeatured    bool    `form:"is_featured" json:"is_featured"`
}

type UpdateRoomBody struct {
	RoomNumber    *string  `form:"room_number" json:"room_number" binding:"omitempty,min=1"`
	RoomType      *string  `form:"room_type" json:"room_type" binding:"omitempty,min=1"`
	PricePerNight *float64 `form:"price_per_night" json:"price_per_night" binding:"omitempty,min=0"`
	MaxGuests     *int     `form:"max_guests" json:"max_guests" binding:"omitempty,min=1"`
	Size          *string  `form:"size" json:"size"`
	Amenities     *string  `form:"amenities" json:"amenities"`
	Description   *string  `form:"description" json:"description"`
	IsAvailable   *bool    `form:"is_available" json:"is_available"`
	IsActive      *bool    `form:"is_active" json:"is_active"`
	IsFeatured    *bool    `form:"is_featured" json:"is_featured"`
}

type ListRoomsQuery struct {
	request.ListParams
	HotelID string `form:"hotel_id" binding:"omitempty,uuid"`
}

type RoomResponse struct {
	ID            string             `json:"id"`
	Hotel         hotelHttp.HotelTag `json:"hotel"`
	RoomNumber    string             `json:"room_number"`
	RoomType      string             `json:"room_type"`
	PricePerNight float64            `json:"price_per_night"`
	MaxGuests     int                `json:"max_guests"`
	Size          string             `json:"size"`
	Amenities     string             `json:"amenities"`
	Description   string             `json:"description"`
	IsAvailable   bool               `json:"is_available"`
	IsActive      bool               `json:"is_active"`
	IsFeatured    bool               `json:"is_featured"`
	ImageURL      *string            `json:"image_url"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	return RoomResponse{
		ID:            rm.ID,
		Hotel:         hotelHttp.HotelTag{ID: rm.HotelID, Name: rm.HotelName, Location: rm.HotelLocation},
		RoomNumber:    rm.RoomNumber,
		RoomType:      rm.RoomType,
		PricePerNight: rm.PricePerNight,
		MaxGuests:     rm.MaxGuests,
		Size:          rm.Size,
		Amenities:     rm.Amenities,
		Description:   rm.Description,
		IsAvailable:   rm.IsAvailable,
		IsActive:      rm.IsActive,
		IsFeatured:    rm.IsFeatured,
		ImageURL:      file.OptionalURL(rm.ImageFileID),
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

// ListingResponse is the guest-facing room projection used by room lists and search.
type ListingResponse struct {
	HotelID       string  `json:"hotel_id"`
	HotelName     string  `json:"hotel_name"`
	Location      string  `json:"location"`
	RoomID        string  `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	MaxGuests     int     `json:"max_guests"`
	Description   string  `json:"description"`
	RoomImage     *string `json:"room_image"`
}

func NewListingResponse(l *room.Listing) ListingResponse {
	return ListingResponse{
		HotelID:       l.HotelID,
		HotelName:     l.HotelName,
		Location:      l.Location,
		RoomID:        l.RoomID,
		RoomNumber:    l.RoomNumber,
		RoomType:      l.RoomType,
		PricePerNight: l.PricePerNight,
		MaxGuests:     l.MaxGuests,
		Description:   l.Description,
		RoomImage:     file.OptionalURL(l.ImageFileID),
	}
}

func NewListingResponses(listings []*room.Listing) []ListingResponse {
	items := make([]ListingResponse, len(listings))
	for i, l := range listings {
		items[i] = NewListingResponse(l)
	}
	return items
}
