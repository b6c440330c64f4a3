package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/file"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
)

// Bodies accept multipart/form-data (with an optional hotel_image file) or JSON.

type CreateHotelBody struct {
	Name          string `form:"name" json:"name" binding:"required"`
	Email         string `form:"email" json:"email" binding:"required,email"`
	Location      string `form:"location" json:"location" binding:"required"`
	Description   string `form:"description" json:"description"`
	ContactNumber string `form:"contact_number" json:"contact_number"`
	IsActive      *bool  `form:"is_active" json:"is_active"`
	IsFeatured    bool   `form:"is_featured" json:"is_featured"`
}

type UpdateHotelBody struct {
	Name          *string `form:"name" json:"name" binding:"omitempty,min=1"`
	Email         *string `form:"email" json:"email" binding:"omitempty,email"`
	Location      *string `form:"location" json:"location" binding:"omitempty,min=1"`
	Description   *string `form:"description" json:"description"`
	ContactNumber *string `form:"contact_number" json:"contact_number"`
	IsActive      *bool   `form:"is_active" json:"is_active"`
	IsFeatured    *bool   `form:"is_featured" json:"is_featured"`
}

type ListHotelsQuery struct {
	request.ListParams
	Q string `form:"q"`
}

// HotelTag is the compact hotel reference embedded in other resources.
type HotelTag struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type HotelResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	ContactNumber string    `json:"contact_number"`
	IsActive      bool      `json:"is_active"`
	IsFeatured    bool      `json:"is_featured"`
	ImageURL      *string   `json:"image_url"`
	CreatedBy     *string   `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Email:         h.Email,
		Location:      h.Location,
		Description:   h.Description,
		ContactNumber: h.ContactNumber,
		IsActive:      h.IsActive,
		IsFeatured:    h.IsFeatured,
		ImageURL:      file.OptionalURL(h.ImageFileID),
		CreatedBy:     h.CreatedBy,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}
