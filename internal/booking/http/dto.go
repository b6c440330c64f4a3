package http

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
)

type CreateBookingRequest struct {
	RoomID       string `json:"room_id" binding:"required,uuid"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	Status       *int   `json:"status"`
}

// ToCreateRequest parses the request dates into calendar days.
func (r *CreateBookingRequest) ToCreateRequest(userID string) (booking.CreateRequest, error) {
	checkIn, err := booking.ParseDate(r.CheckInDate)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	checkOut, err := booking.ParseDate(r.CheckOutDate)
	if err != nil {
		return booking.CreateRequest{}, err
	}

	req := booking.CreateRequest{
		RoomID:   r.RoomID,
		UserID:   userID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	if r.Status != nil {
		status := booking.Status(*r.Status)
		req.Status = &status
	}
	return req, nil
}

type BookingResponse struct {
	ID            string    `json:"id"`
	RoomID        string    `json:"room_id"`
	UserID        string    `json:"user_id"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	Status        int       `json:"status"`
	RoomName      string    `json:"room_name"`
	RoomPrice     float64   `json:"room_price"`
	HotelName     string    `json:"hotel_name"`
	HotelLocation string    `json:"hotel_location"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		RoomID:        b.RoomID,
		UserID:        b.UserID,
		CheckInDate:   booking.FormatDate(b.CheckIn),
		CheckOutDate:  booking.FormatDate(b.CheckOut),
		Status:        int(b.Status),
		RoomName:      b.RoomNumber,
		RoomPrice:     b.RoomPrice,
		HotelName:     b.HotelName,
		HotelLocation: b.HotelLocation,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// AvailabilityQuery is the query string of GET /rooms/:id/availability.
type AvailabilityQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (q *AvailabilityQuery) Window() (booking.DateRange, error) {
	from, err := booking.ParseDate(q.From)
	if err != nil {
		return booking.DateRange{}, err
	}
	to, err := booking.ParseDate(q.To)
	if err != nil {
		return booking.DateRange{}, err
	}
	return booking.DateRange{CheckIn: from, CheckOut: to}, nil
}

type DateRangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func newDateRanges(ranges []booking.DateRange) []DateRangeResponse {
	out := make([]DateRangeResponse, len(ranges))
	for i, r := range ranges {
		out[i] = DateRangeResponse{From: booking.FormatDate(r.CheckIn), To: booking.FormatDate(r.CheckOut)}
	}
	return out
}

type AvailabilityResponse struct {
	RoomID string              `json:"room_id"`
	From   string              `json:"from"`
	To     string              `json:"to"`
	Booked []DateRangeResponse `json:"booked"`
	Free   []DateRangeResponse `json:"free"`
}

func NewAvailabilityResponse(a *booking.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		RoomID: a.RoomID,
		From:   booking.FormatDate(a.Window.CheckIn),
		To:     booking.FormatDate(a.Window.CheckOut),
		Booked: newDateRanges(a.Booked),
		Free:   newDateRanges(a.Free),
	}
}
