package http

import (
	"strconv"
	"strings"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/search"
)

// SearchQuery mirrors the query string of GET /search. Values stay strings so
// malformed input is reported as a domain error rather than a binding error.
type SearchQuery struct {
	Location     string `form:"location"`
	MinPrice     string `form:"minPrice"`
	MaxPrice     string `form:"maxPrice"`
	CheckInDate  string `form:"checkInDate"`
	CheckOutDate string `form:"checkOutDate"`
}

func parsePrice(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, search.ErrInvalidPrice.WithCause(err)
	}
	return &v, nil
}

func (q *SearchQuery) ToFilter() (search.Filter, error) {
	var f search.Filter

	if loc := strings.TrimSpace(q.Location); loc != "" {
		f.Location = &loc
	}

	var err error
	if f.MinPrice, err = parsePrice(strings.TrimSpace(q.MinPrice)); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parsePrice(strings.TrimSpace(q.MaxPrice)); err != nil {
		return f, err
	}

	checkIn, checkOut := strings.TrimSpace(q.CheckInDate), strings.TrimSpace(q.CheckOutDate)
	switch {
	case checkIn == "" && checkOut == "":
	case checkIn == "" || checkOut == "":
		return f, search.ErrIncompleteDates
	default:
		in, err := booking.ParseDate(checkIn)
		if err != nil {
			return f, err
		}
		out, err := booking.ParseDate(checkOut)
		if err != nil {
			return f, err
		}
		f.Stay = &booking.DateRange{CheckIn: in, CheckOut: out}
	}

	return f, f.Validate()
}
