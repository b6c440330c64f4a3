package booking

import (
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("booking not found")
	ErrRoomNotFound     = apperror.NotFound("room not found")
	ErrConflict         = apperror.Conflict("room is already booked for the selected dates")
	ErrInvalidDateRange = apperror.BadRequest("check_in_date must be before check_out_date")
	ErrInvalidDate      = apperror.BadRequest("dates must be formatted as YYYY-MM-DD")
	ErrInvalidStatus    = apperror.BadRequest("invalid booking status")
	ErrPermissionDenied = apperror.Forbidden("permission denied")
)

type Status int

const (
	StatusActive Status = 1
)

// Booking is an admitted stay. Dates are calendar days at UTC midnight.
type Booking struct {
	ID            string
	RoomID        string
	UserID        string
	CheckIn       time.Time
	CheckOut      time.Time
	Status        Status
	RoomNumber    string
	RoomPrice     float64
	HotelName     string
	HotelLocation string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// Nights is the number of nights between check-in and check-out.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// DateRange is a closed interval of calendar days.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (r DateRange) Valid() bool {
	return r.CheckIn.Before(r.CheckOut)
}

// Overlaps reports whether r and other share at least one day. Both ends are
// inclusive, so a checkout on day X conflicts with a check-in on day X.
func (r DateRange) Overlaps(other DateRange) bool {
	return within(r.CheckIn, other) ||
		within(r.CheckOut, other) ||
		within(other.CheckIn, r) ||
		within(other.CheckOut, r)
}

func within(d time.Time, r DateRange) bool {
	return !d.Before(r.CheckIn) && !d.After(r.CheckOut)
}

// Overlaps reports whether candidate conflicts with any of the existing ranges.
// Admission and availability search both decide conflicts with this function.
func Overlaps(existing []DateRange, candidate DateRange) bool {
	for _, r := range existing {
		if r.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// Ranges collects the date ranges of bookings.
func Ranges(bookings []*Booking) []DateRange {
	out := make([]DateRange, len(bookings))
	for i, b := range bookings {
		out[i] = b.Range()
	}
	return out
}

const dateLayout = "2006-01-02"

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate.WithCause(err)
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders a calendar day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
