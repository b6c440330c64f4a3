package booking

import (
	"sort"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

const maxAvailabilityDays = 366

var ErrWindowTooLarge = apperror.BadRequest("availability window must not exceed 366 days")

// Availability describes a room's calendar within a window.
type Availability struct {
	RoomID string
	Window DateRange
	Booked []DateRange
	Free   []DateRange
}

const oneDay = 24 * time.Hour

// FreeRanges returns the maximal runs of days within window that no booking
// occupies. Booked days include both check-in and check-out days, so a
// single-day run is free but cannot hold a stay on its own.
func FreeRanges(booked []DateRange, window DateRange) []DateRange {
	sorted := make([]DateRange, 0, len(booked))
	for _, r := range booked {
		if r.Overlaps(window) {
			sorted = append(sorted, r)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CheckIn.Before(sorted[j].CheckIn) })

	var free []DateRange
	cursor := window.CheckIn
	for _, r := range sorted {
		if r.CheckIn.After(cursor) {
			free = append(free, DateRange{CheckIn: cursor, CheckOut: r.CheckIn.Add(-oneDay)})
		}
		if next := r.CheckOut.Add(oneDay); next.After(cursor) {
			cursor = next
		}
	}
	if !cursor.After(window.CheckOut) {
		free = append(free, DateRange{CheckIn: cursor, CheckOut: window.CheckOut})
	}
	return free
}
