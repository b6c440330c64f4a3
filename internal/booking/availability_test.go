package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeRanges(t *testing.T) {
	window := span("2024-06-01", "2024-06-30")

	tests := []struct {
		name   string
		booked []DateRange
		want   []DateRange
	}{
		{
			name: "No bookings, whole window free",
			want: []DateRange{window},
		},
		{
			name:   "One booking in the middle",
			booked: []DateRange{span("2024-06-10", "2024-06-12")},
			want:   []DateRange{span("2024-06-01", "2024-06-09"), span("2024-06-13", "2024-06-30")},
		},
		{
			name:   "Booking at window start",
			booked: []DateRange{span("2024-05-28", "2024-06-03")},
			want:   []DateRange{span("2024-06-04", "2024-06-30")},
		},
		{
			name:   "Booking at window end",
			booked: []DateRange{span("2024-06-25", "2024-07-02")},
			want:   []DateRange{span("2024-06-01", "2024-06-24")},
		},
		{
			name:   "Unsorted bookings with single free day",
			booked: []DateRange{span("2024-06-12", "2024-06-30"), span("2024-06-01", "2024-06-10")},
			want:   []DateRange{span("2024-06-11", "2024-06-11")},
		},
		{
			name:   "Fully booked",
			booked: []DateRange{span("2024-05-01", "2024-07-01")},
			want:   nil,
		},
		{
			name:   "Bookings outside window ignored",
			booked: []DateRange{span("2024-05-01", "2024-05-10"), span("2024-07-02", "2024-07-05")},
			want:   []DateRange{window},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeRanges(tt.booked, window)
			assert.Equal(t, tt.want, got)
			for _, f := range got {
				assert.False(t, Overlaps(tt.booked, f), "free range must not overlap a booking")
			}
		})
	}
}
