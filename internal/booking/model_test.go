package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func span(in, out string) DateRange {
	return DateRange{CheckIn: day(in), CheckOut: day(out)}
}

func TestDateRangeOverlaps(t *testing.T) {
	existing := span("2024-06-01", "2024-06-05")

	tests := []struct {
		name      string
		candidate DateRange
		want      bool
	}{
		{"identical", span("2024-06-01", "2024-06-05"), true},
		{"inside", span("2024-06-02", "2024-06-04"), true},
		{"enclosing", span("2024-05-30", "2024-06-10"), true},
		{"starts on checkout day", span("2024-06-05", "2024-06-08"), true},
		{"ends on checkin day", span("2024-05-28", "2024-06-01"), true},
		{"straddles start", span("2024-05-30", "2024-06-02"), true},
		{"straddles end", span("2024-06-04", "2024-06-07"), true},
		{"day after checkout", span("2024-06-06", "2024-06-09"), false},
		{"ends day before checkin", span("2024-05-25", "2024-05-31"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.candidate))
			assert.Equal(t, tt.want, tt.candidate.Overlaps(existing), "predicate must be symmetric")
		})
	}
}

func TestOverlaps(t *testing.T) {
	existing := []DateRange{
		span("2024-06-01", "2024-06-05"),
		span("2024-06-10", "2024-06-12"),
	}

	assert.False(t, Overlaps(nil, span("2024-06-01", "2024-06-05")))
	assert.True(t, Overlaps(existing, span("2024-06-12", "2024-06-14")))
	assert.False(t, Overlaps(existing, span("2024-06-06", "2024-06-09")))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-05")
	require.NoError(t, err)
	assert.Equal(t, day("2024-06-05"), d)

	d, err = ParseDate("2024-06-05T22:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, day("2024-06-05"), d)

	d, err = ParseDate("2024-06-05T23:30:00-02:00")
	require.NoError(t, err)
	assert.Equal(t, day("2024-06-06"), d)

	_, err = ParseDate("05/06/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNights(t *testing.T) {
	b := &Booking{CheckIn: day("2024-06-01"), CheckOut: day("2024-06-05")}
	assert.Equal(t, 4, b.Nights())
}

func TestRenderConfirmation(t *testing.T) {
	b := &Booking{
		ID:            "b-1",
		RoomNumber:    "101",
		RoomPrice:     2500,
		HotelName:     "Sea Breeze",
		HotelLocation: "Goa",
		CheckIn:       day("2024-06-01"),
		CheckOut:      day("2024-06-03"),
	}
	out, err := RenderConfirmation(b)
	require.NoError(t, err)
	assert.True(t, len(out) > 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}
