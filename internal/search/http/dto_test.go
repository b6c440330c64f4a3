package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/search"
)

func TestSearchQueryToFilter(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		q := SearchQuery{}
		f, err := q.ToFilter()
		require.NoError(t, err)
		assert.Nil(t, f.Location)
		assert.Nil(t, f.MinPrice)
		assert.Nil(t, f.MaxPrice)
		assert.Nil(t, f.Stay)
	})

	t.Run("all filters", func(t *testing.T) {
		q := SearchQuery{
			Location: " Goa ", MinPrice: "1000", MaxPrice: "3000.5",
			CheckInDate: "2024-06-02", CheckOutDate: "2024-06-04",
		}
		f, err := q.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, "Goa", *f.Location)
		assert.Equal(t, 1000.0, *f.MinPrice)
		assert.Equal(t, 3000.5, *f.MaxPrice)
		require.NotNil(t, f.Stay)
		assert.Equal(t, "2024-06-02", booking.FormatDate(f.Stay.CheckIn))
		assert.Equal(t, "2024-06-04", booking.FormatDate(f.Stay.CheckOut))
	})

	tests := []struct {
		name  string
		query SearchQuery
		want  error
	}{
		{"one date only", SearchQuery{CheckInDate: "2024-06-02"}, search.ErrIncompleteDates},
		{"checkout only", SearchQuery{CheckOutDate: "2024-06-02"}, search.ErrIncompleteDates},
		{"bad date", SearchQuery{CheckInDate: "June 2", CheckOutDate: "2024-06-04"}, booking.ErrInvalidDate},
		{"reversed dates", SearchQuery{CheckInDate: "2024-06-04", CheckOutDate: "2024-06-02"}, booking.ErrInvalidDateRange},
		{"bad price", SearchQuery{MinPrice: "cheap"}, search.ErrInvalidPrice},
		{"min above max", SearchQuery{MinPrice: "10", MaxPrice: "5"}, search.ErrInvalidPriceRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.query.ToFilter()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
