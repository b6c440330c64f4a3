package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/booking/bookingtest"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

const (
	roomID  = "6f1c1a52-3c1e-4f7e-9a8e-0d3c5b1e2a10"
	guestID = "0b7f3c2e-1111-4a4a-8b8b-000000000001"
	otherID = "0b7f3c2e-1111-4a4a-8b8b-000000000002"
	adminID = "0b7f3c2e-1111-4a4a-8b8b-000000000003"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := bookingtest.NewMemory()
	repo.AddRoom(roomID, bookingtest.Room{Number: "5", Price: 2500, HotelName: "Sea Breeze", HotelLocation: "Goa"})

	// Principal comes from headers so each request can act as a different user.
	fakeAuth := func(c *gin.Context) {
		userID := c.GetHeader("X-Test-User")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		auth.SetPrincipal(c, &auth.Claims{UserID: userID, Role: c.GetHeader("X-Test-Role")})
		c.Next()
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(booking.NewService(repo)), fakeAuth, auth.RequireRoles(auth.RoleUser, auth.RoleAdmin))
	return r
}

func do(r *gin.Engine, method, path string, body any, userID, role string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
		req.Header.Set("X-Test-Role", role)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookingEndpoints(t *testing.T) {
	r := setupRouter(t)
	var bookingID string

	t.Run("Unauthenticated", func(t *testing.T) {
		w := do(r, "GET", "/api/v1/booking", nil, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Create Success", func(t *testing.T) {
		w := do(r, "POST", "/api/v1/booking", CreateBookingRequest{
			RoomID: roomID, CheckInDate: "2024-06-01", CheckOutDate: "2024-06-05",
		}, guestID, auth.RoleUser)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, guestID, resp.UserID)
		assert.Equal(t, "2024-06-01", resp.CheckInDate)
		assert.Equal(t, "2024-06-05", resp.CheckOutDate)
		assert.Equal(t, 1, resp.Status)
		assert.Equal(t, "5", resp.RoomName)
		assert.Equal(t, "Goa", resp.HotelLocation)
		bookingID = resp.ID
	})

	t.Run("Create Boundary Conflict", func(t *testing.T) {
		w := do(r, "POST", "/api/v1/booking", CreateBookingRequest{
			RoomID: roomID, CheckInDate: "2024-06-05", CheckOutDate: "2024-06-08",
		}, otherID, auth.RoleUser)
		require.Equal(t, http.StatusConflict, w.Code)

		var resp response.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "room is already booked for the selected dates", resp.Error)
	})

	t.Run("Create Validation", func(t *testing.T) {
		w := do(r, "POST", "/api/v1/booking", gin.H{"room_id": roomID, "check_in_date": "2024-06-10"}, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(r, "POST", "/api/v1/booking", CreateBookingRequest{
			RoomID: roomID, CheckInDate: "not-a-date", CheckOutDate: "2024-06-12",
		}, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(r, "POST", "/api/v1/booking", CreateBookingRequest{
			RoomID: roomID, CheckInDate: "2024-06-12", CheckOutDate: "2024-06-10",
		}, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		status := 3
		w = do(r, "POST", "/api/v1/booking", CreateBookingRequest{
			RoomID: roomID, CheckInDate: "2024-06-10", CheckOutDate: "2024-06-12", Status: &status,
		}, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Create Unknown Room", func(t *testing.T) {
		w := do(r, "POST", "/api/v1/booking", CreateBookingRequest{
			RoomID: "6f1c1a52-3c1e-4f7e-9a8e-ffffffffffff", CheckInDate: "2024-06-10", CheckOutDate: "2024-06-12",
		}, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("History", func(t *testing.T) {
		w := do(r, "GET", "/api/v1/booking", nil, guestID, auth.RoleUser)
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.ListResponse[BookingResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, bookingID, resp.Items[0].ID)

		w = do(r, "GET", "/api/v1/booking", nil, otherID, auth.RoleUser)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Items)
	})

	t.Run("Get Permissions", func(t *testing.T) {
		w := do(r, "GET", "/api/v1/booking/"+bookingID, nil, otherID, auth.RoleUser)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = do(r, "GET", "/api/v1/booking/"+bookingID, nil, adminID, auth.RoleAdmin)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Confirmation PDF", func(t *testing.T) {
		w := do(r, "GET", "/api/v1/booking/"+bookingID+"/confirmation", nil, guestID, auth.RoleUser)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("Cancel", func(t *testing.T) {
		w := do(r, "DELETE", "/api/v1/booking/"+bookingID, nil, otherID, auth.RoleUser)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = do(r, "DELETE", "/api/v1/booking/"+bookingID, nil, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusOK, w.Code)

		w = do(r, "DELETE", "/api/v1/booking/"+bookingID, nil, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(r, "DELETE", "/api/v1/booking/not-a-uuid", nil, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Rebook After Cancel", func(t *testing.T) {
		w := do(r, "POST", "/api/v1/booking", CreateBookingRequest{
			RoomID: roomID, CheckInDate: "2024-06-05", CheckOutDate: "2024-06-08",
		}, otherID, auth.RoleUser)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Availability", func(t *testing.T) {
		w := do(r, "GET", "/api/v1/rooms/"+roomID+"/availability?from=2024-06-01&to=2024-06-10", nil, guestID, auth.RoleUser)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []DateRangeResponse{{From: "2024-06-05", To: "2024-06-08"}}, resp.Booked)
		assert.Equal(t, []DateRangeResponse{{From: "2024-06-01", To: "2024-06-04"}, {From: "2024-06-09", To: "2024-06-10"}}, resp.Free)

		w = do(r, "GET", "/api/v1/rooms/"+roomID+"/availability?from=2024-06-01", nil, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(r, "GET", "/api/v1/rooms/"+roomID+"/availability?from=2024-01-01&to=2025-06-01", nil, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(r, "GET", "/api/v1/rooms/6f1c1a52-3c1e-4f7e-9a8e-ffffffffffff/availability?from=2024-06-01&to=2024-06-10", nil, guestID, auth.RoleUser)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Role Not Allowed", func(t *testing.T) {
		w := do(r, "GET", "/api/v1/booking", nil, guestID, "guest")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
