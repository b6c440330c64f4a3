package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	fileHttp "github.com/nekogravitycat/hotel-booking-backend/internal/file/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

const imageField = "room_image"

type RoomHandler struct {
	service  room.Service
	uploader *fileHttp.ImageUploader
}

func NewHandler(service room.Service, uploader *fileHttp.ImageUploader) *RoomHandler {
	return &RoomHandler{
		service:  service,
		uploader: uploader,
	}
}

// List retrieves a paginated list of rooms for administrators.
func (h *RoomHandler) List(c *gin.Context) {
	var query ListRoomsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}
	query.Normalize()

	rooms, total, err := h.service.List(c.Request.Context(), room.Filter{
		HotelID:  query.HotelID,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, rm := range rooms {
		items[i] = NewRoomResponse(rm)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}

// ListAll returns every room joined with its hotel for guests.
func (h *RoomHandler) ListAll(c *gin.Context) {
	listings, err := h.service.ListListings(c.Request.Context(), room.ListingFilter{})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewListResponse(NewListingResponses(listings)))
}

func (h *RoomHandler) Create(c *gin.Context) {
	var body CreateRoomBody
	if err := c.ShouldBind(&body); err != nil {
		response.BindError(c, err)
		return
	}

	img, err := h.uploader.FromForm(c, imageField)
	if err != nil {
		response.Error(c, err)
		return
	}

	req := room.CreateRoomRequest{
		HotelID:       body.HotelID,
		RoomNumber:    body.RoomNumber,
		RoomType:      body.RoomType,
		PricePerNight: body.PricePerNight,
		MaxGuests:     body.MaxGuests,
		Size:          body.Size,
		Amenities:     body.Amenities,
		Description:   body.Description,
		IsAvailable:   body.IsAvailable == nil || *body.IsAvailable,
		IsActive:      body.IsActive == nil || *body.IsActive,
		IsFeatured:    body.IsFeatured,
	}
	if img != nil {
		req.ImageFileID = &img.ID
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.uploader.Discard(c.Request.Context(), img)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRoomResponse(created))
}

func (h *RoomHandler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}

	rm, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(rm))
}

// Update modifies a room. A new room_image replaces the previous one.
func (h *RoomHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}

	var body UpdateRoomBody
	if err := c.ShouldBind(&body); err != nil {
		response.BindError(c, err)
		return
	}

	ctx := c.Request.Context()

	existing, err := h.service.GetByID(ctx, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	img, err := h.uploader.FromForm(c, imageField)
	if err != nil {
		response.Error(c, err)
		return
	}

	req := room.UpdateRoomRequest{
		RoomNumber:    body.RoomNumber,
		RoomType:      body.RoomType,
		PricePerNight: body.PricePerNight,
		MaxGuests:     body.MaxGuests,
		Size:          body.Size,
		Amenities:     body.Amenities,
		Description:   body.Description,
		IsAvailable:   body.IsAvailable,
		IsActive:      body.IsActive,
		IsFeatured:    body.IsFeatured,
	}
	if img != nil {
		req.ImageFileID = &img.ID
	}

	updated, err := h.service.Update(ctx, uri.ID, req)
	if err != nil {
		h.uploader.Discard(ctx, img)
		response.Error(c, err)
		return
	}
	if img != nil {
		h.uploader.Replace(ctx, existing.ImageFileID)
	}

	c.JSON(http.StatusOK, NewRoomResponse(updated))
}

// Delete removes a room (its bookings cascade) and its image.
func (h *RoomHandler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}

	ctx := c.Request.Context()

	existing, err := h.service.GetByID(ctx, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(ctx, uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	h.uploader.Replace(ctx, existing.ImageFileID)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "room deleted successfully"})
}
