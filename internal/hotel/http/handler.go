package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/auth"
	fileHttp "github.com/nekogravitycat/hotel-booking-backend/internal/file/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/hotel"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
)

const imageField = "hotel_image"

type HotelHandler struct {
	service  hotel.Service
	uploader *fileHttp.ImageUploader
}

func NewHandler(service hotel.Service, uploader *fileHttp.ImageUploader) *HotelHandler {
	return &HotelHandler{
		service:  service,
		uploader: uploader,
	}
}

// List retrieves a paginated list of hotels.
func (h *HotelHandler) List(c *gin.Context) {
	var query ListHotelsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}
	query.Normalize()

	hotels, total, err := h.service.List(c.Request.Context(), hotel.Filter{
		Keyword:  query.Q,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, ht := range hotels {
		items[i] = NewHotelResponse(ht)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}

// Create adds a hotel, storing the optional hotel_image first.
func (h *HotelHandler) Create(c *gin.Context) {
	var body CreateHotelBody
	if err := c.ShouldBind(&body); err != nil {
		response.BindError(c, err)
		return
	}

	img, err := h.uploader.FromForm(c, imageField)
	if err != nil {
		response.Error(c, err)
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	req := hotel.CreateHotelRequest{
		Name:          body.Name,
		Email:         body.Email,
		Location:      body.Location,
		Description:   body.Description,
		ContactNumber: body.ContactNumber,
		IsActive:      isActive,
		IsFeatured:    body.IsFeatured,
		CreatedBy:     auth.GetUserID(c),
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

	c.JSON(http.StatusCreated, NewHotelResponse(created))
}

// Get retrieves a hotel.
func (h *HotelHandler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}

	ht, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewHotelResponse(ht))
}

// Update modifies a hotel. A new hotel_image replaces the previous one.
func (h *HotelHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return
	}

	var body UpdateHotelBody
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

	req := hotel.UpdateHotelRequest{
		Name:          body.Name,
		Email:         body.Email,
		Location:      body.Location,
		Description:   body.Description,
		ContactNumber: body.ContactNumber,
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

	c.JSON(http.StatusOK, NewHotelResponse(updated))
}

// Delete removes a hotel, its rooms and its image.
func (h *HotelHandler) Delete(c *gin.Context) {
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

	c.JSON(http.StatusOK, response.MessageResponse{Message: "hotel deleted successfully"})
}
