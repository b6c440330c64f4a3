package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/response"
	roomHttp "github.com/nekogravitycat/hotel-booking-backend/internal/room/http"
	"github.com/nekogravitycat/hotel-booking-backend/internal/search"
)

type Handler struct {
	service search.Service
}

func NewHandler(service search.Service) *Handler {
	return &Handler{service: service}
}

// Search lists rooms matching the filters, ordered by hotel name and room number.
func (h *Handler) Search(c *gin.Context) {
	var query SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		response.Error(c, err)
		return
	}

	listings, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewListResponse(roomHttp.NewListingResponses(listings)))
}
