package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, guestMiddleware gin.HandlerFunc) {
	group := g.Group("/booking")

	// === Authenticated Routes ===
	group.Use(authMiddleware, guestMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.DELETE("/:id", h.Cancel)
		group.GET("/:id/confirmation", h.Confirmation)
	}

	g.GET("/rooms/:id/availability", authMiddleware, guestMiddleware, h.Availability)
}
