package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *HotelHandler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// === Admin Routes ===
	admin := g.Group("", authMiddleware, adminMiddleware)
	{
		admin.GET("/hotels", h.List)
		admin.POST("/hotel", h.Create)
		admin.GET("/hotel/:id", h.Get)
		admin.PUT("/hotel/:id", h.Update)
		admin.DELETE("/hotel/:id", h.Delete)
	}
}
