package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *RoomHandler, authMiddleware, adminMiddleware, guestMiddleware gin.HandlerFunc) {
	// === Guest Routes ===
	g.GET("/rooms-list", authMiddleware, guestMiddleware, h.ListAll)

	// === Admin Routes ===
	admin := g.Group("", authMiddleware, adminMiddleware)
	{
		admin.GET("/rooms", h.List)
		admin.POST("/room", h.Create)
		admin.GET("/room/:id", h.Get)
		admin.PUT("/room/:id", h.Update)
		admin.DELETE("/room/:id", h.Delete)
	}
}
