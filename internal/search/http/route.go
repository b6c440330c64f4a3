package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, guestMiddleware gin.HandlerFunc) {
	g.GET("/search", authMiddleware, guestMiddleware, h.Search)
}
