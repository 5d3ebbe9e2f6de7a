package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts room inventory routes. Browsing is public;
// writes require admin.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/rooms")

	group.GET("", h.List)
	group.GET("/available/check", h.CheckAvailability)
	group.GET("/:id", h.Get)

	group.POST("", authMiddleware, adminMiddleware, h.Create)
	group.PUT("/:id", authMiddleware, adminMiddleware, h.Update)
	group.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
}
