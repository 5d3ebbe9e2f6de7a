package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts employee management routes, all admin-gated.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/employees")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
