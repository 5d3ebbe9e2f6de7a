package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts hotel management routes. All of them require the
// superadmin gate passed in by the router.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, superAdminMiddleware gin.HandlerFunc) {
	group := g.Group("/superadmin/hotels")
	group.Use(authMiddleware, superAdminMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
