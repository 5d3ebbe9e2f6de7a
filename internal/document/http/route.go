package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts HR document routes. All routes require an
// authenticated employee; admin listing covers any employee.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, staffMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/documents", authMiddleware, staffMiddleware)

	group.POST("", h.Upload)
	group.GET("/me/list", h.ListMine)
	group.GET("/:id/content", h.Download)
	group.GET("/:id/thumbnail", h.Thumbnail)

	group.GET("/employee/:id", adminMiddleware, h.ListByEmployee)
	group.DELETE("/:id", adminMiddleware, h.Delete)
}
