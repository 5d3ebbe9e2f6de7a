package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts management reports. Admin only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/admin/reports", authMiddleware, adminMiddleware)

	group.GET("/occupancy", h.Occupancy)
	group.GET("/revenue", h.Revenue)
}
