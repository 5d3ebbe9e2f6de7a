package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts guest directory routes. Listing and detail are
// receptionist-level; profile editing is the guest's own.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, receptionistMiddleware gin.HandlerFunc) {
	group := g.Group("/guests")
	group.Use(authMiddleware)

	group.GET("", receptionistMiddleware, h.List)
	group.GET("/:id", receptionistMiddleware, h.Get)
	group.PUT("/me", h.UpdateMe)
}
