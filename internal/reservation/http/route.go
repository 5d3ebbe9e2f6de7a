package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts reservation routes. All routes require an
// authenticated caller; desk operations additionally require the
// receptionist role.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, receptionistMiddleware gin.HandlerFunc) {
	group := g.Group("/reservations", authMiddleware)

	group.POST("", h.Create)
	group.GET("/me/list", h.ListMine)
	group.GET("/:id", h.Get)
	group.PUT("/:id/cancel", h.Cancel)

	group.GET("", receptionistMiddleware, h.List)
	group.PUT("/:id", receptionistMiddleware, h.Update)
	group.PUT("/:id/confirm", receptionistMiddleware, h.Confirm)
	group.PUT("/:id/checkin", receptionistMiddleware, h.CheckIn)
	group.PUT("/:id/checkout", receptionistMiddleware, h.CheckOut)
}
