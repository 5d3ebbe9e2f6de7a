package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts billing routes. Desk operations require the
// receptionist role; guests may list their own records.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, receptionistMiddleware gin.HandlerFunc) {
	group := g.Group("/billings", authMiddleware)

	group.GET("/me/list", h.ListMine)

	group.GET("", receptionistMiddleware, h.List)
	group.GET("/:id", receptionistMiddleware, h.Get)
	group.POST("", receptionistMiddleware, h.Create)
	group.PUT("/:id", receptionistMiddleware, h.Update)
	group.PUT("/:id/pay", receptionistMiddleware, h.Pay)
}
