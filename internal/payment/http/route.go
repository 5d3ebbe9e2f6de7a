package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts payment routes. The webhook stays outside auth;
// its signature check is the gate.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/payments")

	group.POST("/intent", authMiddleware, h.CreateIntent)
	group.POST("/webhook", h.Webhook)
}
