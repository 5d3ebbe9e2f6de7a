package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelworks/hotel-ops-backend/internal/pkg/response"
	"github.com/hotelworks/hotel-ops-backend/internal/report"
)

type Handler struct {
	service report.Service
}

func NewHandler(service report.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Occupancy(c *gin.Context) {
	o, err := h.service.Occupancy(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) Revenue(c *gin.Context) {
	r, err := h.service.Revenue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
