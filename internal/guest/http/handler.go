package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
	"github.com/hotelworks/hotel-ops-backend/internal/guest"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/request"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/response"
)

type Handler struct {
	service guest.Service
}

func NewHandler(service guest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListGuestsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	guests, total, err := h.service.List(c.Request.Context(), guest.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]GuestResponse, len(guests))
	for i, g := range guests {
		items[i] = NewGuestResponse(g)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewGuestResponse(g))
}

// UpdateMe lets the authenticated guest edit their own profile.
func (h *Handler) UpdateMe(c *gin.Context) {
	var body UpdateGuestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	g, err := h.service.Update(c.Request.Context(), auth.GetUserID(c), guest.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Contact:   body.Contact,
		Address:   body.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewGuestResponse(g))
}
