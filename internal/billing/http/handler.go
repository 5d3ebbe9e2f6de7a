package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotelworks/hotel-ops-backend/internal/auth"
	"github.com/hotelworks/hotel-ops-backend/internal/billing"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/request"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/response"
)

type Handler struct {
	service billing.Service
}

func NewHandler(service billing.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListBillingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	h.list(c, billing.Filter{
		GuestID:  req.GuestID,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
}

// ListMine returns the calling guest's own billing records.
func (h *Handler) ListMine(c *gin.Context) {
	var req ListBillingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	h.list(c, billing.Filter{
		GuestID:  auth.GetUserID(c),
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
}

func (h *Handler) list(c *gin.Context, filter billing.Filter) {
	billings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BillingResponse, len(billings))
	for i, b := range billings {
		items[i] = NewBillingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBillingResponse(b))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBillingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), billing.CreateRequest{
		GuestID:       body.GuestID,
		ReservationID: body.ReservationID,
		Amount:        body.Amount,
		PaymentMethod: body.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBillingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBillingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Update(c.Request.Context(), uri.ID, billing.UpdateRequest{
		Amount:        body.Amount,
		PaymentMethod: body.PaymentMethod,
		Status:        body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBillingResponse(b))
}

func (h *Handler) Pay(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	// The body is optional; an absent one pays without a transaction id.
	var body PayBillingBody
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Pay(c.Request.Context(), uri.ID, body.PaymentMethod, body.TransactionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBillingResponse(b))
}
