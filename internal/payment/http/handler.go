package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hotelworks/hotel-ops-backend/internal/billing"
	"github.com/hotelworks/hotel-ops-backend/internal/payment"
	"github.com/hotelworks/hotel-ops-backend/internal/pkg/response"
)

type Handler struct {
	gateway        payment.Gateway
	billingService billing.Service
	logger         *zap.Logger
}

func NewHandler(gateway payment.Gateway, billingService billing.Service, logger *zap.Logger) *Handler {
	return &Handler{gateway: gateway, billingService: billingService, logger: logger}
}

// CreateIntent opens a payment intent for an unpaid billing record.
func (h *Handler) CreateIntent(c *gin.Context) {
	var body CreateIntentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.billingService.GetByID(c.Request.Context(), body.BillingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if b.Status == billing.StatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "billing record is already paid"})
		return
	}

	currency := strings.ToLower(body.Currency)
	if currency == "" {
		currency = "usd"
	}

	intent, err := h.gateway.CreateIntent(c.Request.Context(), b.Amount, currency, map[string]string{
		"billing_id": b.ID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, IntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     currency,
	})
}

// Webhook receives provider callbacks. The signature gate is the only
// authentication on this route.
func (h *Handler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable payload"})
		return
	}

	ev, err := h.gateway.VerifyWebhook(payload, c.GetHeader("X-Webhook-Signature"))
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
		response.Error(c, err)
		return
	}

	switch ev.Type {
	case "payment_intent.succeeded":
		method := "online"
		if _, err := h.billingService.Pay(c.Request.Context(), ev.BillingID, &method, &ev.PaymentIntentID); err != nil {
			h.logger.Error("webhook settlement failed",
				zap.String("billing_id", ev.BillingID),
				zap.Error(err))
			response.Error(c, err)
			return
		}
	default:
		h.logger.Info("ignoring webhook event", zap.String("type", ev.Type))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
