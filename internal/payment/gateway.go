package payment

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrNotConfigured    = errors.New("payment gateway not configured")
)

// Intent is a provider-side payment intent handed to the client for confirmation.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       float64
	Currency     string
}

// WebhookEvent is a verified event delivered by the payment provider.
type WebhookEvent struct {
	Type            string `json:"type"`
	PaymentIntentID string `json:"payment_intent_id"`
	BillingID       string `json:"billing_id"`
}

// Gateway abstracts the payment provider. It is constructed once at
// process start and injected into the components that need it.
type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*Intent, error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// OfflineGateway issues demo intents without a real provider and verifies
// webhooks with an HMAC-SHA256 shared secret. It stands in when no
// provider credentials are configured.
type OfflineGateway struct {
	webhookSecret []byte
}

func NewOfflineGateway(webhookSecret string) *OfflineGateway {
	return &OfflineGateway{webhookSecret: []byte(webhookSecret)}
}

func (g *OfflineGateway) CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*Intent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("intent amount must be positive, got %v", amount)
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate intent id: %w", err)
	}
	id := "demo_" + hex.EncodeToString(buf)

	return &Intent{
		ID:           id,
		ClientSecret: id + "_secret",
		Amount:       amount,
		Currency:     currency,
	}, nil
}

func (g *OfflineGateway) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	if len(g.webhookSecret) == 0 {
		return nil, ErrNotConfigured
	}

	mac := hmac.New(sha256.New, g.webhookSecret)
	mac.Write(payload)

	got, err := hex.DecodeString(signature)
	if err != nil || !hmac.Equal(got, mac.Sum(nil)) {
		return nil, ErrInvalidSignature
	}

	var ev WebhookEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("failed to decode webhook payload: %w", err)
	}
	return &ev, nil
}
