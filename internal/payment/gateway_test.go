package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestOfflineGatewayCreateIntent(t *testing.T) {
	g := NewOfflineGateway("secret")

	intent, err := g.CreateIntent(context.Background(), 99.5, "usd", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, intent.ID)
	assert.Contains(t, intent.ClientSecret, intent.ID)
	assert.Equal(t, 99.5, intent.Amount)
	assert.Equal(t, "usd", intent.Currency)

	_, err = g.CreateIntent(context.Background(), 0, "usd", nil)
	assert.Error(t, err)
}

func TestOfflineGatewayVerifyWebhook(t *testing.T) {
	g := NewOfflineGateway("secret")
	payload := []byte(`{"type":"payment_intent.succeeded","payment_intent_id":"demo_1","billing_id":"bill-1"}`)

	t.Run("valid signature", func(t *testing.T) {
		ev, err := g.VerifyWebhook(payload, sign("secret", payload))
		require.NoError(t, err)
		assert.Equal(t, "payment_intent.succeeded", ev.Type)
		assert.Equal(t, "demo_1", ev.PaymentIntentID)
		assert.Equal(t, "bill-1", ev.BillingID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := g.VerifyWebhook(payload, sign("other", payload))
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("tampered payload", func(t *testing.T) {
		sig := sign("secret", payload)
		tampered := append([]byte{}, payload...)
		tampered[len(tampered)-2] = '2'
		_, err := g.VerifyWebhook(tampered, sig)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("garbage signature", func(t *testing.T) {
		_, err := g.VerifyWebhook(payload, "not-hex")
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		bare := NewOfflineGateway("")
		_, err := bare.VerifyWebhook(payload, sign("secret", payload))
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
