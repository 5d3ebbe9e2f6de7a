package http

type CreateIntentBody struct {
	BillingID string `json:"billing_id" binding:"required,uuid"`
	Currency  string `json:"currency" binding:"omitempty,len=3"`
}

type IntentResponse struct {
	IntentID     string  `json:"intent_id"`
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}
