package processor

import (
	"encoding/json"
	"fmt"
	"log"
	"speakup/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client talks to the card processor's hosted payment-intent API.
type Client struct {
	http      *resty.Client
	secretKey string
}

// NewClient builds a client from the loaded configuration.
func NewClient() *Client {
	return &Client{
		http:      resty.New().SetBaseURL(config.AppConfig.PaymentApiURL),
		secretKey: config.AppConfig.PaymentSecretKey,
	}
}

// CreateIntent registers a payment intent for the given amount in cents and
// returns the client secret the frontend confirms the card with.
func (c *Client) CreateIntent(amountCents int64) (string, error) {
	resp, err := c.http.R().
		SetAuthToken(c.secretKey).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetFormData(map[string]string{
			"amount":                 fmt.Sprintf("%d", amountCents),
			"currency":               "usd",
			"payment_method_types[]": "card",
		}).
		Post("/payment_intents")
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Payment intent request failed: %s", resp.String())
		return "", fmt.Errorf("payment processor returned status %d", resp.StatusCode())
	}

	var intentResp struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.Unmarshal(resp.Body(), &intentResp); err != nil {
		log.Printf("Failed to parse intent response: %v", err)
		return "", err
	}
	if intentResp.ClientSecret == "" {
		return "", fmt.Errorf("payment processor returned no client secret")
	}

	return intentResp.ClientSecret, nil
}
