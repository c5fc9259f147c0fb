package paymentlink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"stagepass/internal/observability"
	"time"
)

// Client talks to the payment provider's payment-link API. Links are
// created here; settlement of paid links arrives over the webhook.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *observability.Logger
}

// Config contains payment provider credentials.
type Config struct {
	KeyID     string
	KeySecret string
	BaseURL   string
}

// New creates a payment provider client.
func New(config Config, logger *observability.Logger) *Client {
	return &Client{
		baseURL:   config.BaseURL,
		keyID:     config.KeyID,
		keySecret: config.KeySecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// CreateLinkParams describes the payment link to create. Amount is in the
// currency's minor unit.
type CreateLinkParams struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	ReferenceID string `json:"reference_id"`
	CallbackURL string `json:"callback_url,omitempty"`
}

// PaymentLink is the provider's representation of a created link.
type PaymentLink struct {
	ID       string `json:"id"`
	ShortURL string `json:"short_url"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreatePaymentLink creates a hosted payment link with the provider.
func (c *Client) CreatePaymentLink(ctx context.Context, params CreateLinkParams) (PaymentLink, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "reference_id", Value: params.ReferenceID},
		observability.Field{Key: "amount", Value: params.Amount},
	)

	body, err := json.Marshal(params)
	if err != nil {
		return PaymentLink{}, fmt.Errorf("failed to marshal payment link request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_links", bytes.NewReader(body))
	if err != nil {
		return PaymentLink{}, fmt.Errorf("failed to create payment link request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "payment provider request failed", err)
		return PaymentLink{}, fmt.Errorf("payment provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return PaymentLink{}, fmt.Errorf("failed to read payment provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("payment provider returned status %d: %s", resp.StatusCode, string(respBody))
		c.logger.Error(ctx, "payment provider rejected payment link", err)
		return PaymentLink{}, err
	}

	var link PaymentLink
	if err := json.Unmarshal(respBody, &link); err != nil {
		return PaymentLink{}, fmt.Errorf("failed to decode payment provider response: %w", err)
	}

	c.logger.Info(ctx, "payment link created")
	return link, nil
}
