package paymongo

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.paymongo.com/v1"

	serviceFeeRate   = 0.025
	centavosPerPeso  = 100
	EventPaymentPaid = "checkout_session.payment.paid"
)

type Client struct {
	BaseURL       string
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	HTTPClient    *http.Client
}

func NewClient(secretKey, webhookSecret, successURL string) *Client {
	return &Client{
		BaseURL:       defaultBaseURL,
		SecretKey:     secretKey,
		WebhookSecret: webhookSecret,
		SuccessURL:    successURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Metadata rides along the checkout session and comes back on the
// payment webhook, telling us which row to mark paid.
type Metadata struct {
	Type string `json:"type"` // "order" | "reservation"
	ID   string `json:"id"`
}

// ServiceFee is the gateway surcharge in centavos for an amount given
// in whole pesos. Half-centavo fees round to even.
func ServiceFee(amount int64) int64 {
	return int64(math.RoundToEven(float64(amount*centavosPerPeso) * serviceFeeRate))
}

type lineItem struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type checkoutAttributes struct {
	PaymentMethodTypes []string   `json:"payment_method_types"`
	LineItems          []lineItem `json:"line_items"`
	Description        string     `json:"description"`
	SendEmailReceipt   bool       `json:"send_email_receipt"`
	ShowDescription    bool       `json:"show_description"`
	ShowLineItems      bool       `json:"show_line_items"`
	SuccessURL         string     `json:"success_url"`
	Metadata           Metadata   `json:"metadata"`
}

type checkoutRequest struct {
	Data struct {
		Attributes checkoutAttributes `json:"attributes"`
	} `json:"data"`
}

type checkoutResponse struct {
	Data struct {
		Attributes struct {
			CheckoutURL string `json:"checkout_url"`
		} `json:"attributes"`
	} `json:"data"`
}

// CreateCheckoutSession opens a gcash checkout for amount whole pesos
// plus the service fee line item, and returns the redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, amount int64, metadata Metadata) (string, error) {
	var req checkoutRequest
	req.Data.Attributes = checkoutAttributes{
		PaymentMethodTypes: []string{"gcash"},
		LineItems: []lineItem{
			{Amount: amount * centavosPerPeso, Currency: "PHP", Name: "Total", Quantity: 1},
			{Amount: ServiceFee(amount), Currency: "PHP", Name: "Small Service Fee", Quantity: 1},
		},
		Description:     "Food Reservation Payment",
		ShowDescription: true,
		ShowLineItems:   true,
		SuccessURL:      c.SuccessURL,
		Metadata:        metadata,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/checkout_sessions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.SecretKey)))

	res, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paymongo returned %d: %s", res.StatusCode, string(resBody))
	}

	var out checkoutResponse
	if err := json.Unmarshal(resBody, &out); err != nil {
		return "", fmt.Errorf("decode checkout session: %w", err)
	}
	if out.Data.Attributes.CheckoutURL == "" {
		return "", fmt.Errorf("paymongo response missing checkout_url")
	}
	return out.Data.Attributes.CheckoutURL, nil
}
