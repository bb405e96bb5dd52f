// Package razorpay implements the payment gateway port against the Razorpay
// Orders API. Amounts cross the wire in paise, which is exactly how Money
// carries them.
package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"purelife/internal/core/domain/model/kernel"
	"purelife/internal/core/ports"
	"purelife/internal/pkg/errs"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// Client talks to the Razorpay Orders API and verifies checkout signatures.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Razorpay client. Both credentials are required up front:
// a missing key secret would otherwise only surface on the first verification,
// after a customer has already paid.
func NewClient(keyID string, keySecret string, opts ...Option) (*Client, error) {
	if keyID == "" {
		return nil, errs.NewValueIsRequiredError("razorpay key id")
	}
	if keySecret == "" {
		return nil, errs.NewValueIsRequiredError("razorpay key secret")
	}

	client := &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateIntent opens a Razorpay order for the amount and returns the gateway
// order id the client-side checkout needs.
func (c *Client) CreateIntent(
	ctx context.Context,
	amount kernel.Money,
	receipt string,
	notes map[string]string,
) (ports.PaymentIntent, error) {
	if err := amount.Validate(); err != nil {
		return ports.PaymentIntent{}, err
	}

	body, err := json.Marshal(createOrderRequest{
		Amount:   amount.Amount(),
		Currency: amount.Currency(),
		Receipt:  receipt,
		Notes:    notes,
	})
	if err != nil {
		return ports.PaymentIntent{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return ports.PaymentIntent{}, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.PaymentIntent{}, fmt.Errorf("razorpay order create: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ports.PaymentIntent{}, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if unmarshalErr := json.Unmarshal(respBody, &apiErr); unmarshalErr == nil && apiErr.Error.Description != "" {
			return ports.PaymentIntent{}, fmt.Errorf("razorpay order create: %s (%s)",
				apiErr.Error.Description, apiErr.Error.Code)
		}
		return ports.PaymentIntent{}, fmt.Errorf("razorpay order create: unexpected status %d", resp.StatusCode)
	}

	var created createOrderResponse
	if err = json.Unmarshal(respBody, &created); err != nil {
		return ports.PaymentIntent{}, err
	}
	if created.ID == "" {
		return ports.PaymentIntent{}, fmt.Errorf("razorpay order create: response carries no order id")
	}

	intentAmount, err := kernel.NewMoney(created.Amount, created.Currency)
	if err != nil {
		return ports.PaymentIntent{}, err
	}

	return ports.PaymentIntent{
		GatewayOrderID: created.ID,
		Amount:         intentAmount,
	}, nil
}

// VerifySignature checks the checkout callback signature: hex-encoded
// HMAC-SHA256 of "gatewayOrderId|gatewayPaymentId" under the key secret.
// Comparison is constant time.
func (c *Client) VerifySignature(gatewayOrderID string, gatewayPaymentID string, signature string) bool {
	if gatewayOrderID == "" || gatewayPaymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// KeyID returns the public key identifier the checkout widget is opened with.
func (c *Client) KeyID() string {
	return c.keyID
}
