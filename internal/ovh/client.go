package ovh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	profilePath      = "/api/ovh/account/me"
	refundsPath      = "/api/ovh/account/refunds"
	emailHistoryPath = "/api/ovh/account/email-history"
)

// Client is a thin wrapper over the backend proxy that fronts the OVH
// account API. All operations are read-only GETs returning a JSON envelope.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a proxy client for the given base URL.
// An empty token skips the Authorization header (local proxies without auth).
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// envelope is the wire format shared by all proxy responses.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// APIError is a non-success envelope returned by the proxy.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream returned status %q", e.Status)
}

// RawCurrency mirrors the currency block of the profile payload.
type RawCurrency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// RawProfile mirrors the profile payload. Descriptive fields the dashboard
// does not surface (name, address, phone) are decoded and ignored.
type RawProfile struct {
	Handle       string      `json:"handle"`
	CustomerCode string      `json:"customerCode"`
	Email        string      `json:"email"`
	State        string      `json:"state"`
	KYCValidated bool        `json:"kycValidated"`
	Currency     RawCurrency `json:"currency"`
	FirstName    string      `json:"firstname,omitempty"`
	Name         string      `json:"name,omitempty"`
	Address      string      `json:"address,omitempty"`
	Phone        string      `json:"phone,omitempty"`
}

// RawAmount mirrors the amount block of a refund payload item.
type RawAmount struct {
	CurrencyCode string  `json:"currencyCode"`
	Text         string  `json:"displayText"`
	Value        float64 `json:"numericValue"`
}

// RawRefund mirrors one refund payload item.
type RawRefund struct {
	RefundID    string    `json:"refundId"`
	Date        string    `json:"date"`
	OrderID     int64     `json:"orderId"`
	Amount      RawAmount `json:"amount"`
	DocumentURL string    `json:"documentUrl,omitempty"`
}

// RawEmail mirrors one email-history payload item.
type RawEmail struct {
	ID      int64  `json:"id"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Body    string `json:"body"`
}

// GetProfile fetches the account profile payload.
func (c *Client) GetProfile(ctx context.Context) (*RawProfile, error) {
	data, err := c.get(ctx, profilePath)
	if err != nil {
		return nil, err
	}
	var raw RawProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("GetProfile: decode payload: %w", err)
	}
	return &raw, nil
}

// GetRefunds fetches the refund ledger (latest N, upstream-enforced).
func (c *Client) GetRefunds(ctx context.Context) ([]RawRefund, error) {
	data, err := c.get(ctx, refundsPath)
	if err != nil {
		return nil, err
	}
	var raws []RawRefund
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("GetRefunds: decode payload: %w", err)
	}
	return raws, nil
}

// GetEmailHistory fetches the notification email history (latest N).
func (c *Client) GetEmailHistory(ctx context.Context) ([]RawEmail, error) {
	data, err := c.get(ctx, emailHistoryPath)
	if err != nil {
		return nil, err
	}
	var raws []RawEmail
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("GetEmailHistory: decode payload: %w", err)
	}
	return raws, nil
}

// get issues an authenticated GET and unwraps the response envelope.
func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		// The proxy always wraps responses; a non-JSON body means the
		// request never reached it (gateway error pages and the like).
		return nil, fmt.Errorf("decode envelope %s (HTTP %d): %w", path, resp.StatusCode, err)
	}

	if env.Status != "success" {
		return nil, &APIError{Status: env.Status, Message: env.Message}
	}
	return env.Data, nil
}
