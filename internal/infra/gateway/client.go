package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"linkpay/internal/pkg/config"
	"linkpay/internal/pkg/errs"
)

const maxResponseBytes = 1 << 20 // 1MiB

// Payment is the authoritative payment state fetched back from the gateway.
// ExternalReference carries our session id.
type Payment struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
	Order             struct {
		ID int64 `json:"id"`
	} `json:"order"`
}

func (p *Payment) IsApproved() bool {
	return p.Status == "approved"
}

type PreferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	CurrencyID string  `json:"currency_id"`
	UnitPrice  float64 `json:"unit_price"`
}

type BackURLs struct {
	Success string `json:"success"`
	Pending string `json:"pending"`
	Failure string `json:"failure"`
}

type PreferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	BackURLs          BackURLs         `json:"back_urls"`
	AutoReturn        string           `json:"auto_return"`
	ExternalReference string           `json:"external_reference"`
	NotificationURL   string           `json:"notification_url,omitempty"`
}

type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type OrderPayment struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type MerchantOrder struct {
	ID                int64          `json:"id"`
	ExternalReference string         `json:"external_reference"`
	Payments          []OrderPayment `json:"payments"`
}

// Client is a thin MercadoPago REST wrapper. Requests share the configured
// timeout (the platform default is 5s) through the underlying http.Client.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.APIBaseURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	var p Payment
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error) {
	var pref Preference
	if err := c.do(ctx, http.MethodPost, "/checkout/preferences", req, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

// SearchPaymentsByReference backs the polling channel: the session id travels
// as external_reference, so this recovers the payment state when no webhook
// has landed yet.
func (c *Client) SearchPaymentsByReference(ctx context.Context, externalReference string) ([]Payment, error) {
	var res struct {
		Results []Payment `json:"results"`
	}
	path := "/v1/payments/search?sort=date_created&criteria=desc&external_reference=" + url.QueryEscape(externalReference)
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res.Results, nil
}

func (c *Client) GetMerchantOrder(ctx context.Context, orderID string) (*MerchantOrder, error) {
	var order MerchantOrder
	if err := c.do(ctx, http.MethodGet, "/merchant_orders/"+orderID, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode gateway request")
		}
		reqBody = strings.NewReader(string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "gateway request failed"), errs.ErrGatewayFailure)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to read gateway response"), errs.ErrGatewayFailure)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(
			errs.Newf("gateway returned %d for %s %s: %s", resp.StatusCode, method, path, truncate(data, 256)),
			errs.ErrGatewayFailure,
		)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errs.Mark(errs.Wrap(err, "failed to decode gateway response"), errs.ErrGatewayFailure)
		}
	}
	return nil
}

func truncate(data []byte, limit int) string {
	if len(data) <= limit {
		return string(data)
	}
	return fmt.Sprintf("%s... (%d bytes)", data[:limit], len(data))
}
