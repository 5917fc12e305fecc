package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com"

// ErrSecretKeyMissing is returned when no Stripe credential is configured.
var ErrSecretKeyMissing = errors.New("stripe secret key is not configured")

// Client is the subset of the Stripe API this application uses: customer
// lookup/creation and hosted checkout sessions.
type Client interface {
	FindOrCreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateCheckoutSession(ctx context.Context, params SessionParams) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

// Config holds Stripe client settings.
type Config struct {
	SecretKey string
	BaseURL   string // defaults to the live API; overridable for tests
}

// HTTPClient is an HTTP implementation of Client against the Stripe REST API.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

// NewClient creates a new Stripe API client.
func NewClient(cfg Config) *HTTPClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   baseURL,
		secretKey: cfg.SecretKey,
	}
}

// LineItemParams describes one checkout line item to be created inline.
type LineItemParams struct {
	Name        string
	Description string
	ImageURL    string
	UnitAmount  int64 // minor currency units
	Quantity    int
	ProductID   string // carried in product metadata for order materialization
}

// SessionParams describes a hosted checkout session to create.
type SessionParams struct {
	CustomerID     string
	Currency       string
	SuccessURL     string
	CancelURL      string
	AllowedCountry string // single-country shipping restriction
	Metadata       map[string]string
	LineItems      []LineItemParams
}

// Address is a customer shipping/billing address.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// CustomerDetails carries the buyer contact information attached to a session.
type CustomerDetails struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Address *Address `json:"address"`
}

// Product is an expanded product object on a retrieved line item.
type Product struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata"`
}

// Price is the price object of a retrieved line item.
type Price struct {
	UnitAmount int64    `json:"unit_amount"`
	Product    *Product `json:"product"`
}

// LineItem is a retrieved checkout session line item.
type LineItem struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	AmountTotal int64  `json:"amount_total"`
	Price       *Price `json:"price"`
}

// LineItemList wraps the Stripe list envelope for line items.
type LineItemList struct {
	Data []LineItem `json:"data"`
}

// ShippingCost is the shipping portion of a session total.
type ShippingCost struct {
	AmountTotal int64 `json:"amount_total"`
}

// CheckoutSession is a hosted payment session.
type CheckoutSession struct {
	ID              string            `json:"id"`
	URL             string            `json:"url"`
	PaymentStatus   string            `json:"payment_status"`
	AmountTotal     int64             `json:"amount_total"`
	Currency        string            `json:"currency"`
	Metadata        map[string]string `json:"metadata"`
	CustomerDetails *CustomerDetails  `json:"customer_details"`
	ShippingCost    *ShippingCost     `json:"shipping_cost"`
	LineItems       *LineItemList     `json:"line_items"`
}

type customerList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// FindOrCreateCustomer looks a customer up by email and creates one if none exists.
func (c *HTTPClient) FindOrCreateCustomer(ctx context.Context, email, name string) (string, error) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("limit", "1")

	var list customerList
	if err := c.do(ctx, http.MethodGet, "/v1/customers?"+query.Encode(), nil, &list); err != nil {
		return "", fmt.Errorf("failed to look up customer by email: %w", err)
	}
	if len(list.Data) > 0 {
		return list.Data[0].ID, nil
	}

	form := url.Values{}
	form.Set("email", email)
	if name != "" {
		form.Set("name", name)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/customers", form, &created); err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}
	return created.ID, nil
}

// CreateCheckoutSession creates a hosted checkout session configured for card
// payment and single-country shipping.
func (c *HTTPClient) CreateCheckoutSession(ctx context.Context, params SessionParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	if params.CustomerID != "" {
		form.Set("customer", params.CustomerID)
	}
	if params.AllowedCountry != "" {
		form.Set("shipping_address_collection[allowed_countries][0]", params.AllowedCountry)
	}
	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}
	for i, item := range params.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
		form.Set(prefix+"[price_data][currency]", params.Currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.Description != "" {
			form.Set(prefix+"[price_data][product_data][description]", item.Description)
		}
		if item.ImageURL != "" {
			form.Set(prefix+"[price_data][product_data][images][0]", item.ImageURL)
		}
		form.Set(prefix+"[price_data][product_data][metadata][productId]", item.ProductID)
	}

	var session CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &session, nil
}

// RetrieveSession retrieves a checkout session, expanding line items (with
// their products) and customer details.
func (c *HTTPClient) RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	query := url.Values{}
	query.Add("expand[]", "line_items.data.price.product")
	query.Add("expand[]", "customer_details")

	var session CheckoutSession
	path := "/v1/checkout/sessions/" + url.PathEscape(sessionID) + "?" + query.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &session); err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}
	return &session, nil
}

// do executes a form-encoded Stripe API call and decodes the JSON response.
func (c *HTTPClient) do(ctx context.Context, method, path string, form url.Values, out interface{}) error {
	if c.secretKey == "" {
		return ErrSecretKeyMissing
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build stripe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read stripe response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("stripe error %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("stripe error %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode stripe response: %w", err)
		}
	}
	return nil
}
