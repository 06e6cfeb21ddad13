// Package checkout submits order placement against the backend. Order
// placement is the terminal step of the client-local checkout session:
// on success the caller clears the cart container, returning it to its
// initial state.
package checkout

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/cart"
)

const idempotencyHeader = "Idempotency-Key"

// ErrMissingToken is returned when an order is placed unauthenticated.
var ErrMissingToken = errors.New("checkout: missing token")

// OrderRequest carries the checkout draft submitted to the backend. The
// backend re-prices the cart server-side; the totals sent here are
// display figures only.
type OrderRequest struct {
	Shipping      cart.ShippingDraft `json:"shipping"`
	PaymentMethod string             `json:"paymentMethod"`
	// IdempotencyKey deduplicates retried submissions; one is generated
	// when the caller leaves it empty.
	IdempotencyKey string `json:"-"`
}

// Order mirrors the backend's order representation.
type Order struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	Items         []cart.Item `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Shipping      float64     `json:"shipping"`
	Tax           float64     `json:"tax"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	PlacedAt      time.Time   `json:"placedAt"`
}

// Client issues order placement and order history calls.
type Client struct {
	client *api.Client
}

// NewClient constructs a checkout client over the shared API client.
func NewClient(client *api.Client) *Client {
	return &Client{client: client}
}

// PlaceOrder submits the order and returns the backend's order record.
func (c *Client) PlaceOrder(ctx context.Context, token string, req OrderRequest) (*Order, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	httpReq, err := c.client.NewJSONRequest(ctx, http.MethodPost, "/orders", req, token)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set(idempotencyHeader, ensureIdempotencyKey(req.IdempotencyKey))

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, api.ErrorFromResponse(resp)
	}

	var payload Order
	if err := api.DecodeJSON(resp.Body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// History returns the caller's past orders, newest first.
func (c *Client) History(ctx context.Context, token string) ([]Order, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	var payload struct {
		Orders []Order `json:"orders"`
	}
	if err := c.client.Get(ctx, "/orders", token, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Orders, nil
}

// Get returns one of the caller's orders.
func (c *Client) Get(ctx context.Context, token, orderID string) (*Order, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	endpoint := path.Join("/orders", url.PathEscape(orderID))
	var payload Order
	if err := c.client.Get(ctx, endpoint, token, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func ensureIdempotencyKey(key string) string {
	key = strings.TrimSpace(key)
	if key != "" {
		return key
	}
	return "order-" + uuid.NewString()
}
