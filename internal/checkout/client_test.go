package checkout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/cart"
	"github.com/skh121/merobazaar-web/internal/checkout"
)

func newCheckoutClient(t *testing.T, handler http.HandlerFunc) *checkout.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)
	return checkout.NewClient(client)
}

func TestPlaceOrderSendsDraftAndIdempotencyKey(t *testing.T) {
	t.Parallel()

	var receivedKey string
	var payload map[string]any
	c := newCheckoutClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		receivedKey = r.Header.Get("Idempotency-Key")

		defer r.Body.Close()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(checkout.Order{ID: "order-1", Status: "pending"})
	})

	order, err := c.PlaceOrder(context.Background(), "tok", checkout.OrderRequest{
		Shipping:      cart.ShippingDraft{FullName: "Sita Sharma", City: "Kathmandu"},
		PaymentMethod: "esewa",
	})
	require.NoError(t, err)
	require.Equal(t, "order-1", order.ID)
	require.NotEmpty(t, receivedKey, "an idempotency key is generated when none is supplied")

	shipping, ok := payload["shipping"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Kathmandu", shipping["city"])
	require.Equal(t, "esewa", payload["paymentMethod"])
}

func TestPlaceOrderKeepsCallerIdempotencyKey(t *testing.T) {
	t.Parallel()

	var receivedKey string
	c := newCheckoutClient(t, func(w http.ResponseWriter, r *http.Request) {
		receivedKey = r.Header.Get("Idempotency-Key")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(checkout.Order{ID: "order-1"})
	})

	_, err := c.PlaceOrder(context.Background(), "tok", checkout.OrderRequest{IdempotencyKey: "retry-7"})
	require.NoError(t, err)
	require.Equal(t, "retry-7", receivedKey)
}

func TestPlaceOrderRequiresToken(t *testing.T) {
	t.Parallel()

	called := false
	c := newCheckoutClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.PlaceOrder(context.Background(), "  ", checkout.OrderRequest{})
	require.ErrorIs(t, err, checkout.ErrMissingToken)
	require.False(t, called)
}

func TestPlaceOrderSurfacesBackendError(t *testing.T) {
	t.Parallel()

	c := newCheckoutClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "cart_changed",
			"message": "Your cart changed while checking out.",
		})
	})

	_, err := c.PlaceOrder(context.Background(), "tok", checkout.OrderRequest{})
	require.Error(t, err)
	require.Equal(t, "Your cart changed while checking out.", api.UserMessage(err, "fallback"))
}

func TestHistory(t *testing.T) {
	t.Parallel()

	c := newCheckoutClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"orders": []checkout.Order{{ID: "order-2"}, {ID: "order-1"}},
		})
	})

	orders, err := c.History(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, "order-2", orders[0].ID)
}
