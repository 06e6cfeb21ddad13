package cart_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/cart"
)

func newCartService(t *testing.T, handler http.HandlerFunc) *cart.HTTPService {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)
	return cart.NewHTTPService(client)
}

func TestHTTPServiceFetch(t *testing.T) {
	t.Parallel()

	var receivedAuth string
	svc := newCartService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cart", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		receivedAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(cart.Cart{ID: "cart-9", Items: []cart.Item{
			{ProductID: "p1", Quantity: 2, UnitPrice: 300},
		}})
	})

	got, err := svc.Fetch(context.Background(), "test-token")
	require.NoError(t, err)
	require.Equal(t, "Bearer test-token", receivedAuth)
	require.Equal(t, "cart-9", got.ID)
	require.Equal(t, 2, got.ItemCount())
}

func TestHTTPServiceAdd(t *testing.T) {
	t.Parallel()

	var payload map[string]any
	svc := newCartService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cart/items", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		defer r.Body.Close()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(cart.Cart{ID: "cart-9", Items: []cart.Item{
			{ProductID: "p1", Quantity: 3, UnitPrice: 300},
		}})
	})

	got, err := svc.Add(context.Background(), "token", "p1", 3)
	require.NoError(t, err)
	require.Equal(t, "p1", payload["productId"])
	require.EqualValues(t, 3, payload["quantity"])
	require.Equal(t, 3, got.ItemCount())
}

func TestHTTPServiceUpdateQuantityAndRemove(t *testing.T) {
	t.Parallel()

	svc := newCartService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cart/items/p1", r.URL.Path)
		switch r.Method {
		case http.MethodPut, http.MethodDelete:
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(cart.Cart{ID: "cart-9"})
	})

	got, err := svc.UpdateQuantity(context.Background(), "token", "p1", 5)
	require.NoError(t, err)
	require.Equal(t, "cart-9", got.ID)

	got, err = svc.Remove(context.Background(), "token", "p1")
	require.NoError(t, err)
	require.Empty(t, got.Items)
}

func TestHTTPServiceSurfacesBackendError(t *testing.T) {
	t.Parallel()

	svc := newCartService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "out_of_stock",
			"message": "Only 2 left in stock.",
		})
	})

	_, err := svc.Add(context.Background(), "token", "p1", 10)
	require.Error(t, err)
	require.Equal(t, "Only 2 left in stock.", api.UserMessage(err, "fallback"))
}
