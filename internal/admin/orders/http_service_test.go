package orders_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skh121/merobazaar-web/internal/admin/orders"
	"github.com/skh121/merobazaar-web/internal/api"
)

func newService(t *testing.T, handler http.HandlerFunc) *orders.HTTPService {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)
	return orders.NewHTTPService(client)
}

func TestListForwardsFilters(t *testing.T) {
	t.Parallel()

	var received map[string][]string
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/orders", r.URL.Path)
		require.Equal(t, "Bearer admin-tok", r.Header.Get("Authorization"))
		received = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(orders.ListResult{
			Orders: []orders.Order{{ID: "o1", Status: orders.StatusPending}},
			Total:  1, Page: 1, Pages: 1,
		})
	})

	result, err := svc.List(context.Background(), "admin-tok", orders.Query{
		Page:   1,
		Limit:  20,
		Search: "sharma",
		Status: orders.StatusPending,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"pending"}, received["status"])
	require.Equal(t, []string{"sharma"}, received["search"])
	require.Len(t, result.Orders, 1)
}

func TestUpdateStatusReturnsUpdatedOrder(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/orders/o1/status", r.URL.Path)
		require.Equal(t, http.MethodPatch, r.Method)

		var body map[string]string
		defer r.Body.Close()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "shipped", body["status"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(orders.Order{ID: "o1", Status: orders.StatusShipped})
	})

	updated, err := svc.UpdateStatus(context.Background(), "admin-tok", "o1", orders.StatusShipped)
	require.NoError(t, err)
	require.Equal(t, orders.StatusShipped, updated.Status)
}

func TestUpdateStatusMapsNotFound(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := svc.UpdateStatus(context.Background(), "admin-tok", "missing", orders.StatusShipped)
	require.ErrorIs(t, err, orders.ErrOrderNotFound)
}

func TestResendConfirmationToleratesEmptyBody(t *testing.T) {
	t.Parallel()

	var method, pathSeen string
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		pathSeen = r.URL.Path
		w.WriteHeader(http.StatusAccepted)
	})

	require.NoError(t, svc.ResendConfirmation(context.Background(), "admin-tok", "o1"))
	require.Equal(t, http.MethodPost, method)
	require.Equal(t, "/admin/orders/o1/resend-confirmation", pathSeen)
}
