package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skh121/merobazaar-web/internal/api"
)

func TestClientRequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := api.NewClient("  ", nil)
	require.Error(t, err)
}

func TestClientAttachesBearerTokenAndQuery(t *testing.T) {
	t.Parallel()

	var receivedAuth, receivedQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedAuth = r.Header.Get("Authorization")
		receivedQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)

	var out map[string]string
	query := url.Values{"page": {"2"}, "search": {"hand woven"}}
	require.NoError(t, client.Get(context.Background(), "/products", "tok-1", query, &out))
	require.Equal(t, "Bearer tok-1", receivedAuth)
	require.Contains(t, receivedQuery, "page=2")
	require.Contains(t, receivedQuery, "search=hand+woven")
	require.Equal(t, "yes", out["ok"])
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	t.Parallel()

	var receivedAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)

	require.NoError(t, client.Get(context.Background(), "/products", "", nil, nil))
	require.Empty(t, receivedAuth)
}

func TestClientDecodesStructuredError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "invalid_password",
			"message": "Password must be at least 8 characters.",
		})
	}))
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)

	err = client.Post(context.Background(), "/profile/password", "tok", map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	require.Equal(t, "invalid_password", apiErr.Code)
	require.Equal(t, "Password must be at least 8 characters.", apiErr.Message)
	require.Equal(t, apiErr.Message, api.UserMessage(err, "generic"))
}

func TestClientFallsBackToRawBodyThenStatusText(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/raw":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream unavailable"))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)

	err = client.Get(context.Background(), "/raw", "", nil, nil)
	require.Error(t, err)
	require.Equal(t, "upstream unavailable", api.UserMessage(err, "generic"))

	err = client.Get(context.Background(), "/empty", "", nil, nil)
	require.Error(t, err)
	require.Equal(t, "generic", api.UserMessage(err, "generic"))
}

func TestUserMessageFallsBackForPlainErrors(t *testing.T) {
	t.Parallel()

	require.Equal(t, "generic", api.UserMessage(errors.New("dial tcp"), "generic"))
}
