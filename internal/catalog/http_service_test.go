package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/catalog"
)

func newCatalogService(t *testing.T, handler http.HandlerFunc) *catalog.HTTPService {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL, ts.Client())
	require.NoError(t, err)
	return catalog.NewHTTPService(client)
}

func TestListMapsFiltersToQueryParameters(t *testing.T) {
	t.Parallel()

	var received map[string][]string
	svc := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		received = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(catalog.ListResult{
			Items: []catalog.Product{{ID: "p1", Name: "Dhaka Topi"}},
			Total: 1, Page: 2, Pages: 5,
		})
	})

	result, err := svc.List(context.Background(), catalog.Query{
		Page:      2,
		Limit:     12,
		Search:    "dhaka",
		Category:  "clothing",
		MinPrice:  100,
		MaxPrice:  2500,
		MinRating: 4,
		Sort:      "price_asc",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"2"}, received["page"])
	require.Equal(t, []string{"12"}, received["limit"])
	require.Equal(t, []string{"dhaka"}, received["search"])
	require.Equal(t, []string{"clothing"}, received["category"])
	require.Equal(t, []string{"100"}, received["minPrice"])
	require.Equal(t, []string{"2500"}, received["maxPrice"])
	require.Equal(t, []string{"4"}, received["rating"])
	require.Equal(t, []string{"price_asc"}, received["sort"])
	require.Len(t, result.Items, 1)
	require.Equal(t, 5, result.Pages)
}

func TestListOmitsZeroFilters(t *testing.T) {
	t.Parallel()

	var received string
	svc := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		received = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(catalog.ListResult{})
	})

	_, err := svc.List(context.Background(), catalog.Query{})
	require.NoError(t, err)
	require.Empty(t, received)
}

func TestGetMapsNotFound(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestCategories(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]string{
			"categories": {"clothing", "handicraft", "spices"},
		})
	})

	got, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"clothing", "handicraft", "spices"}, got)
}
