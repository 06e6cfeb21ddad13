package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/skh121/merobazaar-web/internal/api"
)

// HTTPService implements Service backed by the backend's catalog REST
// endpoints.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service over the shared API client.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// List returns products matching the query.
func (s *HTTPService) List(ctx context.Context, query Query) (ListResult, error) {
	var payload ListResult
	if err := s.client.Get(ctx, "/products", "", query.values(), &payload); err != nil {
		return ListResult{}, err
	}
	return payload, nil
}

// Get returns a single product by id.
func (s *HTTPService) Get(ctx context.Context, productID string) (*Product, error) {
	endpoint := path.Join("/products", url.PathEscape(productID))
	var payload Product
	if err := s.client.Get(ctx, endpoint, "", nil, &payload); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &payload, nil
}

// Categories returns the known category names.
func (s *HTTPService) Categories(ctx context.Context) ([]string, error) {
	var payload struct {
		Categories []string `json:"categories"`
	}
	if err := s.client.Get(ctx, "/products/categories", "", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Categories, nil
}

func (q Query) values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.MinPrice > 0 {
		values.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		values.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if q.MinRating > 0 {
		values.Set("rating", strconv.FormatFloat(q.MinRating, 'f', -1, 64))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	return values
}
