package vendorpanel

import (
	"context"
	"net/url"
	"strconv"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/catalog"
)

// HTTPService implements Service backed by the backend's vendor REST
// endpoints.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service over the shared API client.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Store returns the caller's store profile.
func (s *HTTPService) Store(ctx context.Context, token string) (*Store, error) {
	var payload Store
	if err := s.client.Get(ctx, "/vendor/store", token, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateStore updates store settings.
func (s *HTTPService) UpdateStore(ctx context.Context, token string, req StoreUpdate) (*Store, error) {
	var payload Store
	if err := s.client.Put(ctx, "/vendor/store", token, req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Products returns a page of the vendor's own products.
func (s *HTTPService) Products(ctx context.Context, token string, page, limit int) (catalog.ListResult, error) {
	values := url.Values{}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	var payload catalog.ListResult
	if err := s.client.Get(ctx, "/vendor/products", token, values, &payload); err != nil {
		return catalog.ListResult{}, err
	}
	return payload, nil
}
