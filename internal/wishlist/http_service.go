package wishlist

import (
	"context"
	"net/url"
	"path"

	"github.com/skh121/merobazaar-web/internal/api"
)

// HTTPService implements Service backed by the backend's wishlist REST
// endpoints.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service over the shared API client.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Fetch returns the caller's wishlist.
func (s *HTTPService) Fetch(ctx context.Context, token string) (*Wishlist, error) {
	var payload Wishlist
	if err := s.client.Get(ctx, "/wishlist", token, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Add saves a product to the wishlist.
func (s *HTTPService) Add(ctx context.Context, token, productID string) (*Wishlist, error) {
	body := map[string]string{"productId": productID}
	var payload Wishlist
	if err := s.client.Post(ctx, "/wishlist/items", token, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Remove drops a product from the wishlist.
func (s *HTTPService) Remove(ctx context.Context, token, productID string) (*Wishlist, error) {
	endpoint := path.Join("/wishlist/items", url.PathEscape(productID))
	var payload Wishlist
	if err := s.client.Delete(ctx, endpoint, token, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
