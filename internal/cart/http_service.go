package cart

import (
	"context"
	"net/url"
	"path"

	"github.com/skh121/merobazaar-web/internal/api"
)

// HTTPService implements Service backed by the backend's cart REST
// endpoints. Every mutating endpoint returns the updated cart aggregate
// as its response body.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service over the shared API client.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Fetch returns the caller's current cart.
func (s *HTTPService) Fetch(ctx context.Context, token string) (*Cart, error) {
	var payload Cart
	if err := s.client.Get(ctx, "/cart", token, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Add puts a product into the cart.
func (s *HTTPService) Add(ctx context.Context, token, productID string, quantity int) (*Cart, error) {
	body := map[string]any{
		"productId": productID,
		"quantity":  quantity,
	}
	var payload Cart
	if err := s.client.Post(ctx, "/cart/items", token, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateQuantity sets a line item's quantity.
func (s *HTTPService) UpdateQuantity(ctx context.Context, token, productID string, quantity int) (*Cart, error) {
	body := map[string]any{"quantity": quantity}
	var payload Cart
	if err := s.client.Put(ctx, itemEndpoint(productID), token, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Remove deletes a line item.
func (s *HTTPService) Remove(ctx context.Context, token, productID string) (*Cart, error) {
	var payload Cart
	if err := s.client.Delete(ctx, itemEndpoint(productID), token, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func itemEndpoint(productID string) string {
	return path.Join("/cart/items", url.PathEscape(productID))
}
