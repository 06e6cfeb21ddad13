package orders

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/skh121/merobazaar-web/internal/api"
)

// HTTPService implements Service backed by the backend's admin order
// endpoints.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service over the shared API client.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// List returns a paginated set of orders matching the query.
func (s *HTTPService) List(ctx context.Context, token string, query Query) (ListResult, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.Status != "" {
		values.Set("status", string(query.Status))
	}
	if query.VendorID != "" {
		values.Set("vendorId", query.VendorID)
	}

	var payload ListResult
	if err := s.client.Get(ctx, "/admin/orders", token, values, &payload); err != nil {
		return ListResult{}, err
	}
	return payload, nil
}

// UpdateStatus transitions an order and returns the updated order.
func (s *HTTPService) UpdateStatus(ctx context.Context, token, orderID string, status Status) (*Order, error) {
	endpoint := path.Join("/admin/orders", url.PathEscape(orderID), "status")
	body := map[string]string{"status": string(status)}

	var payload Order
	if err := s.client.Patch(ctx, endpoint, token, body, &payload); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &payload, nil
}

// ResendConfirmation re-sends the order confirmation email.
func (s *HTTPService) ResendConfirmation(ctx context.Context, token, orderID string) error {
	endpoint := path.Join("/admin/orders", url.PathEscape(orderID), "resend-confirmation")
	return s.client.Post(ctx, endpoint, token, nil, nil)
}
