package customers

import (
	"context"
	"net/url"
	"path"
	"strconv"

	"github.com/skh121/merobazaar-web/internal/api"
)

// HTTPService implements Service backed by the backend's admin customer
// endpoints.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service over the shared API client.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// List returns a paginated set of customers matching the query.
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

	var payload ListResult
	if err := s.client.Get(ctx, "/admin/customers", token, values, &payload); err != nil {
		return ListResult{}, err
	}
	return payload, nil
}

// SetActive activates or deactivates an account.
func (s *HTTPService) SetActive(ctx context.Context, token, customerID string, active bool) (*Customer, error) {
	endpoint := path.Join("/admin/customers", url.PathEscape(customerID), "active")
	body := map[string]bool{"active": active}

	var payload Customer
	if err := s.client.Patch(ctx, endpoint, token, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
