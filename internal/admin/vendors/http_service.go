package vendors

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/skh121/merobazaar-web/internal/api"
)

// HTTPService implements Service backed by the backend's admin vendor
// endpoints.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service over the shared API client.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// List returns a paginated set of vendors matching the query.
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
	if query.Approval != "" {
		values.Set("approval", string(query.Approval))
	}

	var payload ListResult
	if err := s.client.Get(ctx, "/admin/vendors", token, values, &payload); err != nil {
		return ListResult{}, err
	}
	return payload, nil
}

// SetApproval approves or rejects a vendor application.
func (s *HTTPService) SetApproval(ctx context.Context, token, vendorID string, approval Approval, reason string) (*Vendor, error) {
	endpoint := path.Join("/admin/vendors", url.PathEscape(vendorID), "approval")
	body := map[string]string{"approval": string(approval)}
	if reason != "" {
		body["reason"] = reason
	}

	var payload Vendor
	if err := s.client.Patch(ctx, endpoint, token, body, &payload); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &payload, nil
}
