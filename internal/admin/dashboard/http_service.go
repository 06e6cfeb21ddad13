package dashboard

import (
	"context"

	"github.com/skh121/merobazaar-web/internal/api"
)

// HTTPService implements Service backed by the backend's admin
// analytics endpoint.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service over the shared API client.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Overview returns KPI cards and the recent activity feed.
func (s *HTTPService) Overview(ctx context.Context, token string) (Overview, error) {
	var payload Overview
	if err := s.client.Get(ctx, "/admin/dashboard", token, nil, &payload); err != nil {
		return Overview{}, err
	}
	return payload, nil
}
