package profile

import (
	"context"
	"net/url"
	"path"

	"github.com/skh121/merobazaar-web/internal/api"
)

// HTTPService implements Service backed by the backend's account REST
// endpoints.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service over the shared API client.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Fetch returns the caller's profile.
func (s *HTTPService) Fetch(ctx context.Context, token string) (*Profile, error) {
	var payload Profile
	if err := s.client.Get(ctx, "/account/profile", token, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateInfo updates personal details.
func (s *HTTPService) UpdateInfo(ctx context.Context, token string, req InfoUpdate) (*Profile, error) {
	var payload Profile
	if err := s.client.Put(ctx, "/account/profile", token, req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SaveAddress creates a new address when addr.ID is empty, otherwise
// replaces the existing one.
func (s *HTTPService) SaveAddress(ctx context.Context, token string, addr Address) (*Profile, error) {
	var payload Profile
	if addr.ID == "" {
		if err := s.client.Post(ctx, "/account/addresses", token, addr, &payload); err != nil {
			return nil, err
		}
		return &payload, nil
	}
	endpoint := path.Join("/account/addresses", url.PathEscape(addr.ID))
	if err := s.client.Put(ctx, endpoint, token, addr, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DeleteAddress removes an address.
func (s *HTTPService) DeleteAddress(ctx context.Context, token, addressID string) (*Profile, error) {
	endpoint := path.Join("/account/addresses", url.PathEscape(addressID))
	var payload Profile
	if err := s.client.Delete(ctx, endpoint, token, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ChangePassword submits a password change.
func (s *HTTPService) ChangePassword(ctx context.Context, token string, req PasswordChange) error {
	return s.client.Post(ctx, "/account/password", token, req, nil)
}
