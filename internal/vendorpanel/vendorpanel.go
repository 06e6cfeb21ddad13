// Package vendorpanel backs the vendor self-service screens: store
// settings and the vendor's own product list. The same
// replace-from-response discipline applies: the cached store profile is
// always the backend's last response.
package vendorpanel

import (
	"context"
	"errors"
	"time"

	"github.com/skh121/merobazaar-web/internal/catalog"
)

// ErrNotConfigured indicates the vendor service dependency has not been provided.
var ErrNotConfigured = errors.New("vendorpanel service not configured")

// Service defines access to the backend vendor endpoints.
type Service interface {
	// Store returns the caller's store profile.
	Store(ctx context.Context, token string) (*Store, error)
	// UpdateStore updates store settings and returns the updated profile.
	UpdateStore(ctx context.Context, token string, req StoreUpdate) (*Store, error)
	// Products returns a page of the vendor's own products.
	Products(ctx context.Context, token string, page, limit int) (catalog.ListResult, error)
}

// Store is the vendor's backend-owned store profile.
type Store struct {
	ID string `json:"id"`
	// Name is the public store name.
	Name string `json:"name"`
	// Description is vendor-authored markdown, sanitized at render time.
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	LogoURL      string `json:"logoUrl"`
	// Approval reflects the admin approval state: pending, approved, rejected.
	Approval  string    `json:"approval"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StoreUpdate carries the editable store settings.
type StoreUpdate struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}
