// Package wishlist caches the backend wishlist and exposes the single
// toggle operation the storefront needs. It follows the same
// replace-from-response discipline as the cart: the cache is always a
// verbatim copy of the last backend response.
package wishlist

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the wishlist service dependency has not been provided.
var ErrNotConfigured = errors.New("wishlist service not configured")

// Service defines access to the backend wishlist. Mutating calls return
// the updated wishlist so the container can replace its cache.
type Service interface {
	// Fetch returns the caller's wishlist.
	Fetch(ctx context.Context, token string) (*Wishlist, error)
	// Add saves a product to the wishlist and returns the updated list.
	Add(ctx context.Context, token, productID string) (*Wishlist, error)
	// Remove drops a product from the wishlist and returns the updated list.
	Remove(ctx context.Context, token, productID string) (*Wishlist, error)
}

// Wishlist is the backend-owned collection of saved products.
type Wishlist struct {
	Items     []Entry   `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Entry is a saved product reference with display fields.
type Entry struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	VendorID  string  `json:"vendorId"`
}

// Has reports whether the wishlist contains the given product.
func (w *Wishlist) Has(productID string) bool {
	if w == nil {
		return false
	}
	for _, e := range w.Items {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}
