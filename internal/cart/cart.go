// Package cart caches the authoritative shopping cart held by the
// backend and drives the client-local checkout session.
//
// The cached cart is only ever a verbatim copy of the last backend
// response: every mutating call replaces it wholesale from the response
// body, never merging or patching field by field. A lost cache is
// always recoverable by refetching.
package cart

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the cart service dependency has not been provided.
var ErrNotConfigured = errors.New("cart service not configured")

// Service defines access to the backend cart aggregate. Every mutating
// call returns the updated cart so callers can replace their cache.
type Service interface {
	// Fetch returns the caller's current cart.
	Fetch(ctx context.Context, token string) (*Cart, error)
	// Add puts a product into the cart and returns the updated cart.
	Add(ctx context.Context, token, productID string, quantity int) (*Cart, error)
	// UpdateQuantity sets a line item's quantity and returns the updated cart.
	UpdateQuantity(ctx context.Context, token, productID string, quantity int) (*Cart, error)
	// Remove deletes a line item and returns the updated cart.
	Remove(ctx context.Context, token, productID string) (*Cart, error)
}

// Cart is the backend-owned aggregate of selected products.
type Cart struct {
	ID        string    `json:"id"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Item is a single cart line: a product reference, a quantity, and the
// unit price snapshotted when the item was added. The backend enforces
// stock limits; the client does not.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	VendorID  string  `json:"vendorId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// ItemCount sums line quantities. A nil cart counts as zero.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Has reports whether the cart contains the given product.
func (c *Cart) Has(productID string) bool {
	if c == nil {
		return false
	}
	for _, item := range c.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
