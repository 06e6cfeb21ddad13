// Package catalog reads the public product catalog: paginated listing
// with search and filters, and single-product lookup. Catalog reads are
// unauthenticated.
package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// Service defines read access to the product catalog.
type Service interface {
	// List returns products matching the query.
	List(ctx context.Context, query Query) (ListResult, error)
	// Get returns a single product by id.
	Get(ctx context.Context, productID string) (*Product, error)
	// Categories returns the known category names for filter menus.
	Categories(ctx context.Context) ([]string, error)
}

// Query captures listing filters and pagination arguments. Zero values
// are omitted from the request.
type Query struct {
	Page      int
	Limit     int
	Search    string
	Category  string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	Sort      string
}

// ListResult is one page of catalog results.
type ListResult struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
}

// Product is the backend-owned product representation. Description is
// vendor-authored markdown, sanitized before rendering.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	NumReviews  int       `json:"numReviews"`
	Stock       int       `json:"stock"`
	VendorID    string    `json:"vendorId"`
	VendorName  string    `json:"vendorName"`
	CreatedAt   time.Time `json:"createdAt"`
}
