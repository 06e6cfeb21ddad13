// Package orders exposes order management for the admin console.
package orders

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the orders service dependency has not been provided.
var ErrNotConfigured = errors.New("orders service not configured")

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// Service defines order listing and management for the back office.
type Service interface {
	// List returns a paginated set of orders matching the query.
	List(ctx context.Context, token string, query Query) (ListResult, error)

	// UpdateStatus transitions an order and returns the updated order
	// so the caller can replace its cached row. The backend alone
	// decides which transitions are legal.
	UpdateStatus(ctx context.Context, token, orderID string, status Status) (*Order, error)

	// ResendConfirmation re-sends the order confirmation email. The
	// endpoint returns no payload beyond a status; callers refetch the
	// list to observe any side effects.
	ResendConfirmation(ctx context.Context, token, orderID string) error
}

// Status is the canonical lifecycle state of an order.
type Status string

const (
	// StatusPending indicates the order awaits vendor action.
	StatusPending Status = "pending"
	// StatusProcessing indicates the order is being prepared.
	StatusProcessing Status = "processing"
	// StatusShipped indicates the order has left the vendor.
	StatusShipped Status = "shipped"
	// StatusDelivered indicates the order reached the customer.
	StatusDelivered Status = "delivered"
	// StatusCancelled indicates the order was cancelled.
	StatusCancelled Status = "cancelled"
)

// Query captures filters and pagination arguments for listing orders.
type Query struct {
	Page     int
	Limit    int
	Search   string
	Status   Status
	VendorID string
}

// ListResult is one page of orders.
type ListResult struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Pages  int     `json:"pages"`
}

// Order is the admin-facing order row.
type Order struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	VendorName    string    `json:"vendorName"`
	ItemCount     int       `json:"itemCount"`
	Total         float64   `json:"total"`
	Status        Status    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	PlacedAt      time.Time `json:"placedAt"`
}
