// Package customers exposes customer account management for the admin
// console.
package customers

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the customers service dependency has not been provided.
var ErrNotConfigured = errors.New("customers service not configured")

// Service defines customer listing and moderation for the back office.
type Service interface {
	// List returns a paginated set of customers matching the query.
	List(ctx context.Context, token string, query Query) (ListResult, error)

	// SetActive activates or deactivates an account and returns the
	// updated customer row.
	SetActive(ctx context.Context, token, customerID string, active bool) (*Customer, error)
}

// Query captures filters and pagination arguments for listing customers.
type Query struct {
	Page   int
	Limit  int
	Search string
}

// ListResult is one page of customers.
type ListResult struct {
	Customers []Customer `json:"customers"`
	Total     int        `json:"total"`
	Page      int        `json:"page"`
	Pages     int        `json:"pages"`
}

// Customer is the admin-facing account row.
type Customer struct {
	ID         string    `json:"id"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Active     bool      `json:"active"`
	OrderCount int       `json:"orderCount"`
	JoinedAt   time.Time `json:"joinedAt"`
}
