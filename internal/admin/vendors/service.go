// Package vendors exposes vendor approval and management for the admin
// console.
package vendors

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the vendors service dependency has not been provided.
var ErrNotConfigured = errors.New("vendors service not configured")

// ErrVendorNotFound is returned when a vendor does not exist.
var ErrVendorNotFound = errors.New("vendor not found")

// Approval is the admin-controlled state of a vendor application.
type Approval string

const (
	// ApprovalPending indicates a new application awaiting review.
	ApprovalPending Approval = "pending"
	// ApprovalApproved indicates the vendor may sell.
	ApprovalApproved Approval = "approved"
	// ApprovalRejected indicates the application was declined.
	ApprovalRejected Approval = "rejected"
)

// Service defines vendor listing and approval for the back office.
type Service interface {
	// List returns a paginated set of vendors matching the query.
	List(ctx context.Context, token string, query Query) (ListResult, error)

	// SetApproval approves or rejects a vendor and returns the updated
	// vendor row.
	SetApproval(ctx context.Context, token, vendorID string, approval Approval, reason string) (*Vendor, error)
}

// Query captures filters and pagination arguments for listing vendors.
type Query struct {
	Page     int
	Limit    int
	Search   string
	Approval Approval
}

// ListResult is one page of vendors.
type ListResult struct {
	Vendors []Vendor `json:"vendors"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	Pages   int      `json:"pages"`
}

// Vendor is the admin-facing vendor row.
type Vendor struct {
	ID           string    `json:"id"`
	StoreName    string    `json:"storeName"`
	OwnerName    string    `json:"ownerName"`
	Email        string    `json:"email"`
	Approval     Approval  `json:"approval"`
	ProductCount int       `json:"productCount"`
	AppliedAt    time.Time `json:"appliedAt"`
}
