// Package profile caches the customer's account profile and address
// book, and issues settings mutations against the backend.
package profile

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the profile service dependency has not been provided.
var ErrNotConfigured = errors.New("profile service not configured")

// MinPasswordLength is the client-side minimum enforced before a
// password change request is issued. A UX convenience only; the backend
// re-validates.
const MinPasswordLength = 8

// Service defines access to the backend account endpoints. Profile and
// address mutations return the updated profile aggregate.
type Service interface {
	// Fetch returns the caller's profile.
	Fetch(ctx context.Context, token string) (*Profile, error)
	// UpdateInfo updates personal details and returns the updated profile.
	UpdateInfo(ctx context.Context, token string, req InfoUpdate) (*Profile, error)
	// SaveAddress creates or replaces an address and returns the updated profile.
	SaveAddress(ctx context.Context, token string, addr Address) (*Profile, error)
	// DeleteAddress removes an address and returns the updated profile.
	DeleteAddress(ctx context.Context, token, addressID string) (*Profile, error)
	// ChangePassword submits a password change; the backend returns a
	// status only, so no aggregate is replaced.
	ChangePassword(ctx context.Context, token string, req PasswordChange) error
}

// Profile is the backend-owned account aggregate.
type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatarUrl"`
	Addresses []Address `json:"addresses"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Address is one saved delivery address.
type Address struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode"`
	Default    bool   `json:"default"`
}

// InfoUpdate carries the editable personal fields.
type InfoUpdate struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// PasswordChange carries a password change request.
type PasswordChange struct {
	Current string `json:"currentPassword"`
	New     string `json:"newPassword"`
}
