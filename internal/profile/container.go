package profile

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/notify"
)

const (
	msgLoginRequired   = "Please log in to manage your account."
	msgInfoUpdated     = "Profile updated."
	msgInfoFailed      = "Could not update your profile."
	msgAddressSaved    = "Address saved."
	msgAddressDeleted  = "Address removed."
	msgAddressFailed   = "Could not save your address."
	msgPasswordChanged = "Password changed."
	msgPasswordFailed  = "Could not change your password."
	msgPasswordNoMatch = "Passwords do not match."
)

// Result reports the outcome of a container operation.
type Result struct {
	Success bool
	Message string
}

// Container caches the account profile under the replace-from-response
// discipline shared with the cart and wishlist containers.
type Container struct {
	svc   Service
	notes *notify.Center

	mu     sync.Mutex
	cached *Profile
}

// NewContainer constructs a Container with an empty cache.
func NewContainer(svc Service, notes *notify.Center) *Container {
	if notes == nil {
		notes = notify.NewCenter()
	}
	return &Container{svc: svc, notes: notes}
}

// Fetch refreshes the cached profile. Without a token it is a no-op; on
// failure the previous cache stays available.
func (c *Container) Fetch(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if c.svc == nil {
		log.Printf("profile: fetch skipped: %v", ErrNotConfigured)
		return
	}

	fresh, err := c.svc.Fetch(ctx, token)
	if err != nil {
		log.Printf("profile: fetch failed: %v", err)
		return
	}
	c.replace(fresh)
}

// UpdateInfo submits a personal-details change.
func (c *Container) UpdateInfo(ctx context.Context, token string, req InfoUpdate) Result {
	return c.mutate(token, msgInfoFailed, msgInfoUpdated, func() (*Profile, error) {
		return c.svc.UpdateInfo(ctx, token, req)
	})
}

// SaveAddress creates or replaces an address.
func (c *Container) SaveAddress(ctx context.Context, token string, addr Address) Result {
	return c.mutate(token, msgAddressFailed, msgAddressSaved, func() (*Profile, error) {
		return c.svc.SaveAddress(ctx, token, addr)
	})
}

// DeleteAddress removes an address.
func (c *Container) DeleteAddress(ctx context.Context, token, addressID string) Result {
	return c.mutate(token, msgAddressFailed, msgAddressDeleted, func() (*Profile, error) {
		return c.svc.DeleteAddress(ctx, token, addressID)
	})
}

// ChangePassword validates the confirmation locally, then submits the
// change. The local checks are UX conveniences; the backend remains the
// security boundary and re-validates everything.
func (c *Container) ChangePassword(ctx context.Context, token, current, newPassword, confirm string) Result {
	if token == "" {
		c.notes.Error(msgLoginRequired)
		return Result{Success: false, Message: msgLoginRequired}
	}
	if newPassword != confirm {
		c.notes.Error(msgPasswordNoMatch)
		return Result{Success: false, Message: msgPasswordNoMatch}
	}
	if len(newPassword) < MinPasswordLength {
		msg := fmt.Sprintf("Password must be at least %d characters.", MinPasswordLength)
		c.notes.Error(msg)
		return Result{Success: false, Message: msg}
	}
	if c.svc == nil {
		c.notes.Error(msgPasswordFailed)
		return Result{Success: false, Message: msgPasswordFailed}
	}

	if err := c.svc.ChangePassword(ctx, token, PasswordChange{Current: current, New: newPassword}); err != nil {
		msg := api.UserMessage(err, msgPasswordFailed)
		c.notes.Error(msg)
		return Result{Success: false, Message: msg}
	}
	c.notes.Success(msgPasswordChanged)
	return Result{Success: true, Message: msgPasswordChanged}
}

// Profile returns a snapshot of the cached profile; nil before the
// first successful fetch.
func (c *Container) Profile() *Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached == nil {
		return nil
	}
	snapshot := *c.cached
	snapshot.Addresses = append([]Address(nil), c.cached.Addresses...)
	return &snapshot
}

// Clear drops the cache, used at logout.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
}

func (c *Container) mutate(token, failMsg, okMsg string, call func() (*Profile, error)) Result {
	if token == "" {
		c.notes.Error(msgLoginRequired)
		return Result{Success: false, Message: msgLoginRequired}
	}
	if c.svc == nil {
		c.notes.Error(failMsg)
		return Result{Success: false, Message: failMsg}
	}

	fresh, err := call()
	if err != nil {
		msg := api.UserMessage(err, failMsg)
		c.notes.Error(msg)
		return Result{Success: false, Message: msg}
	}

	c.replace(fresh)
	c.notes.Success(okMsg)
	return Result{Success: true, Message: okMsg}
}

func (c *Container) replace(fresh *Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = fresh
}
