package wishlist

import (
	"context"
	"log"
	"sync"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/notify"
)

const (
	msgLoginRequired = "Please log in to manage your wishlist."
	msgSaved         = "Saved to your wishlist."
	msgRemoved       = "Removed from your wishlist."
	msgToggleFailed  = "Could not update your wishlist."
)

// Result reports the outcome of a container operation.
type Result struct {
	Success bool
	Message string
	// Saved reports whether the product is in the wishlist after the
	// operation settled.
	Saved bool
}

// Container caches the backend wishlist. Instances are dependency
// injected with an explicit lifecycle.
type Container struct {
	svc   Service
	notes *notify.Center

	mu     sync.Mutex
	cached *Wishlist
}

// NewContainer constructs a Container with an empty cache.
func NewContainer(svc Service, notes *notify.Center) *Container {
	if notes == nil {
		notes = notify.NewCenter()
	}
	return &Container{svc: svc, notes: notes}
}

// Fetch refreshes the cache. Without a token it is a no-op; on failure
// the previous cache stays available.
func (c *Container) Fetch(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if c.svc == nil {
		log.Printf("wishlist: fetch skipped: %v", ErrNotConfigured)
		return
	}

	fresh, err := c.svc.Fetch(ctx, token)
	if err != nil {
		log.Printf("wishlist: fetch failed: %v", err)
		return
	}
	c.replace(fresh)
}

// Toggle adds the product when it is absent from the cached wishlist
// and removes it when present. Two successful toggles in sequence
// return membership to its original state.
func (c *Container) Toggle(ctx context.Context, token, productID string) Result {
	if token == "" {
		c.notes.Error(msgLoginRequired)
		return Result{Success: false, Message: msgLoginRequired}
	}
	if c.svc == nil {
		c.notes.Error(msgToggleFailed)
		return Result{Success: false, Message: msgToggleFailed}
	}

	removing := c.Has(productID)

	var (
		fresh *Wishlist
		err   error
	)
	if removing {
		fresh, err = c.svc.Remove(ctx, token, productID)
	} else {
		fresh, err = c.svc.Add(ctx, token, productID)
	}
	if err != nil {
		msg := api.UserMessage(err, msgToggleFailed)
		c.notes.Error(msg)
		return Result{Success: false, Message: msg, Saved: removing}
	}

	c.replace(fresh)
	if removing {
		c.notes.Success(msgRemoved)
		return Result{Success: true, Message: msgRemoved, Saved: false}
	}
	c.notes.Success(msgSaved)
	return Result{Success: true, Message: msgSaved, Saved: true}
}

// Has reports cached membership for the given product.
func (c *Container) Has(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cached.Has(productID)
}

// Entries returns a snapshot of the cached wishlist entries.
func (c *Container) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached == nil {
		return nil
	}
	return append([]Entry(nil), c.cached.Items...)
}

// Clear drops the cache, used at logout.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
}

func (c *Container) replace(fresh *Wishlist) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = fresh
}
