package vendorpanel

import (
	"context"
	"log"
	"sync"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/notify"
)

const (
	msgLoginRequired = "Please log in to your vendor account."
	msgStoreUpdated  = "Store settings saved."
	msgStoreFailed   = "Could not save your store settings."
)

// Result reports the outcome of a container operation.
type Result struct {
	Success bool
	Message string
}

// Container caches the vendor's store profile.
type Container struct {
	svc   Service
	notes *notify.Center

	mu     sync.Mutex
	cached *Store
}

// NewContainer constructs a Container with an empty cache.
func NewContainer(svc Service, notes *notify.Center) *Container {
	if notes == nil {
		notes = notify.NewCenter()
	}
	return &Container{svc: svc, notes: notes}
}

// Fetch refreshes the cached store profile; stale-but-available on failure.
func (c *Container) Fetch(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if c.svc == nil {
		log.Printf("vendorpanel: fetch skipped: %v", ErrNotConfigured)
		return
	}

	fresh, err := c.svc.Store(ctx, token)
	if err != nil {
		log.Printf("vendorpanel: fetch failed: %v", err)
		return
	}
	c.replace(fresh)
}

// UpdateStore submits the settings form and replaces the cache from the
// backend's response.
func (c *Container) UpdateStore(ctx context.Context, token string, req StoreUpdate) Result {
	if token == "" {
		c.notes.Error(msgLoginRequired)
		return Result{Success: false, Message: msgLoginRequired}
	}
	if c.svc == nil {
		c.notes.Error(msgStoreFailed)
		return Result{Success: false, Message: msgStoreFailed}
	}

	fresh, err := c.svc.UpdateStore(ctx, token, req)
	if err != nil {
		msg := api.UserMessage(err, msgStoreFailed)
		c.notes.Error(msg)
		return Result{Success: false, Message: msg}
	}

	c.replace(fresh)
	c.notes.Success(msgStoreUpdated)
	return Result{Success: true, Message: msgStoreUpdated}
}

// Store returns a snapshot of the cached store profile; nil before the
// first successful fetch.
func (c *Container) Store() *Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached == nil {
		return nil
	}
	snapshot := *c.cached
	return &snapshot
}

// Clear drops the cache, used at logout.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
}

func (c *Container) replace(fresh *Store) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = fresh
}
