package cart

import (
	"context"
	"log"
	"sync"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/notify"
)

// User-facing messages emitted by container operations.
const (
	msgLoginRequired  = "Please log in to manage your cart."
	msgItemAdded      = "Item added to your cart."
	msgItemUpdated    = "Cart updated."
	msgItemRemoved    = "Item removed from your cart."
	msgAddFailed      = "Could not add the item to your cart."
	msgUpdateFailed   = "Could not update your cart."
	msgRemoveFailed   = "Could not remove the item from your cart."
	msgFetchUnchanged = "Could not refresh your cart."
)

// Result reports the outcome of a container operation so callers can
// react without inspecting errors.
type Result struct {
	Success bool
	Message string
}

// ShippingDraft is the client-local shipping address under edit during
// checkout. It is never authoritative; the backend re-validates it at
// order placement.
type ShippingDraft struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode"`
}

// Session is the client-only checkout state. Step carries no named
// semantics here; screens layer names like "shipping" or "payment" on
// top and are responsible for bounding the value they set.
type Session struct {
	Step          int
	Shipping      ShippingDraft
	PaymentMethod string
}

// Container caches the backend cart and holds the checkout session.
// Instances are dependency-injected and own their lifecycle; there is
// no package-level singleton.
type Container struct {
	svc     Service
	notes   *notify.Center
	pricing Pricing

	mu        sync.Mutex
	cached    *Cart
	itemCount int
	session   Session
	inFlight  bool
}

// NewContainer constructs a Container in its initial state (empty
// cache, step 1, blank draft).
func NewContainer(svc Service, notes *notify.Center, pricing Pricing) *Container {
	if notes == nil {
		notes = notify.NewCenter()
	}
	if pricing == (Pricing{}) {
		pricing = DefaultPricing
	}
	return &Container{
		svc:     svc,
		notes:   notes,
		pricing: pricing,
		session: Session{Step: 1},
	}
}

// FetchCart refreshes the cache from the backend. Without a token it is
// a no-op. On failure the previous cache is left untouched so screens
// keep rendering stale-but-available data; nothing is retried.
func (c *Container) FetchCart(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if c.svc == nil {
		log.Printf("cart: fetch skipped: %v", ErrNotConfigured)
		return
	}

	fresh, err := c.svc.Fetch(ctx, token)
	if err != nil {
		log.Printf("cart: fetch failed: %v", err)
		return
	}
	c.replace(fresh)
}

// AddItem adds a product to the cart. Requires a token: without one no
// network call is attempted and the user is told to log in.
func (c *Container) AddItem(ctx context.Context, token, productID string, quantity int) Result {
	return c.mutate(token, func() (*Cart, error) {
		return c.svc.Add(ctx, token, productID, quantity)
	}, msgItemAdded, msgAddFailed)
}

// UpdateQuantity sets a line item's quantity. Legality of the quantity
// (stock ceilings and the like) is the backend's call alone.
func (c *Container) UpdateQuantity(ctx context.Context, token, productID string, quantity int) Result {
	return c.mutate(token, func() (*Cart, error) {
		return c.svc.UpdateQuantity(ctx, token, productID, quantity)
	}, msgItemUpdated, msgUpdateFailed)
}

// RemoveItem deletes a line item from the cart.
func (c *Container) RemoveItem(ctx context.Context, token, productID string) Result {
	return c.mutate(token, func() (*Cart, error) {
		return c.svc.Remove(ctx, token, productID)
	}, msgItemRemoved, msgRemoveFailed)
}

// mutate runs a cart mutation under the shared failure rules: fail
// closed when unauthenticated, notify on every outcome, replace the
// cache wholesale from the response, and always clear the in-flight
// flag even if the underlying call panics.
func (c *Container) mutate(token string, call func() (*Cart, error), okMsg, failMsg string) Result {
	if token == "" {
		c.notes.Error(msgLoginRequired)
		return Result{Success: false, Message: msgLoginRequired}
	}
	if c.svc == nil {
		c.notes.Error(failMsg)
		return Result{Success: false, Message: failMsg}
	}

	c.setInFlight(true)
	defer c.setInFlight(false)

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

// Totals derives display totals from the cached cart. Pure and
// recomputed on every call; an absent cart yields all-zero totals.
func (c *Container) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ComputeTotals(c.cached, c.pricing)
}

// Cart returns a snapshot of the cached cart; nil when nothing has been
// fetched yet.
func (c *Container) Cart() *Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached == nil {
		return nil
	}
	snapshot := *c.cached
	snapshot.Items = append([]Item(nil), c.cached.Items...)
	return &snapshot
}

// ItemCount returns the cached sum of line quantities.
func (c *Container) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemCount
}

// InFlight reports whether a mutation is currently awaiting the backend.
func (c *Container) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// SetStep records the current checkout step. Any integer is accepted;
// bounding is the caller's responsibility.
func (c *Container) SetStep(step int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Step = step
}

// Step returns the current checkout step.
func (c *Container) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Step
}

// UpdateShippingField mutates one named field of the shipping draft.
// Unknown field names are ignored. No validation happens here; screens
// decide what to enforce before advancing.
func (c *Container) UpdateShippingField(field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch field {
	case "fullName":
		c.session.Shipping.FullName = value
	case "phone":
		c.session.Shipping.Phone = value
	case "address":
		c.session.Shipping.Address = value
	case "city":
		c.session.Shipping.City = value
	case "district":
		c.session.Shipping.District = value
	case "postalCode":
		c.session.Shipping.PostalCode = value
	}
}

// SetPaymentMethod records the selected payment method.
func (c *Container) SetPaymentMethod(method string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.PaymentMethod = method
}

// Session returns a snapshot of the checkout session.
func (c *Container) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// RestoreDraft seeds the shipping draft and payment method, typically
// from the visitor's session cookie after a page load. Step progress is
// deliberately not restorable.
func (c *Container) RestoreDraft(shipping ShippingDraft, paymentMethod string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Shipping = shipping
	c.session.PaymentMethod = paymentMethod
}

// Clear resets the cache, item count, and checkout session to their
// initial values. It performs no network call; clearing the backend
// cart, when needed, is a separate explicit operation.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
	c.itemCount = 0
	c.session = Session{Step: 1}
}

func (c *Container) replace(fresh *Cart) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = fresh
	c.itemCount = fresh.ItemCount()
}

func (c *Container) setInFlight(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = v
}
