// Package webserver assembles the customer-facing storefront: catalog
// browsing, cart and checkout, wishlist, account settings, and the
// vendor self-service panel. All business state lives in the backend
// API; this server renders it and holds only the session cookie plus
// per-request container caches.
package webserver

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/skh121/merobazaar-web/internal/auth"
	"github.com/skh121/merobazaar-web/internal/cart"
	"github.com/skh121/merobazaar-web/internal/catalog"
	"github.com/skh121/merobazaar-web/internal/checkout"
	"github.com/skh121/merobazaar-web/internal/content"
	"github.com/skh121/merobazaar-web/internal/middleware"
	"github.com/skh121/merobazaar-web/internal/notify"
	"github.com/skh121/merobazaar-web/internal/profile"
	"github.com/skh121/merobazaar-web/internal/session"
	"github.com/skh121/merobazaar-web/internal/vendorpanel"
	"github.com/skh121/merobazaar-web/internal/wishlist"
)

//go:embed assets/*
var assetsFS embed.FS

// Config wires the storefront's dependencies.
type Config struct {
	SessionManager *session.Manager
	Catalog        catalog.Service
	Cart           cart.Service
	Wishlist       wishlist.Service
	Profile        profile.Service
	Vendor         vendorpanel.Service
	Auth           *auth.Client
	Checkout       *checkout.Client
	Content        *content.Loader
	Pricing        cart.Pricing
}

// Handlers carries the shared dependencies behind every route. State
// containers are built per request; nothing here is request-scoped.
type Handlers struct {
	cfg Config
}

// New builds the storefront router.
func New(cfg Config) (http.Handler, error) {
	if cfg.SessionManager == nil {
		return nil, errors.New("webserver: session manager is required")
	}
	if cfg.Catalog == nil {
		return nil, errors.New("webserver: catalog service is required")
	}
	if cfg.Content == nil {
		cfg.Content = content.NewLoader()
	}
	if cfg.Pricing == (cart.Pricing{}) {
		cfg.Pricing = cart.DefaultPricing
	}
	h := &Handlers{cfg: cfg}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.Session(cfg.SessionManager))
	r.Use(middleware.HTMX())

	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return nil, err
	}
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assets))))

	r.With(middleware.RequireHTMX()).Get("/fragments/cart-count", h.handleCartCountFragment)

	r.Get("/", h.handleHome)
	r.Get("/products", h.handleProducts)
	r.Get("/products/{productID}", h.handleProduct)
	r.Get("/pages/{slug}", h.handleContentPage)

	r.Get("/login", h.handleLoginForm)
	r.Post("/login", h.handleLogin)
	r.Get("/register", h.handleRegisterForm)
	r.Post("/register", h.handleRegister)
	r.Post("/logout", h.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin("/login"))
		r.Use(middleware.NoStore())

		r.Get("/cart", h.handleCart)
		r.Post("/cart/items", h.handleCartAdd)
		r.Post("/cart/items/{productID}/quantity", h.handleCartQuantity)
		r.Post("/cart/items/{productID}/remove", h.handleCartRemove)

		r.Get("/checkout", h.handleCheckout)
		r.Post("/checkout/step", h.handleCheckoutStep)
		r.Post("/checkout/shipping", h.handleCheckoutShipping)
		r.Post("/checkout/place-order", h.handlePlaceOrder)

		r.Get("/wishlist", h.handleWishlist)
		r.Post("/wishlist/toggle/{productID}", h.handleWishlistToggle)

		r.Get("/account", h.handleAccount)
		r.Post("/account/profile", h.handleAccountProfile)
		r.Post("/account/addresses", h.handleAccountAddress)
		r.Post("/account/password", h.handleAccountPassword)
		r.Get("/account/orders", h.handleOrders)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole("vendor"))
			r.Get("/vendor", h.handleVendor)
			r.Post("/vendor/store", h.handleVendorStore)
		})
	})

	return r, nil
}

// cartContainer builds a request-scoped cart container with the
// persisted checkout draft restored from the session cookie.
func (h *Handlers) cartContainer(r *http.Request) (*cart.Container, *notify.Center) {
	notes := notify.NewCenter()
	ctn := cart.NewContainer(h.cfg.Cart, notes, h.cfg.Pricing)
	if sess := middleware.SessionFromContext(r.Context()); sess != nil {
		ctn.RestoreDraft(sess.Shipping(), sess.PaymentMethod())
	}
	return ctn, notes
}

// cartCount fetches the badge count for the navigation bar. Logged-out
// visitors get zero without a network call.
func (h *Handlers) cartCount(r *http.Request) int {
	token := middleware.Token(r)
	if token == "" {
		return 0
	}
	ctn := cart.NewContainer(h.cfg.Cart, notify.NewCenter(), h.cfg.Pricing)
	ctn.FetchCart(r.Context(), token)
	return ctn.ItemCount()
}

var (
	descMarkdown  = goldmark.New()
	descSanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts vendor-authored markdown to sanitized HTML.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := descMarkdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(descSanitizer.SanitizeBytes(buf.Bytes()))
}

// safeNext accepts only same-origin relative paths for post-login
// redirects.
func safeNext(next string) string {
	if next == "" || next[0] != '/' || (len(next) > 1 && next[1] == '/') {
		return "/"
	}
	return next
}
