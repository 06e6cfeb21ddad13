// Package adminserver assembles the back-office console: dashboard
// analytics, order management, customer and vendor moderation, and the
// contact-form inbox. Every route except login requires an admin
// session; all writes go straight to the backend API and every
// re-rendered row comes from the backend's response.
package adminserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/skh121/merobazaar-web/internal/admin/customers"
	"github.com/skh121/merobazaar-web/internal/admin/dashboard"
	"github.com/skh121/merobazaar-web/internal/admin/messages"
	"github.com/skh121/merobazaar-web/internal/admin/orders"
	"github.com/skh121/merobazaar-web/internal/admin/vendors"
	"github.com/skh121/merobazaar-web/internal/auth"
	"github.com/skh121/merobazaar-web/internal/middleware"
	"github.com/skh121/merobazaar-web/internal/session"
)

// Config wires the admin console's dependencies.
type Config struct {
	SessionManager *session.Manager
	Auth           *auth.Client
	Dashboard      dashboard.Service
	Orders         orders.Service
	Customers      customers.Service
	Vendors        vendors.Service
	Messages       messages.Service
}

// Handlers carries the shared dependencies behind every admin route.
type Handlers struct {
	cfg Config
}

// New builds the admin console router.
func New(cfg Config) (http.Handler, error) {
	if cfg.SessionManager == nil {
		return nil, errors.New("adminserver: session manager is required")
	}
	if cfg.Dashboard == nil {
		// Canned figures keep the landing page usable in previews and
		// when the analytics backend is down.
		cfg.Dashboard = dashboard.NewStaticService()
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

	r.Get("/login", h.handleLoginForm)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin("/login"))
		r.Use(middleware.RequireRole("admin"))
		r.Use(middleware.NoStore())

		r.Get("/", h.handleDashboard)

		r.Get("/orders", h.handleOrders)
		r.Post("/orders/{orderID}/status", h.handleOrderStatus)
		r.Post("/orders/{orderID}/resend", h.handleOrderResend)

		r.Get("/customers", h.handleCustomers)
		r.Post("/customers/{customerID}/active", h.handleCustomerActive)

		r.Get("/vendors", h.handleVendors)
		r.Post("/vendors/{vendorID}/approval", h.handleVendorApproval)

		r.Get("/messages", h.handleMessages)
		r.Post("/messages/{messageID}/read", h.handleMessageRead)
		r.Post("/messages/{messageID}/delete", h.handleMessageDelete)
	})

	return r, nil
}
