package adminserver

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/skh121/merobazaar-web/internal/admin/customers"
	"github.com/skh121/merobazaar-web/internal/admin/dashboard"
	"github.com/skh121/merobazaar-web/internal/admin/messages"
	"github.com/skh121/merobazaar-web/internal/admin/orders"
	"github.com/skh121/merobazaar-web/internal/admin/vendors"
	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/middleware"
	"github.com/skh121/merobazaar-web/internal/notify"
)

const adminPageLimit = 20

func (h *Handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	notes := notify.NewCenter()
	overview, err := h.cfg.Dashboard.Overview(r.Context(), middleware.Token(r))
	if err != nil {
		log.Printf("admin: dashboard: %v", err)
		notes.Error(api.UserMessage(err, "Could not load the dashboard."))
		overview = dashboard.Overview{}
	}

	h.renderPage(w, r, "admin_dashboard", PageData{
		Title:   "Dashboard",
		Notices: notes.Drain(),
		Data:    overview,
	})
}

type ordersPageView struct {
	Result orders.ListResult
	Query  orders.Query
}

func (h *Handlers) handleOrders(w http.ResponseWriter, r *http.Request) {
	notes := notify.NewCenter()
	query := orders.Query{
		Page:   pageParam(r),
		Limit:  adminPageLimit,
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Status: orders.Status(r.URL.Query().Get("status")),
	}

	result, err := h.cfg.Orders.List(r.Context(), middleware.Token(r), query)
	if err != nil {
		log.Printf("admin: orders list: %v", err)
		notes.Error(api.UserMessage(err, "Could not load orders."))
	}

	h.renderPage(w, r, "admin_orders", PageData{
		Title:   "Orders",
		Notices: notes.Drain(),
		Data:    ordersPageView{Result: result, Query: query},
	})
}

func (h *Handlers) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	orderID := chi.URLParam(r, "orderID")
	status := orders.Status(r.PostFormValue("status"))

	updated, err := h.cfg.Orders.UpdateStatus(r.Context(), middleware.Token(r), orderID, status)
	if err != nil {
		log.Printf("admin: order %s status: %v", orderID, err)
		http.Error(w, api.UserMessage(err, "Could not update the order."), http.StatusBadGateway)
		return
	}

	if middleware.IsHTMXRequest(r.Context()) {
		renderFragment(w, "frag_order_row", updated)
		return
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (h *Handlers) handleOrderResend(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	notes := notify.NewCenter()
	if err := h.cfg.Orders.ResendConfirmation(r.Context(), middleware.Token(r), orderID); err != nil {
		log.Printf("admin: order %s resend: %v", orderID, err)
		notes.Error(api.UserMessage(err, "Could not resend the confirmation."))
	} else {
		notes.Success("Confirmation email queued.")
	}

	if middleware.IsHTMXRequest(r.Context()) {
		renderFragment(w, "frag_notices", notes.Drain())
		return
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

type customersPageView struct {
	Result customers.ListResult
	Query  customers.Query
}

func (h *Handlers) handleCustomers(w http.ResponseWriter, r *http.Request) {
	notes := notify.NewCenter()
	query := customers.Query{
		Page:   pageParam(r),
		Limit:  adminPageLimit,
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}

	result, err := h.cfg.Customers.List(r.Context(), middleware.Token(r), query)
	if err != nil {
		log.Printf("admin: customers list: %v", err)
		notes.Error(api.UserMessage(err, "Could not load customers."))
	}

	h.renderPage(w, r, "admin_customers", PageData{
		Title:   "Customers",
		Notices: notes.Drain(),
		Data:    customersPageView{Result: result, Query: query},
	})
}

func (h *Handlers) handleCustomerActive(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	customerID := chi.URLParam(r, "customerID")
	active := r.PostFormValue("active") == "true"

	updated, err := h.cfg.Customers.SetActive(r.Context(), middleware.Token(r), customerID, active)
	if err != nil {
		log.Printf("admin: customer %s active: %v", customerID, err)
		http.Error(w, api.UserMessage(err, "Could not update the customer."), http.StatusBadGateway)
		return
	}

	if middleware.IsHTMXRequest(r.Context()) {
		renderFragment(w, "frag_customer_row", updated)
		return
	}
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

type vendorsPageView struct {
	Result vendors.ListResult
	Query  vendors.Query
}

func (h *Handlers) handleVendors(w http.ResponseWriter, r *http.Request) {
	notes := notify.NewCenter()
	query := vendors.Query{
		Page:     pageParam(r),
		Limit:    adminPageLimit,
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
		Approval: vendors.Approval(r.URL.Query().Get("approval")),
	}

	result, err := h.cfg.Vendors.List(r.Context(), middleware.Token(r), query)
	if err != nil {
		log.Printf("admin: vendors list: %v", err)
		notes.Error(api.UserMessage(err, "Could not load vendors."))
	}

	h.renderPage(w, r, "admin_vendors", PageData{
		Title:   "Vendors",
		Notices: notes.Drain(),
		Data:    vendorsPageView{Result: result, Query: query},
	})
}

func (h *Handlers) handleVendorApproval(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	vendorID := chi.URLParam(r, "vendorID")
	approval := vendors.Approval(r.PostFormValue("approval"))
	reason := r.PostFormValue("reason")

	updated, err := h.cfg.Vendors.SetApproval(r.Context(), middleware.Token(r), vendorID, approval, reason)
	if err != nil {
		log.Printf("admin: vendor %s approval: %v", vendorID, err)
		http.Error(w, api.UserMessage(err, "Could not update the vendor."), http.StatusBadGateway)
		return
	}

	if middleware.IsHTMXRequest(r.Context()) {
		renderFragment(w, "frag_vendor_row", updated)
		return
	}
	http.Redirect(w, r, "/vendors", http.StatusSeeOther)
}

type messagesPageView struct {
	Result messages.ListResult
	Query  messages.Query
}

func (h *Handlers) handleMessages(w http.ResponseWriter, r *http.Request) {
	notes := notify.NewCenter()
	query := messages.Query{
		Page:       pageParam(r),
		Limit:      adminPageLimit,
		UnreadOnly: r.URL.Query().Get("unread") == "true",
	}

	result, err := h.cfg.Messages.List(r.Context(), middleware.Token(r), query)
	if err != nil {
		log.Printf("admin: messages list: %v", err)
		notes.Error(api.UserMessage(err, "Could not load messages."))
	}

	h.renderPage(w, r, "admin_messages", PageData{
		Title:   "Messages",
		Notices: notes.Drain(),
		Data:    messagesPageView{Result: result, Query: query},
	})
}

func (h *Handlers) handleMessageRead(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	updated, err := h.cfg.Messages.MarkRead(r.Context(), middleware.Token(r), messageID)
	if err != nil {
		log.Printf("admin: message %s read: %v", messageID, err)
		http.Error(w, api.UserMessage(err, "Could not update the message."), http.StatusBadGateway)
		return
	}

	if middleware.IsHTMXRequest(r.Context()) {
		renderFragment(w, "frag_message_row", updated)
		return
	}
	http.Redirect(w, r, "/messages", http.StatusSeeOther)
}

func (h *Handlers) handleMessageDelete(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	if err := h.cfg.Messages.Delete(r.Context(), middleware.Token(r), messageID); err != nil {
		log.Printf("admin: message %s delete: %v", messageID, err)
		http.Error(w, api.UserMessage(err, "Could not delete the message."), http.StatusBadGateway)
		return
	}

	if middleware.IsHTMXRequest(r.Context()) {
		// Empty response removes the swapped row.
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/messages", http.StatusSeeOther)
}

type loginView struct {
	Error string
	Email string
}

func (h *Handlers) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "admin_login", PageData{Title: "Log in", Data: loginView{}})
}

func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")

	creds, err := h.cfg.Auth.Login(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		h.renderPage(w, r, "admin_login", PageData{
			Title: "Log in",
			Data:  loginView{Error: api.UserMessage(err, "Invalid email or password."), Email: email},
		})
		return
	}
	if creds.User.Role != "admin" {
		h.renderPage(w, r, "admin_login", PageData{
			Title: "Log in",
			Data:  loginView{Error: "This console is for administrators only.", Email: email},
		})
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	sess.SetCredentials(creds)
	middleware.SaveSession(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.SessionFromContext(r.Context()); sess != nil {
		sess.Destroy()
		middleware.SaveSession(w, r)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func pageParam(r *http.Request) int {
	p, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || p < 1 {
		return 1
	}
	return p
}
