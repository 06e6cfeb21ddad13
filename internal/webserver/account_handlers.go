package webserver

import (
	"log"
	"net/http"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/checkout"
	"github.com/skh121/merobazaar-web/internal/middleware"
	"github.com/skh121/merobazaar-web/internal/notify"
	"github.com/skh121/merobazaar-web/internal/profile"
)

type accountView struct {
	Profile *profile.Profile
}

func (h *Handlers) handleAccount(w http.ResponseWriter, r *http.Request) {
	notes := notify.NewCenter()
	ctn := profile.NewContainer(h.cfg.Profile, notes)
	ctn.Fetch(r.Context(), middleware.Token(r))

	h.renderAccount(w, r, ctn, notes)
}

func (h *Handlers) handleAccountProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	token := middleware.Token(r)

	notes := notify.NewCenter()
	ctn := profile.NewContainer(h.cfg.Profile, notes)
	req := profile.InfoUpdate{
		FullName: r.PostFormValue("fullName"),
		Phone:    r.PostFormValue("phone"),
	}
	if res := ctn.UpdateInfo(ctx, token, req); !res.Success {
		ctn.Fetch(ctx, token)
	}

	h.renderAccount(w, r, ctn, notes)
}

func (h *Handlers) handleAccountAddress(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	token := middleware.Token(r)

	notes := notify.NewCenter()
	ctn := profile.NewContainer(h.cfg.Profile, notes)
	addr := profile.Address{
		ID:         r.PostFormValue("id"),
		Label:      r.PostFormValue("label"),
		Address:    r.PostFormValue("address"),
		City:       r.PostFormValue("city"),
		District:   r.PostFormValue("district"),
		PostalCode: r.PostFormValue("postalCode"),
	}
	if res := ctn.SaveAddress(ctx, token, addr); !res.Success {
		ctn.Fetch(ctx, token)
	}

	h.renderAccount(w, r, ctn, notes)
}

func (h *Handlers) handleAccountPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	token := middleware.Token(r)

	notes := notify.NewCenter()
	ctn := profile.NewContainer(h.cfg.Profile, notes)
	ctn.ChangePassword(ctx, token,
		r.PostFormValue("current"),
		r.PostFormValue("new"),
		r.PostFormValue("confirm"),
	)
	ctn.Fetch(ctx, token)

	h.renderAccount(w, r, ctn, notes)
}

func (h *Handlers) renderAccount(w http.ResponseWriter, r *http.Request, ctn *profile.Container, notes *notify.Center) {
	prof := ctn.Profile()
	if prof == nil {
		prof = &profile.Profile{}
	}
	h.renderPage(w, r, "account", PageData{
		Title:     "Your account",
		CartCount: h.cartCount(r),
		Notices:   notes.Drain(),
		Data:      accountView{Profile: prof},
	})
}

type ordersView struct {
	Orders []checkout.Order
}

func (h *Handlers) handleOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := middleware.Token(r)

	notes := notify.NewCenter()
	orders, err := h.cfg.Checkout.History(ctx, token)
	if err != nil {
		log.Printf("orders: history: %v", err)
		notes.Error(api.UserMessage(err, "Could not load your orders."))
	}

	h.renderPage(w, r, "orders", PageData{
		Title:     "Order history",
		CartCount: h.cartCount(r),
		Notices:   notes.Drain(),
		Data:      ordersView{Orders: orders},
	})
}
