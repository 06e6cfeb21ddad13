package webserver

import (
	"net/http"
	"strconv"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/cart"
	"github.com/skh121/merobazaar-web/internal/checkout"
	"github.com/skh121/merobazaar-web/internal/middleware"
)

// Checkout steps as the screens name them. The container itself does
// not bound the step; these constants are the storefront's bounds.
const (
	stepReview   = 1
	stepShipping = 2
	stepPayment  = 3
)

type checkoutView struct {
	Step          int
	Items         []cart.Item
	Totals        cart.Totals
	Shipping      cart.ShippingDraft
	PaymentMethod string
	InFlight      bool
}

func checkoutViewOf(ctn *cart.Container) checkoutView {
	view := checkoutView{
		Step:          ctn.Step(),
		Totals:        ctn.Totals(),
		InFlight:      ctn.InFlight(),
		Shipping:      ctn.Session().Shipping,
		PaymentMethod: ctn.Session().PaymentMethod,
	}
	if c := ctn.Cart(); c != nil {
		view.Items = c.Items
	}
	return view
}

func (h *Handlers) handleCheckout(w http.ResponseWriter, r *http.Request) {
	ctn, notes := h.cartContainer(r)
	ctn.FetchCart(r.Context(), middleware.Token(r))
	ctn.SetStep(boundStep(r.URL.Query().Get("step")))

	if c := ctn.Cart(); c == nil || len(c.Items) == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	h.renderPage(w, r, "checkout", PageData{
		Title:     "Checkout",
		CartCount: ctn.ItemCount(),
		Notices:   notes.Drain(),
		Data:      checkoutViewOf(ctn),
	})
}

func (h *Handlers) handleCheckoutStep(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	step := boundStep(r.PostFormValue("step"))
	http.Redirect(w, r, "/checkout?step="+strconv.Itoa(step), http.StatusSeeOther)
}

func (h *Handlers) handleCheckoutShipping(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	ctn, _ := h.cartContainer(r)
	for _, field := range []string{"fullName", "phone", "address", "city", "district", "postalCode"} {
		ctn.UpdateShippingField(field, r.PostFormValue(field))
	}

	if sess := middleware.SessionFromContext(r.Context()); sess != nil {
		sess.SetShipping(ctn.Session().Shipping)
		middleware.SaveSession(w, r)
	}
	http.Redirect(w, r, "/checkout?step=3", http.StatusSeeOther)
}

func (h *Handlers) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	token := middleware.Token(r)

	ctn, notes := h.cartContainer(r)
	ctn.FetchCart(ctx, token)
	ctn.SetStep(stepPayment)
	if method := r.PostFormValue("paymentMethod"); method != "" {
		ctn.SetPaymentMethod(method)
		// The selection persists like the shipping draft, so a failed
		// placement does not forget it on the next page load.
		if sess := middleware.SessionFromContext(ctx); sess != nil {
			sess.SetPaymentMethod(method)
		}
	}

	draft := ctn.Session()
	if draft.PaymentMethod == "" {
		notes.Error("Please choose a payment method.")
		h.renderPage(w, r, "checkout", PageData{
			Title:     "Checkout",
			CartCount: ctn.ItemCount(),
			Notices:   notes.Drain(),
			Data:      checkoutViewOf(ctn),
		})
		return
	}

	order, err := h.cfg.Checkout.PlaceOrder(ctx, token, checkout.OrderRequest{
		Shipping:      draft.Shipping,
		PaymentMethod: draft.PaymentMethod,
	})
	if err != nil {
		notes.Error(api.UserMessage(err, "Could not place your order."))
		h.renderPage(w, r, "checkout", PageData{
			Title:     "Checkout",
			CartCount: ctn.ItemCount(),
			Notices:   notes.Drain(),
			Data:      checkoutViewOf(ctn),
		})
		return
	}

	// Terminal step: the container returns to its initial state and the
	// persisted draft fields are wiped.
	ctn.Clear()
	if sess := middleware.SessionFromContext(ctx); sess != nil {
		sess.ClearDraft()
		middleware.SaveSession(w, r)
	}
	notes.Success("Order placed.")

	h.renderPage(w, r, "order_placed", PageData{
		Title:   "Order placed",
		Notices: notes.Drain(),
		Data:    order,
	})
}

func boundStep(raw string) int {
	step, err := strconv.Atoi(raw)
	if err != nil || step < stepReview {
		return stepReview
	}
	if step > stepPayment {
		return stepPayment
	}
	return step
}
