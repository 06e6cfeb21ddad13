package webserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skh121/merobazaar-web/internal/cart"
	"github.com/skh121/merobazaar-web/internal/middleware"
)

type cartView struct {
	Items  []cart.Item
	Totals cart.Totals
	Empty  bool
}

func cartViewOf(ctn *cart.Container) cartView {
	view := cartView{Totals: ctn.Totals(), Empty: true}
	if c := ctn.Cart(); c != nil {
		view.Items = c.Items
		view.Empty = len(c.Items) == 0
	}
	return view
}

func (h *Handlers) handleCart(w http.ResponseWriter, r *http.Request) {
	ctn, notes := h.cartContainer(r)
	ctn.FetchCart(r.Context(), middleware.Token(r))

	h.renderPage(w, r, "cart", PageData{
		Title:     "Your cart",
		CartCount: ctn.ItemCount(),
		Notices:   notes.Drain(),
		Data:      cartViewOf(ctn),
	})
}

func (h *Handlers) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	productID := r.PostFormValue("productId")
	quantity := formQuantity(r, 1)

	ctn, notes := h.cartContainer(r)
	res := ctn.AddItem(r.Context(), middleware.Token(r), productID, quantity)

	if middleware.IsHTMXRequest(r.Context()) {
		if res.Success {
			w.Header().Set("HX-Trigger", "cart-updated")
		}
		renderFragment(w, "frag_notices", notes.Drain())
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// handleCartCountFragment re-renders the nav badge after a
// cart-updated event.
func (h *Handlers) handleCartCountFragment(w http.ResponseWriter, r *http.Request) {
	renderFragment(w, "frag_cart_count", h.cartCount(r))
}

func (h *Handlers) handleCartQuantity(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	productID := chi.URLParam(r, "productID")
	quantity := formQuantity(r, 0)
	if quantity < 1 {
		http.Error(w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}

	ctn, _ := h.cartContainer(r)
	token := middleware.Token(r)
	if res := ctn.UpdateQuantity(r.Context(), token, productID, quantity); !res.Success {
		// Re-fetch so the re-rendered table shows the backend's state,
		// not an empty cache.
		ctn.FetchCart(r.Context(), token)
	}

	if middleware.IsHTMXRequest(r.Context()) {
		renderFragment(w, "frag_cart_table", cartViewOf(ctn))
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *Handlers) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	ctn, _ := h.cartContainer(r)
	token := middleware.Token(r)
	if res := ctn.RemoveItem(r.Context(), token, productID); !res.Success {
		ctn.FetchCart(r.Context(), token)
	}

	if middleware.IsHTMXRequest(r.Context()) {
		renderFragment(w, "frag_cart_table", cartViewOf(ctn))
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func formQuantity(r *http.Request, fallback int) int {
	q, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		return fallback
	}
	return q
}
