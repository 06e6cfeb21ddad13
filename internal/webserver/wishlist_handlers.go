package webserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skh121/merobazaar-web/internal/middleware"
	"github.com/skh121/merobazaar-web/internal/notify"
	"github.com/skh121/merobazaar-web/internal/wishlist"
)

type wishlistView struct {
	Items []wishlist.Entry
}

type wishlistButtonView struct {
	Product struct{ ID string }
	Saved   bool
}

func (h *Handlers) handleWishlist(w http.ResponseWriter, r *http.Request) {
	notes := notify.NewCenter()
	ctn := wishlist.NewContainer(h.cfg.Wishlist, notes)
	ctn.Fetch(r.Context(), middleware.Token(r))

	h.renderPage(w, r, "wishlist", PageData{
		Title:     "Your wishlist",
		CartCount: h.cartCount(r),
		Notices:   notes.Drain(),
		Data:      wishlistView{Items: ctn.Entries()},
	})
}

func (h *Handlers) handleWishlistToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := middleware.Token(r)
	productID := chi.URLParam(r, "productID")

	notes := notify.NewCenter()
	ctn := wishlist.NewContainer(h.cfg.Wishlist, notes)
	// The toggle decides add-vs-remove from cached membership, so the
	// cache must reflect the backend before toggling.
	ctn.Fetch(ctx, token)
	res := ctn.Toggle(ctx, token, productID)

	if middleware.IsHTMXRequest(ctx) {
		view := wishlistButtonView{Saved: res.Saved}
		view.Product.ID = productID
		renderFragment(w, "frag_wishlist_button", view)
		return
	}
	http.Redirect(w, r, "/wishlist", http.StatusSeeOther)
}
