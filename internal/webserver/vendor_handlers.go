package webserver

import (
	"html/template"
	"log"
	"net/http"

	"github.com/skh121/merobazaar-web/internal/catalog"
	"github.com/skh121/merobazaar-web/internal/middleware"
	"github.com/skh121/merobazaar-web/internal/notify"
	"github.com/skh121/merobazaar-web/internal/vendorpanel"
)

const vendorProductLimit = 50

type vendorView struct {
	Store           *vendorpanel.Store
	DescriptionHTML template.HTML
	Products        []catalog.Product
}

func (h *Handlers) handleVendor(w http.ResponseWriter, r *http.Request) {
	notes := notify.NewCenter()
	ctn := vendorpanel.NewContainer(h.cfg.Vendor, notes)
	ctn.Fetch(r.Context(), middleware.Token(r))

	h.renderVendor(w, r, ctn, notes)
}

func (h *Handlers) handleVendorStore(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	token := middleware.Token(r)

	notes := notify.NewCenter()
	ctn := vendorpanel.NewContainer(h.cfg.Vendor, notes)
	req := vendorpanel.StoreUpdate{
		Name:         r.PostFormValue("name"),
		Description:  r.PostFormValue("description"),
		ContactEmail: r.PostFormValue("contactEmail"),
		ContactPhone: r.PostFormValue("contactPhone"),
	}
	if res := ctn.UpdateStore(ctx, token, req); !res.Success {
		ctn.Fetch(ctx, token)
	}

	h.renderVendor(w, r, ctn, notes)
}

func (h *Handlers) renderVendor(w http.ResponseWriter, r *http.Request, ctn *vendorpanel.Container, notes *notify.Center) {
	ctx := r.Context()
	token := middleware.Token(r)

	view := vendorView{Store: ctn.Store()}
	if view.Store != nil {
		view.DescriptionHTML = renderMarkdown(view.Store.Description)
	}
	if h.cfg.Vendor != nil {
		products, err := h.cfg.Vendor.Products(ctx, token, 1, vendorProductLimit)
		if err != nil {
			log.Printf("vendor: products: %v", err)
		} else {
			view.Products = products.Items
		}
	}

	h.renderPage(w, r, "vendor", PageData{
		Title:     "My store",
		CartCount: h.cartCount(r),
		Notices:   notes.Drain(),
		Data:      view,
	})
}
