package webserver

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/skh121/merobazaar-web/internal/catalog"
	"github.com/skh121/merobazaar-web/internal/middleware"
	"github.com/skh121/merobazaar-web/internal/notify"
	"github.com/skh121/merobazaar-web/internal/wishlist"
)

const (
	featuredLimit    = 8
	defaultPageLimit = 12
)

type homeView struct {
	Featured   []catalog.Product
	Categories []string
}

func (h *Handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var view homeView
	if res, err := h.cfg.Catalog.List(ctx, catalog.Query{Limit: featuredLimit}); err != nil {
		log.Printf("home: list featured: %v", err)
	} else {
		view.Featured = res.Items
	}
	if cats, err := h.cfg.Catalog.Categories(ctx); err != nil {
		log.Printf("home: list categories: %v", err)
	} else {
		view.Categories = cats
	}

	h.renderPage(w, r, "home", PageData{
		CartCount: h.cartCount(r),
		Data:      view,
	})
}

type productsView struct {
	Result     catalog.ListResult
	Query      catalog.Query
	Categories []string
	PrevURL    string
	NextURL    string
}

func (h *Handlers) handleProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := parseCatalogQuery(r.URL.Query())

	result, err := h.cfg.Catalog.List(ctx, query)
	if err != nil {
		log.Printf("products: list: %v", err)
	}
	cats, err := h.cfg.Catalog.Categories(ctx)
	if err != nil {
		log.Printf("products: categories: %v", err)
	}

	view := productsView{
		Result:     result,
		Query:      query,
		Categories: cats,
		PrevURL:    pageURL(r.URL, result.Page-1),
		NextURL:    pageURL(r.URL, result.Page+1),
	}
	h.renderPage(w, r, "products", PageData{
		Title:     "Products",
		CartCount: h.cartCount(r),
		Data:      view,
	})
}

type productView struct {
	Product     *catalog.Product
	Description template.HTML
	Saved       bool
}

func (h *Handlers) handleProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productID")

	product, err := h.cfg.Catalog.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("product %s: %v", productID, err)
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	saved := false
	if token := middleware.Token(r); token != "" {
		wl := wishlist.NewContainer(h.cfg.Wishlist, notify.NewCenter())
		wl.Fetch(ctx, token)
		saved = wl.Has(productID)
	}

	view := productView{
		Product:     product,
		Description: renderMarkdown(product.Description),
		Saved:       saved,
	}
	h.renderPage(w, r, "product", PageData{
		Title:     product.Name,
		CartCount: h.cartCount(r),
		Data:      view,
	})
}

func parseCatalogQuery(values url.Values) catalog.Query {
	q := catalog.Query{Page: 1, Limit: defaultPageLimit}
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		q.Page = p
	}
	q.Search = strings.TrimSpace(values.Get("search"))
	q.Category = values.Get("category")
	if v, err := strconv.ParseFloat(values.Get("minPrice"), 64); err == nil && v > 0 {
		q.MinPrice = v
	}
	if v, err := strconv.ParseFloat(values.Get("maxPrice"), 64); err == nil && v > 0 {
		q.MaxPrice = v
	}
	if v, err := strconv.ParseFloat(values.Get("rating"), 64); err == nil && v > 0 {
		q.MinRating = v
	}
	q.Sort = values.Get("sort")
	return q
}

func pageURL(u *url.URL, page int) string {
	if page < 1 {
		page = 1
	}
	values := u.Query()
	values.Set("page", strconv.Itoa(page))
	return u.Path + "?" + values.Encode()
}
