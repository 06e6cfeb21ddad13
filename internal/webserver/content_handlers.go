package webserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skh121/merobazaar-web/internal/content"
)

func (h *Handlers) handleContentPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := h.cfg.Content.Load(slug)
	if err != nil {
		if errors.Is(err, content.ErrPageNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("content page %s: %v", slug, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, "page", PageData{
		Title:     page.Title,
		CartCount: h.cartCount(r),
		Data:      page,
	})
}
