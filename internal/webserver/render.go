package webserver

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/skh121/merobazaar-web/internal/auth"
	"github.com/skh121/merobazaar-web/internal/cart"
	"github.com/skh121/merobazaar-web/internal/format"
	"github.com/skh121/merobazaar-web/internal/middleware"
	"github.com/skh121/merobazaar-web/internal/notify"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var tmpl = template.Must(template.New("_root").Funcs(template.FuncMap{
	"npr":  format.FmtNPR,
	"date": format.FmtDate,
	"lineTotal": func(it cart.Item) float64 {
		return it.UnitPrice * float64(it.Quantity)
	},
}).ParseFS(templatesFS, "templates/*.tmpl"))

// PageData is the common payload handed to every page template.
type PageData struct {
	Title     string
	Path      string
	User      *auth.User
	CartCount int
	Notices   []notify.Notification
	Data      any
}

func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, name string, data PageData) {
	sess := middleware.SessionFromContext(r.Context())
	if sess != nil && data.User == nil {
		data.User = sess.User()
	}
	data.Path = r.URL.Path

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func renderFragment(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render fragment %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
