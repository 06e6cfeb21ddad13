package webserver

import (
	"fmt"
	"net/http"

	"github.com/skh121/merobazaar-web/internal/api"
	"github.com/skh121/merobazaar-web/internal/middleware"
	"github.com/skh121/merobazaar-web/internal/profile"
)

type loginView struct {
	Error string
	Next  string
	Email string
}

type registerView struct {
	Error    string
	FullName string
	Email    string
}

func (h *Handlers) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.Token(r) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderPage(w, r, "login", PageData{
		Title: "Log in",
		Data:  loginView{Next: r.URL.Query().Get("next")},
	})
}

func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	next := r.PostFormValue("next")

	creds, err := h.cfg.Auth.Login(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		h.renderPage(w, r, "login", PageData{
			Title: "Log in",
			Data: loginView{
				Error: api.UserMessage(err, "Invalid email or password."),
				Next:  next,
				Email: email,
			},
		})
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	sess.SetCredentials(creds)
	middleware.SaveSession(w, r)
	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

func (h *Handlers) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if middleware.Token(r) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.renderPage(w, r, "register", PageData{Title: "Sign up", Data: registerView{}})
}

func (h *Handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	fullName := r.PostFormValue("fullName")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	fail := func(msg string) {
		h.renderPage(w, r, "register", PageData{
			Title: "Sign up",
			Data:  registerView{Error: msg, FullName: fullName, Email: email},
		})
	}

	if len(password) < profile.MinPasswordLength {
		fail(fmt.Sprintf("Password must be at least %d characters.", profile.MinPasswordLength))
		return
	}

	creds, err := h.cfg.Auth.Register(r.Context(), fullName, email, password)
	if err != nil {
		fail(api.UserMessage(err, "Could not create your account."))
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
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
