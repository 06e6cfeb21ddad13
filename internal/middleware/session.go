// Package middleware carries the HTTP middleware shared by the
// storefront and admin servers.
package middleware

import (
	"context"
	"log"
	"net/http"

	appsession "github.com/skh121/merobazaar-web/internal/session"
)

type sessionContextKey string

const requestSessionKey sessionContextKey = "mb.session"

// Session attaches the decoded session (and its manager) to the request
// context. The cookie is written automatically just before the first
// byte of the response, so read-only page views still refresh the idle
// window. Handlers that mutate the session after partial writes must
// call SaveSession themselves, before writing.
func Session(mgr *appsession.Manager) func(http.Handler) http.Handler {
	if mgr == nil {
		panic("session manager is required")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handle := &sessionHandle{mgr: mgr, sess: mgr.Load(r)}
			sw := &sessionWriter{ResponseWriter: w, handle: handle}
			ctx := context.WithValue(r.Context(), requestSessionKey, handle)
			next.ServeHTTP(sw, r.WithContext(ctx))
			// Handlers that wrote nothing still get the refreshed cookie.
			handle.save(w)
		})
	}
}

type sessionHandle struct {
	mgr   *appsession.Manager
	sess  *appsession.Session
	saved bool
}

func (h *sessionHandle) save(w http.ResponseWriter) {
	if h.saved {
		return
	}
	h.saved = true
	if err := h.mgr.Save(w, h.sess); err != nil {
		log.Printf("session save failed: %v", err)
	}
}

// sessionWriter defers the cookie write until the response starts,
// keeping Set-Cookie ahead of the body.
type sessionWriter struct {
	http.ResponseWriter
	handle *sessionHandle
}

func (w *sessionWriter) WriteHeader(code int) {
	w.handle.save(w.ResponseWriter)
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.handle.save(w.ResponseWriter)
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// SessionFromContext returns the request session; nil when the session
// middleware is not mounted.
func SessionFromContext(ctx context.Context) *appsession.Session {
	handle, ok := ctx.Value(requestSessionKey).(*sessionHandle)
	if !ok {
		return nil
	}
	return handle.sess
}

// SaveSession writes the session cookie immediately instead of at the
// first response write. Call it after the last session mutation of the
// request.
func SaveSession(w http.ResponseWriter, r *http.Request) {
	handle, ok := r.Context().Value(requestSessionKey).(*sessionHandle)
	if !ok {
		return
	}
	handle.save(w)
}

// Token returns the bearer token stored in the request session, empty
// when the visitor is logged out.
func Token(r *http.Request) string {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		return ""
	}
	return sess.Token()
}
