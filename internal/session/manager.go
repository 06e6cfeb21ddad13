// Package session persists the visitor's bearer token and the two
// checkout draft fields that survive page loads (shipping address and
// payment method) in a signed, encrypted cookie. Checkout step progress
// and in-flight flags are deliberately never persisted. The cart itself
// is never stored client-side; it is always re-derived from the backend.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/skh121/merobazaar-web/internal/auth"
	"github.com/skh121/merobazaar-web/internal/cart"
)

const (
	defaultCookieName  = "mb_session"
	defaultCookiePath  = "/"
	defaultLifetime    = 12 * time.Hour
	defaultIdleTimeout = 30 * time.Minute
)

// ErrInvalidConfig indicates the manager was initialised with missing options.
var ErrInvalidConfig = errors.New("session: invalid config")

// Data is the full persisted session payload.
type Data struct {
	ID            string             `json:"id"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastActive    time.Time          `json:"lastActive"`
	Token         string             `json:"token,omitempty"`
	User          *auth.User         `json:"user,omitempty"`
	Shipping      cart.ShippingDraft `json:"shipping,omitempty"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
}

// Session holds mutable state for the current request lifecycle.
type Session struct {
	data      Data
	dirty     bool
	destroyed bool
}

// Config controls cookie encoding and lifecycle limits.
type Config struct {
	CookieName   string
	HashKey      []byte
	BlockKey     []byte
	CookiePath   string
	CookieSecure bool
	IdleTimeout  time.Duration
	Lifetime     time.Duration
	Now          func() time.Time
}

// Manager decodes and persists session state via securecookie.
type Manager struct {
	cfg   Config
	codec *securecookie.SecureCookie
	now   func() time.Time
}

// NewManager constructs a Manager using the provided configuration.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.HashKey) == 0 {
		return nil, fmt.Errorf("%w: hash key is required", ErrInvalidConfig)
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = defaultCookiePath
	}
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = defaultLifetime
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	codec := securecookie.New(cfg.HashKey, cfg.BlockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Manager{cfg: cfg, codec: codec, now: nowFn}, nil
}

// Load retrieves the session from the incoming request, creating a
// fresh one when the cookie is absent, undecodable, or expired.
func (m *Manager) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil {
		return m.newSession()
	}

	var stored Data
	if err := m.codec.Decode(m.cfg.CookieName, cookie.Value, &stored); err != nil {
		return m.newSession()
	}

	now := m.now()
	if m.expired(stored, now) {
		return m.newSession()
	}

	sess := &Session{data: stored}
	sess.data.LastActive = now
	sess.dirty = true
	return sess
}

// Save writes the session cookie when the session changed during the
// request, or expires it when the session was destroyed.
func (m *Manager) Save(w http.ResponseWriter, sess *Session) error {
	if sess == nil {
		return nil
	}
	if sess.destroyed {
		http.SetCookie(w, &http.Cookie{
			Name:     m.cfg.CookieName,
			Value:    "",
			Path:     m.cfg.CookiePath,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   m.cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
		return nil
	}
	if !sess.dirty {
		return nil
	}

	encoded, err := m.codec.Encode(m.cfg.CookieName, sess.data)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    encoded,
		Path:     m.cfg.CookiePath,
		MaxAge:   int(m.cfg.Lifetime / time.Second),
		HttpOnly: true,
		Secure:   m.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) newSession() *Session {
	now := m.now()
	return &Session{
		data: Data{
			ID:         newSessionID(),
			CreatedAt:  now,
			LastActive: now,
		},
		dirty: true,
	}
}

func (m *Manager) expired(d Data, now time.Time) bool {
	if !d.CreatedAt.IsZero() && now.Sub(d.CreatedAt) > m.cfg.Lifetime {
		return true
	}
	if !d.LastActive.IsZero() && now.Sub(d.LastActive) > m.cfg.IdleTimeout {
		return true
	}
	return false
}

// Token returns the stored bearer token; empty when logged out.
func (s *Session) Token() string { return s.data.Token }

// User returns the stored identity; nil when logged out.
func (s *Session) User() *auth.User { return s.data.User }

// Shipping returns the persisted shipping draft.
func (s *Session) Shipping() cart.ShippingDraft { return s.data.Shipping }

// PaymentMethod returns the persisted payment method.
func (s *Session) PaymentMethod() string { return s.data.PaymentMethod }

// SetCredentials records a login.
func (s *Session) SetCredentials(creds *auth.Credentials) {
	if creds == nil {
		return
	}
	s.data.Token = creds.Token
	user := creds.User
	s.data.User = &user
	s.dirty = true
}

// SetShipping persists the checkout shipping draft.
func (s *Session) SetShipping(draft cart.ShippingDraft) {
	s.data.Shipping = draft
	s.dirty = true
}

// SetPaymentMethod persists the selected payment method.
func (s *Session) SetPaymentMethod(method string) {
	s.data.PaymentMethod = method
	s.dirty = true
}

// ClearDraft wipes the persisted checkout fields, used after a
// successful order placement.
func (s *Session) ClearDraft() {
	s.data.Shipping = cart.ShippingDraft{}
	s.data.PaymentMethod = ""
	s.dirty = true
}

// Destroy marks the session for deletion at save time.
func (s *Session) Destroy() {
	s.destroyed = true
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("sess-%d", time.Now().UnixNano())
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
