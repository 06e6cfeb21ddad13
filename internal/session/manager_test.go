package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skh121/merobazaar-web/internal/auth"
	"github.com/skh121/merobazaar-web/internal/cart"
	"github.com/skh121/merobazaar-web/internal/session"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newManager(t *testing.T, now func() time.Time) *session.Manager {
	t.Helper()

	mgr, err := session.NewManager(session.Config{
		HashKey: testKey,
		Now:     now,
	})
	require.NoError(t, err)
	return mgr
}

func roundTrip(t *testing.T, mgr *session.Manager, sess *session.Session) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, sess))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestManagerRequiresHashKey(t *testing.T) {
	t.Parallel()

	_, err := session.NewManager(session.Config{})
	require.ErrorIs(t, err, session.ErrInvalidConfig)
}

func TestSessionPersistsTokenAndDraftOnly(t *testing.T) {
	t.Parallel()

	mgr := newManager(t, nil)

	sess := mgr.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	sess.SetCredentials(&auth.Credentials{
		Token: "tok-1",
		User:  auth.User{ID: "u1", FullName: "Sita Sharma", Role: "customer"},
	})
	sess.SetShipping(cart.ShippingDraft{FullName: "Sita Sharma", City: "Kathmandu"})
	sess.SetPaymentMethod("esewa")

	restored := mgr.Load(roundTrip(t, mgr, sess))
	require.Equal(t, "tok-1", restored.Token())
	require.Equal(t, "Sita Sharma", restored.User().FullName)
	require.Equal(t, "Kathmandu", restored.Shipping().City)
	require.Equal(t, "esewa", restored.PaymentMethod())
}

func TestClearDraftWipesCheckoutFields(t *testing.T) {
	t.Parallel()

	mgr := newManager(t, nil)

	sess := mgr.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	sess.SetCredentials(&auth.Credentials{Token: "tok-1"})
	sess.SetShipping(cart.ShippingDraft{City: "Pokhara"})
	sess.SetPaymentMethod("khalti")
	sess.ClearDraft()

	restored := mgr.Load(roundTrip(t, mgr, sess))
	require.Equal(t, "tok-1", restored.Token(), "login survives the draft reset")
	require.Equal(t, cart.ShippingDraft{}, restored.Shipping())
	require.Empty(t, restored.PaymentMethod())
}

func TestDestroyExpiresCookie(t *testing.T) {
	t.Parallel()

	mgr := newManager(t, nil)

	sess := mgr.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	sess.SetCredentials(&auth.Credentials{Token: "tok-1"})
	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, sess))

	sess.Destroy()
	rec2 := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec2, sess))

	cookies := rec2.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Negative(t, cookies[0].MaxAge)
}

func TestIdleExpiryYieldsFreshSession(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mgr := newManager(t, func() time.Time { return current })

	sess := mgr.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	sess.SetCredentials(&auth.Credentials{Token: "tok-1"})
	req := roundTrip(t, mgr, sess)

	current = current.Add(2 * time.Hour) // beyond the default 30m idle timeout
	restored := mgr.Load(req)
	require.Empty(t, restored.Token())
}

func TestUndecodableCookieYieldsFreshSession(t *testing.T) {
	t.Parallel()

	mgr := newManager(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "mb_session", Value: "garbage"})

	restored := mgr.Load(req)
	require.Empty(t, restored.Token())
	require.Nil(t, restored.User())
}
