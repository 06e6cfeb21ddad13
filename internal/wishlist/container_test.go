package wishlist_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skh121/merobazaar-web/internal/notify"
	"github.com/skh121/merobazaar-web/internal/wishlist"
)

// fakeService mimics the backend by tracking membership server-side.
type fakeService struct {
	members map[string]bool
	err     error
	calls   int
}

func newFakeService() *fakeService {
	return &fakeService{members: map[string]bool{}}
}

func (f *fakeService) snapshot() *wishlist.Wishlist {
	w := &wishlist.Wishlist{}
	for id := range f.members {
		w.Items = append(w.Items, wishlist.Entry{ProductID: id})
	}
	return w
}

func (f *fakeService) Fetch(ctx context.Context, token string) (*wishlist.Wishlist, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot(), nil
}

func (f *fakeService) Add(ctx context.Context, token, productID string) (*wishlist.Wishlist, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	f.members[productID] = true
	return f.snapshot(), nil
}

func (f *fakeService) Remove(ctx context.Context, token, productID string) (*wishlist.Wishlist, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	delete(f.members, productID)
	return f.snapshot(), nil
}

func TestToggleIsIdempotentOverTwoCalls(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	ctr := wishlist.NewContainer(svc, notify.NewCenter())

	require.False(t, ctr.Has("p1"))

	res := ctr.Toggle(context.Background(), "token", "p1")
	require.True(t, res.Success)
	require.True(t, res.Saved)
	require.True(t, ctr.Has("p1"))

	res = ctr.Toggle(context.Background(), "token", "p1")
	require.True(t, res.Success)
	require.False(t, res.Saved)
	require.False(t, ctr.Has("p1"))
}

func TestToggleFailsClosedWithoutToken(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	notes := notify.NewCenter()
	ctr := wishlist.NewContainer(svc, notes)

	res := ctr.Toggle(context.Background(), "", "p1")
	require.False(t, res.Success)
	require.Zero(t, svc.calls)
	require.Len(t, notes.Active(), 1)
}

func TestToggleKeepsMembershipOnFailure(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	ctr := wishlist.NewContainer(svc, notify.NewCenter())

	ctr.Toggle(context.Background(), "token", "p1")
	require.True(t, ctr.Has("p1"))

	svc.err = errors.New("boom")
	res := ctr.Toggle(context.Background(), "token", "p1")
	require.False(t, res.Success)
	require.True(t, res.Saved, "membership reported as unchanged on failure")
	require.True(t, ctr.Has("p1"))
}

func TestFetchPopulatesCache(t *testing.T) {
	t.Parallel()

	svc := newFakeService()
	svc.members["p2"] = true
	ctr := wishlist.NewContainer(svc, notify.NewCenter())

	ctr.Fetch(context.Background(), "token")
	require.True(t, ctr.Has("p2"))
	require.Len(t, ctr.Entries(), 1)

	ctr.Clear()
	require.False(t, ctr.Has("p2"))
}
