package notify_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skh121/merobazaar-web/internal/notify"
)

func TestCenterQueuesInFIFOOrder(t *testing.T) {
	t.Parallel()

	c := notify.NewCenter()
	c.Success("first")
	c.Error("second")
	c.Info("third")

	got := c.Active()
	require.Len(t, got, 3)
	require.Equal(t, "first", got[0].Message)
	require.Equal(t, "second", got[1].Message)
	require.Equal(t, "third", got[2].Message)
	require.Equal(t, notify.LevelError, got[1].Level)
}

func TestCenterExpiresEntries(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := notify.NewCenterAt(func() time.Time { return current })

	c.Push(notify.LevelInfo, "short lived", 2*time.Second)
	c.Push(notify.LevelInfo, "long lived", time.Minute)

	current = current.Add(5 * time.Second)
	got := c.Active()
	require.Len(t, got, 1)
	require.Equal(t, "long lived", got[0].Message)
}

func TestCenterDropsOldestBeyondCap(t *testing.T) {
	t.Parallel()

	c := notify.NewCenter()
	for i := 0; i < 12; i++ {
		c.Info(fmt.Sprintf("message %d", i))
	}

	got := c.Active()
	require.Len(t, got, 8)
	require.Equal(t, "message 4", got[0].Message)
	require.Equal(t, "message 11", got[7].Message)
}

func TestCenterDrainEmptiesQueue(t *testing.T) {
	t.Parallel()

	c := notify.NewCenter()
	c.Success("done")

	require.Len(t, c.Drain(), 1)
	require.Empty(t, c.Active())
}

func TestCenterIgnoresBlankMessages(t *testing.T) {
	t.Parallel()

	c := notify.NewCenter()
	c.Info("   ")
	require.Empty(t, c.Active())
}
