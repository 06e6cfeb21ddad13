// Package notify implements the ephemeral user-facing message center
// shared by the storefront containers.
//
// Policy: notifications are queued FIFO rather than replacing one
// another. Each entry carries a caller-specified time-to-live and is
// pruned lazily when the queue is read. The queue is capped; pushing
// beyond the cap drops the oldest entry first.
package notify

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is applied when a caller passes a non-positive duration.
const DefaultTTL = 5 * time.Second

// maxQueued bounds the queue; older entries are dropped beyond it.
const maxQueued = 8

// Level classifies a notification for presentation.
type Level string

const (
	// LevelSuccess marks a completed operation.
	LevelSuccess Level = "success"
	// LevelError marks a failed operation.
	LevelError Level = "error"
	// LevelInfo marks neutral information.
	LevelInfo Level = "info"
)

// Notification is a single ephemeral message.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Center holds queued notifications. Instances are created per consumer
// and injected; there is no package-level singleton.
type Center struct {
	mu    sync.Mutex
	queue []Notification
	now   func() time.Time
}

// NewCenter constructs an empty Center.
func NewCenter() *Center {
	return &Center{now: time.Now}
}

// NewCenterAt constructs a Center with an injectable clock for tests.
func NewCenterAt(now func() time.Time) *Center {
	if now == nil {
		now = time.Now
	}
	return &Center{now: now}
}

// Push enqueues a notification with the given TTL.
func (c *Center) Push(level Level, message string, ttl time.Duration) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = append(c.queue, Notification{
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	})
	if len(c.queue) > maxQueued {
		c.queue = c.queue[len(c.queue)-maxQueued:]
	}
}

// Success enqueues a success message with the default TTL.
func (c *Center) Success(message string) { c.Push(LevelSuccess, message, DefaultTTL) }

// Error enqueues an error message with the default TTL.
func (c *Center) Error(message string) { c.Push(LevelError, message, DefaultTTL) }

// Info enqueues an informational message with the default TTL.
func (c *Center) Info(message string) { c.Push(LevelInfo, message, DefaultTTL) }

// Active prunes expired entries and returns the live queue in FIFO order.
func (c *Center) Active() []Notification {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	live := c.queue[:0]
	for _, n := range c.queue {
		if n.ExpiresAt.After(now) {
			live = append(live, n)
		}
	}
	c.queue = live

	out := make([]Notification, len(c.queue))
	copy(out, c.queue)
	return out
}

// Drain returns the live queue and empties the center, used when the
// messages are handed off for rendering exactly once.
func (c *Center) Drain() []Notification {
	out := c.Active()
	c.mu.Lock()
	c.queue = nil
	c.mu.Unlock()
	return out
}
