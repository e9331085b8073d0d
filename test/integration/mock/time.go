package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for pinning the dashboard's current-month window.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock starting at the real current time.
func NewClock() *Clock {
	return &Clock{now: time.Now()}
}

// SetNow pins the clock to the given moment.
func (c *Clock) SetNow(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Now returns the pinned moment.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}
