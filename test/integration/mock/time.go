package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock. Once set, it keeps advancing from the set
// instant at wall-clock speed.
type Time struct {
	mu        sync.Mutex
	current   time.Time
	updatedAt time.Time
}

// NewTime creates a clock reading the wall clock.
func NewTime() *Time {
	now := time.Now()
	return &Time{current: now, updatedAt: now}
}

// SetCurrentTime moves the clock to the given instant.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
	t.updatedAt = time.Now()
}

// Now returns the simulated current time.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current.Add(time.Since(t.updatedAt))
}
