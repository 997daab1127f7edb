package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces successive fetches at least interval apart.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: max(interval, 0)}
}

// wait blocks until the next fetch may start. It returns false if ctx ends
// first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval == 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	now := time.Now()
	start := t.next
	if start.Before(now) {
		start = now
	}
	t.next = start.Add(t.interval)
	t.mu.Unlock()

	delay := time.Until(start)
	if delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
