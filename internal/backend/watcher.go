package backend

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Fetcher loads the current item lines from wherever they live.
type Fetcher func(ctx context.Context) ([]string, error)

// Event conveys a changed item set or an error from a fetch.
type Event struct {
	Lines []string
	Err   error
}

// Watcher fetches the item lines and publishes an event whenever they change.
// With a non-positive interval it fetches once and closes the channel.
type Watcher struct {
	fetch    Fetcher
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching. Stop must be called to release the poller.
func NewWatcher(fetch Fetcher, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fetch:    fetch,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.poll(newThrottle(250 * time.Millisecond))

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of item events. It is closed once the watcher
// stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(throttle *throttle) {
	defer w.wg.Done()

	var (
		last    uint64
		emitted bool
	)
	emit := func() bool {
		if !throttle.wait(w.ctx) {
			return false
		}
		lines, err := w.fetch(w.ctx)
		evt := Event{Lines: lines, Err: err}
		if err == nil {
			digest := xxhash.Sum64String(strings.Join(lines, "\n"))
			if emitted && digest == last {
				return true
			}
			last, emitted = digest, true
		}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() || w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
