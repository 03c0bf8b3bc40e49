package geo

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces rapid successive triggers into a single callback fired
// after the delay has elapsed without a newer trigger. The pending timer is
// owned by the Debouncer instance, so independent search widgets don't
// interfere with each other.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, cancelling any earlier pending
// callback. Only the most recent fn ever runs.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// SearchDebouncer coalesces keystroke-driven queries into a single Search
// fired after the client's configured quiet period. Each instance owns its
// pending timer, so concurrent search inputs debounce independently while
// still sharing the client's rate limit.
type SearchDebouncer struct {
	client    *Client
	debouncer *Debouncer
}

// DebouncedSearch creates a search wrapper for one input source.
func (c *Client) DebouncedSearch() *SearchDebouncer {
	return &SearchDebouncer{client: c, debouncer: NewDebouncer(c.debounce)}
}

// Search schedules the query after the quiet period, superseding any pending
// earlier query. deliver is called with the result of the latest query only;
// superseded queries never reach the network.
func (s *SearchDebouncer) Search(ctx context.Context, query string, deliver func([]Candidate, error)) {
	s.debouncer.Trigger(func() {
		deliver(s.client.Search(ctx, query))
	})
}

// Stop cancels any pending query.
func (s *SearchDebouncer) Stop() {
	s.debouncer.Stop()
}
