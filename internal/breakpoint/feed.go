package breakpoint

import (
	"sync"

	"github.com/alexisbeaulieu97/layoutkit/internal/ports"
)

// Handler receives the breakpoint that was active before a change and the one
// that is active now.
type Handler func(prev, current Breakpoint)

// Feed delivers breakpoint changes.
type Feed interface {
	Subscribe(handler Handler) ports.Subscription
}

// MediaFeed turns a stream of observed widths into breakpoint change
// notifications. A notification is emitted only when the breakpoint name
// changes; the first observation is reported with Unknown as prev.
//
// Handlers run synchronously on the goroutine calling Observe, in
// subscription order.
type MediaFeed struct {
	mu       sync.Mutex
	table    Table
	current  Breakpoint
	width    int
	observed bool
	handlers []handlerEntry
	nextID   int
}

type handlerEntry struct {
	id      int
	handler Handler
}

// NewMediaFeed creates a feed classifying widths against table.
func NewMediaFeed(table Table) *MediaFeed {
	return &MediaFeed{table: table, current: Unknown}
}

// Subscribe registers handler for future changes. Past changes are not replayed.
func (f *MediaFeed) Subscribe(handler Handler) ports.Subscription {
	if f == nil || handler == nil {
		return ports.NoopSubscription{}
	}
	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.handlers = append(f.handlers, handlerEntry{id: id, handler: handler})
	f.mu.Unlock()

	return ports.NewSubscription(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, entry := range f.handlers {
			if entry.id == id {
				f.handlers = append(f.handlers[:i:i], f.handlers[i+1:]...)
				break
			}
		}
	})
}

// Observe records a new width and notifies subscribers when it falls into a
// different breakpoint than the previous observation.
func (f *MediaFeed) Observe(width int) {
	f.mu.Lock()
	next := f.table.ByWidth(width)
	prev := f.current
	f.width = width
	f.observed = true
	if next.Name == prev.Name {
		f.mu.Unlock()
		return
	}
	f.current = next
	handlers := append([]handlerEntry(nil), f.handlers...)
	f.mu.Unlock()

	for _, entry := range handlers {
		entry.handler(prev, next)
	}
}

// SetTable swaps the classification table and re-classifies the last observed
// width, notifying subscribers if the breakpoint changed as a result.
func (f *MediaFeed) SetTable(table Table) {
	f.mu.Lock()
	f.table = table
	width, observed := f.width, f.observed
	f.mu.Unlock()

	if observed {
		f.Observe(width)
	}
}

// Current returns the breakpoint of the last observed width.
func (f *MediaFeed) Current() Breakpoint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Subscribers reports how many handlers are registered.
func (f *MediaFeed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handlers)
}
