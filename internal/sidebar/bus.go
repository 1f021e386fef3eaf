package sidebar

import (
	"sync"

	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/ports"
)

// SignalKind names the request carried by a Signal.
type SignalKind int

const (
	SignalToggle SignalKind = iota
	SignalExpand
	SignalCollapse
	SignalCompact
)

func (k SignalKind) String() string {
	switch k {
	case SignalToggle:
		return ports.EventToggle
	case SignalExpand:
		return ports.EventExpand
	case SignalCollapse:
		return ports.EventCollapse
	case SignalCompact:
		return ports.EventCompact
	default:
		return "sidebar.unknown"
	}
}

// Signal is a request addressed to the sidebars sharing a bus. Tagged
// sidebars react only to signals carrying their tag; untagged sidebars react
// to every signal.
type Signal struct {
	Kind    SignalKind
	Tag     string
	Compact bool
}

// Bus carries sidebar signals between components. Delivery is synchronous and
// in publish order. Handlers added while a signal is being delivered do not
// receive that signal.
type Bus struct {
	log      *logger.Logger
	mu       sync.RWMutex
	handlers []busEntry
	nextID   int
}

type busEntry struct {
	id      int
	handler func(Signal)
}

// NewBus creates an empty bus. log may be nil.
func NewBus(log *logger.Logger) *Bus {
	return &Bus{log: log}
}

// Publish delivers sig to every current subscriber.
func (b *Bus) Publish(sig Signal) {
	if b == nil {
		return
	}
	b.mu.RLock()
	handlers := append([]busEntry(nil), b.handlers...)
	b.mu.RUnlock()

	b.log.With("event_type", sig.Kind.String(), "tag", sig.Tag, "compact", sig.Compact, "subscribers", len(handlers)).
		Debug("sidebar signal")

	for _, entry := range handlers {
		entry.handler(sig)
	}
}

// Toggle asks sidebars matching tag to toggle.
func (b *Bus) Toggle(tag string, compact bool) {
	b.Publish(Signal{Kind: SignalToggle, Tag: tag, Compact: compact})
}

// Expand asks sidebars matching tag to expand.
func (b *Bus) Expand(tag string) {
	b.Publish(Signal{Kind: SignalExpand, Tag: tag})
}

// Collapse asks sidebars matching tag to collapse.
func (b *Bus) Collapse(tag string) {
	b.Publish(Signal{Kind: SignalCollapse, Tag: tag})
}

// Compact asks sidebars matching tag to compact.
func (b *Bus) Compact(tag string) {
	b.Publish(Signal{Kind: SignalCompact, Tag: tag})
}

// Subscribe registers handler for every signal published after the call.
func (b *Bus) Subscribe(handler func(Signal)) ports.Subscription {
	if b == nil || handler == nil {
		return ports.NoopSubscription{}
	}
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, busEntry{id: id, handler: handler})
	b.mu.Unlock()

	return ports.NewSubscription(func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, entry := range b.handlers {
			if entry.id == id {
				b.handlers = append(b.handlers[:i:i], b.handlers[i+1:]...)
				break
			}
		}
	})
}

// Subscribers reports how many handlers are registered.
func (b *Bus) Subscribers() int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
