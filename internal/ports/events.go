package ports

import "sync"

const (
	// EventToggle asks a sidebar to toggle between open and closed.
	EventToggle = "sidebar.toggle"
	// EventExpand asks a sidebar to expand.
	EventExpand = "sidebar.expand"
	// EventCollapse asks a sidebar to collapse.
	EventCollapse = "sidebar.collapse"
	// EventCompact asks a sidebar to compact.
	EventCompact = "sidebar.compact"
)

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// NewSubscription wraps cancel so that it runs at most once.
func NewSubscription(cancel func()) Subscription {
	return &subscription{cancel: cancel}
}

// NoopSubscription is returned when nothing was registered.
type NoopSubscription struct{}

// Unsubscribe does nothing.
func (NoopSubscription) Unsubscribe() {}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}
