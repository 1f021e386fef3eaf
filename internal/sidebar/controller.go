// Package sidebar holds the state controller behind a responsive sidebar:
// visibility state, placement, fixed positioning and the breakpoint-driven
// responsive mode.
package sidebar

import (
	"slices"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/layoutkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/ports"
)

// Controller owns the state of one sidebar. It is driven from a single
// goroutine (the UI loop) and is not safe for concurrent use.
type Controller struct {
	id  string
	tag string
	log *logger.Logger

	state          State
	placement      Placement
	fixed          bool
	containerFixed bool

	responsive bool
	tier       Tier
	compacted  []string
	collapsed  []string

	feed    breakpoint.Feed
	feedSub ports.Subscription
	bus     *Bus
	busSub  ports.Subscription
	closed  bool

	onChange func(Flags)
	batching bool
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithTag scopes the controller to bus signals carrying tag.
func WithTag(tag string) Option {
	return func(c *Controller) { c.tag = tag }
}

// WithState sets the initial state.
func WithState(state State) Option {
	return func(c *Controller) { c.state = state }
}

// WithPlacement sets the initial placement.
func WithPlacement(p Placement) Option {
	return func(c *Controller) { c.placement = p }
}

// WithFeed sets the breakpoint feed used while responsive.
func WithFeed(feed breakpoint.Feed) Option {
	return func(c *Controller) { c.feed = feed }
}

// WithBus connects the controller to a sidebar bus.
func WithBus(bus *Bus) Option {
	return func(c *Controller) { c.bus = bus }
}

// WithLogger sets the logger; the default discards.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithBreakpoints replaces the default breakpoint sets.
func WithBreakpoints(compacted, collapsed []string) Option {
	return func(c *Controller) {
		c.compacted = slices.Clone(compacted)
		c.collapsed = slices.Clone(collapsed)
	}
}

// New creates a controller. Defaults: expanded, docked left, not fixed,
// container fixed, not responsive, desktop tier.
func New(opts ...Option) *Controller {
	c := &Controller{
		id:             uuid.NewString(),
		state:          StateExpanded,
		placement:      PlacementLeft,
		containerFixed: true,
		tier:           TierDesktop,
		compacted:      DefaultCompactedBreakpoints(),
		collapsed:      DefaultCollapsedBreakpoints(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	c.log = c.log.With("sidebar_id", c.id, "tag", c.tag)
	if c.bus != nil {
		c.busSub = c.bus.Subscribe(c.onSignal)
	}
	return c
}

// OnChange registers fn to be called with the new flags after any mutation
// that changes them. Only one observer is kept.
func (c *Controller) OnChange(fn func(Flags)) {
	c.onChange = fn
}

// ID returns the controller's instance identifier.
func (c *Controller) ID() string { return c.id }

// Tag returns the bus tag, empty when the controller accepts every signal.
func (c *Controller) Tag() string { return c.tag }

// State returns the current visibility state.
func (c *Controller) State() State { return c.state }

// Placement returns the active side.
func (c *Controller) Placement() Placement { return c.placement }

// Fixed reports whether the sidebar is shown above the content.
func (c *Controller) Fixed() bool { return c.fixed }

// ContainerFixed reports whether the sidebar container is fixed.
func (c *Controller) ContainerFixed() bool { return c.containerFixed }

// Responsive reports whether the controller follows breakpoint changes.
func (c *Controller) Responsive() bool { return c.responsive }

// Tier returns the responsive regime that last applied.
func (c *Controller) Tier() Tier { return c.tier }

// Breakpoints returns copies of the compacted and collapsed sets.
func (c *Controller) Breakpoints() (compacted, collapsed []string) {
	return slices.Clone(c.compacted), slices.Clone(c.collapsed)
}

// Flags returns the rendering surface for the current state.
func (c *Controller) Flags() Flags {
	return Flags{
		Fixed:          c.fixed,
		ContainerFixed: c.containerFixed,
		Left:           c.placement == PlacementLeft,
		Right:          c.placement == PlacementRight,
		Start:          c.placement == PlacementStart,
		End:            c.placement == PlacementEnd,
		Expanded:       c.state == StateExpanded,
		Collapsed:      c.state == StateCollapsed,
		Compacted:      c.state == StateCompacted,
	}
}

// SetPlacement docks the sidebar to side.
func (c *Controller) SetPlacement(side Placement) {
	c.mutate(func() { c.placement = side })
}

// SetLeft places the sidebar on the left, or on the right when v is false.
func (c *Controller) SetLeft(v bool) {
	c.SetPlacement(pick(v, PlacementLeft, PlacementRight))
}

// SetRight places the sidebar on the right, or on the left when v is false.
func (c *Controller) SetRight(v bool) {
	c.SetPlacement(pick(v, PlacementRight, PlacementLeft))
}

// SetStart places the sidebar on the start edge, or the end edge when v is false.
func (c *Controller) SetStart(v bool) {
	c.SetPlacement(pick(v, PlacementStart, PlacementEnd))
}

// SetEnd places the sidebar on the end edge, or the start edge when v is false.
func (c *Controller) SetEnd(v bool) {
	c.SetPlacement(pick(v, PlacementEnd, PlacementStart))
}

// SetFixed sets whether the sidebar is shown above the content.
func (c *Controller) SetFixed(v bool) {
	c.mutate(func() { c.fixed = v })
}

// SetContainerFixed sets whether the sidebar container is fixed.
func (c *Controller) SetContainerFixed(v bool) {
	c.mutate(func() { c.containerFixed = v })
}

// SetState assigns state directly.
func (c *Controller) SetState(state State) {
	c.mutate(func() { c.state = state })
}

// Expand sets the state to expanded.
func (c *Controller) Expand() { c.SetState(StateExpanded) }

// Collapse sets the state to collapsed.
func (c *Controller) Collapse() { c.SetState(StateCollapsed) }

// Compact sets the state to compacted.
func (c *Controller) Compact() { c.SetState(StateCompacted) }

// Toggle opens a closed sidebar, or closes an expanded one: compacting when
// preferCompact is set, collapsing otherwise. A responsive sidebar in the
// mobile tier never compacts.
func (c *Controller) Toggle(preferCompact bool) {
	if c.responsive && c.tier == TierMobile {
		preferCompact = false
	}
	switch {
	case c.state.Closed():
		c.Expand()
	case preferCompact:
		c.Compact()
	default:
		c.Collapse()
	}
}

// SetBreakpoints replaces the compacted and collapsed breakpoint sets. The
// current state is not re-evaluated until the next breakpoint change.
func (c *Controller) SetBreakpoints(compacted, collapsed []string) {
	c.compacted = slices.Clone(compacted)
	c.collapsed = slices.Clone(collapsed)
}

// SetResponsive turns breakpoint tracking on or off. Setting the current
// value again is a no-op, so at most one feed subscription exists.
func (c *Controller) SetResponsive(enabled bool) {
	if c.responsive == enabled {
		return
	}
	c.responsive = enabled
	if enabled {
		if c.feed != nil && !c.closed {
			c.feedSub = c.feed.Subscribe(c.OnBreakpointChange)
		}
		c.log.Debug("responsive mode enabled")
		return
	}
	c.releaseFeed()
	c.log.Debug("responsive mode disabled")
}

// OnBreakpointChange applies the responsive rules for a move from prev to
// current. Both set checks run; when a name is in both sets the collapsed
// branch runs last and wins. An unclassified breakpoint expands the sidebar
// only while the viewport grows.
func (c *Controller) OnBreakpointChange(prev, current breakpoint.Breakpoint) {
	isCompacted := slices.Contains(c.compacted, current.Name)
	isCollapsed := slices.Contains(c.collapsed, current.Name)

	c.mutate(func() {
		if isCompacted {
			c.SetFixed(c.containerFixed)
			c.Compact()
			c.tier = TierTablet
		}
		if isCollapsed {
			c.SetFixed(true)
			c.Collapse()
			c.tier = TierMobile
		}
		if !isCompacted && !isCollapsed && prev.Width < current.Width {
			c.Expand()
			c.SetFixed(false)
			c.tier = TierDesktop
		}
	})

	c.log.With(
		"prev", prev.Name,
		"current", current.Name,
		"tier", c.tier.String(),
		"state", c.state.String(),
	).Debug("breakpoint changed")
}

// Close releases the feed and bus subscriptions. It is safe to call more
// than once.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.releaseFeed()
	if c.busSub != nil {
		c.busSub.Unsubscribe()
		c.busSub = nil
	}
}

func (c *Controller) releaseFeed() {
	if c.feedSub != nil {
		c.feedSub.Unsubscribe()
		c.feedSub = nil
	}
}

func (c *Controller) onSignal(sig Signal) {
	if c.tag != "" && c.tag != sig.Tag {
		return
	}
	switch sig.Kind {
	case SignalToggle:
		c.Toggle(sig.Compact)
	case SignalExpand:
		c.Expand()
	case SignalCollapse:
		c.Collapse()
	case SignalCompact:
		c.Compact()
	}
}

// mutate runs fn and notifies the observer once if the flags changed. Nested
// calls are folded into the outermost one.
func (c *Controller) mutate(fn func()) {
	if c.batching {
		fn()
		return
	}
	c.batching = true
	before := c.Flags()
	fn()
	c.batching = false
	after := c.Flags()
	if before == after {
		return
	}
	c.log.With("classes", after.Classes()).Debug("sidebar flags changed")
	if c.onChange != nil {
		c.onChange(after)
	}
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
