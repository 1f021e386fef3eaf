package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/layoutkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/layoutkit/internal/ports"
)

// fakeFeed emits arbitrary breakpoint pairs to its subscribers.
type fakeFeed struct {
	handlers map[int]breakpoint.Handler
	nextID   int
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{handlers: make(map[int]breakpoint.Handler)}
}

func (f *fakeFeed) Subscribe(handler breakpoint.Handler) ports.Subscription {
	f.nextID++
	id := f.nextID
	f.handlers[id] = handler
	return ports.NewSubscription(func() { delete(f.handlers, id) })
}

func (f *fakeFeed) emit(prevName string, prevWidth int, curName string, curWidth int) {
	prev := breakpoint.Breakpoint{Name: prevName, Width: prevWidth}
	cur := breakpoint.Breakpoint{Name: curName, Width: curWidth}
	for _, h := range f.handlers {
		h(prev, cur)
	}
}

func countChanges(c *Controller) *int {
	n := 0
	c.OnChange(func(Flags) { n++ })
	return &n
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	c := New()

	assert.Equal(t, StateExpanded, c.State())
	assert.Equal(t, PlacementLeft, c.Placement())
	assert.False(t, c.Fixed())
	assert.True(t, c.ContainerFixed())
	assert.False(t, c.Responsive())
	assert.Equal(t, TierDesktop, c.Tier())
	assert.NotEmpty(t, c.ID())

	compacted, collapsed := c.Breakpoints()
	assert.Equal(t, []string{"xs", "is", "sm", "md", "lg"}, compacted)
	assert.Equal(t, []string{"xs", "is"}, collapsed)
}

func TestNewAppliesOptions(t *testing.T) {
	t.Parallel()

	c := New(
		WithTag("main"),
		WithState(StateCompacted),
		WithPlacement(PlacementEnd),
		WithBreakpoints([]string{"sm"}, []string{"xs"}),
	)

	assert.Equal(t, "main", c.Tag())
	assert.Equal(t, StateCompacted, c.State())
	assert.Equal(t, PlacementEnd, c.Placement())
	compacted, collapsed := c.Breakpoints()
	assert.Equal(t, []string{"sm"}, compacted)
	assert.Equal(t, []string{"xs"}, collapsed)
}

func TestSetPlacementActivatesExactlyOneSide(t *testing.T) {
	t.Parallel()

	for _, side := range []Placement{PlacementLeft, PlacementRight, PlacementStart, PlacementEnd} {
		c := New(WithPlacement(PlacementRight))
		c.SetPlacement(side)

		flags := c.Flags()
		active := map[Placement]bool{
			PlacementLeft:  flags.Left,
			PlacementRight: flags.Right,
			PlacementStart: flags.Start,
			PlacementEnd:   flags.End,
		}
		count := 0
		for _, on := range active {
			if on {
				count++
			}
		}
		assert.Equal(t, 1, count, side.String())
		assert.True(t, active[side], side.String())
	}
}

func TestBooleanPlacementSetters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		set  func(*Controller)
		want Placement
	}{
		{"left true", func(c *Controller) { c.SetLeft(true) }, PlacementLeft},
		{"left false", func(c *Controller) { c.SetLeft(false) }, PlacementRight},
		{"right true", func(c *Controller) { c.SetRight(true) }, PlacementRight},
		{"right false", func(c *Controller) { c.SetRight(false) }, PlacementLeft},
		{"start true", func(c *Controller) { c.SetStart(true) }, PlacementStart},
		{"start false", func(c *Controller) { c.SetStart(false) }, PlacementEnd},
		{"end true", func(c *Controller) { c.SetEnd(true) }, PlacementEnd},
		{"end false", func(c *Controller) { c.SetEnd(false) }, PlacementStart},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := New()
			tc.set(c)
			require.Equal(t, tc.want, c.Placement())
		})
	}
}

func TestFixedSettersAreIndependentOfPlacement(t *testing.T) {
	t.Parallel()

	c := New()
	c.SetFixed(true)
	c.SetContainerFixed(false)
	c.SetPlacement(PlacementEnd)

	assert.True(t, c.Fixed())
	assert.False(t, c.ContainerFixed())
	assert.Equal(t, PlacementEnd, c.Placement())
}

func TestConvenienceStateCalls(t *testing.T) {
	t.Parallel()

	c := New()
	c.Collapse()
	assert.Equal(t, StateCollapsed, c.State())
	c.Compact()
	assert.Equal(t, StateCompacted, c.State())
	c.Expand()
	assert.Equal(t, StateExpanded, c.State())
	c.SetState(StateCollapsed)
	assert.True(t, c.Flags().Collapsed)
}

func TestToggle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from          State
		preferCompact bool
		want          State
	}{
		{StateExpanded, false, StateCollapsed},
		{StateExpanded, true, StateCompacted},
		{StateCollapsed, false, StateExpanded},
		{StateCollapsed, true, StateExpanded},
		{StateCompacted, false, StateExpanded},
		{StateCompacted, true, StateExpanded},
	}

	for _, tc := range cases {
		c := New(WithState(tc.from))
		c.Toggle(tc.preferCompact)
		assert.Equal(t, tc.want, c.State(), "from %s compact=%v", tc.from, tc.preferCompact)
	}
}

func TestToggleInMobileTierNeverCompacts(t *testing.T) {
	t.Parallel()

	feed := newFakeFeed()
	c := New(WithFeed(feed), WithBreakpoints([]string{"sm", "md"}, []string{"xs"}))
	c.SetResponsive(true)

	feed.emit("sm", 60, "xs", 0)
	require.Equal(t, TierMobile, c.Tier())
	c.Expand()

	c.Toggle(true)
	assert.Equal(t, StateCollapsed, c.State())
}

func TestBreakpointChangeClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		containerFixed bool
		prevName       string
		prevWidth      int
		curName        string
		curWidth       int
		startState     State
		wantState      State
		wantFixed      bool
		wantTier       Tier
	}{
		{
			name: "compacted breakpoint uses container fixed", containerFixed: false,
			prevName: "lg", prevWidth: 1200, curName: "sm", curWidth: 576,
			startState: StateExpanded, wantState: StateCompacted, wantFixed: false, wantTier: TierTablet,
		},
		{
			name: "compacted breakpoint with fixed container", containerFixed: true,
			prevName: "lg", prevWidth: 1200, curName: "sm", curWidth: 576,
			startState: StateExpanded, wantState: StateCompacted, wantFixed: true, wantTier: TierTablet,
		},
		{
			name: "collapsed breakpoint forces fixed", containerFixed: false,
			prevName: "sm", prevWidth: 576, curName: "xs", curWidth: 0,
			startState: StateExpanded, wantState: StateCollapsed, wantFixed: true, wantTier: TierMobile,
		},
		{
			name: "unclassified while growing expands", containerFixed: true,
			prevName: "md", prevWidth: 800, curName: "lg", curWidth: 1200,
			startState: StateCompacted, wantState: StateExpanded, wantFixed: false, wantTier: TierDesktop,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			feed := newFakeFeed()
			c := New(
				WithFeed(feed),
				WithState(tc.startState),
				WithBreakpoints([]string{"sm", "md"}, []string{"xs"}),
			)
			c.SetContainerFixed(tc.containerFixed)
			c.SetFixed(true)
			c.SetResponsive(true)

			feed.emit(tc.prevName, tc.prevWidth, tc.curName, tc.curWidth)

			assert.Equal(t, tc.wantState, c.State())
			assert.Equal(t, tc.wantFixed, c.Fixed())
			assert.Equal(t, tc.wantTier, c.Tier())
		})
	}
}

func TestUnclassifiedWhileShrinkingChangesNothing(t *testing.T) {
	t.Parallel()

	feed := newFakeFeed()
	c := New(WithFeed(feed), WithState(StateCompacted), WithBreakpoints([]string{"sm", "md"}, []string{"xs"}))
	c.SetFixed(true)
	c.SetResponsive(true)
	changes := countChanges(c)

	feed.emit("xl", 1200, "lg", 800)
	feed.emit("unknown", 0, "bogus", 0)

	assert.Equal(t, StateCompacted, c.State())
	assert.True(t, c.Fixed())
	assert.Equal(t, TierDesktop, c.Tier())
	assert.Zero(t, *changes)
}

func TestOverlappingBreakpointCollapsedWins(t *testing.T) {
	t.Parallel()

	feed := newFakeFeed()
	c := New(WithFeed(feed), WithBreakpoints([]string{"sm", "xs"}, []string{"xs"}))
	c.SetContainerFixed(false)
	c.SetResponsive(true)

	feed.emit("sm", 60, "xs", 0)

	assert.Equal(t, StateCollapsed, c.State())
	assert.True(t, c.Fixed())
	assert.Equal(t, TierMobile, c.Tier())
}

func TestSetResponsiveIsIdempotent(t *testing.T) {
	t.Parallel()

	feed := newFakeFeed()
	c := New(WithFeed(feed), WithBreakpoints([]string{"sm"}, []string{"xs"}))
	c.SetResponsive(true)
	c.SetResponsive(true)
	require.Len(t, feed.handlers, 1)

	changes := countChanges(c)
	feed.emit("lg", 100, "sm", 60)

	assert.Equal(t, 1, *changes)
	assert.Equal(t, StateCompacted, c.State())
}

func TestSetResponsiveFalseStopsUpdates(t *testing.T) {
	t.Parallel()

	feed := newFakeFeed()
	c := New(WithFeed(feed), WithBreakpoints([]string{"sm"}, []string{"xs"}))
	c.SetResponsive(true)
	c.SetResponsive(false)
	c.SetResponsive(false)

	feed.emit("lg", 100, "xs", 0)

	assert.Equal(t, StateExpanded, c.State())
	assert.Empty(t, feed.handlers)
}

func TestFixedNotRestoredWhenResponsiveDisabled(t *testing.T) {
	t.Parallel()

	feed := newFakeFeed()
	c := New(WithFeed(feed))
	c.SetResponsive(true)
	feed.emit("sm", 60, "xs", 0)
	require.True(t, c.Fixed())

	c.SetResponsive(false)

	assert.True(t, c.Fixed())
	assert.Equal(t, TierMobile, c.Tier())
	c.Expand()
	c.Toggle(true)
	assert.Equal(t, StateCompacted, c.State(), "mobile override applies only while responsive")
}

func TestResponsiveWithMediaFeed(t *testing.T) {
	t.Parallel()

	feed := breakpoint.NewMediaFeed(breakpoint.DefaultTable())
	c := New(WithFeed(feed))
	c.SetResponsive(true)

	feed.Observe(150)
	assert.Equal(t, StateExpanded, c.State(), "first event grows from unknown")
	assert.Equal(t, TierDesktop, c.Tier())

	feed.Observe(70)
	assert.Equal(t, StateCompacted, c.State())
	assert.Equal(t, TierTablet, c.Tier())

	feed.Observe(20)
	assert.Equal(t, StateCollapsed, c.State())
	assert.Equal(t, TierMobile, c.Tier())

	feed.Observe(130)
	assert.Equal(t, StateExpanded, c.State())
	assert.False(t, c.Fixed())
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	t.Parallel()

	feed := newFakeFeed()
	bus := NewBus(nil)
	c := New(WithFeed(feed), WithBus(bus))
	c.SetResponsive(true)
	require.Len(t, feed.handlers, 1)
	require.Equal(t, 1, bus.Subscribers())

	c.Close()
	c.Close()

	assert.Empty(t, feed.handlers)
	assert.Zero(t, bus.Subscribers())

	bus.Collapse("")
	assert.Equal(t, StateExpanded, c.State())

	c.SetResponsive(false)
	c.SetResponsive(true)
	assert.Empty(t, feed.handlers, "closed controller does not resubscribe")
}

func TestOnChangeReportsFlagsOncePerMutation(t *testing.T) {
	t.Parallel()

	c := New()
	var seen []Flags
	c.OnChange(func(f Flags) { seen = append(seen, f) })

	c.Collapse()
	c.Collapse()
	c.SetPlacement(PlacementRight)

	require.Len(t, seen, 2)
	assert.True(t, seen[0].Collapsed)
	assert.True(t, seen[1].Right)
	assert.False(t, seen[1].Left)
}

func TestFlagsClasses(t *testing.T) {
	t.Parallel()

	c := New(WithPlacement(PlacementStart), WithState(StateCompacted))
	c.SetFixed(true)

	assert.Equal(t, []string{"fixed", "container-fixed", "start", "compacted"}, c.Flags().Classes())
}

func TestParseNames(t *testing.T) {
	t.Parallel()

	state, ok := ParseState("compacted")
	require.True(t, ok)
	assert.Equal(t, StateCompacted, state)
	_, ok = ParseState("hidden")
	assert.False(t, ok)

	placement, ok := ParsePlacement("end")
	require.True(t, ok)
	assert.Equal(t, PlacementEnd, placement)
	_, ok = ParsePlacement("top")
	assert.False(t, ok)

	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, "mobile", TierMobile.String())
}
