package sidebar

// State is the visibility of a sidebar.
type State int

const (
	StateExpanded State = iota
	StateCollapsed
	StateCompacted
)

var stateNames = map[State]string{
	StateExpanded:  "expanded",
	StateCollapsed: "collapsed",
	StateCompacted: "compacted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Closed reports whether the sidebar content is hidden or minimized.
func (s State) Closed() bool {
	return s == StateCollapsed || s == StateCompacted
}

// ParseState converts a state name into a State.
func ParseState(name string) (State, bool) {
	for state, n := range stateNames {
		if n == name {
			return state, true
		}
	}
	return StateExpanded, false
}

// Placement is the layout edge a sidebar is docked to. Left/Right are
// physical edges, Start/End follow the text direction.
type Placement int

const (
	PlacementLeft Placement = iota
	PlacementRight
	PlacementStart
	PlacementEnd
)

var placementNames = map[Placement]string{
	PlacementLeft:  "left",
	PlacementRight: "right",
	PlacementStart: "start",
	PlacementEnd:   "end",
}

func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePlacement converts a placement name into a Placement.
func ParsePlacement(name string) (Placement, bool) {
	for placement, n := range placementNames {
		if n == name {
			return placement, true
		}
	}
	return PlacementLeft, false
}

// Tier is the responsive regime that last applied.
type Tier int

const (
	TierDesktop Tier = iota
	TierTablet
	TierMobile
)

func (t Tier) String() string {
	switch t {
	case TierDesktop:
		return "desktop"
	case TierTablet:
		return "tablet"
	case TierMobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// Flags is the rendering surface of a sidebar: the boolean attributes a
// renderer turns into visual styling.
type Flags struct {
	Fixed          bool
	ContainerFixed bool
	Left           bool
	Right          bool
	Start          bool
	End            bool
	Expanded       bool
	Collapsed      bool
	Compacted      bool
}

// Classes lists the names of the flags that are set, in a stable order.
func (f Flags) Classes() []string {
	pairs := []struct {
		on   bool
		name string
	}{
		{f.Fixed, "fixed"},
		{f.ContainerFixed, "container-fixed"},
		{f.Left, "left"},
		{f.Right, "right"},
		{f.Start, "start"},
		{f.End, "end"},
		{f.Expanded, "expanded"},
		{f.Collapsed, "collapsed"},
		{f.Compacted, "compacted"},
	}
	classes := make([]string, 0, 4)
	for _, p := range pairs {
		if p.on {
			classes = append(classes, p.name)
		}
	}
	return classes
}

// DefaultCompactedBreakpoints are the breakpoints at which a responsive
// sidebar compacts.
func DefaultCompactedBreakpoints() []string {
	return []string{"xs", "is", "sm", "md", "lg"}
}

// DefaultCollapsedBreakpoints are the breakpoints at which a responsive
// sidebar collapses.
func DefaultCollapsedBreakpoints() []string {
	return []string{"xs", "is"}
}
