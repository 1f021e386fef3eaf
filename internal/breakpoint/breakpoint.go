// Package breakpoint classifies terminal widths into named breakpoints and
// publishes breakpoint changes to subscribers.
package breakpoint

import (
	"sort"
)

// Breakpoint is a named width threshold measured in terminal columns.
type Breakpoint struct {
	Name  string `yaml:"name" validate:"required,breakpoint_name"`
	Width int    `yaml:"width" validate:"gte=0"`
}

// UnknownName is reported before any width has been observed.
const UnknownName = "unknown"

// Unknown is the breakpoint returned for widths no table entry covers.
var Unknown = Breakpoint{Name: UnknownName, Width: 0}

// Default breakpoint names, smallest first.
const (
	XS  = "xs"
	IS  = "is"
	SM  = "sm"
	MD  = "md"
	LG  = "lg"
	XL  = "xl"
	XXL = "xxl"
)

// Table is an immutable list of breakpoints ordered by ascending width.
type Table struct {
	points []Breakpoint
}

// NewTable builds a table from points in any order. Later duplicates of a
// name replace earlier ones.
func NewTable(points ...Breakpoint) Table {
	byName := make(map[string]int, len(points))
	sorted := make([]Breakpoint, 0, len(points))
	for _, p := range points {
		if idx, ok := byName[p.Name]; ok {
			sorted[idx] = p
			continue
		}
		byName[p.Name] = len(sorted)
		sorted = append(sorted, p)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Width < sorted[j].Width
	})
	return Table{points: sorted}
}

// DefaultTable returns the column thresholds used when no table is configured.
func DefaultTable() Table {
	return NewTable(
		Breakpoint{Name: XS, Width: 0},
		Breakpoint{Name: IS, Width: 40},
		Breakpoint{Name: SM, Width: 60},
		Breakpoint{Name: MD, Width: 80},
		Breakpoint{Name: LG, Width: 100},
		Breakpoint{Name: XL, Width: 120},
		Breakpoint{Name: XXL, Width: 140},
	)
}

// ByWidth returns the breakpoint covering width: the entry whose threshold is
// <= width and whose successor's threshold is > width.
func (t Table) ByWidth(width int) Breakpoint {
	for i, p := range t.points {
		if width < p.Width {
			continue
		}
		if i+1 < len(t.points) && width >= t.points[i+1].Width {
			continue
		}
		return p
	}
	return Unknown
}

// ByName looks a breakpoint up by name.
func (t Table) ByName(name string) (Breakpoint, bool) {
	for _, p := range t.points {
		if p.Name == name {
			return p, true
		}
	}
	return Breakpoint{}, false
}

// Names lists breakpoint names in ascending width order.
func (t Table) Names() []string {
	names := make([]string, len(t.points))
	for i, p := range t.points {
		names[i] = p.Name
	}
	return names
}

// Breakpoints returns a copy of the ordered entries.
func (t Table) Breakpoints() []Breakpoint {
	return append([]Breakpoint(nil), t.points...)
}

// Len reports the number of breakpoints.
func (t Table) Len() int {
	return len(t.points)
}
