package config

import (
	"slices"

	"github.com/alexisbeaulieu97/layoutkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/layoutkit/internal/sidebar"
)

// Config represents the full layoutkit configuration document.
type Config struct {
	Sidebar     SidebarConfig           `yaml:"sidebar"`
	Breakpoints []breakpoint.Breakpoint `yaml:"breakpoints,omitempty" validate:"omitempty,dive"`
	Menu        []MenuItem              `yaml:"menu,omitempty" validate:"omitempty,dive"`
	Log         LogConfig               `yaml:"log,omitempty"`
}

// SidebarConfig holds the inputs of a single sidebar.
type SidebarConfig struct {
	Tag                  string   `yaml:"tag,omitempty" validate:"omitempty,max=64"`
	State                string   `yaml:"state,omitempty" validate:"oneof=expanded collapsed compacted"`
	Placement            string   `yaml:"placement,omitempty" validate:"oneof=left right start end"`
	Fixed                bool     `yaml:"fixed,omitempty"`
	ContainerFixed       *bool    `yaml:"container_fixed,omitempty"`
	Responsive           bool     `yaml:"responsive,omitempty"`
	CompactedBreakpoints []string `yaml:"compacted_breakpoints" validate:"dive,breakpoint_name"`
	CollapsedBreakpoints []string `yaml:"collapsed_breakpoints" validate:"dive,breakpoint_name"`
}

// MenuItem is an entry of the sidebar menu. Items with children open a
// nested group.
type MenuItem struct {
	Title    string     `yaml:"title" validate:"required,max=64"`
	Children []MenuItem `yaml:"children,omitempty" validate:"omitempty,dive"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
	File          string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Sidebar.State == "" {
		cfg.Sidebar.State = sidebar.StateExpanded.String()
	}
	if cfg.Sidebar.Placement == "" {
		cfg.Sidebar.Placement = sidebar.PlacementLeft.String()
	}
	if cfg.Sidebar.ContainerFixed == nil {
		containerFixed := true
		cfg.Sidebar.ContainerFixed = &containerFixed
	}
	// Default sets only name breakpoints the table defines; names written by
	// the user are checked by ValidateConfig instead.
	table := cfg.Table()
	if cfg.Sidebar.CompactedBreakpoints == nil {
		cfg.Sidebar.CompactedBreakpoints = knownNames(table, sidebar.DefaultCompactedBreakpoints())
	}
	if cfg.Sidebar.CollapsedBreakpoints == nil {
		cfg.Sidebar.CollapsedBreakpoints = knownNames(table, sidebar.DefaultCollapsedBreakpoints())
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func knownNames(table breakpoint.Table, names []string) []string {
	known := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := table.ByName(name); ok {
			known = append(known, name)
		}
	}
	return known
}

// Table returns the configured breakpoint table, or the default one.
func (c *Config) Table() breakpoint.Table {
	if len(c.Breakpoints) == 0 {
		return breakpoint.DefaultTable()
	}
	return breakpoint.NewTable(c.Breakpoints...)
}

// ControllerOptions returns construction options for a controller, including
// the initial state, which is only honoured at creation.
func (c *Config) ControllerOptions() []sidebar.Option {
	state, _ := sidebar.ParseState(c.Sidebar.State)
	placement, _ := sidebar.ParsePlacement(c.Sidebar.Placement)
	return []sidebar.Option{
		sidebar.WithTag(c.Sidebar.Tag),
		sidebar.WithState(state),
		sidebar.WithPlacement(placement),
		sidebar.WithBreakpoints(c.Sidebar.CompactedBreakpoints, c.Sidebar.CollapsedBreakpoints),
	}
}

// Apply pushes the runtime inputs onto an existing controller: placement,
// fixed flags, breakpoint sets and responsive mode. State is left alone so a
// reload does not undo the user's toggles.
func (c *Config) Apply(ctrl *sidebar.Controller) {
	placement, _ := sidebar.ParsePlacement(c.Sidebar.Placement)
	ctrl.SetPlacement(placement)
	ctrl.SetContainerFixed(containerFixed(c.Sidebar))
	ctrl.SetFixed(c.Sidebar.Fixed)
	ctrl.SetBreakpoints(c.Sidebar.CompactedBreakpoints, c.Sidebar.CollapsedBreakpoints)
	ctrl.SetResponsive(c.Sidebar.Responsive)
}

// ApplyChanges pushes only the inputs that differ from prev, so values the
// responsive rules forced (such as fixed in the mobile tier) survive a reload
// that did not touch them. A nil prev applies everything.
func (c *Config) ApplyChanges(prev *Config, ctrl *sidebar.Controller) {
	if prev == nil {
		c.Apply(ctrl)
		return
	}
	next, old := c.Sidebar, prev.Sidebar

	if next.Placement != old.Placement {
		placement, _ := sidebar.ParsePlacement(next.Placement)
		ctrl.SetPlacement(placement)
	}
	if containerFixed(next) != containerFixed(old) {
		ctrl.SetContainerFixed(containerFixed(next))
	}
	if next.Fixed != old.Fixed {
		ctrl.SetFixed(next.Fixed)
	}
	if !slices.Equal(next.CompactedBreakpoints, old.CompactedBreakpoints) ||
		!slices.Equal(next.CollapsedBreakpoints, old.CollapsedBreakpoints) {
		ctrl.SetBreakpoints(next.CompactedBreakpoints, next.CollapsedBreakpoints)
	}
	if next.Responsive != old.Responsive {
		ctrl.SetResponsive(next.Responsive)
	}
}

func containerFixed(s SidebarConfig) bool {
	return s.ContainerFixed == nil || *s.ContainerFixed
}
