// Package theme holds the colour, border and size tokens used to draw a
// sidebar layout.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by the layout.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Neutral ColourSet
	Warning ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// SidebarMetrics are the sidebar widths, in columns, for each state.
// A collapsed sidebar takes no space.
type SidebarMetrics struct {
	ExpandedWidth  int
	CompactedWidth int
}

// Theme represents the styling theme for the layout.
type Theme struct {
	Palette Palette
	Borders BorderSet
	Sidebar SidebarMetrics
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Theme{
		Palette: Palette{
			Primary: ColourSet{
				Base:     ac("#3b82f6", "#60a5fa"),
				OnBase:   ac("#f8fafc", "#0b1120"),
				Muted:    ac("#2563eb", "#1d4ed8"),
				Contrast: ac("#facc15", "#ca8a04"),
			},
			Surface: ColourSet{
				Base:     ac("#f9fafb", "#111827"),
				OnBase:   ac("#111827", "#f9fafb"),
				Muted:    ac("#e2e8f0", "#1f2937"),
				Contrast: ac("#3b82f6", "#60a5fa"),
			},
			Neutral: ColourSet{
				Base:     ac("#64748b", "#94a3b8"),
				OnBase:   ac("#f1f5f9", "#0f172a"),
				Muted:    ac("#475569", "#334155"),
				Contrast: ac("#f8fafc", "#f8fafc"),
			},
			Warning: ColourSet{
				Base:     ac("#eab308", "#facc15"),
				OnBase:   ac("#422006", "#422006"),
				Muted:    ac("#ca8a04", "#a16207"),
				Contrast: ac("#111827", "#111827"),
			},
		},
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Sidebar: SidebarMetrics{
			ExpandedWidth:  28,
			CompactedWidth: 6,
		},
	}
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Sidebar      lipgloss.Style
	FixedSidebar lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	GroupMarker  lipgloss.Style
	Content      lipgloss.Style
	StatusBar    lipgloss.Style
	Warning      lipgloss.Style
}

// Styles derives the layout styles.
func (t Theme) Styles() Styles {
	p := t.Palette
	sidebar := lipgloss.NewStyle().
		Background(p.Surface.Muted).
		Foreground(p.Surface.OnBase).
		BorderStyle(t.Borders.Normal).
		BorderForeground(p.Neutral.Muted)

	return Styles{
		Sidebar: sidebar,
		FixedSidebar: sidebar.
			BorderStyle(t.Borders.Thick).
			BorderForeground(p.Primary.Muted),
		Item: lipgloss.NewStyle().
			Foreground(p.Surface.OnBase).
			PaddingLeft(1),
		SelectedItem: lipgloss.NewStyle().
			Foreground(p.Primary.OnBase).
			Background(p.Primary.Base).
			Bold(true).
			PaddingLeft(1),
		GroupMarker: lipgloss.NewStyle().
			Foreground(p.Primary.Contrast),
		Content: lipgloss.NewStyle().
			Padding(1, 2),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.Neutral.OnBase).
			Background(p.Neutral.Base).
			Padding(0, 1),
		Warning: lipgloss.NewStyle().
			Foreground(p.Warning.Base).
			Bold(true),
	}
}
