package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/layoutkit/internal/sidebar"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	styles := m.theme.Styles()
	footer := lipgloss.JoinVertical(lipgloss.Left, m.renderStatusBar(), m.help.View(m.keys))
	bodyHeight := m.height - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	side := m.renderSidebar(bodyHeight)
	contentWidth := m.width - lipgloss.Width(side)
	if contentWidth < 0 {
		contentWidth = 0
	}
	content := styles.Content.
		Width(contentWidth).
		Height(bodyHeight).
		Render(m.renderContent())

	var body string
	switch {
	case side == "":
		body = content
	case m.onRightEdge():
		body = lipgloss.JoinHorizontal(lipgloss.Top, content, side)
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, content)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// renderSidebar draws the sidebar box, or nothing when collapsed.
func (m Model) renderSidebar(height int) string {
	outer := m.sidebarWidth()
	if outer == 0 {
		return ""
	}
	styles := m.theme.Styles()
	inner := outer - 2

	compact := m.ctrl.State() == sidebar.StateCompacted
	visible := m.menu.Visible()
	rows := make([]string, 0, len(visible))
	for i, item := range visible {
		rows = append(rows, m.renderItem(item, i == m.cursor, compact, inner))
	}

	box := styles.Sidebar
	if m.ctrl.Fixed() {
		box = styles.FixedSidebar
	}
	return box.
		Width(inner).
		Height(height - 2).
		Render(strings.Join(rows, "\n"))
}

func (m Model) renderItem(item int, selected, compact bool, width int) string {
	styles := m.theme.Styles()
	title := m.menu.Title(item)

	var label string
	if compact {
		label = firstRune(title)
		if m.menu.HasChildren(item) {
			label += styles.GroupMarker.Render("›")
		}
	} else {
		marker := " "
		if m.menu.HasChildren(item) {
			marker = "▸"
			if m.menu.Open(item) {
				marker = "▾"
			}
		}
		indent := strings.Repeat("  ", m.menu.Depth(item))
		label = indent + styles.GroupMarker.Render(marker) + " " + title
	}

	style := styles.Item
	if selected {
		style = styles.SelectedItem
	}
	return style.Width(width).MaxWidth(width).Render(label)
}

func (m Model) renderContent() string {
	var b strings.Builder
	current := m.feed.Current()
	fmt.Fprintf(&b, "Width      %d columns\n", m.width)
	fmt.Fprintf(&b, "Breakpoint %s (>= %d)\n", current.Name, current.Width)
	fmt.Fprintf(&b, "Tier       %s\n", m.ctrl.Tier())
	fmt.Fprintf(&b, "State      %s\n", m.ctrl.State())
	fmt.Fprintf(&b, "Placement  %s\n", m.ctrl.Placement())
	fmt.Fprintf(&b, "Responsive %v\n", m.ctrl.Responsive())
	if item, ok := m.SelectedItem(); ok {
		fmt.Fprintf(&b, "\nSelected   %s\n", m.menu.Title(item))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Styles().Warning.Render(m.notice))
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	classes := strings.Join(m.ctrl.Flags().Classes(), " ")
	tag := m.ctrl.Tag()
	if tag == "" {
		tag = "*"
	}
	return m.theme.Styles().StatusBar.
		Width(m.width).
		Render(fmt.Sprintf("sidebar[%s] %s", tag, classes))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return "·"
}
