package layout

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/layoutkit/internal/sidebar"
)

var placementCycle = []sidebar.Placement{
	sidebar.PlacementLeft,
	sidebar.PlacementRight,
	sidebar.PlacementStart,
	sidebar.PlacementEnd,
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.feed.Observe(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if row, ok := m.rowAt(msg.X, msg.Y); ok {
				m.cursor = row
				m.activate()
			}
		}
		return m, nil

	case ConfigReloadedMsg:
		if msg.Config != nil {
			msg.Config.ApplyChanges(m.cfg, m.ctrl)
			m.cfg = msg.Config
			m.feed.SetTable(msg.Config.Table())
			m.menu = NewMenu(EntriesFromConfig(msg.Config.Menu))
			m.cursor = 0
			m.notice = "configuration reloaded"
			m.log.Info("configuration applied")
		}
		return m, waitForReload(m.reloads)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tag := m.ctrl.Tag()
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Toggle):
		m.bus.Toggle(tag, false)
	case key.Matches(msg, m.keys.ToggleCompact):
		m.bus.Toggle(tag, true)
	case key.Matches(msg, m.keys.Expand):
		m.bus.Expand(tag)
	case key.Matches(msg, m.keys.Collapse):
		m.bus.Collapse(tag)
	case key.Matches(msg, m.keys.Responsive):
		// takes effect at the next breakpoint change
		m.ctrl.SetResponsive(!m.ctrl.Responsive())
		m.notice = fmt.Sprintf("responsive: %v", m.ctrl.Responsive())
	case key.Matches(msg, m.keys.Placement):
		m.ctrl.SetPlacement(nextPlacement(m.ctrl.Placement()))
	case key.Matches(msg, m.keys.Fixed):
		m.ctrl.SetFixed(!m.ctrl.Fixed())
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Activate):
		m.activate()
	}

	return m, nil
}

// activate opens the item under the cursor. Opening a group also asks the
// sidebar to expand so the nested items are readable.
func (m *Model) activate() {
	item, ok := m.SelectedItem()
	if !ok {
		return
	}
	if !m.menu.HasChildren(item) {
		m.notice = fmt.Sprintf("selected %s", m.menu.Title(item))
		return
	}
	m.menu.SetOpen(item, !m.menu.Open(item))
	m.bus.Expand(m.ctrl.Tag())
}

// rowAt maps a screen cell to a visible menu row. The first row sits below
// the sidebar's top border.
func (m Model) rowAt(x, y int) (int, bool) {
	w := m.sidebarWidth()
	if w == 0 {
		return 0, false
	}
	left := 0
	if m.onRightEdge() {
		left = m.width - w
	}
	if x < left || x >= left+w {
		return 0, false
	}
	row := y - 1
	if row < 0 || row >= len(m.menu.Visible()) {
		return 0, false
	}
	return row, true
}

func nextPlacement(p sidebar.Placement) sidebar.Placement {
	for i, candidate := range placementCycle {
		if candidate == p {
			return placementCycle[(i+1)%len(placementCycle)]
		}
	}
	return sidebar.PlacementLeft
}
