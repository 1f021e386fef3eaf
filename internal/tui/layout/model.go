// Package layout is a bubbletea program showing a responsive sidebar next to
// a content pane.
package layout

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/layoutkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/layoutkit/internal/config"
	"github.com/alexisbeaulieu97/layoutkit/internal/logger"
	"github.com/alexisbeaulieu97/layoutkit/internal/sidebar"
	"github.com/alexisbeaulieu97/layoutkit/internal/theme"
)

// Deps are the collaborators a Model drives.
type Deps struct {
	Controller *sidebar.Controller
	Feed       *breakpoint.MediaFeed
	Bus        *sidebar.Bus
	Menu       *Menu
	Theme      theme.Theme
	Logger     *logger.Logger
	// Config is the configuration the controller was built from. Reloads
	// are applied as changes against it.
	Config *config.Config
	// Reloads, when set, delivers configurations from a file watcher.
	Reloads <-chan *config.Config
}

// Model is the main layout model
type Model struct {
	ctrl  *sidebar.Controller
	feed  *breakpoint.MediaFeed
	bus   *sidebar.Bus
	menu  *Menu
	theme theme.Theme
	log   *logger.Logger

	keys     KeyMap
	help     help.Model
	showHelp bool

	cfg     *config.Config
	reloads <-chan *config.Config
	cursor  int
	notice  string

	// Dimensions
	width  int
	height int
}

// NewModel creates a new layout model
func NewModel(deps Deps) Model {
	menu := deps.Menu
	if menu == nil {
		menu = NewMenu(nil)
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	return Model{
		ctrl:    deps.Controller,
		feed:    deps.Feed,
		bus:     deps.Bus,
		menu:    menu,
		theme:   deps.Theme,
		log:     log.With("component", "layout"),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		cfg:     deps.Config,
		reloads: deps.Reloads,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return waitForReload(m.reloads)
}

// Controller exposes the sidebar controller.
func (m Model) Controller() *sidebar.Controller {
	return m.ctrl
}

// Menu exposes the sidebar menu.
func (m Model) Menu() *Menu {
	return m.menu
}

// Cursor returns the index of the selected item within the visible items.
func (m Model) Cursor() int {
	return m.cursor
}

// SelectedItem returns the menu index under the cursor.
func (m Model) SelectedItem() (int, bool) {
	visible := m.menu.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return 0, false
	}
	return visible[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	n := len(m.menu.Visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

// sidebarWidth is the outer width of the sidebar for the current state.
func (m Model) sidebarWidth() int {
	switch m.ctrl.State() {
	case sidebar.StateExpanded:
		return m.theme.Sidebar.ExpandedWidth
	case sidebar.StateCompacted:
		return m.theme.Sidebar.CompactedWidth
	default:
		return 0
	}
}

// onRightEdge reports whether the sidebar is drawn on the right. Start and
// End follow a left-to-right text direction.
func (m Model) onRightEdge() bool {
	p := m.ctrl.Placement()
	return p == sidebar.PlacementRight || p == sidebar.PlacementEnd
}
