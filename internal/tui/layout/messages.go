package layout

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/layoutkit/internal/config"
)

// ConfigReloadedMsg carries a configuration read after a file change.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// waitForReload blocks on the next configuration update.
func waitForReload(updates <-chan *config.Config) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}
