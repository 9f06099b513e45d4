package explore

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Archenoth/project-explorer/pkg/explorer"
)

// Run starts the interactive tree explorer TUI rooted at dir.
func Run(ex *explorer.Explorer, dir string) error {
	m := newModel(ex, dir)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
