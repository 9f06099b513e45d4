package explore

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/Archenoth/project-explorer/pkg/explorer"
	"github.com/Archenoth/project-explorer/pkg/explorer/document"
)

// model drives the interactive explorer. Cursor and scroll positions are
// indexes into the visible slice, not document lines; the mapping back to
// document lines goes through VisibleLine.Index.
type model struct {
	ex      *explorer.Explorer
	rootDir string

	visible      []document.VisibleLine
	cursor       int
	scrollOffset int
	width        int
	height       int

	isLoading bool
	status    string
	err       error

	searching     bool
	searchQuery   string
	searchMatches []int
	searchIndex   int

	// pendingKey holds the first key of a two-key chord (g, z).
	pendingKey string

	help help.Model
}

func newModel(ex *explorer.Explorer, dir string) *model {
	return &model{
		ex:        ex,
		rootDir:   dir,
		isLoading: true,
		help:      help.New(),
	}
}

// refresh re-reads the visible window from the explorer and clamps the
// cursor. keepLine is the document line the cursor should stay on; if it
// is hidden by a fold, the cursor lands on the nearest visible line above.
func (m *model) refresh(keepLine int) {
	m.visible = m.ex.VisibleLines()
	if len(m.visible) == 0 {
		m.cursor = 0
		m.scrollOffset = 0
		return
	}
	m.cursor = 0
	for i, vl := range m.visible {
		if vl.Index > keepLine {
			break
		}
		m.cursor = i
	}
	m.ensureCursorVisible()
}

// cursorLine returns the document line under the cursor.
func (m *model) cursorLine() int {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return 0
	}
	return m.visible[m.cursor].Index
}

// currentPath resolves the filesystem path under the cursor.
func (m *model) currentPath() (string, bool) {
	if len(m.visible) == 0 {
		return "", false
	}
	path, err := m.ex.ResolvePath(m.cursorLine())
	if err != nil {
		return "", false
	}
	return path, true
}

// viewportHeight is the number of tree rows that fit between the title
// and the status bar.
func (m *model) viewportHeight() int {
	h := m.height - 3
	if m.help.ShowAll {
		h -= 5
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) ensureCursorVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+vh {
		m.scrollOffset = m.cursor - vh + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

func (m *model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}
