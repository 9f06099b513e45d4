package explore

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type builtMsg struct {
	err error
}

func (m *model) Init() tea.Cmd {
	return m.buildCmd()
}

// buildCmd performs the initial collection off the update loop.
func (m *model) buildCmd() tea.Cmd {
	return func() tea.Msg {
		return builtMsg{err: m.ex.Build(m.rootDir)}
	}
}

// rebuildCmd re-collects the current root. Fold state and cursor are
// restored by the explorer once the fresh document is installed.
func (m *model) rebuildCmd() tea.Cmd {
	return func() tea.Msg {
		return builtMsg{err: m.ex.Rebuild()}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureCursorVisible()
		return m, nil

	case builtMsg:
		m.isLoading = false
		m.err = msg.err
		if msg.err == nil {
			m.refresh(m.ex.Cursor())
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help.ShowAll && !key.Matches(msg, keys.Help) {
		m.help.ShowAll = false
		return m, nil
	}

	if m.pendingKey != "" {
		return m.updateChord(msg)
	}

	// While a build command is in flight only quitting is allowed; every
	// other key reads or mutates explorer state the build is replacing.
	if m.isLoading {
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	m.status = ""

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.ensureCursorVisible()

	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, keys.Top):
		m.moveCursor(-len(m.visible))

	case key.Matches(msg, keys.Bottom):
		m.moveCursor(len(m.visible))

	case key.Matches(msg, keys.HalfUp):
		m.moveCursor(-m.viewportHeight() / 2)

	case key.Matches(msg, keys.HalfDown):
		m.moveCursor(m.viewportHeight() / 2)

	case key.Matches(msg, keys.Toggle):
		m.toggleFold()

	case key.Matches(msg, keys.Open):
		m.unfold(false)

	case key.Matches(msg, keys.OpenRec):
		m.unfold(true)

	case key.Matches(msg, keys.Close):
		m.fold()

	case key.Matches(msg, keys.OpenAll):
		m.ex.UnfoldAll()
		m.refresh(m.cursorLine())

	case key.Matches(msg, keys.CloseAll):
		m.foldAll()

	case key.Matches(msg, keys.Search):
		m.searching = true
		m.searchQuery = ""

	case key.Matches(msg, keys.Next):
		m.cycleMatch(1)

	case key.Matches(msg, keys.Prev):
		m.cycleMatch(-1)

	case key.Matches(msg, keys.Yank):
		m.yank()

	case key.Matches(msg, keys.Refresh):
		m.isLoading = true
		m.status = "refreshing..."
		m.ex.SetCursor(m.cursorLine())
		return m, m.rebuildCmd()

	default:
		switch msg.String() {
		case "g", "z":
			m.pendingKey = msg.String()
		}
	}

	return m, nil
}

// updateChord finishes a two-key sequence started by g or z.
func (m *model) updateChord(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chord := m.pendingKey + msg.String()
	m.pendingKey = ""

	switch chord {
	case "gg":
		m.moveCursor(-len(m.visible))
	case "za":
		m.toggleFold()
	case "zo":
		m.unfold(false)
	case "zO":
		m.unfold(true)
	case "zc":
		m.fold()
	case "zR":
		m.ex.UnfoldAll()
		m.refresh(m.cursorLine())
	case "zM":
		m.foldAll()
	}

	return m, nil
}

func (m *model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.searching = false
		m.searchQuery = ""
		m.searchMatches = nil
	case "enter":
		m.searching = false
		m.runSearch()
	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.searchQuery += string(msg.Runes)
		}
	}
	return m, nil
}

func (m *model) runSearch() {
	m.searchMatches = nil
	if m.searchQuery == "" {
		return
	}
	needle := strings.ToLower(m.searchQuery)
	for i, vl := range m.visible {
		if strings.Contains(strings.ToLower(vl.Text), needle) {
			m.searchMatches = append(m.searchMatches, i)
		}
	}
	if len(m.searchMatches) == 0 {
		m.status = fmt.Sprintf("no match for %q", m.searchQuery)
		return
	}
	// Jump to the first match at or after the cursor.
	m.searchIndex = 0
	for i, pos := range m.searchMatches {
		if pos >= m.cursor {
			m.searchIndex = i
			break
		}
	}
	m.cursor = m.searchMatches[m.searchIndex]
	m.ensureCursorVisible()
}

func (m *model) cycleMatch(dir int) {
	if len(m.searchMatches) == 0 {
		return
	}
	n := len(m.searchMatches)
	m.searchIndex = ((m.searchIndex+dir)%n + n) % n
	m.cursor = m.searchMatches[m.searchIndex]
	m.ensureCursorVisible()
	m.status = fmt.Sprintf("match %d/%d for %q", m.searchIndex+1, n, m.searchQuery)
}

func (m *model) toggleFold() {
	path, ok := m.currentPath()
	if !ok {
		return
	}
	if m.ex.Toggle(path) {
		m.refresh(m.cursorLine())
	}
}

func (m *model) fold() {
	path, ok := m.currentPath()
	if !ok {
		return
	}
	if m.ex.Fold(path) {
		m.refresh(m.cursorLine())
	}
}

func (m *model) unfold(recursive bool) {
	path, ok := m.currentPath()
	if !ok {
		return
	}
	if m.ex.Unfold(path, recursive) {
		m.refresh(m.cursorLine())
	}
}

func (m *model) foldAll() {
	m.ex.FoldAll()
	m.refresh(m.cursorLine())
}

func (m *model) yank() {
	path, ok := m.currentPath()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(path); err != nil {
		m.status = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.status = fmt.Sprintf("yanked %s", path)
}
