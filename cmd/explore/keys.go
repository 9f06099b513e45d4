package explore

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
	Toggle   key.Binding
	Open     key.Binding
	OpenRec  key.Binding
	Close    key.Binding
	OpenAll  key.Binding
	CloseAll key.Binding
	Search   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Yank     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Refresh, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.HalfUp, k.HalfDown},
		{k.Toggle, k.Open, k.OpenRec, k.Close, k.OpenAll, k.CloseAll},
		{k.Search, k.Next, k.Prev, k.Yank, k.Refresh, k.Quit},
	}
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:      key.NewBinding(key.WithKeys("home"), key.WithHelp("gg/home", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G/end", "bottom")),
	HalfUp:   key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "half page up")),
	HalfDown: key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "half page down")),
	Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/za", "toggle fold")),
	Open:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l/zo", "unfold")),
	OpenRec:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L/zO", "unfold recursively")),
	Close:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h/zc", "fold")),
	OpenAll:  key.NewBinding(key.WithKeys("E"), key.WithHelp("E/zR", "unfold all")),
	CloseAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C/zM", "fold all")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
	Prev:     key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous match")),
	Yank:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank path")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}
