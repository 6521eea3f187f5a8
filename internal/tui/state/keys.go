package state

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Open      key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Theme     key.Binding
	Sound     key.Binding
	Help      key.Binding
	Jump      key.Binding
	Final     key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Sound:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sound")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Jump:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		Final:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "final artwork")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.Theme, k.Sound, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Open, k.Back, k.Jump, k.Final},
		{k.NextField, k.PrevField, k.Submit},
		{k.Theme, k.Sound, k.Help, k.Quit},
	}
}

// contextHelp returns the bindings worth showing for the current screen.
func (m *Model) contextHelp() []key.Binding {
	k := m.keys
	switch {
	case m.page == PageContact:
		return []key.Binding{k.NextField, k.Submit, k.Back, k.ForceQuit}
	case m.lightbox.IsOpen():
		return []key.Binding{k.Left, k.Right, k.Jump, k.Back}
	case m.artNav.IsOpen():
		return []key.Binding{k.Left, k.Right, k.Jump, k.Final, k.Back}
	case m.newsOpen:
		return []key.Binding{k.Up, k.Down, k.Back}
	case m.page == PageHome:
		return []key.Binding{k.Left, k.Right, k.Open, k.Theme, k.Sound, k.Help, k.Quit}
	default:
		return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Theme, k.Sound, k.Quit}
	}
}
