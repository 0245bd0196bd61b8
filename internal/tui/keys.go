package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Press                 key.Binding
	Equals                key.Binding
	Clear, Back           key.Binding
	Sqrt, Log             key.Binding
	Tape                  key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
	Press:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
	Equals: key.NewBinding(key.WithKeys("="), key.WithHelp("=", "equals")),
	Clear:  key.NewBinding(key.WithKeys("c", "delete"), key.WithHelp("c", "clear")),
	Back:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "back")),
	Sqrt:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "√")),
	Log:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log")),
	Tape:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tape")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Clear, k.Back, k.Tape, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Press},
		{k.Equals, k.Clear, k.Back},
		{k.Sqrt, k.Log},
		{k.Tape, k.Help, k.Quit},
	}
}
