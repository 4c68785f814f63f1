package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause       key.Binding
	Clear       key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	HideCursor  key.Binding
	PanBack     key.Binding
	PanForward  key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	Reset       key.Binding
	Focus       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.CursorLeft, k.PanBack, k.ZoomIn, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Clear, k.Reset},
		{k.CursorLeft, k.CursorRight, k.HideCursor},
		{k.PanBack, k.PanForward, k.ZoomIn, k.ZoomOut},
		{k.Focus, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Pause: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p/space", "pause"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	CursorLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/→", "cursor"),
	),
	CursorRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "cursor right"),
	),
	HideCursor: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "hide cursor"),
	),
	PanBack: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[/]", "pan"),
	),
	PanForward: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "pan forward"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "zoom"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset view"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
