package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pico/internal/core"
)

// KeyMap defines the console key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Primary    key.Binding
	Secondary  key.Binding
	Menu       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Primary: key.NewBinding(
			key.WithKeys("z", "c", " "),
			key.WithHelp("z/space", "o button"),
		),
		Secondary: key.NewBinding(
			key.WithKeys("x", "v"),
			key.WithHelp("x", "x button"),
		),
		Menu: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter/p", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Secondary, k.Menu, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Primary, k.Secondary, k.Menu},
		{k.Screenshot, k.Quit},
	}
}

// Button maps a key message to a console button.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	case key.Matches(msg, k.Up):
		return core.ButtonUp, true
	case key.Matches(msg, k.Down):
		return core.ButtonDown, true
	case key.Matches(msg, k.Primary):
		return core.ButtonPrimary, true
	case key.Matches(msg, k.Secondary):
		return core.ButtonSecondary, true
	}
	return 0, false
}
