package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"combobox/internal/combobox"
)

// KeyMap defines the key bindings of the terminal host
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
	Left   key.Binding
	Right  key.Binding

	ToggleFocus key.Binding
	Accept      key.Binding
	Inspector   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous item / open"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next item / open"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close / clear"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "back to input"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "back to input"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus / blur"),
		),
		Accept: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "accept"),
		),
		Inspector: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "aria inspector"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Enter, k.Escape, k.Accept, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Escape, k.ToggleFocus},
		{k.Accept, k.Inspector, k.Help, k.Quit},
	}
}

// controllerKey translates a terminal key into the controller's vocabulary
func (k KeyMap) controllerKey(msg tea.KeyMsg) combobox.Key {
	switch {
	case key.Matches(msg, k.Up):
		return combobox.KeyUp
	case key.Matches(msg, k.Down):
		return combobox.KeyDown
	case key.Matches(msg, k.Enter):
		return combobox.KeyEnter
	case key.Matches(msg, k.Escape):
		return combobox.KeyEscape
	case key.Matches(msg, k.Left):
		return combobox.KeyLeft
	case key.Matches(msg, k.Right):
		return combobox.KeyRight
	default:
		return combobox.KeyOther
	}
}
