package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines key bindings for the calculator. Printable keys go to the
// text input, so every binding uses a control or function key.
type KeyMap struct {
	// Common
	Quit       key.Binding
	ToggleHelp key.Binding

	// Input
	Submit key.Binding
	Back   key.Binding

	// Running
	ToggleMeridiem key.Binding
	Undo           key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "new start time"),
		),
		ToggleMeridiem: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "12h/24h"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	return help.New()
}

// stateKeyMap adapts bindings to the current UI state for contextual help.
type stateKeyMap struct {
	keys  KeyMap
	state State
}

// ForState returns a contextual key map implementing help.KeyMap for the given state.
func (k KeyMap) ForState(s State) help.KeyMap {
	return stateKeyMap{keys: k, state: s}
}

// ShortHelp implements help.KeyMap for contextual help (compact).
func (s stateKeyMap) ShortHelp() []key.Binding {
	switch s.state {
	case StateStartInput:
		return []key.Binding{s.keys.Submit, s.keys.ToggleMeridiem, s.keys.ToggleHelp, s.keys.Quit}
	case StateRunning:
		return []key.Binding{s.keys.Submit, s.keys.ToggleMeridiem, s.keys.Back, s.keys.ToggleHelp, s.keys.Quit}
	default:
		return []key.Binding{s.keys.ToggleHelp, s.keys.Quit}
	}
}

// FullHelp implements help.KeyMap for contextual help (expanded).
func (s stateKeyMap) FullHelp() [][]key.Binding {
	switch s.state {
	case StateStartInput:
		return [][]key.Binding{{s.keys.Submit, s.keys.ToggleMeridiem}, {s.keys.ToggleHelp, s.keys.Quit}}
	case StateRunning:
		return [][]key.Binding{
			{s.keys.Submit, s.keys.Undo, s.keys.ToggleMeridiem},
			{s.keys.Back, s.keys.ToggleHelp, s.keys.Quit},
		}
	default:
		return [][]key.Binding{{s.keys.ToggleHelp, s.keys.Quit}}
	}
}
