package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	// Playback controls
	PlayPause    key.Binding
	SeekForward  key.Binding
	SeekBackward key.Binding

	// Volume
	Mute       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding

	// Help and Quit
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		SeekForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "+5s"),
		),
		SeekBackward: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "-5s"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "vol+"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "vol-"),
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
}

// ShortHelp returns keybindings to show in the short help view.
// Implements the help.KeyMap interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.PlayPause,
		k.SeekBackward,
		k.SeekForward,
		k.Mute,
		k.Help,
		k.Quit,
	}
}

// FullHelp returns keybindings to show in the full help view.
// Implements the help.KeyMap interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Playback column
		{
			k.PlayPause,
			k.SeekForward,
			k.SeekBackward,
		},
		// Volume column
		{
			k.Mute,
			k.VolumeUp,
			k.VolumeDown,
		},
		// System column
		{
			k.Help,
			k.Quit,
		},
	}
}
