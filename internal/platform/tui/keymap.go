package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Down    key.Binding
	Rotate  key.Binding
	FlipH   key.Binding
	FlipV   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.FlipH, k.FlipV, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Rotate},
		{k.FlipH, k.FlipV},
		{k.Confirm, k.Restart, k.Pause, k.Back, k.Quit},
	}
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
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "faster"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "rotate"),
		),
		FlipH: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "flip ↔"),
		),
		FlipV: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "flip ↕"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Unbound keys map to core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.FlipH):
		return core.ActionFlipH
	case key.Matches(msg, k.FlipV):
		return core.ActionFlipV
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
