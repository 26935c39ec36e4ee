package core

import "maps"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A - move piece left
	ActionRight           // Right arrow, D - move piece right
	ActionDown            // Down arrow, S - soft drop one row
	ActionRotate          // Up arrow, W - rotate clockwise
	ActionFlipH           // H - mirror left/right
	ActionFlipV           // G - mirror top/bottom
	ActionConfirm         // Enter - start a game from the title screen
	ActionBack            // Escape - leave the game-over screen
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionFlipH:
		return "FlipH"
	case ActionFlipV:
		return "FlipV"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions pressed since the previous simulation tick.
// The game applies them in its own fixed order, not in arrival order.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	maps.Copy(clone.Actions, f.Actions)
	return clone
}
