package core

// Action represents a semantic game action, abstracted from physical key presses.
// Actions are discrete: the platform delivers each one once per key event.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K - move one lane toward the goal
	ActionDown           // Down arrow, S, J - move one lane back
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionRestart        // Space - reset the whole game
	ActionLegend         // ? - toggle the bonus legend
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionLegend:
		return "Legend"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four grid moves.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
