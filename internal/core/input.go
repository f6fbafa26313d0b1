package core

// Action represents a semantic key action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move the keyboard cursor up
	ActionDown           // move the keyboard cursor down
	ActionLeft           // move the keyboard cursor left
	ActionRight          // move the keyboard cursor right
	ActionDrop           // drop the piece at the cursor
	ActionRotate         // rotate the current piece
	ActionCrank          // crank the board without waiting for the timer
	ActionPause          // pause or resume
	ActionQuit           // quit to the intro (from pause) or exit the program
	ActionReplay         // start a new game after game over
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
	case ActionDrop:
		return "Drop"
	case ActionRotate:
		return "Rotate"
	case ActionCrank:
		return "Crank"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionReplay:
		return "Replay"
	default:
		return "Unknown"
	}
}
