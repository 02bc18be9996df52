package core

// Action is a semantic puzzle action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h - move the cursor left
	ActionRight          // Right arrow, l - move the cursor right
	ActionGrab           // Space - select, pick up or drop the tile under the cursor
	ActionConfirm        // Enter - complete the move, or deal again once a hand is over
	ActionCancel         // Esc - drop the current selection or drag
	ActionHint           // ? - show the next solver step
	ActionNew            // N - deal a new hand
	ActionScores         // S - show the history table
	ActionAbandon        // Q - abandon the current hand
	ActionQuit           // Ctrl+C - exit
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
	case ActionGrab:
		return "Grab"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionHint:
		return "Hint"
	case ActionNew:
		return "New"
	case ActionScores:
		return "Scores"
	case ActionAbandon:
		return "Abandon"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
