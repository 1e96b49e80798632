package core

// Action represents a semantic player action, abstracted from physical key presses.
// The platform maps keys to actions and actions to session calls.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // A, Left arrow - hold paddle intent left
	ActionRight         // D, Right arrow - hold paddle intent right
	ActionLaunch        // Space - start, continue or restart
	ActionReset         // Escape - back to the start screen
	ActionHelp          // ? - toggle full help
	ActionQuit          // Q, Ctrl+C - exit
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
	case ActionLaunch:
		return "Launch"
	case ActionReset:
		return "Reset"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
