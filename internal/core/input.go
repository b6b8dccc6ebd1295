package core

// Action represents a semantic player action, abstracted from physical key presses.
// Platform adapters map keys or lines of text to actions.
type Action int

const (
	ActionNone       Action = iota
	ActionGuess             // A letter key - guess that letter
	ActionConfirm           // Enter - acknowledge a dialog
	ActionBack              // Esc - go back to menu
	ActionRestart           // Ctrl+R - abandon the run and start over
	ActionScreenshot        // Ctrl+S - save the screen to a file
	ActionHelp              // ? - toggle full help
	ActionQuit              // Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionGuess:
		return "Guess"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is a single decoded input event.
// Letter is only meaningful for ActionGuess.
type Input struct {
	Action Action
	Letter string
}

// Guess builds an ActionGuess input for the given letter.
func Guess(letter string) Input {
	return Input{Action: ActionGuess, Letter: letter}
}
