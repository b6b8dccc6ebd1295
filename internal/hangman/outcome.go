package hangman

// Phase is the lifecycle position of a Game.
type Phase int

const (
	// PhasePlaying accepts guesses.
	PhasePlaying Phase = iota
	// PhaseLevelComplete waits for AdvanceLevel after every letter was opened.
	PhaseLevelComplete
	// PhaseGameOver waits for ResetGame after too many wrong guesses.
	PhaseGameOver
	// PhaseAllLevelsComplete is terminal until ResetGame.
	PhaseAllLevelsComplete
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseLevelComplete:
		return "LevelComplete"
	case PhaseGameOver:
		return "GameOver"
	case PhaseAllLevelsComplete:
		return "AllLevelsComplete"
	default:
		return "Unknown"
	}
}

// Signal is a lifecycle event the caller must acknowledge before the
// matching transition (AdvanceLevel or ResetGame) is invoked.
type Signal int

const (
	SignalNone Signal = iota
	SignalLevelComplete
	SignalGameOver
	SignalAllLevelsComplete
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalLevelComplete:
		return "LevelComplete"
	case SignalGameOver:
		return "GameOver"
	case SignalAllLevelsComplete:
		return "AllLevelsComplete"
	default:
		return "Unknown"
	}
}

// Title returns the dialog heading shown for the signal.
func (s Signal) Title() string {
	switch s {
	case SignalLevelComplete:
		return "Correct!"
	case SignalGameOver:
		return "Game over"
	case SignalAllLevelsComplete:
		return "No more levels left"
	default:
		return ""
	}
}

// Message returns the dialog body shown for the signal.
func (s Signal) Message() string {
	switch s {
	case SignalLevelComplete:
		return "You've guessed the word. Now prepare for the next level"
	case SignalGameOver:
		return "You have no chances left. Try again!"
	case SignalAllLevelsComplete:
		return "Congratulations, you've beaten every level in the game!"
	default:
		return ""
	}
}

// Kind says what produced an Outcome.
type Kind int

const (
	// KindLevelLoaded follows New, AdvanceLevel and ResetGame.
	KindLevelLoaded Kind = iota
	// KindCorrect follows a guess that opened a letter.
	KindCorrect
	// KindWrong follows a guess absent from the word.
	KindWrong
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLevelLoaded:
		return "LevelLoaded"
	case KindCorrect:
		return "Correct"
	case KindWrong:
		return "Wrong"
	default:
		return "Unknown"
	}
}

// Outcome describes what changed after an accepted guess or a level transition.
// It carries everything a presentation layer needs to redraw.
type Outcome struct {
	Kind   Kind
	Signal Signal

	Letter       string   // Guessed letter, empty for KindLevelLoaded
	Display      string   // Masked word, "?" for unopened letters
	WrongGuesses []string // Snapshot in guess order
	Score        int
	ScoreDelta   int
	Level        int // 1-based level number for display
}

// HasSignal reports whether the outcome needs acknowledging.
func (o Outcome) HasSignal() bool {
	return o.Signal != SignalNone
}
