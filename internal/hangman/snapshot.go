package hangman

// Snapshot captures the complete game state for rendering and testing.
type Snapshot struct {
	Level            int // Current level (1-indexed for display)
	LevelCount       int
	Word             string
	Display          string
	OpenedLetters    []string
	WrongGuesses     []string
	RemainingGuesses int
	MaxWrongGuesses  int
	Score            int
	Phase            Phase
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Level:            g.DisplayLevel(),
		LevelCount:       g.LevelCount(),
		Word:             g.currentWord,
		Display:          g.Display(),
		OpenedLetters:    g.OpenedLetters(),
		WrongGuesses:     g.WrongGuesses(),
		RemainingGuesses: g.RemainingGuesses(),
		MaxWrongGuesses:  g.maxWrong,
		Score:            g.score,
		Phase:            g.phase,
	}
}

// Revealed reports whether the snapshot shows the whole word.
func (s Snapshot) Revealed() bool {
	return s.Word != "" && s.Display == s.Word
}
