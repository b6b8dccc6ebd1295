package core

// RuntimeConfig contains configuration passed to the platform layer at start.
// The board renderer uses it to adapt to screen size.
type RuntimeConfig struct {
	ScreenW         int    // Screen width in characters
	ScreenH         int    // Screen height in characters
	MaxWrongGuesses int    // Wrong guesses allowed per level
	Pack            string // Word pack ID the session plays
	Player          string // Name recorded with finished runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:         80,
		ScreenH:         24,
		MaxWrongGuesses: 7,
		Pack:            "default",
		Player:          "player",
	}
}
