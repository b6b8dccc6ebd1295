// Package hangman implements the word-guessing game state machine.
//
// A Game owns the word list, the current level, the letters opened so far,
// the wrong guesses and the score. It performs no I/O and knows nothing about
// presentation: every operation returns an Outcome and the caller decides how
// to show it.
package hangman

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultMaxWrongGuesses is the number of wrong guesses that ends a game.
const DefaultMaxWrongGuesses = 7

// Placeholder replaces letters that have not been opened yet.
const Placeholder = "?"

// Game is the authoritative owner of all game progress.
// It is not safe for concurrent use; the owner serializes calls.
type Game struct {
	words    []string
	maxWrong int

	level         int
	currentWord   string
	openedLetters map[string]struct{}
	wrongGuesses  []string
	score         int
	phase         Phase
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithMaxWrongGuesses overrides how many wrong guesses end a game.
// Values below 1 are ignored.
func WithMaxWrongGuesses(n int) Option {
	return func(g *Game) {
		if n >= 1 {
			g.maxWrong = n
		}
	}
}

// New creates a game over the given words and loads level 0.
// Words are expected to be trimmed and non-empty; an empty list leaves the
// game in PhaseAllLevelsComplete.
func New(words []string, opts ...Option) *Game {
	g := &Game{
		words:         slices.Clone(words),
		maxWrong:      DefaultMaxWrongGuesses,
		openedLetters: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.loadLevel()
	return g
}

// loadLevel sets up the word at the current level index.
func (g *Game) loadLevel() Outcome {
	clear(g.openedLetters)
	g.wrongGuesses = nil

	if g.level >= len(g.words) {
		g.level = len(g.words)
		g.currentWord = ""
		g.phase = PhaseAllLevelsComplete
		out := g.outcome(KindLevelLoaded, "", 0)
		out.Signal = SignalAllLevelsComplete
		return out
	}

	g.currentWord = strings.ToUpper(g.words[g.level])
	g.phase = PhasePlaying
	return g.outcome(KindLevelLoaded, "", 0)
}

// GuessLetter evaluates a single-letter guess.
//
// The letter is uppercased before comparison. The guess is ignored and ok is
// false when it is not exactly one character, when the letter was already
// guessed this level, or when the game is not in PhasePlaying.
func (g *Game) GuessLetter(letter string) (out Outcome, ok bool) {
	if g.phase != PhasePlaying || utf8.RuneCountInString(letter) != 1 {
		return Outcome{}, false
	}
	// ToUpper maps rune by rune, so the guess stays a single rune ("ß" included).
	letter = strings.ToUpper(letter)
	if g.guessed(letter) {
		return Outcome{}, false
	}

	if strings.Contains(g.currentWord, letter) {
		g.openedLetters[letter] = struct{}{}
		g.score++
		out = g.outcome(KindCorrect, letter, 1)
		if g.revealed() {
			g.phase = PhaseLevelComplete
			out.Signal = SignalLevelComplete
		}
		return out, true
	}

	g.wrongGuesses = append(g.wrongGuesses, letter)
	g.score--
	out = g.outcome(KindWrong, letter, -1)
	if len(g.wrongGuesses) >= g.maxWrong {
		g.phase = PhaseGameOver
		out.Signal = SignalGameOver
	}
	return out, true
}

// AdvanceLevel moves to the next word. Once every word is beaten the returned
// outcome carries SignalAllLevelsComplete, and so does every later call.
func (g *Game) AdvanceLevel() Outcome {
	if g.level < len(g.words) {
		g.level++
	}
	return g.loadLevel()
}

// ResetGame starts over from level 0 with a zero score.
func (g *Game) ResetGame() Outcome {
	g.score = 0
	g.level = 0
	return g.loadLevel()
}

func (g *Game) guessed(letter string) bool {
	if _, ok := g.openedLetters[letter]; ok {
		return true
	}
	return slices.Contains(g.wrongGuesses, letter)
}

// revealed reports whether every letter of the current word is open.
func (g *Game) revealed() bool {
	for _, r := range g.currentWord {
		if _, ok := g.openedLetters[string(r)]; !ok {
			return false
		}
	}
	return true
}

func (g *Game) outcome(kind Kind, letter string, delta int) Outcome {
	return Outcome{
		Kind:         kind,
		Letter:       letter,
		Display:      g.Display(),
		WrongGuesses: g.WrongGuesses(),
		Score:        g.score,
		ScoreDelta:   delta,
		Level:        g.DisplayLevel(),
	}
}

// Display returns the masked current word.
func (g *Game) Display() string {
	var sb strings.Builder
	sb.Grow(len(g.currentWord))
	for _, r := range g.currentWord {
		if _, ok := g.openedLetters[string(r)]; ok {
			sb.WriteRune(r)
		} else {
			sb.WriteString(Placeholder)
		}
	}
	return sb.String()
}

// Level returns the 0-based level index. It equals LevelCount once every
// level is beaten.
func (g *Game) Level() int { return g.level }

// DisplayLevel returns the 1-based level number.
func (g *Game) DisplayLevel() int { return g.level + 1 }

// LevelCount returns the number of words in the game.
func (g *Game) LevelCount() int { return len(g.words) }

// Score returns the running score. It may be negative.
func (g *Game) Score() int { return g.score }

// CurrentWord returns the uppercased word of the current level.
func (g *Game) CurrentWord() string { return g.currentWord }

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase { return g.phase }

// MaxWrongGuesses returns the wrong-guess limit.
func (g *Game) MaxWrongGuesses() int { return g.maxWrong }

// RemainingGuesses returns how many more wrong guesses the level tolerates.
func (g *Game) RemainingGuesses() int {
	return max(g.maxWrong-len(g.wrongGuesses), 0)
}

// WrongGuesses returns a copy of the wrong guesses in guess order.
func (g *Game) WrongGuesses() []string {
	return slices.Clone(g.wrongGuesses)
}

// OpenedLetters returns the opened letters in alphabetical order.
func (g *Game) OpenedLetters() []string {
	letters := make([]string, 0, len(g.openedLetters))
	for l := range g.openedLetters {
		letters = append(letters, l)
	}
	slices.Sort(letters)
	return letters
}
