package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// GameKeyMap defines the key bindings while a word is on screen.
// Letters are reserved for guesses, so every command uses a non-letter key.
type GameKeyMap struct {
	Guess      key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.Confirm, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Guess, k.Confirm},
		{k.Restart, k.Screenshot},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Guess: key.NewBinding(
			key.WithKeys(), // Matched by rune, see KeyMapper.MapKey
			key.WithHelp("a-z", "guess"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// PickerKeyMap defines the key bindings of the pack picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Play, k.Scores}, {k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "b", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardKeyMap defines the key bindings of the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevPack, k.NextPack, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.PrevPack, k.NextPack}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("→/tab", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("←", "prev pack"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to player input.
// It holds the bindings of every screen so they can be tested in one place.
type KeyMapper struct {
	Game   GameKeyMap
	Picker PickerKeyMap
	Scores ScoreboardKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Game:   DefaultGameKeyMap(),
		Picker: DefaultPickerKeyMap(),
		Scores: DefaultScoreboardKeyMap(),
	}
}

// MapKey translates a key message to an in-game input.
// A single letter rune becomes ActionGuess.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, km.Game.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, km.Game.Confirm):
		return core.Input{Action: core.ActionConfirm}
	case key.Matches(msg, km.Game.Back):
		return core.Input{Action: core.ActionBack}
	case key.Matches(msg, km.Game.Restart):
		return core.Input{Action: core.ActionRestart}
	case key.Matches(msg, km.Game.Screenshot):
		return core.Input{Action: core.ActionScreenshot}
	case key.Matches(msg, km.Game.Help):
		return core.Input{Action: core.ActionHelp}
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 && unicode.IsLetter(msg.Runes[0]) {
		return core.Guess(string(msg.Runes[0]))
	}

	return core.Input{Action: core.ActionNone}
}
