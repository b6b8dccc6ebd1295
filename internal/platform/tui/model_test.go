package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

const testSession = "test-session"

var (
	enterKey   = tea.KeyMsg{Type: tea.KeyEnter}
	escKey     = tea.KeyMsg{Type: tea.KeyEsc}
	restartKey = tea.KeyMsg{Type: tea.KeyCtrlR}
	quitKey    = tea.KeyMsg{Type: tea.KeyCtrlC}
	shotKey    = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, words []string, maxWrong int) (GameModel, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := core.DefaultConfig()
	cfg.MaxWrongGuesses = maxWrong
	cfg.Player = "tester"

	m := NewGameModel(GameOptions{
		Words:     words,
		Store:     store,
		Config:    cfg,
		SessionID: testSession,
	})
	return m, store
}

func send(t *testing.T, m GameModel, msgs ...tea.Msg) GameModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		gm, ok := next.(GameModel)
		require.True(t, ok, "Update should return a GameModel")
		m = gm
	}
	return m
}

func sessionRuns(t *testing.T, store *storage.Store) []storage.Run {
	t.Helper()
	runs, err := store.SessionRuns(testSession)
	require.NoError(t, err)
	return runs
}

func TestGameModelWinAllLevels(t *testing.T) {
	m, store := newTestModel(t, []string{"CAT"}, 7)

	m = send(t, m, runeKey("c"), runeKey("a"), runeKey("t"))
	assert.Equal(t, hangman.SignalLevelComplete, m.Pending())
	assert.Equal(t, 3, m.Snapshot().Score)

	// Guesses are ignored while the dialog is open
	m = send(t, m, runeKey("x"))
	assert.Empty(t, m.Snapshot().WrongGuesses)

	m = send(t, m, enterKey)
	assert.Equal(t, hangman.SignalAllLevelsComplete, m.Pending())
	assert.Equal(t, hangman.PhaseAllLevelsComplete, m.Snapshot().Phase)

	runs := sessionRuns(t, store)
	require.Len(t, runs, 1)
	assert.Equal(t, storage.OutcomeCompleted, runs[0].Outcome)
	assert.Equal(t, 3, runs[0].Score)
	assert.Equal(t, 1, runs[0].Level)
	assert.Equal(t, "tester", runs[0].Player)
	assert.Equal(t, "default", runs[0].Pack)

	// Acknowledging the final dialog starts a new run
	m = send(t, m, enterKey)
	assert.Equal(t, hangman.SignalNone, m.Pending())
	snap := m.Snapshot()
	assert.Equal(t, hangman.PhasePlaying, snap.Phase)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, snap.Level)
}

func TestGameModelGameOverRecordsRun(t *testing.T) {
	m, store := newTestModel(t, []string{"CAT"}, 2)

	m = send(t, m, runeKey("b"), runeKey("d"))
	assert.Equal(t, hangman.SignalGameOver, m.Pending())

	runs := sessionRuns(t, store)
	require.Len(t, runs, 1)
	assert.Equal(t, storage.OutcomeGameOver, runs[0].Outcome)
	assert.Equal(t, -2, runs[0].Score)

	m = send(t, m, enterKey)
	assert.Equal(t, hangman.SignalNone, m.Pending())
	assert.Equal(t, hangman.PhasePlaying, m.Snapshot().Phase)
	assert.Equal(t, 0, m.Snapshot().Score)

	// Leaving right after a recorded loss adds nothing
	m = send(t, m, escKey)
	assert.True(t, m.WantsMenu())
	assert.Len(t, sessionRuns(t, store), 1)
}

func TestGameModelBackRecordsAbandonedRun(t *testing.T) {
	m, store := newTestModel(t, []string{"CAT", "DOG"}, 7)

	m = send(t, m, runeKey("c"), escKey)
	assert.True(t, m.WantsMenu())
	assert.False(t, m.IsQuitting())

	runs := sessionRuns(t, store)
	require.Len(t, runs, 1)
	assert.Equal(t, storage.OutcomeAbandoned, runs[0].Outcome)
	assert.Equal(t, 1, runs[0].Score)
}

func TestGameModelQuitWithoutGuessesRecordsNothing(t *testing.T) {
	m, store := newTestModel(t, []string{"CAT"}, 7)

	m = send(t, m, quitKey)
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
	assert.Empty(t, sessionRuns(t, store))
}

func TestGameModelRestart(t *testing.T) {
	m, store := newTestModel(t, []string{"CAT"}, 7)

	m = send(t, m, runeKey("c"), runeKey("z"), restartKey)
	snap := m.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.WrongGuesses)
	assert.Equal(t, "???", snap.Display)

	runs := sessionRuns(t, store)
	require.Len(t, runs, 1)
	assert.Equal(t, storage.OutcomeAbandoned, runs[0].Outcome)
	assert.Equal(t, 0, runs[0].Score)
}

func TestGameModelFlash(t *testing.T) {
	m, _ := newTestModel(t, []string{"CAT"}, 7)

	m = send(t, m, runeKey("c"))
	assert.True(t, m.flash)
	seq := m.flashSeq

	m = send(t, m, runeKey("a"))
	m = send(t, m, FlashMsg{Seq: seq})
	assert.True(t, m.flash, "stale flash message should not clear a newer highlight")

	m = send(t, m, FlashMsg{Seq: m.flashSeq})
	assert.False(t, m.flash)
}

func TestGameModelIgnoresNonLetters(t *testing.T) {
	m, _ := newTestModel(t, []string{"CAT"}, 7)

	m = send(t, m, runeKey("1"), runeKey("-"), runeKey("ab"))
	snap := m.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.WrongGuesses)
	assert.Empty(t, snap.OpenedLetters)
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, []string{"CAT"}, 7)

	m = send(t, m, runeKey("c"))
	view := m.View()
	assert.Contains(t, view, "ctrl+c")

	screen := m.screen.String()
	assert.Contains(t, screen, "H A N G M A N")
	assert.Contains(t, screen, "C ? ?")
	assert.Contains(t, screen, "Score: 1")
}

func TestGameModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, []string{"CAT"}, 7)

	short := m.View()
	m = send(t, m, runeKey("?"))
	assert.True(t, m.help.ShowAll)
	full := m.View()
	// The board shrinks so the expanded help still fits the terminal
	assert.Equal(t, strings.Count(short, "\n"), strings.Count(full, "\n"))
	assert.Contains(t, full, "restart")
}

func TestGameModelWithoutStore(t *testing.T) {
	m := NewGameModel(GameOptions{Words: []string{"CAT"}, Config: core.DefaultConfig()})

	// No store: the loss is logged and discarded
	for _, l := range []string{"b", "d", "e", "f", "g", "h", "i"} {
		m = send(t, m, runeKey(l))
	}
	assert.Equal(t, hangman.SignalGameOver, m.Pending())
}

func TestGameModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m, _ := newTestModel(t, []string{"CAT"}, 7)
	m = send(t, m, runeKey("c"), runeKey("x"), shotKey)

	files, err := filepath.Glob(filepath.Join(home, ".hangman", "screenshots", "default_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "H A N G M A N")
	assert.Contains(t, text, "C ? ?")
	assert.Contains(t, text, "Wrong: X")

	// Taking a screenshot leaves the game untouched.
	assert.Equal(t, 0, m.Snapshot().Score)
	assert.Equal(t, hangman.PhasePlaying, m.Snapshot().Phase)
}
