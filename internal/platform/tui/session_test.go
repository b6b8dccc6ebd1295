package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

const sessionTestPack = "tui-session-test"

func init() {
	registry.Register(sessionTestPack, "Session Test", func() ([]string, error) {
		return []string{"GO"}, nil
	})
}

func newTestSession(t *testing.T) (SessionModel, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := core.DefaultConfig()
	cfg.Pack = sessionTestPack
	cfg.Player = "guest"

	return NewSessionModel(store, log.New(io.Discard), cfg), store
}

func sendSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		require.True(t, ok, "Update should return a SessionModel")
		m = sm
	}
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m, store := newTestSession(t)
	assert.Equal(t, viewMenu, m.view)
	assert.Contains(t, m.View(), "Session Test")

	m = sendSession(t, m, enterKey)
	require.Equal(t, viewGame, m.view)
	require.NotNil(t, m.game)

	m = sendSession(t, m, runeKey("g"), escKey)
	assert.Equal(t, viewMenu, m.view)
	assert.Nil(t, m.game)

	runs, err := store.SessionRuns(m.sessionID)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "guest", runs[0].Player)
	assert.Equal(t, sessionTestPack, runs[0].Pack)
	assert.Equal(t, storage.OutcomeAbandoned, runs[0].Outcome)
}

func TestSessionScoreboard(t *testing.T) {
	m, store := newTestSession(t)

	_, err := store.SaveRun(storage.Run{SessionID: "old", Pack: sessionTestPack, Player: "ann", Score: 2, Level: 1, Outcome: storage.OutcomeCompleted})
	require.NoError(t, err)

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewScores, m.view)
	require.NotNil(t, m.scoreboard)
	assert.Equal(t, sessionTestPack, m.scoreboard.Pack())
	assert.Len(t, m.scoreboard.Runs(), 1)

	m = sendSession(t, m, escKey)
	assert.Equal(t, viewMenu, m.view)
	assert.Equal(t, sessionTestPack, m.config.Pack)
}

func TestSessionQuit(t *testing.T) {
	m, _ := newTestSession(t)

	next, cmd := m.Update(runeKey("q"))
	m = next.(SessionModel)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
