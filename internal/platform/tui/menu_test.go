package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sendMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		mm, ok := next.(MenuModel)
		require.True(t, ok, "Update should return a MenuModel")
		m = mm
	}
	return m, cmd
}

func TestMenuStartsOnConfiguredPack(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.Run{SessionID: "s", Pack: sessionTestPack, Player: "ann", Score: 5, Level: 1, Outcome: storage.OutcomeCompleted})
	require.NoError(t, err)

	cfg := core.DefaultConfig()
	cfg.Pack = sessionTestPack
	m := NewMenuModel(store, cfg)

	require.Len(t, m.items, len(registry.List()))
	cur := m.items[m.cursor]
	assert.Equal(t, sessionTestPack, cur.PackID)
	assert.Equal(t, 1, cur.Words)
	assert.True(t, cur.HasScore)
	assert.Equal(t, 5, cur.HighScore)
	assert.Contains(t, m.View(), "Session Test")
}

func TestMenuCursorWraps(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Pack = sessionTestPack
	m := NewMenuModel(nil, cfg)
	start := m.cursor

	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, (start-1+len(m.items))%len(m.items), m.cursor)

	for range m.items {
		m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, (start-1+len(m.items))%len(m.items), m.cursor)
}

func TestMenuPlayAndScores(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Pack = sessionTestPack

	m, cmd := sendMenu(t, NewMenuModel(nil, cfg), enterKey)
	require.NotNil(t, cmd)
	assert.Equal(t, sessionTestPack, m.Choice())
	assert.Equal(t, MenuResult{PackID: sessionTestPack, Config: cfg}, m.result())

	m, _ = sendMenu(t, NewMenuModel(nil, cfg), tea.KeyMsg{Type: tea.KeyTab})
	assert.Empty(t, m.Choice())
	assert.True(t, m.WantsScoreboard())
	assert.False(t, m.result().Quit)

	m, _ = sendMenu(t, NewMenuModel(nil, cfg), runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.True(t, m.result().Quit)
	assert.Empty(t, m.View())
}

func TestScoreboardSwitchesPacks(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveRun(storage.Run{SessionID: "s", Pack: sessionTestPack, Player: "ann", Score: 3, Level: 1, Outcome: storage.OutcomeCompleted})
	require.NoError(t, err)

	sb := NewScoreboardModel(store, sessionTestPack, 100, 30)
	require.Equal(t, sessionTestPack, sb.Pack())
	require.Len(t, sb.Runs(), 1)
	assert.Contains(t, sb.View(), "cleared")
	assert.Contains(t, sb.View(), "Runs: 1")

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb = next.(ScoreboardModel)
	if len(registry.List()) > 1 {
		assert.NotEqual(t, sessionTestPack, sb.Pack())
		assert.Empty(t, sb.Runs())
		assert.Contains(t, sb.View(), "No runs recorded yet.")
	}

	next, _ = sb.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	sb = next.(ScoreboardModel)
	assert.Equal(t, sessionTestPack, sb.Pack())
	assert.Len(t, sb.Runs(), 1)

	next, cmd := sb.Update(escKey)
	sb = next.(ScoreboardModel)
	require.NotNil(t, cmd)
	assert.True(t, sb.IsGoingBack())
	assert.Empty(t, sb.View())
}
