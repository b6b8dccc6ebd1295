package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// GameOptions configures a game session.
type GameOptions struct {
	Words     []string
	Store     *storage.Store // Optional, nil disables run history
	Logger    *log.Logger    // Optional, nil discards log output
	Config    core.RuntimeConfig
	SessionID string // Generated when empty
}

// GameModel is the Bubble Tea model for one hangman session.
type GameModel struct {
	game     *hangman.Game
	screen   *core.Screen
	recorder *storage.Recorder
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model

	sessionID string
	packTitle string
	pending   hangman.Signal  // Dialog awaiting Enter
	last      hangman.Outcome // Last accepted guess
	flash     bool
	flashSeq  int
	inRun     bool // A guess was made since the last recorded run

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given words.
func NewGameModel(opts GameOptions) GameModel {
	cfg := opts.Config
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	game := hangman.New(opts.Words, hangman.WithMaxWrongGuesses(cfg.MaxWrongGuesses))

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:  storage.NewRecorder(opts.Store, logger, sessionID, cfg.Pack, cfg.Player),
		logger:    logger,
		config:    cfg,
		keys:      NewKeyMapper(),
		help:      help.New(),
		sessionID: sessionID,
		packTitle: registry.Title(cfg.Pack),
	}
	if game.Phase() == hangman.PhaseAllLevelsComplete {
		m.pending = hangman.SignalAllLevelsComplete
	}
	return m
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	m.logger.Info("session started",
		"session", m.sessionID,
		"pack", m.config.Pack,
		"levels", m.game.LevelCount(),
	)
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleInput(m.keys.MapKey(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FlashMsg:
		if msg.Seq == m.flashSeq {
			m.flash = false
		}
		return m, nil
	}

	return m, nil
}

// handleInput applies one decoded input to the session.
func (m GameModel) handleInput(in core.Input) (tea.Model, tea.Cmd) {
	switch in.Action {
	case core.ActionQuit:
		m.abandon()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.abandon()
		m.backToMenu = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case core.ActionRestart:
		m.abandon()
		m.game.ResetGame()
		m.pending = hangman.SignalNone
		m.flash = false

	case core.ActionConfirm:
		m.acknowledge()

	case core.ActionGuess:
		return m.guess(in.Letter)
	}

	return m, nil
}

// guess forwards a letter to the game while no dialog is open.
func (m GameModel) guess(letter string) (tea.Model, tea.Cmd) {
	if m.pending != hangman.SignalNone {
		return m, nil
	}

	out, ok := m.game.GuessLetter(letter)
	if !ok {
		return m, nil
	}
	m.inRun = true
	m.last = out
	m.flash = true
	m.flashSeq++

	m.logger.Debug("guess",
		"session", m.sessionID,
		"letter", out.Letter,
		"kind", out.Kind,
		"score", out.Score,
	)

	if out.HasSignal() {
		m.pending = out.Signal
		m.logger.Info("signal", "session", m.sessionID, "signal", out.Signal, "level", out.Level)
		if out.Signal == hangman.SignalGameOver {
			m.recorder.Record(m.game.Snapshot(), storage.OutcomeGameOver)
			m.inRun = false
		}
	}

	return m, flashCmd(m.flashSeq)
}

// acknowledge closes the pending dialog and moves the game on.
func (m *GameModel) acknowledge() {
	sig := m.pending
	m.pending = hangman.SignalNone
	m.flash = false

	switch sig {
	case hangman.SignalLevelComplete:
		out := m.game.AdvanceLevel()
		if out.Signal == hangman.SignalAllLevelsComplete {
			m.pending = out.Signal
			m.recorder.Record(m.game.Snapshot(), storage.OutcomeCompleted)
			m.inRun = false
		}

	case hangman.SignalGameOver, hangman.SignalAllLevelsComplete:
		out := m.game.ResetGame()
		if out.HasSignal() {
			m.pending = out.Signal
		}
	}
}

// abandon records the current run if it has progress that was not saved yet.
func (m *GameModel) abandon() {
	if !m.inRun {
		return
	}
	m.recorder.Record(m.game.Snapshot(), storage.OutcomeAbandoned)
	m.inRun = false
}

// render draws the board into the screen buffer, leaving room for help.
func (m *GameModel) render(helpLines int) {
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-helpLines, 1))
	DrawBoard(m.screen, BoardView{
		Snap:      m.game.Snapshot(),
		PackTitle: m.packTitle,
		Last:      m.last,
		Flash:     m.flash,
		Dialog:    m.pending,
	})
}

// saveScreenshot writes the current board as plain text and returns its path.
func (m *GameModel) saveScreenshot() (string, error) {
	m.render(0)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".hangman", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.config.Pack, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys.Game)
	m.render(lipgloss.Height(helpView))
	return RenderScreen(m.screen) + "\n" + helpView
}

// Snapshot returns the game state, mainly for tests.
func (m GameModel) Snapshot() hangman.Snapshot {
	return m.game.Snapshot()
}

// Pending returns the signal whose dialog is open.
func (m GameModel) Pending() hangman.Signal {
	return m.pending
}

// WantsMenu reports whether the player pressed Esc to leave.
func (m GameModel) WantsMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the player requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// GameResult tells the caller where to go after a session.
type GameResult struct {
	BackToMenu bool
	Config     core.RuntimeConfig
}

// Run starts a local session in the alternate screen.
func Run(opts GameOptions) (GameResult, error) {
	model := NewGameModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Config: opts.Config}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{Config: opts.Config}, nil
	}
	return GameResult{BackToMenu: m.WantsMenu(), Config: m.config}, nil
}
