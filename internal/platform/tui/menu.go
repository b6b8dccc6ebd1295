package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// MenuItem is one word pack in the picker.
type MenuItem struct {
	PackID    string
	Title     string
	Words     int // 0 when the pack cannot be loaded
	HighScore int
	HasScore  bool
}

// menuExit says how the picker was left.
type menuExit int

const (
	menuOpen menuExit = iota
	menuPlay
	menuScores
	menuQuit
)

var (
	pickerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).MarginBottom(1)
	pickerPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	pickerRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pickerCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	pickerDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the pack picker.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   PickerKeyMap
	help   help.Model
	exit   menuExit
}

// NewMenuModel builds the picker from the registered packs.
// The cursor starts on cfg.Pack and best scores come from store when it is set.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	packs := registry.List()
	m := MenuModel{
		items:  make([]MenuItem, len(packs)),
		config: cfg,
		keys:   NewKeyMapper().Picker,
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW

	for i, p := range packs {
		m.items[i] = packItem(store, p)
		if p.ID == cfg.Pack {
			m.cursor = i
		}
	}
	return m
}

func packItem(store *storage.Store, p registry.PackInfo) MenuItem {
	item := MenuItem{PackID: p.ID, Title: p.Title}
	if words, err := registry.Load(p.ID); err == nil {
		item.Words = len(words)
	}
	if store != nil {
		if high, ok, err := store.HighScore(p.ID); err == nil {
			item.HighScore, item.HasScore = high, ok
		}
	}
	return item
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and records how the picker is left.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = menuQuit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Play):
			if len(m.items) > 0 {
				m.exit = menuPlay
			}
		case key.Matches(msg, m.keys.Scores):
			m.exit = menuScores
		}
		if m.exit != menuOpen {
			if len(m.items) > 0 {
				m.config.Pack = m.items[m.cursor].PackID
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

// move shifts the cursor, wrapping at both ends.
func (m *MenuModel) move(delta int) {
	if n := len(m.items); n > 0 {
		m.cursor = (m.cursor + delta + n) % n
	}
}

// View renders the pack list in a panel centered on the screen.
func (m MenuModel) View() string {
	if m.exit == menuQuit {
		return ""
	}

	titleW := 0
	for _, it := range m.items {
		titleW = max(titleW, lipgloss.Width(it.Title))
	}

	rows := make([]string, 0, len(m.items))
	for i, it := range m.items {
		best := "-"
		if it.HasScore {
			best = fmt.Sprintf("%d", it.HighScore)
		}
		row := fmt.Sprintf(" %-*s  %4d words  best %4s ", titleW, it.Title, it.Words, best)
		if i == m.cursor {
			rows = append(rows, pickerCurStyle.Render(row))
		} else {
			rows = append(rows, pickerRowStyle.Render(row))
		}
	}
	if len(rows) == 0 {
		rows = append(rows, pickerDimStyle.Render("No word packs registered."))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		pickerTitleStyle.Render("H A N G M A N"),
		pickerDimStyle.Render("Pick a word pack"),
		pickerPanelStyle.Render(strings.Join(rows, "\n")),
		m.help.View(m.keys),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// Choice returns the pack to play, or "" when the player did not pick one.
func (m MenuModel) Choice() string {
	if m.exit != menuPlay {
		return ""
	}
	return m.config.Pack
}

// IsQuitting reports whether the player left the picker.
func (m MenuModel) IsQuitting() bool {
	return m.exit == menuQuit
}

// WantsScoreboard reports whether the player asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.exit == menuScores
}

// Config returns the runtime config with the latest size and pack.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	PackID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	return MenuResult{
		PackID:          m.Choice(),
		Config:          m.config,
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            m.exit == menuQuit || m.exit == menuOpen,
	}
}

// RunMenu runs the picker full screen and returns the player's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
