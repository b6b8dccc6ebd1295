package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// scoreboardLimit caps the runs loaded per pack.
const scoreboardLimit = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 3)
	boardErrStyle   = boardNoteStyle.Foreground(lipgloss.Color("1"))
)

// outcomeLabels names run outcomes in the table.
var outcomeLabels = map[string]string{
	storage.OutcomeCompleted: "cleared",
	storage.OutcomeGameOver:  "hanged",
	storage.OutcomeAbandoned: "left",
}

// scoreboardExit says how the scoreboard was left.
type scoreboardExit int

const (
	scoreboardOpen scoreboardExit = iota
	scoreboardBack
	scoreboardQuit
)

// ScoreboardModel shows the best runs of one pack at a time.
type ScoreboardModel struct {
	store *storage.Store
	packs []registry.PackInfo
	pack  int // Index into packs

	runs  []storage.Run
	stats *storage.PackStats
	err   error // Shown in place of the table

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	exit   scoreboardExit
}

// NewScoreboardModel opens the scoreboard on pack.
// An unknown or empty pack opens the first registered one.
func NewScoreboardModel(store *storage.Store, pack string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		packs:  registry.List(),
		keys:   NewKeyMapper().Scores,
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, p := range m.packs {
		if p.ID == pack {
			m.pack = i
		}
	}
	m.help.Width = width
	m.table = newRunsTable(width, height)
	m.reload()
	return m
}

// newRunsTable sizes the runs table to the screen. Player takes the slack.
func newRunsTable(width, height int) table.Model {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Level", Width: 6},
		{Title: "Result", Width: 8},
		{Title: "Player", Width: 12},
		{Title: "When", Width: 12},
	}
	fixed := 0
	for _, c := range cols {
		fixed += c.Width + 2
	}
	if slack := width - 6 - fixed; slack > 0 {
		cols[4].Width += min(slack, 16)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height-11, 3)),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true)
	st.Selected = st.Selected.Bold(false).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(st)
	return t
}

// reload fetches runs and stats of the selected pack and refills the table.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store != nil && len(m.packs) > 0 {
		id := m.packs[m.pack].ID
		m.runs, m.err = m.store.TopRuns(id, scoreboardLimit)
		if m.err == nil {
			m.stats, m.err = m.store.GetPackStats(id)
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		label, ok := outcomeLabels[r.Outcome]
		if !ok {
			label = r.Outcome
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			fmt.Sprint(r.Level),
			label,
			r.Player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shiftPack selects the pack delta steps away, wrapping around.
func (m *ScoreboardModel) shiftPack(delta int) {
	if n := len(m.packs); n > 0 {
		m.pack = (m.pack + delta + n) % n
		m.reload()
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update switches packs, scrolls the table and handles leaving.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunsTable(m.width, m.height)
		m.fillTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = scoreboardQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = scoreboardBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextPack):
			m.shiftPack(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevPack):
			m.shiftPack(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders title, pack tabs, stats, runs and help stacked and centered.
func (m ScoreboardModel) View() string {
	if m.exit != scoreboardOpen {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		boardTitleStyle.Render("HIGH SCORES"),
		m.tabs(),
		m.statsLine(),
		boardFrameStyle.Render(m.runsView()),
		m.help.View(m.keys),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

// tabs lists the packs, or only the selected one when they do not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.packs) == 0 {
		return ""
	}
	parts := make([]string, len(m.packs))
	for i, p := range m.packs {
		if i == m.pack {
			parts[i] = boardActiveTab.Render(p.Title)
		} else {
			parts[i] = boardTabStyle.Render(p.Title)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if lipgloss.Width(row) > m.width-4 {
		row = boardActiveTab.Render("← " + m.packs[m.pack].Title + " →")
	}
	return "\n" + row + "\n"
}

// statsLine summarizes the selected pack.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return ""
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Avg: %.1f  Best level: %d  Cleared: %d",
		m.stats.RunsCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestLevel, m.stats.Completed)
}

func (m ScoreboardModel) runsView() string {
	switch {
	case m.err != nil:
		return boardErrStyle.Render("Cannot load runs:\n" + m.err.Error())
	case len(m.runs) == 0:
		return boardNoteStyle.Render("No runs recorded yet.\nFinish a game to set a high score!")
	}
	return m.table.View()
}

// Runs returns the runs currently listed.
func (m ScoreboardModel) Runs() []storage.Run {
	return m.runs
}

// Pack returns the ID of the selected pack.
func (m ScoreboardModel) Pack() string {
	if len(m.packs) == 0 {
		return ""
	}
	return m.packs[m.pack].ID
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.exit == scoreboardBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.exit == scoreboardQuit
}

// RunScoreboard shows the scoreboard full screen.
// goBack is true when the player returns to the menu rather than quitting.
func RunScoreboard(store *storage.Store, pack string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, pack, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
