package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Emilinya/bounce/internal/core"
	"github.com/Emilinya/bounce/internal/registry"
	"github.com/Emilinya/bounce/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 20
	maxSessions        = 100
)

// StatsKeyMap defines the key bindings for the stats board.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextDemo key.Binding
	PrevDemo key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextDemo, k.PrevDemo, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextDemo, k.PrevDemo},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextDemo: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next demo"),
		),
		PrevDemo: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev demo"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsBoardModel shows the best sessions per demo and the anomaly log summary.
type StatsBoardModel struct {
	demos       []registry.DemoInfo
	demoCursor  int
	store       *storage.Store
	tickRate    int
	sessions    []storage.Session
	summary     *storage.DemoStats
	anomalies   []storage.AnomalyCount
	loadErr     error
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewStatsBoardModel creates a new stats board model.
func NewStatsBoardModel(store *storage.Store, cfg core.RuntimeConfig) StatsBoardModel {
	h := help.New()
	h.ShowAll = false

	m := StatsBoardModel{
		demos:       registry.List(),
		store:       store,
		tickRate:    cfg.TickRate,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		showSidebar: cfg.ScreenW >= minWidthForSidebar,
	}
	if m.tickRate <= 0 {
		m.tickRate = core.DefaultConfig().TickRate
	}

	m.table = m.createTable()
	m.reload()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *StatsBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Bounces", Width: 8},
		{Title: "Anomalies", Width: 9},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches sessions and stats for the selected demo.
func (m *StatsBoardModel) reload() {
	m.sessions, m.summary, m.anomalies, m.loadErr = nil, nil, nil, nil
	if m.store != nil && len(m.demos) > 0 {
		id := m.demos[m.demoCursor].ID
		if m.sessions, m.loadErr = m.store.TopSessions(id, maxSessions); m.loadErr == nil {
			if m.summary, m.loadErr = m.store.GetDemoStats(id); m.loadErr == nil {
				m.anomalies, m.loadErr = m.store.AnomalyCounts()
			}
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *StatsBoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Bounces),
			fmt.Sprintf("%d", s.Anomalies),
			m.playTime(s.Ticks).String(),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// playTime converts simulation ticks to wall time at the configured rate.
func (m StatsBoardModel) playTime(ticks int) time.Duration {
	d := time.Duration(ticks) * time.Second / time.Duration(m.tickRate)
	return d.Round(time.Second)
}

// Init initializes the stats board model.
func (m StatsBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats board.
func (m StatsBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextDemo):
			if len(m.demos) > 0 {
				m.demoCursor = (m.demoCursor + 1) % len(m.demos)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevDemo):
			if len(m.demos) > 0 {
				m.demoCursor = (m.demoCursor - 1 + len(m.demos)) % len(m.demos)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats board.
func (m StatsBoardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "SESSIONS"
	if len(m.demos) > 0 {
		title = fmt.Sprintf("SESSIONS - %s", m.demos[m.demoCursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString("\n")
	b.WriteString(dim.Render(m.summaryLine()))
	b.WriteString("\n")
	b.WriteString(dim.Render(m.anomalyLine()))
	b.WriteString("\n\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the board with a sidebar for demo selection.
func (m StatsBoardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Demos\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, d := range m.demos {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.demoCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(d.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the board with the demo name above the table.
func (m StatsBoardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.demos) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.demos[m.demoCursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m StatsBoardModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		msg := "No sessions recorded yet.\nRun a demo to record one!"
		if m.store == nil {
			msg = "Session storage is unavailable."
		}
		return emptyStyle.Render(msg)
	}

	return m.table.View()
}

func (m StatsBoardModel) summaryLine() string {
	switch {
	case m.loadErr != nil:
		return "error: " + m.loadErr.Error()
	case m.summary == nil || m.summary.Sessions == 0:
		return "no sessions"
	}
	s := m.summary
	return fmt.Sprintf("%d sessions  best %d  avg %.1f  bounces %d  anomalies %d  played %s",
		s.Sessions, s.MaxBounces, s.AvgBounces, s.TotalBounces, s.TotalAnomalies,
		m.playTime(int(s.TotalTicks)))
}

func (m StatsBoardModel) anomalyLine() string {
	if len(m.anomalies) == 0 {
		return "no anomalies logged"
	}
	parts := make([]string, len(m.anomalies))
	for i, a := range m.anomalies {
		parts[i] = fmt.Sprintf("%s/%s: %d", a.Op, a.Kind, a.Count)
	}
	return "anomalies  " + strings.Join(parts, "  ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsBoardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsBoardModel) IsQuitting() bool {
	return m.quitting
}

// RunStatsBoard runs the stats board screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunStatsBoard(store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(
		NewStatsBoardModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(StatsBoardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
