package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Emilinya/bounce/internal/core"
	"github.com/Emilinya/bounce/internal/registry"
	"github.com/Emilinya/bounce/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenDemo
	screenStats
)

// SessionModel manages the full flow inside one program:
// menu -> demo -> menu, and menu -> stats -> menu.
type SessionModel struct {
	store    *storage.Store
	opts     registry.Options
	logger   *log.Logger
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	demo     Model
	stats    StatsBoardModel
	quitting bool
}

// NewSessionModel creates a new session model. Demos are created with opts,
// so every demo in the session shares its preset and checker.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts registry.Options, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:  store,
		opts:   opts,
		logger: logger,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenDemo:
		return m.updateDemo(msg)
	case screenStats:
		return m.updateStats(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	// The menu quits its own program when a choice is made; those commands
	// are dropped here so the session keeps running.
	case m.menu.WantsStats():
		m.stats = NewStatsBoardModel(m.store, m.config)
		m.screen = screenStats
		return m, m.stats.Init()

	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.Selected() != nil:
		demo, err := registry.Create(m.menu.Selected().DemoID, m.opts)
		if err != nil {
			m.logger.Error("could not create demo", "err", err)
			m.menu = NewMenuModel(m.config)
			return m, nil
		}
		if c, ok := demo.(registry.Configurable); ok {
			if err := c.Configure(); err != nil {
				m.logger.Warn("config error, using defaults", "demo", demo.ID(), "err", err)
			}
		}

		cfg := m.config
		cfg.Seed = 0
		m.demo = NewModel(demo, m.store, cfg).WithLogger(m.logger)
		m.demo.embedded = true
		m.screen = screenDemo
		return m, m.demo.Init()
	}

	return m, cmd
}

// updateDemo handles updates when a demo is running.
func (m SessionModel) updateDemo(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.demo.Update(msg)
	if demoModel, ok := newModel.(Model); ok {
		m.demo = demoModel
	}

	if m.demo.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.demo.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateStats handles updates when the stats board is shown.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	if statsModel, ok := newModel.(StatsBoardModel); ok {
		m.stats = statsModel
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.stats.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenDemo:
		return m.demo.View()
	case screenStats:
		return m.stats.View()
	}
	return m.menu.View()
}
