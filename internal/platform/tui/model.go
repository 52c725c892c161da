package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Emilinya/bounce/internal/core"
	"github.com/Emilinya/bounce/internal/registry"
	"github.com/Emilinya/bounce/internal/storage"
)

// Model is the Bubble Tea model for running a single demo.
type Model struct {
	demo       registry.Demo
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedSeed  bool
	embedded   bool // Back returns to a surrounding menu instead of quitting
	keyMapper  *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame
	state      core.DemoState
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given demo.
// A nil store disables session saving.
func NewModel(demo registry.Demo, store *storage.Store, cfg core.RuntimeConfig) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		demo:       demo,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.Default(),
		config:     cfg,
		fixedSeed:  fixed,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// WithLogger returns a copy of m that logs through l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init initializes the model and starts the demo.
func (m Model) Init() tea.Cmd {
	m.demo.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "err", err)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.endSession()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack:
		m.endSession()
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	case action == core.ActionRestart:
		m.restart()
	case IsDirection(action):
		m.held.Press(action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The demo is laid out for
// the new size from scratch, which ends the current session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	m.endSession()
	m.held.Release()
	m.demo.Reset(m.config)
	m.state = m.demo.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.inputFrame.Clone()
	m.held.Apply(&frame)

	result := m.demo.Step(frame)
	m.state = result.State

	m.inputFrame.Clear()
	m.held.Tick()

	return m, tickCmd(m.config.TickRate)
}

// restart saves the current session and resets the demo, with a new seed
// unless one was fixed on the command line.
func (m *Model) restart() {
	m.endSession()
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.held.Release()
	m.inputFrame.Clear()
	m.demo.Reset(m.config)
	m.state = m.demo.State()
}

// endSession stores the demo's counters if anything was simulated.
func (m *Model) endSession() {
	state := m.demo.State()
	m.state = state
	if m.store == nil || state.Ticks == 0 {
		return
	}

	sess := storage.Session{
		DemoID:    m.demo.ID(),
		Bounces:   state.Bounces,
		Anomalies: state.Anomalies,
		Ticks:     state.Ticks,
	}
	if _, err := m.store.SaveSession(sess); err != nil {
		m.logger.Warn("could not save session", "demo", sess.DemoID, "err", err)
	}
}

// saveScreenshot writes the current screen to ~/.bounce/screenshots.
func (m *Model) saveScreenshot() error {
	m.screen.Clear()
	m.demo.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".bounce", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.demo.ID(), timestamp))

	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.demo.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the demo state observed at the last tick or session end.
func (m Model) State() core.DemoState {
	return m.state
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given demo.
func Run(demo registry.Demo, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(demo, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
