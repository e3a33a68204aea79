package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/flow"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Ledger records finished matches and serves them back for the title screen.
type Ledger interface {
	pong.ResultRecorder
	ResultsSource
}

// Options configures a Model.
type Options struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig

	// Ledger is optional. Without it no results are shown or recorded.
	Ledger Ledger
	Logger *log.Logger

	// HoldWindow overrides DefaultHoldWindow.
	HoldWindow time.Duration

	// ScreenshotDir enables ctrl+s screenshots when set.
	ScreenshotDir string
}

// Model is the Bubble Tea model hosting one pong game.
type Model struct {
	game     *pong.Game
	cfg      config.PongConfig
	runtime  core.RuntimeConfig
	keys     KeyMap
	held     *heldKeys
	help     help.Model
	screen   *core.Screen
	results  *Results
	logger   *log.Logger
	shotDir  string
	frame    pong.Frame
	lastTick time.Time
	quitting bool
}

// NewModel creates a model with a fresh game in Title.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameOpts := []pong.Option{pong.WithLogger(logger)}
	var source ResultsSource
	if opts.Ledger != nil {
		gameOpts = append(gameOpts, pong.WithRecorder(opts.Ledger))
		source = opts.Ledger
	}
	game := pong.New(opts.Config, gameOpts...)

	results := NewResults(source)
	results.Refresh()

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		game:    game,
		cfg:     opts.Config,
		runtime: opts.Runtime,
		keys:    NewKeyMap(opts.Config.Keys),
		held:    newHeldKeys(opts.HoldWindow),
		help:    h,
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		results: results,
		logger:  logger,
		shotDir: opts.ScreenshotDir,
		frame:   game.Frame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.screenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.held.Press(m.keys.Lookup(msg), time.Now())
	return m, nil
}

// handleTick advances the game by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.runtime.TickInterval()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	prev := m.frame.State
	m.frame = m.game.Tick(m.runtime.StepFor(elapsed), m.held.Frame(now))

	if m.frame.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.frame.State == flow.Title && prev != flow.Title {
		m.results.Refresh()
	}
	return m, tickCmd(m.runtime.TickInterval())
}

// screenshot saves the current arena as text.
func (m *Model) screenshot() {
	if m.shotDir == "" {
		return
	}
	DrawFrame(m.screen, m.frame, m.cfg.Arena)
	path, err := SaveScreenshot(m.shotDir, m.screen, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// SaveScreenshot writes the screen as plain text into dir and returns the
// file path.
func SaveScreenshot(dir string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Frame returns the last published frame.
func (m Model) Frame() pong.Frame {
	return m.frame
}

// View renders the arena, the title-screen results and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys))

	var results string
	if m.frame.State == flow.Title {
		results = m.results.View()
	}

	arenaH := m.runtime.ScreenH - lipgloss.Height(helpLine)
	if results != "" {
		arenaH -= lipgloss.Height(results)
	}
	m.screen.Resize(m.runtime.ScreenW, max(arenaH, 3))
	DrawFrame(m.screen, m.frame, m.cfg.Arena)

	parts := []string{RenderScreen(m.screen)}
	if results != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(m.runtime.ScreenW, lipgloss.Center, results))
	}
	parts = append(parts, helpLine)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
