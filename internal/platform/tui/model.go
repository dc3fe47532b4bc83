package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/registry"
	"github.com/vovakirdan/tui-gorillas/internal/storage"
)

// MatchSaver persists finished matches. *storage.Store implements it.
type MatchSaver interface {
	SaveMatch(m core.MatchSummary) (int64, error)
}

var _ MatchSaver = (*storage.Store)(nil)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	saver      MatchSaver
	config     core.RuntimeConfig
	keys       *KeyMapper
	painter    *Painter
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	savedMatch string // ID of the last summary handed to saver
	quitting   bool
	shotDir    string
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes model events to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithPainter sets the painter used by View.
func WithPainter(p *Painter) Option {
	return func(m *Model) {
		m.painter = p
	}
}

// WithScreenshotDir overrides where ctrl+s dumps go.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// NewModel creates a new Bubble Tea model for the given game.
// saver may be nil, in which case finished matches are not recorded.
func NewModel(game registry.Game, saver MatchSaver, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		saver:      saver,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.painter == nil {
		m.painter = defaultPainter
	}
	if m.shotDir == "" {
		m.shotDir = filepath.Join(os.Getenv("HOME"), ".gorillas", "screenshots")
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
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
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Leaving is only offered while nothing is in progress
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
// The game redraws to whatever size the screen has, so the match keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.logger.Info("rematch started", "game", m.game.ID())
	}
	m.recordMatch()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordMatch saves a finished match once.
func (m *Model) recordMatch() {
	sum := m.gameState.Summary
	if !m.gameState.GameOver || sum == nil || sum.ID == m.savedMatch {
		return
	}
	m.savedMatch = sum.ID

	m.logger.Info("match over",
		"match", sum.ID,
		"winner", sum.Winner,
		"score", fmt.Sprintf("%d-%d", sum.Score1, sum.Score2),
		"rounds", sum.Rounds,
	)
	if m.saver == nil {
		return
	}
	if _, err := m.saver.SaveMatch(*sum); err != nil {
		m.logger.Error("could not save match", "match", sum.ID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.shotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.Render(m.screen)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, saver MatchSaver, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, saver, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
