package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkazmin/brickfall/internal/core"
	"github.com/vkazmin/brickfall/internal/registry"
	"github.com/vkazmin/brickfall/internal/storage"
)

// maxFrameTime caps the wall time credited to a single render frame so a
// suspended terminal doesn't trigger a burst of catch-up simulation ticks.
const maxFrameTime = 0.25

// Model is the Bubble Tea model for running a game session.
// Rendering happens at the configured FPS; the simulation always advances
// in fixed increments of 1/TickRate seconds, accumulated from wall time.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	color      bool
	lastTick   time.Time
	accum      float64 // Unsimulated wall time in seconds
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, color bool) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		color:      color,
	}
}

// Init initializes the model and starts the render loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse processes mouse motion and clicks.
// The cursor position is always tracked; a left press also counts as a
// launch request for the current frame.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.SetCursor(msg.X, msg.Y)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.MouseClicked = true
	}

	return m, nil
}

// handleResize processes window resize events. Only presentation state
// changes: the screen buffer and the game's cursor mapping pick up the
// new dimensions while the simulation keeps running untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.config)

	return m, nil
}

// handleTick advances the simulation by however many fixed steps the
// elapsed wall time covers, then schedules the next render frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.lastTick.IsZero() {
		m.lastTick = now
		return m, tickCmd(m.config.FPS)
	}

	elapsed := now.Sub(m.lastTick).Seconds()
	m.lastTick = now
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	m.accum += elapsed

	dt := 1.0 / float64(m.config.TickRate)
	for m.accum >= dt {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		m.inputFrame.Clear()
		m.accum -= dt
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.FPS)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if !m.color {
		return m.screen.String()
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, color bool) error {
	model := NewModel(game, store, cfg, color)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Track cursor for paddle control
	)

	_, err := p.Run()
	return err
}
