package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// holdDuration is how long a movement key stays pressed without a repeat.
const holdDuration = 120 * time.Millisecond

// Model is the Bubble Tea model for running a match.
type Model struct {
	game        *pong.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	pressed     core.MultiInputFrame
	held        *heldInput
	gameState   core.GameState
	quitting    bool
	backPressed bool
	embedded    bool // hosted inside a session; Back does not quit the program
	resultSaved bool // Whether the result has been saved for the current game over
}

// NewModel creates a new Bubble Tea model and starts the match.
func NewModel(game *pong.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	left, right := game.Drivers()
	holdTicks := int(holdDuration / cfg.TickInterval())

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(left == "human" && right == "human"),
		pressed:   core.NewMultiInputFrame(),
		held:      newHeldInput(holdTicks),
		gameState: game.State(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
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
		m.saveScreenshot()
		return m, nil
	}

	_, action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backPressed = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	m.keyMapper.MapKeyToMultiFrame(msg, &m.pressed)
	return m, nil
}

// handleResize processes window resize events.
// The field is projected onto whatever size the terminal has, so the match keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.absorb(m.pressed)
	m.held.apply(&m.pressed)

	result := m.game.Step(m.pressed)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.resultSaved:
		m.saveResult()
		m.resultSaved = true
	case !m.gameState.GameOver:
		// A restart starts a new match to save
		m.resultSaved = false
	}

	// Clear input for next frame
	m.pressed.Clear()

	return m, tickCmd(m.config.TickInterval())
}

// saveResult stores the finished match. Storage failures do not stop play.
func (m Model) saveResult() {
	summary, ok := m.game.Result()
	if !ok || m.store == nil {
		return
	}
	id, err := SaveSummary(m.store, summary, m.game.Config().Match.WinScore)
	if err != nil {
		m.logger.Error("cannot save match", "err", err)
		return
	}
	m.logger.Info("match saved", "id", id, "winner", summary.WinnerCode())
}

// SaveSummary stores a finished match and returns its ID.
func SaveSummary(store *storage.Store, s pong.Summary, winScore int) (string, error) {
	return store.SaveResult(storage.MatchRecord{
		LeftDriver:  s.LeftDriver,
		RightDriver: s.RightDriver,
		LeftScore:   s.LeftScore,
		RightScore:  s.RightScore,
		Winner:      s.WinnerCode(),
		WinScore:    winScore,
		Duration:    s.Duration,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
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
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackPressed returns true if the user asked to leave the match screen.
func (m Model) BackPressed() bool {
	return m.backPressed
}

// Run starts the Bubble Tea program for the given game.
func Run(game *pong.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, store, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
