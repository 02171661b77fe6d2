// Package pong hosts a match: it feeds driver input to the paddles, steps
// the physics world, forwards paddle contacts to the ball and lets the match
// controller keep score. Left paddle is Player 1, right paddle is Player 2.
package pong

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/arena"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Default drivers
const (
	DefaultLeftDriver  = "human"
	DefaultRightDriver = "cpu"
)

// skillSetter is implemented by drivers whose skill follows the difficulty.
type skillSetter interface {
	SetSkill(float64)
}

// Summary describes a finished match.
type Summary struct {
	match.Result
	LeftDriver  string
	RightDriver string
	Ticks       uint64
	Duration    time.Duration // simulated time
}

// Game implements the Pong match host.
type Game struct {
	cfg        config.PongConfig
	runtime    core.RuntimeConfig
	driverIDs  [2]string
	logger     *log.Logger
	presenters []match.ResultPresenter

	left, right *match.Paddle
	ball        *match.Ball
	world       *arena.World
	ctrl        *match.Controller
	drivers     [2]registry.Driver
	difficulty  *config.DifficultyManager

	paused  bool
	tick    uint64
	summary *Summary
}

// Option configures a Game.
type Option func(*Game)

// WithDrivers selects the driver IDs for the left and right paddles.
func WithDrivers(left, right string) Option {
	return func(g *Game) {
		g.driverIDs = [2]string{left, right}
	}
}

// WithLogger sets the logger used by the game and its match controller.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithPresenter adds a collaborator notified once when a match is won.
func WithPresenter(p match.ResultPresenter) Option {
	return func(g *Game) {
		if p != nil {
			g.presenters = append(g.presenters, p)
		}
	}
}

// New creates a game. The configuration and driver IDs are checked here so
// that Reset cannot fail on them later.
func New(cfg config.PongConfig, opts ...Option) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		runtime:   core.DefaultConfig(),
		driverIDs: [2]string{DefaultLeftDriver, DefaultRightDriver},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pong: %w", err)
	}
	for _, id := range g.driverIDs {
		if !registry.Exists(id) {
			return nil, fmt.Errorf("pong: unknown driver %q", id)
		}
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset starts a new match.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	if runtime.TickRate <= 0 {
		return &match.ConfigError{Field: "tick_rate", Reason: fmt.Sprintf("must be positive, got %d", runtime.TickRate)}
	}
	g.runtime = runtime

	left, err := match.NewPaddle(g.cfg.PaddleFor(core.SideLeft))
	if err != nil {
		return fmt.Errorf("pong: left paddle: %w", err)
	}
	right, err := match.NewPaddle(g.cfg.PaddleFor(core.SideRight))
	if err != nil {
		return fmt.Errorf("pong: right paddle: %w", err)
	}
	ballCfg, err := g.cfg.BallSettings()
	if err != nil {
		return fmt.Errorf("pong: %w", err)
	}
	ball, err := match.NewBall(ballCfg)
	if err != nil {
		return fmt.Errorf("pong: %w", err)
	}
	world, err := arena.New(g.cfg.Arena(), ball, left, right)
	if err != nil {
		return fmt.Errorf("pong: %w", err)
	}
	ctrl, err := match.NewController(g.cfg.Rules(), ball, left, right, g,
		match.WithLogger(g.logger))
	if err != nil {
		return fmt.Errorf("pong: %w", err)
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.CPU.Skill)
	skill := g.difficulty.Skill(0)
	for i, id := range g.driverIDs {
		// Each side gets its own stream so a CPU mirror match does not move in lockstep.
		d, err := registry.Create(id, registry.Options{Seed: runtime.Seed + int64(i), Skill: skill})
		if err != nil {
			return fmt.Errorf("pong: %w", err)
		}
		g.drivers[i] = d
	}

	g.left, g.right, g.ball, g.world, g.ctrl = left, right, ball, world, ctrl
	g.paused = false
	g.tick = 0
	g.summary = nil

	ball.Launch()
	g.logger.Debug("match started",
		"left", g.driverIDs[0], "right", g.driverIDs[1], "win_score", g.cfg.Match.WinScore, "skill", skill)
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	if g.ctrl.State() == match.StateGameOver {
		if in.Has(core.ActionRestart) {
			if err := g.Reset(g.runtime); err != nil {
				g.logger.Error("restart failed", "err", err)
			}
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := g.runtime.Dt()

	for i, p := range []*match.Paddle{g.left, g.right} {
		axis := g.drivers[i].Axis(in.Side(p.Side()), g.view(p))
		p.Advance(core.ClampF(axis, -1, 1), dt)
	}

	contacts := g.world.Integrate(dt)
	if g.ctrl.State() == match.StatePlaying {
		for _, c := range contacts {
			g.ball.ApplyContact(c)
		}
	}

	if ev := g.ctrl.Step(dt); ev == match.EventScored {
		g.adjustSkill()
	}

	return core.StepResult{State: g.State()}
}

// view builds what a driver of paddle p may observe.
func (g *Game) view(p *match.Paddle) registry.View {
	return registry.View{
		Side:             p.Side(),
		Paddle:           p.Position(),
		PaddleHalfHeight: p.HalfHeight(),
		Ball:             g.ball.Position(),
		BallVelocity:     g.ball.Velocity(),
	}
}

// adjustSkill retunes computer drivers after a point.
func (g *Game) adjustSkill() {
	if !g.difficulty.IsEnabled() {
		return
	}
	l, r := g.ctrl.Scores()
	skill := g.difficulty.Skill(l + r)
	for _, d := range g.drivers {
		if s, ok := d.(skillSetter); ok {
			s.SetSkill(skill)
		}
	}
	g.logger.Debug("cpu skill adjusted", "skill", skill, "points", l+r)
}

// PresentResult receives the winner from the match controller.
func (g *Game) PresentResult(r match.Result) {
	g.summary = &Summary{
		Result:      r,
		LeftDriver:  g.driverIDs[0],
		RightDriver: g.driverIDs[1],
		Ticks:       g.tick,
		Duration:    time.Duration(g.tick) * g.runtime.TickInterval(),
	}
	g.logger.Debug("result recorded", "player", r.WinnerCode(), "ticks", g.tick)
	for _, p := range g.presenters {
		p.PresentResult(r)
	}
}

// Result returns the finished match summary, or false while it is running.
func (g *Game) Result() (Summary, bool) {
	if g.summary == nil {
		return Summary{}, false
	}
	return *g.summary, true
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Drivers returns the driver IDs for the left and right paddles.
func (g *Game) Drivers() (left, right string) {
	return g.driverIDs[0], g.driverIDs[1]
}

// Config returns the match configuration.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	l, r := g.ctrl.Scores()
	return core.GameState{
		LeftScore:  l,
		RightScore: r,
		GameOver:   g.ctrl.State() == match.StateGameOver,
		Paused:     g.paused,
		Winner:     g.ctrl.Outcome().Winner(),
	}
}
