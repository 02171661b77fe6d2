package match

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// State is the scoring state machine's current phase.
type State int

const (
	StatePlaying State = iota
	StateAwaitingReset
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateAwaitingReset:
		return "awaiting-reset"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Outcome is the match result so far.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeLeftWon
	OutcomeRightWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLeftWon:
		return "left-won"
	case OutcomeRightWon:
		return "right-won"
	default:
		return "ongoing"
	}
}

// Winner returns the winning side, or SideNone while ongoing.
func (o Outcome) Winner() core.Side {
	switch o {
	case OutcomeLeftWon:
		return core.SideLeft
	case OutcomeRightWon:
		return core.SideRight
	default:
		return core.SideNone
	}
}

// Event reports what a Step did.
type Event int

const (
	EventNone Event = iota
	EventScored
	EventBallReset
	EventGameOver
)

// Config holds the match rules.
type Config struct {
	WinScore       int
	AfterScoreWait float64 // seconds of simulated time between a point and the ball reset
	ResetPaddles   bool    // also recenter both paddles when the ball resets
}

// Validate rejects rules the match cannot be played with.
func (c Config) Validate() error {
	if c.WinScore <= 0 {
		return invalid("win_score", "must be positive, got %d", c.WinScore)
	}
	if !nonNegative(c.AfterScoreWait) {
		return invalid("after_score_wait", "must be a finite non-negative duration, got %g", c.AfterScoreWait)
	}
	return nil
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for score and state transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller runs the scoring state machine. It is driven by exactly one
// tick loop and does no locking.
type Controller struct {
	cfg       Config
	ball      *Ball
	left      *Paddle
	right     *Paddle
	presenter ResultPresenter
	logger    *log.Logger

	state      State
	leftScore  int
	rightScore int
	elapsed    float64
	lastScorer core.Side
	outcome    Outcome
}

// NewController wires a match together. The left paddle's right edge must
// lie strictly left of the right paddle's left edge.
func NewController(cfg Config, ball *Ball, left, right *Paddle, presenter ResultPresenter, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ball == nil || left == nil || right == nil {
		return nil, invalid("bodies", "ball and both paddles are required")
	}
	if left.Side() != core.SideLeft || right.Side() != core.SideRight {
		return nil, invalid("paddle.side", "paddles are swapped (%s, %s)", left.Side(), right.Side())
	}
	if left.RightBoundary() >= right.LeftBoundary() {
		return nil, invalid("field.width", "paddles overlap: left edge %g >= right edge %g",
			left.RightBoundary(), right.LeftBoundary())
	}

	c := &Controller{
		cfg:       cfg,
		ball:      ball,
		left:      left,
		right:     right,
		presenter: presenter,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Scored evaluates both scoring conditions against the current ball X.
func (c *Controller) Scored() (scoredLeft, scoredRight bool) {
	x := c.ball.PositionX()
	return x >= c.right.RightBoundary(), x <= c.left.LeftBoundary()
}

// Step advances the state machine by one physics tick of dt seconds.
func (c *Controller) Step(dt float64) Event {
	switch c.state {
	case StatePlaying:
		return c.stepPlaying()
	case StateAwaitingReset:
		return c.stepAwaiting(dt)
	default:
		return EventNone
	}
}

func (c *Controller) stepPlaying() Event {
	scoredLeft, scoredRight := c.Scored()

	var scorer core.Side
	switch {
	case scoredLeft: // evaluated first, so it wins a simultaneous hit
		scorer = core.SideLeft
	case scoredRight:
		scorer = core.SideRight
	default:
		return EventNone
	}

	score := c.credit(scorer)
	c.logger.Debug("point scored", "side", scorer, "left", c.leftScore, "right", c.rightScore)

	if score >= c.cfg.WinScore {
		c.finish(scorer)
		return EventGameOver
	}

	c.state = StateAwaitingReset
	c.elapsed = 0
	c.lastScorer = scorer
	return EventScored
}

func (c *Controller) stepAwaiting(dt float64) Event {
	// elapsed is a float sum, so at 60 Hz the reset can land one tick after
	// the nominal wait; it never lands before it.
	c.elapsed += dt
	if c.elapsed < c.cfg.AfterScoreWait {
		return EventNone
	}

	// Serve toward whoever just conceded.
	direction := core.Left
	if c.lastScorer == core.SideLeft {
		direction = core.Right
	}
	c.ball.Reset(direction)
	if c.cfg.ResetPaddles {
		c.left.ResetPosition()
		c.right.ResetPosition()
	}

	c.state = StatePlaying
	c.elapsed = 0
	c.logger.Debug("ball reset", "serve", c.lastScorer.Opponent())
	return EventBallReset
}

func (c *Controller) credit(side core.Side) int {
	if side == core.SideLeft {
		c.leftScore++
		return c.leftScore
	}
	c.rightScore++
	return c.rightScore
}

func (c *Controller) finish(winner core.Side) {
	c.state = StateGameOver
	if winner == core.SideLeft {
		c.outcome = OutcomeLeftWon
	} else {
		c.outcome = OutcomeRightWon
	}

	result := c.result()
	c.logger.Info("match over", "winner", winner, "left", result.LeftScore, "right", result.RightScore)
	if c.presenter != nil {
		c.presenter.PresentResult(result)
	}
}

func (c *Controller) result() Result {
	return Result{
		Winner:     c.outcome.Winner(),
		LeftScore:  c.leftScore,
		RightScore: c.rightScore,
	}
}

// Result returns the final result once the match is over.
func (c *Controller) Result() (Result, bool) {
	if c.state != StateGameOver {
		return Result{}, false
	}
	return c.result(), true
}

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Outcome returns the match outcome.
func (c *Controller) Outcome() Outcome { return c.outcome }

// Scores returns the left and right scores.
func (c *Controller) Scores() (left, right int) { return c.leftScore, c.rightScore }

// Elapsed returns the seconds waited so far in StateAwaitingReset.
func (c *Controller) Elapsed() float64 { return c.elapsed }

// Config returns the match rules.
func (c *Controller) Config() Config { return c.cfg }
