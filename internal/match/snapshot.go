package match

import "github.com/vovakirdan/tui-pong/internal/core"

// Snapshot is a comparable copy of everything that changes during a match.
// Two runs fed the same inputs produce equal snapshots.
type Snapshot struct {
	State      State
	Outcome    Outcome
	LeftScore  int
	RightScore int
	Elapsed    float64
	BallPos    core.Vec2
	BallVel    core.Vec2
	LeftY      float64
	RightY     float64
}

// Snapshot captures the current match state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:      c.state,
		Outcome:    c.outcome,
		LeftScore:  c.leftScore,
		RightScore: c.rightScore,
		Elapsed:    c.elapsed,
		BallPos:    c.ball.Position(),
		BallVel:    c.ball.Velocity(),
		LeftY:      c.left.Position().Y,
		RightY:     c.right.Position().Y,
	}
}
