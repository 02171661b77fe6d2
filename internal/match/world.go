package match

import "github.com/vovakirdan/tui-pong/internal/core"

// ContactEvent is reported by a World when the ball touches a paddle.
type ContactEvent struct {
	Paddle           core.Side
	PointY           float64 // vertical coordinate of the contact point
	PaddleY          float64
	PaddleHalfHeight float64
	PaddleVelocity   core.Vec2
}

// World is the physics collaborator: it advances body positions by one step
// and reports paddle contacts that happened during it.
type World interface {
	Integrate(dt float64) []ContactEvent
}

// Result is handed to the ResultPresenter once a match is decided.
type Result struct {
	Winner     core.Side
	LeftScore  int
	RightScore int
}

// WinnerCode encodes the winner as 1 (left) or 2 (right), 0 if undecided.
func (r Result) WinnerCode() int {
	switch r.Winner {
	case core.SideLeft:
		return 1
	case core.SideRight:
		return 2
	default:
		return 0
	}
}

// ResultPresenter receives the final result exactly once per match.
type ResultPresenter interface {
	PresentResult(Result)
}

// PresenterFunc adapts a function to ResultPresenter.
type PresenterFunc func(Result)

// PresentResult calls f(r).
func (f PresenterFunc) PresentResult(r Result) { f(r) }
