// Package arena is the physics collaborator for a match: it integrates the
// ball's position each tick, bounces it off the top and bottom walls and
// reports paddle contacts. Paddle contacts do not change the ball's
// velocity here; the ball decides that from the reported event.
package arena

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
)

// Config describes the field. The field is centered on the origin.
type Config struct {
	Width      float64
	Height     float64
	BallRadius float64
}

// World is a kinematic world holding one ball and its paddles.
type World struct {
	cfg     Config
	ball    *match.Ball
	paddles []*match.Paddle
}

var _ match.World = (*World)(nil)

// New creates a world. Every paddle must fit inside the field.
func New(cfg Config, ball *match.Ball, paddles ...*match.Paddle) (*World, error) {
	if !(cfg.Width > 0 && cfg.Height > 0) || !match.Finite(cfg.Width, cfg.Height) {
		return nil, fmt.Errorf("arena: field must have positive size, got %gx%g", cfg.Width, cfg.Height)
	}
	if !(cfg.BallRadius >= 0) || !match.Finite(cfg.BallRadius) {
		return nil, fmt.Errorf("arena: ball radius must not be negative, got %g", cfg.BallRadius)
	}
	if ball == nil {
		return nil, fmt.Errorf("arena: ball is required")
	}
	half := cfg.Width / 2
	for _, p := range paddles {
		if p.LeftBoundary() < -half || p.RightBoundary() > half {
			return nil, fmt.Errorf("arena: %s paddle [%g, %g] does not fit field width %g",
				p.Side(), p.LeftBoundary(), p.RightBoundary(), cfg.Width)
		}
	}
	return &World{cfg: cfg, ball: ball, paddles: paddles}, nil
}

// Config returns the field description.
func (w *World) Config() Config {
	return w.cfg
}

// Integrate moves the ball by velocity*dt and returns the paddle contacts
// that happened during the step.
func (w *World) Integrate(dt float64) []match.ContactEvent {
	prev := w.ball.Position()
	vel := w.ball.Velocity()
	pos := prev.Add(vel.Scale(dt))
	r := w.cfg.BallRadius

	top := w.cfg.Height/2 - r
	bottom := -w.cfg.Height/2 + r
	if pos.Y > top {
		pos.Y = top
		vel.Y = -math.Abs(vel.Y)
	} else if pos.Y < bottom {
		pos.Y = bottom
		vel.Y = math.Abs(vel.Y)
	}

	var contacts []match.ContactEvent
	for _, p := range w.paddles {
		y, ok := w.touches(p, prev, pos, vel)
		if !ok {
			continue
		}
		// Rest the ball on the paddle face so it cannot sink in.
		pos.Y = y
		if p.Side() == core.SideLeft {
			pos.X = p.RightBoundary() + r
		} else {
			pos.X = p.LeftBoundary() - r
		}
		contacts = append(contacts, match.ContactEvent{
			Paddle:           p.Side(),
			PointY:           pos.Y,
			PaddleY:          p.Position().Y,
			PaddleHalfHeight: p.HalfHeight(),
			PaddleVelocity:   p.Velocity(),
		})
	}

	w.ball.SetPosition(pos)
	w.ball.SetVelocity(vel)
	return contacts
}

// touches reports whether the ball, moving toward p, hits it this step and
// returns the ball's Y at the hit. A ball that crossed the paddle face between
// prev and pos is checked at the Y where it crossed, not where it ended up.
func (w *World) touches(p *match.Paddle, prev, pos, vel core.Vec2) (float64, bool) {
	r := w.cfg.BallRadius
	left, right := p.LeftBoundary(), p.RightBoundary()

	var face float64
	var crossed bool
	switch p.Side() {
	case core.SideLeft:
		if vel.X >= 0 {
			return 0, false
		}
		face = right + r
		crossed = prev.X >= face && pos.X < face
	case core.SideRight:
		if vel.X <= 0 {
			return 0, false
		}
		face = left - r
		crossed = prev.X <= face && pos.X > face
	default:
		return 0, false
	}

	y := pos.Y
	if crossed {
		t := (face - prev.X) / (pos.X - prev.X)
		y = prev.Y + t*(pos.Y-prev.Y)
	} else if pos.X-r > right || pos.X+r < left {
		return 0, false
	}

	if math.Abs(y-p.Position().Y) > p.HalfHeight()+r {
		return 0, false
	}
	return y, true
}
