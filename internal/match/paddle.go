// Package match implements the rules of a Pong match: paddles that clamp to
// a vertical range, a ball that reflects off paddle contacts, and a
// controller that counts points, waits after each score and ends the match.
//
// Physics integration and collision detection are not done here. A World
// moves bodies and reports ContactEvents; this package only decides
// velocities, positions after resets and the score.
package match

import "github.com/vovakirdan/tui-pong/internal/core"

// PaddleConfig describes one paddle.
type PaddleConfig struct {
	Side       core.Side
	X          float64 // fixed horizontal position of the paddle center
	HalfWidth  float64
	HalfHeight float64
	YMin       float64
	YMax       float64
	Speed      float64 // world units per second at full axis deflection
}

// Validate rejects paddle geometry the match cannot play with.
func (c PaddleConfig) Validate() error {
	if c.Side != core.SideLeft && c.Side != core.SideRight {
		return invalid("paddle.side", "must be left or right, got %s", c.Side)
	}
	if !Finite(c.X) {
		return invalid("paddle.x", "must be finite, got %g", c.X)
	}
	if !positive(c.HalfWidth) {
		return invalid("paddle.half_width", "must be positive, got %g", c.HalfWidth)
	}
	if !positive(c.HalfHeight) {
		return invalid("paddle.half_height", "must be positive, got %g", c.HalfHeight)
	}
	if !Finite(c.YMin, c.YMax) {
		return invalid("paddle.y_range", "bounds must be finite, got [%g, %g]", c.YMin, c.YMax)
	}
	if c.YMin > c.YMax {
		return invalid("paddle.y_range", "y_min %g is above y_max %g", c.YMin, c.YMax)
	}
	if !nonNegative(c.Speed) {
		return invalid("paddle.speed", "must not be negative, got %g", c.Speed)
	}
	return nil
}

// Paddle is a vertically moving bat. Its Y always stays within [YMin, YMax].
type Paddle struct {
	cfg PaddleConfig
	pos core.Vec2
	vel core.Vec2
}

// NewPaddle creates a paddle centered vertically (clamped into range).
func NewPaddle(cfg PaddleConfig) (*Paddle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Paddle{cfg: cfg, pos: core.V(cfg.X, 0)}
	p.ResetPosition()
	return p, nil
}

// Advance moves the paddle at speed*axis for dt seconds, then clamps Y.
// X never changes.
func (p *Paddle) Advance(axis, dt float64) {
	p.vel = core.V(0, p.cfg.Speed*axis)
	p.pos.Y = core.ClampF(p.pos.Y+p.vel.Y*dt, p.cfg.YMin, p.cfg.YMax)
}

// ResetPosition puts the paddle back at Y=0, or the nearest valid Y.
func (p *Paddle) ResetPosition() {
	p.pos.Y = core.ClampF(0, p.cfg.YMin, p.cfg.YMax)
	p.vel = core.Zero
}

// LeftBoundary returns the X of the paddle's left edge.
func (p *Paddle) LeftBoundary() float64 {
	return p.pos.X - p.cfg.HalfWidth
}

// RightBoundary returns the X of the paddle's right edge.
func (p *Paddle) RightBoundary() float64 {
	return p.pos.X + p.cfg.HalfWidth
}

// Side reports which side the paddle defends.
func (p *Paddle) Side() core.Side { return p.cfg.Side }

// Position returns the paddle center.
func (p *Paddle) Position() core.Vec2 { return p.pos }

// Velocity returns the velocity from the last Advance.
func (p *Paddle) Velocity() core.Vec2 { return p.vel }

// HalfWidth returns half of the paddle's horizontal extent.
func (p *Paddle) HalfWidth() float64 { return p.cfg.HalfWidth }

// HalfHeight returns half of the paddle's vertical extent.
func (p *Paddle) HalfHeight() float64 { return p.cfg.HalfHeight }

// Range returns the vertical clamp range.
func (p *Paddle) Range() (yMin, yMax float64) { return p.cfg.YMin, p.cfg.YMax }
