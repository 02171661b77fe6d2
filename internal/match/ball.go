package match

import "github.com/vovakirdan/tui-pong/internal/core"

// BallConfig describes the ball.
type BallConfig struct {
	Speed            float64
	InitialDirection core.Vec2 // defaults to core.Right
}

// Validate rejects a ball that could never move.
func (c BallConfig) Validate() error {
	if !positive(c.Speed) {
		return invalid("ball.speed", "must be positive and finite, got %g", c.Speed)
	}
	if !Finite(c.InitialDirection.X, c.InitialDirection.Y) {
		return invalid("ball.initial_direction", "must be finite, got %v", c.InitialDirection)
	}
	return nil
}

// Ball holds the ball body state. The World integrates its position; the
// ball itself only changes velocity on paddle contact and on reset.
type Ball struct {
	speed     float64
	direction core.Vec2 // direction used by Launch and ResetToStart
	pos       core.Vec2
	vel       core.Vec2
}

// NewBall creates a ball at rest in the center of the field.
func NewBall(cfg BallConfig) (*Ball, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dir := cfg.InitialDirection
	if dir == core.Zero {
		dir = core.Right
	}
	return &Ball{speed: cfg.Speed, direction: dir}, nil
}

// Launch starts the ball moving in its start direction from where it is.
func (b *Ball) Launch() {
	b.vel = b.direction.Scale(b.speed)
}

// ReflectionFactor is the linear vertical component of a bounce: zero at the
// paddle center, ±1 at the paddle's top and bottom edges, unclamped beyond.
func ReflectionFactor(contactY, paddleY, paddleHalfHeight float64) float64 {
	return (contactY - paddleY) / paddleHalfHeight
}

// OnPaddleContact recomputes the outgoing velocity after touching a paddle:
// (xDirection, reflectionFactor) * speed + paddleVelocity.
//
// The result is not normalized, so its magnitude only equals speed for a
// dead-center hit off a still paddle.
func (b *Ball) OnPaddleContact(paddle core.Side, contactY, paddleY, paddleHalfHeight float64, paddleVel core.Vec2) {
	xDirection := -1.0
	if paddle == core.SideLeft {
		xDirection = 1.0
	}
	factor := ReflectionFactor(contactY, paddleY, paddleHalfHeight)
	b.vel = core.V(xDirection, factor).Scale(b.speed).Add(paddleVel)
}

// ApplyContact is OnPaddleContact fed from a World contact event.
func (b *Ball) ApplyContact(ev ContactEvent) {
	b.OnPaddleContact(ev.Paddle, ev.PointY, ev.PaddleY, ev.PaddleHalfHeight, ev.PaddleVelocity)
}

// Reset centers the ball and sends it off in direction at the ball's speed.
// The direction is remembered for later ResetToStart calls.
func (b *Ball) Reset(direction core.Vec2) {
	b.direction = direction
	b.ResetToStart()
}

// SetStartDirection changes the direction used by the next ResetToStart.
func (b *Ball) SetStartDirection(direction core.Vec2) {
	b.direction = direction
}

// ResetToStart centers the ball and relaunches it in its start direction.
func (b *Ball) ResetToStart() {
	b.pos = core.Zero
	b.vel = b.direction.Scale(b.speed)
}

// PositionX returns the current horizontal position.
func (b *Ball) PositionX() float64 { return b.pos.X }

// Position returns the current position.
func (b *Ball) Position() core.Vec2 { return b.pos }

// Velocity returns the current velocity.
func (b *Ball) Velocity() core.Vec2 { return b.vel }

// Speed returns the configured speed scalar.
func (b *Ball) Speed() float64 { return b.speed }

// StartDirection returns the direction the next reset will use.
func (b *Ball) StartDirection() core.Vec2 { return b.direction }

// SetPosition is called by the World after integrating a step.
func (b *Ball) SetPosition(p core.Vec2) { b.pos = p }

// SetVelocity is called by the World for non-paddle bounces (walls).
func (b *Ball) SetVelocity(v core.Vec2) { b.vel = v }
