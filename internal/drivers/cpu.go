package drivers

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Default CPU tuning.
const (
	DefaultCPUSkill = 0.6
	MinCPUSkill     = 0.1
	deadZoneRatio   = 0.25 // fraction of the paddle half-height ignored around the target
)

// CPU tracks the ball with skill-limited speed and the occasional hesitation.
// Given the same seed and observations it makes the same moves.
type CPU struct {
	skill float64
	rng   *rand.Rand
	last  float64
}

// NewCPU creates a CPU driver. Skill is clamped to [MinCPUSkill, 1].
func NewCPU(skill float64, seed int64) *CPU {
	if skill <= 0 {
		skill = DefaultCPUSkill
	}
	return &CPU{
		skill: core.ClampF(skill, MinCPUSkill, 1),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// ID returns "cpu".
func (c *CPU) ID() string { return "cpu" }

// Title returns the display name.
func (c *CPU) Title() string { return "CPU" }

// Skill returns the effective skill.
func (c *CPU) Skill() float64 { return c.skill }

// SetSkill retunes the driver mid-match.
func (c *CPU) SetSkill(skill float64) {
	c.skill = core.ClampF(skill, MinCPUSkill, 1)
}

// Axis chases the ball while it approaches and drifts back to center otherwise.
func (c *CPU) Axis(_ core.InputFrame, v registry.View) float64 {
	// Lower skill repeats the previous decision more often.
	if c.rng.Float64() > c.skill {
		return c.last
	}

	target := 0.0
	approaching := (v.Side == core.SideLeft && v.BallVelocity.X < 0) ||
		(v.Side == core.SideRight && v.BallVelocity.X > 0)
	if approaching {
		target = v.Ball.Y
	}

	diff := target - v.Paddle.Y
	if math.Abs(diff) <= v.PaddleHalfHeight*deadZoneRatio {
		c.last = 0
	} else {
		c.last = core.Sign(diff) * c.skill
	}
	return c.last
}

func init() {
	registry.Register("cpu", func(opts registry.Options) registry.Driver {
		return NewCPU(opts.Skill, opts.Seed)
	})
}
