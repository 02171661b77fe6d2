package drivers

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

func TestHumanFollowsKeys(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionDown)

	if got := (Human{}).Axis(in, registry.View{}); got != -1 {
		t.Errorf("Axis() = %v, expected -1", got)
	}
}

func TestCPUChasesApproachingBall(t *testing.T) {
	cpu := NewCPU(1, 1)
	view := registry.View{
		Side:             core.SideRight,
		Paddle:           core.V(5, 0),
		PaddleHalfHeight: 1,
		Ball:             core.V(0, 3),
		BallVelocity:     core.V(5, 0),
	}

	if got := cpu.Axis(core.NewInputFrame(), view); got != 1 {
		t.Errorf("Axis() = %v, expected full skill upward", got)
	}

	view.Ball.Y = -3
	if got := cpu.Axis(core.NewInputFrame(), view); got != -1 {
		t.Errorf("Axis() = %v, expected downward", got)
	}
}

func TestCPUReturnsToCenterWhenBallLeaves(t *testing.T) {
	cpu := NewCPU(1, 1)
	view := registry.View{
		Side:             core.SideLeft,
		Paddle:           core.V(-5, 2),
		PaddleHalfHeight: 1,
		Ball:             core.V(0, 4),
		BallVelocity:     core.V(5, 0),
	}

	if got := cpu.Axis(core.NewInputFrame(), view); got != -1 {
		t.Errorf("Axis() = %v, expected drift to center", got)
	}

	view.Paddle.Y = 0.1
	if got := cpu.Axis(core.NewInputFrame(), view); got != 0 {
		t.Errorf("Axis() = %v, expected rest inside the dead zone", got)
	}
}

func TestCPUDeterministicWithSeed(t *testing.T) {
	a := NewCPU(0.4, 42)
	b := NewCPU(0.4, 42)
	view := registry.View{Side: core.SideRight, PaddleHalfHeight: 1, BallVelocity: core.V(1, 0)}

	for i := 0; i < 200; i++ {
		view.Ball.Y = float64(i%9) - 4
		if a.Axis(core.NewInputFrame(), view) != b.Axis(core.NewInputFrame(), view) {
			t.Fatalf("tick %d: CPU drivers with equal seeds diverged", i)
		}
	}
}

func TestCPUSkillClamped(t *testing.T) {
	if got := NewCPU(5, 0).Skill(); got != 1 {
		t.Errorf("Skill() = %v, expected 1", got)
	}
	if got := NewCPU(0, 0).Skill(); got != DefaultCPUSkill {
		t.Errorf("Skill() = %v, expected default", got)
	}
}

func TestDriversRegistered(t *testing.T) {
	for _, id := range []string{"human", "cpu"} {
		if !registry.Exists(id) {
			t.Errorf("driver %q should be registered", id)
		}
	}
}

func TestCPUSetSkill(t *testing.T) {
	cpu := NewCPU(0.5, 0)
	cpu.SetSkill(0.9)
	if got := cpu.Skill(); got != 0.9 {
		t.Errorf("Skill() = %v, expected 0.9", got)
	}
	cpu.SetSkill(0)
	if got := cpu.Skill(); got != MinCPUSkill {
		t.Errorf("Skill() = %v, expected clamp to %v", got, MinCPUSkill)
	}
}
