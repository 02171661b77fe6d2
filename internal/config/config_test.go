package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PongConfig
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultPongConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadPongCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := []byte("match:\n  win_score: 3\nball:\n  initial_direction: left\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Match.WinScore != 3 {
		t.Errorf("win_score = %d, expected 3", cfg.Match.WinScore)
	}
	if cfg.Paddle.Offset != DefaultPongConfig().Paddle.Offset {
		t.Error("unset values should keep their defaults")
	}

	dir, err := cfg.Ball.Direction()
	if err != nil || dir != core.Left {
		t.Errorf("Direction() = %v, %v; expected Left", dir, err)
	}
}

func TestLoadPongErrors(t *testing.T) {
	if _, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("match: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadPongNaNFailsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	if err := os.WriteFile(path, []byte("match:\n  after_score_wait: .nan\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() error = %v", err)
	}
	if !math.IsNaN(cfg.Match.AfterScoreWait) {
		t.Fatalf("after_score_wait = %v, expected NaN from YAML", cfg.Match.AfterScoreWait)
	}
	if err := cfg.Validate(); !errors.Is(err, match.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
		field  string
	}{
		{"zero win score", func(c *PongConfig) { c.Match.WinScore = 0 }, "win_score"},
		{"negative wait", func(c *PongConfig) { c.Match.AfterScoreWait = -1 }, "after_score_wait"},
		{"zero ball speed", func(c *PongConfig) { c.Ball.Speed = 0 }, "ball.speed"},
		{"inverted range", func(c *PongConfig) { c.Paddle.YMin, c.Paddle.YMax = 1, -1 }, "paddle.y_range"},
		{"paddles off field", func(c *PongConfig) { c.Paddle.Offset = 11 }, "paddle.offset"},
		{"paddles overlap", func(c *PongConfig) { c.Paddle.Offset = 0.1 }, "paddle.offset"},
		{"bad direction", func(c *PongConfig) { c.Ball.InitialDirection = "up" }, "ball.initial_direction"},
		{"empty field", func(c *PongConfig) { c.Field.Width = 0 }, "field"},
		{"skill out of range", func(c *PongConfig) { c.CPU.Skill = 2 }, "cpu.skill"},
		{"NaN wait", func(c *PongConfig) { c.Match.AfterScoreWait = math.NaN() }, "after_score_wait"},
		{"NaN ball speed", func(c *PongConfig) { c.Ball.Speed = math.NaN() }, "ball.speed"},
		{"NaN y_min", func(c *PongConfig) { c.Paddle.YMin = math.NaN() }, "paddle.y_range"},
		{"NaN field width", func(c *PongConfig) { c.Field.Width = math.NaN() }, "field"},
		{"infinite field height", func(c *PongConfig) { c.Field.Height = math.Inf(1) }, "field"},
		{"NaN ball radius", func(c *PongConfig) { c.Field.BallRadius = math.NaN() }, "field.ball_radius"},
		{"NaN offset", func(c *PongConfig) { c.Paddle.Offset = math.NaN() }, "paddle.offset"},
		{"NaN skill", func(c *PongConfig) { c.CPU.Skill = math.NaN() }, "cpu.skill"},
		{"level out of range", func(c *PongConfig) { c.Difficulty.InitialLevel = 1.5 }, "difficulty.initial_level"},
		{"inverted scaling", func(c *PongConfig) { c.Difficulty.Scaling.MinSkill = 0.99 }, "difficulty.scaling"},
		{"NaN scaling", func(c *PongConfig) { c.Difficulty.Scaling.MaxSkill = math.NaN() }, "difficulty.scaling"},
		{"unknown progression", func(c *PongConfig) { c.Difficulty.Progression.Type = "time" }, "difficulty.progression.type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, match.ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
			var ce *match.ConfigError
			if !errors.As(err, &ce) || ce.Field != tt.field {
				t.Errorf("Validate() field = %v, expected %q", err, tt.field)
			}
		})
	}
}

func TestPaddleForMirrors(t *testing.T) {
	cfg := DefaultPongConfig()
	left := cfg.PaddleFor(core.SideLeft)
	right := cfg.PaddleFor(core.SideRight)

	if left.X != -right.X || left.X >= 0 {
		t.Errorf("paddles at %v and %v should mirror around 0", left.X, right.X)
	}
	if left.Side != core.SideLeft || right.Side != core.SideRight {
		t.Error("paddle sides not set")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "Normal", " hard ", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyPongPreset(t *testing.T) {
	cfg := DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}
	if cfg.CPU.Skill <= DefaultPongConfig().CPU.Skill {
		t.Error("hard preset should raise CPU skill")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset config invalid: %v", err)
	}
}
