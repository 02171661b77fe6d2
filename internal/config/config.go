// Package config provides YAML-based match configuration loading and
// difficulty management for terminal Pong.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/arena"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/match"
)

// PongConfig contains all configuration for a match.
type PongConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Match      MatchConfig      `yaml:"match"`
	CPU        CPUConfig        `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playing field in world units, centered on the origin.
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	BallRadius float64 `yaml:"ball_radius"`
}

// PaddleConfig defines both paddles. They mirror each other around X=0.
type PaddleConfig struct {
	Offset     float64 `yaml:"offset"` // distance of each paddle center from X=0
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	YMin       float64 `yaml:"y_min"`
	YMax       float64 `yaml:"y_max"`
	Speed      float64 `yaml:"speed"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Speed            float64 `yaml:"speed"`
	InitialDirection string  `yaml:"initial_direction"` // "left" or "right"
}

// MatchConfig defines the match rules.
type MatchConfig struct {
	WinScore       int     `yaml:"win_score"`
	AfterScoreWait float64 `yaml:"after_score_wait"` // seconds
	ResetPaddles   bool    `yaml:"reset_paddles"`
}

// CPUConfig defines the computer driver.
type CPUConfig struct {
	Skill float64 `yaml:"skill"` // 0..1, overridden by difficulty when enabled
}

// DifficultyConfig defines how the CPU sharpens as the match goes on.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the match.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "points" or "none"
	MaxAt int    `yaml:"max_at"` // total points at which max difficulty is reached
}

// ScalingConfig maps difficulty level onto CPU skill.
type ScalingConfig struct {
	MinSkill float64 `yaml:"min_skill"` // skill at level 0
	MaxSkill float64 `yaml:"max_skill"` // skill at level 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Direction returns the configured serve direction as a unit vector.
func (b BallConfig) Direction() (core.Vec2, error) {
	switch strings.ToLower(b.InitialDirection) {
	case "", "right":
		return core.Right, nil
	case "left":
		return core.Left, nil
	default:
		return core.Zero, &match.ConfigError{
			Field:  "ball.initial_direction",
			Reason: fmt.Sprintf("must be left or right, got %q", b.InitialDirection),
		}
	}
}

// PaddleFor builds the match paddle configuration for one side.
func (c PongConfig) PaddleFor(side core.Side) match.PaddleConfig {
	x := c.Paddle.Offset
	if side == core.SideLeft {
		x = -x
	}
	return match.PaddleConfig{
		Side:       side,
		X:          x,
		HalfWidth:  c.Paddle.HalfWidth,
		HalfHeight: c.Paddle.HalfHeight,
		YMin:       c.Paddle.YMin,
		YMax:       c.Paddle.YMax,
		Speed:      c.Paddle.Speed,
	}
}

// BallSettings builds the match ball configuration.
func (c PongConfig) BallSettings() (match.BallConfig, error) {
	dir, err := c.Ball.Direction()
	if err != nil {
		return match.BallConfig{}, err
	}
	return match.BallConfig{Speed: c.Ball.Speed, InitialDirection: dir}, nil
}

// Rules builds the match controller configuration.
func (c PongConfig) Rules() match.Config {
	return match.Config{
		WinScore:       c.Match.WinScore,
		AfterScoreWait: c.Match.AfterScoreWait,
		ResetPaddles:   c.Match.ResetPaddles,
	}
}

// Arena builds the physics world configuration.
func (c PongConfig) Arena() arena.Config {
	return arena.Config{
		Width:      c.Field.Width,
		Height:     c.Field.Height,
		BallRadius: c.Field.BallRadius,
	}
}

// Validate reports the first setting a match could not be set up with.
// Errors wrap match.ErrInvalidConfig.
func (c PongConfig) Validate() error {
	if !(c.Field.Width > 0 && c.Field.Height > 0) || !match.Finite(c.Field.Width, c.Field.Height) {
		return &match.ConfigError{
			Field:  "field",
			Reason: fmt.Sprintf("width and height must be positive, got %gx%g", c.Field.Width, c.Field.Height),
		}
	}
	if !(c.Field.BallRadius >= 0) || !match.Finite(c.Field.BallRadius) {
		return &match.ConfigError{Field: "field.ball_radius", Reason: "must not be negative"}
	}
	if !match.Finite(c.Paddle.Offset) || c.Paddle.Offset+c.Paddle.HalfWidth > c.Field.Width/2 {
		return &match.ConfigError{
			Field:  "paddle.offset",
			Reason: fmt.Sprintf("paddles at ±%g do not fit a field %g wide", c.Paddle.Offset, c.Field.Width),
		}
	}
	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		if err := c.PaddleFor(side).Validate(); err != nil {
			return err
		}
	}
	if c.PaddleFor(core.SideLeft).X+c.Paddle.HalfWidth >= c.PaddleFor(core.SideRight).X-c.Paddle.HalfWidth {
		return &match.ConfigError{Field: "paddle.offset", Reason: "paddles overlap at the center line"}
	}
	ball, err := c.BallSettings()
	if err != nil {
		return err
	}
	if err := ball.Validate(); err != nil {
		return err
	}
	if err := c.Rules().Validate(); err != nil {
		return err
	}
	if !(c.CPU.Skill >= 0 && c.CPU.Skill <= 1) {
		return &match.ConfigError{Field: "cpu.skill", Reason: fmt.Sprintf("must be within [0, 1], got %g", c.CPU.Skill)}
	}
	if err := c.Difficulty.validate(); err != nil {
		return err
	}
	return nil
}
