package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/match"
)

// DifficultyManager calculates the CPU skill as the match progresses.
type DifficultyManager struct {
	cfg          DifficultyConfig
	baseSkill    float64
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager. baseSkill is used
// whenever progression is disabled.
func NewDifficultyManager(cfg DifficultyConfig, baseSkill float64) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		baseSkill:    baseSkill,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for the points played.
func (d *DifficultyManager) Level(points int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "points":
		progress = float64(points) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Skill returns the CPU skill for the points played so far.
func (d *DifficultyManager) Skill(points int) float64 {
	if !d.cfg.Enabled {
		return d.baseSkill
	}
	lo, hi := d.cfg.Scaling.MinSkill, d.cfg.Scaling.MaxSkill
	return clampF(lo+d.Level(points)*(hi-lo), 0.0, 1.0)
}

func (c DifficultyConfig) validate() error {
	if !(c.InitialLevel >= 0 && c.InitialLevel <= 1) {
		return &match.ConfigError{
			Field:  "difficulty.initial_level",
			Reason: fmt.Sprintf("must be within [0, 1], got %g", c.InitialLevel),
		}
	}
	lo, hi := c.Scaling.MinSkill, c.Scaling.MaxSkill
	if !(lo >= 0 && lo <= hi && hi <= 1) {
		return &match.ConfigError{
			Field:  "difficulty.scaling",
			Reason: fmt.Sprintf("want 0 <= min_skill <= max_skill <= 1, got %g..%g", lo, hi),
		}
	}
	switch c.Progression.Type {
	case "points", "none", "":
	default:
		return &match.ConfigError{
			Field:  "difficulty.progression.type",
			Reason: fmt.Sprintf("unknown progression %q (want points or none)", c.Progression.Type),
		}
	}
	return nil
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
