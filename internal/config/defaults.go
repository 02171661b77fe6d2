package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default match configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:      20,
			Height:     12,
			BallRadius: 0.2,
		},
		Paddle: PaddleConfig{
			Offset:     9,
			HalfWidth:  0.25,
			HalfHeight: 1.5,
			YMin:       -4.5,
			YMax:       4.5,
			Speed:      12,
		},
		Ball: BallConfig{
			Speed:            10,
			InitialDirection: "right",
		},
		Match: MatchConfig{
			WinScore:       5,
			AfterScoreWait: 1.0,
			ResetPaddles:   false,
		},
		CPU: CPUConfig{
			Skill: 0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "points",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				MinSkill: 0.35,
				MaxSkill: 0.95,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML so users can copy and edit it.
func DefaultYAML() []byte {
	return defaultPongYAML
}
