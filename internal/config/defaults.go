package config

import (
	_ "embed"
)

//go:embed defaults/console.yaml
var defaultConsoleYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultConsoleConfig returns the hardcoded console configuration.
func DefaultConsoleConfig() ConsoleConfig {
	return ConsoleConfig{
		TickRate:        60,
		MaxCatchupTicks: 10,
		ButtonRepeat:    0,
		ShowFPS:         true,
		SoundOn:         true,
		Volume:          4,
		KeyHoldMs:       180,
	}
}

// DefaultFlappyConfig returns the hardcoded Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     0.1,
			FlapImpulse: -2,
			Floor:       121,
			PipeSpeed:   1,
		},
		Pipes: FlappyPipes{
			Gap:        48,
			SpawnEvery: 100,
			Slots:      3,
		},
		Player: FlappyPlayer{
			X:         20,
			AnimEvery: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     16,
				SpacingReduction: 40,
				MinGap:           24,
				MinSpacing:       40,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML for a config name.
func DefaultYAML(name string) []byte {
	switch name {
	case "console":
		return defaultConsoleYAML
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
