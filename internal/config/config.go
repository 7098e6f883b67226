// Package config provides YAML-based configuration loading for the console
// and its cartridges, plus difficulty progression for games that scale.
package config

import (
	"errors"
	"fmt"
)

// ConsoleConfig holds the console-wide runtime settings.
type ConsoleConfig struct {
	TickRate        int  `yaml:"tick_rate"`         // logical ticks per second
	MaxCatchupTicks int  `yaml:"max_catchup_ticks"` // 0 = no cap
	ButtonRepeat    int  `yaml:"button_repeat"`     // hold repeat period in ticks, 0 = off
	ShowFPS         bool `yaml:"show_fps"`
	SoundOn         bool `yaml:"sound_on"`
	Volume          int  `yaml:"volume"`      // 0..8
	KeyHoldMs       int  `yaml:"key_hold_ms"` // terminal release detection window
}

// Validate reports the first out-of-range setting.
func (c ConsoleConfig) Validate() error {
	switch {
	case c.TickRate < 1 || c.TickRate > 1000:
		return fmt.Errorf("tick_rate %d out of range [1, 1000]", c.TickRate)
	case c.MaxCatchupTicks < 0:
		return fmt.Errorf("max_catchup_ticks %d must not be negative", c.MaxCatchupTicks)
	case c.ButtonRepeat < 0:
		return fmt.Errorf("button_repeat %d must not be negative", c.ButtonRepeat)
	case c.Volume < 0 || c.Volume > 8:
		return fmt.Errorf("volume %d out of range [0, 8]", c.Volume)
	case c.KeyHoldMs < 1:
		return fmt.Errorf("key_hold_ms %d must be positive", c.KeyHoldMs)
	}
	return nil
}

// FlappyConfig contains all configuration for the Flappy cartridge.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines the bird and scrolling physics, in pixels per tick.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
	Floor       float64 `yaml:"floor"`
	PipeSpeed   float64 `yaml:"pipe_speed"`
}

// FlappyPipes defines pipe spawning.
type FlappyPipes struct {
	Gap        int `yaml:"gap"`         // vertical opening in pixels
	SpawnEvery int `yaml:"spawn_every"` // ticks between spawns
	Slots      int `yaml:"slots"`       // pipes alive at once
}

// FlappyPlayer defines the bird sprite placement.
type FlappyPlayer struct {
	X         int `yaml:"x"`
	AnimEvery int `yaml:"anim_every"` // ticks per animation frame
}

// Validate reports the first unusable setting.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return errors.New("physics.gravity must be positive")
	case c.Physics.FlapImpulse >= 0:
		return errors.New("physics.flap_impulse must be negative")
	case c.Physics.Floor <= 0:
		return errors.New("physics.floor must be positive")
	case c.Physics.PipeSpeed <= 0:
		return errors.New("physics.pipe_speed must be positive")
	case c.Pipes.Gap < 16:
		return fmt.Errorf("pipes.gap %d below minimum 16", c.Pipes.Gap)
	case c.Pipes.SpawnEvery < 1:
		return fmt.Errorf("pipes.spawn_every %d must be positive", c.Pipes.SpawnEvery)
	case c.Pipes.Slots < 1:
		return fmt.Errorf("pipes.slots %d must be positive", c.Pipes.Slots)
	case c.Player.AnimEvery < 1:
		return fmt.Errorf("player.anim_every %d must be positive", c.Player.AnimEvery)
	}
	return c.Difficulty.Validate()
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // gap shrink at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // spawn interval shrink at max difficulty
	MinGap           int     `yaml:"min_gap"`
	MinSpacing       int     `yaml:"min_spacing"`
}

// Validate checks the progression type and level range.
func (d DifficultyConfig) Validate() error {
	switch d.Progression.Type {
	case "score", "time", "none":
	default:
		return fmt.Errorf("difficulty.progression.type %q must be score, time or none", d.Progression.Type)
	}
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("difficulty.initial_level %g out of range [0, 1]", d.InitialLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset adjusts the progression for a preset. The fixed preset keeps
// the configured initial level and disables progression; the empty preset
// changes nothing.
func (d *DifficultyConfig) ApplyPreset(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
