package config

import "github.com/vovakirdan/tui-pico/internal/core"

// Difficulty tracks the current difficulty level of a running game and
// scales base parameters by it. Call Update once per tick before scaling.
type Difficulty struct {
	cfg   DifficultyConfig
	floor float64
	level float64
}

// NewDifficulty creates a tracker at the configured initial level.
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	floor := core.ClampF(cfg.InitialLevel, 0, 1)
	return &Difficulty{cfg: cfg, floor: floor, level: floor}
}

// Progressive reports whether the level moves with score or time.
func (d *Difficulty) Progressive() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Update recomputes the level from the score and tick count and returns it.
// The level rises linearly from the initial level to 1 at max_at.
func (d *Difficulty) Update(score, ticks int) float64 {
	var progress int
	switch {
	case !d.Progressive():
		d.level = d.floor
		return d.level
	case d.cfg.Progression.Type == "score":
		progress = score
	case d.cfg.Progression.Type == "time":
		progress = ticks
	default:
		d.level = d.floor
		return d.level
	}

	maxAt := max(d.cfg.Progression.MaxAt, 1)
	d.level = core.Lerp(float64(progress)/float64(maxAt), d.floor, 1)
	return d.level
}

// Level returns the level computed by the last Update, in [0, 1].
func (d *Difficulty) Level() float64 {
	return d.level
}

// Speed scales base up to base * (1 + speed_multiplier).
func (d *Difficulty) Speed(base float64) float64 {
	return base * (1 + d.level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize shrinks base by up to gap_reduction, never below min_gap.
func (d *Difficulty) GapSize(base int) int {
	return max(base-d.reduce(d.cfg.Scaling.GapReduction), d.cfg.Scaling.MinGap)
}

// Spacing shrinks base by up to spacing_reduction, never below min_spacing.
func (d *Difficulty) Spacing(base int) int {
	return max(base-d.reduce(d.cfg.Scaling.SpacingReduction), d.cfg.Scaling.MinSpacing, 1)
}

func (d *Difficulty) reduce(by int) int {
	return int(d.level * float64(by))
}
