package config

import "testing"

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 40},
		Scaling: ScalingConfig{
			SpeedMultiplier:  1.0,
			GapReduction:     16,
			SpacingReduction: 40,
			MinGap:           24,
			MinSpacing:       40,
		},
	}
}

func TestDifficultyUpdate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*DifficultyConfig)
		score    int
		ticks    int
		expected float64
	}{
		{"start", nil, 0, 0, 0.0},
		{"halfway", nil, 20, 0, 0.5},
		{"capped", nil, 400, 0, 1.0},
		{"initial level", func(d *DifficultyConfig) { d.InitialLevel = 0.5 }, 20, 0, 0.75},
		{"time based", func(d *DifficultyConfig) { d.Progression = ProgressionConfig{Type: "time", MaxAt: 100} }, 999, 25, 0.25},
		{"disabled", func(d *DifficultyConfig) { *d = DifficultyConfig{InitialLevel: 0.3} }, 40, 0, 0.3},
		{"none", func(d *DifficultyConfig) { d.Progression.Type = "none" }, 40, 0, 0.0},
		{"zero max_at", func(d *DifficultyConfig) { d.Progression.MaxAt = 0 }, 1, 0, 1.0},
		{"initial level clamped", func(d *DifficultyConfig) { d.InitialLevel = 3 }, 0, 0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testDifficulty()
			if tt.modify != nil {
				tt.modify(&cfg)
			}
			d := NewDifficulty(cfg)
			if got := d.Update(tt.score, tt.ticks); got != tt.expected {
				t.Errorf("Update(%d, %d) = %g, expected %g", tt.score, tt.ticks, got, tt.expected)
			}
			if d.Level() != tt.expected {
				t.Errorf("Level() = %g after Update, expected %g", d.Level(), tt.expected)
			}
		})
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficulty(testDifficulty())

	if got := d.Speed(1); got != 1 {
		t.Errorf("Speed at level 0 = %g, expected 1", got)
	}
	if got := d.GapSize(48); got != 48 {
		t.Errorf("GapSize at level 0 = %d, expected 48", got)
	}

	d.Update(40, 0)

	if got := d.Speed(1); got != 2 {
		t.Errorf("Speed at level 1 = %g, expected 2", got)
	}
	if got := d.GapSize(48); got != 32 {
		t.Errorf("GapSize at level 1 = %d, expected 32", got)
	}
	if got := d.GapSize(30); got != 24 {
		t.Errorf("GapSize should respect min_gap, got %d", got)
	}
	if got := d.Spacing(100); got != 60 {
		t.Errorf("Spacing at level 1 = %d, expected 60", got)
	}
	if got := d.Spacing(50); got != 40 {
		t.Errorf("Spacing should respect min_spacing, got %d", got)
	}
}

func TestDifficultyNoSpacingBelowOne(t *testing.T) {
	cfg := testDifficulty()
	cfg.Scaling.MinSpacing = 0
	d := NewDifficulty(cfg)
	d.Update(40, 0)

	if got := d.Spacing(10); got != 1 {
		t.Errorf("Spacing(10) = %d, expected 1", got)
	}
}
