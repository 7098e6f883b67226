package engine

import (
	"time"

	"github.com/vovakirdan/tui-pico/internal/core"
)

// fpsSmoothing is the weight of the newest frame in the FPS estimate.
const fpsSmoothing = 0.05

// FrameClock converts variable wall-clock frame callbacks into a whole
// number of fixed-size logical steps.
type FrameClock struct {
	step     time.Duration
	maxTicks int
	last     time.Duration
	started  bool
	acc      time.Duration
	fps      float64
}

// NewFrameClock creates a clock running tickRate steps per second.
// maxTicks caps the catch-up ticks one frame may run; 0 disables the cap.
func NewFrameClock(tickRate, maxTicks int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{
		step:     time.Second / time.Duration(tickRate),
		maxTicks: max(maxTicks, 0),
	}
}

// Step returns the fixed logical step size.
func (c *FrameClock) Step() time.Duration {
	return c.step
}

// Accumulated returns the unprocessed surplus of wall time.
func (c *FrameClock) Accumulated() time.Duration {
	return c.acc
}

// FPS returns the smoothed rendered frames per second.
func (c *FrameClock) FPS() float64 {
	return c.fps
}

// Advance records a frame timestamp and returns the elapsed time since the
// previous one. Duplicate or out-of-order timestamps count as zero elapsed
// time. The accumulator only grows when accumulate is set, so game time
// stands still while the engine is paused. The first call only sets the
// time origin.
func (c *FrameClock) Advance(ts time.Duration, accumulate bool) time.Duration {
	if !c.started {
		c.started = true
		c.last = ts
		return 0
	}
	delta := ts - c.last
	if delta <= 0 {
		return 0
	}
	c.last = ts
	c.fps = core.Lerp(fpsSmoothing, c.fps, float64(time.Second)/float64(delta))
	if accumulate {
		c.acc += delta
	}
	return delta
}

// Pending returns how many steps the accumulator holds, applying the
// catch-up cap. Steps over the cap are discarded and reported as dropped.
func (c *FrameClock) Pending() (ticks, dropped int) {
	ticks = int(c.acc / c.step)
	if c.maxTicks > 0 && ticks > c.maxTicks {
		dropped = ticks - c.maxTicks
		ticks = c.maxTicks
		c.acc -= time.Duration(dropped) * c.step
	}
	return ticks, dropped
}

// Consume removes one step from the accumulator. It reports false when
// less than a step is left.
func (c *FrameClock) Consume() bool {
	if c.acc < c.step {
		return false
	}
	c.acc -= c.step
	return true
}
