package engine

import (
	"testing"
	"time"
)

// runTicks drains the clock the way the engine does and returns the count.
func runTicks(c *FrameClock) int {
	n, _ := c.Pending()
	for range n {
		c.Consume()
	}
	return n
}

func TestFrameClockSixtyHertzNoDrift(t *testing.T) {
	c := NewFrameClock(60, 0)
	c.Advance(0, true)
	if n := runTicks(c); n != 0 {
		t.Fatalf("first frame ran %d ticks, expected 0", n)
	}

	total := 0
	for i := 1; i <= 600; i++ {
		ts := time.Duration(i) * time.Second / 60
		c.Advance(ts, true)
		n := runTicks(c)
		if n != 1 {
			t.Fatalf("frame %d ran %d ticks, expected 1", i, n)
		}
		total += n
	}

	if total != 600 {
		t.Errorf("ran %d ticks over 600 frames", total)
	}
	if c.Accumulated() >= c.Step() {
		t.Errorf("accumulated %v after drain, expected less than one step %v", c.Accumulated(), c.Step())
	}
}

func TestFrameClockFirstFrameSetsOrigin(t *testing.T) {
	c := NewFrameClock(60, 0)

	if d := c.Advance(50*time.Millisecond, true); d != 0 {
		t.Errorf("first Advance delta = %v, expected 0", d)
	}
	if n, dropped := c.Pending(); n != 0 || dropped != 0 {
		t.Errorf("first frame Pending() = (%d, %d), expected (0, 0)", n, dropped)
	}

	c.Advance(50*time.Millisecond+c.Step(), true)
	if n := runTicks(c); n != 1 {
		t.Errorf("second frame ran %d ticks, expected 1", n)
	}
}

func TestFrameClockCatchUp(t *testing.T) {
	c := NewFrameClock(60, 0)
	c.Advance(0, true)
	c.Advance(50*time.Millisecond, true)

	if n := runTicks(c); n != 3 {
		t.Errorf("50ms frame ran %d ticks, expected 3", n)
	}
}

func TestFrameClockNonPositiveDelta(t *testing.T) {
	c := NewFrameClock(60, 0)
	c.Advance(100*time.Millisecond, true)
	runTicks(c)
	before := c.Accumulated()

	if d := c.Advance(100*time.Millisecond, true); d != 0 {
		t.Errorf("duplicate timestamp delta = %v, expected 0", d)
	}
	if d := c.Advance(50*time.Millisecond, true); d != 0 {
		t.Errorf("backwards timestamp delta = %v, expected 0", d)
	}
	if c.Accumulated() != before {
		t.Error("non-positive deltas must not change the accumulator")
	}

	// Time is measured from the newest timestamp seen, not the stale one
	if d := c.Advance(110*time.Millisecond, true); d != 10*time.Millisecond {
		t.Errorf("delta after out-of-order frame = %v, expected 10ms", d)
	}
}

func TestFrameClockFrozenWhilePaused(t *testing.T) {
	c := NewFrameClock(60, 0)
	c.Advance(0, true)

	for i := 1; i <= 120; i++ {
		c.Advance(time.Duration(i)*10*time.Millisecond, false)
	}
	if c.Accumulated() != 0 {
		t.Errorf("paused frames accumulated %v", c.Accumulated())
	}

	// Resuming only counts the frame after the pause
	c.Advance(1200*time.Millisecond+c.Step(), true)
	if n := runTicks(c); n != 1 {
		t.Errorf("first resumed frame ran %d ticks, expected 1", n)
	}
}

func TestFrameClockMaxTicks(t *testing.T) {
	c := NewFrameClock(60, 5)
	c.Advance(0, true)
	c.Advance(time.Second, true)

	n, dropped := c.Pending()
	if n != 5 {
		t.Errorf("Pending() ticks = %d, expected 5", n)
	}
	if dropped != 55 {
		t.Errorf("Pending() dropped = %d, expected 55", dropped)
	}
	for range n {
		if !c.Consume() {
			t.Fatal("Consume() failed with steps pending")
		}
	}
	if c.Consume() {
		t.Error("Consume() should fail once the capped steps are used")
	}
}

func TestFrameClockFPS(t *testing.T) {
	c := NewFrameClock(60, 0)
	for i := 1; i <= 600; i++ {
		c.Advance(time.Duration(i)*time.Second/60, true)
		runTicks(c)
	}
	if fps := c.FPS(); fps < 59 || fps > 61 {
		t.Errorf("FPS() = %f, expected about 60", fps)
	}
}

func TestFrameClockDefaultRate(t *testing.T) {
	c := NewFrameClock(0, 0)
	if c.Step() != time.Second/60 {
		t.Errorf("Step() = %v, expected 1/60s", c.Step())
	}
}
