package engine

import "github.com/vovakirdan/tui-pico/internal/core"

// buttonState is the latched state of one logical button.
type buttonState struct {
	down    bool // held right now
	pressed bool // went down since the last tick
	held    int  // ticks the button has stayed down, for hold repeat
}

// Latch turns raw key transitions into per-tick button state.
// Edges recorded between two ticks are visible to the next tick only:
// PostTick must run exactly once after every logical tick.
//
// A Latch is owned by a single goroutine (the host's frame loop).
type Latch struct {
	buttons     [core.ButtonCount]buttonState
	menu        bool
	repeatEvery int
}

// NewLatch creates a latch. repeatEvery > 0 retriggers the pressed edge every
// repeatEvery ticks while a button stays held; 0 fires once per press.
func NewLatch(repeatEvery int) *Latch {
	if repeatEvery < 0 {
		repeatEvery = 0
	}
	return &Latch{repeatEvery: repeatEvery}
}

// Press records a key-down for b. OS auto-repeat events, and downs for a
// button that is already held, never produce an edge. Unmapped buttons are
// ignored.
func (l *Latch) Press(b core.Button, repeat bool) {
	if !b.Valid() || repeat {
		return
	}
	st := &l.buttons[b]
	if st.down {
		return
	}
	st.down = true
	st.pressed = true
	st.held = 0
}

// Release records a key-up for b. A pending edge survives so a tap shorter
// than one tick still reaches the next update.
func (l *Latch) Release(b core.Button) {
	if !b.Valid() {
		return
	}
	st := &l.buttons[b]
	st.down = false
	st.held = 0
}

// PressMenu latches the menu key. It has no held state.
func (l *Latch) PressMenu(repeat bool) {
	if repeat {
		return
	}
	l.menu = true
}

// MenuPressed reports whether the menu key went down since the last tick.
func (l *Latch) MenuPressed() bool {
	return l.menu
}

// IsDown reports whether b is held.
func (l *Latch) IsDown(b core.Button) bool {
	return b.Valid() && l.buttons[b].down
}

// WasPressed reports whether b went down since the last tick.
func (l *Latch) WasPressed(b core.Button) bool {
	return b.Valid() && l.buttons[b].pressed
}

// Btn implements core.Input without any gameplay gating.
func (l *Latch) Btn(b core.Button) bool {
	return l.IsDown(b)
}

// Btnp implements core.Input without any gameplay gating.
func (l *Latch) Btnp(b core.Button) bool {
	return l.WasPressed(b)
}

// PostTick clears all edges. Held state persists, and with hold repeat
// enabled a held button re-arms its edge for the coming tick.
func (l *Latch) PostTick() {
	for i := range l.buttons {
		st := &l.buttons[i]
		st.pressed = false
		if !st.down {
			continue
		}
		st.held++
		if l.repeatEvery > 0 && st.held%l.repeatEvery == 0 {
			st.pressed = true
		}
	}
	l.menu = false
}

// FocusLost releases everything so no key stays stuck after the host
// window loses focus mid-press.
func (l *Latch) FocusLost() {
	l.buttons = [core.ButtonCount]buttonState{}
	l.menu = false
}

var _ core.Input = (*Latch)(nil)
