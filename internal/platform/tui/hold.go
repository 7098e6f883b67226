package tui

import (
	"time"

	"github.com/vovakirdan/tui-pico/internal/core"
)

// menuSlot tracks the menu key next to the six buttons.
const menuSlot = core.ButtonCount

// HoldTracker reconstructs key-up events for terminals, which only report
// key-down and OS auto-repeat. The first event for a key is the press;
// further events within the hold window are auto-repeat; a key with no
// event for a whole window counts as released.
type HoldTracker struct {
	window time.Duration
	held   [core.ButtonCount + 1]bool
	seen   [core.ButtonCount + 1]time.Duration
}

// NewHoldTracker creates a tracker with the given release window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = 180 * time.Millisecond
	}
	return &HoldTracker{window: window}
}

// Window returns the release window.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}

// Button records an event for b at now and reports whether it is an
// auto-repeat of a key that is still held.
func (h *HoldTracker) Button(b core.Button, now time.Duration) (repeat bool) {
	if !b.Valid() {
		return false
	}
	return h.event(int(b), now)
}

// Menu records a menu key event, reporting auto-repeat like Button.
func (h *HoldTracker) Menu(now time.Duration) (repeat bool) {
	return h.event(menuSlot, now)
}

func (h *HoldTracker) event(slot int, now time.Duration) bool {
	repeat := h.held[slot] && now-h.seen[slot] < h.window
	h.held[slot] = true
	h.seen[slot] = now
	return repeat
}

// Expire returns the buttons that went quiet for a full window and marks
// them released. The menu key is released silently.
func (h *HoldTracker) Expire(now time.Duration) []core.Button {
	var released []core.Button
	for slot := range h.held {
		if !h.held[slot] || now-h.seen[slot] < h.window {
			continue
		}
		h.held[slot] = false
		if slot != menuSlot {
			released = append(released, core.Button(slot))
		}
	}
	return released
}

// Held reports whether the tracker considers b held.
func (h *HoldTracker) Held(b core.Button) bool {
	return b.Valid() && h.held[b]
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	h.held = [core.ButtonCount + 1]bool{}
}
