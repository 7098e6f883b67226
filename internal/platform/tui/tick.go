// Package tui hosts the console in a terminal with Bubble Tea.
// It feeds key events into the engine latch, drives Frame from a ticker
// and draws the framebuffer with half-block characters.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg carries the wall time of one display refresh.
type FrameMsg time.Time

// frameInterval is the refresh period for rate frames per second.
func frameInterval(rate int) time.Duration {
	return time.Second / time.Duration(max(rate, 1))
}

// nextFrame schedules the next FrameMsg.
func nextFrame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
