package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pico/internal/core"
)

// halfBlock shows the upper pixel as foreground and the lower as background.
const halfBlock = "▀"

// cellStyles holds one style per (top, bottom) colour pair.
var cellStyles = func() (styles [core.PaletteSize][core.PaletteSize]lipgloss.Style) {
	for top := range core.PaletteSize {
		for bottom := range core.PaletteSize {
			styles[top][bottom] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(core.Color(top).Hex())).
				Background(lipgloss.Color(core.Color(bottom).Hex()))
		}
	}
	return styles
}()

// cellRun is a horizontal run of cells with the same colour pair.
type cellRun struct {
	top, bottom core.Color
	n           int
}

// rowRuns groups terminal row y (pixel rows 2y and 2y+1) into runs.
// A missing bottom pixel on odd-height screens is drawn black.
func rowRuns(s *core.Screen, y int) []cellRun {
	var runs []cellRun
	for x := 0; x < s.Width(); x++ {
		top := s.Pget(x, 2*y)
		bottom := s.Pget(x, 2*y+1)
		if n := len(runs); n > 0 && runs[n-1].top == top && runs[n-1].bottom == bottom {
			runs[n-1].n++
			continue
		}
		runs = append(runs, cellRun{top: top, bottom: bottom, n: 1})
	}
	return runs
}

// RenderScreen converts the framebuffer to a styled string, two pixel rows
// per terminal row. Groups adjacent cells with the same colours to minimize
// ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	rows := (s.Height() + 1) / 2

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*rows*4 + rows)

	for y := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range rowRuns(s, y) {
			style := cellStyles[run.top&0x0f][run.bottom&0x0f]
			sb.WriteString(style.Render(strings.Repeat(halfBlock, run.n)))
		}
	}
	return sb.String()
}
