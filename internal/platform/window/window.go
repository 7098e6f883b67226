// Package window hosts the console in a desktop or browser window with
// ebiten. Key-up events are real here, so the latch gets exact
// press/release transitions.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pico/internal/engine"
)

// Options configures the window host.
type Options struct {
	Title  string
	Scale  int // window size as a multiple of the native resolution
	Logger *log.Logger
}

// Host implements ebiten.Game around one engine.
type Host struct {
	engine  *engine.Engine
	logger  *log.Logger
	start   time.Time
	focused bool
	image   *ebiten.Image
	pix     []byte
	keys    []ebiten.Key
}

// NewHost creates a host driving eng.
func NewHost(eng *engine.Engine, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := eng.Screen()
	return &Host{
		engine:  eng,
		logger:  logger,
		start:   time.Now(),
		focused: true,
		pix:     make([]byte, s.Width()*s.Height()*4),
	}
}

// Update feeds key transitions into the latch and runs one engine frame.
// ebiten calls it once per display frame.
func (h *Host) Update() error {
	if focused := ebiten.IsFocused(); focused != h.focused {
		h.focused = focused
		if !focused {
			h.engine.FocusLost()
		}
	}

	latch := h.engine.Latch()

	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		switch {
		case IsQuitKey(k):
			return ebiten.Termination
		case IsMenuKey(k):
			latch.PressMenu(false)
		default:
			if b, ok := ButtonForKey(k); ok {
				latch.Press(b, false)
			}
		}
	}

	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		if b, ok := ButtonForKey(k); ok {
			latch.Release(b)
		}
	}

	h.engine.Frame(time.Since(h.start))
	return nil
}

// Draw uploads the framebuffer to the window.
func (h *Host) Draw(screen *ebiten.Image) {
	s := h.engine.Screen()
	if h.image == nil {
		h.image = ebiten.NewImage(s.Width(), s.Height())
	}
	s.FillRGBA(h.pix)
	h.image.WritePixels(h.pix)
	screen.DrawImage(h.image, nil)
}

// Layout keeps the logical screen at the native resolution; ebiten scales it.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := h.engine.Screen()
	return s.Width(), s.Height()
}

// Run opens the window and blocks until it is closed.
func Run(eng *engine.Engine, opts Options) error {
	scale := max(opts.Scale, 1)
	s := eng.Screen()

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(s.Width()*scale, s.Height()*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	host := NewHost(eng, opts.Logger)
	host.logger.Debug("window opened", "scale", scale)

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

var _ ebiten.Game = (*Host)(nil)
