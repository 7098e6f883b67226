// Package engine runs a cartridge on the console: it owns the button latch,
// the fixed-timestep frame clock, the playing/paused mode and the pause
// menu, and it renders exactly one frame per host callback.
//
// The engine never reads the wall clock or the keyboard itself. Hosts call
// Frame with a monotonic timestamp and feed key transitions into Latch, so
// the same engine runs under Bubble Tea, ebiten or a test.
package engine

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pico/internal/core"
	"github.com/vovakirdan/tui-pico/internal/registry"
)

// Mode is the engine's top-level state.
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Options configures an engine.
type Options struct {
	TickRate         int         // logical ticks per second
	MaxTicksPerFrame int         // catch-up cap per frame, 0 = unbounded
	ButtonRepeat     int         // hold repeat period in ticks, 0 = off
	ShowFPS          bool        // draw the FPS counter
	SoundOn          bool        // initial sound setting
	Volume           int         // initial volume, 0..8
	Seed             int64       // RNG seed handed to the cartridge
	Logger           *log.Logger // nil discards
}

// DefaultOptions returns the console defaults.
func DefaultOptions() Options {
	return Options{
		TickRate:         60,
		MaxTicksPerFrame: 10,
		ShowFPS:          true,
		SoundOn:          true,
		Volume:           4,
	}
}

// FrameStats describes one Frame call.
type FrameStats struct {
	Delta   time.Duration // wall time since the previous frame
	Ticks   int           // logical ticks run (game or menu)
	Dropped int           // catch-up ticks discarded by the cap
	Mode    Mode          // mode after the frame
}

// Engine is the single owner of all console state for one cartridge.
// It is not safe for concurrent use; hosts drive it from their frame loop.
type Engine struct {
	cart   registry.Cartridge
	cfg    core.RuntimeConfig
	opts   Options
	logger *log.Logger

	latch  *Latch
	clock  *FrameClock
	menu   *Menu
	mode   Mode
	screen *core.Screen

	ticks  uint64 // game ticks since the last reset
	frames uint64
	resets int64
}

// New builds an engine around cart, rasterizes its sprites and resets it.
func New(cart registry.Cartridge, opts Options) (*Engine, error) {
	if cart == nil {
		return nil, fmt.Errorf("engine: cartridge is nil")
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sheet, err := core.NewSpriteSheet(cart.Sprites())
	if err != nil {
		return nil, fmt.Errorf("engine: cartridge %s: %w", cart.ID(), err)
	}

	screen := core.NewScreen(core.NativeWidth, core.NativeHeight)
	screen.SetSprites(sheet)

	e := &Engine{
		cart:   cart,
		opts:   opts,
		logger: logger.With("cart", cart.ID()),
		latch:  NewLatch(opts.ButtonRepeat),
		clock:  NewFrameClock(opts.TickRate, opts.MaxTicksPerFrame),
		menu:   NewMenu(opts.SoundOn, opts.Volume),
		screen: screen,
		cfg: core.RuntimeConfig{
			ScreenW:  core.NativeWidth,
			ScreenH:  core.NativeHeight,
			TickRate: opts.TickRate,
			Seed:     opts.Seed,
		},
	}
	e.cart.Reset(e.cfg)
	e.logger.Debug("engine started", "tick_rate", opts.TickRate, "max_catchup", opts.MaxTicksPerFrame)
	return e, nil
}

// Frame is the per-refresh entry point. ts is a monotonic timestamp
// measured from any fixed origin. Playing frames drain the accumulator in
// fixed steps; paused frames run exactly one menu tick. Either way exactly
// one render pass follows.
func (e *Engine) Frame(ts time.Duration) FrameStats {
	stats := FrameStats{}
	stats.Delta = e.clock.Advance(ts, e.mode == ModePlaying)

	if e.mode == ModePlaying {
		n, dropped := e.clock.Pending()
		stats.Dropped = dropped
		if dropped > 0 {
			e.logger.Warn("frame clock fell behind, dropping ticks", "dropped", dropped, "delta", stats.Delta)
		}
		for range n {
			e.clock.Consume()
			stats.Ticks++
			if !e.gameTick() {
				break // menu opened, the rest of the accumulator stays frozen
			}
		}
	} else {
		e.menuTick()
		stats.Ticks++
	}

	e.render()
	e.frames++
	stats.Mode = e.mode
	return stats
}

// gameTick runs one logical playing tick. It reports false when the menu key
// paused the game instead of updating it.
func (e *Engine) gameTick() bool {
	defer e.latch.PostTick()

	if e.latch.MenuPressed() {
		e.apply(e.menu.Open())
		return false
	}
	e.cart.Update(e)
	e.ticks++
	return true
}

// menuTick runs one logical paused tick: navigation first, then confirm.
func (e *Engine) menuTick() {
	defer e.latch.PostTick()

	e.menu.Update(e.latch)
	if e.latch.MenuPressed() {
		e.apply(e.menu.Confirm())
	}
}

// apply moves the engine mode according to a menu action.
func (e *Engine) apply(action MenuAction) {
	switch action {
	case MenuActionPause:
		e.setMode(ModePaused)
	case MenuActionResume:
		e.setMode(ModePlaying)
	case MenuActionReset:
		e.setMode(ModePlaying)
		e.Reset()
	}
}

func (e *Engine) setMode(m Mode) {
	if e.mode == m {
		return
	}
	e.logger.Debug("mode changed", "from", e.mode, "to", m, "ticks", e.ticks)
	e.mode = m
}

// render draws the cartridge, then the FPS counter and the menu overlay.
func (e *Engine) render() {
	e.cart.Draw(e.screen)
	if e.opts.ShowFPS {
		e.screen.Print(fmt.Sprintf("FPS: %d", int(math.Floor(e.clock.FPS()))), 0, 0, core.DefaultPen)
	}
	if e.mode == ModePaused {
		e.menu.Draw(e.screen)
	}
}

// Reset restarts the cartridge with a fresh seed derived from the
// configured one, and clears any latched input.
func (e *Engine) Reset() {
	e.resets++
	cfg := e.cfg
	cfg.Seed = e.cfg.Seed + e.resets
	e.ticks = 0
	e.latch.FocusLost()
	e.cart.Reset(cfg)
	e.logger.Info("cartridge reset", "seed", cfg.Seed)
}

// Btn reports whether b is held. It is false whenever gameplay is paused.
func (e *Engine) Btn(b core.Button) bool {
	return e.mode == ModePlaying && e.latch.IsDown(b)
}

// Btnp reports whether b went down this tick. It is false whenever
// gameplay is paused.
func (e *Engine) Btnp(b core.Button) bool {
	return e.mode == ModePlaying && e.latch.WasPressed(b)
}

// Latch returns the input latch hosts feed key transitions into.
func (e *Engine) Latch() *Latch {
	return e.latch
}

// FocusLost clears all held buttons.
func (e *Engine) FocusLost() {
	e.latch.FocusLost()
	e.logger.Debug("focus lost, input cleared")
}

// Mode returns the current engine mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Menu returns the pause menu.
func (e *Engine) Menu() *Menu {
	return e.menu
}

// Clock returns the frame clock.
func (e *Engine) Clock() *FrameClock {
	return e.clock
}

// Screen returns the framebuffer of the last rendered frame.
func (e *Engine) Screen() *core.Screen {
	return e.screen
}

// Cartridge returns the running cartridge.
func (e *Engine) Cartridge() registry.Cartridge {
	return e.cart
}

// Resets returns how many times the cartridge was reset since New.
func (e *Engine) Resets() int64 {
	return e.resets
}

// Ticks returns the number of game ticks since the last reset.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Frames returns the number of rendered frames.
func (e *Engine) Frames() uint64 {
	return e.frames
}

var _ core.Input = (*Engine)(nil)
