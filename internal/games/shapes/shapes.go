// Package shapes is a showcase cartridge for the drawing primitives.
// The d-pad moves a circle, Z cycles its colour and X toggles the fill.
package shapes

import (
	"fmt"

	"github.com/vovakirdan/tui-pico/internal/core"
	"github.com/vovakirdan/tui-pico/internal/registry"
)

const (
	cursorRadius = 6
	cursorSpeed  = 1
	swatchSize   = 8
	spriteStar   = 1
)

// Game implements the shapes cartridge.
type Game struct {
	x, y   int
	color  core.Color
	filled bool
	ticks  int
}

// New creates a new shapes instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this cartridge.
func (g *Game) ID() string {
	return "shapes"
}

// Title returns the display name for this cartridge.
func (g *Game) Title() string {
	return "Shapes Demo"
}

// Sprites returns a single star sprite.
func (g *Game) Sprites() core.SpriteTable {
	const y, o = core.ColorYellow, core.ColorOrange
	return core.SpriteTable{
		spriteStar: {
			{0, 0, 0, y},
			{0, 0, 0, y},
			{y, y, y, o, y, y, y},
			{0, y, o, o, o, y},
			{0, 0, y, o, y},
			{0, y, y, 0, y, y},
			{0, y},
			{},
		},
	}
}

// Reset centres the cursor.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.x = cfg.ScreenW / 2
	g.y = cfg.ScreenH / 2
	g.color = core.ColorPink
	g.filled = true
	g.ticks = 0
}

// Update moves the cursor while the d-pad is held and reacts to button
// presses.
func (g *Game) Update(in core.Input) {
	g.ticks++

	if in.Btn(core.ButtonLeft) {
		g.x -= cursorSpeed
	}
	if in.Btn(core.ButtonRight) {
		g.x += cursorSpeed
	}
	if in.Btn(core.ButtonUp) {
		g.y -= cursorSpeed
	}
	if in.Btn(core.ButtonDown) {
		g.y += cursorSpeed
	}
	g.x = core.Clamp(g.x, cursorRadius, core.NativeWidth-1-cursorRadius)
	g.y = core.Clamp(g.y, cursorRadius, core.NativeHeight-1-cursorRadius)

	if in.Btnp(core.ButtonPrimary) {
		g.color = (g.color + 1) % core.PaletteSize
		if g.color == core.ColorBlack {
			g.color++
		}
	}
	if in.Btnp(core.ButtonSecondary) {
		g.filled = !g.filled
	}
}

// Draw renders the palette strip, a few primitives and the cursor.
func (g *Game) Draw(dst *core.Screen) {
	dst.Cls(core.ColorDarkBlue)

	for i := range core.PaletteSize {
		dst.RectFill(i*swatchSize, core.NativeHeight-swatchSize, swatchSize, swatchSize, core.Color(i))
	}

	dst.Print("shapes", 2, 10, core.ColorWhite)
	dst.Rect(2, 18, 40, 20, core.ColorGreen)
	dst.Line(2, 18, 41, 37, core.ColorOrange)
	dst.Circ(64, 28, 9, core.ColorPeach)

	// The star drifts across the screen
	dst.Spr(spriteStar, (g.ticks/2)%core.NativeWidth, 40, 1, 1)

	if g.filled {
		dst.CircFill(g.x, g.y, cursorRadius, g.color)
	} else {
		dst.Circ(g.x, g.y, cursorRadius, g.color)
	}
	dst.Print(fmt.Sprintf("%d,%d", g.x, g.y), 2, core.NativeHeight-swatchSize-7, core.ColorLightGray)
}

// State reports the tick count as the score; the demo never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.ticks}
}

func init() {
	registry.Register("shapes", func() registry.Cartridge {
		return New()
	})
}
