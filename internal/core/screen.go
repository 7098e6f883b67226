package core

import "strings"

// DefaultPen is the colour primitives draw with when no colour is given.
const DefaultPen = ColorLightGray

// Screen is the console framebuffer: one palette index per pixel.
// It decouples cartridge drawing from the host, which only has to turn
// the indices into terminal cells or window pixels.
type Screen struct {
	width  int
	height int
	pix    []Color
	bg     Color
	sheet  *SpriteSheet
}

// NewScreen creates a cleared framebuffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
	return s
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Background returns the colour of the last Cls call.
func (s *Screen) Background() Color {
	return s.bg
}

// SetSprites attaches the sheet Spr blits from.
func (s *Screen) SetSprites(sheet *SpriteSheet) {
	s.sheet = sheet
}

// Pixels exposes the framebuffer rows, row-major. Callers must not retain it
// across frames.
func (s *Screen) Pixels() []Color {
	return s.pix
}

// Cls fills the whole screen with c. Out-of-range colours clear to black.
func (s *Screen) Cls(c Color) {
	if !c.Valid() {
		c = ColorBlack
	}
	s.bg = c
	for i := range s.pix {
		s.pix[i] = c
	}
}

// Clear is Cls with black.
func (s *Screen) Clear() {
	s.Cls(ColorBlack)
}

// Pset sets a single pixel. Out-of-bounds coordinates are ignored.
func (s *Screen) Pset(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	if !c.Valid() {
		c = ColorBlack
	}
	s.pix[y*s.width+x] = c
}

// Pget returns the pixel colour, black for out-of-bounds coordinates.
func (s *Screen) Pget(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ColorBlack
	}
	return s.pix[y*s.width+x]
}

// hline fills pixels x0..x1 inclusive on row y.
func (s *Screen) hline(x0, x1, y int, c Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		s.Pset(x, y, c)
	}
}

// Rect draws a one pixel wide outline of the w x h box at (x, y).
func (s *Screen) Rect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	right, bottom := x+w-1, y+h-1
	s.hline(x, right, y, c)
	s.hline(x, right, bottom, c)
	for py := y + 1; py < bottom; py++ {
		s.Pset(x, py, c)
		s.Pset(right, py, c)
	}
}

// RectFill fills the w x h box at (x, y).
func (s *Screen) RectFill(x, y, w, h int, c Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			s.Pset(px, py, c)
		}
	}
}

// Line draws from (x0, y0) to (x1, y1) inclusive with Bresenham's algorithm.
func (s *Screen) Line(x0, y0, x1, y1 int, c Color) {
	dx := Abs(x1 - x0)
	dy := Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	for {
		s.Pset(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x0 += sx
		}
		if e2 < dy {
			err += dx
			y0 += sy
		}
	}
}

// Circ draws a circle outline using the midpoint algorithm.
func (s *Screen) Circ(cx, cy, r int, c Color) {
	s.circle(cx, cy, r, c, false)
}

// CircFill draws a filled circle.
func (s *Screen) CircFill(cx, cy, r int, c Color) {
	s.circle(cx, cy, r, c, true)
}

func (s *Screen) circle(cx, cy, r int, c Color, filled bool) {
	if r < 0 {
		return
	}
	x, y := 0, r
	d := 1 - r

	plot := func(x, y int) {
		if filled {
			s.hline(cx-x, cx+x, cy+y, c)
			s.hline(cx-x, cx+x, cy-y, c)
			s.hline(cx-y, cx+y, cy+x, c)
			s.hline(cx-y, cx+y, cy-x, c)
			return
		}
		s.Pset(cx+x, cy+y, c)
		s.Pset(cx-x, cy+y, c)
		s.Pset(cx+x, cy-y, c)
		s.Pset(cx-x, cy-y, c)
		s.Pset(cx+y, cy+x, c)
		s.Pset(cx-y, cy+x, c)
		s.Pset(cx+y, cy-x, c)
		s.Pset(cx-y, cy-x, c)
	}

	plot(x, y)
	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
		plot(x, y)
	}
}

// Spr blits sprite n, w sprites wide and h sprites high, with its top-left
// corner at (x, y). Colour 0 is transparent. Sprite numbers outside 0..255
// draw nothing and return false.
func (s *Screen) Spr(n, x, y, w, h int) bool {
	if n < 0 || n > MaxSpriteID || s.sheet == nil {
		return false
	}
	sx := (n % SheetSprites) * SpriteSize
	sy := (n / SheetSprites) * SpriteSize
	for dy := 0; dy < h*SpriteSize; dy++ {
		for dx := 0; dx < w*SpriteSize; dx++ {
			c := s.sheet.Pixel(sx+dx, sy+dy)
			if c == TransparentID {
				continue
			}
			s.Pset(x+dx, y+dy, c)
		}
	}
	return true
}

// Print draws text with the bitmap font and returns the x just past the
// last glyph. Lower-case letters print as upper case; unknown runes are
// skipped.
func (s *Screen) Print(text string, x, y int, c Color) int {
	for _, r := range text {
		g, ok := Glyph(r)
		if !ok {
			continue
		}
		for gy, row := range g {
			for gx := 0; gx < len(row); gx++ {
				if row[gx] == '#' {
					s.Pset(x+gx, y+gy, c)
				}
			}
		}
		x += glyphWidth(g) + 1
	}
	return x
}

// String renders the framebuffer as hex digits, one row per line.
// Handy in tests and for debugging snapshots.
func (s *Screen) String() string {
	const digits = "0123456789abcdef"
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteByte(digits[s.pix[y*s.width+x]&0x0f])
		}
	}
	return sb.String()
}

// FillRGBA writes the framebuffer as 8-bit RGBA into pix, which must hold
// at least Width*Height*4 bytes.
func (s *Screen) FillRGBA(pix []byte) {
	for i, c := range s.pix {
		rgba := c.RGBA()
		o := i * 4
		pix[o] = rgba.R
		pix[o+1] = rgba.G
		pix[o+2] = rgba.B
		pix[o+3] = rgba.A
	}
}
