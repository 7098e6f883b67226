package core

import (
	"fmt"
	"image/color"
)

// Color is an index into the 16-colour console palette.
type Color uint8

// Palette indices, named after the PICO-8 palette they reproduce.
const (
	ColorBlack Color = iota
	ColorDarkBlue
	ColorDarkPurple
	ColorDarkGreen
	ColorBrown
	ColorDarkGray
	ColorLightGray
	ColorWhite
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorIndigo
	ColorPink
	ColorPeach
)

// PaletteSize is the number of colours the console can display.
const PaletteSize = 16

var palette = [PaletteSize]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0x1d, 0x2b, 0x53, 0xff},
	{0x7e, 0x25, 0x53, 0xff},
	{0x00, 0x87, 0x51, 0xff},
	{0xab, 0x52, 0x36, 0xff},
	{0x5f, 0x57, 0x4f, 0xff},
	{0xc2, 0xc3, 0xc7, 0xff},
	{0xff, 0xf1, 0xe8, 0xff},
	{0xff, 0x00, 0x4d, 0xff},
	{0xff, 0xa3, 0x00, 0xff},
	{0xff, 0xec, 0x27, 0xff},
	{0x00, 0xe4, 0x36, 0xff},
	{0x29, 0xad, 0xff, 0xff},
	{0x83, 0x76, 0x9c, 0xff},
	{0xff, 0x77, 0xa8, 0xff},
	{0xff, 0xcc, 0xaa, 0xff},
}

// Valid reports whether c is inside the palette.
func (c Color) Valid() bool {
	return c < PaletteSize
}

// RGBA returns the display colour. Out-of-range indices map to black.
func (c Color) RGBA() color.RGBA {
	if !c.Valid() {
		return palette[0]
	}
	return palette[c]
}

// Hex returns the colour as a #RRGGBB string for terminal renderers.
func (c Color) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}

// Palette returns a copy of the full palette.
func Palette() [PaletteSize]color.RGBA {
	return palette
}
