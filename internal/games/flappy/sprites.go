package flappy

import "github.com/vovakirdan/tui-pico/internal/core"

// Sprite numbers on the sheet.
const (
	spriteBird    = 0 // frames 0..2
	spritePipe    = 16
	spritePipeCap = 32
	birdFrames    = 3
)

// sprites is the cartridge's sprite table. Rows may be short; missing
// pixels are transparent.
var sprites = core.SpriteTable{
	0: {
		{},
		{0, 0, 0, 9, 7, 7, 7},
		{0, 9, 9, 9, 7, 7, 5},
		{7, 7, 7, 9, 9, 7, 7},
		{7, 7, 7, 7, 9, 8, 8, 8},
		{7, 7, 7, 7, 9, 9, 9},
		{0, 7, 7, 9, 9, 9},
		{},
	},
	1: {
		{},
		{0, 0, 0, 9, 7, 7, 7},
		{0, 9, 9, 9, 7, 7, 5},
		{9, 9, 9, 9, 9, 7, 7},
		{7, 7, 7, 7, 9, 8, 8, 8},
		{7, 7, 7, 7, 9, 9, 9},
		{0, 9, 9, 9, 9, 9},
		{},
	},
	2: {
		{},
		{0, 0, 0, 9, 7, 7, 7},
		{0, 9, 9, 9, 7, 7, 5},
		{9, 9, 9, 9, 9, 7, 7},
		{9, 7, 7, 7, 9, 8, 8, 8},
		{7, 7, 7, 9, 9, 9, 9},
		{7, 7, 9, 9, 9, 9},
		{},
	},
	16: repeatRow([]core.Color{0, 0, 5, 3, 3, 11, 7, 11}, 8),
	17: repeatRow([]core.Color{11, 11, 11, 3, 3, 5}, 8),
	32: capRows([]core.Color{5, 3, 3, 11, 7, 11, 11, 11}),
	33: capRows([]core.Color{11, 11, 3, 3, 3, 3, 3, 5}),
}

// repeatRow builds a sprite of n identical rows.
func repeatRow(row []core.Color, n int) [][]core.Color {
	rows := make([][]core.Color, n)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

// capRows builds a pipe cap: an outline row, five body rows, an outline row.
func capRows(body []core.Color) [][]core.Color {
	edge := []core.Color{5, 5, 5, 5, 5, 5, 5, 5}
	rows := [][]core.Color{edge}
	rows = append(rows, repeatRow(body, 5)...)
	return append(rows, edge)
}
