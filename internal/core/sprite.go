package core

import "fmt"

// Sprite sheet geometry: 16x16 sprites of 8x8 pixels.
const (
	SpriteSize    = TileSize
	SheetSprites  = 16
	SheetSize     = SpriteSize * SheetSprites
	MaxSpriteID   = SheetSprites*SheetSprites - 1
	TransparentID = ColorBlack
)

// SpriteTable is the sparse sprite description a cartridge ships with.
// Keys are sprite numbers 0..255; each value is a list of pixel rows where
// colour 0 leaves the pixel transparent.
type SpriteTable map[int][][]Color

// SpriteSheet is the rasterized 128x128 sheet sprites are blitted from.
type SpriteSheet struct {
	pix [SheetSize * SheetSize]Color
}

// NewSpriteSheet rasterizes a sprite table. Sprite n lands at
// ((n%16)*8, (n/16)*8); pixels outside the sheet are dropped.
func NewSpriteSheet(table SpriteTable) (*SpriteSheet, error) {
	sheet := &SpriteSheet{}
	for n, rows := range table {
		if n < 0 || n > MaxSpriteID {
			return nil, fmt.Errorf("core: sprite %d is out of range", n)
		}
		ox := (n % SheetSprites) * SpriteSize
		oy := (n / SheetSprites) * SpriteSize
		for dy, row := range rows {
			for dx, c := range row {
				if c == TransparentID {
					continue
				}
				sheet.set(ox+dx, oy+dy, c)
			}
		}
	}
	return sheet, nil
}

func (s *SpriteSheet) set(x, y int, c Color) {
	if x < 0 || x >= SheetSize || y < 0 || y >= SheetSize {
		return
	}
	s.pix[y*SheetSize+x] = c
}

// Pixel returns the sheet colour at (x, y), transparent when out of bounds.
func (s *SpriteSheet) Pixel(x, y int) Color {
	if s == nil || x < 0 || x >= SheetSize || y < 0 || y >= SheetSize {
		return TransparentID
	}
	return s.pix[y*SheetSize+x]
}
