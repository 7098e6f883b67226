package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(NativeWidth, NativeHeight)

	if s.Width() != 128 || s.Height() != 128 {
		t.Fatalf("size = %dx%d, expected 128x128", s.Width(), s.Height())
	}
	for i, c := range s.Pixels() {
		if c != ColorBlack {
			t.Fatalf("new screen pixel %d = %d, expected black", i, c)
		}
	}
}

func TestScreenPsetPget(t *testing.T) {
	s := NewScreen(16, 16)

	s.Pset(3, 4, ColorRed)
	if s.Pget(3, 4) != ColorRed {
		t.Errorf("Pget(3, 4) = %d, expected %d", s.Pget(3, 4), ColorRed)
	}

	// Out of bounds must not panic
	s.Pset(-1, 0, ColorRed)
	s.Pset(16, 0, ColorRed)
	s.Pset(0, -1, ColorRed)
	s.Pset(0, 16, ColorRed)

	if s.Pget(-1, 0) != ColorBlack || s.Pget(99, 99) != ColorBlack {
		t.Error("out of bounds Pget should return black")
	}

	s.Pset(0, 0, Color(200))
	if s.Pget(0, 0) != ColorBlack {
		t.Error("invalid colour should be drawn as black")
	}
}

func TestScreenCls(t *testing.T) {
	s := NewScreen(8, 8)
	s.Cls(ColorBlue)

	for i, c := range s.Pixels() {
		if c != ColorBlue {
			t.Fatalf("pixel %d = %d after Cls, expected %d", i, c, ColorBlue)
		}
	}
	if s.Background() != ColorBlue {
		t.Errorf("Background() = %d, expected %d", s.Background(), ColorBlue)
	}
}

func TestScreenClsOutOfRange(t *testing.T) {
	s := NewScreen(2, 2)
	s.Cls(ColorBlue)
	s.Cls(Color(20))

	for i, c := range s.Pixels() {
		if c != ColorBlack {
			t.Fatalf("pixel %d = %d after Cls(20), expected black", i, c)
		}
	}
	if s.Background() != ColorBlack {
		t.Errorf("Background() = %d, expected black", s.Background())
	}

	pix := make([]byte, 2*2*4)
	s.FillRGBA(pix)
	if pix[0] != 0 || pix[1] != 0 || pix[2] != 0 {
		t.Errorf("FillRGBA() first pixel = %x, expected black", pix[:4])
	}
}

func TestScreenRectOutline(t *testing.T) {
	s := NewScreen(10, 10)
	s.Rect(1, 1, 4, 3, ColorWhite)

	expected := []string{
		"0000000000",
		"0777700000",
		"0700700000",
		"0777700000",
		"0000000000",
	}
	rows := strings.Split(s.String(), "\n")
	for y, want := range expected {
		if rows[y] != want {
			t.Errorf("row %d = %s, expected %s", y, rows[y], want)
		}
	}
}

func TestScreenRectFill(t *testing.T) {
	s := NewScreen(10, 10)
	s.RectFill(2, 2, 3, 3, ColorGreen)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			got := s.Pget(x, y) == ColorGreen
			if got != inside {
				t.Errorf("pixel (%d, %d) filled = %v, expected %v", x, y, got, inside)
			}
		}
	}
}

func TestScreenLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		points         [][2]int
	}{
		{"horizontal", 0, 0, 4, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
		{"vertical", 2, 1, 2, 3, [][2]int{{2, 1}, {2, 2}, {2, 3}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reversed", 3, 3, 0, 0, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single point", 5, 5, 5, 5, [][2]int{{5, 5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 8)
			s.Line(tc.x0, tc.y0, tc.x1, tc.y1, ColorYellow)

			count := 0
			for _, c := range s.Pixels() {
				if c == ColorYellow {
					count++
				}
			}
			if count != len(tc.points) {
				t.Errorf("line lit %d pixels, expected %d", count, len(tc.points))
			}
			for _, p := range tc.points {
				if s.Pget(p[0], p[1]) != ColorYellow {
					t.Errorf("expected pixel at (%d, %d)", p[0], p[1])
				}
			}
		})
	}
}

func TestScreenCirc(t *testing.T) {
	s := NewScreen(21, 21)
	s.Circ(10, 10, 3, ColorPink)

	for _, p := range [][2]int{{13, 10}, {7, 10}, {10, 13}, {10, 7}} {
		if s.Pget(p[0], p[1]) != ColorPink {
			t.Errorf("outline missing pixel (%d, %d)", p[0], p[1])
		}
	}
	if s.Pget(10, 10) != ColorBlack {
		t.Error("outline circle should leave the center empty")
	}
}

func TestScreenCircFill(t *testing.T) {
	s := NewScreen(21, 21)
	s.CircFill(10, 10, 3, ColorPink)

	if s.Pget(10, 10) != ColorPink {
		t.Error("filled circle should cover the center")
	}
	if s.Pget(13, 10) != ColorPink || s.Pget(7, 10) != ColorPink {
		t.Error("filled circle should reach the radius on the center row")
	}
	if s.Pget(13, 13) != ColorBlack {
		t.Error("filled circle should not cover the bounding box corner")
	}

	// Radius zero is a single pixel
	s.Clear()
	s.CircFill(4, 4, 0, ColorRed)
	if s.Pget(4, 4) != ColorRed || s.Pget(5, 4) != ColorBlack {
		t.Error("radius 0 should draw exactly one pixel")
	}
}

func TestScreenSpr(t *testing.T) {
	sheet, err := NewSpriteSheet(SpriteTable{
		1:  {{ColorRed, 0, ColorRed}},
		17: {{ColorGreen}},
	})
	if err != nil {
		t.Fatalf("NewSpriteSheet() failed: %v", err)
	}

	s := NewScreen(32, 32)
	s.Cls(ColorBlue)
	s.SetSprites(sheet)

	if !s.Spr(1, 4, 4, 1, 1) {
		t.Fatal("Spr(1) should draw")
	}
	if s.Pget(4, 4) != ColorRed || s.Pget(6, 4) != ColorRed {
		t.Error("sprite pixels not blitted")
	}
	if s.Pget(5, 4) != ColorBlue {
		t.Error("colour 0 should be transparent")
	}

	// 1x2 block starting at sprite 1 also covers sprite 17 below it
	s.Cls(ColorBlue)
	s.Spr(1, 0, 0, 1, 2)
	if s.Pget(0, 8) != ColorGreen {
		t.Errorf("second row sprite not drawn, got %d", s.Pget(0, 8))
	}

	if s.Spr(-1, 0, 0, 1, 1) || s.Spr(256, 0, 0, 1, 1) {
		t.Error("out of range sprite numbers should be rejected")
	}
}

func TestScreenPrint(t *testing.T) {
	s := NewScreen(32, 8)
	end := s.Print("hi", 1, 1, ColorWhite)

	// H is 3 wide, I is 3 wide, each followed by a one pixel gap
	if end != 1+4+4 {
		t.Errorf("Print returned x=%d, expected 9", end)
	}
	// H: left column lit on every row
	for y := 1; y < 1+GlyphHeight; y++ {
		if s.Pget(1, y) != ColorWhite {
			t.Errorf("H left stroke missing at y=%d", y)
		}
	}
	// I: top bar lit
	if s.Pget(5, 1) != ColorWhite || s.Pget(7, 1) != ColorWhite {
		t.Error("I top bar missing")
	}
}

func TestScreenPrintSkipsUnknown(t *testing.T) {
	s := NewScreen(16, 8)
	end := s.Print("é", 0, 0, ColorWhite)
	if end != 0 {
		t.Errorf("unknown rune should not advance, got %d", end)
	}
	for _, c := range s.Pixels() {
		if c != ColorBlack {
			t.Fatal("unknown rune should draw nothing")
		}
	}
}

func TestScreenFillRGBA(t *testing.T) {
	s := NewScreen(2, 1)
	s.Pset(0, 0, ColorRed)
	s.Pset(1, 0, ColorWhite)

	pix := make([]byte, 2*1*4)
	s.FillRGBA(pix)

	expected := []byte{0xff, 0x00, 0x4d, 0xff, 0xff, 0xf1, 0xe8, 0xff}
	for i := range expected {
		if pix[i] != expected[i] {
			t.Fatalf("FillRGBA() = %x, expected %x", pix, expected)
		}
	}
}
