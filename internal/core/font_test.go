package core

import "testing"

func TestGlyphCoverage(t *testing.T) {
	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 :-.~" {
		g, ok := Glyph(r)
		if !ok {
			t.Errorf("glyph %q missing", r)
			continue
		}
		if len(g) > GlyphHeight {
			t.Errorf("glyph %q has %d rows, max %d", r, len(g), GlyphHeight)
		}
	}
}

func TestGlyphLowerCase(t *testing.T) {
	upper, _ := Glyph('Q')
	lower, ok := Glyph('q')
	if !ok {
		t.Fatal("lower-case letters should map to upper case")
	}
	if len(upper) != len(lower) || upper[0] != lower[0] {
		t.Error("lower-case glyph differs from upper-case glyph")
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"A", 4},
		{"FPS: 60", 4 + 4 + 4 + 4 + 4 + 4 + 4},
		{"!", 3},
		{"\t", 0},
	}

	for _, tc := range tests {
		if got := TextWidth(tc.text); got != tc.expected {
			t.Errorf("TextWidth(%q) = %d, expected %d", tc.text, got, tc.expected)
		}
	}
}
