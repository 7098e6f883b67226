package core

import "unicode"

// GlyphHeight is the height of every font glyph in pixels.
const GlyphHeight = 5

// glyphs is the console's bitmap font. '#' marks a lit pixel; the glyph
// width is its longest row, so narrow punctuation advances less.
var glyphs = map[rune][]string{
	'~':  {"#", "##", "###", "##", "#"},
	'!':  {".#", ".#", ".#", "..", ".#"},
	'"':  {"#.#", "#.#"},
	'#':  {"#.#", "###", "#.#", "###", "#.#"},
	'$':  {"###", "##", ".##", "###", ".#"},
	'%':  {"#.#", "..#", ".#", "#", "#.#"},
	'&':  {"##", "##", ".##", "#.#", "###"},
	'\'': {".#", "#"},
	'(':  {".#", "#", "#", "#", ".#."},
	')':  {".#", "..#", "..#", "..#", ".#"},
	'*':  {"#.#", ".#", "###", ".#", "#.#"},
	'+':  {"", ".#", "###", ".#"},
	',':  {"", "", "", ".#", "#"},
	'-':  {"", "", "###"},
	'.':  {"", "", "", "", ".#."},
	'/':  {"..#", ".#", ".#", ".#", "#"},
	':':  {".", ".#", "", ".#."},
	';':  {".", ".#", "", ".#", "#.."},
	'<':  {"..#", ".#", "#", ".#", "..#"},
	'=':  {"", "###", "", "###"},
	'>':  {"#", ".#", "..#", ".#", "#"},
	'?':  {"###", "..#", ".##", "", ".#"},
	'@':  {".#", "#.#", "#.#", "#", ".##"},
	'{':  {".##", ".#", "##", ".#", ".##"},
	'|':  {".#", ".#", ".#", ".#", ".#."},
	'}':  {"##", ".#", ".##", ".#", "##"},
	'[':  {"##", "#", "#", "#", "##."},
	'\\': {"#", ".#", ".#", ".#", "..#"},
	']':  {".##", "..#", "..#", "..#", ".##"},
	'0':  {"###", "#.#", "#.#", "#.#", "###"},
	'1':  {"##", ".#", ".#", ".#", "###"},
	'2':  {"###", "..#", "###", "#", "###"},
	'3':  {"###", "..#", ".##", "..#", "###"},
	'4':  {"#.#", "#.#", "###", "..#", "..#"},
	'5':  {"###", "#", "###", "..#", "###"},
	'6':  {"#", "#", "###", "#.#", "###"},
	'7':  {"###", "..#", "..#", "..#", "..#"},
	'8':  {"###", "#.#", "###", "#.#", "###"},
	'9':  {"###", "#.#", "###", "..#", "..#"},
	'A':  {"###", "#.#", "###", "#.#", "#.#"},
	'B':  {"###", "#.#", "##", "#.#", "###"},
	'C':  {".##", "#", "#", "#", ".##"},
	'D':  {"##", "#.#", "#.#", "#.#", "###"},
	'E':  {"###", "#", "##", "#", "###"},
	'F':  {"###", "#", "##", "#", "#"},
	'G':  {".##", "#", "#", "#.#", "###"},
	'H':  {"#.#", "#.#", "###", "#.#", "#.#"},
	'I':  {"###", ".#", ".#", ".#", "###"},
	'J':  {"###", ".#", ".#", ".#", "##"},
	'K':  {"#.#", "#.#", "##", "#.#", "#.#"},
	'L':  {"#", "#", "#", "#", "###"},
	'M':  {"###", "###", "#.#", "#.#", "#.#"},
	'N':  {"##", "#.#", "#.#", "#.#", "#.#"},
	'O':  {".##", "#.#", "#.#", "#.#", "##"},
	'P':  {"###", "#.#", "###", "#", "#"},
	'Q':  {".#", "#.#", "#.#", "##", ".##"},
	'R':  {"###", "#.#", "##", "#.#", "#.#"},
	'S':  {".##", "#", "###", "..#", "##"},
	'T':  {"###", ".#", ".#", ".#", ".#"},
	'U':  {"#.#", "#.#", "#.#", "#.#", ".##"},
	'V':  {"#.#", "#.#", "#.#", "###", ".#"},
	'W':  {"#.#", "#.#", "#.#", "###", "###"},
	'X':  {"#.#", "#.#", ".#", "#.#", "#.#"},
	'Y':  {"#.#", "#.#", "###", "..#", "###"},
	'Z':  {"###", "..#", ".#", "#", "###"},
	' ':  {"..."},
}

// Glyph returns the bitmap rows for r, upper-casing letters first.
// The second result is false for runes the font does not cover.
func Glyph(r rune) ([]string, bool) {
	g, ok := glyphs[unicode.ToUpper(r)]
	return g, ok
}

// glyphWidth returns the width of the widest row of a glyph.
func glyphWidth(g []string) int {
	w := 0
	for _, row := range g {
		w = max(w, len(row))
	}
	return w
}

// TextWidth returns how many pixels Print advances for text.
func TextWidth(text string) int {
	w := 0
	for _, r := range text {
		if g, ok := Glyph(r); ok {
			w += glyphWidth(g) + 1
		}
	}
	return w
}
