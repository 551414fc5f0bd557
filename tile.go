package dotille

// brailleBase is the first codepoint of the Unicode braille patterns
// block; glyph = brailleBase + mask.
const brailleBase = 0x2800

// dotMask maps a sub-cell dot offset (dy, dx) to its mask bit, following
// the standard braille ordering: the left column top-to-bottom is dots
// 1,2,3,7 (bits 0x01 0x02 0x04 0x40), the right column is dots 4,5,6,8
// (bits 0x08 0x10 0x20 0x80).
//
// http://www.alanwood.net/unicode/braille_patterns.html
var dotMask = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Tile is one character cell: a cell address and an 8-dot bitmask.
// A zero mask means the tile is logically empty; the canvas treats an
// absent tile and a zero-mask tile identically.
type Tile struct {
	Col, Row int
	mask     uint8
}

// Set turns on the dot at sub-cell offset (dx, dy), dx in {0,1} and dy in
// {0,1,2,3}.
func (t *Tile) Set(dx, dy int) {
	t.mask |= dotMask[dy][dx]
}

// Unset turns off the dot at sub-cell offset (dx, dy).
func (t *Tile) Unset(dx, dy int) {
	t.mask &^= dotMask[dy][dx]
}

// Toggle flips the dot at sub-cell offset (dx, dy).
func (t *Tile) Toggle(dx, dy int) {
	t.mask ^= dotMask[dy][dx]
}

// Dot reports whether the dot at sub-cell offset (dx, dy) is set.
func (t *Tile) Dot(dx, dy int) bool {
	return t.mask&dotMask[dy][dx] != 0
}

// Empty reports whether no dots are set.
func (t *Tile) Empty() bool {
	return t.mask == 0
}

// Mask returns the raw 8-dot bitmask.
func (t *Tile) Mask() uint8 {
	return t.mask
}

// Rune returns the braille glyph for the tile's mask, or a plain space
// when the tile is empty. U+2800 (the blank braille pattern) renders
// inconsistently across fonts, hence the space.
func (t *Tile) Rune() rune {
	if t.mask == 0 {
		return ' '
	}
	return rune(brailleBase + int(t.mask))
}
