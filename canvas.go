package dotille

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Canvas is a sparse braille framebuffer: a mapping from cell address to
// Tile plus the bound enclosing everything drawn so far. Cells are
// created lazily on first dot-set, so untouched regions cost nothing
// regardless of coordinate range.
//
// A Canvas is a self-contained value with no internal locking; see the
// package documentation for the concurrency contract.
type Canvas struct {
	tiles map[[2]int]*Tile
	bound bound
}

// New makes a new empty canvas. By default the visible rectangle grows
// automatically to enclose whatever is drawn.
func New(opts ...Option) *Canvas {
	var o canvasOptions
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{tiles: make(map[[2]int]*Tile, o.capacity)}
	if o.bounded {
		c.SetBound(o.minCol, o.maxCol, o.minRow, o.maxRow)
	}
	return c
}

// tile returns the tile at (col, row), creating it if absent.
func (c *Canvas) tile(col, row int) *Tile {
	key := [2]int{col, row}
	t, ok := c.tiles[key]
	if !ok {
		t = &Tile{Col: col, Row: row}
		c.tiles[key] = t
	}
	return t
}

// setDot sets one dot, addressed in integer dot units.
func (c *Canvas) setDot(xd, yd int) {
	col, row := dotCol(xd), dotRow(yd)
	dx, dy := dotOffset(xd, yd)
	c.tile(col, row).Set(dx, dy)
	c.bound.update(col, row)
}

// Set draws the dot nearest to the continuous coordinate (x, y), growing
// the visible bound to include its cell.
func (c *Canvas) Set(x, y float64) {
	c.setDot(round(x), round(y))
}

// Unset clears the dot nearest to (x, y). A tile whose last dot is
// cleared is pruned from storage. The bound never shrinks: removing
// content leaves the viewport where it was.
func (c *Canvas) Unset(x, y float64) {
	xd, yd := round(x), round(y)
	col, row := dotCol(xd), dotRow(yd)
	key := [2]int{col, row}
	t, ok := c.tiles[key]
	if !ok {
		return
	}
	dx, dy := dotOffset(xd, yd)
	t.Unset(dx, dy)
	if t.Empty() {
		delete(c.tiles, key)
	}
}

// Toggle flips the dot nearest to (x, y): equivalent to Unset if the dot
// is currently set, otherwise to Set. Only the set path grows the bound.
func (c *Canvas) Toggle(x, y float64) {
	xd, yd := round(x), round(y)
	col, row := dotCol(xd), dotRow(yd)
	dx, dy := dotOffset(xd, yd)
	key := [2]int{col, row}
	if t, ok := c.tiles[key]; ok && t.Dot(dx, dy) {
		t.Unset(dx, dy)
		if t.Empty() {
			delete(c.tiles, key)
		}
		return
	}
	c.tile(col, row).Set(dx, dy)
	c.bound.update(col, row)
}

// Dot reports whether the dot nearest to (x, y) is set.
func (c *Canvas) Dot(x, y float64) bool {
	xd, yd := round(x), round(y)
	t, ok := c.tiles[[2]int{dotCol(xd), dotRow(yd)}]
	if !ok {
		return false
	}
	dx, dy := dotOffset(xd, yd)
	return t.Dot(dx, dy)
}

// Line rasterizes a straight segment between two continuous points. The
// interpolation runs at dot resolution, not cell resolution, so
// intermediate points land on individual sub-cell dots. Coincident
// endpoints set exactly one dot.
func (c *Canvas) Line(p1, p2 Point) {
	x1, y1 := round(p1.X), round(p1.Y)
	x2, y2 := round(p2.X), round(p2.Y)

	delta := func(v1, v2 int) (int, float64) {
		if v1 <= v2 {
			return v2 - v1, 1
		}
		return v1 - v2, -1
	}
	xdiff, xdir := delta(x1, x2)
	ydiff, ydir := delta(y1, y2)

	r := max(xdiff, ydiff)
	if r == 0 {
		c.setDot(x1, y1)
		return
	}
	for i := 0; i <= r; i++ {
		x := float64(x1) + float64(i)*float64(xdiff)/float64(r)*xdir
		y := float64(y1) + float64(i)*float64(ydiff)/float64(r)*ydir
		c.Set(x, y)
	}
}

// Paint renders a drawable onto the canvas translated by (x, y). The
// drawable's error, if any, is returned unchanged; dots it drew before
// failing remain on the canvas.
func (c *Canvas) Paint(p Painter, x, y float64) error {
	return p.Paint(c, x, y)
}

// Draw is an alias for Paint.
func (c *Canvas) Draw(p Painter, x, y float64) error {
	return c.Paint(p, x, y)
}

// Clear removes all tile content. The bound's extents and lock state are
// left untouched, so a subsequent Frame keeps its size; use Reset to also
// discard the bound.
func (c *Canvas) Clear() {
	clear(c.tiles)
}

// Reset removes all content and returns the bound to its initial unfixed,
// zero-sized state.
func (c *Canvas) Reset() {
	clear(c.tiles)
	c.bound = bound{}
}

// SetBound pins the rendered viewport to the cell columns [minCol,
// maxCol] and rows [minRow, maxRow], regardless of content. Use it when a
// deterministic, content-independent frame size is needed (a fixed
// animation viewport, exporting at a known resolution). Reversed limits
// are swapped.
func (c *Canvas) SetBound(minCol, maxCol, minRow, maxRow int) {
	c.bound.setRect(minCol, maxCol, minRow, maxRow)
	c.bound.lock(true)
}

// LockBound toggles whether the bound ignores growth, without altering
// its current extents. LockBound(false) resumes automatic growth from
// the rectangle as it stands.
func (c *Canvas) LockBound(fixed bool) {
	c.bound.lock(fixed)
}

// Bound returns the current extents as ((minCol, maxCol), (minRow,
// maxRow)). Meaningful only when Size returns nonzero dimensions.
func (c *Canvas) Bound() (cols, rows [2]int) {
	return c.bound.rect()
}

// Fixed reports whether the bound is currently pinned.
func (c *Canvas) Fixed() bool {
	return c.bound.fixed
}

// Size returns the frame dimensions in cells: the bound's width and
// height, both zero for a canvas with no content and an unfixed bound.
func (c *Canvas) Size() (width, height int) {
	return c.bound.width(), c.bound.height()
}

// Lines returns the rendered frame as one string per cell-row, topmost
// row (largest row index) first. Absent cells render as spaces so columns
// stay aligned.
func (c *Canvas) Lines() []string {
	if c.bound.empty() {
		return nil
	}
	cols, rows := c.bound.rect()
	out := make([]string, 0, rows[1]-rows[0]+1)
	var sb strings.Builder
	for row := rows[1]; row >= rows[0]; row-- {
		sb.Reset()
		for col := cols[0]; col <= cols[1]; col++ {
			if t, ok := c.tiles[[2]int{col, row}]; ok {
				sb.WriteRune(t.Rune())
			} else {
				sb.WriteByte(' ')
			}
		}
		out = append(out, sb.String())
	}
	return out
}

// Frame returns the rendered frame as a single string: the lines of the
// bound's rectangle joined by newlines, with no trailing newline after
// the last row. An empty canvas yields an empty string.
func (c *Canvas) Frame() string {
	return strings.Join(c.Lines(), "\n")
}

// Fprint writes the frame to w, followed by a final newline.
func (c *Canvas) Fprint(w io.Writer) error {
	if _, err := io.WriteString(w, c.Frame()); err != nil {
		return fmt.Errorf("dotille: print: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("dotille: print: %w", err)
	}
	return nil
}

// Print writes the frame to standard output. It is the only canvas
// operation that can fail, and only due to I/O.
func (c *Canvas) Print() error {
	return c.Fprint(os.Stdout)
}
