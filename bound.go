package dotille

// bound tracks the minimal enclosing rectangle, in cell coordinates, of
// every dot set so far. It only ever grows: removing content never
// contracts the viewport. A fixed bound is caller-authoritative and
// ignores updates entirely.
type bound struct {
	minX, minY int
	maxX, maxY int
	fixed      bool
	used       bool
}

// update grows the rectangle to include (col, row). The first update
// seeds the rectangle at exactly that cell. No-op while fixed.
func (b *bound) update(col, row int) {
	if b.fixed {
		return
	}
	if !b.used {
		b.minX, b.maxX = col, col
		b.minY, b.maxY = row, row
		b.used = true
		return
	}
	if col < b.minX {
		b.minX = col
	}
	if col > b.maxX {
		b.maxX = col
	}
	if row < b.minY {
		b.minY = row
	}
	if row > b.maxY {
		b.maxY = row
	}
}

// setRect sets the rectangle explicitly and marks it in use.
func (b *bound) setRect(minX, maxX, minY, maxY int) {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	b.minX, b.maxX = minX, maxX
	b.minY, b.maxY = minY, maxY
	b.used = true
}

// lock toggles the fixed state without altering the stored extents.
func (b *bound) lock(fixed bool) {
	b.fixed = fixed
}

// rect returns the current extents as ((minX, maxX), (minY, maxY)).
func (b *bound) rect() (xr, yr [2]int) {
	return [2]int{b.minX, b.maxX}, [2]int{b.minY, b.maxY}
}

// empty reports whether the rectangle holds no cells: nothing was ever
// drawn and no caller pinned the extents.
func (b *bound) empty() bool {
	return !b.used && !b.fixed
}

// width returns the spanned cell-column count, 0 for an empty bound.
func (b *bound) width() int {
	if b.empty() {
		return 0
	}
	return b.maxX - b.minX + 1
}

// height returns the spanned cell-row count, 0 for an empty bound.
func (b *bound) height() int {
	if b.empty() {
		return 0
	}
	return b.maxY - b.minY + 1
}
