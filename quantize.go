package dotille

import (
	"fmt"
	"math"
)

// The quantizer maps continuous canvas coordinates onto the dot grid.
// A continuous coordinate first rounds to an integer dot unit; the dot's
// cell address is a floor division of the dot coordinate (2 dots per cell
// column, 4 per cell row) and its sub-cell offset is the remainder.
// Truncating division is wrong for negative dots, so the floor is spelled
// out.

// round converts a continuous coordinate to a dot-unit integer, rounding
// half away from zero.
//
// Non-finite input is a precondition violation: a NaN or infinity reaching
// the bound tracker would corrupt it for the rest of the canvas lifetime,
// so round panics instead of guessing.
func round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("dotille: non-finite coordinate %v", v))
	}
	return int(math.Round(v))
}

// dotCol returns the cell column containing dot column x: floor(x/2).
func dotCol(x int) int {
	if x < 0 {
		return (x - 1) / 2
	}
	return x / 2
}

// dotRow returns the cell row containing dot row y: floor(y/4).
func dotRow(y int) int {
	if y < 0 {
		return (y+1)/4 - 1
	}
	return y / 4
}

// cellPos quantizes a continuous coordinate to its cell address.
func cellPos(x, y float64) (col, row int) {
	return dotCol(round(x)), dotRow(round(y))
}

// dotOffset returns the sub-cell position of a dot coordinate:
// dx in {0,1}, dy in {0,1,2,3}, both counted from the cell's minimum
// corner regardless of sign.
func dotOffset(x, y int) (dx, dy int) {
	dx = x % 2
	if dx < 0 {
		dx += 2
	}
	dy = y % 4
	if dy < 0 {
		dy += 4
	}
	return dx, dy
}
