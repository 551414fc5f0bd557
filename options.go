package dotille

// Option configures a Canvas during creation.
//
// Example:
//
//	// Auto-growing canvas
//	c := dotille.New()
//
//	// Canvas pinned to an 80x24 character viewport
//	c := dotille.New(dotille.WithBound(0, 79, 0, 23))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	capacity       int
	bounded        bool
	minCol, maxCol int
	minRow, maxRow int
}

// WithCapacity pre-sizes the tile storage for roughly n occupied cells.
// Purely an allocation hint; the canvas still grows past it.
func WithCapacity(n int) Option {
	return func(o *canvasOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithBound creates the canvas with a fixed viewport covering the cell
// columns [minCol, maxCol] and cell rows [minRow, maxRow]. Equivalent to
// calling SetBound followed by LockBound(true) on a fresh canvas.
func WithBound(minCol, maxCol, minRow, maxRow int) Option {
	return func(o *canvasOptions) {
		o.bounded = true
		o.minCol, o.maxCol = minCol, maxCol
		o.minRow, o.maxRow = minRow, maxRow
	}
}
