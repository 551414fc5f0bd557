package dotille

// Painter is the contract between the canvas and external drawables.
//
// Paint receives mutable access to the canvas and a translation offset;
// the drawable computes its own geometry and issues Set/Line calls
// translated by (x, y). The canvas holds no domain knowledge: it is a
// rasterization sink, and a failing drawable's error is surfaced to the
// caller unchanged. Dots drawn before the failure stay on the canvas --
// there is no rollback.
type Painter interface {
	Paint(c *Canvas, x, y float64) error
}

// PainterFunc adapts a plain function to the Painter interface.
type PainterFunc func(c *Canvas, x, y float64) error

// Paint calls f(c, x, y).
func (f PainterFunc) Paint(c *Canvas, x, y float64) error {
	return f(c, x, y)
}
