// Package turtle provides python-style turtle graphics as a dotille
// drawable.
//
// A Turtle records a procedure list instead of drawing eagerly: Forward,
// Right and friends only append steps, and the whole path is replayed
// when the turtle is painted onto a canvas. Position and heading are
// therefore not queryable -- they do not exist until paint time, when the
// paint offset fixes the origin.
package turtle

import (
	"math"

	"github.com/dotille/dotille"
)

// minDifference guards float accumulation when slicing movements into
// animation steps.
const minDifference = 1e-10

// defaultCircleSteps is the chord count used by Circle; the arc is
// approximated by an inscribed regular polygon.
const defaultCircleSteps = 100

type opKind int

const (
	opPenUp opKind = iota
	opPenDown
	opForward  // distance
	opRight    // angle, degrees clockwise
	opGoto     // absolute x, y; draws if the pen is down
	opTeleport // absolute x, y; never draws
	opHome
	opCircle // radius, extent degrees, steps
)

type op struct {
	kind  opKind
	a, b  float64
	steps int
}

// Turtle records a drawing path and replays it onto a Canvas. The zero
// value is usable: pen down, heading east (0 degrees), empty path.
type Turtle struct {
	ops      []op
	animeOps []op
	step     float64
	frame    int
	animated bool
}

// New returns a turtle with an empty path.
func New() *Turtle {
	return &Turtle{step: 10}
}

// PenUp lifts the pen; subsequent movement does not draw.
func (t *Turtle) PenUp() { t.add(op{kind: opPenUp}) }

// PenDown lowers the pen; subsequent movement draws.
func (t *Turtle) PenDown() { t.add(op{kind: opPenDown}) }

// Forward moves the turtle by dist in the direction it is heading.
func (t *Turtle) Forward(dist float64) { t.add(op{kind: opForward, a: dist}) }

// Backward moves the turtle by dist opposite to its heading, without
// changing the heading.
func (t *Turtle) Backward(dist float64) { t.Forward(-dist) }

// Right turns the turtle clockwise by angle degrees.
func (t *Turtle) Right(angle float64) { t.add(op{kind: opRight, a: angle}) }

// Left turns the turtle counterclockwise by angle degrees.
func (t *Turtle) Left(angle float64) { t.Right(-angle) }

// Goto moves the turtle to an absolute position, drawing a line if the
// pen is down. Positions are relative to the paint offset.
func (t *Turtle) Goto(x, y float64) { t.add(op{kind: opGoto, a: x, b: y}) }

// Teleport moves the turtle to an absolute position without drawing.
func (t *Turtle) Teleport(x, y float64) { t.add(op{kind: opTeleport, a: x, b: y}) }

// Home returns the turtle to the paint origin. The heading is unchanged.
func (t *Turtle) Home() { t.add(op{kind: opHome}) }

// Circle draws an arc of the given radius. The center is radius units
// left of the turtle; extent (degrees) selects how much of the circle is
// drawn, starting at the current position. A positive radius curves
// toward the turtle's right; the heading turns with the arc.
func (t *Turtle) Circle(radius, extent float64) {
	t.CircleSteps(radius, extent, defaultCircleSteps)
}

// CircleSteps is Circle with an explicit chord count.
func (t *Turtle) CircleSteps(radius, extent float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	t.add(op{kind: opCircle, a: radius, b: extent, steps: steps})
}

// SetStep sets the movement distance drawn per animation frame.
// The default is 10: Forward(100) animates as ten frames, while a
// Forward(5) between turns stays a single frame because movements are
// split, never merged.
func (t *Turtle) SetStep(step float64) {
	if step > 0 {
		t.step = step
	}
}

// Animate prepares the turtle for frame-by-frame replay: movements are
// sliced into chunks of at most SetStep distance and Paint draws only the
// prefix completed by Step. Skip it to always paint the full path.
func (t *Turtle) Animate() {
	if t.step <= 0 {
		t.step = 10
	}
	t.animeOps = t.animeOps[:0]
	for _, o := range t.ops {
		switch o.kind {
		case opForward:
			dist := o.a
			for dist > t.step {
				t.animeOps = append(t.animeOps, op{kind: opForward, a: t.step})
				dist -= t.step
			}
			t.animeOps = append(t.animeOps, op{kind: opForward, a: dist})
		case opCircle:
			arc := math.Abs(math.Pi * o.a * o.b / 180)
			if arc <= t.step {
				t.animeOps = append(t.animeOps, o)
				break
			}
			// Split the arc so each piece travels about one step.
			e := 180 * t.step / (math.Pi * math.Abs(o.a))
			extent := o.b
			for math.Abs(extent) > e {
				piece := math.Copysign(e, extent)
				t.animeOps = append(t.animeOps, op{kind: opCircle, a: o.a, b: piece, steps: o.steps})
				extent -= piece
			}
			if math.Abs(extent) > minDifference {
				t.animeOps = append(t.animeOps, op{kind: opCircle, a: o.a, b: extent, steps: o.steps})
			}
		default:
			t.animeOps = append(t.animeOps, o)
		}
	}
	t.animated = true
	t.frame = 0
}

// Step advances the animation by one movement and reports whether the
// path is exhausted. Pen and turn ops are free: a frame always ends after
// the next movement so every tick shows visible progress.
func (t *Turtle) Step() bool {
	if !t.animated {
		return true
	}
	for t.frame < len(t.animeOps) {
		kind := t.animeOps[t.frame].kind
		t.frame++
		if kind == opForward || kind == opGoto || kind == opCircle {
			break
		}
	}
	return t.frame >= len(t.animeOps)
}

// Paint replays the recorded path onto the canvas, translating all
// positions by (x, y). It never fails; the error is always nil and
// exists to satisfy dotille.Painter.
func (t *Turtle) Paint(c *dotille.Canvas, x, y float64) error {
	ops := t.ops
	if t.animated {
		ops = t.animeOps[:t.frame]
	}

	home := dotille.Pt(x, y)
	pos := home
	heading := 0.0
	pen := true

	for _, o := range ops {
		switch o.kind {
		case opPenUp:
			pen = false
		case opPenDown:
			pen = true
		case opForward:
			pos = forward(c, pos, heading, o.a, pen)
		case opRight:
			heading -= o.a
		case opGoto:
			next := dotille.Pt(x+o.a, y+o.b)
			if pen {
				c.Line(pos, next)
			}
			pos = next
		case opTeleport:
			pos = dotille.Pt(x+o.a, y+o.b)
		case opHome:
			pos = home
		case opCircle:
			angle := o.b / float64(o.steps)
			chord := 2 * o.a * math.Sin(angle/2*math.Pi/180)
			for i := 0; i < o.steps; i++ {
				pos = forward(c, pos, heading, chord, pen)
				heading -= angle
			}
		}
	}
	return nil
}

// forward advances from pos along heading (degrees, counterclockwise
// from east) by dist, drawing when the pen is down.
func forward(c *dotille.Canvas, pos dotille.Point, heading, dist float64, pen bool) dotille.Point {
	sin, cos := math.Sincos(heading * math.Pi / 180)
	next := pos.Add(dotille.Pt(cos*dist, sin*dist))
	if pen {
		c.Line(pos, next)
	}
	return next
}

func (t *Turtle) add(o op) {
	t.ops = append(t.ops, o)
}
