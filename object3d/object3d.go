// Package object3d provides wireframe 3D objects as dotille drawables.
//
// An Object is a vertex list plus a set of sides (vertex-index pairs).
// It can be rotated about the three axes and zoomed about its centroid;
// painting projects the vertices orthographically onto the canvas plane
// and draws each side as a line.
package object3d

import (
	"errors"
	"fmt"

	"github.com/dotille/dotille"
)

// minZoom is the smallest accepted zoom factor; anything at or below it
// would collapse the object.
const minZoom = 0.001

// minDifference below which a recomputed centroid keeps its old value, so
// float error does not creep in as vertices are added.
const minDifference = 1e-10

// ErrSideRange reports a side referring to a vertex index that does not
// exist. It is the canonical drawable domain error: the canvas surfaces
// it unchanged.
var ErrSideRange = errors.New("object3d: side references vertex out of range")

// side is an unordered pair of vertex indices.
type side [2]int

// Object is a wireframe: vertices and the sides connecting them.
type Object struct {
	vertices []dotille.Vec3
	zoomed   []dotille.Vec3
	center   dotille.Vec3
	sides    map[side]struct{}
}

// New returns an object with no vertices and no sides.
func New() *Object {
	return &Object{sides: make(map[side]struct{})}
}

// AddVertices appends vertices and recomputes the centroid.
func (o *Object) AddVertices(vs ...dotille.Vec3) {
	o.vertices = append(o.vertices, vs...)
	o.calcCenter()
}

// Vertices returns a copy of the (unzoomed) vertex list.
func (o *Object) Vertices() []dotille.Vec3 {
	out := make([]dotille.Vec3, len(o.vertices))
	copy(out, o.vertices)
	return out
}

// AddSides connects vertex pairs. It returns ErrSideRange if any index is
// out of range; sides added before the bad one are kept.
func (o *Object) AddSides(sides ...[2]int) error {
	n := len(o.vertices)
	for _, s := range sides {
		if s[0] >= n || s[1] >= n || s[0] < 0 || s[1] < 0 {
			return fmt.Errorf("%w: side %v with %d vertices", ErrSideRange, s, n)
		}
		o.sides[side(s)] = struct{}{}
	}
	return nil
}

// Sides returns the side list in unspecified order.
func (o *Object) Sides() [][2]int {
	out := make([][2]int, 0, len(o.sides))
	for s := range o.sides {
		out = append(out, s)
	}
	return out
}

// Rotate rotates every vertex about the x, y and z axes, in that order,
// each angle in degrees. The rotation is applied in place and composes
// across calls.
func (o *Object) Rotate(ax, ay, az float64) {
	for i, v := range o.vertices {
		o.vertices[i] = v.Rotate(ax, ay, az)
	}
	for i, v := range o.zoomed {
		o.zoomed[i] = v.Rotate(ax, ay, az)
	}
	o.center = o.center.Rotate(ax, ay, az)
}

// Zoom scales the object by factor about its centroid. The factor must
// exceed 0.001. The scaled copy is kept beside the original vertices, so
// calling Zoom repeatedly does not accumulate float error.
func (o *Object) Zoom(factor float64) error {
	if factor <= minZoom {
		return fmt.Errorf("object3d: zoom factor %v too small", factor)
	}
	if o.zoomed == nil {
		o.zoomed = make([]dotille.Vec3, len(o.vertices))
	}
	for i, v := range o.vertices {
		o.zoomed[i] = v.Sub(o.center).Mul(factor).Add(o.center)
	}
	return nil
}

// Map applies f to every vertex. Any zoom is recomputed from scratch on
// the next Zoom call.
func (o *Object) Map(f func(dotille.Vec3) dotille.Vec3) {
	for i, v := range o.vertices {
		o.vertices[i] = f(v)
	}
	o.zoomed = nil
	o.calcCenter()
}

// Paint projects the object orthographically -- canvas x is vertex X,
// canvas y is vertex Z -- and draws every side, translated by (x, y).
// It returns ErrSideRange if a side no longer matches the vertex list.
func (o *Object) Paint(c *dotille.Canvas, x, y float64) error {
	vs := o.vertices
	if o.zoomed != nil {
		vs = o.zoomed
	}
	for s := range o.sides {
		if s[0] >= len(vs) || s[1] >= len(vs) {
			return fmt.Errorf("%w: side %v with %d vertices", ErrSideRange, s, len(vs))
		}
		v1, v2 := vs[s[0]], vs[s[1]]
		c.Line(dotille.Pt(x+v1.X, y+v1.Z), dotille.Pt(x+v2.X, y+v2.Z))
	}
	return nil
}

func (o *Object) calcCenter() {
	if len(o.vertices) == 0 {
		o.center = dotille.Vec3{}
		return
	}
	var sum dotille.Vec3
	for _, v := range o.vertices {
		sum = sum.Add(v)
	}
	mean := sum.Mul(1 / float64(len(o.vertices)))
	if keepClose(mean.X, o.center.X) {
		mean.X = o.center.X
	}
	if keepClose(mean.Y, o.center.Y) {
		mean.Y = o.center.Y
	}
	if keepClose(mean.Z, o.center.Z) {
		mean.Z = o.center.Z
	}
	o.center = mean
}

func keepClose(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < minDifference
}

// Cube returns a wireframe cube with the given side length, centered on
// the origin.
func Cube(sideLen float64) *Object {
	h := sideLen / 2
	o := New()
	o.AddVertices(
		dotille.V3(-h, -h, -h),
		dotille.V3(-h, -h, h),
		dotille.V3(-h, h, -h),
		dotille.V3(h, -h, -h),
		dotille.V3(-h, h, h),
		dotille.V3(h, -h, h),
		dotille.V3(h, h, -h),
		dotille.V3(h, h, h),
	)
	// Vertex count is fixed above, so the error is impossible.
	_ = o.AddSides(
		[2]int{0, 1}, [2]int{1, 4}, [2]int{4, 2}, [2]int{2, 0},
		[2]int{3, 5}, [2]int{5, 7}, [2]int{7, 6}, [2]int{6, 3},
		[2]int{1, 5}, [2]int{4, 7}, [2]int{2, 6}, [2]int{0, 3},
	)
	return o
}
