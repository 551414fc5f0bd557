package dotille

import "math"

// Vec3 represents a 3D point or vector. The object3d and particle
// subpackages use it for geometry that is projected onto a Canvas.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length returns the length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return v.Mul(1 / length)
}

// RotateX returns the vector rotated by angle degrees about the x axis.
func (v Vec3) RotateX(angle float64) Vec3 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY returns the vector rotated by angle degrees about the y axis.
func (v Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateZ returns the vector rotated by angle degrees about the z axis.
func (v Vec3) RotateZ(angle float64) Vec3 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Rotate applies the x, y and z axis rotations in that order, each in
// degrees.
func (v Vec3) Rotate(ax, ay, az float64) Vec3 {
	return v.RotateX(ax).RotateY(ay).RotateZ(az)
}
