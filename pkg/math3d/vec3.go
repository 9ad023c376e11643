// Package math3d provides the vector and matrix primitives used by flatshade.
package math3d

import "math"

// Vec3 represents a 3D vector. Values are passed and returned by copy;
// NormalizeInPlace is the only operation that mutates its receiver.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
// Order matters: a.Cross(b) == b.Cross(a).Scale(-1).
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Magnitude returns the length of the vector.
func (a Vec3) Magnitude() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns the vector scaled by 1/Magnitude.
// A zero vector yields non-finite components; check Magnitude first.
func (a Vec3) Normalize() Vec3 {
	inv := 1 / a.Magnitude()
	return Vec3{a.X * inv, a.Y * inv, a.Z * inv}
}

// NormalizeInPlace scales v to unit length.
func (v *Vec3) NormalizeInPlace() {
	*v = v.Normalize()
}

// ToScreen maps x and y from [-1, 1] into [0, scale], rounded to whole
// pixels so edges shared by neighbouring triangles land on the same pixel.
// Z passes through unscaled and is only used for relative depth.
func (a Vec3) ToScreen(scale float64) Vec3 {
	return Vec3{
		math.Round((a.X + 1) * scale / 2),
		math.Round((a.Y + 1) * scale / 2),
		a.Z,
	}
}

// IsFinite reports whether no component is NaN or infinite.
func (a Vec3) IsFinite() bool {
	return finite(a.X) && finite(a.Y) && finite(a.Z)
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
