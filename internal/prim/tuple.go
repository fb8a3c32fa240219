package prim

import "math"

// Epsilon is the tolerance used for float comparisons throughout the
// tracer: tuple/vector/matrix equality, the sphere and plane
// intersection tests, and the over_point/under_point ray offsets.
// Matrix inversion does not use it: a matrix is singular only when its
// determinant is exactly zero.
const Epsilon = 1e-5

// Tuple is a homogeneous 3D coordinate: w=1 for a point, w=0 for a
// vector. Carrying w through arithmetic keeps point/vector algebra
// consistent without a separate type per kind (point - point = vector
// falls out of w going to zero; point + vector = point falls out of w
// staying at one).
type Tuple struct {
	X, Y, Z, W float64
}

func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

func (t Tuple) IsPoint() bool {
	return t.W == 1
}

func (t Tuple) IsVector() bool {
	return t.W == 0
}

func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross treats both tuples as vectors (w is ignored).
func (t Tuple) Cross(o Tuple) Tuple {
	return NewVector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	return Tuple{t.X / m, t.Y / m, t.Z / m, t.W / m}
}

// Reflect reflects this tuple (the incoming direction) about normal:
// incoming - normal*2*dot(incoming, normal).
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Sub(normal.Scale(2 * t.Dot(normal)))
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func (t Tuple) Equal(o Tuple) bool {
	return floatEqual(t.X, o.X) && floatEqual(t.Y, o.Y) && floatEqual(t.Z, o.Z) && floatEqual(t.W, o.W)
}
