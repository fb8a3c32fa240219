package raytracer

import (
	"math"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

// Transform is a chainable 4x4 affine matrix builder. Each builder
// call produces a new Transform whose matrix is op·previous — later
// calls apply outermost, matching the usual "read bottom to top"
// convention for composed transforms. The inverse is recomputed
// eagerly on each call and cached, since every hot path (shape
// intersect, normal, pattern lookup) needs it far more often than the
// transform is rebuilt.
type Transform struct {
	matrix  prim.Matrix
	inverse prim.Matrix
}

// Identity returns the identity transform.
func Identity() Transform {
	return newTransform(prim.Identity4())
}

func newTransform(m prim.Matrix) Transform {
	inv, err := m.Inverse()
	if err != nil {
		// A singular affine transform is a scene authoring error, not
		// a runtime condition a renderer can recover from: every hot
		// path assumes inverse() succeeded once the scene is built.
		panic(err)
	}
	return Transform{matrix: m, inverse: inv}
}

func (t Transform) Matrix() prim.Matrix        { return t.matrix }
func (t Transform) InverseMatrix() prim.Matrix { return t.inverse }

// FromMatrix wraps an arbitrary 4x4 matrix as a Transform, computing
// and caching its inverse. Used by the scene loader to splice a named
// transform's already-composed matrix into another transform chain.
func FromMatrix(m prim.Matrix) Transform {
	return newTransform(m)
}

// Inverse returns a Transform wrapping the inverse of t's matrix.
func (t Transform) Inverse() Transform {
	return Transform{matrix: t.inverse, inverse: t.matrix}
}

func (t Transform) compose(op prim.Matrix) Transform {
	return newTransform(op.Multiply(t.matrix))
}

func (t Transform) Translate(x, y, z float64) Transform {
	m := prim.Identity4()
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)
	return t.compose(m)
}

func (t Transform) Scale(x, y, z float64) Transform {
	m := prim.Identity4()
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)
	return t.compose(m)
}

func (t Transform) RotateX(r float64) Transform {
	m := prim.Identity4()
	m.Set(1, 1, math.Cos(r))
	m.Set(1, 2, -math.Sin(r))
	m.Set(2, 1, math.Sin(r))
	m.Set(2, 2, math.Cos(r))
	return t.compose(m)
}

func (t Transform) RotateY(r float64) Transform {
	m := prim.Identity4()
	m.Set(0, 0, math.Cos(r))
	m.Set(0, 2, math.Sin(r))
	m.Set(2, 0, -math.Sin(r))
	m.Set(2, 2, math.Cos(r))
	return t.compose(m)
}

func (t Transform) RotateZ(r float64) Transform {
	m := prim.Identity4()
	m.Set(0, 0, math.Cos(r))
	m.Set(0, 1, -math.Sin(r))
	m.Set(1, 0, math.Sin(r))
	m.Set(1, 1, math.Cos(r))
	return t.compose(m)
}

func (t Transform) Shear(xy, xz, yx, yz, zx, zy float64) Transform {
	m := prim.Identity4()
	m.Set(0, 1, xy)
	m.Set(0, 2, xz)
	m.Set(1, 0, yx)
	m.Set(1, 2, yz)
	m.Set(2, 0, zx)
	m.Set(2, 1, zy)
	return t.compose(m)
}

// ViewTransform builds the orientation+translation matrix that places
// the camera at from, looking toward to, with up as the world's
// up-ish reference vector.
func ViewTransform(from, to, up prim.Tuple) Transform {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := prim.MatrixFromRows([][]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	translation := prim.Identity4()
	translation.Set(0, 3, -from.X)
	translation.Set(1, 3, -from.Y)
	translation.Set(2, 3, -from.Z)
	return newTransform(orientation.Multiply(translation))
}

func (t Transform) TransformPoint(p prim.Tuple) prim.Tuple {
	return t.matrix.MultiplyTuple(p)
}

func (t Transform) TransformVector(v prim.Tuple) prim.Tuple {
	return t.matrix.MultiplyTuple(v)
}
