package raytracer

import "github.com/kestrel-labs/raytrace/internal/prim"

// Color is a Vec3 in RGB space: an alias, not a distinct type, so the
// full arithmetic prim.Vec3 already carries (Add, Sub, Scale, and the
// Hadamard Mul used for color*color) comes along for free.
type Color = prim.Vec3

// NewColor constructs a color from normalized [0,1] components. It is
// not clamped; serialization clamps each component itself
// (prim.ByteComponent for PPM, Vec3.RGBA for image.Image).
func NewColor(r, g, b float64) Color {
	return prim.RGB(r, g, b)
}

func Black() Color {
	return NewColor(0, 0, 0)
}

func White() Color {
	return NewColor(1, 1, 1)
}
