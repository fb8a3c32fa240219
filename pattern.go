package raytracer

import (
	"math"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

// Pattern is the polymorphic contract shared by every concrete
// pattern variant. ColorAt operates in the pattern's own space; the
// caller (ColorOnObject) is responsible for the world -> object ->
// pattern space chain.
type Pattern interface {
	ColorAt(p prim.Tuple) Color
	PatternTransform() Transform
}

// ColorOnObject is fixed for every shape/pattern pair: map the world
// point into the shape's object space, then into the pattern's own
// space, then evaluate. Neither shapes nor patterns may shortcut this
// chain with their own world-space logic.
func ColorOnObject(s Shape, p Pattern, worldPoint prim.Tuple) Color {
	objectPoint := s.InverseTransform().TransformPoint(worldPoint)
	patternPoint := p.PatternTransform().Inverse().TransformPoint(objectPoint)
	return p.ColorAt(patternPoint)
}

func floorMod2(x float64) int {
	m := int(math.Floor(x)) % 2
	if m < 0 {
		m += 2
	}
	return m
}

type StripePattern struct {
	A, B      Color
	Transform Transform
}

func NewStripePattern(a, b Color) *StripePattern {
	return &StripePattern{A: a, B: b, Transform: Identity()}
}

func (p *StripePattern) PatternTransform() Transform { return p.Transform }

func (p *StripePattern) ColorAt(point prim.Tuple) Color {
	if floorMod2(point.X) == 0 {
		return p.A
	}
	return p.B
}

type GradientPattern struct {
	A, B      Color
	Transform Transform
}

func NewGradientPattern(a, b Color) *GradientPattern {
	return &GradientPattern{A: a, B: b, Transform: Identity()}
}

func (p *GradientPattern) PatternTransform() Transform { return p.Transform }

func (p *GradientPattern) ColorAt(point prim.Tuple) Color {
	distance := p.B.Sub(&p.A)
	fraction := point.X - math.Floor(point.X)
	return *p.A.Add(distance.Scale(fraction))
}

type RingPattern struct {
	A, B      Color
	Transform Transform
}

func NewRingPattern(a, b Color) *RingPattern {
	return &RingPattern{A: a, B: b, Transform: Identity()}
}

func (p *RingPattern) PatternTransform() Transform { return p.Transform }

func (p *RingPattern) ColorAt(point prim.Tuple) Color {
	if floorMod2(math.Hypot(point.X, point.Z)) == 0 {
		return p.A
	}
	return p.B
}

type CheckerPattern struct {
	A, B      Color
	Transform Transform
}

func NewCheckerPattern(a, b Color) *CheckerPattern {
	return &CheckerPattern{A: a, B: b, Transform: Identity()}
}

func (p *CheckerPattern) PatternTransform() Transform { return p.Transform }

func (p *CheckerPattern) ColorAt(point prim.Tuple) Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}

// TestPattern returns the point itself as a color; it exists only so
// tests can assert on ColorOnObject's world->object->pattern chain
// without a repeating pattern masking the coordinates.
type TestPattern struct {
	Transform Transform
}

func NewTestPattern() *TestPattern {
	return &TestPattern{Transform: Identity()}
}

func (p *TestPattern) PatternTransform() Transform { return p.Transform }

func (p *TestPattern) ColorAt(point prim.Tuple) Color {
	return NewColor(point.X, point.Y, point.Z)
}
