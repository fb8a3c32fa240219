package raytracer

import (
	"sort"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

type Ray struct {
	Origin    prim.Tuple
	Direction prim.Tuple
}

func NewRay(origin, direction prim.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func (r Ray) PositionAt(t float64) prim.Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform applies t to both origin and direction; direction is
// lifted with w=0 so translation never displaces it.
func (r Ray) Transform(t Transform) Ray {
	return Ray{
		Origin:    t.TransformPoint(r.Origin),
		Direction: t.TransformVector(r.Direction),
	}
}

// Intersection records a single ray/shape hit: the parametric
// distance and the shape that produced it. Intersections only ever
// come from a shape's own intersection test.
type Intersection struct {
	T      float64
	Object Shape
}

// Intersections gathers and t-sorts every intersection of ray against
// every object in objects. Sorting tolerates the list coming from
// multiple shapes in arbitrary order; object order is irrelevant to
// the final image.
func Intersections(ray Ray, objects []Shape) []Intersection {
	var xs []Intersection
	for _, obj := range objects {
		xs = append(xs, obj.WorldIntersect(ray)...)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// Hit returns the intersection with the smallest non-negative t, or
// false if every t is negative (the list need not be sorted).
func Hit(xs []Intersection) (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// Computations is the derived, per-hit state shading needs: the point
// of intersection, the eye and normal vectors, whether the hit is
// "inside" the object (normal flipped to face the eye), the offset
// over/under points used to dodge shadow and refraction acne, the
// reflection vector, and the entering/exiting refractive indices.
type Computations struct {
	T          float64
	Object     Shape
	Point      prim.Tuple
	OverPoint  prim.Tuple
	UnderPoint prim.Tuple
	EyeV       prim.Tuple
	NormalV    prim.Tuple
	ReflectV   prim.Tuple
	Inside     bool
	N1, N2     float64
}

// PrepareComputations derives shading state for hit. When xs is
// provided (the full sorted intersection list for this ray), N1/N2
// are computed by walking it with a container stack of
// currently-traversed objects; with a nil/empty xs, N1=N2=1 (vacuum),
// which is correct whenever the caller doesn't need refraction.
func PrepareComputations(hit Intersection, ray Ray, xs []Intersection) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.PositionAt(hit.T),
		EyeV:   ray.Direction.Neg(),
	}
	comps.NormalV = hit.Object.NormalAt(comps.Point)
	if comps.EyeV.Dot(comps.NormalV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Neg()
	}
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	comps.OverPoint = comps.Point.Add(comps.NormalV.Scale(prim.Epsilon))
	comps.UnderPoint = comps.Point.Sub(comps.NormalV.Scale(prim.Epsilon))

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

func refractiveIndices(hit Intersection, xs []Intersection) (n1, n2 float64) {
	n1, n2 = 1, 1
	var containers []Shape
	top := func() float64 {
		if len(containers) == 0 {
			return 1
		}
		return containers[len(containers)-1].Material().RefractiveIndex
	}
	contains := func(s Shape) int {
		for i, c := range containers {
			if c.ID() == s.ID() {
				return i
			}
		}
		return -1
	}

	isTarget := func(x Intersection) bool {
		return x.T == hit.T && x.Object.ID() == hit.Object.ID()
	}

	for _, i := range xs {
		if isTarget(i) {
			n1 = top()
		}
		if idx := contains(i.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, i.Object)
		}
		if isTarget(i) {
			n2 = top()
			break
		}
	}
	return n1, n2
}
