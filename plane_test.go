package raytracer

import (
	"testing"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

func TestPlaneNormalIsConstant(t *testing.T) {
	p := NewPlane()
	want := prim.NewVector(0, 1, 0)
	for _, pt := range []prim.Tuple{
		prim.NewPoint(0, 0, 0),
		prim.NewPoint(10, 0, -10),
		prim.NewPoint(-5, 0, 150),
	} {
		if got := p.NormalAt(pt); !got.Equal(want) {
			t.Errorf("NormalAt(%+v) = %+v, want %+v", pt, got, want)
		}
	}
}

func TestPlaneIntersectParallelRayMisses(t *testing.T) {
	p := NewPlane()
	r := NewRay(prim.NewPoint(0, 10, 0), prim.NewVector(0, 0, 1))
	if xs := p.WorldIntersect(r); len(xs) != 0 {
		t.Errorf("xs = %+v, want empty", xs)
	}
}

func TestPlaneIntersectCoplanarRayMisses(t *testing.T) {
	p := NewPlane()
	r := NewRay(prim.NewPoint(0, 0, 0), prim.NewVector(0, 0, 1))
	if xs := p.WorldIntersect(r); len(xs) != 0 {
		t.Errorf("xs = %+v, want empty", xs)
	}
}

func TestPlaneIntersectFromAbove(t *testing.T) {
	p := NewPlane()
	r := NewRay(prim.NewPoint(0, 1, 0), prim.NewVector(0, -1, 0))
	xs := p.WorldIntersect(r)
	if len(xs) != 1 || xs[0].T != 1 {
		t.Errorf("xs = %+v, want single hit at t=1", xs)
	}
}

func TestPlaneIntersectFromBelow(t *testing.T) {
	p := NewPlane()
	r := NewRay(prim.NewPoint(0, -1, 0), prim.NewVector(0, 1, 0))
	xs := p.WorldIntersect(r)
	if len(xs) != 1 || xs[0].T != 1 {
		t.Errorf("xs = %+v, want single hit at t=1", xs)
	}
}
