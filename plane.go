package raytracer

import (
	"math"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

// Plane is the xz plane, normal (0,1,0), extended infinitely in x
// and z; its world placement comes entirely from shapeBase.transform.
type Plane struct {
	shapeBase
}

func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

func (p *Plane) WorldIntersect(ray Ray) []Intersection {
	return worldIntersect(p, ray)
}

func (p *Plane) NormalAt(worldPoint prim.Tuple) prim.Tuple {
	return normalAt(p, worldPoint)
}

func (p *Plane) localIntersect(ray Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < prim.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{{T: t, Object: p}}
}

func (p *Plane) localNormalAt(prim.Tuple) prim.Tuple {
	return prim.NewVector(0, 1, 0)
}
