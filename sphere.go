package raytracer

import (
	"math"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

// Sphere is the canonical unit sphere centered at the origin; its
// world placement comes entirely from shapeBase.transform.
type Sphere struct {
	shapeBase
}

func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

func (s *Sphere) WorldIntersect(ray Ray) []Intersection {
	return worldIntersect(s, ray)
}

func (s *Sphere) NormalAt(worldPoint prim.Tuple) prim.Tuple {
	return normalAt(s, worldPoint)
}

func (s *Sphere) localIntersect(ray Ray) []Intersection {
	sphereToRay := ray.Origin.Sub(prim.NewPoint(0, 0, 0))
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < -prim.Epsilon {
		return nil
	}
	d := math.Max(discriminant, 0)
	sqrtD := math.Sqrt(d)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []Intersection{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}
}

func (s *Sphere) localNormalAt(objectPoint prim.Tuple) prim.Tuple {
	return objectPoint.Sub(prim.NewPoint(0, 0, 0))
}
