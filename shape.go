package raytracer

import "github.com/kestrel-labs/raytrace/internal/prim"

// Shape is the polymorphic contract shared by every concrete shape
// variant (sphere, plane). WorldIntersect and NormalAt are fixed:
// they transform into object space, delegate to the variant-specific
// local algebra, and transform the result back. A shape MUST NOT
// reimplement the world-space half of either.
type Shape interface {
	ID() uint64
	Transform() Transform
	InverseTransform() Transform
	Material() Material

	// WorldIntersect transforms ray into object space and delegates to
	// the shape's local intersection test, tagging each hit with this
	// shape's identity.
	WorldIntersect(ray Ray) []Intersection

	// NormalAt lifts the world point into object space, computes the
	// local normal, then maps it back to world space through the
	// inverse-transpose of the transform's upper-left 3x3 and
	// normalizes.
	NormalAt(worldPoint prim.Tuple) prim.Tuple

	localIntersect(ray Ray) []Intersection
	localNormalAt(objectPoint prim.Tuple) prim.Tuple
}

// shapeBase factors the fixed transform-then-dispatch contract so
// sphere and plane only need to supply localIntersect/localNormalAt.
type shapeBase struct {
	id        uint64
	transform Transform
	material  Material
}

func newShapeBase() shapeBase {
	return shapeBase{id: nextIdentity(), transform: Identity(), material: DefaultMaterial()}
}

func (s *shapeBase) ID() uint64                 { return s.id }
func (s *shapeBase) Transform() Transform        { return s.transform }
func (s *shapeBase) InverseTransform() Transform { return s.transform.Inverse() }
func (s *shapeBase) Material() Material          { return s.material }
func (s *shapeBase) SetTransform(t Transform)    { s.transform = t }
func (s *shapeBase) SetMaterial(m Material)      { s.material = m }

func worldIntersect(s Shape, ray Ray) []Intersection {
	localRay := ray.Transform(s.InverseTransform())
	return s.localIntersect(localRay)
}

func normalAt(s Shape, worldPoint prim.Tuple) prim.Tuple {
	objectPoint := s.InverseTransform().TransformPoint(worldPoint)
	objectNormal := s.localNormalAt(objectPoint)

	// Upper-left 3x3 of inverse-transpose, applied as a vector (w
	// forced back to 0 so a non-uniform scale doesn't leak affine
	// translation into the normal).
	m := s.InverseTransform().Matrix().Transpose()
	worldNormal := m.MultiplyTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
