package scene

import (
	"fmt"

	raytracer "github.com/kestrel-labs/raytrace"
)

// resolveObjectMaterial returns the concrete material for an object's
// `material` field: a lookup by name, or the default material with
// the inline overrides layered on.
func resolveObjectMaterial(om ObjectMaterial, materials map[string]raytracer.Material) (raytracer.Material, error) {
	if om.Inline != nil {
		return materialize(*om.Inline), nil
	}
	mat, ok := materials[om.Ref]
	if !ok {
		return raytracer.Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, om.Ref)
	}
	return mat, nil
}

func buildObjects(reprs []ObjectRepr, materials map[string]raytracer.Material, transforms map[string]raytracer.Transform) ([]raytracer.Shape, error) {
	var shapes []raytracer.Shape
	for _, r := range reprs {
		mat, err := resolveObjectMaterial(r.Material, materials)
		if err != nil {
			return nil, err
		}
		t, err := foldSteps(raytracer.Identity(), r.Transform, transforms)
		if err != nil {
			return nil, err
		}

		var shape raytracer.Shape
		switch r.Type {
		case "sphere":
			s := raytracer.NewSphere()
			s.SetMaterial(mat)
			s.SetTransform(t)
			shape = s
		case "plane":
			p := raytracer.NewPlane()
			p.SetMaterial(mat)
			p.SetTransform(t)
			shape = p
		default:
			return nil, fmt.Errorf("%w: object type %q", ErrUnsupportedOperation, r.Type)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}
