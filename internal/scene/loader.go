package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	raytracer "github.com/kestrel-labs/raytrace"
	"github.com/kestrel-labs/raytrace/internal/prim"
)

// Load parses a scene YAML document and materializes it into a
// World + Camera pair. The loader resolves material `extends` chains
// and transform name references (both with cycle detection) before
// any shape is built, per the ordering the format requires: nothing
// is materialized from a partially-resolved definition.
func Load(data []byte) (*raytracer.World, *raytracer.Camera, error) {
	var doc Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	materials, err := resolveMaterials(doc.Materials)
	if err != nil {
		return nil, nil, err
	}
	transforms, err := resolveTransforms(doc.Transforms)
	if err != nil {
		return nil, nil, err
	}
	objects, err := buildObjects(doc.Objects, materials, transforms)
	if err != nil {
		return nil, nil, err
	}

	light := raytracer.NewPointLight(
		prim.NewPoint(doc.Light.At[0], doc.Light.At[1], doc.Light.At[2]),
		raytracer.NewColor(doc.Light.Color[0], doc.Light.Color[1], doc.Light.Color[2]),
	)
	world := &raytracer.World{
		Light:   &light,
		Objects: objects,
	}

	camera := raytracer.NewCamera(doc.Camera.Width, doc.Camera.Height, doc.Camera.FieldOfView)
	camera.SetTransform(raytracer.ViewTransform(
		prim.NewPoint(doc.Camera.From[0], doc.Camera.From[1], doc.Camera.From[2]),
		prim.NewPoint(doc.Camera.To[0], doc.Camera.To[1], doc.Camera.To[2]),
		prim.NewVector(doc.Camera.Up[0], doc.Camera.Up[1], doc.Camera.Up[2]),
	))

	return world, camera, nil
}
