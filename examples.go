package raytracer

import (
	"math"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

// ExampleScene builds the canned scene that cmd/render draws: a
// checkered floor, three colored
// spheres, and a camera looking down at them from above.
func ExampleScene(hsize, vsize int) (*World, *Camera) {
	floorMaterial := DefaultMaterial()
	floorMaterial.Pattern = NewCheckerPattern(NewColor(0.15, 0.15, 0.15), White())
	floorMaterial.Specular = 0

	floor := NewPlane()
	floor.SetMaterial(floorMaterial)

	middle := NewSphere()
	middle.SetTransform(Identity().Translate(-0.5, 1, 0.5))
	middleMaterial := DefaultMaterial()
	middleMaterial.Color = NewColor(0.1, 1, 0.5)
	middleMaterial.Diffuse = 0.7
	middleMaterial.Specular = 0.3
	middle.SetMaterial(middleMaterial)

	right := NewSphere()
	right.SetTransform(Identity().Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5))
	rightMaterial := DefaultMaterial()
	rightMaterial.Color = NewColor(0.5, 1, 0.1)
	rightMaterial.Diffuse = 0.7
	rightMaterial.Specular = 0.3
	right.SetMaterial(rightMaterial)

	left := NewSphere()
	left.SetTransform(Identity().Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75))
	leftMaterial := DefaultMaterial()
	leftMaterial.Color = NewColor(1, 0.8, 0.1)
	leftMaterial.Diffuse = 0.7
	leftMaterial.Specular = 0.3
	left.SetMaterial(leftMaterial)

	light := NewPointLight(prim.NewPoint(-10, 10, -10), White())

	world := &World{
		Light:   &light,
		Objects: []Shape{floor, middle, right, left},
	}

	camera := NewCamera(hsize, vsize, math.Pi/3)
	camera.SetTransform(ViewTransform(
		prim.NewPoint(0, 1.5, -5),
		prim.NewPoint(0, 1, 0),
		prim.NewVector(0, 1, 0),
	))

	return world, camera
}
