package raytracer

import (
	"math"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

// PointLight is a single point light source: position and intensity,
// no falloff or area extent.
type PointLight struct {
	Position  prim.Tuple
	Intensity Color
}

func NewPointLight(position prim.Tuple, intensity Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting evaluates the Phong model at a single surface point. When
// inShadow is true, only the ambient term contributes.
func Lighting(m Material, object Shape, light PointLight, point, eyev, normalv prim.Tuple, inShadow bool) Color {
	var surfaceColor Color
	if m.Pattern != nil {
		surfaceColor = ColorOnObject(object, m.Pattern, point)
	} else {
		surfaceColor = m.Color
	}
	effective := *surfaceColor.Mul(&light.Intensity)

	ambient := *effective.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	black := Black()
	diffuse, specular := black, black

	lightv := light.Position.Sub(point).Normalize()
	ldn := lightv.Dot(normalv)
	if ldn >= 0 {
		diffuse = *effective.Scale(m.Diffuse * ldn)

		reflectv := lightv.Neg().Reflect(normalv)
		rde := reflectv.Dot(eyev)
		if rde > 0 {
			factor := math.Pow(rde, m.Shininess)
			specular = *light.Intensity.Scale(m.Specular * factor)
		}
	}

	return *ambient.Add(&diffuse).Add(&specular)
}
