package raytracer

// Material describes how a shape's surface responds to light. It is
// a value type: materials are copied into shapes, never shared by
// reference, so mutating one shape's material can never bleed into
// another's.
type Material struct {
	Color           Color
	Pattern         Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// DefaultMaterial matches the Phong defaults used throughout the
// golden scenarios: white, no pattern, moderate ambient/diffuse,
// middling specular, opaque and non-reflective.
func DefaultMaterial() Material {
	return Material{
		Color:           White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

func Glass() Material {
	m := DefaultMaterial()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	return m
}
