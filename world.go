package raytracer

import (
	"math"

	"github.com/kestrel-labs/raytrace/internal/prim"
)

// DefaultReflectionCeiling is returned by ReflectedColor once recursion
// depth is exhausted and by RefractedColor under total internal
// reflection (RefractedColor returns black when depth is exhausted).
// The reference implementation this
// tracer's shading kernel is modeled on returns white at the ceiling
// for both ordinary reflection and total internal reflection; a World
// can override this via ReflectionCeiling for renderers that prefer a
// black (non-contributing) cap instead.
var DefaultReflectionCeiling = White()

// World holds the single light and the shape list a render is cast
// against. It is built once by scene setup and never mutated again
// during a render.
type World struct {
	Light   *PointLight
	Objects []Shape

	// ReflectionCeiling is the color ReflectedColor returns when
	// recursion depth hits zero and RefractedColor returns under total
	// internal reflection. Defaults to DefaultReflectionCeiling (white) when the
	// zero value is left unset; set explicitly to Black() for a
	// renderer that prefers the reflection ceiling to contribute
	// nothing rather than a conservative bright cap.
	ReflectionCeiling *Color
}

func NewWorld() *World {
	return &World{}
}

func (w *World) ceiling() Color {
	if w.ReflectionCeiling != nil {
		return *w.ReflectionCeiling
	}
	return DefaultReflectionCeiling
}

// DefaultWorld builds the canonical two-sphere scene used throughout
// the golden scenarios: a white light at (-10,10,-10), an outer
// sphere with ambient/diffuse/specular colored material, and an inner
// sphere scaled to half size with default material.
func DefaultWorld() *World {
	light := NewPointLight(prim.NewPoint(-10, 10, -10), White())

	outer := NewSphere()
	m := DefaultMaterial()
	m.Color = NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := NewSphere()
	inner.SetTransform(Identity().Scale(0.5, 0.5, 0.5))

	return &World{
		Light:   &light,
		Objects: []Shape{outer, inner},
	}
}

func (w *World) Intersect(ray Ray) []Intersection {
	return Intersections(ray, w.Objects)
}

// IsShadowed casts a ray from point toward the light and reports
// whether the nearest non-negative hit lies strictly closer than the
// light itself. A world with no light is vacuously shadowed.
func (w *World) IsShadowed(point prim.Tuple) bool {
	if w.Light == nil {
		return true
	}
	pointToLight := w.Light.Position.Sub(point)
	distance := pointToLight.Magnitude()
	direction := pointToLight.Normalize()

	ray := NewRay(point, direction)
	xs := w.Intersect(ray)
	hit, found := Hit(xs)
	return found && hit.T < distance
}

// ShadeHit composes local Phong illumination with reflected and
// refracted contributions, Schlick-blending the two when the surface
// is both reflective and transparent.
func (w *World) ShadeHit(comps Computations, depth int) Color {
	var light PointLight
	if w.Light != nil {
		light = *w.Light
	}
	shadowed := w.IsShadowed(comps.OverPoint)
	surface := Lighting(comps.Object.Material(), comps.Object, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)

	reflected := w.ReflectedColor(comps, depth)
	refracted := w.RefractedColor(comps, depth)

	m := comps.Object.Material()
	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return *surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}
	return *surface.Add(&reflected).Add(&refracted)
}

// ColorOfRay intersects ray against every object, shades the nearest
// hit, and recurses into ShadeHit's reflected/refracted contributions
// up to depth bounces. Every pixel is total: a ray that hits nothing
// returns black, never an error.
func (w *World) ColorOfRay(ray Ray, depth int) Color {
	xs := w.Intersect(ray)
	hit, found := Hit(xs)
	if !found {
		return Black()
	}
	comps := PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, depth)
}

// ReflectedColor recurses through ColorOfRay from the hit point along
// the reflection vector, scaled by the material's reflectivity.
func (w *World) ReflectedColor(comps Computations, depth int) Color {
	if depth <= 0 {
		return w.ceiling()
	}
	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return Black()
	}
	ray := NewRay(comps.OverPoint, comps.ReflectV)
	color := w.ColorOfRay(ray, depth-1)
	return *color.Scale(reflective)
}

// RefractedColor recurses through ColorOfRay along the bent
// transmission ray, or returns the reflection ceiling under total
// internal reflection.
func (w *World) RefractedColor(comps Computations, depth int) Color {
	m := comps.Object.Material()
	if depth <= 0 || m.Transparency == 0 {
		return Black()
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return w.ceiling()
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Scale(nRatio*cosI - cosT).Sub(comps.EyeV.Scale(nRatio))
	ray := NewRay(comps.UnderPoint, direction)
	color := w.ColorOfRay(ray, depth-1)
	return *color.Scale(m.Transparency)
}

// Schlick approximates Fresnel reflectance: the fraction of light
// reflected (vs. refracted) at the given angle of incidence.
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)
	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}
	r0 := math.Pow((comps.N1-comps.N2)/(comps.N1+comps.N2), 2)
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
