package scene

import (
	"fmt"

	raytracer "github.com/kestrel-labs/raytrace"
)

// resolveMaterials completes every `extends` chain in place (two-pass:
// walk each key's chain with a per-call seen set so a cycle anywhere
// in the map is caught, then materialize the flattened reprs into
// raytracer.Material values) and returns the concrete material table.
func resolveMaterials(reprs map[string]MaterialRepr) (map[string]raytracer.Material, error) {
	for key := range reprs {
		if err := completeMaterial(key, reprs, map[string]bool{}); err != nil {
			return nil, err
		}
	}
	result := make(map[string]raytracer.Material, len(reprs))
	for name, r := range reprs {
		if r.Extends != nil {
			return nil, fmt.Errorf("%w: material %q did not resolve to a complete definition", ErrUnsupportedOperation, name)
		}
		result[name] = materialize(r)
	}
	return result, nil
}

func completeMaterial(key string, reprs map[string]MaterialRepr, seen map[string]bool) error {
	if seen[key] {
		return fmt.Errorf("%w: material %q", ErrRecursiveDefinition, key)
	}
	seen[key] = true

	r, ok := reprs[key]
	if !ok {
		return fmt.Errorf("%w: material %q", ErrUnknownMaterial, key)
	}
	if r.Extends == nil {
		return nil
	}

	base := *r.Extends
	if _, ok := reprs[base]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotExists, base)
	}
	if err := completeMaterial(base, reprs, seen); err != nil {
		return err
	}
	baseRepr := reprs[base]

	merged := baseRepr
	merged.Extends = nil
	if r.Color != nil {
		merged.Color = r.Color
	}
	if r.Ambient != nil {
		merged.Ambient = r.Ambient
	}
	if r.Diffuse != nil {
		merged.Diffuse = r.Diffuse
	}
	if r.Specular != nil {
		merged.Specular = r.Specular
	}
	if r.Shininess != nil {
		merged.Shininess = r.Shininess
	}
	if r.Reflective != nil {
		merged.Reflective = r.Reflective
	}
	if r.Transparency != nil {
		merged.Transparency = r.Transparency
	}
	if r.RefractiveIndex != nil {
		merged.RefractiveIndex = r.RefractiveIndex
	}
	reprs[key] = merged
	return nil
}

// materialize layers a (fully resolved, possibly still partial)
// MaterialRepr onto raytracer.DefaultMaterial — used both for named
// materials once extends chains are flattened and for inline object
// overrides, which never go through completeMaterial at all.
func materialize(r MaterialRepr) raytracer.Material {
	m := raytracer.DefaultMaterial()
	if r.Color != nil {
		m.Color = raytracer.NewColor(r.Color[0], r.Color[1], r.Color[2])
	}
	if r.Ambient != nil {
		m.Ambient = *r.Ambient
	}
	if r.Diffuse != nil {
		m.Diffuse = *r.Diffuse
	}
	if r.Specular != nil {
		m.Specular = *r.Specular
	}
	if r.Shininess != nil {
		m.Shininess = *r.Shininess
	}
	if r.Reflective != nil {
		m.Reflective = *r.Reflective
	}
	if r.Transparency != nil {
		m.Transparency = *r.Transparency
	}
	if r.RefractiveIndex != nil {
		m.RefractiveIndex = *r.RefractiveIndex
	}
	return m
}
