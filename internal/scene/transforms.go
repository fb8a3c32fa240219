package scene

import (
	"fmt"

	raytracer "github.com/kestrel-labs/raytrace"
)

// resolveTransforms inlines every named-reference step (cycle-checked
// the same way resolveMaterials handles `extends`) so every entry
// becomes a flat step list with no Ref steps left, then folds each
// list into a raytracer.Transform, left to right, matching the
// builder's outermost-applies-last convention.
func resolveTransforms(reprs map[string][]TransformStep) (map[string]raytracer.Transform, error) {
	for key := range reprs {
		if err := completeTransform(key, reprs, map[string]bool{}); err != nil {
			return nil, err
		}
	}
	result := make(map[string]raytracer.Transform, len(reprs))
	for name, steps := range reprs {
		t, err := foldSteps(raytracer.Identity(), steps, nil)
		if err != nil {
			return nil, err
		}
		result[name] = t
	}
	return result, nil
}

func completeTransform(key string, reprs map[string][]TransformStep, seen map[string]bool) error {
	if seen[key] {
		return fmt.Errorf("%w: transform %q", ErrRecursiveDefinition, key)
	}
	seen[key] = true
	defer delete(seen, key)

	steps, ok := reprs[key]
	if !ok {
		return fmt.Errorf("%w: transform %q", ErrKeyNotExists, key)
	}

	var flattened []TransformStep
	for _, s := range steps {
		if !s.isRef() {
			flattened = append(flattened, s)
			continue
		}
		if err := completeTransform(s.Ref, reprs, seen); err != nil {
			return err
		}
		flattened = append(flattened, reprs[s.Ref]...)
	}
	reprs[key] = flattened
	return nil
}

// foldSteps applies steps in order onto base. named is consulted for
// any step that still carries a Ref (only possible when applying an
// object's inline transform list, which is resolved against the
// already-flattened transform table rather than itself).
func foldSteps(base raytracer.Transform, steps []TransformStep, named map[string]raytracer.Transform) (raytracer.Transform, error) {
	t := base
	for _, s := range steps {
		if s.isRef() {
			ref, ok := named[s.Ref]
			if !ok {
				return t, fmt.Errorf("%w: %q", ErrUnknownTransformation, s.Ref)
			}
			t = composeTransforms(t, ref)
			continue
		}
		applied, err := applyStep(t, s)
		if err != nil {
			return t, err
		}
		t = applied
	}
	return t, nil
}

func applyStep(t raytracer.Transform, s TransformStep) (raytracer.Transform, error) {
	switch s.Op {
	case "rotate_x":
		if len(s.Args) != 1 {
			return t, fmt.Errorf("%w: rotate_x takes 1 argument", ErrParse)
		}
		return t.RotateX(s.Args[0]), nil
	case "rotate_y":
		if len(s.Args) != 1 {
			return t, fmt.Errorf("%w: rotate_y takes 1 argument", ErrParse)
		}
		return t.RotateY(s.Args[0]), nil
	case "rotate_z":
		if len(s.Args) != 1 {
			return t, fmt.Errorf("%w: rotate_z takes 1 argument", ErrParse)
		}
		return t.RotateZ(s.Args[0]), nil
	case "translate":
		if len(s.Args) != 3 {
			return t, fmt.Errorf("%w: translate takes 3 arguments", ErrParse)
		}
		return t.Translate(s.Args[0], s.Args[1], s.Args[2]), nil
	case "scale":
		if len(s.Args) != 3 {
			return t, fmt.Errorf("%w: scale takes 3 arguments", ErrParse)
		}
		return t.Scale(s.Args[0], s.Args[1], s.Args[2]), nil
	case "shear":
		if len(s.Args) != 6 {
			return t, fmt.Errorf("%w: shear takes 6 arguments", ErrParse)
		}
		return t.Shear(s.Args[0], s.Args[1], s.Args[2], s.Args[3], s.Args[4], s.Args[5]), nil
	default:
		return t, fmt.Errorf("%w: %q", ErrUnknownTransformation, s.Op)
	}
}

// composeTransforms applies outer onto base, outer-as-outermost, for
// inlining a named transform into another step sequence.
func composeTransforms(base, outer raytracer.Transform) raytracer.Transform {
	return raytracer.FromMatrix(outer.Matrix().Multiply(base.Matrix()))
}
