// Package scene loads a declarative YAML scene description into a
// raytracer.World and raytracer.Camera pair.
package scene

import "errors"

// These sentinels are the loader's full error taxonomy; every failure
// path wraps one of them with fmt.Errorf("%w: ...") so callers can
// distinguish them with errors.Is while still getting a specific
// message.
var (
	ErrRecursiveDefinition  = errors.New("scene: recursive definition")
	ErrKeyNotExists         = errors.New("scene: key does not exist")
	ErrUnknownTransformation = errors.New("scene: unknown transformation")
	ErrUnknownMaterial      = errors.New("scene: unknown material")
	ErrUnsupportedOperation = errors.New("scene: unsupported operation")
	ErrParse                = errors.New("scene: parse error")
)
