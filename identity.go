package raytracer

import "sync/atomic"

// identityCounter is the process-wide monotonic source of shape
// identities; patterns carry no identity. It is the only mutable state
// shared between scene-build and render: touched whenever a shape is
// constructed, never while a render is in flight.
var identityCounter atomic.Uint64

// nextIdentity returns a fresh, unique identity. Equality on shapes is
// identity equality, never structural equality, so two spheres built
// with identical transform and material still compare unequal.
func nextIdentity() uint64 {
	return identityCounter.Add(1)
}
