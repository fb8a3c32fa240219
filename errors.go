package raytracer

import "errors"

// ErrNoLight reports a world with no light source configured. No
// function in this package returns it: shadow probes treat a missing
// light as "shadowed" instead of failing.
var ErrNoLight = errors.New("raytracer: world has no light")
