// Package steer implements the hybrid-curvature Reeds-Shepp path selector:
// shortest feasible connections between two car-like configurations under
// a bounded curvature and a bounded sharpness (curvature rate), built
// from circular arcs, clothoids, and straight segments.
//
// The central type is StateSpace, built once from (kappaMax, sigmaMax,
// discretization) via NewStateSpace. Its three entry points mirror the
// steering_functions C++ library this package is adapted from:
// GetDistance, GetControls, and GetPath.
package steer
