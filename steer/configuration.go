package steer

import (
	"github.com/Aand1/steering-functions/internal/geom2"
)

// epsilon is the tolerance used throughout family predicates and
// near-degeneracy handling.
const epsilon = 1e-6

// Configuration is a pose on the plane with curvature, shared by every
// boundary between two adjacent path segments.
type Configuration struct {
	X, Y, Theta, Kappa float64
}

// State is the external boundary type: a configuration plus a driving
// direction, the unit this package's entry points accept and return.
type State struct {
	X, Y, Theta, Kappa, D float64
}

// Control is a single motion primitive: Δs is signed arc length, Kappa0 is
// curvature at the segment's start, Sigma is curvature rate (0 for a
// straight or circular-arc segment, nonzero for a clothoid).
type Control struct {
	DeltaS, Kappa0, Sigma float64
}

func toConfiguration(s State) Configuration {
	return Configuration{X: s.X, Y: s.Y, Theta: geom2.NormalizeAngle(s.Theta), Kappa: s.Kappa}
}

func (c Configuration) equal(o Configuration, eps float64) bool {
	return geom2.Eq(c.X, o.X, eps) && geom2.Eq(c.Y, o.Y, eps) &&
		geom2.Eq(geom2.SignedAngle(c.Theta-o.Theta), 0, eps) && geom2.Eq(c.Kappa, o.Kappa, eps)
}

// distance is the Euclidean distance between two configurations' positions,
// used for every family's straight-segment length term.
func distance(a, b Configuration) float64 {
	return geom2.Dist(a.X, a.Y, b.X, b.Y)
}

func lerpAngle(from, to float64) float64 {
	return geom2.SignedAngle(to - from)
}
