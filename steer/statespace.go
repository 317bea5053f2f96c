package steer

import "fmt"

// StateSpace is the immutable, state-space-wide construction: the
// bounded curvature and sharpness and the two coexisting CircleParam
// sets (hc/cc finite-sigma, rs sigma=∞) derived from them. It carries no
// mutable state, so GetDistance/GetControls/GetPath calls on the same
// StateSpace may run concurrently from multiple goroutines.
type StateSpace struct {
	KappaMax, SigmaMax, Discretization float64
	hc                                 *CircleParam
	rs                                 *CircleParam
}

// NewStateSpace validates its construction parameters and precomputes
// the CircleParam values shared by every predicate and builder. Per the
// error handling design, invalid parameters fail construction outright;
// the core never allocates a StateSpace it cannot use.
func NewStateSpace(kappaMax, sigmaMax, discretization float64) (*StateSpace, error) {
	if kappaMax <= 0 {
		return nil, fmt.Errorf("steer: kappa_max must be positive, got %g", kappaMax)
	}
	if sigmaMax <= 0 {
		return nil, fmt.Errorf("steer: sigma_max must be positive, got %g", sigmaMax)
	}
	if discretization <= 0 {
		return nil, fmt.Errorf("steer: discretization must be positive, got %g", discretization)
	}
	return &StateSpace{
		KappaMax:       kappaMax,
		SigmaMax:       sigmaMax,
		Discretization: discretization,
		hc:             newHCCircleParam(kappaMax, sigmaMax),
		rs:             newRSCircleParam(kappaMax),
	}, nil
}

// startCircles builds the four candidate starting circles
// {(left=T/F) × (forward=T/F)} from s, skipping any whose turning sign
// contradicts sign(s.Kappa) — the Driver's curvature-continuity filter.
//
// These circles carry the finite-sigma CircleParam: rsTurnLength only
// ever reads Radius (identical in both parameter sets), so this choice
// costs nothing for families that treat an endpoint as an rs cusp, while
// making hcTurnLength/ccTurnLength correct for families that treat it as
// a clothoid entry.
func (ss *StateSpace) startCircles(s Configuration) []Circle {
	var out []Circle
	for _, left := range []bool{true, false} {
		if s.Kappa < -epsilon && left {
			continue
		}
		if s.Kappa > epsilon && !left {
			continue
		}
		for _, forward := range []bool{true, false} {
			out = append(out, newCircle(s, left, forward, true, ss.hc))
		}
	}
	return out
}

// solveAll is the Driver: it builds the four start and four end circles,
// applies the curvature-continuity filter, invokes the Selector on every
// surviving pair, and returns the globally shortest Path.
func (ss *StateSpace) solveAll(s1, s2 Configuration) Path {
	starts := ss.startCircles(s1)
	ends := ss.startCircles(s2)
	best := noPath()
	for _, c1 := range starts {
		for _, c2 := range ends {
			p := solve(c1, c2)
			if p.Length < best.Length-epsilon {
				best = p
			}
		}
	}
	return best
}

// GetDistance is the `get_distance` entry point: the length of the
// shortest feasible path between s1 and s2.
func (ss *StateSpace) GetDistance(s1, s2 State) float64 {
	p := ss.solveAll(toConfiguration(s1), toConfiguration(s2))
	return p.Length
}

// GetPath is the `get_path` entry point: returns the winning Path's
// decomposition directly, for callers that want the geometry rather than
// the control sequence (e.g. GetControls, or a discretizer operating
// outside this package).
func (ss *StateSpace) GetPath(s1, s2 State) Path {
	return ss.solveAll(toConfiguration(s1), toConfiguration(s2))
}

// GetControls is the `get_controls` entry point: the ordered list of
// motion primitives reproducing the shortest path between s1 and s2.
func (ss *StateSpace) GetControls(s1, s2 State) []Control {
	p := ss.solveAll(toConfiguration(s1), toConfiguration(s2))
	return emitControls(p)
}

// GetSamples pipes GetControls through the discretizer, producing a dense
// (x, y, θ, κ, d) sample sequence at this state space's configured step.
func (ss *StateSpace) GetSamples(s1, s2 State) []State {
	controls := ss.GetControls(s1, s2)
	return Discretize(s1, controls, ss.Discretization)
}
