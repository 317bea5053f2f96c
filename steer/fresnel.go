package steer

import "math"

// fresnelSteps is the number of Simpson's-rule subdivisions used to
// evaluate the clothoid offset integrals. The clothoid entry offsets are
// computed once per CircleParam and cached, so this cost is paid only at
// StateSpace construction time, not per predicate/build call.
const fresnelSteps = 512

// fresnelCS evaluates the Fresnel-type integrals
//
//	c(t) = ∫₀ᵗ cos(σ·u²/2) du,  s(t) = ∫₀ᵗ sin(σ·u²/2) du
//
// by composite Simpson's rule, where sigma is the clothoid's sharpness.
// This is the position of a unit-speed clothoid of sharpness sigma at arc
// length t, relative to its start at the origin heading zero.
func fresnelCS(t, sigma float64) (c, s float64) {
	if t <= 0 {
		return 0, 0
	}
	n := fresnelSteps
	if n%2 == 1 {
		n++
	}
	h := t / float64(n)
	fx := func(u float64) float64 { return math.Cos(sigma * u * u / 2) }
	fy := func(u float64) float64 { return math.Sin(sigma * u * u / 2) }

	c = fx(0) + fx(t)
	s = fy(0) + fy(t)
	for i := 1; i < n; i++ {
		u := float64(i) * h
		weight := 4.0
		if i%2 == 0 {
			weight = 2.0
		}
		c += weight * fx(u)
		s += weight * fy(u)
	}
	c *= h / 3
	s *= h / 3
	return c, s
}

// clothoidOffsetSteps is coarser than fresnelSteps: this integral runs
// once per discretized sample rather than once per CircleParam, so it
// trades a little precision for a cost the discretizer can afford to pay
// repeatedly.
const clothoidOffsetSteps = 32

// clothoidOffset evaluates the position reached after signed arc length s
// along a curve starting at heading theta0, curvature kappa0, curvature
// rate sigma — the same quadrature fresnelCS uses, generalized to a
// nonzero starting heading and curvature so the discretizer can integrate
// every control incrementally from its current state.
func clothoidOffset(theta0, kappa0, sigma, s float64) (dx, dy float64) {
	if s == 0 {
		return 0, 0
	}
	n := clothoidOffsetSteps
	if n%2 == 1 {
		n++
	}
	h := s / float64(n)
	heading := func(u float64) float64 { return theta0 + kappa0*u + sigma*u*u/2 }
	fx := func(u float64) float64 { return math.Cos(heading(u)) }
	fy := func(u float64) float64 { return math.Sin(heading(u)) }

	dx = fx(0) + fx(s)
	dy = fy(0) + fy(s)
	for i := 1; i < n; i++ {
		u := float64(i) * h
		weight := 4.0
		if i%2 == 0 {
			weight = 2.0
		}
		dx += weight * fx(u)
		dy += weight * fy(u)
	}
	dx *= h / 3
	dy *= h / 3
	return dx, dy
}
