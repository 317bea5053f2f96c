package steer

import "math"

// rsTurnLength returns the pure-arc length from c.Start to q along c,
// assuming q lies on c. This calculator ignores clothoid entry/exit
// geometry entirely — it is used both for genuinely sigma=∞ circles and
// for the rs-typed interior pivots of multi-turn families.
func (c Circle) rsTurnLength(q Configuration) float64 {
	return c.Param.Radius * c.deflection(q)
}

// hcTurnLength returns the length of a clothoid-then-arc (or arc-then-
// clothoid) turn from c.Start to q. When the requested deflection is at
// least Mu, one full clothoid segment covers the first Mu of deflection
// and a circular arc of radius Radius covers the remainder. Below Mu,
// curvature never reaches KappaMax and the turn is a single sub-maximal
// clothoid: by the clothoid's deflection/length relation
// theta(L) = sigma·L²/2, deflection theta is covered by length
// sqrt(2·theta/sigma). The two branches agree at theta=Mu (both evaluate
// to KappaMax/SigmaMax), so length(theta) is continuous there.
func (c Circle) hcTurnLength(q Configuration) float64 {
	theta := c.deflection(q)
	p := c.Param
	lc := clothoidLength(p.KappaMax, p.SigmaMax)
	if theta >= p.Mu {
		return lc + p.Radius*(theta-p.Mu)
	}
	return math.Sqrt(2 * theta / p.SigmaMax)
}

// ccTurnLength returns the length of a clothoid-arc-clothoid turn from
// c.Start to q. When the requested deflection is at least 2·Mu, two full
// clothoid segments (lead-in, lead-out) cover 2·Mu of deflection and a
// central arc covers the remainder. Below 2·Mu, the turn collapses to a
// symmetric pair of sub-maximal clothoids, each covering half the
// requested deflection; this agrees with the full-clothoid branch at
// theta=2·Mu.
func (c Circle) ccTurnLength(q Configuration) float64 {
	theta := c.deflection(q)
	p := c.Param
	lc := clothoidLength(p.KappaMax, p.SigmaMax)
	if theta >= 2*p.Mu {
		return 2*lc + p.Radius*(theta-2*p.Mu)
	}
	return 2 * math.Sqrt(theta/p.SigmaMax)
}
