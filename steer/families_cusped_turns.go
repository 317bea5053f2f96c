package steer

import (
	"honnef.co/go/curve"

	"github.com/Aand1/steering-functions/internal/geom2"
)

// tcTTExists: same turning sense, same driving direction, reachable via
// an opposite-sense middle circle with one cusp and one smooth join — the
// cusp falls either between cstart and the middle circle (TcTT) or
// between the middle circle and cend (TTcT). Both share the same sign
// pattern and distance bound, so this one predicate serves both table
// entries; the Selector tries both build orderings and keeps whichever
// is shorter.
func tcTTExists(c1, c2 Circle, d, alpha float64) bool {
	r := c1.Param.Radius
	return c1.Left == c2.Left && c1.Forward == c2.Forward && geom2.Leq(d, 4*r, epsilon)
}

func middleCircleViaTwoHops(c1, c2 Circle) (mid Circle, t1, t2 Configuration, ok bool) {
	r := c1.Param.Radius
	a, b, found := twoCircleIntersections(c1.Center, c2.Center, 2*r)
	if !found {
		return Circle{}, Configuration{}, Configuration{}, false
	}
	midLeft := !c1.Left
	build := func(center curve.Vec2) (Circle, Configuration, Configuration) {
		tp1 := c1.Center.Add(center.Sub(c1.Center).Normalize().Mul(r))
		tp2 := center.Add(c2.Center.Sub(center).Normalize().Mul(r))
		q1 := configurationOn(c1.Center, tp1, c1.Left, negKappa(midLeft, c1.Param.KappaMax))
		q2 := configurationOn(center, tp2, midLeft, negKappa(c2.Left, c1.Param.KappaMax))
		m := Circle{Center: center, Left: midLeft, Forward: c1.Forward, Regular: true, Param: c1.Param, Start: q1}
		return m, q1, q2
	}
	m1, q1a, q2a := build(a)
	m2, q1b, q2b := build(b)
	da := geom2.Dist(q1a.X, q1a.Y, c1.Start.X, c1.Start.Y)
	db := geom2.Dist(q1b.X, q1b.Y, c1.Start.X, c1.Start.Y)
	if da <= db {
		return m1, q1a, q2a, true
	}
	return m2, q1b, q2b, true
}

func tcTTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	mid, q1, q4, ok := middleCircleViaTwoHops(c1, c2)
	if !ok {
		return Path{}, false
	}
	length := c1.rsTurnLength(q1) + mid.hcTurnLength(q4) + c2.hcTurnLength(q4)
	return Path{Family: FamilyTcTT, CStart: c1, CEnd: c2, CI1: &mid, Q1: &q1, Q4: &q4, Length: length}, true
}

func tTcTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	mid, q1, q4, ok := middleCircleViaTwoHops(c1, c2)
	if !ok {
		return Path{}, false
	}
	length := c1.hcTurnLength(q1) + mid.hcTurnLength(q4) + c2.rsTurnLength(q4)
	return Path{Family: FamilyTTcT, CStart: c1, CEnd: c2, CI1: &mid, Q1: &q1, Q4: &q4, Length: length}, true
}
