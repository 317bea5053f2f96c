package steer

import (
	"honnef.co/go/curve"

	"github.com/Aand1/steering-functions/internal/geom2"
)

// This file covers the degenerate families (EMPTY, T) and the
// two-and-three-turn families built directly from the endpoint circles
// without an interposed straight segment: TT, TcT, TcTcT.

// emptyExists reports whether the two circles start from the same
// configuration — the identity case, handled before any other predicate
// per the Selector's documented early-return order.
func emptyExists(c1, c2 Circle, d, alpha float64) bool {
	return c1.Start.equal(c2.Start, epsilon)
}

func emptyBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	return emptyPath(c1), true
}

// tExists reports whether c2's start configuration already lies on c1 —
// the single-turn case.
func tExists(c1, c2 Circle, d, alpha float64) bool {
	return c1.Left == c2.Left && c1.onCircle(c2.Start)
}

func tBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	length := c1.rsTurnLength(c2.Start)
	return Path{Family: FamilyT, CStart: c1, CEnd: c2, Length: length}, true
}

// ttExists: opposite turning sense, opposite driving direction, circles
// externally tangent — a smooth (curvature-continuous, momentarily
// straight) turn reversal.
func ttExists(c1, c2 Circle, d, alpha float64) bool {
	return c1.Left != c2.Left && c1.Forward != c2.Forward && geom2.Eq(d, 2*c1.Param.Radius, epsilon)
}

func ttBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	r := c1.Param.Radius
	dir := c2.Center.Sub(c1.Center).Div(d)
	tangent := c1.Center.Add(dir.Mul(r))
	q1 := configurationOn(c1.Center, tangent, c1.Left, 0)
	q3 := configurationOn(c2.Center, tangent, c2.Left, 0)
	length := c1.hcTurnLength(q1) + c2.hcTurnLength(q3)
	return Path{Family: FamilyTT, CStart: c1, CEnd: c2, Q1: &q1, Q3: &q3, Length: length}, true
}

// tcTExists: opposite turning sense, same driving direction, circles
// externally tangent at a cusp.
func tcTExists(c1, c2 Circle, d, alpha float64) bool {
	return c1.Left != c2.Left && c1.Forward == c2.Forward && geom2.Eq(d, 2*c1.Param.Radius, epsilon)
}

func tcTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	r := c1.Param.Radius
	dir := c2.Center.Sub(c1.Center).Div(d)
	tangent := c1.Center.Add(dir.Mul(r))
	q1 := configurationOn(c1.Center, tangent, c1.Left, c1.Kappa())
	length := c1.rsTurnLength(q1) + c2.rsTurnLength(q1)
	return Path{Family: FamilyTcT, CStart: c1, CEnd: c2, Q1: &q1, Length: length}, true
}

// tcTcTExists: same turning sense, opposite driving direction, within
// reach of a middle circle of opposite sense reached by two 2R hops —
// the classic C|C|C reversal pattern.
func tcTcTExists(c1, c2 Circle, d, alpha float64) bool {
	r := c1.Param.Radius
	return c1.Left == c2.Left && c1.Forward != c2.Forward && geom2.Leq(d, 4*r, epsilon)
}

func tcTcTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	r := c1.Param.Radius
	a, b, ok := twoCircleIntersections(c1.Center, c2.Center, 2*r)
	if !ok {
		return Path{}, false
	}
	candidate := func(mid curve.Vec2) (Path, float64) {
		midLeft := !c1.Left
		t1 := c1.Center.Add(mid.Sub(c1.Center).Normalize().Mul(r))
		t2 := mid.Add(c2.Center.Sub(mid).Normalize().Mul(r))
		q1 := configurationOn(c1.Center, t1, c1.Left, c1.Kappa())
		q2 := configurationOn(mid, t1, midLeft, negKappa(midLeft, c1.Param.KappaMax))
		q3 := configurationOn(mid, t2, midLeft, negKappa(midLeft, c1.Param.KappaMax))
		q4 := configurationOn(c2.Center, t2, c2.Left, c2.Kappa())
		middle := Circle{Center: mid, Left: midLeft, Forward: c1.Forward, Regular: true, Param: c1.Param, Start: q2}
		length := c1.rsTurnLength(q1) + middle.rsTurnLength(q3) + c2.rsTurnLength(q4)
		return Path{Family: FamilyTcTcT, CStart: c1, CEnd: c2, CI1: &middle, Q1: &q1, Q2: &q2, Q3: &q3, Q4: &q4, Length: length}, length
	}
	p1, l1 := candidate(a)
	p2, l2 := candidate(b)
	if l1 <= l2 {
		return p1, true
	}
	return p2, true
}

func negKappa(left bool, kappaMax float64) float64 {
	if left {
		return kappaMax
	}
	return -kappaMax
}
