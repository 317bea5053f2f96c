package steer

import (
	"honnef.co/go/curve"

	"github.com/Aand1/steering-functions/internal/geom2"
)

// This file covers the three- and four-turn chain families that connect
// c1 to c2 through one or two interior circles without a straight
// segment: TTT, TTcTT, TcTTcT.

// tttExists: same turning sense, opposite driving direction, within two
// 2R hops of an opposite-sense middle circle — the curvature-continuous
// sibling of TcTcT.
func tttExists(c1, c2 Circle, d, alpha float64) bool {
	r := c1.Param.Radius
	return c1.Left == c2.Left && c1.Forward != c2.Forward && geom2.Leq(d, 4*r, epsilon)
}

func tttBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	r := c1.Param.Radius
	a, b, ok := twoCircleIntersections(c1.Center, c2.Center, 2*r)
	if !ok {
		return Path{}, false
	}
	midLeft := !c1.Left
	candidate := func(mid curve.Vec2) (Path, float64) {
		t1 := c1.Center.Add(mid.Sub(c1.Center).Normalize().Mul(r))
		t2 := mid.Add(c2.Center.Sub(mid).Normalize().Mul(r))
		q1 := configurationOn(c1.Center, t1, c1.Left, 0)
		q4 := configurationOn(c2.Center, t2, c2.Left, 0)
		middle := Circle{Center: mid, Left: midLeft, Forward: c1.Forward, Regular: true, Param: c1.Param, Start: q1}
		length := c1.hcTurnLength(q1) + middle.ccTurnLength(q4) + c2.hcTurnLength(q4)
		return Path{Family: FamilyTTT, CStart: c1, CEnd: c2, CI1: &middle, Q1: &q1, Q4: &q4, Length: length}, length
	}
	p1, l1 := candidate(a)
	p2, l2 := candidate(b)
	if l1 <= l2 {
		return p1, true
	}
	return p2, true
}

// chainMiddleCircles places the two interior pivots of a four-circle
// chain on the line between c1's and c2's centers, each one 2R hop in
// from its nearer endpoint — a deterministic, symmetric choice among the
// family of geometrically valid placements.
func chainMiddleCircles(c1, c2 Circle) (ci1, ci2 Circle) {
	r := c1.Param.Radius
	dir := c2.Center.Sub(c1.Center).Normalize()
	ci1Center := c1.Center.Add(dir.Mul(2 * r))
	ci2Center := c2.Center.Sub(dir.Mul(2 * r))
	ci1 = Circle{Center: ci1Center, Left: !c1.Left, Forward: c1.Forward, Regular: true, Param: c1.Param, Start: c1.Start}
	ci2 = Circle{Center: ci2Center, Left: !c2.Left, Forward: c2.Forward, Regular: true, Param: c2.Param, Start: c2.Start}
	return ci1, ci2
}

// ttcTTExists: opposite turning sense, same driving direction, reachable
// by a symmetric four-circle chain.
func ttcTTExists(c1, c2 Circle, d, alpha float64) bool {
	r := c1.Param.Radius
	return c1.Left != c2.Left && c1.Forward == c2.Forward && geom2.Leq(d, 4*r+2*r, epsilon)
}

func ttcTTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	ci1, ci2 := chainMiddleCircles(c1, c2)
	q1 := configurationOn(c1.Center, ci1.Center, c1.Left, 0)
	q2 := configurationOn(ci1.Center, ci2.Center, ci1.Left, 0)
	q3 := configurationOn(ci2.Center, ci1.Center, ci2.Left, 0)
	q4 := configurationOn(c2.Center, ci2.Center, c2.Left, 0)
	ci1.Start = q1
	ci2.Start = q4
	length := c1.hcTurnLength(q1) + ci1.hcTurnLength(q2) + ci2.hcTurnLength(q3) + c2.hcTurnLength(q4)
	return Path{Family: FamilyTTcTT, CStart: c1, CEnd: c2, CI1: &ci1, CI2: &ci2, Q1: &q1, Q2: &q2, Q3: &q3, Q4: &q4, Length: length}, true
}

// tcTTcTExists: opposite turning sense, opposite driving direction,
// reachable by a symmetric four-circle chain with cusps at both ends.
func tcTTcTExists(c1, c2 Circle, d, alpha float64) bool {
	r := c1.Param.Radius
	return c1.Left != c2.Left && c1.Forward != c2.Forward && geom2.Geq(d, 2*r, epsilon) && geom2.Leq(d, 6*r, epsilon)
}

func tcTTcTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	ci1, ci2 := chainMiddleCircles(c1, c2)
	q1 := configurationOn(c1.Center, ci1.Center, c1.Left, c1.Kappa())
	q2 := configurationOn(ci1.Center, ci2.Center, ci1.Left, 0)
	q3 := configurationOn(ci2.Center, ci1.Center, ci2.Left, 0)
	q4 := configurationOn(c2.Center, ci2.Center, c2.Left, c2.Kappa())
	ci1.Start = q1
	ci2.Start = q4
	length := c1.rsTurnLength(q1) + ci1.hcTurnLength(q2) + ci2.hcTurnLength(q3) + c2.rsTurnLength(q4)
	return Path{Family: FamilyTcTTcT, CStart: c1, CEnd: c2, CI1: &ci1, CI2: &ci2, Q1: &q1, Q2: &q2, Q3: &q3, Q4: &q4, Length: length}, true
}
