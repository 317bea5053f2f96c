package steer

import (
	"math"

	"honnef.co/go/curve"

	"github.com/Aand1/steering-functions/internal/geom2"
)

// This file covers the families built around one interposed straight
// segment: TST, TSTcT, TcTST, TcTSTcT, TcST/TScT, TcScT. Opposite-turning
// circles connect by the internal (crossing) common tangent; same-turning
// circles connect by the external (parallel) common tangent.
// straightTangentPoints picks exactly one of the two from the circles'
// turning senses; no build routine tries both variants.

func tangentDir(c1, c2 Circle, d float64) curve.Vec2 {
	return c2.Center.Sub(c1.Center).Div(d)
}

// straightTangentPoints picks the internal or external common tangent
// points on c1 and c2 depending on whether the two circles turn in
// opposite senses.
func straightTangentPoints(c1, c2 Circle, d float64) (p1, p2 Configuration, ok bool) {
	r := c1.Param.Radius
	dir := tangentDir(c1, c2, d)
	if c1.Left != c2.Left {
		side := 1.0
		if !c1.Left {
			side = -1.0
		}
		t1, t2, found := internalTangentPoints(c1.Center, c2.Center, dir, d, r, side)
		if !found {
			return Configuration{}, Configuration{}, false
		}
		return configurationOn(c1.Center, t1, c1.Left, 0), configurationOn(c2.Center, t2, c2.Left, 0), true
	}
	side := 1.0
	if !c1.Left {
		side = -1.0
	}
	t1 := externalTangentPoint(c1.Center, dir, r, side)
	t2 := externalTangentPoint(c2.Center, dir, r, side)
	return configurationOn(c1.Center, t1, c1.Left, 0), configurationOn(c2.Center, t2, c2.Left, 0), true
}

func tstSubExists(c1, c2 Circle, d float64) bool {
	r := c1.Param.Radius
	mu := c1.Param.Mu
	internal := c1.Left != c2.Left && c1.Forward != c2.Forward && geom2.Geq(d, 2*r, epsilon)
	external := c1.Left == c2.Left && c1.Forward != c2.Forward && geom2.Geq(d, 2*r*math.Sin(mu), epsilon)
	return internal || external
}

func tstExists(c1, c2 Circle, d, alpha float64) bool {
	return tstSubExists(c1, c2, d)
}

func tstBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	q2, q3, ok := straightTangentPoints(c1, c2, d)
	if !ok {
		return Path{}, false
	}
	length := c1.hcTurnLength(q2) + distance(q2, q3) + c2.hcTurnLength(q3)
	return Path{Family: FamilyTST, CStart: c1, CEnd: c2, Q2: &q2, Q3: &q3, Length: length}, true
}

func tstcTSubExists(c1, c2 Circle, d float64) bool {
	r := c1.Param.Radius
	mu := c1.Param.Mu
	kappaMax := c1.Param.KappaMax
	iBound := math.Hypot(2*r*math.Sin(mu)+2/kappaMax, 2*r*math.Cos(mu))
	internal := c1.Left == c2.Left && c1.Forward == c2.Forward && geom2.Geq(d, iBound, epsilon)
	external := c1.Left != c2.Left && c1.Forward == c2.Forward && geom2.Geq(d, 2/kappaMax+2*r*math.Sin(mu), epsilon)
	return internal || external
}

func tstcTExists(c1, c2 Circle, d, alpha float64) bool { return tstcTSubExists(c1, c2, d) }

// tstcTBuild and tcTSTBuild share the same sign pattern and feasibility;
// they differ only in which end carries the cusp circle. Both are tried
// and the Selector keeps the shorter.
func tstcTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	r := c1.Param.Radius
	// cend's cusp circle sits one 2R hop beyond cend, opposite turning sense.
	ciLeft := !c2.Left
	ciCenter := c2.Center.Add(c2.Center.Sub(c1.Center).Normalize().Mul(2 * r))
	ci := Circle{Center: ciCenter, Left: ciLeft, Forward: c2.Forward, Regular: true, Param: c2.Param, Start: c2.Start}
	q1, q2, ok := straightTangentPoints(c1, ci, geom2.Dist(c1.Center.X, c1.Center.Y, ciCenter.X, ciCenter.Y))
	if !ok {
		return Path{}, false
	}
	q4 := configurationOn(ciCenter, c2.Center, ciLeft, c2.Kappa())
	length := c1.hcTurnLength(q1) + distance(q1, q2) + ci.hcTurnLength(q4) + c2.rsTurnLength(q4)
	return Path{Family: FamilyTSTcT, CStart: c1, CEnd: c2, CI1: &ci, Q1: &q1, Q2: &q2, Q4: &q4, Length: length}, true
}

func tcTSTExists(c1, c2 Circle, d, alpha float64) bool { return tstcTSubExists(c1, c2, d) }

func tcTSTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	r := c1.Param.Radius
	ciLeft := !c1.Left
	ciCenter := c1.Center.Add(c2.Center.Sub(c1.Center).Normalize().Mul(2 * r))
	ci := Circle{Center: ciCenter, Left: ciLeft, Forward: c1.Forward, Regular: true, Param: c1.Param, Start: c1.Start}
	q1 := configurationOn(ciCenter, c1.Center, ciLeft, c1.Kappa())
	q2, q3, ok := straightTangentPoints(ci, c2, geom2.Dist(ciCenter.X, ciCenter.Y, c2.Center.X, c2.Center.Y))
	if !ok {
		return Path{}, false
	}
	length := c1.rsTurnLength(q1) + ci.hcTurnLength(q2) + distance(q2, q3) + c2.hcTurnLength(q3)
	return Path{Family: FamilyTcTST, CStart: c1, CEnd: c2, CI1: &ci, Q1: &q1, Q2: &q2, Q3: &q3, Length: length}, true
}

func tcTSTcTSubExists(c1, c2 Circle, d float64) bool {
	r := c1.Param.Radius
	mu := c1.Param.Mu
	kappaMax := c1.Param.KappaMax
	iBound := math.Sqrt(4*r*r + 16*r*math.Sin(mu)/kappaMax + 16/(kappaMax*kappaMax))
	internal := c1.Left != c2.Left && c1.Forward != c2.Forward && geom2.Geq(d, iBound, epsilon)
	external := c1.Left == c2.Left && c1.Forward != c2.Forward && geom2.Geq(d, 4/kappaMax+2*r*math.Sin(mu), epsilon)
	return internal || external
}

func tcTSTcTExists(c1, c2 Circle, d, alpha float64) bool { return tcTSTcTSubExists(c1, c2, d) }

func tcTSTcTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	r := c1.Param.Radius
	ci1Left := !c1.Left
	ci1Center := c1.Center.Add(c2.Center.Sub(c1.Center).Normalize().Mul(2 * r))
	ci2Left := !c2.Left
	ci2Center := c2.Center.Add(c1.Center.Sub(c2.Center).Normalize().Mul(2 * r))
	ci1 := Circle{Center: ci1Center, Left: ci1Left, Forward: c1.Forward, Regular: true, Param: c1.Param, Start: c1.Start}
	ci2 := Circle{Center: ci2Center, Left: ci2Left, Forward: c2.Forward, Regular: true, Param: c2.Param, Start: c2.Start}
	q1 := configurationOn(ci1Center, c1.Center, ci1Left, c1.Kappa())
	q4 := configurationOn(ci2Center, c2.Center, ci2Left, c2.Kappa())
	q2, q3, ok := straightTangentPoints(ci1, ci2, geom2.Dist(ci1Center.X, ci1Center.Y, ci2Center.X, ci2Center.Y))
	if !ok {
		return Path{}, false
	}
	length := c1.rsTurnLength(q1) + ci1.hcTurnLength(q2) + distance(q2, q3) + ci2.hcTurnLength(q3) + c2.rsTurnLength(q4)
	return Path{Family: FamilyTcTSTcT, CStart: c1, CEnd: c2, CI1: &ci1, CI2: &ci2, Q1: &q1, Q2: &q2, Q3: &q3, Q4: &q4, Length: length}, true
}

func tcSTSubExists(c1, c2 Circle, d float64) bool {
	r := c1.Param.Radius
	mu := c1.Param.Mu
	internal := c1.Left != c2.Left && c1.Forward == c2.Forward && geom2.Geq(d, 2*r*math.Cos(mu), epsilon)
	external := c1.Left == c2.Left && c1.Forward == c2.Forward && geom2.Geq(d, epsilon, 0)
	return internal || external
}

func tcSTExists(c1, c2 Circle, d, alpha float64) bool { return tcSTSubExists(c1, c2, d) }

func tcSTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	q2, q3, ok := straightTangentPoints(c1, c2, d)
	if !ok {
		return Path{}, false
	}
	length := c1.hcTurnLength(q2) + distance(q2, q3) + c2.hcTurnLength(q3)
	return Path{Family: FamilyTcST, CStart: c1, CEnd: c2, Q2: &q2, Q3: &q3, Length: length}, true
}

func tScTExists(c1, c2 Circle, d, alpha float64) bool { return tcSTSubExists(c1, c2, d) }

func tScTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	q2, q3, ok := straightTangentPoints(c1, c2, d)
	if !ok {
		return Path{}, false
	}
	length := c1.hcTurnLength(q2) + distance(q2, q3) + c2.hcTurnLength(q3)
	return Path{Family: FamilyTScT, CStart: c1, CEnd: c2, Q2: &q2, Q3: &q3, Length: length}, true
}

func tcScTSubExists(c1, c2 Circle, d float64) bool {
	kappaMax := c1.Param.KappaMax
	internal := c1.Left != c2.Left && c1.Forward != c2.Forward && geom2.Geq(d, 2/kappaMax, epsilon)
	external := c1.Left == c2.Left && c1.Forward != c2.Forward && geom2.Geq(d, epsilon, 0)
	return internal || external
}

func tcScTExists(c1, c2 Circle, d, alpha float64) bool { return tcScTSubExists(c1, c2, d) }

func tcScTBuild(c1, c2 Circle, d, alpha float64) (Path, bool) {
	q1, q2, ok := straightTangentPoints(c1, c2, d)
	if !ok {
		return Path{}, false
	}
	length := c1.rsTurnLength(q1) + distance(q1, q2) + c2.rsTurnLength(q2)
	return Path{Family: FamilyTcScT, CStart: c1, CEnd: c2, Q1: &q1, Q2: &q2, Length: length}, true
}
