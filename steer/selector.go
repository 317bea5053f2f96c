package steer

import (
	"math"

	"github.com/Aand1/steering-functions/internal/geom2"
)

// familyEntry pairs one family's feasibility predicate with its build
// routine. The declared order is the fixed, documented family order used
// both to evaluate predicates and to break ties between equal-length
// candidates (earlier entries win), per §4.3's "ties broken by family
// index (stable order)".
type familyEntry struct {
	tag    FamilyTag
	exists func(c1, c2 Circle, d, alpha float64) bool
	build  func(c1, c2 Circle, d, alpha float64) (Path, bool)
}

var familyTable = []familyEntry{
	{FamilyTT, ttExists, ttBuild},
	{FamilyTcT, tcTExists, tcTBuild},
	{FamilyTcTcT, tcTcTExists, tcTcTBuild},
	{FamilyTcTT, tcTTExists, tcTTBuild},
	{FamilyTTcT, tcTTExists, tTcTBuild},
	{FamilyTST, tstExists, tstBuild},
	{FamilyTSTcT, tstcTExists, tstcTBuild},
	{FamilyTcTST, tcTSTExists, tcTSTBuild},
	{FamilyTcTSTcT, tcTSTcTExists, tcTSTcTBuild},
	{FamilyTTcTT, ttcTTExists, ttcTTBuild},
	{FamilyTcTTcT, tcTTcTExists, tcTTcTBuild},
	{FamilyTTT, tttExists, tttBuild},
	{FamilyTcST, tcSTExists, tcSTBuild},
	{FamilyTScT, tScTExists, tScTBuild},
	{FamilyTcScT, tcScTExists, tcScTBuild},
}

// solve is the Selector: given two endpoint circles, it evaluates every
// family's predicate in the fixed table order, builds the admissible
// ones, and returns the Path of minimum length. EMPTY and T are handled
// before the table is consulted at all, matching the early-return
// structure of the source dispatcher this is adapted from.
func solve(c1, c2 Circle) Path {
	if emptyExists(c1, c2, 0, 0) {
		p, _ := emptyBuild(c1, c2, 0, 0)
		return p
	}
	if tExists(c1, c2, 0, 0) {
		p, _ := tBuild(c1, c2, 0, 0)
		return p
	}

	d := geom2.Dist(c1.Center.X, c1.Center.Y, c2.Center.X, c2.Center.Y)
	alpha := angleBetween(c1, c2)

	best := noPath()
	for _, entry := range familyTable {
		if !entry.exists(c1, c2, d, alpha) {
			continue
		}
		p, ok := entry.build(c1, c2, d, alpha)
		if !ok {
			continue
		}
		if p.Length < best.Length-epsilon {
			best = p
		}
	}
	return best
}

func angleBetween(c1, c2 Circle) float64 {
	return math.Atan2(c2.Center.Y-c1.Center.Y, c2.Center.X-c1.Center.X)
}
