package steer

import "math"

// This file is the Control emitter: it walks a Path's family and its
// stored join configurations and produces the ordered []Control that
// reproduces it, per the family→schedule table this package's families
// are built against. Pure rs segments (constant curvature, no ramp) are
// direction-agnostic; hc/cc segments carry an internal ramp and are
// emitted in one of two orderings — entry (ramp up, then hold) or exit
// (hold, then ramp down). Within each family's schedule the hc turns
// come in pairs taken in traversal order: the first turn of a pair uses
// the entry ordering and the second the exit ordering, whether the turn
// sits on an endpoint circle or on an interior pivot (TTcT's pivot, for
// example, is emitted in the exit ordering). The single cc pivot of TTT
// uses ccSeg.

func filterZero(cs []Control) []Control {
	out := cs[:0]
	for _, c := range cs {
		if math.Abs(c.DeltaS) > epsilon {
			out = append(out, c)
		}
	}
	return out
}

// rsSeg is a single constant-curvature arc from c.Start to q.
func rsSeg(c Circle, q Configuration) Control {
	ds := c.rsTurnLength(q)
	if !c.Forward {
		ds = -ds
	}
	return Control{DeltaS: ds, Kappa0: c.Kappa(), Sigma: 0}
}

func signedSigma(c Circle) float64 {
	if c.Kappa() < 0 {
		return -c.Param.SigmaMax
	}
	return c.Param.SigmaMax
}

func dsSign(c Circle) float64 {
	if c.Forward {
		return 1
	}
	return -1
}

// hcEntrySeg emits a clothoid-then-arc (or, below Mu, a single sub-maximal
// clothoid) turn traveled from c.Start to q: curvature ramps up first.
func hcEntrySeg(c Circle, q Configuration) []Control {
	theta := c.deflection(q)
	p := c.Param
	sigma := signedSigma(c)
	sign := dsSign(c)
	if theta >= p.Mu {
		lc := clothoidLength(p.KappaMax, p.SigmaMax)
		arcLen := p.Radius * (theta - p.Mu)
		return filterZero([]Control{
			{DeltaS: sign * lc, Kappa0: 0, Sigma: sigma},
			{DeltaS: sign * arcLen, Kappa0: c.Kappa(), Sigma: 0},
		})
	}
	subLen := math.Sqrt(2 * theta / p.SigmaMax)
	return filterZero([]Control{{DeltaS: sign * subLen, Kappa0: 0, Sigma: sigma}})
}

// hcExitSeg emits an arc-then-clothoid turn traveled from c.Start to q:
// curvature holds first and ramps down to zero at the very end — the
// ordering used for the second hc turn of each entry/exit pair.
func hcExitSeg(c Circle, q Configuration) []Control {
	theta := c.deflection(q)
	p := c.Param
	sigma := signedSigma(c)
	sign := dsSign(c)
	if theta >= p.Mu {
		lc := clothoidLength(p.KappaMax, p.SigmaMax)
		arcLen := p.Radius * (theta - p.Mu)
		return filterZero([]Control{
			{DeltaS: sign * arcLen, Kappa0: c.Kappa(), Sigma: 0},
			{DeltaS: sign * lc, Kappa0: c.Kappa(), Sigma: -sigma},
		})
	}
	subLen := math.Sqrt(2 * theta / p.SigmaMax)
	subKappa := p.SigmaMax * subLen
	if c.Kappa() < 0 {
		subKappa = -subKappa
	}
	return filterZero([]Control{{DeltaS: sign * subLen, Kappa0: subKappa, Sigma: -sigma}})
}

// ccSeg emits a clothoid-arc-clothoid (or, below 2·Mu, a symmetric pair of
// sub-maximal clothoids) turn from c.Start to q — the shape used by
// interior pivots that both leave and rejoin the path smoothly.
func ccSeg(c Circle, q Configuration) []Control {
	theta := c.deflection(q)
	p := c.Param
	sigma := signedSigma(c)
	sign := dsSign(c)
	if theta >= 2*p.Mu {
		lc := clothoidLength(p.KappaMax, p.SigmaMax)
		arcLen := p.Radius * (theta - 2*p.Mu)
		return filterZero([]Control{
			{DeltaS: sign * lc, Kappa0: 0, Sigma: sigma},
			{DeltaS: sign * arcLen, Kappa0: c.Kappa(), Sigma: 0},
			{DeltaS: sign * lc, Kappa0: c.Kappa(), Sigma: -sigma},
		})
	}
	halfLen := math.Sqrt(theta / p.SigmaMax)
	halfKappa := p.SigmaMax * halfLen
	if c.Kappa() < 0 {
		halfKappa = -halfKappa
	}
	return filterZero([]Control{
		{DeltaS: sign * halfLen, Kappa0: 0, Sigma: sigma},
		{DeltaS: sign * halfLen, Kappa0: halfKappa, Sigma: -sigma},
	})
}

// straightSeg is the zero-curvature segment between two tangent points.
func straightSeg(a, b Configuration, forward bool) Control {
	ds := distance(a, b)
	if !forward {
		ds = -ds
	}
	return Control{DeltaS: ds, Kappa0: 0, Sigma: 0}
}

// emitControls is the Control emitter: it maps a solved Path onto the
// ordered list of motion primitives that reproduce it, dispatching on
// Family per the fixed schedule each family's build routine encodes.
func emitControls(p Path) []Control {
	switch p.Family {
	case FamilyEmpty, FamilyNone:
		return nil

	case FamilyT:
		return []Control{rsSeg(p.CStart, p.CEnd.Start)}

	case FamilyTT:
		cs := hcEntrySeg(p.CStart, *p.Q1)
		cs = append(cs, hcExitSeg(p.CEnd, *p.Q3)...)
		return cs

	case FamilyTcT:
		return []Control{rsSeg(p.CStart, *p.Q1), rsSeg(p.CEnd, *p.Q1)}

	case FamilyTcTcT:
		cs := []Control{rsSeg(p.CStart, *p.Q1)}
		cs = append(cs, rsSeg(*p.CI1, *p.Q3))
		cs = append(cs, rsSeg(p.CEnd, *p.Q4))
		return cs

	case FamilyTcTT:
		cs := []Control{rsSeg(p.CStart, *p.Q1)}
		cs = append(cs, hcEntrySeg(*p.CI1, *p.Q4)...)
		cs = append(cs, hcExitSeg(p.CEnd, *p.Q4)...)
		return cs

	case FamilyTTcT:
		cs := hcEntrySeg(p.CStart, *p.Q1)
		cs = append(cs, hcExitSeg(*p.CI1, *p.Q4)...)
		cs = append(cs, []Control{rsSeg(p.CEnd, *p.Q4)}...)
		return cs

	case FamilyTST:
		cs := hcEntrySeg(p.CStart, *p.Q2)
		cs = append(cs, straightSeg(*p.Q2, *p.Q3, p.CStart.Forward))
		cs = append(cs, hcExitSeg(p.CEnd, *p.Q3)...)
		return cs

	case FamilyTSTcT:
		cs := hcEntrySeg(p.CStart, *p.Q1)
		cs = append(cs, straightSeg(*p.Q1, *p.Q2, p.CStart.Forward))
		cs = append(cs, hcExitSeg(*p.CI1, *p.Q4)...)
		cs = append(cs, rsSeg(p.CEnd, *p.Q4))
		return cs

	case FamilyTcTST:
		cs := []Control{rsSeg(p.CStart, *p.Q1)}
		cs = append(cs, hcEntrySeg(*p.CI1, *p.Q2)...)
		cs = append(cs, straightSeg(*p.Q2, *p.Q3, p.CI1.Forward))
		cs = append(cs, hcExitSeg(p.CEnd, *p.Q3)...)
		return cs

	case FamilyTcTSTcT:
		cs := []Control{rsSeg(p.CStart, *p.Q1)}
		cs = append(cs, hcEntrySeg(*p.CI1, *p.Q2)...)
		cs = append(cs, straightSeg(*p.Q2, *p.Q3, p.CI1.Forward))
		cs = append(cs, hcExitSeg(*p.CI2, *p.Q3)...)
		cs = append(cs, rsSeg(p.CEnd, *p.Q4))
		return cs

	case FamilyTTcTT:
		cs := hcEntrySeg(p.CStart, *p.Q1)
		cs = append(cs, hcExitSeg(*p.CI1, *p.Q2)...)
		cs = append(cs, hcEntrySeg(*p.CI2, *p.Q3)...)
		cs = append(cs, hcExitSeg(p.CEnd, *p.Q4)...)
		return cs

	case FamilyTcTTcT:
		cs := []Control{rsSeg(p.CStart, *p.Q1)}
		cs = append(cs, hcEntrySeg(*p.CI1, *p.Q2)...)
		cs = append(cs, hcExitSeg(*p.CI2, *p.Q3)...)
		cs = append(cs, rsSeg(p.CEnd, *p.Q4))
		return cs

	case FamilyTTT:
		cs := hcEntrySeg(p.CStart, *p.Q1)
		cs = append(cs, ccSeg(*p.CI1, *p.Q4)...)
		cs = append(cs, hcExitSeg(p.CEnd, *p.Q4)...)
		return cs

	case FamilyTcST:
		cs := hcEntrySeg(p.CStart, *p.Q2)
		cs = append(cs, straightSeg(*p.Q2, *p.Q3, p.CStart.Forward))
		cs = append(cs, hcExitSeg(p.CEnd, *p.Q3)...)
		return cs

	case FamilyTScT:
		cs := hcEntrySeg(p.CStart, *p.Q2)
		cs = append(cs, straightSeg(*p.Q2, *p.Q3, p.CStart.Forward))
		cs = append(cs, hcExitSeg(p.CEnd, *p.Q3)...)
		return cs

	case FamilyTcScT:
		cs := []Control{rsSeg(p.CStart, *p.Q1)}
		cs = append(cs, straightSeg(*p.Q1, *p.Q2, p.CStart.Forward))
		cs = append(cs, rsSeg(p.CEnd, *p.Q2))
		return cs

	default:
		return nil
	}
}
