package steer

import (
	"math"
	"testing"
)

//region CircleParam

func TestClothoidLength(t *testing.T) {
	t.Log("Testing clothoid length formula...")
	if l := clothoidLength(2, 4); l != 0.5 {
		t.Errorf("expected 0.5, got %f", l)
	}
}

func TestNewHCCircleParam(t *testing.T) {
	t.Log("Testing finite-sigma CircleParam construction...")
	p := newHCCircleParam(1.0, 1.0)
	if p.Radius != 1.0 {
		t.Errorf("expected Radius=1, got %f", p.Radius)
	}
	if p.Mu <= 0 || p.Mu >= math.Pi/2 {
		t.Errorf("expected Mu in (0, π/2), got %f", p.Mu)
	}
	if s, c := math.Sincos(p.Mu); !approxEqual(s, p.SinMu) || !approxEqual(c, p.CosMu) {
		t.Errorf("SinMu/CosMu inconsistent with Mu: got sin=%f cos=%f, want sin=%f cos=%f", p.SinMu, p.CosMu, s, c)
	}
}

func TestNewRSCircleParam(t *testing.T) {
	t.Log("Testing sigma=∞ CircleParam construction...")
	p := newRSCircleParam(2.0)
	if p.Radius != 0.5 {
		t.Errorf("expected Radius=0.5, got %f", p.Radius)
	}
	if p.Mu != 0 || p.DeltaX != 0 || p.DeltaY != p.Radius {
		t.Errorf("expected Mu=0, DeltaX=0, DeltaY=Radius; got Mu=%f DeltaX=%f DeltaY=%f", p.Mu, p.DeltaX, p.DeltaY)
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

//endregion
