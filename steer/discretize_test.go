package steer

import (
	"math"
	"testing"
)

//region Discretizer

func TestDiscretizeStraightControl(t *testing.T) {
	t.Log("Testing discretization of a single straight control...")
	s1 := State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}
	controls := []Control{{DeltaS: 5, Kappa0: 0, Sigma: 0}}
	samples := Discretize(s1, controls, 1.0)
	last := samples[len(samples)-1]
	if math.Abs(last.X-5) > 1e-6 || math.Abs(last.Y) > 1e-6 || math.Abs(last.Theta) > 1e-6 {
		t.Errorf("expected end pose (5, 0, 0), got (%f, %f, %f)", last.X, last.Y, last.Theta)
	}
}

func TestDiscretizeBackwardStraightControl(t *testing.T) {
	t.Log("Testing discretization of a backward straight control...")
	s1 := State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: -1}
	controls := []Control{{DeltaS: -5, Kappa0: 0, Sigma: 0}}
	samples := Discretize(s1, controls, 1.0)
	last := samples[len(samples)-1]
	if math.Abs(last.X+5) > 1e-6 || last.D != -1 {
		t.Errorf("expected end pose (-5, 0) with D=-1, got (%f, %f) D=%f", last.X, last.Y, last.D)
	}
}

func TestDiscretizeQuarterCircle(t *testing.T) {
	t.Log("Testing discretization of a quarter-turn constant-curvature control...")
	s1 := State{X: 0, Y: 0, Theta: 0, Kappa: 1, D: 1}
	controls := []Control{{DeltaS: math.Pi / 2, Kappa0: 1, Sigma: 0}}
	samples := Discretize(s1, controls, 0.05)
	last := samples[len(samples)-1]
	if math.Abs(last.X-1) > 1e-3 || math.Abs(last.Y-1) > 1e-3 || math.Abs(last.Theta-math.Pi/2) > 1e-3 {
		t.Errorf("expected end pose near (1, 1, π/2), got (%f, %f, %f)", last.X, last.Y, last.Theta)
	}
}

func TestDiscretizeEmptyControls(t *testing.T) {
	t.Log("Testing discretization of an empty control list...")
	s1 := State{X: 1, Y: 2, Theta: 0.5, Kappa: 0, D: 1}
	samples := Discretize(s1, nil, 0.1)
	if len(samples) != 1 || samples[0] != s1 {
		t.Errorf("expected the single input state back, got %+v", samples)
	}
}

//endregion
