package steer

import (
	"math"
	"testing"
)

//region Configuration

func TestToConfiguration(t *testing.T) {
	t.Log("Testing State to Configuration conversion...")
	s := State{X: 1, Y: 2, Theta: 3 * math.Pi, Kappa: 0.5, D: 1}
	c := toConfiguration(s)
	if c.X != 1 || c.Y != 2 || c.Kappa != 0.5 {
		t.Errorf("expected X=1 Y=2 Kappa=0.5, got %+v", c)
	}
	if c.Theta < 0 || c.Theta >= 2*math.Pi {
		t.Errorf("expected normalized theta in [0, 2π), got %f", c.Theta)
	}
}

func TestConfigurationEqual(t *testing.T) {
	t.Log("Testing Configuration equality within tolerance...")
	a := Configuration{X: 0, Y: 0, Theta: 0, Kappa: 0}
	b := Configuration{X: 1e-9, Y: -1e-9, Theta: 1e-9, Kappa: 0}
	if !a.equal(b, epsilon) {
		t.Errorf("expected %+v to equal %+v within epsilon", a, b)
	}
	c := Configuration{X: 1, Y: 0, Theta: 0, Kappa: 0}
	if a.equal(c, epsilon) {
		t.Errorf("expected %+v not to equal %+v", a, c)
	}
}

func TestDistance(t *testing.T) {
	t.Log("Testing Configuration distance...")
	a := Configuration{X: 0, Y: 0}
	b := Configuration{X: 3, Y: 4}
	if d := distance(a, b); d != 5 {
		t.Errorf("expected 5, got %f", d)
	}
}

//endregion
