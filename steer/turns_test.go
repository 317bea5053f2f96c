package steer

import (
	"math"
	"testing"

	"github.com/Aand1/steering-functions/internal/geom2"
)

//region Turn length calculators

func TestRsTurnLength(t *testing.T) {
	t.Log("Testing pure-arc turn length...")
	param := newRSCircleParam(1.0)
	start := Configuration{X: 0, Y: 0, Theta: math.Pi / 2, Kappa: param.KappaMax}
	c := newCircle(start, true, true, true, param)
	q := c.configurationAt(math.Pi/2, param.KappaMax)
	if l := c.rsTurnLength(q); math.Abs(l-math.Pi/2) > 1e-9 {
		t.Errorf("expected arc length π/2 for unit radius, got %f", l)
	}
}

// turnAt builds the Configuration reached by sweeping heading theta
// around c from c.Start, for use directly against c.hcTurnLength/
// c.ccTurnLength — deflection is now a heading comparison (see
// circle.go), so q need not lie on c for these calculators to accept it.
func turnAt(c Circle, theta float64) Configuration {
	heading := c.Start.Theta + theta
	if !c.Left {
		heading = c.Start.Theta - theta
	}
	return Configuration{Theta: geom2.NormalizeAngle(heading), Kappa: c.Kappa()}
}

func TestHcTurnLengthContinuousAtMu(t *testing.T) {
	t.Log("Testing hc turn length continuity at theta=Mu...")
	param := newHCCircleParam(1.0, 1.0)
	start := Configuration{X: 0, Y: 0, Theta: 0, Kappa: 0}
	c := newCircle(start, true, true, true, param)

	below := c.hcTurnLength(turnAt(c, param.Mu-1e-7))
	above := c.hcTurnLength(turnAt(c, param.Mu+1e-7))
	if math.Abs(above-below) > 1e-5 {
		t.Errorf("expected hc length continuous across theta=Mu, got %f vs %f", below, above)
	}
	atMu := c.hcTurnLength(turnAt(c, param.Mu))
	want := clothoidLength(param.KappaMax, param.SigmaMax)
	if math.Abs(atMu-want) > 1e-9 {
		t.Errorf("expected hc length at theta=Mu to equal clothoid length %f, got %f", want, atMu)
	}
}

func TestCcTurnLengthContinuousAtTwoMu(t *testing.T) {
	t.Log("Testing cc turn length continuity at theta=2*Mu...")
	param := newHCCircleParam(1.0, 1.0)
	start := Configuration{X: 0, Y: 0, Theta: 0, Kappa: 0}
	c := newCircle(start, true, true, true, param)

	below := c.ccTurnLength(turnAt(c, 2*param.Mu-1e-7))
	above := c.ccTurnLength(turnAt(c, 2*param.Mu+1e-7))
	if math.Abs(above-below) > 1e-5 {
		t.Errorf("expected cc length continuous across theta=2*Mu, got %f vs %f", below, above)
	}
}

func TestCircleMethodsMatchFormulas(t *testing.T) {
	t.Log("Testing hcTurnLength against the isolated formula...")
	param := newHCCircleParam(1.0, 1.0)
	start := Configuration{X: 0, Y: 0, Theta: 0, Kappa: 0}
	c := newCircle(start, true, true, true, param)

	theta := 0.3
	q := turnAt(c, theta)
	got := c.hcTurnLength(q)
	var want float64
	if theta >= param.Mu {
		want = clothoidLength(param.KappaMax, param.SigmaMax) + param.Radius*(theta-param.Mu)
	} else {
		want = math.Sqrt(2 * theta / param.SigmaMax)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

//endregion
