package steer

import (
	"math"
	"testing"
)

//region StateSpace construction

func TestNewStateSpaceRejectsNonPositiveKappaMax(t *testing.T) {
	t.Log("Testing that NewStateSpace rejects kappa_max <= 0...")
	if _, err := NewStateSpace(0, 1, 0.1); err == nil {
		t.Error("expected an error for kappa_max=0, got nil")
	}
	if _, err := NewStateSpace(-1, 1, 0.1); err == nil {
		t.Error("expected an error for kappa_max=-1, got nil")
	}
}

func TestNewStateSpaceRejectsNonPositiveSigmaMax(t *testing.T) {
	t.Log("Testing that NewStateSpace rejects sigma_max <= 0...")
	if _, err := NewStateSpace(1, 0, 0.1); err == nil {
		t.Error("expected an error for sigma_max=0, got nil")
	}
}

func TestNewStateSpaceRejectsNonPositiveDiscretization(t *testing.T) {
	t.Log("Testing that NewStateSpace rejects discretization <= 0...")
	if _, err := NewStateSpace(1, 1, 0); err == nil {
		t.Error("expected an error for discretization=0, got nil")
	}
}

func TestNewStateSpaceAccepts(t *testing.T) {
	t.Log("Testing that NewStateSpace accepts well-formed parameters...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ss.KappaMax != 1 || ss.SigmaMax != 1 {
		t.Errorf("expected KappaMax=1 SigmaMax=1, got %f %f", ss.KappaMax, ss.SigmaMax)
	}
}

//endregion

//region Testable properties

// endPose forward-integrates controls from s1 at a fine step and returns
// the final sample, the same way a caller reproducing get_controls would.
func endPose(s1 State, controls []Control) State {
	samples := Discretize(s1, controls, 0.001)
	return samples[len(samples)-1]
}

func TestIdentity(t *testing.T) {
	t.Log("Testing get_distance(s, s) = 0 and get_controls(s, s) is empty...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := State{X: 1.5, Y: -2.5, Theta: 0.7, Kappa: 0, D: 1}
	if d := ss.GetDistance(s, s); d != 0 {
		t.Errorf("expected get_distance(s, s) = 0, got %f", d)
	}
	if cs := ss.GetControls(s, s); len(cs) != 0 {
		t.Errorf("expected get_controls(s, s) to be empty, got %v", cs)
	}
}

func TestScenarioStraightLine(t *testing.T) {
	t.Log("Testing s1=(0,0,0,0,0) -> s2=(5,0,0,0,0): straight-only solution...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s1 := State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}
	s2 := State{X: 5, Y: 0, Theta: 0, Kappa: 0, D: 1}

	if d := ss.GetDistance(s1, s2); math.Abs(d-5) > 1e-5 {
		t.Errorf("expected length 5, got %f", d)
	}
	cs := ss.GetControls(s1, s2)
	if len(cs) != 1 {
		t.Fatalf("expected exactly one control, got %d: %v", len(cs), cs)
	}
	if math.Abs(cs[0].DeltaS-5) > 1e-9 || cs[0].Kappa0 != 0 || cs[0].Sigma != 0 {
		t.Errorf("expected {DeltaS:5 Kappa0:0 Sigma:0}, got %+v", cs[0])
	}
	end := endPose(s1, cs)
	if math.Abs(end.X-5) > 1e-5 || math.Abs(end.Y) > 1e-5 || math.Abs(end.Theta) > 1e-5 {
		t.Errorf("expected end pose (5, 0, 0), got (%f, %f, %f)", end.X, end.Y, end.Theta)
	}
}

func TestScenarioBackwardStraightLine(t *testing.T) {
	t.Log("Testing s1=(0,0,0,0,0) -> s2=(-5,0,0,0,0): backward straight...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s1 := State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}
	s2 := State{X: -5, Y: 0, Theta: 0, Kappa: 0, D: -1}

	cs := ss.GetControls(s1, s2)
	if len(cs) != 1 {
		t.Fatalf("expected exactly one control, got %d: %v", len(cs), cs)
	}
	if cs[0].DeltaS >= 0 {
		t.Errorf("expected a negative Δs for a backward run, got %f", cs[0].DeltaS)
	}
	end := endPose(s1, cs)
	if math.Abs(end.X+5) > 1e-5 || math.Abs(end.Y) > 1e-5 || end.D != -1 {
		t.Errorf("expected end pose (-5, 0) with D=-1, got (%f, %f) D=%f", end.X, end.Y, end.D)
	}
}

func TestScenarioTT(t *testing.T) {
	t.Log("Testing s1=(0,0,0,0,0) -> s2=(0,2,π,0,0): TT-family end-pose reproduction...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s1 := State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}
	s2 := State{X: 0, Y: 2, Theta: math.Pi, Kappa: 0, D: 1}

	cs := ss.GetControls(s1, s2)
	if len(cs) == 0 {
		t.Fatal("expected at least one control")
	}
	end := endPose(s1, cs)
	if math.Abs(end.X-s2.X) > 1e-5 || math.Abs(end.Y-s2.Y) > 1e-5 ||
		math.Abs(geom2SignedAngleDiff(end.Theta, s2.Theta)) > 1e-5 {
		t.Errorf("expected end pose (%f, %f, %f), got (%f, %f, %f)", s2.X, s2.Y, s2.Theta, end.X, end.Y, end.Theta)
	}
}

func TestScenarioHybridFamily(t *testing.T) {
	t.Log("Testing s1=(0,0,0,0,0) -> s2=(3,3,π/2,0,0): hybrid family, curvature-continuous joins...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s1 := State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}
	s2 := State{X: 3, Y: 3, Theta: math.Pi / 2, Kappa: 0, D: 1}

	cs := ss.GetControls(s1, s2)
	if len(cs) == 0 {
		t.Fatal("expected at least one control")
	}
	assertCurvatureContinuous(t, cs)
	end := endPose(s1, cs)
	if math.Abs(end.X-s2.X) > 1e-5 || math.Abs(end.Y-s2.Y) > 1e-5 ||
		math.Abs(geom2SignedAngleDiff(end.Theta, s2.Theta)) > 1e-5 {
		t.Errorf("expected end pose (%f, %f, %f), got (%f, %f, %f)", s2.X, s2.Y, s2.Theta, end.X, end.Y, end.Theta)
	}
}

func TestStartCirclesRespectCurvatureContinuity(t *testing.T) {
	t.Log("Testing that the curvature-continuity filter excludes contradicting circles...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := Configuration{X: 0, Y: 0, Theta: 0, Kappa: 0.5}
	circles := ss.startCircles(s)
	if len(circles) != 2 {
		t.Fatalf("expected exactly 2 surviving circles for kappa>0, got %d", len(circles))
	}
	for _, c := range circles {
		if !c.Left {
			t.Errorf("expected every surviving circle to turn left for kappa>0, got Left=%v", c.Left)
		}
	}
}

// TestScenarioCurvatureFilterAdmitsASolution exercises the boundary case
// where both endpoints already carry nonzero curvature: the Driver's
// curvature-continuity filter must still narrow each endpoint from four
// candidate circles to two, and a finite-length path must still be found.
// Exact end-curvature reproduction for a non-extremal boundary kappa (here
// 0.5, versus kappa_max=1) is a known limitation — see DESIGN.md — so this
// case is checked only for filter behavior and solution existence, not
// end-pose/end-curvature equality.
func TestScenarioCurvatureFilterAdmitsASolution(t *testing.T) {
	t.Log("Testing s1=(0,0,0,0.5,0) -> s2=(4,0,0,-0.5,0): filter narrows to 2+2 circles, a solution exists...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	startCircles := ss.startCircles(Configuration{X: 0, Y: 0, Theta: 0, Kappa: 0.5})
	endCircles := ss.startCircles(Configuration{X: 4, Y: 0, Theta: 0, Kappa: -0.5})
	if len(startCircles) != 2 {
		t.Errorf("expected exactly 2 surviving start circles, got %d", len(startCircles))
	}
	if len(endCircles) != 2 {
		t.Errorf("expected exactly 2 surviving end circles, got %d", len(endCircles))
	}

	s1 := State{X: 0, Y: 0, Theta: 0, Kappa: 0.5, D: 1}
	s2 := State{X: 4, Y: 0, Theta: 0, Kappa: -0.5, D: 1}
	d := ss.GetDistance(s1, s2)
	if math.IsInf(d, 1) || math.IsNaN(d) {
		t.Errorf("expected a finite solution length, got %f", d)
	}
}

func TestTriangleLowerBound(t *testing.T) {
	t.Log("Testing get_distance(s1, s2) >= the straight-line distance between their positions...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct{ s1, s2 State }{
		{State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}, State{X: 5, Y: 0, Theta: 0, Kappa: 0, D: 1}},
		{State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}, State{X: 0, Y: 2, Theta: math.Pi, Kappa: 0, D: 1}},
		{State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}, State{X: 3, Y: 3, Theta: math.Pi / 2, Kappa: 0, D: 1}},
		{State{X: 0, Y: 0, Theta: math.Pi / 4, Kappa: 0, D: 1}, State{X: -4, Y: 6, Theta: math.Pi, Kappa: 0, D: 1}},
	}
	for _, tc := range cases {
		d := ss.GetDistance(tc.s1, tc.s2)
		straight := math.Hypot(tc.s2.X-tc.s1.X, tc.s2.Y-tc.s1.Y)
		if d < straight-1e-5 {
			t.Errorf("get_distance(%v, %v) = %f below straight-line distance %f", tc.s1, tc.s2, d, straight)
		}
	}
}

// geom2SignedAngleDiff wraps the difference a-b into (-π, π], used to
// compare headings up to the 2π wraparound.
func geom2SignedAngleDiff(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// assertCurvatureContinuous checks that every adjacent pair of controls
// agrees on curvature at the boundary: the end curvature of control i
// (kappa0 + sigma*deltaS) equals the start curvature of control i+1.
func assertCurvatureContinuous(t *testing.T, cs []Control) {
	t.Helper()
	for i := 0; i+1 < len(cs); i++ {
		end := cs[i].Kappa0 + cs[i].Sigma*cs[i].DeltaS
		next := cs[i+1].Kappa0
		if math.Abs(end-next) > 1e-6 {
			t.Errorf("control %d ends at kappa=%f but control %d starts at kappa=%f", i, end, i+1, next)
		}
	}
}

func TestCurvatureContinuityAcrossScenarios(t *testing.T) {
	t.Log("Testing curvature continuity at every join across several start/goal pairs...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct{ s1, s2 State }{
		{State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}, State{X: 5, Y: 0, Theta: 0, Kappa: 0, D: 1}},
		{State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}, State{X: 0, Y: 2, Theta: math.Pi, Kappa: 0, D: 1}},
		{State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}, State{X: 3, Y: 3, Theta: math.Pi / 2, Kappa: 0, D: 1}},
		{State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}, State{X: -5, Y: 0, Theta: 0, Kappa: 0, D: -1}},
	}
	for _, tc := range cases {
		assertCurvatureContinuous(t, ss.GetControls(tc.s1, tc.s2))
	}
}

func TestCurvatureBound(t *testing.T) {
	t.Log("Testing |kappa0| <= kappa_max and |kappa0 + sigma*deltaS| <= kappa_max for every control...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct{ s1, s2 State }{
		{State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}, State{X: 0, Y: 2, Theta: math.Pi, Kappa: 0, D: 1}},
		{State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}, State{X: 3, Y: 3, Theta: math.Pi / 2, Kappa: 0, D: 1}},
	}
	for _, tc := range cases {
		for _, c := range ss.GetControls(tc.s1, tc.s2) {
			if math.Abs(c.Kappa0) > ss.KappaMax+1e-9 {
				t.Errorf("control %+v starts above kappa_max=%f", c, ss.KappaMax)
			}
			end := c.Kappa0 + c.Sigma*c.DeltaS
			if math.Abs(end) > ss.KappaMax+1e-9 {
				t.Errorf("control %+v ends above kappa_max=%f (end=%f)", c, ss.KappaMax, end)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	t.Log("Testing that repeated calls on identical inputs yield byte-identical controls...")
	ss, err := NewStateSpace(1, 1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s1 := State{X: 0, Y: 0, Theta: 0, Kappa: 0, D: 1}
	s2 := State{X: 3, Y: 3, Theta: math.Pi / 2, Kappa: 0, D: 1}

	first := ss.GetControls(s1, s2)
	second := ss.GetControls(s1, s2)
	if len(first) != len(second) {
		t.Fatalf("expected matching lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("control %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
	if d1, d2 := ss.GetDistance(s1, s2), ss.GetDistance(s1, s2); d1 != d2 {
		t.Errorf("expected get_distance to be deterministic, got %f and %f", d1, d2)
	}
}

//endregion
