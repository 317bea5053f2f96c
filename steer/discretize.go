package steer

import (
	"math"

	"github.com/Aand1/steering-functions/internal/geom2"
)

// defaultStep is the fallback sampling interval when a caller supplies a
// non-positive step; internal/config's Params.Discretization is the
// normal source of this value.
const defaultStep = 0.1

// Discretize forward-integrates a control sequence into a dense sequence
// of (x, y, θ, κ, d) samples at approximately step arc length apart,
// starting from s1. It plays the same role as the teacher's
// Path.Sample/SampleMany pair: closed-form per-segment stepping for
// constant-curvature and straight segments, the same style as
// dubins.Segment, generalized with a numerical clothoid integral for the
// sharpness-bounded segments the teacher's Dubins primitives don't have.
func Discretize(s1 State, controls []Control, step float64) []State {
	samples := []State{s1}
	if step <= 0 {
		step = defaultStep
	}
	cur := s1
	for _, ctrl := range controls {
		cur.Kappa = ctrl.Kappa0
		total := ctrl.DeltaS
		if math.Abs(total) < epsilon {
			continue
		}
		traveled := 0.0
		for math.Abs(traveled) < math.Abs(total)-epsilon {
			remaining := math.Abs(total) - math.Abs(traveled)
			du := step
			if du > remaining {
				du = remaining
			}
			if total < 0 {
				du = -du
			}
			cur = stepControl(cur, ctrl.Sigma, du)
			traveled += du
			samples = append(samples, cur)
		}
	}
	return samples
}

// stepControl advances state by signed arc length du along a segment of
// curvature rate sigma, using state.Kappa as the curvature at the start of
// this step. Straight and constant-curvature steps use the closed form;
// clothoid steps use the numerical integral.
func stepControl(state State, sigma, du float64) State {
	if math.Abs(sigma) < epsilon {
		return stepArc(state, state.Kappa, du)
	}
	return stepClothoid(state, state.Kappa, sigma, du)
}

func stepArc(state State, kappa float64, du float64) State {
	d := 1.0
	if du < 0 {
		d = -1.0
	}
	if math.Abs(kappa) < epsilon {
		return State{
			X:     state.X + math.Cos(state.Theta)*du,
			Y:     state.Y + math.Sin(state.Theta)*du,
			Theta: state.Theta,
			Kappa: 0,
			D:     d,
		}
	}
	theta1 := state.Theta + kappa*du
	return State{
		X:     state.X + (math.Sin(theta1)-math.Sin(state.Theta))/kappa,
		Y:     state.Y - (math.Cos(theta1)-math.Cos(state.Theta))/kappa,
		Theta: geom2.NormalizeAngle(theta1),
		Kappa: kappa,
		D:     d,
	}
}

func stepClothoid(state State, kappa, sigma, du float64) State {
	d := 1.0
	if du < 0 {
		d = -1.0
	}
	dx, dy := clothoidOffset(state.Theta, kappa, sigma, du)
	theta1 := state.Theta + kappa*du + sigma*du*du/2
	return State{
		X:     state.X + dx,
		Y:     state.Y + dy,
		Theta: geom2.NormalizeAngle(theta1),
		Kappa: kappa + sigma*du,
		D:     d,
	}
}
