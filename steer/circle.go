package steer

import (
	"math"

	"honnef.co/go/curve"

	"github.com/Aand1/steering-functions/internal/geom2"
)

// Circle is a tangency candidate: a turning maneuver anchored at a start
// configuration, with a signed curvature given by Left and a driving
// direction given by Forward. Regular is carried on every circle, but
// every circle this package builds — the Driver's starting/ending circles
// and the families' intermediate pivots alike — sets it to true, and no
// calculation reads it.
type Circle struct {
	Center        curve.Vec2
	Left, Forward bool
	Regular       bool
	Param         *CircleParam
	Start         Configuration
}

// newCircle derives a Circle's center from its start configuration, sign,
// and CircleParam. The center depends only on Left (the sign of kappa,
// not the direction of travel): right turns mirror the canonical
// left-turning clothoid offset across the heading axis.
func newCircle(start Configuration, left, forward, regular bool, param *CircleParam) Circle {
	dy := param.DeltaY
	if !left {
		dy = -dy
	}
	center := geom2.Vec2FrameChange(curve.Vec(start.X, start.Y), start.Theta, curve.Vec(param.DeltaX, dy))
	return Circle{
		Center:  center,
		Left:    left,
		Forward: forward,
		Regular: regular,
		Param:   param,
		Start:   start,
	}
}

// Kappa is the signed curvature of the circle's bounded-curvature arc.
func (c Circle) Kappa() float64 {
	if c.Left {
		return c.Param.KappaMax
	}
	return -c.Param.KappaMax
}

// deflection returns the heading change in [0, 2π) swept from c.Start to
// q in c's turning direction.
//
// This is deliberately a heading comparison, not the angle q and c.Start
// subtend at c.Center: for an rs circle (or an rs-typed pivot) c.Start
// lies on the circle, where the two agree, because moving along the arc
// changes heading at the same rate it sweeps the center angle. For an
// hc/cc circle, c.Start is the clothoid's off-circle entry point — it is
// not at distance Radius from Center — so the center-subtended angle
// does not correspond to any turn the vehicle actually makes. Heading
// is well-defined at c.Start regardless, and it's heading change that
// hcTurnLength/ccTurnLength and the matching control emitters need.
func (c Circle) deflection(q Configuration) float64 {
	if c.Left {
		return geom2.NormalizeAngle(q.Theta - c.Start.Theta)
	}
	return geom2.NormalizeAngle(c.Start.Theta - q.Theta)
}

// onCircle reports whether q lies on c within epsilon.
func (c Circle) onCircle(q Configuration) bool {
	return geom2.Eq(geom2.Dist(q.X, q.Y, c.Center.X, c.Center.Y), c.Param.Radius, epsilon) &&
		geom2.Eq(q.Kappa, c.Kappa(), epsilon)
}

// configurationAt returns the configuration reached after sweeping
// deflection theta around c from c.Start, with curvature kappa.
func (c Circle) configurationAt(theta, kappa float64) Configuration {
	startAngle := math.Atan2(c.Start.Y-c.Center.Y, c.Start.X-c.Center.X)
	var angle float64
	var heading float64
	if c.Left {
		angle = startAngle + theta
		heading = c.Start.Theta + theta
	} else {
		angle = startAngle - theta
		heading = c.Start.Theta - theta
	}
	x := c.Center.X + c.Param.Radius*math.Cos(angle)
	y := c.Center.Y + c.Param.Radius*math.Sin(angle)
	return Configuration{X: x, Y: y, Theta: geom2.NormalizeAngle(heading), Kappa: kappa}
}
