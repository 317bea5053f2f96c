// Package geom2 wraps honnef.co/go/curve's 2-D affine transform for the
// one operation the steering core needs repeatedly: carrying a local
// offset (dx, dy) computed in a circle's own frame into the global frame
// anchored at (xc, yc, theta). This is the Go equivalent of the
// steering_functions C++ source's global_frame_change helper.
package geom2

import (
	"math"

	"honnef.co/go/curve"
)

// FrameChange rotates (dx, dy) by theta and translates it by (xc, yc),
// returning the resulting global-frame point.
func FrameChange(xc, yc, theta, dx, dy float64) (x, y float64) {
	aff := curve.Translate(curve.Vec(xc, yc)).PreRotate(theta)
	p := curve.Pt(dx, dy).Transform(aff)
	return p.X, p.Y
}

// Vec2FrameChange is the curve.Vec2-typed equivalent of FrameChange.
func Vec2FrameChange(center curve.Vec2, theta float64, local curve.Vec2) curve.Vec2 {
	x, y := FrameChange(center.X, center.Y, theta, local.X, local.Y)
	return curve.Vec2{X: x, Y: y}
}

// TwoPi is the 0..2π wraparound period used by angle normalization.
const TwoPi = 2 * math.Pi

// NormalizeAngle wraps theta into [0, 2π).
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, TwoPi)
	if theta < 0 {
		theta += TwoPi
	}
	return theta
}

// SignedAngle wraps theta into (-π, π].
func SignedAngle(theta float64) float64 {
	theta = NormalizeAngle(theta)
	if theta > math.Pi {
		theta -= TwoPi
	}
	return theta
}

// Dist is the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Eq reports whether a and b differ by no more than epsilon.
func Eq(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// Geq reports whether a is greater than or equal to b within epsilon.
func Geq(a, b, epsilon float64) bool {
	return a-b > -epsilon
}

// Leq reports whether a is less than or equal to b within epsilon.
func Leq(a, b, epsilon float64) bool {
	return b-a > -epsilon
}
