package steer

import (
	"math"

	"honnef.co/go/curve"

	"github.com/Aand1/steering-functions/internal/geom2"
)

// twoCircleIntersections returns the (up to) two points equidistant r from
// both p1 and p2: the intersections of two circles of radius r centered
// at p1 and p2. Every intermediate circle this package builds has the
// same bounded-curvature radius as every other circle in the state space,
// so "place a new circle of radius R externally tangent to both c1 and
// c2" reduces to this one routine with r = 2R. ok is false when the
// circles of radius r don't intersect (r too small for d, or d == 0).
func twoCircleIntersections(p1, p2 curve.Vec2, r float64) (a, b curve.Vec2, ok bool) {
	d := p1.Sub(p2).Hypot()
	if d < epsilon || d > 2*r+epsilon {
		return curve.Vec2{}, curve.Vec2{}, false
	}
	mid := p1.Add(p2).Mul(0.5)
	h2 := r*r - (d/2)*(d/2)
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	dir := p2.Sub(p1).Div(d)
	perp := curve.Vec2{X: -dir.Y, Y: dir.X}
	a = mid.Add(perp.Mul(h))
	b = mid.Sub(perp.Mul(h))
	return a, b, true
}

// tangentHeading is the heading of a circle's tangent line at point,
// assumed to lie on a circle of the given turning sense centered at
// center. Left turns have the tangent rotated +90° from the outward
// radial direction, right turns -90°.
func tangentHeading(center, point curve.Vec2, left bool) float64 {
	radial := math.Atan2(point.Y-center.Y, point.X-center.X)
	if left {
		return geom2.NormalizeAngle(radial + math.Pi/2)
	}
	return geom2.NormalizeAngle(radial - math.Pi/2)
}

// configurationOn builds the Configuration for a point that lies on a
// circle of the given turning sense and curvature, anchoring its heading
// to the circle's tangent direction there.
func configurationOn(center, point curve.Vec2, left bool, kappa float64) Configuration {
	return Configuration{
		X:     point.X,
		Y:     point.Y,
		Theta: tangentHeading(center, point, left),
		Kappa: kappa,
	}
}

// externalTangentPoint returns the point on a circle of radius r centered
// at center where the tangent line parallel to (and offset perpendicular
// from) the direction dir touches — the point used to build the straight
// segment of an external-tangent (same-side) family. side selects which
// perpendicular (+1 or -1).
func externalTangentPoint(center curve.Vec2, dir curve.Vec2, r float64, side float64) curve.Vec2 {
	perp := curve.Vec2{X: -dir.Y, Y: dir.X}.Mul(side)
	return center.Add(perp.Mul(r))
}

// internalTangentPoints returns the pair of points where the two
// crossing (internal) common tangents of two equal circles of radius r
// touch circle 1 and circle 2 respectively, given centerline direction
// dir (unit vector from c1 to c2) and the separation d. side selects
// which of the two crossing tangents (+1 or -1). Requires d >= 2r.
func internalTangentPoints(c1, c2 curve.Vec2, dir curve.Vec2, d, r float64, side float64) (p1, p2 curve.Vec2, ok bool) {
	if d < 2*r-epsilon {
		return curve.Vec2{}, curve.Vec2{}, false
	}
	ratio := 2 * r / d
	if ratio > 1 {
		ratio = 1
	}
	phi := math.Acos(ratio)
	dirAngle := math.Atan2(dir.Y, dir.X)
	a1 := dirAngle + side*phi
	a2 := a1 + math.Pi
	p1 = c1.Add(curve.Vec(math.Cos(a1), math.Sin(a1)).Mul(r))
	p2 = c2.Add(curve.Vec(math.Cos(a2), math.Sin(a2)).Mul(r))
	return p1, p2, true
}
