package geometry

import (
	"github.com/playfulmath/uniformity/engine/math"
)

// True when the segment projects to (nearly) a single point in x/y,
// i.e. it is vertical in z or zero length.
func flatInXY(a, b math.Vec3) bool {
	return math.Kabs(a.X-b.X) < math.K_GEOMETRY_EPSILON &&
		math.Kabs(a.Y-b.Y) < math.K_GEOMETRY_EPSILON
}

/**
 * @brief Tests whether the segments (a,b) and (c,d) cross within their
 * bounds, working in the x/y projection and checking z for agreement
 * afterwards.
 *
 * The general case solves the standard 2-D parametric line intersection
 * for parameters t on (a,b) and u on (c,d). When one segment is
 * degenerate in x/y the parametric form has no solution, so that branch
 * instead projects the degenerate segment's point onto the other
 * segment's parameter range along each coordinate and requires the two
 * ratios to match.
 *
 * An x/y hit only counts when the two segments' z-values at their
 * respective parameters agree within tolerance; the returned point is
 * the interpolation at the crossing.
 */
func segmentIntersection(a, b, c, d math.Vec3) (math.Vec3, bool) {
	if flatInXY(a, b) && flatInXY(c, d) {
		return math.Vec3{}, false
	}

	var tx, ty float32
	degenerate := 0
	if flatInXY(a, b) {
		tx = (a.X - c.X) / (d.X - c.X)
		ty = (a.Y - c.Y) / (d.Y - c.Y)
		degenerate = 1
	}
	if flatInXY(c, d) {
		tx = (c.X - a.X) / (b.X - a.X)
		ty = (c.Y - a.Y) / (b.Y - a.Y)
		degenerate = 2
	}
	if degenerate > 0 {
		if tx < 0 || tx > 1 {
			return math.Vec3{}, false
		}
		if ty < 0 || ty > 1 {
			return math.Vec3{}, false
		}
		// The two coordinate ratios describe the same point only if
		// they match. A NaN ratio (a 0/0 projection, e.g. a z-going
		// segment sharing its x with the other segment) never matches.
		if math.Kabs(tx-ty) < math.K_GEOMETRY_EPSILON {
			tAvg := (tx + ty) / 2
			if degenerate == 1 {
				return c.Lerp(d, tAvg), true
			}
			return a.Lerp(b, tAvg), true
		}
		return math.Vec3{}, false
	}

	denom := (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	if math.Kabs(denom) < math.K_GEOMETRY_EPSILON {
		// Parallel in the projection.
		return math.Vec3{}, false
	}
	t := ((a.X-c.X)*(c.Y-d.Y) - (a.Y-c.Y)*(c.X-d.X)) / denom
	u := -((a.X-b.X)*(a.Y-c.Y) - (a.Y-b.Y)*(a.X-c.X)) / denom
	if t < 0 || t > 1 {
		return math.Vec3{}, false
	}
	if u < 0 || u > 1 {
		return math.Vec3{}, false
	}

	p1 := a.Lerp(b, t)
	p2 := c.Lerp(d, u)
	if math.Kabs(p1.Z-p2.Z) < math.K_GEOMETRY_EPSILON {
		return p1.Lerp(p2, 0.5), true
	}
	// The projections cross but the segments miss in z.
	return math.Vec3{}, false
}
