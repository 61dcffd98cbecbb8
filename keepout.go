package geom

import "math"

// Keepout treats zone as an exclusion area and returns the parts of
// target lying outside it. A target fully inside the zone yields an
// empty list; a target fully outside comes back intact. Otherwise the
// target's outline is cut at the zone boundary and the pieces outside
// the zone are returned.
func Keepout(zone ClosedShape, target Shape, opts ...Option) []Shape {
	o := applyOptions(opts)
	if kept, done := keepoutBypass(zone, target, o.tol); done {
		return kept
	}
	h := intersectShapes(target, zone, false, o)
	if h.cutsPerformed[0] == 0 && len(h.intersections) == 0 {
		if len(h.insideOther[0]) > 0 && h.insideOther[0][0] {
			return nil
		}
		return []Shape{target}
	}
	var kept []Shape
	for i, inside := range h.insideOther[0] {
		if !inside {
			kept = append(kept, h.atoms[0][i])
		}
	}
	return kept
}

// keepoutBypass short-circuits the common case of an axis-aligned
// rectangular zone against a line, arc or circle entirely to one side
// of it. done is false when the cheap tests are inconclusive and the
// full intersection pipeline has to run.
func keepoutBypass(zone ClosedShape, target Shape, tol float64) (kept []Shape, done bool) {
	rect, ok := zone.(*Rectangle)
	if !ok {
		return nil, false
	}
	bb := rect.BBox()
	switch t := target.(type) {
	case *Line:
		left := math.Min(t.Start.X, t.End.X)
		right := math.Max(t.Start.X, t.End.X)
		top := math.Min(t.Start.Y, t.End.Y)
		bottom := math.Max(t.Start.Y, t.End.Y)
		if bb.Left()+tol >= right || bb.Right()-tol <= left ||
			bb.Top()+tol >= bottom || bb.Bottom()-tol <= top {
			return []Shape{target}, true
		}
	case *Arc:
		if circleOutsideBBox(t.Center(), t.Radius(), bb, tol) {
			return []Shape{target}, true
		}
	case *Circle:
		if circleOutsideBBox(t.Center, t.Radius, bb, tol) {
			return []Shape{target}, true
		}
	}
	return nil, false
}

// circleOutsideBBox reports whether the box lies entirely to one side
// of the circle's bounding square.
func circleOutsideBBox(center Vector2D, radius float64, bb BoundingBox, tol float64) bool {
	return bb.Left()+tol >= center.X+radius ||
		bb.Right()-tol <= center.X-radius ||
		bb.Top()+tol >= center.Y+radius ||
		bb.Bottom()-tol <= center.Y-radius
}
