package geom

import "math"

// atomicIntersectConfig controls how atomic shapes are intersected.
// The zero value computes plain segment intersections.
type atomicIntersectConfig struct {
	// excludeTangents drops tangent points (single touch points).
	excludeTangents bool
	// excludeEnds1 drops intersections on an end of the first shape.
	excludeEnds1 bool
	// excludeEnds2 drops intersections on an end of the second shape.
	excludeEnds2 bool
	// infiniteLine treats lines as infinitely long.
	infiniteLine bool
}

// intersectAtomicShapes intersects two atomic shapes (lines, arcs or
// circles) and returns the intersection points.
func intersectAtomicShapes(shape1, shape2 Shape, cfg atomicIntersectConfig, tol float64) []Vector2D {
	switch s1 := shape1.(type) {
	case *Line:
		switch s2 := shape2.(type) {
		case *Line:
			return intersectLines(s1, s2, cfg.excludeEnds1, cfg.excludeEnds2, cfg.infiniteLine, tol)
		case *Arc:
			return intersectArcWithLine(s2, s1, cfg.excludeTangents, cfg.excludeEnds2, cfg.excludeEnds1, cfg.infiniteLine, tol)
		case *Circle:
			return intersectCircleWithLine(s2, s1, cfg.excludeTangents, cfg.excludeEnds1, cfg.infiniteLine, tol)
		}
	case *Arc:
		switch s2 := shape2.(type) {
		case *Line:
			return intersectArcWithLine(s1, s2, cfg.excludeTangents, cfg.excludeEnds1, cfg.excludeEnds2, cfg.infiniteLine, tol)
		case *Arc:
			return intersectArcs(s1, s2, cfg.excludeTangents, cfg.excludeEnds1, cfg.excludeEnds2, cfg.infiniteLine, tol)
		case *Circle:
			return intersectArcWithCircle(s1, s2, cfg.excludeTangents, cfg.excludeEnds1, cfg.infiniteLine, tol)
		}
	case *Circle:
		switch s2 := shape2.(type) {
		case *Line:
			return intersectCircleWithLine(s1, s2, cfg.excludeTangents, cfg.excludeEnds2, cfg.infiniteLine, tol)
		case *Arc:
			return intersectArcWithCircle(s2, s1, cfg.excludeTangents, cfg.excludeEnds2, cfg.infiniteLine, tol)
		case *Circle:
			return intersectCircles(s1, s2, cfg.excludeTangents, tol)
		}
	}
	return nil
}

// intersectLines intersects two line segments using homogeneous
// coordinates. Parallel lines yield no intersection, coincident lines
// included.
func intersectLines(line1, line2 *Line, excludeEnds1, excludeEnds2, infinite bool, tol float64) []Vector2D {
	h1 := line1.ToHomogeneous()
	h2 := line2.ToHomogeneous()

	ipX := h1.Y*h2.Z - h1.Z*h2.Y
	ipY := h1.Z*h2.X - h1.X*h2.Z
	ipZ := h1.X*h2.Y - h1.Y*h2.X
	if math.Abs(ipZ) <= tol {
		return nil // parallel
	}
	pt := V(ipX/ipZ, ipY/ipZ)

	if infinite {
		return []Vector2D{pt}
	}
	if line1.IsPointOnSelfAccelerated(pt, excludeEnds1, tol) &&
		line2.IsPointOnSelfAccelerated(pt, excludeEnds2, tol) {
		return []Vector2D{pt}
	}
	return nil
}

// intersectCircles intersects two circles. Concentric circles have no
// discrete intersection points, except two zero-radius circles on the
// same center, which intersect in that center.
func intersectCircles(circle1, circle2 *Circle, excludeTangents bool, tol float64) []Vector2D {
	// Solved for circle1 on (0, 0) and circle2 on (d, 0); the results
	// are rotated and translated back at the end.
	r1, r2 := circle1.Radius, circle2.Radius
	d, phi := circle2.Center.Sub(circle1.Center).ToPolar()

	if r1+r2+tol < d {
		return nil // too far apart to touch
	}
	if d+tol < math.Abs(r1-r2) {
		return nil // one circle inside the other
	}

	var x, y float64
	if math.Abs(d) < tol {
		if math.Abs(r2) < tol && math.Abs(r1) < tol {
			x, y = 0, 0 // both zero radius: the common center
		} else {
			return nil // concentric
		}
	} else {
		x = (d*d - r2*r2 + r1*r1) / (2 * d)
		// Tangent circles touch at distance r1 from circle1's center.
		// Detecting this keeps the square root argument from going
		// negative and collapses two near-identical points into one.
		if math.Abs(math.Abs(x)-r1) < tol {
			y = 0
		} else {
			numerator := 4*d*d*r1*r1 - (d*d-r2*r2+r1*r1)*(d*d-r2*r2+r1*r1)
			y = math.Sqrt(numerator) / d
		}
	}

	signs := []float64{0}
	if y >= tol {
		signs = []float64{0.5, -0.5}
	}
	pts := make([]Vector2D, 0, len(signs))
	for _, s := range signs {
		pts = append(pts, V(x, s*y).Rotate(phi, V(0, 0)).Add(circle1.Center))
	}
	if len(pts) == 1 && excludeTangents {
		return nil
	}
	return pts
}

// intersectCircleWithLine intersects a circle with a line segment.
// Two intersection points whose midpoint lies on the circle within tol
// collapse to a single tangent point.
func intersectCircleWithLine(circle *Circle, line *Line, excludeTangents, excludeLineEnds, infinite bool, tol float64) []Vector2D {
	// Solved for the circle on (0, 0): only the line needs moving.
	lt := NewLine(line.Start.Sub(circle.Center), line.End.Sub(circle.Center))
	d := lt.End.Sub(lt.Start)
	dr := d.Norm()
	if dr < tol {
		// Zero-length line: it intersects when its point lies on the
		// circle border.
		if math.Abs(lt.Mid().Norm()-circle.Radius) <= tol {
			return []Vector2D{line.Start}
		}
		return nil
	}
	det := lt.Start.X*lt.End.Y - lt.End.X*lt.Start.Y
	dr2 := dr * dr
	discriminant := circle.Radius*circle.Radius*dr2 - det*det
	if discriminant < 0 {
		if math.Abs(discriminant) >= tol {
			return nil
		}
		discriminant = 0
	}
	sqrtDiscOverDr2 := math.Sqrt(discriminant) / dr2

	calcPoint := func(sign float64) Vector2D {
		return V(
			det*d.Y/dr2+sign*math.Copysign(1, d.Y)*d.X*sqrtDiscOverDr2,
			-det*d.X/dr2+sign*math.Abs(d.Y)*sqrtDiscOverDr2,
		).Add(circle.Center)
	}
	pt1 := calcPoint(1)
	pt2 := calcPoint(-1)

	// The two points count as a single tangent point when their
	// midpoint lies on the circle border.
	var pts []Vector2D
	mid := pt1.Add(pt2).Div(2)
	if math.Abs(mid.Sub(circle.Center).Norm()-circle.Radius) <= tol {
		pts = []Vector2D{mid}
	} else {
		pts = []Vector2D{pt1, pt2}
	}

	if excludeTangents && len(pts) == 1 {
		return nil
	}
	if !infinite {
		pts = filterOnLine(pts, line, excludeLineEnds, tol)
	}
	return pts
}

// intersectArcWithLine intersects an arc with a line segment. Points
// outside the arc's sweep are discarded even for infinite lines.
func intersectArcWithLine(arc *Arc, line *Line, excludeTangents, excludeArcEnds, excludeLineEnds, infinite bool, tol float64) []Vector2D {
	carrier := NewCircleFromArc(arc)
	pts := intersectCircleWithLine(carrier, line, excludeTangents, excludeLineEnds, infinite, tol)
	return filterOnArc(pts, arc, excludeArcEnds, tol)
}

// intersectArcWithCircle intersects an arc with a circle.
func intersectArcWithCircle(arc *Arc, circle *Circle, excludeTangents, excludeArcEnds, infinite bool, tol float64) []Vector2D {
	carrier := NewCircleFromArc(arc)
	pts := intersectCircles(circle, carrier, excludeTangents, tol)
	if !infinite {
		pts = filterOnArc(pts, arc, excludeArcEnds, tol)
	}
	return pts
}

// intersectArcs intersects two arcs.
func intersectArcs(arc1, arc2 *Arc, excludeTangents, excludeEnds1, excludeEnds2, infinite bool, tol float64) []Vector2D {
	carrier := NewCircleFromArc(arc1)
	pts := intersectArcWithCircle(arc2, carrier, excludeTangents, excludeEnds2, infinite, tol)
	if infinite {
		return pts
	}
	return filterOnArc(pts, arc1, excludeEnds1, tol)
}

// intersectRayWithLine intersects a line segment with a ray starting
// at rayStart and extending in the +y direction. An intersection on
// the segment's start point is skipped: it coincides with the end of
// the previous segment in a chain and would be counted twice.
func intersectRayWithLine(rayStart Vector2D, line *Line, tol float64) []Vector2D {
	direction := line.Direction()
	var pt Vector2D
	if math.Abs(direction.X) <= tol {
		return nil // parallel to the ray
	} else if math.Abs(direction.Y) <= tol {
		pt = V(rayStart.X, line.Start.Y)
	} else {
		h := line.ToHomogeneous()
		pt = V(rayStart.X, -(rayStart.X*h.X+h.Z)/h.Y)
	}
	if rayStart.Y <= pt.Y+tol && line.IsPointOnSelfAccelerated(pt, false, tol) {
		if pt.IsEqualAccelerated(line.Start, tol) {
			return nil
		}
		return []Vector2D{pt}
	}
	return nil
}

// intersectRayWithCircle intersects a circle with a ray starting at
// rayStart and extending in the +y direction.
func intersectRayWithCircle(rayStart Vector2D, circle *Circle, excludeTangents bool, tol float64) []Vector2D {
	x := rayStart.X
	cx, cy := circle.Center.X, circle.Center.Y

	dx := math.Abs(x - cx)
	if dx >= circle.Radius+tol {
		return nil
	}
	if dx >= circle.Radius-tol {
		if excludeTangents {
			return nil
		}
		return []Vector2D{V(x, cy)}
	}
	var ips []Vector2D
	yOffset := math.Sqrt(circle.Radius*circle.Radius - dx*dx)
	if y := cy + yOffset; rayStart.Y <= y {
		ips = append(ips, V(x, y))
	}
	if y := cy - yOffset; rayStart.Y <= y {
		ips = append(ips, V(x, y))
	}
	return ips
}

// intersectRayWithArc intersects an arc with a ray starting at
// rayStart and extending in the +y direction. An intersection on the
// arc's start point is skipped, like in intersectRayWithLine.
func intersectRayWithArc(rayStart Vector2D, arc *Arc, excludeTangents bool, tol float64) []Vector2D {
	carrier := NewCircleFromArc(arc)
	ips := intersectRayWithCircle(rayStart, carrier, excludeTangents, tol)
	var intersections []Vector2D
	for _, pt := range ips {
		if arc.IsPointOnSelfAccelerated(pt, false, tol) && !pt.IsEqualAccelerated(arc.Start(), tol) {
			intersections = append(intersections, pt)
		}
	}
	return intersections
}

// filterOnLine keeps the points lying on the line segment.
func filterOnLine(pts []Vector2D, line *Line, excludeEnds bool, tol float64) []Vector2D {
	kept := pts[:0]
	for _, pt := range pts {
		if line.IsPointOnSelfAccelerated(pt, excludeEnds, tol) {
			kept = append(kept, pt)
		}
	}
	return kept
}

// filterOnArc keeps the points lying on the arc's sweep.
func filterOnArc(pts []Vector2D, arc *Arc, excludeEnds bool, tol float64) []Vector2D {
	kept := pts[:0]
	for _, pt := range pts {
		if arc.IsPointOnSelfAccelerated(pt, excludeEnds, tol) {
			kept = append(kept, pt)
		}
	}
	return kept
}
