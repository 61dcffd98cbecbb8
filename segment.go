package geom

import "math"

// Segment helpers shared by the outline algorithms. A segment is a
// *Line or an *Arc; chains of them describe polygon and compound
// outlines.

// segmentLength returns the length of a line or arc segment.
func segmentLength(s Shape) float64 {
	switch seg := s.(type) {
	case *Line:
		return seg.Length()
	case *Arc:
		return seg.Length()
	}
	return 0
}

// segmentStart returns the start point of a line or arc segment.
func segmentStart(s Shape) Vector2D {
	switch seg := s.(type) {
	case *Line:
		return seg.Start
	case *Arc:
		return seg.Start()
	}
	return Vector2D{}
}

// segmentEnd returns the end point of a line or arc segment.
func segmentEnd(s Shape) Vector2D {
	switch seg := s.(type) {
	case *Line:
		return seg.End
	case *Arc:
		return seg.End()
	}
	return Vector2D{}
}

// segmentMid returns the midpoint of a line or arc segment. For an
// intact circle it returns the outline point at angle zero, which is
// what the containment classification probes.
func segmentMid(s Shape) Vector2D {
	switch seg := s.(type) {
	case *Line:
		return seg.Mid()
	case *Arc:
		return seg.Mid()
	case *Circle:
		return seg.Mid()
	}
	return Vector2D{}
}

// segmentSetStart moves the start point of a segment. For an arc the
// end point stays put and the sweep adjusts.
func segmentSetStart(s Shape, p Vector2D) {
	switch seg := s.(type) {
	case *Line:
		seg.Start = p
	case *Arc:
		seg.SetStart(p)
	}
}

// segmentSetEnd moves the end point of a segment. For an arc the start
// point stays put and the sweep adjusts.
func segmentSetEnd(s Shape, p Vector2D) {
	switch seg := s.(type) {
	case *Line:
		seg.End = p
	case *Arc:
		seg.SetEnd(p)
	}
}

// reverseSegment reverses the direction of a segment in place.
func reverseSegment(s Shape) {
	switch seg := s.(type) {
	case *Line:
		seg.Reverse()
	case *Arc:
		seg.Reverse()
	}
}

// areLinesParallel reports whether two lines are parallel within tol,
// by the cross product of their homogeneous normals.
func areLinesParallel(line1, line2 *Line, tol float64) bool {
	l1x, l1y := line1.Start.Y-line1.End.Y, line1.End.X-line1.Start.X
	l2x, l2y := line2.Start.Y-line2.End.Y, line2.End.X-line2.Start.X
	return math.Abs(l1x*l2y-l1y*l2x) <= tol
}

// areArcsOnSameCircle reports whether two arcs share the same carrier
// circle within tol.
func areArcsOnSameCircle(arc1, arc2 *Arc, tol float64) bool {
	c1, c2 := arc1.Center(), arc2.Center()
	if math.Abs(c1.X-c2.X) > tol || math.Abs(c1.Y-c2.Y) > tol {
		return false
	}
	return math.Abs(arc1.Radius()-arc2.Radius()) <= tol
}

// removeZeroLengthSegments removes segments shorter than
// minSegmentLength from the chain.
func removeZeroLengthSegments(segments *[]Shape, minSegmentLength float64) {
	segs := *segments
	for i := 0; i < len(segs); {
		if segmentLength(segs[i]) < minSegmentLength {
			segs = append(segs[:i], segs[i+1:]...)
		} else {
			i++
		}
	}
	*segments = segs
}

// keepOnlyOuterOutline removes the parts of a self-intersecting closed
// outline that are enclosed by its outer boundary. The chain must run
// clockwise. Where two segments cross, the chain is cut at the
// crossing and the portion not containing the leftmost segment is
// dropped. Returns false when fewer than two segments remain.
func keepOnlyOuterOutline(segments *[]Shape, tol float64) bool {
	segs := *segments
	defer func() { *segments = segs }()

	if len(segs) < 2 {
		return false
	}

	// The segment reaching furthest left is certainly on the outer
	// outline.
	leftMostIdx := 0
	leftMostCoordinate := segs[0].BBox().Left()
	for i, segment := range segs {
		if left := segment.BBox().Left(); left < leftMostCoordinate {
			leftMostCoordinate = left
			leftMostIdx = i
		}
	}

	// Walk all segment pairs (upper triangle) looking for crossings.
	for i := 1; i < len(segs); i++ {
		for j := 0; j < i; {
			// Neighbors always touch at their shared point; only a
			// strict crossing matters for them.
			strict := i-j == 1 || (i == len(segs)-1 && j == 0)
			pts := intersectAtomicShapes(segs[i], segs[j], atomicIntersectConfig{
				excludeEnds1: strict,
				excludeEnds2: strict,
			}, tol)
			if len(pts) == 0 {
				j++
				continue
			}
			point := pts[0]
			// Cut at the crossing and drop the loop that does not
			// contain the leftmost segment.
			if j < leftMostIdx && leftMostIdx < i {
				segmentSetStart(segs[j], point)
				segmentSetEnd(segs[i], point)
				if !strict {
					segs = segs[:i+1]
					segs = segs[j:]
					leftMostIdx -= j
				}
				i -= j
				j = 1
			} else {
				segmentSetEnd(segs[j], point)
				segmentSetStart(segs[i], point)
				if !strict {
					segs = append(segs[:j+1], segs[i:]...)
				}
				i = j + 1
				j++
			}
			if len(segs) <= 1 {
				return false
			}
		}
	}
	return true
}

// mergeSegments merges neighboring segments that continue each other,
// collinear lines and arcs on the same carrier circle, including
// across the chain's wrap-around. Returns false when the merged chain
// has two segments or fewer.
func mergeSegments(segments *[]Shape, tol float64) bool {
	segs := *segments
	defer func() { *segments = segs }()

	for i := 0; i < len(segs); {
		prev := i - 1
		if prev < 0 {
			prev = len(segs) - 1
		}
		merged := false
		switch seg1 := segs[prev].(type) {
		case *Line:
			if seg2, ok := segs[i].(*Line); ok && areLinesParallel(seg1, seg2, tol) {
				seg1.End = seg2.End
				merged = true
			}
		case *Arc:
			if seg2, ok := segs[i].(*Arc); ok && areArcsOnSameCircle(seg1, seg2, tol) {
				seg1.SetAngle(seg1.Angle() + seg2.Angle())
				merged = true
			}
		}
		if merged {
			segs = append(segs[:i], segs[i+1:]...)
			if len(segs) <= 2 {
				return false
			}
		} else {
			i++
		}
	}
	return true
}

// segmentDirection snapshots the direction of a segment before it is
// trimmed: the direction vector for a line, the sweep sign for an arc.
func segmentDirection(s Shape) (lineDir Vector2D, arcDir int) {
	switch seg := s.(type) {
	case *Line:
		return seg.Direction(), 0
	case *Arc:
		return Vector2D{}, seg.Direction()
	}
	return Vector2D{}, 0
}

// segmentFlippedOrZero reports whether trimming reversed a segment
// against its snapshotted direction, or shrank it to zero.
func segmentFlippedOrZero(s Shape, lineDir Vector2D, arcDir int, tol float64) bool {
	switch seg := s.(type) {
	case *Line:
		return isLineFlippedOrZero(seg, lineDir, tol)
	case *Arc:
		return isArcFlippedOrZero(seg, arcDir, tol)
	}
	return false
}

// isLineFlippedOrZero reports whether trimming reversed a line against
// its direction before trimming, or shrank it to zero.
func isLineFlippedOrZero(line *Line, oldDirection Vector2D, tol float64) bool {
	newDirection := line.Direction()
	if math.Abs(newDirection.X) > math.Abs(newDirection.Y) {
		return newDirection.X*oldDirection.X <= 0 || math.Abs(newDirection.X) <= tol
	}
	return newDirection.Y*oldDirection.Y <= 0 || math.Abs(newDirection.Y) <= tol
}

// isArcFlippedOrZero reports whether trimming reversed an arc's sweep
// against its direction before trimming, or shrank it to zero.
func isArcFlippedOrZero(arc *Arc, oldDirection int, tol float64) bool {
	if arc.Angle()*float64(oldDirection) <= 0 {
		return true
	}
	tolD, ok := tolDeg(tol, arc.Radius())
	if !ok {
		return true
	}
	return math.Abs(arc.Angle()) <= tolD
}
