package geom

// Unite merges the outlines of two closed shapes into one. The result
// is a single Polygon, or a CompoundPolygon when the merged outline
// contains arcs. Disjoint shapes come back as both inputs, and a
// shape fully enclosed by the other collapses to the enclosing shape.
func Unite(shape1, shape2 ClosedShape, opts ...Option) []Shape {
	o := applyOptions(opts)
	o.strict = false
	h := intersectShapes(shape1, shape2, true, o)

	// With one intersection or none the outlines do not cross: the
	// shapes are disjoint, touching, or one encloses the other.
	if len(h.intersections) <= 1 {
		if len(h.insideOther[0]) > 0 && h.insideOther[0][0] {
			return []Shape{shape2}
		}
		if len(h.insideOther[1]) > 0 && h.insideOther[1][0] {
			return []Shape{shape1}
		}
		return []Shape{shape1, shape2}
	}
	// Two or more intersections: any circle involved has been split
	// into arcs, so both atom lists now hold only lines and arcs.
	return h.uniteSegments(shape1, shape2)
}

// uniteSegments walks the outlines of both shapes, collecting the
// runs of segments that lie outside the other shape and hopping to
// the other outline at every intersection point.
func (h *operationHandle) uniteSegments(shape1, shape2 ClosedShape) []Shape {
	var segments []Shape
	collect := h.outsideSegmentsAfterPoint
	firstPoint, found := h.firstPointOutsideOther(0)
	if !found {
		// Every segment of shape 1 is on one side of shape 2.
		if len(h.insideOther[0]) > 0 && h.insideOther[0][0] {
			return []Shape{shape2}
		}
		if len(h.insideOther[1]) > 0 && h.insideOther[1][0] {
			return []Shape{shape1}
		}
		// Both outlines fully outside each other yet intersecting:
		// the shapes touch. Walk from outline point to outline point.
		collect = h.outsideSegmentsUntilIntersection
		firstPoint, found = h.firstPointNotOnIntersection(0)
		if !found {
			// All segments of both shapes outside one another with
			// every junction an intersection: two identical shapes on
			// top of each other.
			return []Shape{shape1}
		}
	}
	// Every segment classified outside the other shape ends up in the
	// united outline exactly once.
	expected := 0
	for i := range h.insideOther {
		for _, inside := range h.insideOther[i] {
			if !inside {
				expected++
			}
		}
	}
	currentShape := 0
	point := firstPoint
	for {
		run, found := collect(currentShape, point)
		if !found || len(run) == 0 {
			// Nothing more to collect on this outline. The walk is
			// complete when it stopped on an intersection point.
			if len(segments) > 0 && h.isIntersection(segmentEnd(segments[len(segments)-1])) {
				break
			}
			Logger().Warn("geom: unite walk ended off an intersection point",
				"collected", len(segments), "expected", expected)
			return []Shape{shape1, shape2}
		}
		segments = append(segments, run...)
		point = segmentEnd(segments[len(segments)-1])
		currentShape = 1 - currentShape
		if point.IsEqualAccelerated(firstPoint, h.tol) || len(segments) >= expected {
			if len(segments) > expected {
				segments = removeDoubleSegments(segments, h.tol)
			}
			break
		}
	}
	mergeUnitedSegments(&segments, h.tol)

	united, err := h.assembleOutline(segments)
	if err != nil {
		Logger().Warn("geom: unite outline assembly failed", "error", err)
		return []Shape{shape1, shape2}
	}
	if !outlineIsClockwise(united) {
		// The walk started inside an enclave (a hole between the two
		// outlines) and traced it counter-clockwise. Its segments are
		// consumed already, so a fresh walk starts elsewhere.
		Logger().Debug("geom: unite walk consumed an enclave, restarting")
		return h.uniteSegments(shape1, shape2)
	}
	return []Shape{united}
}

// assembleOutline builds the closed result shape from the collected
// segments: a Polygon when they are all lines, a CompoundPolygon when
// arcs are among them.
func (h *operationHandle) assembleOutline(segments []Shape) (Shape, error) {
	hasArcs := false
	for _, s := range segments {
		if _, ok := s.(*Arc); ok {
			hasArcs = true
			break
		}
	}
	if hasArcs {
		return NewCompoundPolygon(segments, true)
	}
	points := make([]Vector2D, 0, len(segments))
	for _, s := range segments {
		points = append(points, segmentStart(s))
	}
	return NewPolygon(points), nil
}

// outlineIsClockwise reports the winding of the assembled outline.
func outlineIsClockwise(s Shape) bool {
	switch outline := s.(type) {
	case *Polygon:
		return outline.IsClockwise()
	case *CompoundPolygon:
		return outline.IsClockwise()
	}
	return true
}

// removeDoubleSegments drops segments that appear more than once in
// the walk result, which happens when both outlines contribute the
// same stretch.
func removeDoubleSegments(segments []Shape, tol float64) []Shape {
	for i := 1; i < len(segments); i++ {
		for j := 0; j < i; j++ {
			if segments[i].IsEqual(segments[j], tol) {
				segments = append(segments[:i], segments[i+1:]...)
				i--
				break
			}
		}
	}
	return segments
}

// mergeUnitedSegments merges neighboring collinear lines and
// neighboring arcs on the same carrier circle, including the seam
// where the walk hopped between the outlines.
func mergeUnitedSegments(segments *[]Shape, tol float64) {
	segs := *segments
	defer func() { *segments = segs }()

	for i := 0; i < len(segs); {
		prev := i - 1
		if prev < 0 {
			prev = len(segs) - 1
		}
		if prev == i {
			break
		}
		merged := false
		switch seg1 := segs[prev].(type) {
		case *Line:
			if seg2, ok := segs[i].(*Line); ok {
				u1, err1 := seg1.UnitDirection(tol)
				u2, err2 := seg2.UnitDirection(tol)
				if err1 == nil && err2 == nil && u1.IsEqualAccelerated(u2, tol) {
					seg1.End = seg2.End
					merged = true
				}
			}
		case *Arc:
			if seg2, ok := segs[i].(*Arc); ok && seg1.Center().IsEqualAccelerated(seg2.Center(), tol) {
				seg1.SetAngle(seg1.Angle() + seg2.Angle())
				merged = true
			}
		}
		if merged {
			segs = append(segs[:i], segs[i+1:]...)
		} else {
			i++
		}
	}
}

// firstPointNotOnIntersection returns the first segment start of the
// given shape that is not an intersection point.
func (h *operationHandle) firstPointNotOnIntersection(shapeIdx int) (Vector2D, bool) {
	for _, seg := range h.atoms[shapeIdx] {
		if !h.isIntersection(segmentStart(seg)) {
			return segmentStart(seg), true
		}
	}
	return Vector2D{}, false
}

// firstPointOutsideOther returns a point on the given shape's outline
// where a run of segments outside the other shape begins. found is
// false when all segments lie on one side of the other shape.
func (h *operationHandle) firstPointOutsideOther(shapeIdx int) (Vector2D, bool) {
	inside := h.insideOther[shapeIdx]
	num := len(inside)
	if num == 0 {
		return Vector2D{}, false
	}
	if inside[0] {
		// Scan forward for the first segment outside.
		for i := 1; i < num; i++ {
			if !inside[i] {
				return segmentStart(h.atoms[shapeIdx][i]), true
			}
		}
		return Vector2D{}, false
	}
	// The first segment is already outside: scan backward for the
	// beginning of its run.
	for i := num - 1; i >= 0; i-- {
		if inside[i] {
			return segmentEnd(h.atoms[shapeIdx][i]), true
		}
	}
	return Vector2D{}, false
}

// outsideSegmentsAfterPoint consumes and returns the run of segments
// of the given shape that starts at point and stays outside the other
// shape. found is false when point is not on this shape's outline.
func (h *operationHandle) outsideSegmentsAfterPoint(shapeIdx int, point Vector2D) ([]Shape, bool) {
	i, ok := h.segmentStartingAt(shapeIdx, point)
	if !ok {
		return nil, false
	}
	var run []Shape
	for !h.insideOther[shapeIdx][i] {
		run = append(run, h.atoms[shapeIdx][i])
		h.consumeSegment(shapeIdx, i)
		if len(h.atoms[shapeIdx]) == 0 {
			return run, true
		}
		if i == len(h.atoms[shapeIdx]) {
			i = 0
		}
	}
	return run, true
}

// outsideSegmentsUntilIntersection consumes and returns the run of
// segments of the given shape from point up to the next intersection
// point. Used when the two outlines only touch: every segment is
// outside the other shape, so the runs are delimited by the touching
// points instead.
func (h *operationHandle) outsideSegmentsUntilIntersection(shapeIdx int, point Vector2D) ([]Shape, bool) {
	i, ok := h.segmentStartingAt(shapeIdx, point)
	if !ok {
		return nil, false
	}
	var run []Shape
	for {
		if h.insideOther[shapeIdx][i] {
			return run, true
		}
		seg := h.atoms[shapeIdx][i]
		run = append(run, seg)
		h.consumeSegment(shapeIdx, i)
		if len(h.atoms[shapeIdx]) == 0 {
			return run, true
		}
		if i == len(h.atoms[shapeIdx]) {
			i = 0
		}
		if h.isIntersection(segmentEnd(seg)) {
			return run, true
		}
	}
}

// segmentStartingAt finds the segment of the given shape whose start
// point equals point within tol.
func (h *operationHandle) segmentStartingAt(shapeIdx int, point Vector2D) (int, bool) {
	for i, seg := range h.atoms[shapeIdx] {
		if segmentStart(seg).IsEqualAccelerated(point, h.tol) {
			return i, true
		}
	}
	return 0, false
}

// consumeSegment removes a segment from the walk's candidate pool.
func (h *operationHandle) consumeSegment(shapeIdx, idx int) {
	h.atoms[shapeIdx] = append(h.atoms[shapeIdx][:idx], h.atoms[shapeIdx][idx+1:]...)
	h.insideOther[shapeIdx] = append(h.insideOther[shapeIdx][:idx], h.insideOther[shapeIdx][idx+1:]...)
}
