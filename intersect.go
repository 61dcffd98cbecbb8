package geom

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// Intersect returns the points where the outlines of two shapes
// intersect. By default only strict crossings are reported: tangent
// points and points where a segment of one shape merely starts or
// ends on the other outline are filtered out. Pass WithNonStrict to
// include them.
func Intersect(shape1, shape2 Shape, opts ...Option) []Vector2D {
	h := intersectShapes(shape1, shape2, true, applyOptions(opts))
	return h.intersections
}

// intersectShapes runs the full intersection pipeline and returns the
// operation handle with atoms split at the intersection points and
// classified against the other shape. Cut and Keepout only need the
// first shape split; they pass cutAlsoShape2 false.
func intersectShapes(shape1, shape2 Shape, cutAlsoShape2 bool, o options) *operationHandle {
	h := newOperationHandle(shape1, shape2, o)

	// Pairwise atomic intersections, with an R-tree over shape 1's
	// atom boxes so only overlapping pairs reach the analytic
	// intersectors.
	tree := rtreego.NewTree(2, 25, 50)
	for i, atom := range h.atoms[0] {
		tree.Insert(&atomEntry{rect: rtreeRect(atom.BBox(), h.tol), idx: i})
	}
	cfg := atomicIntersectConfig{
		excludeTangents: h.strict,
		excludeEnds1:    h.excludeSegmentEnds[0],
		excludeEnds2:    h.excludeSegmentEnds[1],
	}
	for j, atom2 := range h.atoms[1] {
		for _, hit := range tree.SearchIntersect(rtreeRect(atom2.BBox(), h.tol)) {
			i := hit.(*atomEntry).idx
			points := intersectAtomicShapes(h.atoms[0][i], atom2, cfg, h.tol)
			h.addIntersections(points, i, j)
		}
	}
	Logger().Debug("geom: intersected atoms",
		"atoms1", len(h.atoms[0]), "atoms2", len(h.atoms[1]),
		"intersections", len(h.intersections))

	// Split each shape's atoms at the intersection points, classify
	// the pieces against the other shape, and in strict mode merge
	// back the pieces that turned out to lie on the same side.
	h.replaceSegmentsWithCuts(0)
	h.testSegmentsInsideOther(0)
	if h.strict {
		h.keepOnlyStrictIntersections(0)
	}
	if cutAlsoShape2 {
		h.replaceSegmentsWithCuts(1)
		h.testSegmentsInsideOther(1)
		if h.strict {
			h.keepOnlyStrictIntersections(1)
		}
	}
	return h
}

// atomEntry is an R-tree entry pointing back to an atom index.
type atomEntry struct {
	rect rtreego.Rect
	idx  int
}

func (e *atomEntry) Bounds() rtreego.Rect { return e.rect }

// rtreeRect converts a bounding box to an R-tree rectangle, padded by
// tol on every side so touching atoms still pair up. Degenerate
// extents end up 2*tol wide, which keeps the lengths positive.
func rtreeRect(bb BoundingBox, tol float64) rtreego.Rect {
	min, size := bb.Min(), bb.Size()
	r, err := rtreego.NewRect(
		rtreego.Point{min.X - tol, min.Y - tol},
		[]float64{size.X + 2*tol, size.Y + 2*tol},
	)
	if err != nil {
		panic(err) // lengths are always positive
	}
	return r
}

// replaceSegmentsWithCuts splits the atoms of the given shape at
// their intersection points.
func (h *operationHandle) replaceSegmentsWithCuts(shapeIdx int) {
	segIdx := 0
	for _, points := range h.atomIntersections[shapeIdx] {
		if len(points) == 0 {
			h.segEnds[shapeIdx] = append(h.segEnds[shapeIdx], segmentEnds{})
			segIdx++
			continue
		}
		var pieces []Shape
		var ends []segmentEnds
		switch seg := h.atoms[shapeIdx][segIdx].(type) {
		case *Arc:
			pieces, ends = arcsFromArcAndPoints(seg, points, h.minSegmentLength, h.tol)
		case *Line:
			pieces, ends = linesFromLineAndPoints(seg, points, h.minSegmentLength, h.tol)
		case *Circle:
			pieces, ends = arcsFromCircleAndPoints(seg, points, h.minSegmentLength, h.tol)
			// Splitting a circle in arcs produces as many segments as
			// there are cuts, one less than splitting a line or arc.
			h.cutsPerformed[shapeIdx]++
		}
		h.atoms[shapeIdx] = append(h.atoms[shapeIdx][:segIdx],
			append(pieces, h.atoms[shapeIdx][segIdx+1:]...)...)
		h.segEnds[shapeIdx] = append(h.segEnds[shapeIdx], ends...)
		h.cutsPerformed[shapeIdx] += len(pieces) - 1
		segIdx += len(pieces)
	}
}

// testSegmentsInsideOther classifies every split segment of the given
// shape by whether its midpoint lies strictly inside the other shape.
func (h *operationHandle) testSegmentsInsideOther(shapeIdx int) {
	h.insideOther[shapeIdx] = make([]bool, len(h.atoms[shapeIdx]))
	other, ok := h.shapes[1-shapeIdx].(ClosedShape)
	if !ok || !other.IsClosed() {
		return // an open shape has no inside
	}
	atoms := h.atoms[shapeIdx]
	if len(atoms) == 0 {
		return // the shape was erased by the minimum segment length
	}
	inside := other.IsPointInside(segmentMid(atoms[0]), true, h.tol)
	h.insideOther[shapeIdx][0] = inside

	// Containment is costly on polygons and compound polygons. For
	// those, a segment can only change sides where the chain crosses
	// an intersection point, so the verdict carries over otherwise.
	expensive := false
	switch h.shapes[1-shapeIdx].(type) {
	case *Polygon, *CompoundPolygon:
		expensive = true
	}
	for i := 1; i < len(atoms); i++ {
		if !expensive || h.segEnds[shapeIdx][i].start != nil || h.segEnds[shapeIdx][i-1].end != nil {
			inside = other.IsPointInside(segmentMid(atoms[i]), true, h.tol)
		}
		h.insideOther[shapeIdx][i] = inside
	}
}

// keepOnlyStrictIntersections merges back neighboring split segments
// that lie on the same side of the other shape: the junction between
// them was a touching point, not a crossing. When afterwards all
// segments lie on one side, the shapes only touch and the whole
// intersection set is discarded.
func (h *operationHandle) keepOnlyStrictIntersections(shapeIdx int) {
	// Inside/outside of an open shape is meaningless, and with no
	// intersections there is nothing to merge.
	if !h.shapes[1-shapeIdx].IsClosed() || len(h.intersections) == 0 {
		return
	}
	for i := 0; i < len(h.segEnds[shapeIdx]); i++ {
		i2 := (i + 1) % len(h.segEnds[shapeIdx])
		if i2 == i {
			break
		}
		if h.insideOther[shapeIdx][i] == h.insideOther[shapeIdx][i2] {
			n := h.mergeSplitSegments(shapeIdx, i, i2)
			h.cutsPerformed[shapeIdx] -= n
			if i -= n; i < 0 {
				i = -1
			}
		}
		if len(h.segEnds[shapeIdx]) == 0 {
			break
		}
	}
	if h.allOrNoneInside(shapeIdx) {
		h.intersections = nil
	}
}

// mergeSplitSegments merges two neighboring segments when they are of
// the same kind and continue each other on the same carrier. It
// returns the number of intersection points removed by the merge:
// 0 (no merge), 1, or 2 when two arcs close back into a circle.
func (h *operationHandle) mergeSplitSegments(shapeIdx, idx1, idx2 int) int {
	switch seg1 := h.atoms[shapeIdx][idx1].(type) {
	case *Arc:
		if seg2, ok := h.atoms[shapeIdx][idx2].(*Arc); ok {
			return h.mergeSplitArcs(shapeIdx, seg1, seg2, idx1, idx2)
		}
	case *Line:
		if seg2, ok := h.atoms[shapeIdx][idx2].(*Line); ok {
			return h.mergeSplitLines(shapeIdx, seg1, seg2, idx2)
		}
	}
	return 0
}

func (h *operationHandle) mergeSplitArcs(shapeIdx int, arc1, arc2 *Arc, idx1, idx2 int) int {
	if !arc1.Center().IsEqualAccelerated(arc2.Center(), h.tol) ||
		math.Abs(arc1.Radius()-arc2.Radius()) > h.tol {
		return 0
	}
	junction := arc2.Start()
	switch {
	case arc1.Start().IsEqualAccelerated(arc2.End(), h.tol):
		// arc2 precedes arc1 in clockwise order.
		junction = arc1.Start()
		arc1.SetStartKeepAngle(arc2.Start())
	case arc1.End().IsEqualAccelerated(arc2.Start(), h.tol):
		// arc1 precedes arc2.
	default:
		return 0 // not continuous
	}
	arc1.SetAngle(arc1.Angle() + arc2.Angle())
	h.deleteSplitSegment(shapeIdx, idx2)
	h.removeIntersection(junction)
	// Two arcs closing a full turn collapse back into a circle and
	// free the remaining junction too.
	if math.Abs(arc1.Angle()-360) <= h.tol {
		h.atoms[shapeIdx][idx1] = NewCircleFromArc(arc1)
		h.segEnds[shapeIdx] = append(h.segEnds[shapeIdx][:idx1], h.segEnds[shapeIdx][idx1+1:]...)
		h.removeIntersection(arc1.Start())
		return 2
	}
	return 1
}

func (h *operationHandle) mergeSplitLines(shapeIdx int, line1, line2 *Line, idx2 int) int {
	u1, err1 := line1.UnitDirection(h.tol)
	u2, err2 := line2.UnitDirection(h.tol)
	if err1 != nil || err2 != nil {
		return 0
	}
	if !line1.End.IsEqualAccelerated(line2.Start, h.tol) || !u1.IsEqualAccelerated(u2, h.tol) {
		return 0
	}
	junction := line2.Start
	line1.End = line2.End
	h.deleteSplitSegment(shapeIdx, idx2)
	h.removeIntersection(junction)
	return 1
}

// deleteSplitSegment removes a segment and its bookkeeping rows.
func (h *operationHandle) deleteSplitSegment(shapeIdx, idx int) {
	h.atoms[shapeIdx] = append(h.atoms[shapeIdx][:idx], h.atoms[shapeIdx][idx+1:]...)
	h.insideOther[shapeIdx] = append(h.insideOther[shapeIdx][:idx], h.insideOther[shapeIdx][idx+1:]...)
	h.segEnds[shapeIdx] = append(h.segEnds[shapeIdx][:idx], h.segEnds[shapeIdx][idx+1:]...)
}

// linesFromLineAndPoints splits a line at the given points, dropping
// pieces shorter than minSegmentLength. The second return value
// records, per kept piece, which of its ends sit on a split point.
func linesFromLineAndPoints(line *Line, points []Vector2D, minSegmentLength, tol float64) ([]Shape, []segmentEnds) {
	sorted := line.SortPointsRelativeToStart(points)
	splitAt := make([]*Vector2D, len(sorted))
	for i := range sorted {
		p := sorted[i]
		splitAt[i] = &p
	}
	if !line.Start.IsEqualAccelerated(sorted[0], tol) {
		sorted = append([]Vector2D{line.Start}, sorted...)
		splitAt = append([]*Vector2D{nil}, splitAt...)
	}
	if !line.End.IsEqualAccelerated(sorted[len(sorted)-1], tol) {
		sorted = append(sorted, line.End)
		splitAt = append(splitAt, nil)
	}
	pieces := make([]Shape, 0, len(sorted)-1)
	ends := make([]segmentEnds, 0, len(sorted)-1)
	for i := 0; i < len(sorted)-1; i++ {
		piece := NewLine(sorted[i], sorted[i+1])
		if piece.Length() >= minSegmentLength {
			pieces = append(pieces, piece)
			ends = append(ends, segmentEnds{start: splitAt[i], end: splitAt[i+1]})
		}
	}
	return pieces, ends
}

// arcsFromArcAndPoints splits an arc at the given points, dropping
// pieces shorter than minSegmentLength.
func arcsFromArcAndPoints(arc *Arc, points []Vector2D, minSegmentLength, tol float64) ([]Shape, []segmentEnds) {
	sorted := arc.SortPointsRelativeToStart(points, tol)
	splitAt := make([]*Vector2D, len(sorted))
	for i := range sorted {
		p := sorted[i].Point
		splitAt[i] = &p
	}
	radius := arc.Radius()
	if !arc.Start().IsEqualAccelerated(sorted[0].Point, tol) {
		sorted = append([]ArcPoint{{Radius: radius, Angle: 0}}, sorted...)
		splitAt = append([]*Vector2D{nil}, splitAt...)
	}
	if !arc.End().IsEqualAccelerated(sorted[len(sorted)-1].Point, tol) {
		sorted = append(sorted, ArcPoint{Radius: radius, Angle: arc.Angle()})
		splitAt = append(splitAt, nil)
	}
	pieces := make([]Shape, 0, len(sorted)-1)
	ends := make([]segmentEnds, 0, len(sorted)-1)
	for i := 0; i < len(sorted)-1; i++ {
		piece := NewArc(
			arc.Center(),
			arc.Start().Rotate(sorted[i].Angle, arc.Center()),
			sorted[i+1].Angle-sorted[i].Angle,
		)
		if radius*math.Abs(degToRad(piece.Angle())) >= minSegmentLength {
			pieces = append(pieces, piece)
			ends = append(ends, segmentEnds{start: splitAt[i], end: splitAt[i+1]})
		}
	}
	return pieces, ends
}

// arcsFromCircleAndPoints splits a circle at the given points. The
// circle first becomes a full-turn arc anchored on the first point,
// then splits like any arc at the remaining ones.
func arcsFromCircleAndPoints(circle *Circle, points []Vector2D, minSegmentLength, tol float64) ([]Shape, []segmentEnds) {
	anchor := points[0]
	arc := NewArc(circle.Center, anchor, 360)
	if len(points) == 1 {
		return []Shape{arc}, []segmentEnds{{start: &anchor, end: &anchor}}
	}
	pieces, ends := arcsFromArcAndPoints(arc, points[1:], minSegmentLength, tol)
	if len(ends) > 0 {
		ends[0].start = &anchor
		ends[len(ends)-1].end = &anchor
	}
	return pieces, ends
}
