package geom

// operationHandle carries the shared state of the boolean algorithms:
// the two shapes, their atomic decompositions, the intersection
// registry, and the per-atom classification results the pipeline in
// intersect.go fills in.
type operationHandle struct {
	tol              float64
	minSegmentLength float64

	// strict drops tangent points and intersections where a segment
	// merely starts or ends on the other outline.
	strict bool

	// shapes are the two operands. For Cut and Keepout index 0 is the
	// shape being cut or kept out.
	shapes [2]Shape

	// atoms is the atomic decomposition of each shape. The pipeline
	// replaces atoms with their pieces when it splits them.
	atoms [2][]Shape

	// intersections is the deduplicated registry of all intersection
	// points found between the two shapes.
	intersections []Vector2D

	// atomIntersections lists, per shape and per atom, the
	// intersection points found on that atom. Indices parallel the
	// original, unsplit atoms list.
	atomIntersections [2][][]Vector2D

	// segEnds records, per shape and per split segment, whether the
	// segment's start and end landed on an intersection point (and
	// which). Entries are nil when the respective end is no
	// intersection.
	segEnds [2][]segmentEnds

	// insideOther records, per shape and per split segment, whether
	// the segment's midpoint lies strictly inside the other shape.
	insideOther [2][]bool

	// cutsPerformed counts, per shape, the net number of cuts applied
	// to its segments.
	cutsPerformed [2]int

	// excludeSegmentEnds is set per shape when the shape is open and
	// the operation is strict: intersections on the free ends of an
	// open chain can never be strict crossings and are dropped early.
	excludeSegmentEnds [2]bool
}

// segmentEnds marks whether a split segment starts or ends on an
// intersection point.
type segmentEnds struct {
	start *Vector2D
	end   *Vector2D
}

func newOperationHandle(shape1, shape2 Shape, o options) *operationHandle {
	h := &operationHandle{
		tol:              o.tol,
		minSegmentLength: o.minSegmentLength,
		strict:           o.strict,
		shapes:           [2]Shape{shape1, shape2},
	}
	for i := range h.shapes {
		atoms := h.shapes[i].AtomicShapes()
		h.atoms[i] = make([]Shape, len(atoms))
		copy(h.atoms[i], atoms)
		h.atomIntersections[i] = make([][]Vector2D, len(atoms))
		h.excludeSegmentEnds[i] = o.strict && !h.shapes[i].IsClosed()
	}
	return h
}

// addIntersections records the intersection points found between atom
// idx1 of shape 1 and atom idx2 of shape 2.
func (h *operationHandle) addIntersections(points []Vector2D, idx1, idx2 int) {
	for _, p := range points {
		h.atomIntersections[0][idx1] = addIntersection(h.atomIntersections[0][idx1], p, h.tol)
		h.atomIntersections[1][idx2] = addIntersection(h.atomIntersections[1][idx2], p, h.tol)
		h.intersections = addIntersection(h.intersections, p, h.tol)
	}
}

// addIntersection appends a point to a registry unless an equal point
// (within tol) is already present.
func addIntersection(registry []Vector2D, p Vector2D, tol float64) []Vector2D {
	for _, old := range registry {
		if p.IsEqualAccelerated(old, tol) {
			return registry
		}
	}
	return append(registry, p)
}

// removeIntersection deletes the first registered intersection equal
// to p within tol.
func (h *operationHandle) removeIntersection(p Vector2D) {
	for i, ip := range h.intersections {
		if ip.IsEqualAccelerated(p, h.tol) {
			h.intersections = append(h.intersections[:i], h.intersections[i+1:]...)
			return
		}
	}
}

// isIntersection reports whether p is a registered intersection point.
func (h *operationHandle) isIntersection(p Vector2D) bool {
	for _, ip := range h.intersections {
		if p.IsEqualAccelerated(ip, h.tol) {
			return true
		}
	}
	return false
}

// allOrNoneInside reports whether every split segment of the given
// shape lies on the same side of the other shape.
func (h *operationHandle) allOrNoneInside(shapeIdx int) bool {
	any, all := false, true
	for _, inside := range h.insideOther[shapeIdx] {
		if inside {
			any = true
		} else {
			all = false
		}
	}
	return all || !any
}
