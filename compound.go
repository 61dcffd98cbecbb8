package geom

import (
	"fmt"
	"math"
)

// CompoundPolygon is a closed or open outline whose segments are a
// mix of lines and arcs, traced continuously.
type CompoundPolygon struct {
	// Closed reports whether the outline encloses an area.
	Closed bool

	segments []Shape
}

// NewCompoundPolygon builds a compound polygon from a sequence of
// lines, arcs and polygons. Every element must continue the chain
// where the previous one ended; elements given in reverse direction
// are flipped. With closed, a straight segment back to the start is
// appended when the chain does not already close. The input shapes
// are copied.
func NewCompoundPolygon(segments []Shape, closed bool) (*CompoundPolygon, error) {
	var b compoundBuilder
	for _, s := range segments {
		var err error
		switch seg := s.(type) {
		case *Line:
			err = b.segment(seg.Copy())
		case *Arc:
			err = b.segment(seg.Copy())
		case *Polygon:
			err = b.polygon(seg)
		default:
			err = fmt.Errorf("geom: compound polygon segments must be lines, arcs or polygons, got %T: %w", s, ErrInvalidShapeParameters)
		}
		if err != nil {
			return nil, err
		}
	}
	return b.finish(closed)
}

// NewCompoundPolygonFromPoints builds a compound polygon of straight
// segments through the given points. Consecutive duplicate points
// (within TolMM) are dropped.
func NewCompoundPolygonFromPoints(points []Vector2D, closed bool) (*CompoundPolygon, error) {
	var b compoundBuilder
	for _, p := range points {
		b.point(p)
	}
	return b.finish(closed)
}

// NewCompoundPolygonFromShape builds a compound polygon from the
// atomic decomposition of any shape. Circles become full-turn arcs.
// The result is closed only when both closed is set and the source
// shape is closed.
func NewCompoundPolygonFromShape(s Shape, closed bool) *CompoundPolygon {
	atoms := s.AtomicShapes()
	segments := make([]Shape, 0, len(atoms))
	for _, atom := range atoms {
		if circle, ok := atom.(*Circle); ok {
			start := circle.Center.Add(V(circle.Radius, 0))
			segments = append(segments, NewArc(circle.Center, start, 360))
		} else {
			segments = append(segments, atom.Copy())
		}
	}
	return &CompoundPolygon{Closed: closed && s.IsClosed(), segments: segments}
}

// compoundBuilder accumulates a continuous segment chain.
type compoundBuilder struct {
	segments []Shape
	end      Vector2D
	hasEnd   bool
}

func (b *compoundBuilder) point(p Vector2D) {
	if b.hasEnd && b.end.IsEqual(p, TolMM) {
		return
	}
	if b.hasEnd {
		b.segments = append(b.segments, NewLine(b.end, p))
	}
	b.end = p
	b.hasEnd = true
}

// segment appends a line or arc, reversing it when its end rather
// than its start continues the chain. The builder owns s.
func (b *compoundBuilder) segment(s Shape) error {
	start, end := segmentStart(s), segmentEnd(s)
	switch {
	case len(b.segments) == 0 || (b.hasEnd && b.end.IsEqual(start, TolMM)):
		b.segments = append(b.segments, s)
	case b.hasEnd && b.end.IsEqual(end, TolMM):
		reverseSegment(s)
		b.segments = append(b.segments, s)
		end = start
	default:
		return fmt.Errorf("geom: segment starting at %v does not continue the chain ending at %v: %w", start, b.end, ErrDiscontinuousChain)
	}
	b.end = end
	b.hasEnd = true
	return nil
}

func (b *compoundBuilder) polygon(p *Polygon) error {
	points := p.Points
	switch len(points) {
	case 0:
		return fmt.Errorf("geom: cannot build a compound polygon from an empty polygon: %w", ErrInvalidShapeParameters)
	case 1:
		b.point(points[0])
		return nil
	}
	if len(b.segments) != 0 && !(b.hasEnd && b.end.IsEqual(points[0], TolMM)) {
		return fmt.Errorf("geom: polygon starting at %v does not continue the chain ending at %v: %w", points[0], b.end, ErrDiscontinuousChain)
	}
	for i := 0; i+1 < len(points); i++ {
		b.segments = append(b.segments, NewLine(points[i], points[i+1]))
	}
	if p.Closed {
		b.segments = append(b.segments, NewLine(points[len(points)-1], points[0]))
		b.end = points[0]
	} else {
		b.end = points[len(points)-1]
	}
	b.hasEnd = true
	return nil
}

func (b *compoundBuilder) finish(closed bool) (*CompoundPolygon, error) {
	if len(b.segments) == 0 {
		return nil, fmt.Errorf("geom: a compound polygon needs at least one segment: %w", ErrTooFewSegments)
	}
	c := &CompoundPolygon{Closed: closed, segments: b.segments}
	if closed {
		first := segmentStart(c.segments[0])
		if !first.IsEqual(b.end, TolMM) {
			c.segments = append(c.segments, NewLine(b.end, first))
		}
	}
	return c, nil
}

// Copy returns a deep copy of the compound polygon.
func (c *CompoundPolygon) Copy() Shape {
	segments := make([]Shape, len(c.segments))
	for i, s := range c.segments {
		segments[i] = s.Copy()
	}
	return &CompoundPolygon{Closed: c.Closed, segments: segments}
}

// Segments returns the line and arc segments tracing the outline. The
// slice is fresh, the segments are the live ones.
func (c *CompoundPolygon) Segments() []Shape {
	return append([]Shape(nil), c.segments...)
}

// Shapes returns the compound polygon itself.
func (c *CompoundPolygon) Shapes() []Shape { return []Shape{c} }

// AtomicShapes returns the line and arc segments of the outline.
func (c *CompoundPolygon) AtomicShapes() []Shape {
	return append([]Shape(nil), c.segments...)
}

// NativeShapes returns the compound polygon itself.
func (c *CompoundPolygon) NativeShapes() []Shape { return []Shape{c} }

// PointOrArc is one element of a compound polygon's compact
// decomposition: a corner point, or an arc when Arc is non-nil.
type PointOrArc struct {
	Point Vector2D
	Arc   *Arc
}

// PointsAndArcs returns the compact decomposition of the outline:
// straight stretches collapse to their corner points, arcs stay whole.
// Points shared between a stretch and a following arc, and the closing
// point of a closed outline, appear only once.
func (c *CompoundPolygon) PointsAndArcs() []PointOrArc {
	var out []PointOrArc
	var firstPoint, lastPoint Vector2D
	havePoint := false
	for i, seg := range c.segments {
		switch s := seg.(type) {
		case *Arc:
			if havePoint && out[len(out)-1].Arc == nil && lastPoint.IsEqual(s.Start(), TolMM) {
				out = out[:len(out)-1]
			}
			out = append(out, PointOrArc{Arc: s})
			lastPoint = s.End()
		case *Line:
			if !havePoint {
				out = append(out, PointOrArc{Point: s.Start})
			}
			out = append(out, PointOrArc{Point: s.End})
			lastPoint = s.End
		}
		havePoint = true
		if i == 0 {
			firstPoint = segmentStart(seg)
		}
	}
	if havePoint && len(out) > 0 && out[len(out)-1].Arc == nil && lastPoint.IsEqual(firstPoint, TolMM) {
		out = out[:len(out)-1]
	}
	return out
}

// IsClosed reports whether the outline is closed.
func (c *CompoundPolygon) IsClosed() bool { return c.Closed }

// HasArcs reports whether any segment of the outline is an arc.
func (c *CompoundPolygon) HasArcs() bool {
	for _, s := range c.segments {
		if _, ok := s.(*Arc); ok {
			return true
		}
	}
	return false
}

// Translate moves the compound polygon in place and returns the
// receiver.
func (c *CompoundPolygon) Translate(v Vector2D) Shape {
	for _, s := range c.segments {
		s.Translate(v)
	}
	return c
}

// Rotate rotates the compound polygon in place by angleDeg degrees
// around origin and returns the receiver.
func (c *CompoundPolygon) Rotate(angleDeg float64, origin Vector2D) Shape {
	for _, s := range c.segments {
		s.Rotate(angleDeg, origin)
	}
	return c
}

// RotateRad rotates the compound polygon in place by angleRad radians
// around origin and returns the receiver.
func (c *CompoundPolygon) RotateRad(angleRad float64, origin Vector2D) Shape {
	for _, s := range c.segments {
		s.RotateRad(angleRad, origin)
	}
	return c
}

// BBox returns the bounding box of the outline.
func (c *CompoundPolygon) BBox() BoundingBox {
	return bboxOf(c.segments)
}

// IsEqual reports whether other is a compound polygon with the same
// segments in the same order within tol.
func (c *CompoundPolygon) IsEqual(other Shape, tol float64) bool {
	o, ok := other.(*CompoundPolygon)
	if !ok {
		return false
	}
	return c.Closed == o.Closed && shapesEqual(c.segments, o.segments, tol)
}

// IsPointOnSelf reports whether a point lies on the outline within
// tol.
func (c *CompoundPolygon) IsPointOnSelf(point Vector2D, excludeEnds bool, tol float64) bool {
	return isPointOnAnyShape(c.segments, point, excludeEnds, tol)
}

// IsPointInside reports whether a point is inside the compound
// polygon, by counting how often a ray from the point crosses the
// outline. A ray through a segment joint counts once: the crossing is
// attributed to the segment whose far end continues past the ray.
func (c *CompoundPolygon) IsPointInside(point Vector2D, strict bool, tol float64) bool {
	segments := c.segments
	for _, segment := range segments {
		if segment.IsPointOnSelf(point, false, tol) {
			return !strict
		}
	}

	n := len(segments)
	var nextOnRight, nextOnLeft func(i, iStart int) int
	nextOnRight = func(i, iStart int) int {
		if line, ok := segments[i].(*Line); ok {
			if line.End.X > point.X+tol {
				return 1
			}
			if line.End.X < point.X-tol {
				return 0
			}
			i = (i + 1) % n
			if i == iStart {
				return 0
			}
			return nextOnRight(i, iStart)
		}
		if segments[i].BBox().Right() > point.X+tol {
			return 1
		}
		return 0
	}
	nextOnLeft = func(i, iStart int) int {
		if line, ok := segments[i].(*Line); ok {
			if line.End.X < point.X-tol {
				return 1
			}
			if line.End.X > point.X+tol {
				return 0
			}
			i = (i + 1) % n
			if i == iStart {
				return 0
			}
			return nextOnLeft(i, iStart)
		}
		if segments[i].BBox().Left() < point.X-tol {
			return 1
		}
		return 0
	}

	numIntersections := 0
	for i, segment := range segments {
		switch seg := segment.(type) {
		case *Line:
			for _, ip := range intersectRayWithLine(point, seg, tol) {
				if ip.IsEqual(seg.End, tol) {
					if seg.Start.X < point.X-tol {
						numIntersections += nextOnRight((i+1)%n, i)
					} else {
						numIntersections += nextOnLeft((i+1)%n, i)
					}
				} else {
					numIntersections++
				}
			}
		case *Arc:
			for _, ip := range intersectRayWithArc(point, seg, false, tol) {
				if ip.IsEqual(seg.End(), tol) {
					if seg.BBox().Left() < point.X-tol {
						numIntersections += nextOnRight((i+1)%n, i)
					} else {
						numIntersections += nextOnLeft((i+1)%n, i)
					}
				} else {
					numIntersections++
				}
			}
		}
	}
	return numIntersections%2 == 1
}

// IsClockwise reports whether the outline runs clockwise, in the
// y-down coordinate system. Arc mid points take part in the shoelace
// sum so that bulges count.
func (c *CompoundPolygon) IsClockwise() bool {
	return segmentsAreClockwise(c.segments)
}

func segmentsAreClockwise(segments []Shape) bool {
	points := make([]Vector2D, 0, 2*len(segments))
	for _, s := range segments {
		points = append(points, segmentStart(s))
		if arc, ok := s.(*Arc); ok {
			points = append(points, arc.Mid())
		}
	}
	return pointsAreClockwise(points)
}

// Inflate offsets the outline outward by amount, or inward for a
// negative amount. Convex corners are rounded with arc fillets of
// radius amount. Returns an error when the operation would produce an
// invalid outline; the compound polygon is unchanged in that case.
func (c *CompoundPolygon) Inflate(amount float64) error {
	return c.inflate(amount, TolMM)
}

func (c *CompoundPolygon) inflate(amount, tol float64) error {
	if amount == 0 {
		return nil
	}
	invalid := func() error {
		return fmt.Errorf("geom: inflating compound polygon by %v results in an invalid shape: %w", amount, ErrInflationInvalid)
	}

	segments := make([]Shape, len(c.segments))
	for i, s := range c.segments {
		segments[i] = s.Copy()
	}
	points := make([]Vector2D, len(segments))
	for i, s := range segments {
		points[i] = segmentStart(s)
	}

	// Shift every line outward along its orthogonal and every arc
	// radially: convex arcs grow, concave arcs shrink. Convex arcs
	// whose radius would turn negative vanish; their neighbors meet at
	// the corner pass below. Index 0 holds the start-side vectors,
	// index 1 the end-side ones; lines carry the same vector twice.
	directions := make([][2]Vector2D, 0, len(segments))
	orthogonals := make([][2]Vector2D, 0, len(segments))
	for i := 0; i < len(segments); {
		switch seg := segments[i].(type) {
		case *Line:
			direction, err := seg.UnitDirection(tol)
			if err != nil {
				return invalid()
			}
			directions = append(directions, [2]Vector2D{direction, direction})
			orthogonal := direction.Orthogonal().Neg()
			orthogonals = append(orthogonals, [2]Vector2D{orthogonal, orthogonal})
			delta := orthogonal.Mul(amount)
			seg.Start = seg.Start.Add(delta)
			seg.End = seg.End.Add(delta)
		case *Arc:
			radius := seg.Radius()
			if seg.Angle() > 0 {
				radius += amount
			} else {
				radius -= amount
			}
			if radius < 0 && seg.Angle() >= 0 {
				segments = append(segments[:i], segments[i+1:]...)
				points = append(points[:i], points[i+1:]...)
				continue
			}
			dir, ortho := arcDirAndOrtho(seg)
			directions = append(directions, dir)
			orthogonals = append(orthogonals, ortho)
			seg.SetRadius(radius)
		}
		i++
	}

	nanVec := V(math.NaN(), math.NaN())
	nanPair := [2]Vector2D{nanVec, nanVec}
	removeAt := func(index int) {
		segments = append(segments[:index], segments[index+1:]...)
		directions = append(directions[:index], directions[index+1:]...)
		orthogonals = append(orthogonals[:index], orthogonals[index+1:]...)
		points = append(points[:index], points[index+1:]...)
	}
	insertAt := func(index int, s Shape) {
		segments = append(segments, nil)
		copy(segments[index+1:], segments[index:])
		segments[index] = s
		directions = append(directions, nanPair)
		copy(directions[index+1:], directions[index:])
		directions[index] = nanPair
		orthogonals = append(orthogonals, nanPair)
		copy(orthogonals[index+1:], orthogonals[index:])
		orthogonals[index] = nanPair
		// The NaN marker identifies inserted fillet arcs.
		points = append(points, nanVec)
		copy(points[index+1:], points[index:])
		points[index] = nanVec
	}

	// Mend every corner: when inflating, join the shifted segments
	// with a fillet arc around the original corner point; when the
	// segments overlap instead (deflation, concave corners), trim them
	// to their intersection and drop what flipped or vanished.
	i := 0
	if !c.Closed {
		i = 1
	}
	for i < len(segments) {
		prev := i - 1
		if prev < 0 {
			prev = len(segments) - 1
		}
		s1, s2 := segments[prev], segments[i]
		o1, d1 := orthogonals[prev][1], directions[prev][1]
		if arc, ok := s1.(*Arc); ok && arc.Angle() < 0 {
			o1, d1 = o1.Neg(), d1.Neg()
		}
		o2 := orthogonals[i][0]
		if arc, ok := s2.(*Arc); ok && arc.Angle() < 0 {
			o2 = o2.Neg()
		}
		if amount > 0 {
			forward, err := o2.Add(o1).Resize(amount, tol)
			if err != nil {
				line1, ok1 := s1.(*Line)
				line2, ok2 := s2.(*Line)
				if ok1 && ok2 {
					// Collinear opposite-direction neighbors; they are
					// cleaned up by a later simplification, so just
					// connect them.
					line1.End = line2.Start
					i++
					continue
				}
				// A zero-degree corner against an arc: the offset
				// continues straight along the first segment.
				forward, _ = d1.Resize(amount, tol)
			}
			if segmentEnd(s1).IsEqual(segmentStart(s2), tol) {
				i++
				continue
			}
			fillet, err := NewArcThreePoints(segmentEnd(s1), points[i].Add(forward), segmentStart(s2))
			if err != nil {
				return invalid()
			}
			if fillet.Angle() > 0 {
				insertAt(i, fillet)
				i += 2
				continue
			}
			// A negative fillet angle means the shifted segments
			// crossed; trim them below like a deflation corner.
		}

		ips := intersectAtomicShapes(s1, s2, atomicIntersectConfig{infiniteLine: true}, tol)
		if len(ips) == 0 {
			return invalid()
		}
		ip := ips[0]
		if len(ips) == 2 {
			// Pick the intersection closest to the trailing half of
			// the first segment.
			midEnd := segmentMid(s1).Add(segmentEnd(s1)).Div(2)
			if midEnd.Distance(ips[0]) > midEnd.Distance(ips[1]) {
				ip = ips[1]
			}
		}
		lineDir1, arcDir1 := segmentDirection(s1)
		lineDir2, arcDir2 := segmentDirection(s2)
		segmentSetEnd(s1, ip)
		segmentSetStart(s2, ip)
		removed := 0
		if segmentFlippedOrZero(s2, lineDir2, arcDir2, tol) {
			removeAt(i)
			removed++
		}
		if segmentFlippedOrZero(s1, lineDir1, arcDir1, tol) {
			j := i - 1
			if j < 0 {
				j = len(segments) - 1
			}
			removeAt(j)
			removed++
		}
		if len(segments) <= 1 {
			return invalid()
		}
		// When both neighbors vanished, a fillet arc built between
		// them no longer has anything to connect.
		if removed == 2 {
			k := i - 2
			if k < 0 {
				k += len(segments)
			}
			if math.IsNaN(points[k].X) {
				removeAt(k)
				removed++
			}
		}
		i += 1 - removed
		if i < 0 {
			i = 0
		}
	}

	// A deflation that flips the winding went too far.
	if amount < 0 && !segmentsAreClockwise(segments) {
		return invalid()
	}
	if len(segments) <= 1 {
		return invalid()
	}
	c.segments = segments
	return nil
}

// arcDirAndOrtho returns the unit tangent and outward radial unit
// vectors at an arc's start and end points.
func arcDirAndOrtho(arc *Arc) (directions, orthogonals [2]Vector2D) {
	radius := arc.Radius()
	orthogonals = [2]Vector2D{
		arc.Start().Sub(arc.Center()).Div(radius),
		arc.End().Sub(arc.Center()).Div(radius),
	}
	directions = [2]Vector2D{
		orthogonals[0].Orthogonal(),
		orthogonals[1].Orthogonal(),
	}
	return directions, orthogonals
}

// Simplify removes segments shorter than MinSegmentLength, keeps only
// the outer outline where the outline self-intersects, and merges
// collinear lines and arcs sharing a carrier circle. Returns an error
// when too few segments remain; the compound polygon is unchanged in
// that case.
func (c *CompoundPolygon) Simplify() error {
	segments := make([]Shape, len(c.segments))
	for i, s := range c.segments {
		segments[i] = s.Copy()
	}
	removeZeroLengthSegments(&segments, MinSegmentLength)
	if !keepOnlyOuterOutline(&segments, TolMM) {
		return fmt.Errorf("geom: simplification results in an invalid shape: %w", ErrTooFewSegments)
	}
	if !mergeSegments(&segments, TolMM) {
		return fmt.Errorf("geom: simplification results in an invalid shape: %w", ErrTooFewSegments)
	}
	c.segments = segments
	return nil
}

// RoundToGrid returns the outline unchanged. Snapping arc end points
// to a grid without breaking tangency needs an arc re-fitting step
// that is not implemented.
//
// TODO: implement grid rounding for outlines with arc segments.
func (c *CompoundPolygon) RoundToGrid(grid float64, outwards bool) *CompoundPolygon {
	return c
}
