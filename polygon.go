package geom

import (
	"fmt"
	"math"
)

// Polygon is a chain of straight segments through a list of corner
// points. A closed polygon has an implicit segment from the last point
// back to the first.
type Polygon struct {
	// Points are the corner points. Mutate them only through the
	// polygon's methods so the segment cache stays valid.
	Points []Vector2D
	// Closed reports whether the last point connects back to the
	// first.
	Closed bool

	segments []*Line
}

// NewPolygon creates a closed polygon from corner points. Consecutive
// duplicate points (within TolMM) are dropped.
func NewPolygon(points []Vector2D) *Polygon {
	p := &Polygon{Points: append([]Vector2D(nil), points...), Closed: true}
	p.removeDuplicatePoints(TolMM)
	return p
}

// NewOpenPolygon creates an open polyline through the given points.
func NewOpenPolygon(points []Vector2D) *Polygon {
	p := &Polygon{Points: append([]Vector2D(nil), points...), Closed: false}
	p.removeDuplicatePoints(TolMM)
	return p
}

// NewPolygonFromLines creates a closed polygon from the start points
// of a continuous line chain.
func NewPolygonFromLines(lines []*Line) *Polygon {
	points := make([]Vector2D, 0, len(lines))
	for _, l := range lines {
		points = append(points, l.Start)
	}
	return NewPolygon(points)
}

// NewPolygonFromBBox creates the axis-aligned rectangle polygon of a
// bounding box, traced clockwise from the top-left corner.
func NewPolygonFromBBox(bb BoundingBox) *Polygon {
	return NewPolygon([]Vector2D{
		V(bb.Left(), bb.Top()),
		V(bb.Right(), bb.Top()),
		V(bb.Right(), bb.Bottom()),
		V(bb.Left(), bb.Bottom()),
	})
}

// NewPolygonFromRectangle creates the polygon of a rectangle's corner
// points.
func NewPolygonFromRectangle(r *Rectangle) *Polygon {
	return NewPolygon(r.CornerPoints())
}

// Copy returns a deep copy of the polygon.
func (p *Polygon) Copy() Shape {
	return &Polygon{
		Points: append([]Vector2D(nil), p.Points...),
		Closed: p.Closed,
	}
}

// Shapes returns the polygon itself.
func (p *Polygon) Shapes() []Shape { return []Shape{p} }

// AtomicShapes returns the line segments of the polygon.
func (p *Polygon) AtomicShapes() []Shape {
	segments := p.Segments()
	atoms := make([]Shape, len(segments))
	for i, s := range segments {
		atoms[i] = s
	}
	return atoms
}

// NativeShapes returns the polygon itself.
func (p *Polygon) NativeShapes() []Shape { return []Shape{p} }

// IsClosed reports whether the polygon outline is closed.
func (p *Polygon) IsClosed() bool { return p.Closed }

// Segments returns the line segments of the polygon. The segments are
// cached; mutating methods invalidate the cache.
func (p *Polygon) Segments() []*Line {
	if p.segments != nil {
		return p.segments
	}
	num := len(p.Points)
	numLines := num
	if !p.Closed {
		numLines = num - 1
	}
	p.segments = make([]*Line, 0, numLines)
	for i := 0; i < numLines; i++ {
		p.segments = append(p.segments, NewLine(p.Points[i], p.Points[(i+1)%num]))
	}
	return p.segments
}

// Translate moves the polygon in place and returns the receiver.
func (p *Polygon) Translate(v Vector2D) Shape {
	for i := range p.Points {
		p.Points[i] = p.Points[i].Add(v)
	}
	p.segments = nil
	return p
}

// Rotate rotates the polygon in place by angleDeg degrees around
// origin and returns the receiver.
func (p *Polygon) Rotate(angleDeg float64, origin Vector2D) Shape {
	return p.RotateRad(degToRad(angleDeg), origin)
}

// RotateRad rotates the polygon in place by angleRad radians around
// origin and returns the receiver.
func (p *Polygon) RotateRad(angleRad float64, origin Vector2D) Shape {
	for i := range p.Points {
		p.Points[i] = p.Points[i].RotateRad(angleRad, origin)
	}
	p.segments = nil
	return p
}

// MirrorX mirrors the polygon in place across the vertical axis at x.
func (p *Polygon) MirrorX(x float64) *Polygon {
	for i := range p.Points {
		p.Points[i].X = 2*x - p.Points[i].X
	}
	p.segments = nil
	return p
}

// MirrorY mirrors the polygon in place across the horizontal axis at
// y.
func (p *Polygon) MirrorY(y float64) *Polygon {
	for i := range p.Points {
		p.Points[i].Y = 2*y - p.Points[i].Y
	}
	p.segments = nil
	return p
}

// TransformPoints replaces every corner point with the result of the
// transform.
func (p *Polygon) TransformPoints(transform func(Vector2D) Vector2D) {
	for i := range p.Points {
		p.Points[i] = transform(p.Points[i])
	}
	p.segments = nil
}

// BBox returns the bounding box of the corner points.
func (p *Polygon) BBox() BoundingBox {
	var bb BoundingBox
	for _, pt := range p.Points {
		bb.IncludePoint(pt)
	}
	return bb
}

// IsEqual reports whether other is a polygon with the same corner
// points in the same order within tol.
func (p *Polygon) IsEqual(other Shape, tol float64) bool {
	o, ok := other.(*Polygon)
	if !ok {
		return false
	}
	if len(p.Points) != len(o.Points) || p.Closed != o.Closed {
		return false
	}
	for i := range p.Points {
		if !p.Points[i].IsEqual(o.Points[i], tol) {
			return false
		}
	}
	return true
}

// IsPointOnSelf reports whether p lies on the polygon outline within
// tol.
func (p *Polygon) IsPointOnSelf(point Vector2D, excludeEnds bool, tol float64) bool {
	for _, segment := range p.Segments() {
		if segment.IsPointOnSelf(point, excludeEnds, tol) {
			return true
		}
	}
	return false
}

// IsPointInside reports whether a point is inside the polygon, by
// counting how often a ray from the point crosses the outline. A ray
// through a corner counts once: the corner crossing is attributed to
// the segment whose far end continues past the ray.
func (p *Polygon) IsPointInside(point Vector2D, strict bool, tol float64) bool {
	segments := p.Segments()
	for _, segment := range segments {
		if segment.IsPointOnSelf(point, false, tol) {
			return !strict
		}
	}

	n := len(segments)
	var nextOnRight, nextOnLeft func(i, iStart int) int
	nextOnRight = func(i, iStart int) int {
		if segments[i].End.X > point.X+tol {
			return 1
		}
		if segments[i].End.X < point.X-tol {
			return 0
		}
		i = (i + 1) % n
		if i == iStart {
			return 0
		}
		return nextOnRight(i, iStart)
	}
	nextOnLeft = func(i, iStart int) int {
		if segments[i].End.X < point.X-tol {
			return 1
		}
		if segments[i].End.X > point.X+tol {
			return 0
		}
		i = (i + 1) % n
		if i == iStart {
			return 0
		}
		return nextOnLeft(i, iStart)
	}

	numIntersections := 0
	for i, segment := range segments {
		ips := intersectRayWithLine(point, segment, tol)
		if len(ips) == 0 {
			continue
		}
		if ips[0].IsEqual(segment.End, tol) {
			if segment.Start.X < point.X-tol {
				numIntersections += nextOnRight((i+1)%n, i)
			} else {
				numIntersections += nextOnLeft((i+1)%n, i)
			}
		} else {
			numIntersections++
		}
	}
	return numIntersections%2 == 1
}

// IsClockwise reports whether the corner points run clockwise, in the
// y-down coordinate system.
func (p *Polygon) IsClockwise() bool {
	return pointsAreClockwise(p.Points)
}

// MakeClockwise reverses the corner points if they run
// counterclockwise.
func (p *Polygon) MakeClockwise() {
	if !p.IsClockwise() {
		for i, j := 0, len(p.Points)-1; i < j; i, j = i+1, j-1 {
			p.Points[i], p.Points[j] = p.Points[j], p.Points[i]
		}
		p.segments = nil
	}
}

// Inflate offsets the outline outward by amount, or inward for a
// negative amount. Convex corners sharper than 90 degrees are chamfered
// so the offset outline does not overshoot. Returns an error when the
// operation would produce an invalid outline; the polygon is unchanged
// in that case.
func (p *Polygon) Inflate(amount float64) error {
	return p.inflate(amount, TolMM)
}

func (p *Polygon) inflate(amount, tol float64) error {
	invalid := func() error {
		return fmt.Errorf("geom: inflating polygon by %v results in an invalid shape: %w", amount, ErrInflationInvalid)
	}

	segments := make([]*Line, 0, len(p.Segments()))
	for _, s := range p.Segments() {
		segments = append(segments, NewLine(s.Start, s.End))
	}
	points := append([]Vector2D(nil), p.Points...)

	// Shift every segment outward along its orthogonal.
	directions := make([]Vector2D, 0, len(segments))
	orthogonals := make([]Vector2D, 0, len(segments))
	for _, segment := range segments {
		direction, err := segment.UnitDirection(tol)
		if err != nil {
			return invalid()
		}
		directions = append(directions, direction)
		orthogonal := direction.Orthogonal().Neg()
		orthogonals = append(orthogonals, orthogonal)
		delta := orthogonal.Mul(amount)
		segment.Start = segment.Start.Add(delta)
		segment.End = segment.End.Add(delta)
	}

	removeAt := func(index int) {
		segments = append(segments[:index], segments[index+1:]...)
		directions = append(directions[:index], directions[index+1:]...)
		orthogonals = append(orthogonals[:index], orthogonals[index+1:]...)
		points = append(points[:index], points[index+1:]...)
	}

	// Reconnect neighboring segments: extend or shrink them to their
	// intersection, inserting a chamfer segment at corners sharper
	// than 90 degrees when inflating.
	needsSimplification := false
	i := 0
	if !p.Closed {
		i = 1
	}
	for i < len(segments) {
		prev := i - 1
		if prev < 0 {
			prev = len(segments) - 1
		}
		if directions[i].Dot(directions[prev]) <= -tol {
			needsSimplification = true
			if amount > 0 {
				forward, err := orthogonals[i].Add(orthogonals[prev]).Normalize(tol)
				if err != nil {
					return invalid()
				}
				forwardOrthogonal := forward.Orthogonal()
				offset, err := forward.Resize(amount, tol)
				if err != nil {
					return invalid()
				}
				newStart := points[i].Add(offset)
				newLine := NewLine(newStart, newStart.Add(forwardOrthogonal))

				segments = append(segments, nil)
				copy(segments[i+1:], segments[i:])
				segments[i] = newLine
				directions = append(directions, Vector2D{})
				copy(directions[i+1:], directions[i:])
				directions[i] = forwardOrthogonal
				orthogonals = append(orthogonals, Vector2D{})
				copy(orthogonals[i+1:], orthogonals[i:])
				orthogonals[i] = forward
				// Dummy entry to keep the lists index-aligned.
				points = append(points, Vector2D{})
				copy(points[i+1:], points[i:])
				points[i] = points[0]

				prev = i - 1
				if prev < 0 {
					prev = len(segments) - 1
				}
			}
		}
		pts := intersectLines(segments[prev], segments[i], false, false, true, tol)
		if len(pts) == 0 {
			// The neighbors are collinear: merge them.
			segments[prev].End = segments[i].End
			removeAt(i)
		} else {
			segment := segments[prev]
			segment.End = pts[0]
			segments[i].Start = pts[0]
			if math.Abs(segment.Start.X-segment.End.X) <= tol &&
				math.Abs(segment.Start.Y-segment.End.Y) <= tol {
				removeAt(prev)
				i--
			}
			i++
		}
	}

	// A deflation that flips the winding went too far.
	if amount < 0 {
		if !pointsAreClockwise(points) {
			return invalid()
		}
		for j := 0; j < len(segments); {
			if segments[j].Length() < MinSegmentLength {
				segments = append(segments[:j], segments[j+1:]...)
			} else {
				j++
			}
		}
	}

	if len(segments) <= 2 {
		return invalid()
	}
	if needsSimplification {
		simplified, err := simplifyLineChain(segments, MinSegmentLength, tol)
		if err != nil {
			return invalid()
		}
		segments = simplified
	}

	newPoints := make([]Vector2D, 0, len(segments)+1)
	for _, segment := range segments {
		newPoints = append(newPoints, segment.Start)
	}
	if !p.Closed {
		newPoints = append(newPoints, segments[len(segments)-1].End)
	}
	p.Points = newPoints
	p.segments = segments
	return nil
}

// Simplify removes segments shorter than MinSegmentLength, keeps only
// the outer outline where the outline self-intersects, and merges
// collinear neighbors.
func (p *Polygon) Simplify() error {
	segments, err := simplifyLineChain(p.Segments(), MinSegmentLength, TolMM)
	if err != nil {
		return err
	}
	newPoints := make([]Vector2D, 0, len(segments)+1)
	for _, segment := range segments {
		newPoints = append(newPoints, segment.Start)
	}
	if !p.Closed {
		newPoints = append(newPoints, segments[len(segments)-1].End)
	}
	p.Points = newPoints
	p.segments = segments
	return nil
}

// simplifyLineChain runs the chain cleanup passes on a line-only
// outline and returns the result. The input slice is not kept.
func simplifyLineChain(segments []*Line, minSegmentLength, tol float64) ([]*Line, error) {
	shapes := make([]Shape, len(segments))
	for i, s := range segments {
		shapes[i] = s
	}
	removeZeroLengthSegments(&shapes, minSegmentLength)
	if !keepOnlyOuterOutline(&shapes, tol) {
		return nil, fmt.Errorf("geom: simplification results in an invalid shape: %w", ErrTooFewSegments)
	}
	if !mergeSegments(&shapes, tol) {
		return nil, fmt.Errorf("geom: simplification results in an invalid shape: %w", ErrTooFewSegments)
	}
	lines := make([]*Line, len(shapes))
	for i, s := range shapes {
		lines[i] = s.(*Line)
	}
	return lines, nil
}

// RoundToGrid rounds every corner point to the grid. With outwards,
// each edge is pushed away from the interior so the rounded outline
// covers the original; otherwise points snap to the nearest grid
// intersection.
func (p *Polygon) RoundToGrid(grid float64, outwards bool) *Polygon {
	if !outwards {
		for i := range p.Points {
			p.Points[i].X = RoundToGridNearest(p.Points[i].X, grid)
			p.Points[i].Y = RoundToGridNearest(p.Points[i].Y, grid)
		}
		p.segments = nil
		return p
	}

	roundUp, roundDown := RoundToGridUp, RoundToGridDown
	if !p.IsClockwise() {
		roundUp, roundDown = roundDown, roundUp
	}
	eps := grid / 100
	num := len(p.Points)
	for i := range p.Points {
		pt1 := &p.Points[i]
		pt2 := &p.Points[(i+1)%num]
		if pt1.X < pt2.X { // going right: a top edge
			pt1.Y = roundDown(pt1.Y, grid, eps)
			pt2.Y = roundDown(pt2.Y, grid, eps)
		} else if pt1.X > pt2.X { // going left: a bottom edge
			pt1.Y = roundUp(pt1.Y, grid, eps)
			pt2.Y = roundUp(pt2.Y, grid, eps)
		}
		if pt1.Y > pt2.Y { // going up: a left edge
			pt1.X = roundDown(pt1.X, grid, eps)
			pt2.X = roundDown(pt2.X, grid, eps)
		} else if pt1.Y < pt2.Y { // going down: a right edge
			pt1.X = roundUp(pt1.X, grid, eps)
			pt2.X = roundUp(pt2.X, grid, eps)
		}
	}
	p.segments = nil
	return p
}

// removeDuplicatePoints drops points that duplicate their predecessor
// within tol.
func (p *Polygon) removeDuplicatePoints(tol float64) {
	i := 0
	if !p.Closed {
		i = 1
	}
	for i < len(p.Points) && len(p.Points) > 1 {
		prev := i - 1
		if prev < 0 {
			prev = len(p.Points) - 1
		}
		if p.Points[i].IsEqual(p.Points[prev], tol) {
			p.Points = append(p.Points[:prev], p.Points[prev+1:]...)
		} else {
			i++
		}
	}
}

// pointsAreClockwise reports whether a point loop runs clockwise in
// the y-down coordinate system, by the sign of the shoelace sum.
func pointsAreClockwise(points []Vector2D) bool {
	sum := 0.0
	num := len(points)
	for i, pt1 := range points {
		pt2 := points[(i+1)%num]
		sum += (pt2.X - pt1.X) * (pt2.Y + pt1.Y)
	}
	return sum < 0
}
