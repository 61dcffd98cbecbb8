package geom

import (
	"fmt"
	"math"
)

// Trapezoid is an isosceles trapezoid, optionally with rounded
// corners. A negative side angle narrows the top edge, a positive one
// narrows the bottom edge. With a side angle of zero it degenerates to
// a rectangle.
type Trapezoid struct {
	// Center is the center point.
	Center Vector2D
	// Size is the width of the longer parallel side and the height.
	// Both components are positive.
	Size Vector2D
	// CornerRadius is the radius of the corner rounding. It is never
	// negative.
	CornerRadius float64
	// SideAngle is the slant of the two sides in degrees.
	SideAngle float64
	angle     float64

	shapes []Shape
}

// NewTrapezoid creates a trapezoid of the given size centered on
// center. The two sides slant by sideAngleDeg degrees and the corners
// are rounded with cornerRadius. The whole shape is rotated by
// angleDeg degrees around its center. Negative size components are
// made positive and a negative corner radius is treated as zero.
func NewTrapezoid(center, size Vector2D, cornerRadius, sideAngleDeg, angleDeg float64) *Trapezoid {
	return &Trapezoid{
		Center:       center,
		Size:         V(math.Abs(size.X), math.Abs(size.Y)),
		CornerRadius: math.Max(cornerRadius, 0),
		SideAngle:    sideAngleDeg,
		angle:        normalizeAngle180(angleDeg),
	}
}

// NewTrapezoidFromCorner creates a trapezoid from the corner of its
// bounding box with the smallest coordinates before rotation.
func NewTrapezoidFromCorner(corner, size Vector2D, cornerRadius, sideAngleDeg, angleDeg float64) *Trapezoid {
	size = V(math.Abs(size.X), math.Abs(size.Y))
	return NewTrapezoid(corner.Add(size.Div(2)), size, cornerRadius, sideAngleDeg, angleDeg)
}

// Copy returns a deep copy of the trapezoid.
func (t *Trapezoid) Copy() Shape {
	c := *t
	c.shapes = nil
	return &c
}

// Shapes returns the outline of the trapezoid in clockwise order. With
// sharp corners the outline is a single polygon or rectangle, with
// rounded corners it is four lines joined by four corner arcs.
func (t *Trapezoid) Shapes() []Shape {
	if t.shapes != nil {
		return t.shapes
	}
	at := t.Center.Sub(t.Size.Div(2))
	size := t.Size
	aa := math.Abs(t.SideAngle)
	dx := size.Y * math.Tan(degToRad(aa))
	cr := t.CornerRadius

	switch {
	case cr == 0 && t.SideAngle == 0:
		t.shapes = []Shape{NewRectangle(t.Center, size, 0)}
	case cr == 0 && t.SideAngle < 0:
		t.shapes = []Shape{NewPolygon([]Vector2D{
			{at.X + dx, at.Y},
			{at.X + size.X - dx, at.Y},
			{at.X + size.X, at.Y + size.Y},
			{at.X, at.Y + size.Y},
		})}
	case cr == 0:
		t.shapes = []Shape{NewPolygon([]Vector2D{
			{at.X, at.Y},
			{at.X + size.X, at.Y},
			{at.X + size.X - dx, at.Y + size.Y},
			{at.X + dx, at.Y + size.Y},
		})}
	case t.SideAngle == 0:
		t.shapes = []Shape{NewRoundRectangleFromCorner(at, size, cr, 0)}
	default:
		// The corner circles are tangent to the parallel edges and to
		// the slanted sides. dx2 and dx3 place their centers, ds2 and
		// dc2 reach from a center to the tangent point on a side.
		dx2 := cr * math.Tan(degToRad((90-aa)/2))
		dx3 := cr / math.Tan(degToRad((90-aa)/2))
		ds2 := cr * math.Sin(degToRad(aa))
		dc2 := cr * math.Cos(degToRad(aa))
		if t.SideAngle < 0 {
			ctl := V(at.X+dx+dx2, at.Y+cr)
			ctr := V(at.X+size.X-dx-dx2, at.Y+cr)
			cbr := V(at.X+size.X-dx3, at.Y+size.Y-cr)
			cbl := V(at.X+dx3, at.Y+size.Y-cr)
			t.shapes = []Shape{
				NewArc(ctl, V(ctl.X-dc2, ctl.Y-ds2), 90-aa),
				NewLine(V(ctl.X, at.Y), V(ctr.X, at.Y)),
				NewArc(ctr, V(ctr.X, at.Y), 90-aa),
				NewLine(V(ctr.X+dc2, ctr.Y-ds2), V(cbr.X+dc2, cbr.Y-ds2)),
				NewArc(cbr, V(cbr.X+dc2, cbr.Y-ds2), 90+aa),
				NewLine(V(cbr.X, at.Y+size.Y), V(cbl.X, at.Y+size.Y)),
				NewArc(cbl, V(cbl.X, at.Y+size.Y), 90+aa),
				NewLine(V(cbl.X-dc2, cbl.Y-ds2), V(ctl.X-dc2, ctl.Y-ds2)),
			}
		} else {
			ctl := V(at.X+dx3, at.Y+cr)
			ctr := V(at.X+size.X-dx3, at.Y+cr)
			cbr := V(at.X+size.X-dx-dx2, at.Y+size.Y-cr)
			cbl := V(at.X+dx+dx2, at.Y+size.Y-cr)
			t.shapes = []Shape{
				NewArc(ctl, V(ctl.X-dc2, ctl.Y+ds2), 90+aa),
				NewLine(V(ctl.X, at.Y), V(ctr.X, at.Y)),
				NewArc(ctr, V(ctr.X, at.Y), 90+aa),
				NewLine(V(ctr.X+dc2, ctr.Y+ds2), V(cbr.X+dc2, cbr.Y+ds2)),
				NewArc(cbr, V(cbr.X+dc2, cbr.Y+ds2), 90-aa),
				NewLine(V(cbr.X, at.Y+size.Y), V(cbl.X, at.Y+size.Y)),
				NewArc(cbl, V(cbl.X, at.Y+size.Y), 90-aa),
				NewLine(V(cbl.X-dc2, cbl.Y+ds2), V(ctl.X-dc2, ctl.Y+ds2)),
			}
		}
	}
	if t.angle != 0 {
		for _, s := range t.shapes {
			s.Rotate(t.angle, t.Center)
		}
	}
	return t.shapes
}

// AtomicShapes returns the lines and arcs of the outline.
func (t *Trapezoid) AtomicShapes() []Shape { return atomicShapesOf(t.Shapes()) }

// NativeShapes returns the outline as natively representable shapes.
func (t *Trapezoid) NativeShapes() []Shape { return nativeShapesOf(t.Shapes()) }

// IsClosed reports that a trapezoid encloses an area.
func (t *Trapezoid) IsClosed() bool { return true }

// Angle returns the rotation angle in degrees.
func (t *Trapezoid) Angle() float64 { return t.angle }

// SetAngle sets the rotation angle in degrees.
func (t *Trapezoid) SetAngle(angleDeg float64) {
	t.angle = normalizeAngle180(angleDeg)
	t.shapes = nil
}

// Translate moves the trapezoid by v.
func (t *Trapezoid) Translate(v Vector2D) Shape {
	t.Center = t.Center.Add(v)
	t.shapes = nil
	return t
}

// Rotate rotates the trapezoid by angleDeg degrees around origin.
func (t *Trapezoid) Rotate(angleDeg float64, origin Vector2D) Shape {
	if angleDeg == 0 {
		return t
	}
	t.Center = t.Center.Rotate(angleDeg, origin)
	t.angle = normalizeAngle180(t.angle + angleDeg)
	t.shapes = nil
	return t
}

// RotateRad rotates the trapezoid by angleRad radians around origin.
func (t *Trapezoid) RotateRad(angleRad float64, origin Vector2D) Shape {
	return t.Rotate(radToDeg(angleRad), origin)
}

// Inflate grows the trapezoid by amount on every side, or shrinks it
// for a negative amount. The side angle and the corner radius are
// kept. Deflating by half the shortest edge or more returns an error
// and leaves the trapezoid unchanged.
func (t *Trapezoid) Inflate(amount float64) error {
	if amount < 0 {
		minLength := math.Inf(1)
		for _, s := range t.AtomicShapes() {
			if line, ok := s.(*Line); ok {
				minLength = math.Min(minLength, line.Length())
			}
		}
		if -amount > minLength/2-TolMM {
			return fmt.Errorf("geom: cannot deflate trapezoid of size %v by %v: %w", t.Size, amount, ErrDeflationTooLarge)
		}
	}
	// The slanted sides move by amount along their normals, so the
	// width change picks up a 1/cos term plus the tan term from the
	// height change.
	rad := degToRad(t.SideAngle)
	growX := 2 * (math.Abs(math.Tan(rad)) + 1/math.Abs(math.Cos(rad))) * amount
	t.Size = t.Size.Add(V(growX, 2*amount))
	t.shapes = nil
	return nil
}

// IsPointOnSelf reports whether a point lies on the trapezoid outline
// within tol.
func (t *Trapezoid) IsPointOnSelf(point Vector2D, excludeEnds bool, tol float64) bool {
	return isPointOnAnyShape(t.AtomicShapes(), point, excludeEnds, tol)
}

// IsPointInside reports whether a point is inside the trapezoid.
func (t *Trapezoid) IsPointInside(point Vector2D, strict bool, tol float64) bool {
	shapes := t.Shapes()
	if t.IsPointOnSelf(point, false, tol) {
		return !strict
	}
	if len(shapes) == 1 {
		if closed, ok := shapes[0].(ClosedShape); ok {
			return closed.IsPointInside(point, strict, tol)
		}
	}
	// The interior is the union of the four corner circles and the
	// octagon through the segment junctions.
	for _, s := range shapes {
		if arc, ok := s.(*Arc); ok {
			if point.Sub(arc.Center()).Norm() <= t.CornerRadius+tol {
				return true
			}
		}
	}
	pts := make([]Vector2D, 0, len(shapes))
	for _, s := range shapes {
		pts = append(pts, segmentStart(s))
	}
	// Points on the octagon chords are covered by the corner circles,
	// so the non-strict test is enough here.
	return NewPolygon(pts).IsPointInside(point, false, tol)
}

// BBox returns the bounding box of the trapezoid.
func (t *Trapezoid) BBox() BoundingBox {
	return bboxOf(t.Shapes())
}

// IsEqual reports whether other is a trapezoid with the same outline
// within tol.
func (t *Trapezoid) IsEqual(other Shape, tol float64) bool {
	o, ok := other.(*Trapezoid)
	if !ok {
		return false
	}
	return shapesEqual(t.Shapes(), o.Shapes(), tol)
}
