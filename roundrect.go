package geom

import (
	"fmt"
	"math"
)

// RoundRectangle is a rectangle whose four corners are rounded with a
// common radius.
type RoundRectangle struct {
	// Center is the center point.
	Center Vector2D
	// Size is the width and height. Both components are positive.
	Size Vector2D
	// CornerRadius is the radius of the corner rounding. It is never
	// negative.
	CornerRadius float64
	angle        float64

	shapes []Shape
}

// NewRoundRectangle creates a rectangle of the given size centered on
// center, with all four corners rounded by cornerRadius, rotated by
// angleDeg degrees around its center. Negative size components are
// made positive and a negative corner radius is treated as zero.
func NewRoundRectangle(center, size Vector2D, cornerRadius, angleDeg float64) *RoundRectangle {
	return &RoundRectangle{
		Center:       center,
		Size:         V(math.Abs(size.X), math.Abs(size.Y)),
		CornerRadius: math.Max(cornerRadius, 0),
		angle:        normalizeAngle180(angleDeg),
	}
}

// NewRoundRectangleFromCorner creates a round rectangle from the
// corner with the smallest coordinates before rotation.
func NewRoundRectangleFromCorner(corner, size Vector2D, cornerRadius, angleDeg float64) *RoundRectangle {
	size = V(math.Abs(size.X), math.Abs(size.Y))
	return NewRoundRectangle(corner.Add(size.Div(2)), size, cornerRadius, angleDeg)
}

// Copy returns a deep copy of the round rectangle.
func (r *RoundRectangle) Copy() Shape {
	c := *r
	c.shapes = nil
	return &c
}

// Shapes returns the outline of the round rectangle in clockwise
// order, starting with the top edge. With a zero corner radius the
// outline is a single rectangle.
func (r *RoundRectangle) Shapes() []Shape {
	if r.shapes != nil {
		return r.shapes
	}
	if r.CornerRadius == 0 {
		r.shapes = []Shape{NewRectangle(r.Center, r.Size, r.angle)}
		return r.shapes
	}
	cr := r.CornerRadius
	at := r.Center.Sub(r.Size.Div(2))
	right := at.X + r.Size.X
	bottom := at.Y + r.Size.Y
	r.shapes = []Shape{
		NewLine(V(at.X+cr, at.Y), V(right-cr, at.Y)),
		NewArc(V(right-cr, at.Y+cr), V(right-cr, at.Y), 90),
		NewLine(V(right, at.Y+cr), V(right, bottom-cr)),
		NewArc(V(right-cr, bottom-cr), V(right, bottom-cr), 90),
		NewLine(V(right-cr, bottom), V(at.X+cr, bottom)),
		NewArc(V(at.X+cr, bottom-cr), V(at.X+cr, bottom), 90),
		NewLine(V(at.X, bottom-cr), V(at.X, at.Y+cr)),
		NewArc(V(at.X+cr, at.Y+cr), V(at.X, at.Y+cr), 90),
	}
	if r.angle != 0 {
		for _, s := range r.shapes {
			s.Rotate(r.angle, r.Center)
		}
	}
	return r.shapes
}

// AtomicShapes returns the lines and arcs of the outline.
func (r *RoundRectangle) AtomicShapes() []Shape { return atomicShapesOf(r.Shapes()) }

// NativeShapes returns the outline as natively representable shapes.
func (r *RoundRectangle) NativeShapes() []Shape { return nativeShapesOf(r.Shapes()) }

// IsClosed reports that a round rectangle encloses an area.
func (r *RoundRectangle) IsClosed() bool { return true }

// Angle returns the rotation angle in degrees.
func (r *RoundRectangle) Angle() float64 { return r.angle }

// SetAngle sets the rotation angle in degrees.
func (r *RoundRectangle) SetAngle(angleDeg float64) {
	r.angle = normalizeAngle180(angleDeg)
	r.shapes = nil
}

// MinDimension returns the smaller of width and height.
func (r *RoundRectangle) MinDimension() float64 { return math.Min(r.Size.X, r.Size.Y) }

// Translate moves the round rectangle by v.
func (r *RoundRectangle) Translate(v Vector2D) Shape {
	r.Center = r.Center.Add(v)
	r.shapes = nil
	return r
}

// Rotate rotates the round rectangle by angleDeg degrees around
// origin.
func (r *RoundRectangle) Rotate(angleDeg float64, origin Vector2D) Shape {
	if angleDeg == 0 {
		return r
	}
	r.Center = r.Center.Rotate(angleDeg, origin)
	r.angle = normalizeAngle180(r.angle + angleDeg)
	r.shapes = nil
	return r
}

// RotateRad rotates the round rectangle by angleRad radians around
// origin.
func (r *RoundRectangle) RotateRad(angleRad float64, origin Vector2D) Shape {
	return r.Rotate(radToDeg(angleRad), origin)
}

// Inflate grows the round rectangle by amount on every side, or
// shrinks it for a negative amount. The corner radius changes by the
// same amount, to a minimum of zero. Deflating by half the smaller
// dimension or more returns an error and leaves the round rectangle
// unchanged.
func (r *RoundRectangle) Inflate(amount float64) error {
	if amount < 0 && -amount > r.MinDimension()/2-TolMM {
		return fmt.Errorf("geom: cannot deflate round rectangle of size %v by %v: %w", r.Size, amount, ErrDeflationTooLarge)
	}
	r.Size = r.Size.Add(V(2*amount, 2*amount))
	r.CornerRadius = math.Max(r.CornerRadius+amount, 0)
	r.shapes = nil
	return nil
}

// IsPointOnSelf reports whether a point lies on the round rectangle
// outline within tol.
func (r *RoundRectangle) IsPointOnSelf(point Vector2D, excludeEnds bool, tol float64) bool {
	return isPointOnAnyShape(r.AtomicShapes(), point, excludeEnds, tol)
}

// IsPointInside reports whether a point is inside the round rectangle.
func (r *RoundRectangle) IsPointInside(point Vector2D, strict bool, tol float64) bool {
	shapes := r.Shapes()
	if r.IsPointOnSelf(point, false, tol) {
		return !strict
	}
	if rect, ok := shapes[0].(*Rectangle); ok {
		return rect.IsPointInside(point, strict, tol)
	}
	// The interior is the union of the four corner circles and the two
	// rectangles left when cutting off the rounded sides.
	for _, s := range shapes {
		if arc, ok := s.(*Arc); ok {
			if point.Sub(arc.Center()).Norm() <= r.CornerRadius+tol {
				return true
			}
		}
	}
	rect := NewRectangle(r.Center, V(r.Size.X, r.Size.Y-2*r.CornerRadius), r.angle)
	if rect.IsPointInside(point, strict, tol) {
		return true
	}
	rect = NewRectangle(r.Center, V(r.Size.X-2*r.CornerRadius, r.Size.Y), r.angle)
	return rect.IsPointInside(point, strict, tol)
}

// BBox returns the bounding box of the round rectangle.
func (r *RoundRectangle) BBox() BoundingBox {
	return bboxOf(r.Shapes())
}

// IsEqual reports whether other is a round rectangle with the same
// outline within tol.
func (r *RoundRectangle) IsEqual(other Shape, tol float64) bool {
	o, ok := other.(*RoundRectangle)
	if !ok {
		return false
	}
	return shapesEqual(r.Shapes(), o.Shapes(), tol)
}
