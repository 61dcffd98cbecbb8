package geom

import (
	"fmt"
	"math"
)

// Cruciform is a plus-shaped outline: two concentric rectangles, one
// spanning the full width and one the full height, merged into a
// single ring.
type Cruciform struct {
	// Center is the center point.
	Center Vector2D
	// Overall is the full width and height.
	Overall Vector2D
	// Tail holds the width of the vertical bar and the height of the
	// horizontal bar. Both components are at most the matching Overall
	// component.
	Tail  Vector2D
	angle float64

	shapes []Shape
}

// NewCruciform creates a cruciform of the given overall extent whose
// bars are tail wide, rotated by angleDeg degrees around its center.
// Negative dimensions are made positive and tail components are capped
// at the overall extent.
func NewCruciform(center, overall, tail Vector2D, angleDeg float64) *Cruciform {
	overall = V(math.Abs(overall.X), math.Abs(overall.Y))
	return &Cruciform{
		Center:  center,
		Overall: overall,
		Tail:    V(math.Min(math.Abs(tail.X), overall.X), math.Min(math.Abs(tail.Y), overall.Y)),
		angle:   normalizeAngle180(angleDeg),
	}
}

// Copy returns a deep copy of the cruciform.
func (c *Cruciform) Copy() Shape {
	n := *c
	n.shapes = nil
	return &n
}

// Shapes returns the outline of the cruciform: a single clockwise
// twelve-corner polygon, or a plain rectangle when one bar spans the
// whole shape.
func (c *Cruciform) Shapes() []Shape {
	if c.shapes != nil {
		return c.shapes
	}
	if c.Overall.X == c.Tail.X || c.Overall.Y == c.Tail.Y {
		c.shapes = []Shape{NewRectangle(c.Center, c.Overall, c.angle)}
		return c.shapes
	}
	ow, oh := c.Overall.X/2, c.Overall.Y/2
	tw, th := c.Tail.X/2, c.Tail.Y/2
	pts := []Vector2D{
		{-ow, -th}, {-tw, -th}, {-tw, -oh}, {tw, -oh},
		{tw, -th}, {ow, -th}, {ow, th}, {tw, th},
		{tw, oh}, {-tw, oh}, {-tw, th}, {-ow, th},
	}
	for i := range pts {
		pts[i] = pts[i].Add(c.Center)
	}
	poly := NewPolygon(pts)
	if c.angle != 0 {
		poly.Rotate(c.angle, c.Center)
	}
	c.shapes = []Shape{poly}
	return c.shapes
}

// AtomicShapes returns the outline as lines.
func (c *Cruciform) AtomicShapes() []Shape { return atomicShapesOf(c.Shapes()) }

// NativeShapes returns the outline as natively representable shapes.
func (c *Cruciform) NativeShapes() []Shape { return nativeShapesOf(c.Shapes()) }

// IsClosed reports that a cruciform encloses an area.
func (c *Cruciform) IsClosed() bool { return true }

// Angle returns the rotation angle in degrees.
func (c *Cruciform) Angle() float64 { return c.angle }

// SetAngle sets the rotation angle in degrees.
func (c *Cruciform) SetAngle(angleDeg float64) {
	c.angle = normalizeAngle180(angleDeg)
	c.shapes = nil
}

// Translate moves the cruciform by v.
func (c *Cruciform) Translate(v Vector2D) Shape {
	c.Center = c.Center.Add(v)
	c.shapes = nil
	return c
}

// Rotate rotates the cruciform by angleDeg degrees around origin.
func (c *Cruciform) Rotate(angleDeg float64, origin Vector2D) Shape {
	if angleDeg == 0 {
		return c
	}
	c.Center = c.Center.Rotate(angleDeg, origin)
	c.angle = normalizeAngle180(c.angle + angleDeg)
	c.shapes = nil
	return c
}

// RotateRad rotates the cruciform by angleRad radians around origin.
func (c *Cruciform) RotateRad(angleRad float64, origin Vector2D) Shape {
	return c.Rotate(radToDeg(angleRad), origin)
}

// Inflate grows the cruciform by amount on every side, or shrinks it
// for a negative amount. Deflating by half a bar width or more returns
// an error and leaves the cruciform unchanged.
func (c *Cruciform) Inflate(amount float64) error {
	if amount < 0 && -2*amount > math.Min(c.Tail.X, c.Tail.Y)-TolMM {
		return fmt.Errorf("geom: cannot deflate cruciform with bar widths %v by %v: %w", c.Tail, amount, ErrDeflationTooLarge)
	}
	grow := V(2*amount, 2*amount)
	c.Overall = c.Overall.Add(grow)
	c.Tail = c.Tail.Add(grow)
	c.shapes = nil
	return nil
}

// IsPointOnSelf reports whether a point lies on the cruciform outline
// within tol.
func (c *Cruciform) IsPointOnSelf(point Vector2D, excludeEnds bool, tol float64) bool {
	return isPointOnAnyShape(c.AtomicShapes(), point, excludeEnds, tol)
}

// IsPointInside reports whether a point is inside the cruciform.
func (c *Cruciform) IsPointInside(point Vector2D, strict bool, tol float64) bool {
	if c.IsPointOnSelf(point, false, tol) {
		return !strict
	}
	// The two bars are cheaper to test than the full polygon.
	if NewRectangle(c.Center, V(c.Tail.X, c.Overall.Y), c.angle).IsPointInside(point, strict, tol) {
		return true
	}
	return NewRectangle(c.Center, V(c.Overall.X, c.Tail.Y), c.angle).IsPointInside(point, strict, tol)
}

// BBox returns the bounding box of the cruciform.
func (c *Cruciform) BBox() BoundingBox {
	return bboxOf(c.Shapes())
}

// IsEqual reports whether other is a cruciform with the same outline
// within tol.
func (c *Cruciform) IsEqual(other Shape, tol float64) bool {
	o, ok := other.(*Cruciform)
	if !ok {
		return false
	}
	return shapesEqual(c.Shapes(), o.Shapes(), tol)
}
