package geom

import (
	"fmt"
	"math"
)

// Circle is a full circle described by its center and radius.
type Circle struct {
	Center Vector2D
	Radius float64
}

// NewCircle creates a circle. The radius is stored as its absolute
// value.
func NewCircle(center Vector2D, radius float64) *Circle {
	return &Circle{Center: center, Radius: math.Abs(radius)}
}

// NewCircleFromArc creates the full circle carrying an arc.
func NewCircleFromArc(a *Arc) *Circle {
	return &Circle{Center: a.Center(), Radius: a.Radius()}
}

// Copy returns a deep copy of the circle.
func (c *Circle) Copy() Shape {
	cp := *c
	return &cp
}

// Shapes returns the circle itself: it is atomic.
func (c *Circle) Shapes() []Shape { return []Shape{c} }

// AtomicShapes returns the circle itself.
func (c *Circle) AtomicShapes() []Shape { return []Shape{c} }

// NativeShapes returns the circle itself.
func (c *Circle) NativeShapes() []Shape { return []Shape{c} }

// IsClosed reports true.
func (c *Circle) IsClosed() bool { return true }

// Translate moves the circle in place and returns the receiver.
func (c *Circle) Translate(v Vector2D) Shape {
	c.Center = c.Center.Add(v)
	return c
}

// Rotate rotates the circle in place by angleDeg degrees around origin
// and returns the receiver.
func (c *Circle) Rotate(angleDeg float64, origin Vector2D) Shape {
	c.Center = c.Center.Rotate(angleDeg, origin)
	return c
}

// RotateRad rotates the circle in place by angleRad radians around
// origin and returns the receiver.
func (c *Circle) RotateRad(angleRad float64, origin Vector2D) Shape {
	c.Center = c.Center.RotateRad(angleRad, origin)
	return c
}

// Inflate grows the radius by amount. A negative amount shrinks the
// circle; shrinking to a non-positive radius returns an error.
func (c *Circle) Inflate(amount float64) error {
	if amount < 0 && -amount > c.Radius-TolMM {
		return fmt.Errorf("geom: cannot deflate circle of radius %v by %v: %w", c.Radius, amount, ErrDeflationTooLarge)
	}
	c.Radius += amount
	return nil
}

// IsPointOnSelf reports whether p lies on the circle outline within
// tol. excludeEnds has no effect: a circle has no end points.
func (c *Circle) IsPointOnSelf(p Vector2D, excludeEnds bool, tol float64) bool {
	radius := math.Hypot(p.X-c.Center.X, p.Y-c.Center.Y)
	return math.Abs(c.Radius-radius) <= tol
}

// IsPointInside reports whether p is inside the circle. With strict,
// points on the outline (within tol) count as outside; without, they
// count as inside.
func (c *Circle) IsPointInside(p Vector2D, strict bool, tol float64) bool {
	d := p.Sub(c.Center).Norm()
	if strict {
		return d < c.Radius-tol
	}
	return d <= c.Radius+tol
}

// BBox returns the bounding box of the circle.
func (c *Circle) BBox() BoundingBox {
	return NewBoundingBox(
		V(c.Center.X-c.Radius, c.Center.Y-c.Radius),
		V(c.Center.X+c.Radius, c.Center.Y+c.Radius),
	)
}

// IsEqual reports whether other is a circle with the same center and
// radius within tol.
func (c *Circle) IsEqual(other Shape, tol float64) bool {
	o, ok := other.(*Circle)
	if !ok {
		return false
	}
	if math.Abs(c.Radius-o.Radius) > tol {
		return false
	}
	return c.Center.IsEqual(o.Center, tol)
}

// Mid returns the point on the outline at angle zero, as if the circle
// were an arc starting there. The containment tests of the boolean
// operations probe this point.
func (c *Circle) Mid() Vector2D {
	return c.Center.Add(V(c.Radius, 0))
}

// Length returns the circumference.
func (c *Circle) Length() float64 {
	return 2 * math.Pi * c.Radius
}
