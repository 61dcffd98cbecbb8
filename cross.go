package geom

import "math"

// Cross is an open crosshair mark: two lines through a common center,
// one per axis.
type Cross struct {
	// Center is the intersection point of the two arms.
	Center Vector2D
	// Size is the full arm length per axis. Both components are
	// positive.
	Size  Vector2D
	angle float64

	shapes []Shape
}

// NewCross creates a cross of the given arm lengths centered on
// center, rotated by angleDeg degrees around its center. Negative size
// components are made positive.
func NewCross(center, size Vector2D, angleDeg float64) *Cross {
	return &Cross{
		Center: center,
		Size:   V(math.Abs(size.X), math.Abs(size.Y)),
		angle:  normalizeAngle180(angleDeg),
	}
}

// Copy returns a deep copy of the cross.
func (c *Cross) Copy() Shape {
	n := *c
	n.shapes = nil
	return &n
}

// Shapes returns the two arms, the x arm first.
func (c *Cross) Shapes() []Shape {
	if c.shapes != nil {
		return c.shapes
	}
	points := [4]Vector2D{
		{-c.Size.X / 2, 0},
		{c.Size.X / 2, 0},
		{0, -c.Size.Y / 2},
		{0, c.Size.Y / 2},
	}
	for i, p := range points {
		points[i] = p.Rotate(c.angle, V(0, 0)).Add(c.Center)
	}
	c.shapes = []Shape{
		NewLine(points[0], points[1]),
		NewLine(points[2], points[3]),
	}
	return c.shapes
}

// AtomicShapes returns the two arm lines.
func (c *Cross) AtomicShapes() []Shape { return atomicShapesOf(c.Shapes()) }

// NativeShapes returns the two arm lines.
func (c *Cross) NativeShapes() []Shape { return nativeShapesOf(c.Shapes()) }

// IsClosed reports that a cross does not enclose an area.
func (c *Cross) IsClosed() bool { return false }

// Angle returns the rotation angle in degrees.
func (c *Cross) Angle() float64 { return c.angle }

// SetAngle sets the rotation angle in degrees.
func (c *Cross) SetAngle(angleDeg float64) {
	c.angle = normalizeAngle180(angleDeg)
	c.shapes = nil
}

// Translate moves the cross by v.
func (c *Cross) Translate(v Vector2D) Shape {
	c.Center = c.Center.Add(v)
	c.shapes = nil
	return c
}

// Rotate rotates the cross by angleDeg degrees around origin.
func (c *Cross) Rotate(angleDeg float64, origin Vector2D) Shape {
	if angleDeg == 0 {
		return c
	}
	c.Center = c.Center.Rotate(angleDeg, origin)
	c.angle = normalizeAngle180(c.angle + angleDeg)
	c.shapes = nil
	return c
}

// RotateRad rotates the cross by angleRad radians around origin.
func (c *Cross) RotateRad(angleRad float64, origin Vector2D) Shape {
	return c.Rotate(radToDeg(angleRad), origin)
}

// IsPointOnSelf reports whether a point lies on one of the arms within
// tol.
func (c *Cross) IsPointOnSelf(point Vector2D, excludeEnds bool, tol float64) bool {
	return isPointOnAnyShape(c.AtomicShapes(), point, excludeEnds, tol)
}

// BBox returns the bounding box of the cross.
func (c *Cross) BBox() BoundingBox {
	return bboxOf(c.Shapes())
}

// IsEqual reports whether other is a cross with the same arms within
// tol.
func (c *Cross) IsEqual(other Shape, tol float64) bool {
	o, ok := other.(*Cross)
	if !ok {
		return false
	}
	return shapesEqual(c.Shapes(), o.Shapes(), tol)
}
