package geom

import (
	"fmt"
	"math"
)

// Rectangle is a rectangle defined by center, size and a rotation
// angle around its center.
type Rectangle struct {
	// Center is the center point.
	Center Vector2D
	// Size holds width and height. Both components are positive.
	Size Vector2D

	angle   float64
	corners []Vector2D
}

// NewRectangle creates a rectangle from its center, size and rotation
// angle in degrees. Negative size components are made positive. An
// angle within tolerance of a multiple of 90 degrees snaps to an
// axis-aligned rectangle with width and height swapped as needed.
func NewRectangle(center, size Vector2D, angleDeg float64) *Rectangle {
	r := &Rectangle{
		Center: center,
		Size:   V(math.Abs(size.X), math.Abs(size.Y)),
	}
	r.setAngle(angleDeg)
	return r
}

// NewRectangleFromBBox creates the axis-aligned rectangle covering a
// bounding box.
func NewRectangleFromBBox(bb BoundingBox) *Rectangle {
	return NewRectangle(bb.Center(), bb.Size(), 0)
}

// NewRectangleFromCorners creates the axis-aligned rectangle spanned
// by two opposite corner points.
func NewRectangleFromCorners(start, end Vector2D) *Rectangle {
	return NewRectangle(start.Add(end).Div(2), end.Sub(start), 0)
}

// Copy returns a deep copy of the rectangle.
func (r *Rectangle) Copy() Shape {
	return &Rectangle{Center: r.Center, Size: r.Size, angle: r.angle}
}

// Shapes returns the rectangle itself.
func (r *Rectangle) Shapes() []Shape { return []Shape{r} }

// AtomicShapes returns the four edges in clockwise order, starting at
// the top-left corner.
func (r *Rectangle) AtomicShapes() []Shape {
	c := r.CornerPoints()
	atoms := make([]Shape, 0, 4)
	for i := range c {
		atoms = append(atoms, NewLine(c[i], c[(i+1)%4]))
	}
	return atoms
}

// NativeShapes returns the rectangle itself.
func (r *Rectangle) NativeShapes() []Shape { return []Shape{r} }

// IsClosed reports that a rectangle is a closed shape.
func (r *Rectangle) IsClosed() bool { return true }

// Angle returns the rotation angle in degrees, in [-180, 180).
func (r *Rectangle) Angle() float64 { return r.angle }

// SetAngle sets the rotation angle in degrees.
func (r *Rectangle) SetAngle(angleDeg float64) {
	r.setAngle(angleDeg)
	r.corners = nil
}

func (r *Rectangle) setAngle(angleDeg float64) {
	r.angle = normalizeAngle180(angleDeg)
	if n, ok := r.numberOf90DegRotations(r.angle, TolMM); ok {
		r.angle = 0
		if n%2 != 0 {
			r.Size.X, r.Size.Y = r.Size.Y, r.Size.X
		}
	}
}

// numberOf90DegRotations returns how many 90 degree rotations the
// angle represents. The tolerance is an arc length in mm at the
// rectangle's half diagonal: the rotation counts as a multiple of 90
// degrees when no corner would move further than tol from its snapped
// location.
func (r *Rectangle) numberOf90DegRotations(angleDeg, tol float64) (int, bool) {
	tolD, ok := tolDeg(tol, r.Size.Norm()/2)
	if !ok {
		return 0, false
	}
	if floorMod(angleDeg, 90) > tolD {
		return 0, false
	}
	return int(math.Round(angleDeg)) / 90, true
}

// CornerPoints returns the four corners in clockwise order: top-left,
// top-right, bottom-right, bottom-left (of the unrotated rectangle,
// rotated along with it).
func (r *Rectangle) CornerPoints() []Vector2D {
	if r.corners != nil {
		return r.corners
	}
	toPt1 := r.Size.Div(2).Neg()
	toPt2 := V(-toPt1.X, toPt1.Y)
	if r.angle != 0 {
		origin := V(0, 0)
		toPt1 = toPt1.Rotate(r.angle, origin)
		toPt2 = toPt2.Rotate(r.angle, origin)
	}
	r.corners = []Vector2D{
		r.Center.Add(toPt1),
		r.Center.Add(toPt2),
		r.Center.Sub(toPt1),
		r.Center.Sub(toPt2),
	}
	return r.corners
}

// MinDimension returns the smaller of width and height.
func (r *Rectangle) MinDimension() float64 { return math.Min(r.Size.X, r.Size.Y) }

// MaxDimension returns the larger of width and height.
func (r *Rectangle) MaxDimension() float64 { return math.Max(r.Size.X, r.Size.Y) }

// Left returns the left edge of the bounding box.
func (r *Rectangle) Left() float64 { return r.BBox().Left() }

// Right returns the right edge of the bounding box.
func (r *Rectangle) Right() float64 { return r.BBox().Right() }

// Top returns the top edge of the bounding box.
func (r *Rectangle) Top() float64 { return r.BBox().Top() }

// Bottom returns the bottom edge of the bounding box.
func (r *Rectangle) Bottom() float64 { return r.BBox().Bottom() }

// Translate moves the rectangle in place and returns the receiver.
func (r *Rectangle) Translate(v Vector2D) Shape {
	r.Center = r.Center.Add(v)
	r.corners = nil
	return r
}

// Rotate rotates the rectangle in place by angleDeg degrees around
// origin and returns the receiver.
func (r *Rectangle) Rotate(angleDeg float64, origin Vector2D) Shape {
	if angleDeg == 0 {
		return r
	}
	r.Center = r.Center.Rotate(angleDeg, origin)
	r.setAngle(angleDeg + r.angle)
	r.corners = nil
	return r
}

// RotateRad rotates the rectangle in place by angleRad radians around
// origin and returns the receiver.
func (r *Rectangle) RotateRad(angleRad float64, origin Vector2D) Shape {
	return r.Rotate(radToDeg(angleRad), origin)
}

// Inflate grows the rectangle by amount on every side, or shrinks it
// for a negative amount. Deflating by half the smaller dimension or
// more returns an error and leaves the rectangle unchanged.
func (r *Rectangle) Inflate(amount float64) error {
	if amount < 0 && -amount > r.MinDimension()/2-TolMM {
		return fmt.Errorf("geom: cannot deflate rectangle of size %v by %v: %w", r.Size, amount, ErrDeflationTooLarge)
	}
	r.Size = r.Size.Add(V(2*amount, 2*amount))
	r.corners = nil
	return nil
}

// IsPointOnSelf reports whether a point lies on the rectangle outline
// within tol.
func (r *Rectangle) IsPointOnSelf(point Vector2D, excludeEnds bool, tol float64) bool {
	return isPointOnAnyShape(r.AtomicShapes(), point, excludeEnds, tol)
}

// IsPointInside reports whether a point is inside the rectangle.
func (r *Rectangle) IsPointInside(point Vector2D, strict bool, tol float64) bool {
	if r.angle == 0 {
		if strict {
			return point.X > r.Left()+tol && point.X < r.Right()-tol &&
				point.Y > r.Top()+tol && point.Y < r.Bottom()-tol
		}
		return point.X >= r.Left()-tol && point.X <= r.Right()+tol &&
			point.Y >= r.Top()-tol && point.Y <= r.Bottom()+tol
	}
	// The point is inside when it is on the right side of every edge
	// of the clockwise outline.
	for _, atom := range r.AtomicShapes() {
		line := atom.(*Line)
		if line.IsPointOnSelf(point, false, tol) {
			return !strict
		}
		if line.Direction().Cross(point.Sub(line.Start)) < 0 {
			return false
		}
	}
	return true
}

// BBox returns the bounding box of the rectangle.
func (r *Rectangle) BBox() BoundingBox {
	if r.angle == 0 {
		half := r.Size.Div(2)
		return NewBoundingBox(r.Center.Sub(half), r.Center.Add(half))
	}
	var bb BoundingBox
	for _, pt := range r.CornerPoints() {
		bb.IncludePoint(pt)
	}
	return bb
}

// IsEqual reports whether other is a rectangle with the same corners
// within tol.
func (r *Rectangle) IsEqual(other Shape, tol float64) bool {
	o, ok := other.(*Rectangle)
	if !ok {
		return false
	}
	op := o.CornerPoints()
	for i, pt := range r.CornerPoints() {
		if !pt.IsEqual(op[i], tol) {
			return false
		}
	}
	return true
}

// RoundToGrid rounds the rectangle's corners to the grid, away from
// the center (outwards) or toward it, and rebuilds center and size
// from the rounded corners.
func (r *Rectangle) RoundToGrid(grid float64, outwards bool) *Rectangle {
	pts := append([]Vector2D(nil), r.CornerPoints()...)
	for i := range pts {
		awayX, awayY := pts[i].X > r.Center.X, pts[i].Y > r.Center.Y
		if !outwards {
			awayX, awayY = !awayX, !awayY
		}
		if awayX {
			pts[i].X = RoundToGridUp(pts[i].X, grid, 0)
		} else {
			pts[i].X = RoundToGridDown(pts[i].X, grid, 0)
		}
		if awayY {
			pts[i].Y = RoundToGridUp(pts[i].Y, grid, 0)
		} else {
			pts[i].Y = RoundToGridDown(pts[i].Y, grid, 0)
		}
	}
	pt1, pt2 := pts[0], pts[2]
	r.Center = pt1.Add(pt2).Div(2)
	if r.angle != 0 {
		pt1 = pt1.Rotate(-r.angle, r.Center)
		pt2 = pt2.Rotate(-r.angle, r.Center)
	}
	d := pt1.Sub(pt2)
	r.Size = V(math.Abs(d.X), math.Abs(d.Y))
	r.corners = nil
	return r
}
