package geom

import (
	"fmt"
	"math"
)

// Stadium is the convex hull of two circles of equal radius: a
// rectangle capped by a semicircle on both ends.
type Stadium struct {
	// Centers are the centers of the two semicircular caps.
	Centers [2]Vector2D
	// Radius is the cap radius and half the width of the straight
	// part. It is never negative.
	Radius float64

	shapes []Shape
}

// NewStadium creates a stadium from its two cap centers and the cap
// radius. A negative radius is made positive.
func NewStadium(center1, center2 Vector2D, radius float64) *Stadium {
	return &Stadium{
		Centers: [2]Vector2D{center1, center2},
		Radius:  math.Abs(radius),
	}
}

// NewStadiumInRectangle creates the stadium inscribed in a rectangle.
// The caps sit on the two shorter sides. For a square the stadium
// degenerates to the inscribed circle.
func NewStadiumInRectangle(r *Rectangle) *Stadium {
	half := r.Size.Div(2)
	var c1, c2 Vector2D
	var radius float64
	if r.Size.X > r.Size.Y {
		radius = half.Y
		c1 = V(r.Center.X-half.X+radius, r.Center.Y)
		c2 = V(r.Center.X+half.X-radius, r.Center.Y)
	} else {
		radius = half.X
		c1 = V(r.Center.X, r.Center.Y-half.Y+radius)
		c2 = V(r.Center.X, r.Center.Y+half.Y-radius)
	}
	if a := r.Angle(); a != 0 {
		c1 = c1.Rotate(a, r.Center)
		c2 = c2.Rotate(a, r.Center)
	}
	return NewStadium(c1, c2, radius)
}

// axis returns the half-width vector perpendicular to the line through
// the two centers. ok is false when the centers coincide.
func (s *Stadium) axis() (perp Vector2D, ok bool) {
	perp, err := s.Centers[1].Sub(s.Centers[0]).Orthogonal().Resize(s.Radius, TolMM)
	if err != nil {
		return Vector2D{}, false
	}
	return perp, true
}

// Copy returns a deep copy of the stadium.
func (s *Stadium) Copy() Shape {
	c := *s
	c.shapes = nil
	return &c
}

// Shapes returns the outline of the stadium in clockwise order: the
// first cap, a straight side, the second cap and the other side. With
// coincident centers the outline is a single circle.
func (s *Stadium) Shapes() []Shape {
	if s.shapes != nil {
		return s.shapes
	}
	c1, c2 := s.Centers[0], s.Centers[1]
	perp, ok := s.axis()
	if !ok {
		s.shapes = []Shape{NewCircle(c1, s.Radius)}
		return s.shapes
	}
	s.shapes = []Shape{
		NewArc(c1, c1.Add(perp), 180),
		NewLine(c1.Sub(perp), c2.Sub(perp)),
		NewArc(c2, c2.Sub(perp), 180),
		NewLine(c2.Add(perp), c1.Add(perp)),
	}
	return s.shapes
}

// AtomicShapes returns the lines and arcs of the outline, or the
// circle a degenerate stadium collapses to.
func (s *Stadium) AtomicShapes() []Shape { return atomicShapesOf(s.Shapes()) }

// NativeShapes returns the outline as natively representable shapes.
func (s *Stadium) NativeShapes() []Shape { return nativeShapesOf(s.Shapes()) }

// IsClosed reports that a stadium encloses an area.
func (s *Stadium) IsClosed() bool { return true }

// Translate moves the stadium by v.
func (s *Stadium) Translate(v Vector2D) Shape {
	s.Centers[0] = s.Centers[0].Add(v)
	s.Centers[1] = s.Centers[1].Add(v)
	s.shapes = nil
	return s
}

// Rotate rotates the stadium by angleDeg degrees around origin.
func (s *Stadium) Rotate(angleDeg float64, origin Vector2D) Shape {
	if angleDeg == 0 {
		return s
	}
	s.Centers[0] = s.Centers[0].Rotate(angleDeg, origin)
	s.Centers[1] = s.Centers[1].Rotate(angleDeg, origin)
	s.shapes = nil
	return s
}

// RotateRad rotates the stadium by angleRad radians around origin.
func (s *Stadium) RotateRad(angleRad float64, origin Vector2D) Shape {
	return s.Rotate(radToDeg(angleRad), origin)
}

// Inflate grows the stadium outward by amount, or shrinks it for a
// negative amount. Deflating by the cap radius or more returns an
// error and leaves the stadium unchanged.
func (s *Stadium) Inflate(amount float64) error {
	if amount < 0 && -amount > s.Radius-TolMM {
		return fmt.Errorf("geom: cannot deflate stadium of radius %v by %v: %w", s.Radius, amount, ErrDeflationTooLarge)
	}
	s.Radius += amount
	s.shapes = nil
	return nil
}

// IsPointOnSelf reports whether a point lies on the stadium outline
// within tol.
func (s *Stadium) IsPointOnSelf(point Vector2D, excludeEnds bool, tol float64) bool {
	return isPointOnAnyShape(s.AtomicShapes(), point, excludeEnds, tol)
}

// IsPointInside reports whether a point is inside the stadium.
func (s *Stadium) IsPointInside(point Vector2D, strict bool, tol float64) bool {
	if s.IsPointOnSelf(point, false, tol) {
		return !strict
	}
	// The interior is the union of the two cap circles and the
	// rectangle between them.
	if point.Sub(s.Centers[0]).Norm() <= s.Radius+tol ||
		point.Sub(s.Centers[1]).Norm() <= s.Radius+tol {
		return true
	}
	perp, ok := s.axis()
	if !ok {
		return false
	}
	corners := [4]Vector2D{
		s.Centers[0].Sub(perp),
		s.Centers[1].Sub(perp),
		s.Centers[1].Add(perp),
		s.Centers[0].Add(perp),
	}
	for i, c := range corners {
		next := corners[(i+1)%len(corners)]
		if next.Sub(c).Cross(point.Sub(c)) < 0 {
			return false
		}
	}
	return true
}

// BBox returns the bounding box of the stadium.
func (s *Stadium) BBox() BoundingBox {
	r := V(s.Radius, s.Radius)
	bb := NewBoundingBox(s.Centers[0].Sub(r), s.Centers[0].Add(r))
	bb.IncludePoint(s.Centers[1].Sub(r))
	bb.IncludePoint(s.Centers[1].Add(r))
	return bb
}

// IsEqual reports whether other is a stadium with the same caps within
// tol. The order of the two centers does not matter.
func (s *Stadium) IsEqual(other Shape, tol float64) bool {
	o, ok := other.(*Stadium)
	if !ok {
		return false
	}
	if math.Abs(s.Radius-o.Radius) > tol {
		return false
	}
	if s.Centers[0].IsEqual(o.Centers[0], tol) && s.Centers[1].IsEqual(o.Centers[1], tol) {
		return true
	}
	return s.Centers[0].IsEqual(o.Centers[1], tol) && s.Centers[1].IsEqual(o.Centers[0], tol)
}
