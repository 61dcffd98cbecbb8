package geom

// Shape is implemented by every geometric shape in this package.
//
// Translate, Rotate and RotateRad mutate the receiver and return it so
// calls can be chained. Copy the shape first to keep the original.
type Shape interface {
	// Translate moves the shape by v and returns the receiver.
	Translate(v Vector2D) Shape
	// Rotate rotates the shape by angleDeg degrees around origin and
	// returns the receiver.
	Rotate(angleDeg float64, origin Vector2D) Shape
	// RotateRad rotates the shape by angleRad radians around origin
	// and returns the receiver.
	RotateRad(angleRad float64, origin Vector2D) Shape
	// BBox returns the bounding box of the shape.
	BBox() BoundingBox
	// Shapes returns the more elementary shapes this shape is composed
	// of. For closed shapes they trace the contour continuously in
	// clockwise order. Atomic shapes return themselves.
	Shapes() []Shape
	// AtomicShapes decomposes the shape into lines, arcs and circles.
	AtomicShapes() []Shape
	// NativeShapes decomposes the shape into the shapes that have a
	// direct board-file representation: the atomic shapes plus
	// rectangles, polygons and compound polygons.
	NativeShapes() []Shape
	// IsPointOnSelf reports whether p lies on the outline within tol.
	// With excludeEnds, points within tol of segment end points do not
	// count.
	IsPointOnSelf(p Vector2D, excludeEnds bool, tol float64) bool
	// IsEqual reports whether other is the same kind of shape with the
	// same defining parameters within tol.
	IsEqual(other Shape, tol float64) bool
	// IsClosed reports whether the shape encloses an area.
	IsClosed() bool
	// Copy returns a deep copy of the shape.
	Copy() Shape
}

// ClosedShape is a shape with an interior.
type ClosedShape interface {
	Shape
	// IsPointInside reports whether p is inside the shape. With
	// strict, points on the outline (within tol) count as outside;
	// without, they count as inside.
	IsPointInside(p Vector2D, strict bool, tol float64) bool
	// Inflate grows the shape outward by amount, or shrinks it for a
	// negative amount. Shrinking beyond what the shape's dimensions
	// allow returns an error and leaves the shape unchanged.
	Inflate(amount float64) error
}

// Translated returns a moved copy of a shape.
func Translated(s Shape, v Vector2D) Shape {
	return s.Copy().Translate(v)
}

// Rotated returns a copy of a shape rotated by angleDeg degrees around
// origin.
func Rotated(s Shape, angleDeg float64, origin Vector2D) Shape {
	return s.Copy().Rotate(angleDeg, origin)
}

// Inflated returns an inflated copy of a closed shape.
func Inflated(s ClosedShape, amount float64) (ClosedShape, error) {
	c := s.Copy().(ClosedShape)
	if err := c.Inflate(amount); err != nil {
		return nil, err
	}
	return c, nil
}

// atomicShapesOf flattens the atomic decompositions of children.
func atomicShapesOf(children []Shape) []Shape {
	atoms := make([]Shape, 0, len(children))
	for _, c := range children {
		atoms = append(atoms, c.AtomicShapes()...)
	}
	return atoms
}

// nativeShapesOf flattens the native decompositions of children.
func nativeShapesOf(children []Shape) []Shape {
	native := make([]Shape, 0, len(children))
	for _, c := range children {
		native = append(native, c.NativeShapes()...)
	}
	return native
}

// bboxOf unions the bounding boxes of children.
func bboxOf(children []Shape) BoundingBox {
	var bb BoundingBox
	for _, c := range children {
		bb.IncludeBBox(c.BBox())
	}
	return bb
}

// isPointOnAnyShape reports whether p lies on the outline of any child.
func isPointOnAnyShape(children []Shape, p Vector2D, excludeEnds bool, tol float64) bool {
	for _, c := range children {
		if c.IsPointOnSelf(p, excludeEnds, tol) {
			return true
		}
	}
	return false
}

// shapesEqual reports whether two decompositions match pairwise in
// order.
func shapesEqual(a, b []Shape, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsEqual(b[i], tol) {
			return false
		}
	}
	return true
}

var (
	_ Shape = (*Line)(nil)
	_ Shape = (*Arc)(nil)
	_ Shape = (*Cross)(nil)

	_ ClosedShape = (*Circle)(nil)
	_ ClosedShape = (*Polygon)(nil)
	_ ClosedShape = (*Rectangle)(nil)
	_ ClosedShape = (*RoundRectangle)(nil)
	_ ClosedShape = (*Trapezoid)(nil)
	_ ClosedShape = (*Stadium)(nil)
	_ ClosedShape = (*Cruciform)(nil)
	_ ClosedShape = (*CompoundPolygon)(nil)
)
