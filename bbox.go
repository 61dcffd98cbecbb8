package geom

// BoundingBox is an axis-aligned box in the y-down plane. The zero
// value is the empty box, a distinct state from a zero-size box at a
// point: it contains nothing and reports no geometry. Boxes only grow;
// IncludePoint and IncludeBBox never shrink one.
type BoundingBox struct {
	min, max Vector2D
	set      bool
}

// NewBoundingBox creates a box spanning the two corners, which may be
// given in any order.
func NewBoundingBox(corner1, corner2 Vector2D) BoundingBox {
	return BoundingBox{
		min: corner1.Min(corner2),
		max: corner1.Max(corner2),
		set: true,
	}
}

// IsEmpty reports whether the box contains no points yet.
func (b BoundingBox) IsEmpty() bool {
	return !b.set
}

func (b BoundingBox) mustBeSet() {
	if !b.set {
		panic("geom: empty bounding box")
	}
}

// IncludePoint grows the box to contain p and returns the receiver.
func (b *BoundingBox) IncludePoint(p Vector2D) *BoundingBox {
	if !b.set {
		b.min, b.max, b.set = p, p, true
		return b
	}
	b.min = b.min.Min(p)
	b.max = b.max.Max(p)
	return b
}

// IncludeBBox grows the box to contain other and returns the receiver.
// Including an empty box is a no-op.
func (b *BoundingBox) IncludeBBox(other BoundingBox) *BoundingBox {
	if !other.set {
		return b
	}
	b.IncludePoint(other.min)
	b.IncludePoint(other.max)
	return b
}

// Inflate grows the box by amount on every side and returns the
// receiver. Panics if the box is empty.
func (b *BoundingBox) Inflate(amount float64) *BoundingBox {
	b.mustBeSet()
	b.min = b.min.Sub(V(amount, amount))
	b.max = b.max.Add(V(amount, amount))
	return b
}

// Min returns the top-left corner. Panics if the box is empty.
func (b BoundingBox) Min() Vector2D {
	b.mustBeSet()
	return b.min
}

// Max returns the bottom-right corner. Panics if the box is empty.
func (b BoundingBox) Max() Vector2D {
	b.mustBeSet()
	return b.max
}

// Left returns the smallest x. Panics if the box is empty.
func (b BoundingBox) Left() float64 {
	b.mustBeSet()
	return b.min.X
}

// Right returns the largest x. Panics if the box is empty.
func (b BoundingBox) Right() float64 {
	b.mustBeSet()
	return b.max.X
}

// Top returns the smallest y. Panics if the box is empty.
func (b BoundingBox) Top() float64 {
	b.mustBeSet()
	return b.min.Y
}

// Bottom returns the largest y. Panics if the box is empty.
func (b BoundingBox) Bottom() float64 {
	b.mustBeSet()
	return b.max.Y
}

// Center returns the center point. Panics if the box is empty.
func (b BoundingBox) Center() Vector2D {
	b.mustBeSet()
	return b.min.Add(b.max).Div(2)
}

// Size returns the box dimensions. Panics if the box is empty.
func (b BoundingBox) Size() Vector2D {
	b.mustBeSet()
	return b.max.Sub(b.min)
}

// ContainsPoint reports whether p lies in the box, boundary included.
// The empty box contains nothing.
func (b BoundingBox) ContainsPoint(p Vector2D) bool {
	if !b.set {
		return false
	}
	return p.X >= b.min.X && p.X <= b.max.X && p.Y >= b.min.Y && p.Y <= b.max.Y
}

// ContainsBBox reports whether other lies entirely in the box, boundary
// included. Every box contains the empty box.
func (b BoundingBox) ContainsBBox(other BoundingBox) bool {
	if !other.set {
		return true
	}
	return b.ContainsPoint(other.min) && b.ContainsPoint(other.max)
}

// ContainsLine reports whether both ends of the line lie in the box,
// boundary included.
func (b BoundingBox) ContainsLine(l *Line) bool {
	return b.ContainsPoint(l.Start) && b.ContainsPoint(l.End)
}
