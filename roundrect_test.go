package geom

import (
	"errors"
	"math"
	"testing"
)

// cornerRoundRect is sized so that the corner arcs pass exactly through
// (1, 1), (-1, 1), (1, -1) and (-1, -1).
func cornerRoundRect() *RoundRectangle {
	side := 3 - math.Sqrt2/2
	return NewRoundRectangle(V(0, 0), V(side, side), 0.5, 0)
}

func TestRoundRectangleShapes(t *testing.T) {
	r := NewRoundRectangle(V(0, 0), V(4, 2), 0.5, 0)
	want := []Shape{
		NewLine(V(-1.5, -1), V(1.5, -1)),
		NewArc(V(1.5, -0.5), V(1.5, -1), 90),
		NewLine(V(2, -0.5), V(2, 0.5)),
		NewArc(V(1.5, 0.5), V(2, 0.5), 90),
		NewLine(V(1.5, 1), V(-1.5, 1)),
		NewArc(V(-1.5, 0.5), V(-1.5, 1), 90),
		NewLine(V(-2, 0.5), V(-2, -0.5)),
		NewArc(V(-1.5, -0.5), V(-2, -0.5), 90),
	}
	got := r.Shapes()
	if len(got) != len(want) {
		t.Fatalf("Shapes() returned %d shapes, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].IsEqual(want[i], TolMM) {
			t.Errorf("Shapes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	for i := range got {
		end := segmentEnd(got[i])
		start := segmentStart(got[(i+1)%len(got)])
		if !end.IsEqual(start, TolMM) {
			t.Errorf("outline breaks between segment %d and %d: %v != %v", i, (i+1)%len(got), end, start)
		}
	}
	if len(r.AtomicShapes()) != 8 {
		t.Errorf("AtomicShapes() returned %d shapes, want 8", len(r.AtomicShapes()))
	}
}

func TestRoundRectangleZeroRadius(t *testing.T) {
	r := NewRoundRectangle(V(1, 1), V(4, 2), 0, 0)
	shapes := r.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("Shapes() returned %d shapes, want 1", len(shapes))
	}
	if !shapes[0].IsEqual(NewRectangle(V(1, 1), V(4, 2), 0), TolMM) {
		t.Errorf("Shapes()[0] = %v, want the plain rectangle", shapes[0])
	}
	if len(r.AtomicShapes()) != 4 {
		t.Errorf("AtomicShapes() returned %d shapes, want 4", len(r.AtomicShapes()))
	}
	if !r.IsPointInside(V(0.9, 0.9), true, TolMM) {
		t.Errorf("IsPointInside(0.9, 0.9) = false, want true")
	}
}

func TestRoundRectangleBBox(t *testing.T) {
	half := 1.5 - math.Sqrt2/4
	bb := cornerRoundRect().BBox()
	if !approxEq(bb.Left(), -half) || !approxEq(bb.Right(), half) ||
		!approxEq(bb.Top(), -half) || !approxEq(bb.Bottom(), half) {
		t.Errorf("BBox() = %v, want [%v, %v] to [%v, %v]", bb, -half, -half, half, half)
	}

	rotated := NewRoundRectangle(V(0, 0), V(4, 2), 0.5, 90)
	bb = rotated.BBox()
	if !approxEq(bb.Right(), 1) || !approxEq(bb.Bottom(), 2) {
		t.Errorf("rotated BBox() = %v, want half size (1, 2)", bb)
	}
}

func TestRoundRectangleIsPointOnSelf(t *testing.T) {
	r := cornerRoundRect()
	tests := []struct {
		name        string
		point       Vector2D
		excludeEnds bool
		want        bool
	}{
		{"corner arc midpoint", V(1, 1), false, true},
		{"opposite corner arc midpoint", V(-1, -1), false, true},
		{"center", V(0, 0), false, false},
		{"top edge", V(0, -(1.5 - math.Sqrt2/4)), false, true},
		{"outside", V(2, 0), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsPointOnSelf(tt.point, tt.excludeEnds, TolMM); got != tt.want {
				t.Errorf("IsPointOnSelf(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}

	// The joint between two segments counts as a segment end.
	wide := NewRoundRectangle(V(0, 0), V(4, 2), 0.5, 0)
	joint := V(2, -0.5)
	if wide.IsPointOnSelf(joint, true, TolMM) {
		t.Errorf("IsPointOnSelf(%v, excludeEnds) = true, want false", joint)
	}
	if !wide.IsPointOnSelf(joint, false, TolMM) {
		t.Errorf("IsPointOnSelf(%v) = false, want true", joint)
	}
}

func TestRoundRectangleIsPointInside(t *testing.T) {
	r := cornerRoundRect()
	tests := []struct {
		name   string
		point  Vector2D
		strict bool
		want   bool
	}{
		{"center strictly", V(0, 0), true, true},
		{"on corner arc strictly", V(1, 1), true, false},
		{"on corner arc loosely", V(1, 1), false, true},
		{"in corner circle", V(0.9, 0.9), true, true},
		{"inside bbox but beyond corner arc", V(1.1, 1.1), true, false},
		{"outside", V(2, 0), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsPointInside(tt.point, tt.strict, TolMM); got != tt.want {
				t.Errorf("IsPointInside(%v, strict=%v) = %v, want %v", tt.point, tt.strict, got, tt.want)
			}
		})
	}
}

func TestRoundRectangleIsPointInsideRotated(t *testing.T) {
	r := NewRoundRectangle(V(0, 0), V(4, 2), 0.5, 90)
	tests := []struct {
		name  string
		point Vector2D
		want  bool
	}{
		{"near the top end", V(0, 1.99), true},
		{"corner circle center", V(0.5, 1.5), true},
		{"beyond the rounded corner", V(0.9, 1.9), false},
		{"outside the rotated footprint", V(1.5, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsPointInside(tt.point, true, TolMM); got != tt.want {
				t.Errorf("IsPointInside(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestRoundRectangleInflate(t *testing.T) {
	t.Run("grow and shrink back", func(t *testing.T) {
		r := NewRoundRectangle(V(0, 0), V(4, 2), 0.5, 0)
		if err := r.Inflate(0.25); err != nil {
			t.Fatalf("Inflate(0.25) returned %v", err)
		}
		if !r.Size.IsEqual(V(4.5, 2.5), TolMM) || !approxEq(r.CornerRadius, 0.75) {
			t.Errorf("after Inflate(0.25): size %v radius %v, want (4.5, 2.5) and 0.75", r.Size, r.CornerRadius)
		}
		if err := r.Inflate(-0.25); err != nil {
			t.Fatalf("Inflate(-0.25) returned %v", err)
		}
		if !r.IsEqual(NewRoundRectangle(V(0, 0), V(4, 2), 0.5, 0), TolMM) {
			t.Errorf("inflate round trip changed the shape: %v", r)
		}
	})

	t.Run("corner radius bottoms out at zero", func(t *testing.T) {
		r := NewRoundRectangle(V(0, 0), V(4, 2), 0.5, 0)
		if err := r.Inflate(-0.75); err != nil {
			t.Fatalf("Inflate(-0.75) returned %v", err)
		}
		if r.CornerRadius != 0 {
			t.Errorf("CornerRadius = %v, want 0", r.CornerRadius)
		}
		if len(r.Shapes()) != 1 {
			t.Errorf("Shapes() returned %d shapes, want the plain rectangle", len(r.Shapes()))
		}
	})

	t.Run("deflating past the center fails", func(t *testing.T) {
		r := NewRoundRectangle(V(0, 0), V(4, 2), 0.5, 0)
		err := r.Inflate(-1)
		if !errors.Is(err, ErrDeflationTooLarge) {
			t.Fatalf("Inflate(-1) returned %v, want ErrDeflationTooLarge", err)
		}
		if !r.Size.IsEqual(V(4, 2), TolMM) || !approxEq(r.CornerRadius, 0.5) {
			t.Errorf("failed Inflate changed the shape: size %v radius %v", r.Size, r.CornerRadius)
		}
	})

	t.Run("deflating the corner fixture by sqrt2 fails", func(t *testing.T) {
		r := cornerRoundRect()
		if err := r.Inflate(-math.Sqrt2); !errors.Is(err, ErrDeflationTooLarge) {
			t.Fatalf("Inflate(-sqrt2) returned %v, want ErrDeflationTooLarge", err)
		}
	})
}

func TestRoundRectangleTransforms(t *testing.T) {
	r := NewRoundRectangle(V(1, 0), V(4, 2), 0.5, 0)

	r.Translate(V(1, 2))
	if !r.Center.IsEqual(V(2, 2), TolMM) {
		t.Errorf("Translate moved center to %v, want (2, 2)", r.Center)
	}

	r = NewRoundRectangle(V(1, 0), V(4, 2), 0.5, 0)
	r.Rotate(90, V(0, 0))
	if !r.Center.IsEqual(V(0, 1), TolMM) {
		t.Errorf("Rotate moved center to %v, want (0, 1)", r.Center)
	}
	if !approxEq(r.Angle(), 90) {
		t.Errorf("Angle() = %v, want 90", r.Angle())
	}
	bb := r.BBox()
	if !approxEq(bb.Left(), -1) || !approxEq(bb.Right(), 1) ||
		!approxEq(bb.Top(), -1) || !approxEq(bb.Bottom(), 3) {
		t.Errorf("rotated BBox() = %v, want [-1, -1] to [1, 3]", bb)
	}

	deg := NewRoundRectangle(V(1, 0), V(4, 2), 0.5, 0).Rotate(37, V(1, 1))
	rad := NewRoundRectangle(V(1, 0), V(4, 2), 0.5, 0).RotateRad(degToRad(37), V(1, 1))
	if !deg.IsEqual(rad, TolMM) {
		t.Errorf("Rotate and RotateRad disagree: %v vs %v", deg, rad)
	}

	twice := NewRoundRectangle(V(0, 0), V(4, 2), 0.5, 0).Rotate(45, V(0, 0)).Rotate(45, V(0, 0))
	once := NewRoundRectangle(V(0, 0), V(4, 2), 0.5, 0).Rotate(90, V(0, 0))
	if !twice.IsEqual(once, TolMM) {
		t.Errorf("two 45 degree rotations differ from one 90 degree rotation")
	}
}

func TestRoundRectangleCopyAndEqual(t *testing.T) {
	r := cornerRoundRect()
	c := r.Copy().(*RoundRectangle)
	if !r.IsEqual(c, TolMM) {
		t.Fatalf("copy is not equal to the original")
	}
	c.Translate(V(1, 0))
	if r.IsEqual(c, TolMM) {
		t.Errorf("translating the copy changed the original")
	}
	if r.IsEqual(NewRoundRectangle(V(0, 0), r.Size, 0.4, 0), TolMM) {
		t.Errorf("round rectangles with different corner radii compare equal")
	}
	if r.IsEqual(NewRoundRectangle(V(0, 0), r.Size, 0, 0), TolMM) {
		t.Errorf("rounded and sharp rectangles compare equal")
	}
	if r.IsEqual(NewRectangle(V(0, 0), r.Size, 0), TolMM) {
		t.Errorf("a round rectangle compares equal to a plain rectangle")
	}
}
