package geom

import (
	"errors"
	"math"
	"testing"
)

func TestCircleBasics(t *testing.T) {
	c := NewCircle(V(1, 2), -3)
	if c.Radius != 3 {
		t.Errorf("Radius = %v, want 3 (absolute value)", c.Radius)
	}
	if got := c.Length(); !approxEq(got, 6*math.Pi) {
		t.Errorf("Length() = %v, want %v", got, 6*math.Pi)
	}
	if got := c.Mid(); got != V(4, 2) {
		t.Errorf("Mid() = %v, want (4, 2)", got)
	}
	if !c.IsClosed() {
		t.Error("IsClosed() = false, want true")
	}

	bb := c.BBox()
	if bb.Min() != V(-2, -1) || bb.Max() != V(4, 5) {
		t.Errorf("BBox() = %v..%v, want (-2, -1)..(4, 5)", bb.Min(), bb.Max())
	}
}

func TestCircleFromArc(t *testing.T) {
	c := NewCircleFromArc(NewArc(V(1, 1), V(4, 1), 90))
	if !c.IsEqual(NewCircle(V(1, 1), 3), TolMM) {
		t.Errorf("NewCircleFromArc() = center %v radius %v, want center (1, 1) radius 3", c.Center, c.Radius)
	}
}

func TestCirclePointInside(t *testing.T) {
	c := NewCircle(V(0, 0), 5)
	onBoundary := V(3, 4)
	tests := []struct {
		name   string
		p      Vector2D
		strict bool
		want   bool
	}{
		{"boundary strict", onBoundary, true, false},
		{"boundary non-strict", onBoundary, false, true},
		{"center strict", V(0, 0), true, true},
		{"inside strict", V(3, 3.9), true, true},
		{"outside", V(3, 4.1), false, false},
		{"outside strict", V(6, 0), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsPointInside(tt.p, tt.strict, TolMM); got != tt.want {
				t.Errorf("IsPointInside(%v, strict=%v) = %v, want %v", tt.p, tt.strict, got, tt.want)
			}
		})
	}
}

func TestCirclePointOnSelf(t *testing.T) {
	c := NewCircle(V(0, 0), math.Sqrt2)
	tests := []struct {
		name string
		p    Vector2D
		want bool
	}{
		{"on outline", V(1, 1), true},
		{"near outline", FromPolar(math.Sqrt2+0.5*TolMM, 30), true},
		{"off outline", FromPolar(math.Sqrt2+1.5*TolMM, 30), false},
		{"center", V(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsPointOnSelf(tt.p, false, TolMM); got != tt.want {
				t.Errorf("IsPointOnSelf(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCircleInflate(t *testing.T) {
	c := NewCircle(V(0, 0), 5)
	if err := c.Inflate(2); err != nil {
		t.Fatalf("Inflate(2) error: %v", err)
	}
	if c.Radius != 7 {
		t.Errorf("Radius = %v, want 7", c.Radius)
	}
	if err := c.Inflate(-3); err != nil {
		t.Fatalf("Inflate(-3) error: %v", err)
	}
	if c.Radius != 4 {
		t.Errorf("Radius = %v, want 4", c.Radius)
	}

	err := c.Inflate(-4)
	if !errors.Is(err, ErrDeflationTooLarge) {
		t.Errorf("Inflate(-4) error = %v, want ErrDeflationTooLarge", err)
	}
	if c.Radius != 4 {
		t.Errorf("failed deflation changed the radius to %v", c.Radius)
	}

	got, err := Inflated(c, 1)
	if err != nil {
		t.Fatalf("Inflated(c, 1) error: %v", err)
	}
	if got.(*Circle).Radius != 5 || c.Radius != 4 {
		t.Errorf("Inflated() = %v, original %v; want 5 and untouched 4", got.(*Circle).Radius, c.Radius)
	}
}

func TestCircleTranslateRotate(t *testing.T) {
	c := NewCircle(V(1, 0), 2)
	c.Translate(V(1, 1))
	if c.Center != V(2, 1) {
		t.Errorf("Translate(1, 1): center = %v, want (2, 1)", c.Center)
	}
	c.Rotate(90, V(0, 0))
	if !vecApproxEq(c.Center, V(-1, 2)) {
		t.Errorf("Rotate(90): center = %v, want (-1, 2)", c.Center)
	}
	if c.Radius != 2 {
		t.Errorf("rotation changed the radius to %v", c.Radius)
	}
}

func TestCircleIsEqual(t *testing.T) {
	c := NewCircle(V(0, 0), math.Sqrt2)
	if !c.IsEqual(NewCircle(V(0, 0), math.Sqrt2), TolMM) {
		t.Error("IsEqual(same) = false, want true")
	}
	if c.IsEqual(NewCircle(V(0, 0), 1.5), TolMM) {
		t.Error("IsEqual(different radius) = true, want false")
	}
	if c.IsEqual(NewLine(V(-1, -1), V(1, 1)), TolMM) {
		t.Error("IsEqual(line) = true, want false")
	}
}
