package geom

import (
	"math"
	"testing"
)

func TestLineBasics(t *testing.T) {
	l := NewLine(V(-1, -1), V(1, 1))
	if got := l.Length(); !approxEq(got, 2*math.Sqrt2) {
		t.Errorf("Length() = %v, want %v", got, 2*math.Sqrt2)
	}
	if got := l.Mid(); !vecApproxEq(got, V(0, 0)) {
		t.Errorf("Mid() = %v, want (0, 0)", got)
	}
	if got := l.Direction(); got != V(2, 2) {
		t.Errorf("Direction() = %v, want (2, 2)", got)
	}
	if got := l.Angle(); !approxEq(got, 45) {
		t.Errorf("Angle() = %v, want 45", got)
	}
	if l.IsClosed() {
		t.Error("IsClosed() = true, want false")
	}
	u, err := l.UnitDirection(TolMM)
	if err != nil {
		t.Fatalf("UnitDirection() error: %v", err)
	}
	if !vecApproxEq(u, V(math.Sqrt2/2, math.Sqrt2/2)) {
		t.Errorf("UnitDirection() = %v, want %v", u, V(math.Sqrt2/2, math.Sqrt2/2))
	}
	if _, err := NewLine(V(1, 1), V(1, 1)).UnitDirection(TolMM); err != ErrDegenerateVector {
		t.Errorf("degenerate UnitDirection() error = %v, want ErrDegenerateVector", err)
	}
}

func TestLineBBox(t *testing.T) {
	bb := NewLine(V(3, -2), V(-1, 4)).BBox()
	if got := bb.Min(); got != V(-1, -2) {
		t.Errorf("BBox().Min() = %v, want (-1, -2)", got)
	}
	if got := bb.Max(); got != V(3, 4) {
		t.Errorf("BBox().Max() = %v, want (3, 4)", got)
	}
}

func TestLineTranslateRotate(t *testing.T) {
	l := NewLine(V(-1, -1), V(1, 1))
	l.Translate(V(2, 3))
	if !vecApproxEq(l.Start, V(1, 2)) || !vecApproxEq(l.End, V(3, 4)) {
		t.Errorf("Translate(2, 3) = %v -> %v, want (1, 2) -> (3, 4)", l.Start, l.End)
	}
	l.Translate(V(-2, -3))
	if !vecApproxEq(l.Start, V(-1, -1)) || !vecApproxEq(l.End, V(1, 1)) {
		t.Errorf("translate round trip = %v -> %v, want original", l.Start, l.End)
	}

	l.Rotate(90, V(0, 0))
	if !vecApproxEq(l.Start, V(1, -1)) || !vecApproxEq(l.End, V(-1, 1)) {
		t.Errorf("Rotate(90) = %v -> %v, want (1, -1) -> (-1, 1)", l.Start, l.End)
	}
	l.RotateRad(-math.Pi/2, V(0, 0))
	if !vecApproxEq(l.Start, V(-1, -1)) || !vecApproxEq(l.End, V(1, 1)) {
		t.Errorf("rotate round trip = %v -> %v, want original", l.Start, l.End)
	}
}

func TestLineReverse(t *testing.T) {
	l := NewLine(V(-1, -1), V(1, 1))
	l.Reverse()
	if l.Start != V(1, 1) || l.End != V(-1, -1) {
		t.Errorf("Reverse() = %v -> %v, want (1, 1) -> (-1, -1)", l.Start, l.End)
	}
}

func TestLineIsEqual(t *testing.T) {
	l := NewLine(V(-1, -1), V(1, 1))
	if !l.IsEqual(NewLine(V(-1, -1), V(1, 1)), TolMM) {
		t.Error("IsEqual(same) = false, want true")
	}
	// Orientation matters.
	if l.IsEqual(NewLine(V(1, 1), V(-1, -1)), TolMM) {
		t.Error("IsEqual(reversed) = true, want false")
	}
	if l.IsEqual(NewLine(V(-1, -1), V(2, 2)), TolMM) {
		t.Error("IsEqual(longer) = true, want false")
	}
}

func TestLineIsPointOnSelf(t *testing.T) {
	diag := NewLine(V(-1, -1), V(1, 1))
	vert := NewLine(V(0, -1), V(0, 1))
	horiz := NewLine(V(-1, 0), V(1, 0))
	// Unit normal of the diagonal, scaled by fractions of tol below.
	off := V(-math.Sqrt2/2, math.Sqrt2/2)

	tests := []struct {
		name        string
		l           *Line
		p           Vector2D
		excludeEnds bool
		want        bool
	}{
		{"diagonal mid", diag, V(0, 0), false, true},
		{"diagonal mid exclude ends", diag, V(0, 0), true, true},
		{"diagonal start", diag, V(-1, -1), false, true},
		{"diagonal start excluded", diag, V(-1, -1), true, false},
		{"diagonal end excluded", diag, V(1, 1), true, false},
		{"diagonal near outline", diag, off.Mul(0.5 * TolMM), false, true},
		{"diagonal off outline", diag, off.Mul(1.5 * TolMM), false, false},
		{"diagonal beyond end", diag, V(2, 2), false, false},
		{"diagonal before start", diag, V(-2, -2), false, false},
		{"vertical mid", vert, V(0, 0), false, true},
		{"vertical near", vert, V(0.5 * TolMM, 0), false, true},
		{"vertical off", vert, V(1.5 * TolMM, 0), false, false},
		{"vertical end", vert, V(0, 1), false, true},
		{"vertical end excluded", vert, V(0, 1), true, false},
		{"vertical beyond end", vert, V(0, 1 + 1.5*TolMM), false, false},
		{"horizontal mid", horiz, V(0, 0), false, true},
		{"horizontal near", horiz, V(0, -0.5 * TolMM), false, true},
		{"horizontal off", horiz, V(0, 1.5 * TolMM), false, false},
		{"horizontal beyond end", horiz, V(1 + 1.5*TolMM, 0), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.IsPointOnSelf(tt.p, tt.excludeEnds, TolMM); got != tt.want {
				t.Errorf("IsPointOnSelf(%v, excludeEnds=%v) = %v, want %v", tt.p, tt.excludeEnds, got, tt.want)
			}
		})
	}
}

func TestLineIsPointOnSelfAccelerated(t *testing.T) {
	l := NewLine(V(-1, -1), V(1, 1))
	tests := []struct {
		name        string
		p           Vector2D
		excludeEnds bool
		want        bool
	}{
		{"mid", V(0, 0), false, true},
		{"start", V(-1, -1), false, true},
		{"start excluded", V(-1, -1), true, false},
		{"outside box", V(2, 2), false, false},
		{"inside box interior", V(0.5, 0.5), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.IsPointOnSelfAccelerated(tt.p, tt.excludeEnds, TolMM); got != tt.want {
				t.Errorf("IsPointOnSelfAccelerated(%v, excludeEnds=%v) = %v, want %v", tt.p, tt.excludeEnds, got, tt.want)
			}
		})
	}
}

func TestLineToHomogeneous(t *testing.T) {
	tests := []struct {
		name string
		l    *Line
		want Vector3D
	}{
		{"diagonal", NewLine(V(-1, -1), V(1, 1)), V3(-2, 2, 0)},
		{"vertical", NewLine(V(1, 0), V(1, 5)), V3(-5, 0, 5)},
		{"horizontal", NewLine(V(0, 2), V(3, 2)), V3(0, 3, -6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.l.ToHomogeneous()
			if got != tt.want {
				t.Errorf("ToHomogeneous() = %v, want %v", got, tt.want)
			}
			// Both end points must satisfy ax + by + c = 0.
			for _, p := range []Vector2D{tt.l.Start, tt.l.End} {
				if r := got.X*p.X + got.Y*p.Y + got.Z; !approxEq(r, 0) {
					t.Errorf("end point %v not on homogeneous line: %v", p, r)
				}
			}
		})
	}
}

func TestLineSortPointsRelativeToStart(t *testing.T) {
	l := NewLine(V(0, 0), V(10, 0))
	got := l.SortPointsRelativeToStart([]Vector2D{V(7, 0), V(2, 0), V(5, 0)})
	want := []Vector2D{V(2, 0), V(5, 0), V(7, 0)}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortPointsRelativeToStart() = %v, want %v", got, want)
		}
	}
}

func TestLineCopy(t *testing.T) {
	l := NewLine(V(-1, -1), V(1, 1))
	c := l.Copy().(*Line)
	c.Translate(V(5, 5))
	if l.Start != V(-1, -1) || l.End != V(1, 1) {
		t.Errorf("Copy() shares state: original mutated to %v -> %v", l.Start, l.End)
	}
}
