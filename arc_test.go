package geom

import (
	"math"
	"testing"
)

// quarterArc returns an arc from (5, 0) sweeping 90 degrees about the
// origin, ending at (0, 5).
func quarterArc() *Arc {
	return NewArc(V(0, 0), V(5, 0), 90)
}

// halfArc returns an arc from (-1, -1) sweeping -180 degrees about the
// origin, ending at (1, 1).
func halfArc() *Arc {
	return NewArc(V(0, 0), V(-1, -1), -180)
}

func TestArcEndpoints(t *testing.T) {
	a := quarterArc()
	if got := a.End(); !vecApproxEq(got, V(0, 5)) {
		t.Errorf("End() = %v, want (0, 5)", got)
	}
	if got := a.Mid(); !vecApproxEq(got, V(5*math.Sqrt2/2, 5*math.Sqrt2/2)) {
		t.Errorf("Mid() = %v, want %v", got, V(5*math.Sqrt2/2, 5*math.Sqrt2/2))
	}
	if got := a.Radius(); !approxEq(got, 5) {
		t.Errorf("Radius() = %v, want 5", got)
	}
	if got := a.Length(); !approxEq(got, 5*math.Pi/2) {
		t.Errorf("Length() = %v, want %v", got, 5*math.Pi/2)
	}
	if got := a.Direction(); got != 1 {
		t.Errorf("Direction() = %v, want 1", got)
	}

	h := halfArc()
	if got := h.End(); !vecApproxEq(got, V(1, 1)) {
		t.Errorf("End() = %v, want (1, 1)", got)
	}
	if got := h.Mid(); !vecApproxEq(got, V(-1, 1)) {
		t.Errorf("Mid() = %v, want (-1, 1)", got)
	}
	if got := h.Length(); !approxEq(got, math.Pi*math.Sqrt2) {
		t.Errorf("Length() = %v, want %v", got, math.Pi*math.Sqrt2)
	}
	if got := h.Direction(); got != -1 {
		t.Errorf("Direction() = %v, want -1", got)
	}
}

func TestArcConstructorEquivalence(t *testing.T) {
	want := halfArc()
	tests := []struct {
		name string
		got  *Arc
	}{
		{"from mid", NewArcMid(V(0, 0), V(-1, 1), -180)},
		{"from end", NewArcEnd(V(0, 0), V(1, 1), -180)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.IsEqual(want, 1e-9) {
				t.Errorf("got center=%v start=%v angle=%v, want center=%v start=%v angle=%v",
					tt.got.Center(), tt.got.Start(), tt.got.Angle(),
					want.Center(), want.Start(), want.Angle())
			}
		})
	}
}

func TestArcCenterStartEnd(t *testing.T) {
	tests := []struct {
		name       string
		start, end Vector2D
		longWay    bool
		wantAngle  float64
	}{
		{"quarter short", V(5, 0), V(0, 5), false, 90},
		{"quarter long", V(5, 0), V(0, 5), true, -270},
		{"half short", V(5, 0), V(-5, 0), false, -180},
		{"half long", V(5, 0), V(-5, 0), true, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArcCenterStartEnd(V(0, 0), tt.start, tt.end, tt.longWay)
			if err != nil {
				t.Fatalf("NewArcCenterStartEnd() error: %v", err)
			}
			if !approxEq(a.Angle(), tt.wantAngle) {
				t.Errorf("Angle() = %v, want %v", a.Angle(), tt.wantAngle)
			}
			if !vecApproxEq(a.End(), tt.end) {
				t.Errorf("End() = %v, want %v", a.End(), tt.end)
			}
		})
	}

	if _, err := NewArcCenterStartEnd(V(0, 0), V(5, 0), V(0, 6), false); err == nil {
		t.Error("unequal radii: error = nil, want non-nil")
	}
}

func TestArcThreePoints(t *testing.T) {
	a, err := NewArcThreePoints(V(1, 0), V(0, 1), V(-1, 0))
	if err != nil {
		t.Fatalf("NewArcThreePoints() error: %v", err)
	}
	if !vecApproxEq(a.Center(), V(0, 0)) {
		t.Errorf("Center() = %v, want (0, 0)", a.Center())
	}
	if !approxEq(a.Angle(), 180) {
		t.Errorf("Angle() = %v, want 180", a.Angle())
	}

	b, err := NewArcThreePoints(V(1, 0), V(0, -1), V(-1, 0))
	if err != nil {
		t.Fatalf("NewArcThreePoints() error: %v", err)
	}
	if !approxEq(b.Angle(), -180) {
		t.Errorf("Angle() = %v, want -180", b.Angle())
	}

	if _, err := NewArcThreePoints(V(0, 0), V(1, 1), V(2, 2)); err != ErrNotAnArc {
		t.Errorf("collinear points: error = %v, want ErrNotAnArc", err)
	}
}

func TestArcSetters(t *testing.T) {
	t.Run("SetRadius", func(t *testing.T) {
		a := halfArc()
		a.SetRadius(2 * math.Sqrt2)
		if !vecApproxEq(a.Start(), V(-2, -2)) {
			t.Errorf("Start() = %v, want (-2, -2)", a.Start())
		}
		if !vecApproxEq(a.End(), V(2, 2)) {
			t.Errorf("End() = %v, want (2, 2)", a.End())
		}
	})

	t.Run("SetEnd same direction", func(t *testing.T) {
		a := quarterArc()
		a.SetEnd(V(-5, 0))
		if !approxEq(a.Angle(), 180) {
			t.Errorf("Angle() = %v, want 180", a.Angle())
		}
	})

	t.Run("SetEnd keeps direction across the seam", func(t *testing.T) {
		a := quarterArc()
		a.SetEnd(V(0, -5))
		if !approxEq(a.Angle(), 270) {
			t.Errorf("Angle() = %v, want 270", a.Angle())
		}
	})

	t.Run("SetStart keeps end", func(t *testing.T) {
		a := quarterArc()
		a.SetStart(V(0, -5))
		if !approxEq(a.Angle(), 180) {
			t.Errorf("Angle() = %v, want 180", a.Angle())
		}
		if !vecApproxEq(a.End(), V(0, 5)) {
			t.Errorf("End() = %v, want (0, 5)", a.End())
		}
	})

	t.Run("SetStartKeepAngle rotates end", func(t *testing.T) {
		a := quarterArc()
		a.SetStartKeepAngle(V(0, -5))
		if !approxEq(a.Angle(), 90) {
			t.Errorf("Angle() = %v, want 90", a.Angle())
		}
		if !vecApproxEq(a.End(), V(5, 0)) {
			t.Errorf("End() = %v, want (5, 0)", a.End())
		}
	})

	t.Run("SetAngle invalidates end", func(t *testing.T) {
		a := quarterArc()
		_ = a.End()
		a.SetAngle(180)
		if !vecApproxEq(a.End(), V(-5, 0)) {
			t.Errorf("End() = %v, want (-5, 0)", a.End())
		}
	})
}

func TestArcReverse(t *testing.T) {
	a := halfArc()
	a.Reverse()
	if !vecApproxEq(a.Start(), V(1, 1)) {
		t.Errorf("Start() = %v, want (1, 1)", a.Start())
	}
	if !vecApproxEq(a.End(), V(-1, -1)) {
		t.Errorf("End() = %v, want (-1, -1)", a.End())
	}
	if !approxEq(a.Angle(), 180) {
		t.Errorf("Angle() = %v, want 180", a.Angle())
	}
}

func TestArcTranslateRotate(t *testing.T) {
	a := quarterArc()
	_ = a.End()
	a.Translate(V(1, 2))
	if !vecApproxEq(a.Center(), V(1, 2)) || !vecApproxEq(a.Start(), V(6, 2)) || !vecApproxEq(a.End(), V(1, 7)) {
		t.Errorf("Translate(1, 2): center=%v start=%v end=%v", a.Center(), a.Start(), a.End())
	}
	a.Translate(V(-1, -2))

	a.Rotate(90, V(0, 0))
	if !vecApproxEq(a.Start(), V(0, 5)) {
		t.Errorf("Rotate(90): Start() = %v, want (0, 5)", a.Start())
	}
	if !vecApproxEq(a.End(), V(-5, 0)) {
		t.Errorf("Rotate(90): End() = %v, want (-5, 0)", a.End())
	}
	a.RotateRad(-math.Pi/2, V(0, 0))
	if !vecApproxEq(a.Start(), V(5, 0)) || !vecApproxEq(a.End(), V(0, 5)) {
		t.Errorf("rotate round trip: start=%v end=%v, want (5, 0) and (0, 5)", a.Start(), a.End())
	}
}

func TestArcBBox(t *testing.T) {
	tests := []struct {
		name     string
		a        *Arc
		min, max Vector2D
	}{
		{"half arc", halfArc(), V(-math.Sqrt2, -1), V(1, math.Sqrt2)},
		{"quarter arc", quarterArc(), V(0, 0), V(5, 5)},
		{"full sweep", NewArc(V(0, 0), V(1, 0), 360), V(-1, -1), V(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := tt.a.BBox()
			if !vecApproxEq(bb.Min(), tt.min) || !vecApproxEq(bb.Max(), tt.max) {
				t.Errorf("BBox() = %v..%v, want %v..%v", bb.Min(), bb.Max(), tt.min, tt.max)
			}
		})
	}
}

func TestArcIsPointOnSelf(t *testing.T) {
	h := halfArc()
	onMid := V(-1, 1)
	offArc := V(0, -math.Sqrt2)
	tests := []struct {
		name        string
		p           Vector2D
		excludeEnds bool
		want        bool
	}{
		{"mid", onMid, false, true},
		{"mid exclude ends", onMid, true, true},
		{"start", V(-1, -1), false, true},
		{"end", V(1, 1), false, true},
		{"end excluded", V(1, 1), true, false},
		{"opposite side of circle", offArc, false, false},
		{"off radius", V(-2, 2), false, false},
		{"near outline", FromPolar(math.Sqrt2+0.5*TolMM, 135), false, true},
		{"off outline", FromPolar(math.Sqrt2+1.5*TolMM, 135), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.IsPointOnSelf(tt.p, tt.excludeEnds, TolMM); got != tt.want {
				t.Errorf("IsPointOnSelf(%v, excludeEnds=%v) = %v, want %v", tt.p, tt.excludeEnds, got, tt.want)
			}
		})
	}

	t.Run("degenerate radius", func(t *testing.T) {
		a := NewArc(V(1, 1), V(1, 1), 90)
		if !a.IsPointOnSelf(V(1, 1), false, TolMM) {
			t.Error("point arc: IsPointOnSelf(center) = false, want true")
		}
	})
}

func TestArcIsPointOnSelfAccelerated(t *testing.T) {
	h := halfArc()
	tests := []struct {
		name        string
		p           Vector2D
		excludeEnds bool
		want        bool
	}{
		{"mid", V(-1, 1), false, true},
		{"start", V(-1, -1), false, true},
		{"start excluded", V(-1, -1), true, false},
		{"end excluded", V(1, 1), true, false},
		{"opposite side", V(0, -math.Sqrt2), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.IsPointOnSelfAccelerated(tt.p, tt.excludeEnds, TolMM); got != tt.want {
				t.Errorf("IsPointOnSelfAccelerated(%v, excludeEnds=%v) = %v, want %v", tt.p, tt.excludeEnds, got, tt.want)
			}
		})
	}
}

func TestArcAngleFromStart(t *testing.T) {
	h := halfArc()
	if got := h.AngleFromStart(V(-1, 1)); !approxEq(got, -90) {
		t.Errorf("AngleFromStart(mid) = %v, want -90", got)
	}
	if got := h.AngleFromStart(V(1, 1)); !approxEq(got, -180) {
		t.Errorf("AngleFromStart(end) = %v, want -180", got)
	}
}

func TestArcLocalPolar(t *testing.T) {
	h := halfArc()
	// A point slightly behind the start wraps onto the sweep branch.
	r, ang := h.LocalPolar(FromPolar(math.Sqrt2, -130), TolMM)
	if !approxEq(r, math.Sqrt2) || !approxEq(ang, -355) {
		t.Errorf("LocalPolar() = (%v, %v), want (%v, -355)", r, ang, math.Sqrt2)
	}
	r, ang = h.LocalPolar(V(-1, 1), TolMM)
	if !approxEq(r, math.Sqrt2) || !approxEq(ang, -90) {
		t.Errorf("LocalPolar(mid) = (%v, %v), want (%v, -90)", r, ang, math.Sqrt2)
	}
}

func TestArcSortPointsRelativeToStart(t *testing.T) {
	h := halfArc()
	pA := FromPolar(math.Sqrt2, -145) // 10 degrees into the sweep
	pB := FromPolar(math.Sqrt2, -225) // 90 degrees in
	pC := FromPolar(math.Sqrt2, -305) // 170 degrees in
	got := h.SortPointsRelativeToStart([]Vector2D{pB, pC, pA}, TolMM)
	wantAngles := []float64{-10, -90, -170}
	wantPoints := []Vector2D{pA, pB, pC}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i := range got {
		if !approxEq(got[i].Angle, wantAngles[i]) || !vecApproxEq(got[i].Point, wantPoints[i]) {
			t.Errorf("sorted[%d] = (angle %v, %v), want (angle %v, %v)",
				i, got[i].Angle, got[i].Point, wantAngles[i], wantPoints[i])
		}
	}
}

func TestArcIsEqual(t *testing.T) {
	a := halfArc()
	if !a.IsEqual(halfArc(), TolMM) {
		t.Error("IsEqual(same) = false, want true")
	}
	if a.IsEqual(NewArc(V(0, 0), V(-1, -1), -179), TolMM) {
		t.Error("IsEqual(different sweep) = true, want false")
	}
	if a.IsEqual(NewArc(V(0.5, 0), V(-1, -1), -180), TolMM) {
		t.Error("IsEqual(different center) = true, want false")
	}
	if a.IsEqual(NewLine(V(-1, -1), V(1, 1)), TolMM) {
		t.Error("IsEqual(line) = true, want false")
	}
}

func TestArcCopy(t *testing.T) {
	a := halfArc()
	c := a.Copy().(*Arc)
	c.Translate(V(3, 3))
	if !vecApproxEq(a.Center(), V(0, 0)) {
		t.Errorf("Copy() shares state: center = %v", a.Center())
	}
}
