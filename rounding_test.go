package geom

import "testing"

func TestRoundToGrid(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		grid  float64
		want  float64
	}{
		{"zero grid", 0.123, 0, 0.123},
		{"on grid", 0.6, 0.05, 0.60},
		{"hair above grid", 0.600000001, 0.05, 0.60},
		{"hair below grid", 0.599999999, 0.05, 0.60},
		{"negative hair above", -0.600000001, 0.05, -0.60},
		{"negative hair below", -0.599999999, 0.05, -0.60},
		{"away from zero positive", 0.61, 0.05, 0.65},
		{"away from zero negative", -0.61, 0.05, -0.65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundToGrid(tt.value, tt.grid, 1e-7); !approxEq(got, tt.want) {
				t.Errorf("RoundToGrid(%v, %v) = %v, want %v", tt.value, tt.grid, got, tt.want)
			}
			if got := RoundToGridE(tt.value, tt.grid); !approxEq(got, tt.want) {
				t.Errorf("RoundToGridE(%v, %v) = %v, want %v", tt.value, tt.grid, got, tt.want)
			}
		})
	}
}

func TestRoundToGridUpDown(t *testing.T) {
	if got := RoundToGridUp(0.61, 0.05, TolMM); !approxEq(got, 0.65) {
		t.Errorf("RoundToGridUp(0.61, 0.05) = %v, want 0.65", got)
	}
	if got := RoundToGridDown(0.61, 0.05, TolMM); !approxEq(got, 0.60) {
		t.Errorf("RoundToGridDown(0.61, 0.05) = %v, want 0.60", got)
	}
	if got := RoundToGridUp(-0.61, 0.05, TolMM); !approxEq(got, -0.60) {
		t.Errorf("RoundToGridUp(-0.61, 0.05) = %v, want -0.60", got)
	}
	if got := RoundToGridDown(-0.61, 0.05, TolMM); !approxEq(got, -0.65) {
		t.Errorf("RoundToGridDown(-0.61, 0.05) = %v, want -0.65", got)
	}
}

func TestRoundToGridNearest(t *testing.T) {
	tests := []struct {
		value, grid, want float64
	}{
		{0.62, 0.05, 0.60},
		{0.63, 0.05, 0.65},
		{-0.62, 0.05, -0.60},
		{0.62, 0, 0.62},
	}
	for _, tt := range tests {
		if got := RoundToGridNearest(tt.value, tt.grid); !approxEq(got, tt.want) {
			t.Errorf("RoundToGridNearest(%v, %v) = %v, want %v", tt.value, tt.grid, got, tt.want)
		}
	}
}

func TestRoundPolygonToGrid(t *testing.T) {
	// A clockwise unit square slightly off grid. Rounding outwards
	// grows it to the enclosing grid square, rounding inwards shrinks
	// it to the enclosed one.
	square := func() []Vector2D {
		return []Vector2D{V(-1.01, -1.01), V(1.01, -1.01), V(1.01, 1.01), V(-1.01, 1.01)}
	}

	grown := square()
	RoundPolygonToGrid(grown, 0.1, true, true)
	wantGrown := []Vector2D{V(-1.1, -1.1), V(1.1, -1.1), V(1.1, 1.1), V(-1.1, 1.1)}
	for i := range grown {
		if !vecApproxEq(grown[i], wantGrown[i]) {
			t.Errorf("grown[%d] = %v, want %v", i, grown[i], wantGrown[i])
		}
	}

	shrunk := square()
	RoundPolygonToGrid(shrunk, 0.1, true, false)
	wantShrunk := []Vector2D{V(-1, -1), V(1, -1), V(1, 1), V(-1, 1)}
	for i := range shrunk {
		if !vecApproxEq(shrunk[i], wantShrunk[i]) {
			t.Errorf("shrunk[%d] = %v, want %v", i, shrunk[i], wantShrunk[i])
		}
	}

	// Winding survives the per-edge rounding in both directions.
	if !NewPolygon(grown).IsClockwise() || !NewPolygon(shrunk).IsClockwise() {
		t.Error("grid rounding flipped the winding")
	}
}
