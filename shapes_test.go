package geom

import (
	"math"
	"testing"
)

// Shared shape fixtures for the algorithm tests. Every fixture has
// (-1, -1) and (1, 1) on its outline, and the closed fixtures contain
// the origin. Shapes are mutable, so every call builds fresh
// instances.

var fixturePoints = []Vector2D{V(-1, -1), V(1, -1), V(1, 1), V(-1, 1)}

type shapeFixture struct {
	name  string
	shape Shape
}

func openTestShapes(t *testing.T) []shapeFixture {
	t.Helper()
	return []shapeFixture{
		{"arc", NewArc(V(0, 0), V(-1, -1), -180)},
		{"line", NewLine(V(-1, -1), V(1, 1))},
		{"cross", NewCross(V(0, 0), V(2*math.Sqrt2, 2*math.Sqrt2), 45)},
	}
}

func closedTestShapes(t *testing.T) []shapeFixture {
	t.Helper()
	compound, err := NewCompoundPolygon([]Shape{NewPolygon(fixturePoints)}, true)
	if err != nil {
		t.Fatalf("compound fixture: %v", err)
	}
	return []shapeFixture{
		{"circle", NewCircle(V(0, 0), math.Sqrt2)},
		{"rectangle", NewRectangle(V(0, 0), V(2, 2), 0)},
		{"polygon", NewPolygon(fixturePoints)},
		{"compound", compound},
		{"stadium", NewStadium(V(-1, 0), V(1, 0), 1)},
		{"cruciform", NewCruciform(V(0, 0), V(4, 4), V(2, 2), 0)},
		{"roundrect", NewRoundRectangle(V(0, 0), V(3-math.Sqrt2/2, 3-math.Sqrt2/2), 0.5, 0)},
		{"trapezoid", NewTrapezoid(V(0, 0), V(6, 2), 0, 45, 0)},
	}
}

func allTestShapes(t *testing.T) []shapeFixture {
	t.Helper()
	return append(openTestShapes(t), closedTestShapes(t)...)
}

// pointsMatch compares two point sets regardless of order.
func pointsMatch(got, want []Vector2D, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	used := make([]bool, len(want))
	for _, g := range got {
		found := false
		for i, w := range want {
			if !used[i] && g.IsEqual(w, tol) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// outlineLength sums the segment lengths of a shape's atomic
// decomposition.
func outlineLength(s Shape) float64 {
	total := 0.0
	for _, atom := range s.AtomicShapes() {
		switch seg := atom.(type) {
		case *Line:
			total += seg.Length()
		case *Arc:
			total += seg.Length()
		case *Circle:
			total += seg.Length()
		}
	}
	return total
}

// shoelaceArea returns the absolute enclosed area of a point loop.
func shoelaceArea(points []Vector2D) float64 {
	sum := 0.0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}
