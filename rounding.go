package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// RoundToGridUp rounds value to a multiple of grid, always rounding
// up. epsilon absorbs float noise so that values a hair below a grid
// line (such as 0.4 stored as 0.40000000000000002) do not jump to the
// next multiple.
func RoundToGridUp(value, grid, epsilon float64) float64 {
	return math.Ceil(value/grid-epsilon) * grid
}

// RoundToGridDown rounds value to a multiple of grid, always rounding
// down. See RoundToGridUp for the role of epsilon.
func RoundToGridDown(value, grid, epsilon float64) float64 {
	return math.Floor(value/grid+epsilon) * grid
}

// RoundToGrid rounds value to a multiple of grid, always rounding away
// from zero. This suits outlines around objects centered at the
// origin, where rounding away from zero only grows the outline. A grid
// of 0 returns the value unchanged.
func RoundToGrid(value, grid, epsilon float64) float64 {
	if grid == 0 {
		return value
	}
	if value > 0 {
		return scalar.Round(RoundToGridUp(value, grid, epsilon), 6)
	}
	return scalar.Round(RoundToGridDown(value, grid, epsilon), 6)
}

// RoundToGridE rounds value to a multiple of grid away from zero with
// the default epsilon TolMM.
func RoundToGridE(value, grid float64) float64 {
	return RoundToGrid(value, grid, TolMM)
}

// RoundToGridNearest rounds value to the nearest multiple of grid. A
// grid of 0 returns the value unchanged.
func RoundToGridNearest(value, grid float64) float64 {
	if grid == 0 {
		return value
	}
	return scalar.Round(math.RoundToEven(value/grid)*grid, 6)
}

// RoundPolygonToGrid rounds the points of a polygon to the grid, in
// place. Each point is rounded per edge, by the edge's local
// direction, so that the enclosed area only grows (increaseArea) or
// only shrinks (!increaseArea) and the winding never flips. clockwise
// states the winding of the given points.
func RoundPolygonToGrid(points []Vector2D, grid float64, clockwise, increaseArea bool) {
	roundUp, roundDown := RoundToGridUp, RoundToGridDown
	if clockwise != increaseArea {
		roundUp, roundDown = roundDown, roundUp
	}

	num := len(points)
	for i := range points {
		pt1 := &points[i]
		pt2 := &points[(i+1)%num]
		if pt1.X < pt2.X { // going right
			pt1.Y = roundDown(pt1.Y, grid, TolMM)
			pt2.Y = roundDown(pt2.Y, grid, TolMM)
		} else if pt1.X > pt2.X { // going left
			pt1.Y = roundUp(pt1.Y, grid, TolMM)
			pt2.Y = roundUp(pt2.Y, grid, TolMM)
		}
		if pt1.Y > pt2.Y { // going up
			pt1.X = roundDown(pt1.X, grid, TolMM)
			pt2.X = roundDown(pt2.X, grid, TolMM)
		} else if pt1.Y < pt2.Y { // going down
			pt1.X = roundUp(pt1.X, grid, TolMM)
			pt2.X = roundUp(pt2.X, grid, TolMM)
		}
	}
}
