package geom

import (
	"fmt"
	"math"
	"sort"
)

// Arc is a circular arc segment described by a center, a start point
// and a sweep angle in degrees. The sweep is kept normalized to
// (-360, 360]; its sign is the direction of travel. The end point is
// the start point rotated by the sweep about the center and is cached
// once computed.
type Arc struct {
	center Vector2D
	start  Vector2D
	angle  float64
	end    Vector2D
	hasEnd bool
}

// NewArc creates an arc from its center, start point and sweep angle
// in degrees.
func NewArc(center, start Vector2D, angleDeg float64) *Arc {
	return &Arc{center: center, start: start, angle: normalizeSweep(angleDeg)}
}

// NewArcMid creates an arc from its center, mid point and sweep angle
// in degrees.
func NewArcMid(center, mid Vector2D, angleDeg float64) *Arc {
	a := &Arc{center: center, angle: normalizeSweep(angleDeg)}
	r, ang := mid.Sub(center).ToPolar()
	a.start = center.Add(FromPolar(r, ang-a.angle/2))
	return a
}

// NewArcEnd creates an arc from its center, end point and sweep angle
// in degrees.
func NewArcEnd(center, end Vector2D, angleDeg float64) *Arc {
	a := &Arc{center: center, angle: normalizeSweep(angleDeg), end: end, hasEnd: true}
	r, ang := end.Sub(center).ToPolar()
	a.start = center.Add(FromPolar(r, ang-a.angle))
	return a
}

// NewArcCenterStartEnd creates an arc from its center and both end
// points. The sweep takes the shorter of the two ways around unless
// longWay is set. The points must be equidistant from the center
// within TolMM.
func NewArcCenterStartEnd(center, start, end Vector2D, longWay bool) (*Arc, error) {
	spR, _ := start.Sub(center).ToPolar()
	epR, _ := end.Sub(center).ToPolar()
	if math.Abs(spR-epR) > TolMM {
		return nil, fmt.Errorf("geom: start and end must be equidistant from the center: %w", ErrInvalidShapeParameters)
	}
	_, spA := start.Sub(center).ToPolar()
	_, epA := end.Sub(center).ToPolar()
	a := &Arc{center: center, start: start, end: end, hasEnd: true}
	a.angle = normalizeSweep(epA - spA)
	if longWay {
		if math.Abs(a.angle) < 180 {
			a.angle = -math.Copysign(360-math.Abs(a.angle), a.angle)
		}
		if a.angle == -180 {
			a.angle = 180
		}
	} else {
		if math.Abs(a.angle) > 180 {
			a.angle = -math.Copysign(math.Abs(a.angle)-360, a.angle)
		}
		if a.angle == 180 {
			a.angle = -180
		}
	}
	return a, nil
}

// NewArcThreePoints creates the arc passing through three points in
// order. Returns ErrNotAnArc for collinear points.
func NewArcThreePoints(start, mid, end Vector2D) (*Arc, error) {
	p1, p2, p3 := start, mid, end
	// Reorder to avoid a vertical slope in the chord equations.
	if math.Abs(p2.X-p1.X) < TolMM {
		p1, p2, p3 = p2, p3, p1
	} else if math.Abs(p3.X-p2.X) < TolMM {
		p1, p2, p3 = p3, p1, p2
	}
	if (math.Abs(p2.X-p1.X) < TolMM && math.Abs(p3.X-p2.X) < TolMM) ||
		(math.Abs(p2.Y-p1.Y) < TolMM && math.Abs(p3.Y-p2.Y) < TolMM) {
		return nil, ErrNotAnArc
	}
	ma := (p2.Y - p1.Y) / (p2.X - p1.X)
	mb := (p3.Y - p2.Y) / (p3.X - p2.X)
	if math.Abs(mb-ma) < TolMM {
		return nil, ErrNotAnArc
	}
	cx := (ma*mb*(p1.Y-p3.Y) + mb*(p1.X+p2.X) - ma*(p2.X+p3.X)) / (2 * (mb - ma))
	var cy float64
	if math.Abs(ma) < TolMM {
		cy = (-1/mb)*(cx-(p2.X+p3.X)/2) + (p2.Y+p3.Y)/2
	} else {
		cy = (-1/ma)*(cx-(p1.X+p2.X)/2) + (p1.Y+p2.Y)/2
	}
	center := V(cx, cy)

	startAngle := math.Atan2(start.Y-center.Y, start.X-center.X)
	endAngle := math.Atan2(end.Y-center.Y, end.X-center.X)
	cw := p1.Sub(center).Cross(p2.Sub(center)) < 0
	if cw {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	}
	a := &Arc{center: center, start: start, end: end, hasEnd: true}
	a.angle = normalizeSweep(radToDeg(endAngle - startAngle))
	return a, nil
}

// Copy returns a deep copy of the arc.
func (a *Arc) Copy() Shape {
	c := *a
	return &c
}

// Shapes returns the arc itself: it is atomic.
func (a *Arc) Shapes() []Shape { return []Shape{a} }

// AtomicShapes returns the arc itself.
func (a *Arc) AtomicShapes() []Shape { return []Shape{a} }

// NativeShapes returns the arc itself.
func (a *Arc) NativeShapes() []Shape { return []Shape{a} }

// IsClosed reports false: an arc has no interior.
func (a *Arc) IsClosed() bool { return false }

// Center returns the center point.
func (a *Arc) Center() Vector2D { return a.center }

// Start returns the start point.
func (a *Arc) Start() Vector2D { return a.start }

// End returns the end point, computing and caching it on first use.
func (a *Arc) End() Vector2D {
	if !a.hasEnd {
		a.end = a.start.Rotate(a.angle, a.center)
		a.hasEnd = true
	}
	return a.end
}

// Mid returns the mid point of the arc.
func (a *Arc) Mid() Vector2D {
	return a.start.Rotate(a.angle/2, a.center)
}

// Angle returns the sweep angle in degrees.
func (a *Arc) Angle() float64 { return a.angle }

// SetAngle replaces the sweep angle without normalizing it and
// invalidates the cached end point. Sums beyond a full turn are kept
// as-is so that merged arcs can be recognized as full circles.
func (a *Arc) SetAngle(angleDeg float64) {
	a.angle = angleDeg
	a.hasEnd = false
}

// Radius returns the distance from the center to the start point.
func (a *Arc) Radius() float64 {
	return a.start.Sub(a.center).Norm()
}

// SetRadius moves the start point radially to the new radius and
// invalidates the cached end point.
func (a *Arc) SetRadius(radius float64) {
	_, angS := a.start.Sub(a.center).ToPolar()
	a.start = a.center.Add(FromPolar(radius, angS))
	a.hasEnd = false
}

// SetEnd moves the end point, keeping the start point and the sweep
// direction.
func (a *Arc) SetEnd(end Vector2D) {
	a.end = end
	a.hasEnd = true
	_, angE := end.Sub(a.center).ToPolar()
	_, angS := a.start.Sub(a.center).ToPolar()
	angle := angE - angS
	if a.angle*angle >= 0 {
		a.angle = normalizeSweep(angle)
	} else {
		a.angle = normalizeSweep(math.Copysign(1, a.angle)*360 + angle)
	}
}

// SetStart moves the start point, keeping the end point and the sweep
// direction.
func (a *Arc) SetStart(start Vector2D) {
	_, angS := a.start.Sub(a.center).ToPolar()
	_, angP := start.Sub(a.center).ToPolar()
	a.angle = normalizeSweep(a.angle + angS - angP)
	a.start = start
}

// SetStartKeepAngle moves the start point, keeping the sweep angle.
// The end point rotates along.
func (a *Arc) SetStartKeepAngle(start Vector2D) {
	a.start = start
	a.hasEnd = false
}

// Length returns the arc length.
func (a *Arc) Length() float64 {
	return math.Abs(degToRad(a.angle)) * a.Radius()
}

// Direction returns the sign of the sweep angle.
func (a *Arc) Direction() int {
	switch {
	case a.angle > 0:
		return 1
	case a.angle < 0:
		return -1
	}
	return 0
}

// Reverse swaps start and end and negates the sweep, in place.
func (a *Arc) Reverse() *Arc {
	start := a.start
	a.start = a.End()
	a.angle = -a.angle
	a.end = start
	a.hasEnd = true
	return a
}

// Translate moves the arc in place and returns the receiver.
func (a *Arc) Translate(v Vector2D) Shape {
	a.center = a.center.Add(v)
	a.start = a.start.Add(v)
	if a.hasEnd {
		a.end = a.end.Add(v)
	}
	return a
}

// Rotate rotates the arc in place by angleDeg degrees around origin
// and returns the receiver.
func (a *Arc) Rotate(angleDeg float64, origin Vector2D) Shape {
	return a.RotateRad(degToRad(angleDeg), origin)
}

// RotateRad rotates the arc in place by angleRad radians around origin
// and returns the receiver.
func (a *Arc) RotateRad(angleRad float64, origin Vector2D) Shape {
	a.center = a.center.RotateRad(angleRad, origin)
	a.start = a.start.RotateRad(angleRad, origin)
	a.hasEnd = false
	return a
}

// BBox returns the bounding box of the arc. Each cardinal extreme of
// the carrier circle contributes only when it lies on the arc.
func (a *Arc) BBox() BoundingBox {
	start := a.start
	end := a.End()
	r := a.Radius()
	tPt := V(a.center.X, a.center.Y-r)
	lPt := V(a.center.X-r, a.center.Y)
	bPt := V(a.center.X, a.center.Y+r)
	rPt := V(a.center.X+r, a.center.Y)

	top := math.Min(start.Y, end.Y)
	if a.IsPointOnSelf(tPt, false, TolMM) {
		top = tPt.Y
	}
	left := math.Min(start.X, end.X)
	if a.IsPointOnSelf(lPt, false, TolMM) {
		left = lPt.X
	}
	bottom := math.Max(start.Y, end.Y)
	if a.IsPointOnSelf(bPt, false, TolMM) {
		bottom = bPt.Y
	}
	right := math.Max(start.X, end.X)
	if a.IsPointOnSelf(rPt, false, TolMM) {
		right = rPt.X
	}
	return NewBoundingBox(V(left, top), V(right, bottom))
}

// IsEqual reports whether other is an arc with the same start, sweep
// and center within tol. The sweep difference is compared against tol
// directly, in degrees.
func (a *Arc) IsEqual(other Shape, tol float64) bool {
	o, ok := other.(*Arc)
	if !ok {
		return false
	}
	if !a.start.IsEqual(o.start, tol) {
		return false
	}
	if math.Abs(a.angle-o.angle) > tol {
		return false
	}
	return a.center.IsEqual(o.center, tol)
}

// AngleFromStart returns the sweep in degrees from the start point to
// the given point, picked on the branch closest to the arc's end.
func (a *Arc) AngleFromStart(point Vector2D) float64 {
	_, angS := a.start.Sub(a.center).ToPolar()
	_, angP := point.Sub(a.center).ToPolar()
	angPS := angP - angS
	angE := angS + a.angle
	if angE-angPS <= -180 {
		angPS -= 360
	} else if angE-angPS > 180 {
		angPS += 360
	}
	return angPS
}

// LocalPolar returns a point's polar coordinates relative to the
// center, the angle measured from the start point. A point within tol
// of the start keeps its small negative angle instead of wrapping to
// almost a full turn.
func (a *Arc) LocalPolar(point Vector2D, tol float64) (radius, angleDeg float64) {
	radP := point.Sub(a.center).Norm()
	tolD, ok := tolDeg(tol, radP)
	angPS := a.AngleFromStart(point)
	if !ok || math.Abs(angPS) >= tolD {
		angPS = floorMod(angPS, 360)
		if a.angle < 0 && angPS > 0 {
			angPS -= 360
		}
	}
	return radP, angPS
}

// IsPointOnSelf reports whether p lies on the arc within tol.
func (a *Arc) IsPointOnSelf(p Vector2D, excludeEnds bool, tol float64) bool {
	radius := a.Radius()
	dPC := math.Hypot(p.X-a.center.X, p.Y-a.center.Y)
	if math.Abs(radius-dPC) > tol {
		return false
	}
	if radius <= tol {
		// The arc degenerates to a point.
		return true
	}
	tolD := radToDeg(tol / radius)
	angPS := a.AngleFromStart(p)
	if math.Abs(angPS) >= tolD {
		angPS = floorMod(angPS, 360)
		if a.angle < 0 && angPS > 0 {
			angPS -= 360
		}
	}
	if excludeEnds {
		if a.angle < 0 {
			if angPS < a.angle+tolD {
				return false
			}
		} else if angPS > a.angle-tolD {
			return false
		}
	} else {
		if a.angle < 0 {
			if angPS < a.angle-tolD {
				return false
			}
		} else if angPS > a.angle+tolD {
			return false
		}
	}
	return true
}

// IsPointOnSelfAccelerated reports whether p, already known to lie on
// the carrier circle, lies on the arc. It only compares angles and is
// used on intersection points the analytic intersectors produce.
func (a *Arc) IsPointOnSelfAccelerated(p Vector2D, excludeEnds bool, tol float64) bool {
	pc := p.Sub(a.center)
	sc := a.start.Sub(a.center)
	anglePoint := math.Atan2(pc.Y, pc.X)
	angleStart := math.Atan2(sc.Y, sc.X)
	angleEnd := degToRad(a.angle)
	radius := a.Radius()
	if radius <= tol {
		return !excludeEnds
	}
	tolRad := tol / radius
	pi2 := 2 * math.Pi

	anglePointStart := floorMod(anglePoint-angleStart, pi2)
	if math.Abs(anglePointStart) <= tolRad || math.Abs(anglePointStart-pi2) <= tolRad {
		return !excludeEnds
	}
	if angleEnd < 0 && anglePointStart > 0 {
		anglePointStart -= pi2
	}
	anglePointEnd := floorMod(anglePointStart-angleEnd, pi2)
	if math.Abs(anglePointEnd) <= tolRad || math.Abs(anglePointEnd-pi2) <= tolRad {
		return !excludeEnds
	}
	if a.angle < 0 {
		if anglePointStart < angleEnd {
			return false
		}
	} else if anglePointStart > angleEnd {
		return false
	}
	return true
}

// ArcPoint is a point on the arc's carrier circle paired with its
// local polar form relative to the arc start.
type ArcPoint struct {
	Radius float64
	Angle  float64
	Point  Vector2D
}

// SortPointsRelativeToStart returns the points ordered by angular
// distance from the start point, walking in the sweep direction.
func (a *Arc) SortPointsRelativeToStart(points []Vector2D, tol float64) []ArcPoint {
	sorted := make([]ArcPoint, 0, len(points))
	for _, p := range points {
		r, phi := a.LocalPolar(p, tol)
		sorted = append(sorted, ArcPoint{Radius: r, Angle: phi, Point: p})
	}
	descending := a.angle < 0
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Angle > sorted[j].Angle
		}
		return sorted[i].Angle < sorted[j].Angle
	})
	return sorted
}
