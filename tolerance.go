package geom

import "math"

// Default tolerances, in millimeters. Every predicate in the package
// accepts an explicit tolerance; these are the defaults callers and the
// functional options fall back to.
const (
	// TolMM is the maximum deviation for two geometric quantities to be
	// considered equal.
	TolMM = 1e-7

	// MinSegmentLength is the shortest segment the boolean algorithms
	// keep when splitting outlines.
	MinSegmentLength = 1e-6
)

// tolDeg converts a linear tolerance at a given radius into an angular
// tolerance in degrees. ok is false when the radius is zero and no
// angular tolerance exists.
func tolDeg(tol, radius float64) (angle float64, ok bool) {
	if radius == 0 {
		return 0, false
	}
	return radToDeg(tol / radius), true
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// floorMod is the modulo with the sign of the divisor, so results for a
// positive divisor always land in [0, m).
func floorMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	return r
}

// normalizeAngle180 maps an angle in degrees into [-180, 180).
func normalizeAngle180(a float64) float64 {
	return floorMod(a+180, 360) - 180
}

// normalizeSweep maps an arc sweep in degrees into (-360, 360],
// preserving full turns: both +360 and -360 normalize to +360.
func normalizeSweep(a float64) float64 {
	a = floorMod(a, 720)
	if a > 360 {
		a -= 720
	}
	return a
}
