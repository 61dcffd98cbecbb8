package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector2D represents a 2D point or displacement vector in the y-down
// plane. Methods are pure: they return new values and never mutate the
// receiver, so vectors copy safely by assignment.
type Vector2D struct {
	X, Y float64
}

// V is a convenience function to create a Vector2D.
func V(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// FromPolar creates a Vector2D from a radius and an angle in degrees.
func FromPolar(radius, angleDeg float64) Vector2D {
	sin, cos := math.Sincos(degToRad(angleDeg))
	return Vector2D{X: radius * cos, Y: radius * sin}
}

// ToPolar returns the polar form of the vector: its norm and its angle
// in degrees in (-180, 180].
func (v Vector2D) ToPolar() (radius, angleDeg float64) {
	return v.Norm(), radToDeg(math.Atan2(v.Y, v.X))
}

// Add returns the sum of two vectors.
func (v Vector2D) Add(w Vector2D) Vector2D {
	return Vector2D{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2D) Sub(w Vector2D) Vector2D {
	return Vector2D{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector2D) Mul(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vector2D) Div(s float64) Vector2D {
	return Vector2D{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vector2D) Neg() Vector2D {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector2D) Dot(w Vector2D) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (the z component of the 3D cross
// product with z=0). Its sign tells on which side of v the vector w
// lies in the y-down plane.
func (v Vector2D) Cross(w Vector2D) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Norm returns the Euclidean norm of the vector.
func (v Vector2D) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// NormSq returns the squared norm of the vector.
// This is faster than Norm() when only comparing magnitudes.
func (v Vector2D) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between two points.
func (v Vector2D) Distance(w Vector2D) float64 {
	return v.Sub(w).Norm()
}

// Normalize returns a unit vector in the same direction.
// Returns ErrDegenerateVector if the norm is not above tol.
func (v Vector2D) Normalize(tol float64) (Vector2D, error) {
	n := v.Norm()
	if n <= tol {
		return Vector2D{}, ErrDegenerateVector
	}
	return Vector2D{X: v.X / n, Y: v.Y / n}, nil
}

// Resize returns a vector in the same direction with the given norm.
// Returns ErrDegenerateVector if the receiver's norm is not above tol.
func (v Vector2D) Resize(newNorm, tol float64) (Vector2D, error) {
	u, err := v.Normalize(tol)
	if err != nil {
		return Vector2D{}, err
	}
	return u.Mul(newNorm), nil
}

// Orthogonal returns the 90-degree-clockwise perpendicular (-Y, X).
// This is the fixed left-handed convention all offsetting code uses:
// for a clockwise outline the orthogonal of a segment direction points
// away from the interior.
func (v Vector2D) Orthogonal() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}

// Rotate returns the vector rotated by angleDeg degrees around origin.
func (v Vector2D) Rotate(angleDeg float64, origin Vector2D) Vector2D {
	return v.RotateRad(degToRad(angleDeg), origin)
}

// RotateRad returns the vector rotated by angleRad radians around origin.
func (v Vector2D) RotateRad(angleRad float64, origin Vector2D) Vector2D {
	sin, cos := math.Sincos(angleRad)
	dx := v.X - origin.X
	dy := v.Y - origin.Y
	return Vector2D{
		X: origin.X + dx*cos - dy*sin,
		Y: origin.Y + dx*sin + dy*cos,
	}
}

// IsEqual reports whether the Euclidean distance between the vectors is
// within tol.
func (v Vector2D) IsEqual(w Vector2D, tol float64) bool {
	return v.Distance(w) <= tol
}

// IsEqualAccelerated reports per-component equality within tol. It is a
// cheaper, slightly looser test than IsEqual (a square instead of a
// disc) used by the intersection filters.
func (v Vector2D) IsEqualAccelerated(w Vector2D, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, w.X, tol) && scalar.EqualWithinAbs(v.Y, w.Y, tol)
}

// RoundToBase returns the vector with both components rounded to the
// nearest multiple of base.
func (v Vector2D) RoundToBase(base float64) Vector2D {
	if base == 0 {
		return v
	}
	return Vector2D{
		X: math.Round(v.X/base) * base,
		Y: math.Round(v.Y/base) * base,
	}
}

// Min returns the componentwise minimum of two vectors.
func (v Vector2D) Min(w Vector2D) Vector2D {
	return Vector2D{X: math.Min(v.X, w.X), Y: math.Min(v.Y, w.Y)}
}

// Max returns the componentwise maximum of two vectors.
func (v Vector2D) Max(w Vector2D) Vector2D {
	return Vector2D{X: math.Max(v.X, w.X), Y: math.Max(v.Y, w.Y)}
}
