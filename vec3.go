package geom

import "math"

// Vector3D is the 3D companion of Vector2D. The kernel is strictly
// planar; Vector3D exists for homogeneous line coordinates and for
// cross products whose z sign decides sidedness.
type Vector3D struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vector3D.
func V3(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vector3D) Add(w Vector3D) Vector3D {
	return Vector3D{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector3D) Sub(w Vector3D) Vector3D {
	return Vector3D{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Dot returns the dot product of two vectors.
func (v Vector3D) Dot(w Vector3D) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vector3D) Cross(w Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean norm of the vector.
func (v Vector3D) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
