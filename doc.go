// Package geom provides a 2D computational-geometry kernel for Go.
//
// # Overview
//
// geom is a library of shape primitives (vectors, lines, arcs, circles,
// polygons, rectangles and their rounded/compound variants) together
// with the robust operations part-generation code needs on top of them:
// containment and boundary tests, rigid transforms, polygon offsetting
// (inflate/deflate), boundary intersection, boolean cut/unite/keepout,
// and grid snapping.
//
// # Quick Start
//
//	import geom "github.com/nmsmith22389/kicad-footprint-generator-sub001"
//
//	// A 10x4 rectangle centered on the origin, grown by 1 on every side.
//	r := geom.NewRectangle(geom.V(0, 0), geom.V(10, 4), 0)
//	if err := r.Inflate(1); err != nil {
//		log.Fatal(err)
//	}
//
//	// Boundary intersection points between two shapes.
//	c := geom.NewCircle(geom.V(0, 0), 5)
//	pts := geom.Intersect(r, c)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees unless a method name says Rad; positive angles
//     rotate from +X toward +Y
//
// In this y-down plane a closed outline whose shoelace sum is negative
// winds clockwise on screen; all decompositions produced by this
// package are clockwise, and Vector2D.Orthogonal returns the
// 90-degree-clockwise perpendicular (-Y, X), which the offsetting code
// relies on throughout.
//
// # Tolerance Policy
//
// All predicates are tolerance-aware. TolMM (1e-7 mm) is the default
// maximum deviation for two quantities to be considered equal, and
// MinSegmentLength (1e-6 mm) is the shortest segment the boolean
// algorithms will keep. Operations that take a tolerance accept it
// explicitly; the package functions Intersect, Cut, Unite and Keepout
// take functional options (WithTolerance, WithMinSegmentLength,
// WithNonStrict).
//
// # Shapes
//
// Atomic shapes (Line, Arc, Circle) cannot be decomposed further.
// Composite shapes (Polygon, Rectangle, RoundRectangle, Trapezoid,
// Stadium, Cross, Cruciform, CompoundPolygon) decompose into ordered,
// clockwise sequences of atomic shapes via Shapes, AtomicShapes and
// NativeShapes. Every shape implements the Shape interface; shapes
// with a well-defined interior also implement ClosedShape and support
// containment tests and inflate/deflate.
//
// Shapes are mutable and caller-owned: Translate and Rotate mutate in
// place and return the receiver so calls chain. Derived data (bounding
// boxes, decompositions, arc end points) is cached lazily and
// invalidated by any mutation.
//
// # Algorithms
//
// Intersect returns the boundary intersection points of two shapes.
// Cut splits a shape's outline at its intersections with a cutter.
// Unite merges two overlapping closed outlines into one. Keepout
// treats a shape as an exclusion zone and returns the parts of another
// shape outside it. Inflate offsets a closed outline, synthesizing
// corner fillets on outward offsets and trimming corners on inward
// ones. RoundToGrid and RoundPolygonToGrid snap scalars and outlines
// to a manufacturing grid without flipping winding.
package geom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
