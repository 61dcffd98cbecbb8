package geom

import "errors"

// Sentinel errors returned by shape constructors and algorithms.
// Wrap sites add context with fmt.Errorf("geom: …: %w", err), so
// callers should test with errors.Is.
var (
	// ErrInvalidShapeParameters reports a constructor called with a
	// missing or geometrically inconsistent parameter combination.
	ErrInvalidShapeParameters = errors.New("geom: invalid shape parameters")

	// ErrNotAnArc reports three collinear points passed to the
	// three-point arc constructor.
	ErrNotAnArc = errors.New("geom: collinear points do not define an arc")

	// ErrDiscontinuousChain reports a compound polygon segment that does
	// not connect to the running end point.
	ErrDiscontinuousChain = errors.New("geom: geometries are not continuous")

	// ErrDegenerateVector reports normalize/resize of a vector whose
	// norm is below tolerance.
	ErrDegenerateVector = errors.New("geom: vector norm below tolerance")

	// ErrDeflationTooLarge reports a deflation amount exceeding what the
	// shape's minimum dimension allows.
	ErrDeflationTooLarge = errors.New("geom: deflation exceeds shape dimension")

	// ErrInflationInvalid reports an offset that produced an invalid
	// outline: flipped winding, an unmendable corner, or fewer than two
	// surviving segments.
	ErrInflationInvalid = errors.New("geom: inflation produced invalid outline")

	// ErrTooFewSegments reports a simplification that degenerated the
	// outline below three segments.
	ErrTooFewSegments = errors.New("geom: outline degenerated to too few segments")
)
