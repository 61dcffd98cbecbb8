package geom

// Option configures an algorithm call such as Intersect, Cut, Unite or
// Keepout.
//
// Example:
//
//	// Default: strict intersections at TolMM.
//	pts := geom.Intersect(a, b)
//
//	// Coarser tolerance, tangent points included:
//	pts := geom.Intersect(a, b, geom.WithTolerance(1e-4), geom.WithNonStrict())
type Option func(*options)

// options holds the optional configuration of an algorithm call.
type options struct {
	tol              float64
	minSegmentLength float64
	strict           bool
}

// defaultOptions returns the defaults every algorithm starts from.
func defaultOptions() options {
	return options{
		tol:              TolMM,
		minSegmentLength: MinSegmentLength,
		strict:           true,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTolerance sets the tolerance in millimeters below which two
// geometric quantities are considered equal.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tol = tol
	}
}

// WithMinSegmentLength sets the minimum length of a segment.
// Segments produced by splitting an outline that are shorter than
// this are discarded.
func WithMinSegmentLength(length float64) Option {
	return func(o *options) {
		o.minSegmentLength = length
	}
}

// WithNonStrict makes Intersect report tangent points and points where
// a segment merely starts or ends on the other shape's outline.
// By default only strict crossings are reported.
func WithNonStrict() Option {
	return func(o *options) {
		o.strict = false
	}
}
