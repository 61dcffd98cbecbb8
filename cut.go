package geom

// Cut splits the outline of target at its intersections with cutter
// and returns the resulting pieces, ordered along the target's
// outline. Pieces shorter than the minimum segment length are
// discarded. Without intersections the result is the intact target.
func Cut(cutter, target Shape, opts ...Option) []Shape {
	h := intersectShapes(target, cutter, false, applyOptions(opts))
	if len(h.intersections) == 0 {
		return []Shape{target}
	}
	pieces := make([]Shape, len(h.atoms[0]))
	copy(pieces, h.atoms[0])
	return pieces
}
