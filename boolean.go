package mcg

import "log"

// Params are the options of a sweep. The zero value and nil use the defaults.
type Params struct {
	// MinDepthA and MinDepthB are the winding depths at which a point counts as inside A and B,
	// zero means 1.
	MinDepthA, MinDepthB int

	// SkipIntersections disables the detection of crossing segments, for inputs that are known to
	// be free of them.
	SkipIntersections bool

	// Logger receives diagnostics when the sweep meets an inconsistent state and skips a step.
	Logger *log.Logger
}

// FullDifferenceResult holds the three parts of two overlapping sources.
type FullDifferenceResult struct {
	AminusB, BminusA, Intersection *SegmentSet
}

func segmentsOf(src Source) *SegmentSet {
	r := NewSegmentSet(src.Context())
	src.ForEachPointPair(r.AddPointPair)
	return r
}

// Union returns the boundary of the region inside A or B. B may be nil, in which case the result is
// the union of A with itself, which resolves its self-intersections and overlaps.
func Union(a, b Source, params *Params) *SegmentSet {
	if a.Count() == 0 && b != nil {
		return segmentsOf(b)
	} else if b != nil && b.Count() == 0 {
		b = nil
	}

	op := &unionOp{union: NewSegmentSet(a.Context())}
	newSweeper(a.Context(), op, params).sweep(a, b)
	return op.union
}

// Intersection returns the boundary of the region inside both A and B.
func Intersection(a, b Source, params *Params) *SegmentSet {
	op := &intersectionOp{intersection: NewSegmentSet(a.Context())}
	if a.Count() == 0 || b.Count() == 0 {
		return op.intersection
	}
	newSweeper(a.Context(), op, params).sweep(a, b)
	return op.intersection
}

// IntersectionOpen returns the parts of B's segments that lie inside A. B need not be closed, such
// as an infill pattern clipped by its contour.
func IntersectionOpen(a, b Source, params *Params) *SegmentSet {
	op := &intersectionOpenOp{intersection: NewSegmentSet(a.Context())}
	if a.Count() == 0 || b.Count() == 0 {
		return op.intersection
	}
	newSweeper(a.Context(), op, params).sweep(a, b)
	return op.intersection
}

// Difference returns the boundary of the region inside A but not B.
func Difference(a, b Source, params *Params) *SegmentSet {
	op := &differenceOp{difference: NewSegmentSet(a.Context())}
	if a.Count() == 0 {
		return op.difference
	} else if b.Count() == 0 {
		return segmentsOf(a)
	}
	newSweeper(a.Context(), op, params).sweep(a, b)
	return op.difference
}

// FullDifference returns A-B, B-A and their intersection in a single sweep.
func FullDifference(a, b Source, params *Params) FullDifferenceResult {
	ctx := a.Context()
	op := &fullDifferenceOp{FullDifferenceResult{
		AminusB:      NewSegmentSet(ctx),
		BminusA:      NewSegmentSet(ctx),
		Intersection: NewSegmentSet(ctx),
	}}
	if a.Count() == 0 {
		op.res.BminusA = segmentsOf(b)
		return op.res
	} else if b.Count() == 0 {
		op.res.AminusB = segmentsOf(a)
		return op.res
	}
	newSweeper(ctx, op, params).sweep(a, b)
	return op.res
}
