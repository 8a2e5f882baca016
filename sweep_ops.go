package mcg

type unionOp struct {
	union *SegmentSet
}

func (op *unionOp) handleEvent(s *sweeper, e eventID) {
	pos := s.position(e)
	inside := pos.has(InsideA | InsideB)
	if !inside && pos.has(BoundaryA|BoundaryB) && !pos.has(FromAtoB) {
		s.addSegment(e, op.union, false)
	}
}

type intersectionOp struct {
	intersection *SegmentSet
}

func (op *intersectionOp) handleEvent(s *sweeper, e eventID) {
	pos := s.position(e)
	inside := pos.has(InsideA | InsideB)
	boundaryA, boundaryB := pos.has(BoundaryA), pos.has(BoundaryB)
	if boundaryA && boundaryB && !pos.has(FromAtoB) {
		s.addSegment(e, op.intersection, false)
	} else if inside && (boundaryA || boundaryB) {
		s.addSegment(e, op.intersection, false)
	}
}

// intersectionOpenOp keeps the parts of B's segments inside A, B need not be closed.
type intersectionOpenOp struct {
	intersection *SegmentSet
}

func (op *intersectionOpenOp) handleEvent(s *sweeper, e eventID) {
	if s.position(e).has(InsideA) && s.events[e].weightB != 0 {
		s.addSegment(e, op.intersection, false)
	}
}

type differenceOp struct {
	difference *SegmentSet
}

func (op *differenceOp) handleEvent(s *sweeper, e eventID) {
	pos := s.position(e)
	inside := pos.has(InsideA | InsideB)
	boundaryA, boundaryB := pos.has(BoundaryA), pos.has(BoundaryB)
	if boundaryA && boundaryB {
		if pos.has(FromAtoB) {
			s.addSegmentWeighted(e, op.difference, false, s.events[e].weightA)
		}
	} else if !inside && boundaryA {
		s.addSegment(e, op.difference, false)
	} else if inside && boundaryB {
		s.addSegment(e, op.difference, true)
	}
}

type fullDifferenceOp struct {
	res FullDifferenceResult
}

func (op *fullDifferenceOp) handleEvent(s *sweeper, e eventID) {
	pos := s.position(e)
	inside := pos.has(InsideA | InsideB)
	boundaryA, boundaryB := pos.has(BoundaryA), pos.has(BoundaryB)
	if boundaryA && boundaryB {
		if pos.has(FromAtoB) {
			s.addSegmentWeighted(e, op.res.AminusB, false, s.events[e].weightA)
			s.addSegmentWeighted(e, op.res.BminusA, false, s.events[e].weightB)
		} else {
			s.addSegment(e, op.res.Intersection, false)
		}
		return
	}

	if !inside && boundaryA {
		s.addSegment(e, op.res.AminusB, false)
	}
	if inside && boundaryB {
		s.addSegment(e, op.res.AminusB, true)
		s.addSegment(e, op.res.Intersection, false)
	}
	if !inside && boundaryB {
		s.addSegment(e, op.res.BminusA, false)
	}
	if inside && boundaryA {
		s.addSegment(e, op.res.BminusA, true)
		s.addSegment(e, op.res.Intersection, false)
	}
}

// linearInfillOp draws vertical scan lines at multiples of spacing through the interior of A.
// Lines are emitted whenever a finished segment lets the sweep pass them, so every line is drawn
// while all segments crossing it are in the status. Directions alternate between lines.
type linearInfillOp struct {
	infill       *SegmentSet
	spacing      int64
	hline        int64 // next line to draw
	lineidx      int
	connectLines bool
	prevLineEnd  *Vector
}

func newLinearInfillOp(ctx *Context, min Vector, spacing int64, connectLines bool) *linearInfillOp {
	if spacing <= 0 {
		spacing = int64(ctx.P)
	}
	// all lines are a multiple of spacing away from zero
	hline := ceilDiv(min.H, spacing) * spacing
	return &linearInfillOp{
		infill:       NewSegmentSet(ctx),
		spacing:      spacing,
		hline:        hline,
		connectLines: connectLines,
	}
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (0 < a) == (0 < b) {
		q++
	}
	return q
}

func (op *linearInfillOp) handleEvent(s *sweeper, e eventID) {
	h, ht := s.point(e).H, s.point(s.twin(e)).H
	if h == ht || ht <= op.hline {
		return
	}

	for op.hline <= ht {
		hline := float64(op.hline)
		even := op.lineidx%2 == 0

		var currLineEnd *Vector
		prev := noEvent
		visit := func(curr eventID) {
			if s.vertical(curr) || !s.hcontains(curr, hline) {
				return
			} else if prev == noEvent {
				prev = curr
				return
			}

			// only between segments bordering a 0 to positive to 0 winding transition
			pv, cv := &s.events[prev], &s.events[curr]
			var write bool
			if even {
				write = 0 < cv.depthBelowA && 0 < pv.depthBelowA+pv.weightA
			} else {
				write = 0 < cv.depthBelowA+cv.weightA && 0 < pv.depthBelowA
			}

			if write {
				p1 := s.interpolate(prev, hline)
				p2 := s.interpolate(curr, hline)
				if op.connectLines && currLineEnd == nil && op.prevLineEnd != nil {
					// connect to the previous line unless the connection is steeper than 45deg
					if op.prevLineEnd.DistanceToSq(p1) <= 2*op.spacing*op.spacing {
						op.infill.AddPointPair(*op.prevLineEnd, p1)
					}
				}
				op.infill.AddPointPair(p1, p2)
				currLineEnd = &p2
			}
			prev = noEvent
		}
		if even {
			s.status.Ascend(visit)
		} else {
			s.status.Descend(visit)
		}

		op.prevLineEnd = currLineEnd
		op.hline += op.spacing
		op.lineidx++
	}
}
