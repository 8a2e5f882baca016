package mcg

import (
	"fmt"
)

// PositionFlags describe where a segment lies relative to sources A and B of a sweep.
type PositionFlags int

// see PositionFlags
const (
	PositionNone PositionFlags = 0
	InsideA      PositionFlags = 1  // depth in A reaches the minimum on both sides
	InsideB      PositionFlags = 2  // likewise for B
	BoundaryA    PositionFlags = 4  // depth in A crosses the minimum across the segment
	BoundaryB    PositionFlags = 8  // likewise for B
	FromAtoB     PositionFlags = 16 // boundary of both with opposite orientation
)

func (f PositionFlags) has(g PositionFlags) bool {
	return f&g != 0
}

func (f PositionFlags) String() string {
	s := ""
	for _, flag := range []struct {
		f    PositionFlags
		name string
	}{{InsideA, "insideA"}, {InsideB, "insideB"}, {BoundaryA, "boundaryA"}, {BoundaryB, "boundaryB"}, {FromAtoB, "fromAtoB"}} {
		if f&flag.f != 0 {
			if s != "" {
				s += "|"
			}
			s += flag.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// eventID indexes the event arena of a sweep.
type eventID int32

const noEvent eventID = -1

// sweepEvent is one end point of a segment. Left events start a segment in sweep order and carry
// its winding weights and depths; right events end it.
type sweepEvent struct {
	p      Vector
	parent eventID // event this one was split from, used for slopes so that snapped split points don't drift
	twin   eventID // other end point of the segment
	left   bool

	// left events only
	weightA, weightB         int // winding contribution crossing the segment upwards
	depthBelowA, depthBelowB int
	contributing             bool
	t                        int // insertion time into the status
}

func (s *sweeper) newEvent(p Vector, left bool) eventID {
	id := eventID(len(s.events))
	s.events = append(s.events, sweepEvent{
		p:            p,
		parent:       id,
		twin:         noEvent,
		left:         left,
		contributing: left,
		t:            -1,
	})
	return id
}

// cloneEvent copies e to point p, keeping its parent, twin, weights and depths.
func (s *sweeper) cloneEvent(e eventID, p Vector) eventID {
	id := eventID(len(s.events))
	ev := s.events[e]
	ev.p = p
	ev.t = -1
	s.events = append(s.events, ev)
	return id
}

func (s *sweeper) point(e eventID) Vector {
	return s.events[e].p
}

func (s *sweeper) twin(e eventID) eventID {
	return s.events[e].twin
}

func (s *sweeper) vertical(e eventID) bool {
	return s.events[e].p.H == s.events[s.events[e].twin].p.H
}

func (s *sweeper) horizontal(e eventID) bool {
	return s.events[e].p.V == s.events[s.events[e].twin].p.V
}

// sweepCompare orders events in the queue: by position, right before left so that touching
// segments leave the status before the next enters, by slope, by parent extents, and by id.
func (s *sweeper) sweepCompare(a, b eventID) int {
	if a == b {
		return 0
	}
	ea, eb := &s.events[a], &s.events[b]
	if cmp := ea.p.HVCompare(eb.p); cmp != 0 {
		return cmp
	} else if !ea.left && eb.left {
		return -1
	} else if ea.left && !eb.left {
		return 1
	} else if cmp := s.slopeCompare(a, b); cmp != 0 {
		return cmp
	} else if cmp := s.parentCompare(a, b); cmp != 0 {
		return cmp
	}
	return sign(int(a) - int(b))
}

// lineCompare orders left events in the status: by vertical position where both cross the sweep
// line, by slope, by insertion time so that newer events go above older ones, by parent extents,
// and by id.
func (s *sweeper) lineCompare(a, b eventID) int {
	if a == b {
		return 0
	} else if cmp := s.vlineCompare(a, b); cmp != 0 {
		return cmp
	} else if cmp := s.slopeCompare(a, b); cmp != 0 {
		return cmp
	} else if cmp := sign(s.events[a].t - s.events[b].t); cmp != 0 {
		return cmp
	} else if cmp := s.parentCompare(a, b); cmp != 0 {
		return cmp
	}
	return sign(int(a) - int(b))
}

// slopeCompare compares the slopes of the segments of a and b, which share at least one point.
// Vertical segments have the largest slope.
func (s *sweeper) slopeCompare(a, b eventID) int {
	if !s.events[a].left {
		a = s.events[a].twin
	}
	if !s.events[b].left {
		b = s.events[b].twin
	}

	va, vb := s.vertical(a), s.vertical(b)
	if va && vb {
		return 0
	} else if !va && vb {
		return -1
	} else if va && !vb {
		return 1
	}

	pa, pta := s.point(a), s.point(s.twin(a))
	pb, ptb := s.point(b), s.point(s.twin(b))
	if pa == pb {
		return LeftCompareStrict(pb, ptb, pta)
	}

	lta := LeftCompare(pb, ptb, pta)
	ltb := LeftCompare(pa, pta, ptb)
	if lta == -1 || ltb == 1 {
		return -1
	} else if lta == 1 || ltb == -1 {
		return 1
	}

	la := LeftCompare(pb, ptb, pa)
	lb := LeftCompare(pa, pta, pb)
	if la == 1 || lb == -1 {
		return -1
	} else if la == -1 || lb == 1 {
		return 1
	}
	return 0
}

// parentCompare compares the original (unsplit) extents of a and b.
func (s *sweeper) parentCompare(a, b eventID) int {
	cmp := Vector.HCompare
	if s.vertical(a) || s.vertical(b) {
		cmp = Vector.VCompare
	}
	pa := s.point(s.events[a].parent)
	pb := s.point(s.events[b].parent)
	if c := cmp(pa, pb); c != 0 {
		return c
	}
	pta := s.point(s.events[s.twin(a)].parent)
	ptb := s.point(s.events[s.twin(b)].parent)
	return cmp(pta, ptb)
}

// vlineCompare compares two left events vertically at the horizontal position of the later one.
func (s *sweeper) vlineCompare(a, b eventID) int {
	pa, pta := s.point(a), s.point(s.twin(a))
	pb, ptb := s.point(b), s.point(s.twin(b))

	if pa.H == pb.H {
		return pa.VCompare(pb)
	} else if pa.H == ptb.H {
		// end of one is horizontally coincident with the start of the other
		return pa.VCompare(ptb)
	} else if pta.H == pb.H {
		return pta.VCompare(pb)
	}

	// no vertical overlap
	if max(pa.V, pta.V) < min(pb.V, ptb.V) {
		return -1
	} else if max(pb.V, ptb.V) < min(pa.V, pta.V) {
		return 1
	}

	f, snd := a, b
	if pb.H < pa.H {
		f, snd = b, a
	}
	ps := s.point(snd)
	v := s.interpolate(f, float64(ps.H)).V
	cmp := sign(ps.V - v)
	if pa.H < pb.H {
		cmp = -cmp
	}
	return cmp
}

// interpolate returns the point on the (non-vertical) segment of left event e at h.
func (s *sweeper) interpolate(e eventID, h float64) Vector {
	pa, pat := s.point(e), s.point(s.twin(e))
	v := float64(pa.V) + float64(pat.V-pa.V)*(h-float64(pa.H))/float64(pat.H-pa.H)
	return NewVector(h, v)
}

// hcontains is true if the segment of left event e spans h.
func (s *sweeper) hcontains(e eventID, h float64) bool {
	return float64(s.point(e).H) <= h && h <= float64(s.point(s.twin(e)).H)
}

func (s *sweeper) segmentsCoincident(a, b eventID) bool {
	return s.point(a) == s.point(b) && s.point(s.twin(a)) == s.point(s.twin(b))
}

func (s *sweeper) endpointsCoincident(a, b eventID) bool {
	return s.point(a) == s.point(b) || s.point(s.twin(a)) == s.point(s.twin(b))
}

func (s *sweeper) intersects(a, b eventID) IntersectionFlags {
	return Intersect(s.point(a), s.point(s.twin(a)), s.point(b), s.point(s.twin(b)))
}

func (s *sweeper) intersection(a, b eventID) (Vector, bool) {
	if s.endpointsCoincident(a, b) {
		return Vector{}, false
	}
	return LineIntersection(s.point(a), s.point(s.twin(a)), s.point(b), s.point(s.twin(b)))
}

func (s *sweeper) setDepthFromBelow(e, below eventID) {
	ev := &s.events[e]
	if below == noEvent {
		ev.depthBelowA, ev.depthBelowB = 0, 0
		return
	}
	eb := &s.events[below]
	ev.depthBelowA = eb.depthBelowA + eb.weightA
	ev.depthBelowB = eb.depthBelowB + eb.weightB
}

// position returns the flags of left event e given the minimum depths that count as inside.
func (s *sweeper) position(e eventID) PositionFlags {
	ev := &s.events[e]
	if !ev.contributing {
		return PositionNone
	}
	mdA, mdB := s.minDepthA, s.minDepthB

	dbA, daA := ev.depthBelowA, ev.depthBelowA+ev.weightA
	dbB, daB := ev.depthBelowB, ev.depthBelowB+ev.weightB
	boundaryA := daA < mdA && mdA <= dbA || mdA <= daA && dbA < mdA
	boundaryB := daB < mdB && mdB <= dbB || mdB <= daB && dbB < mdB

	pos := PositionNone
	if mdA <= dbA && mdA <= daA {
		pos |= InsideA
	}
	if mdB <= dbB && mdB <= daB {
		pos |= InsideB
	}
	if boundaryA {
		pos |= BoundaryA
	}
	if boundaryB {
		pos |= BoundaryB
	}
	if boundaryA && boundaryB && sign(ev.weightA) == -sign(ev.weightB) {
		pos |= FromAtoB
	}
	return pos
}

// addSegment adds the segment of left event e to set, oriented such that the interior is on its
// left according to the summed weight. If invert is set, the opposite orientation is added.
func (s *sweeper) addSegment(e eventID, set *SegmentSet, invert bool) {
	ev := &s.events[e]
	s.addSegmentWeighted(e, set, invert, ev.weightA+ev.weightB)
}

// addSegmentWeighted is addSegment oriented by weight w.
func (s *sweeper) addSegmentWeighted(e eventID, set *SegmentSet, invert bool, w int) {
	pf, ps := s.point(e), s.point(s.twin(e))
	if w < 0 {
		pf, ps = ps, pf
	}
	if invert {
		pf, ps = ps, pf
	}
	set.AddPointPair(pf, ps)
}

func (s *sweeper) eventString(e eventID) string {
	if e == noEvent {
		return "nil"
	}
	ev := &s.events[e]
	lr := "R"
	src := e
	if ev.left {
		lr = "L"
	} else {
		src = ev.twin
	}
	es := &s.events[src]
	return fmt.Sprintf("%s%d(%v-%v w=%d,%d d=%d,%d c=%v)", lr, e, ev.p, s.point(ev.twin), es.weightA, es.weightB, es.depthBelowA, es.depthBelowB, es.contributing)
}
