package mcg

import (
	"log"
	"strings"
)

// Source is a set of edges that can be swept, such as a PolygonSet or SegmentSet.
type Source interface {
	Context() *Context
	Count() int
	Bounds() (Vector, Vector)
	ForEachPointPair(func(Vector, Vector))
}

// sweepOperation decides for every finished segment whether it goes into the operation's
// results. handleEvent is called once per contributing left event, when its right event is
// processed, with the segment still in the status. It is the only place results are appended.
type sweepOperation interface {
	handleEvent(s *sweeper, e eventID)
}

// sweeper holds the state of one sweep. Nothing is shared between sweeps.
type sweeper struct {
	ctx    *Context
	events []sweepEvent
	queue  eventQueue
	status *sweepStatus
	front  eventID // farthest event processed, used to catch intersections in the past
	t      int

	op                  sweepOperation
	minDepthA           int
	minDepthB           int
	handleIntersections bool
	log                 *log.Logger
}

func newSweeper(ctx *Context, op sweepOperation, params *Params) *sweeper {
	s := &sweeper{
		ctx:                 ctx,
		front:               noEvent,
		op:                  op,
		minDepthA:           1,
		minDepthB:           1,
		handleIntersections: true,
	}
	if params != nil {
		if params.MinDepthA != 0 {
			s.minDepthA = params.MinDepthA
		}
		if params.MinDepthB != 0 {
			s.minDepthB = params.MinDepthB
		}
		s.handleIntersections = !params.SkipIntersections
		s.log = params.Logger
	}
	s.queue.cmp = s.sweepCompare
	s.status = newSweepStatus(s.lineCompare)
	return s
}

func (s *sweeper) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Printf(format, args...)
	}
}

// sweep processes the edges of a and b, of which b may be nil, in sweep order.
func (s *sweeper) sweep(a, b Source) {
	a.ForEachPointPair(func(p1, p2 Vector) {
		s.addPointPair(p1, p2, 1, 0)
	})
	if b != nil {
		b.ForEachPointPair(func(p1, p2 Vector) {
			s.addPointPair(p1, p2, 0, 1)
		})
	}
	s.queue.Init()

	for 0 < s.queue.Len() {
		e := s.queue.Pop()
		s.updateFront(e)
		if s.point(e).HVCompare(s.point(s.front)) < 0 {
			s.logf("mcg: event %v is behind the sweep front %v", s.eventString(e), s.eventString(s.front))
			break
		}

		if s.events[e].left {
			if !s.events[e].contributing {
				continue
			}
			s.events[e].t = s.t
			s.t++
			s.insert(e)

			up, dn := s.adjacent(e)
			if up != noEvent && s.point(e) == s.point(up) {
				// up has the same start point and may have become steeper than e through an
				// intersection, resolve their order by their queue order
				s.requeue(up)
				s.requeue(e)
				continue
			}

			s.setDepthFromBelow(e, dn)
			if s.handleIntersections {
				s.handleEventIntersection(e, dn)
				s.handleEventIntersection(up, e)
			}
		} else {
			te := s.twin(e)
			if !s.events[te].contributing {
				continue
			}
			s.handleRightEvent(e)

			// the neighbors of the removed segment become adjacent
			up, dn := s.adjacent(te)
			s.status.Remove(te)
			if s.handleIntersections {
				s.handleEventIntersection(up, dn)
			}
		}
	}
}

// createPointPair creates the left and right events of segment p1-p2 with weights wA and wB for
// the direction p1->p2, and returns the left event.
func (s *sweeper) createPointPair(p1, p2 Vector, wA, wB int) eventID {
	if p1 == p2 {
		return noEvent
	}

	dir := p1.H < p2.H
	if p1.H == p2.H {
		dir = p1.V < p2.V
	}
	if !dir {
		p1, p2 = p2, p1
		wA, wB = -wA, -wB
	}

	el := s.newEvent(p1, true)
	er := s.newEvent(p2, false)
	s.events[el].weightA = wA
	s.events[el].weightB = wB
	s.events[el].twin = er
	s.events[er].twin = el
	return el
}

func (s *sweeper) addPointPair(p1, p2 Vector, wA, wB int) {
	el := s.createPointPair(p1, p2, wA, wB)
	if el == noEvent {
		return
	}
	// appended without ordering, the heap is initialized before the sweep
	s.queue.items = append(s.queue.items, el, s.twin(el))
}

// handleSwappedEventPair recreates the segment of left event e if splitting left its end points in
// the wrong order, and returns the (new) left event.
func (s *sweeper) handleSwappedEventPair(e eventID) eventID {
	te := s.twin(e)
	if s.point(e).HVCompare(s.point(te)) < 0 {
		return e
	}

	s.events[e].contributing = false
	el := s.createPointPair(s.point(te), s.point(e), 0, 0)
	if el == noEvent {
		return noEvent
	}
	ev, nv := &s.events[e], &s.events[el]
	nv.weightA, nv.weightB = -ev.weightA, -ev.weightB
	nv.depthBelowA = ev.depthBelowA + ev.weightA
	nv.depthBelowB = ev.depthBelowB + ev.weightB
	return el
}

// adjacent returns the events above and below e in the status.
func (s *sweeper) adjacent(e eventID) (eventID, eventID) {
	if !s.status.Contains(e) {
		if s.events[e].contributing {
			s.logf("mcg: failed to find event %v in status", s.eventString(e))
		}
		return noEvent, noEvent
	}
	return s.status.Adjacent(e)
}

func (s *sweeper) push(e eventID) {
	if e != noEvent {
		s.queue.Push(e)
	}
}

func (s *sweeper) requeue(e eventID) {
	if e == noEvent {
		return
	}
	s.status.Remove(e)
	s.queue.Push(e)
}

func (s *sweeper) insert(e eventID) bool {
	if !s.events[e].contributing {
		return false
	}
	return s.status.Insert(e)
}

// handleRightEvent finishes the segment ending in right event e.
func (s *sweeper) handleRightEvent(e eventID) {
	te := s.twin(e)
	s.op.handleEvent(s, te)
	s.events[te].contributing = false
}

func (s *sweeper) updateFront(e eventID) {
	if s.front == noEvent || 0 < s.point(e).HVCompare(s.point(s.front)) {
		s.front = e
	}
}

// mergeEvents merges the coincident segment of b into a and invalidates b. It returns noEvent if
// the weights cancel out, in which case a is invalidated too.
func (s *sweeper) mergeEvents(a, b eventID) eventID {
	ea, eb := &s.events[a], &s.events[b]
	ea.depthBelowA, ea.depthBelowB = eb.depthBelowA, eb.depthBelowB
	ea.weightA += eb.weightA
	ea.weightB += eb.weightB
	eb.contributing = false

	if ea.weightA == 0 && ea.weightB == 0 {
		ea.contributing = false
		return noEvent
	}
	return a
}

// eventSplit splits the segment of left event e at pi and returns the left event of the new
// segment pi->twin.
func (s *sweeper) eventSplit(e eventID, pi Vector) eventID {
	te := s.twin(e)
	ei := s.cloneEvent(te, pi) // right event of e at pi
	ite := s.cloneEvent(e, pi) // left event at pi of te

	s.events[e].twin = ei
	s.events[te].twin = ite
	s.queue.Push(ei)
	return ite
}

// splitAt splits the segment of left event e at pi, queues the new segment pi->twin, and returns
// the left event of the remaining segment e->pi, which is recreated if its end points swapped.
func (s *sweeper) splitAt(e eventID, pi Vector) eventID {
	ie := s.eventSplit(e, pi)
	ne := s.handleSwappedEventPair(e)
	if ne == noEvent {
		s.logf("mcg: degenerate split of %v at %v", s.eventString(e), pi)
	} else if ne != e {
		s.push(s.twin(ne))
	}

	if ie = s.handleSwappedEventPair(ie); ie != noEvent {
		s.push(ie)
		s.push(s.twin(ie))
	}
	return ne
}

// handleEventIntersection handles a possible intersection between the segments of left events a
// and b, where a is above b.
func (s *sweeper) handleEventIntersection(a, b eventID) {
	if a == noEvent || b == noEvent || !s.events[a].contributing || !s.events[b].contributing {
		return
	}

	pa, pta := s.point(a), s.point(s.twin(a))
	pb, ptb := s.point(b), s.point(s.twin(b))
	hvcomp := pa.HVCompare(pb)
	thvcomp := pta.HVCompare(ptb)

	// coincident segments are merged
	if hvcomp == 0 && thvcomp == 0 {
		s.status.Remove(a)
		s.status.Remove(b)
		if a = s.mergeEvents(a, b); a != noEvent {
			s.insert(a)
		}
		return
	}

	flags := s.intersects(a, b)
	if flags == IntersectionNone {
		return
	}

	// no vertical overlap
	if !s.horizontal(a) && !s.horizontal(b) {
		if max(pa.V, pta.V) < min(pb.V, ptb.V) || max(pb.V, ptb.V) < min(pa.V, pta.V) {
			return
		}
	}

	var pi Vector
	found := false
	if flags == IntersectionIntermediate {
		pi, found = s.intersection(a, b)
	} else if hvcomp != 0 && flags&IntersectionA0B0 != 0 {
		// intersection on one or both start points, take the later one
		ia0, ib0 := flags&IntersectionA0 != 0, flags&IntersectionB0 != 0
		if ia0 && ib0 {
			pi = pb
			if 0 < hvcomp {
				pi = pa
			}
		} else if ia0 {
			pi = pa
		} else {
			pi = pb
		}
		found = true
	} else if thvcomp != 0 && flags&IntersectionA1B1 != 0 {
		// intersection on one or both end points, take the earlier one
		ia1, ib1 := flags&IntersectionA1 != 0, flags&IntersectionB1 != 0
		if ia1 && ib1 {
			pi = pta
			if 0 < thvcomp {
				pi = ptb
			}
		} else if ia1 {
			pi = pta
		} else {
			pi = ptb
		}
		found = true
	}
	if !found {
		return
	}

	// an intersection before the front is moved into the present
	if 0 < s.point(s.front).HVCompare(pi) {
		t := b
		if s.vertical(b) {
			t = a
		}
		if s.vertical(t) {
			s.logf("mcg: intersection %v of vertical segments %v and %v behind the sweep front", pi, s.eventString(a), s.eventString(b))
			return
		}
		h := max(pi.H, s.point(s.front).H) + 1
		pi = s.interpolate(t, float64(h))
	}
	ca, cta := pi == pa, pi == pta
	cb, ctb := pi == pb, pi == ptb

	// their order in the status may change after splitting
	rma := s.status.Remove(a)
	rmb := s.status.Remove(b)

	if !ca && !cta {
		if a = s.splitAt(a, pi); a == noEvent {
			return
		}
	}
	if !cb && !ctb {
		if b = s.splitAt(b, pi); b == noEvent {
			return
		}
	}

	if s.segmentsCoincident(a, b) {
		if a = s.mergeEvents(a, b); a != noEvent {
			s.insert(a)
		}
		return
	}

	ta, tb := s.twin(a), s.twin(b)
	ia, ib := false, false
	if 0 <= s.point(s.front).HVCompare(s.point(ta)) {
		// a is entirely in the past
		s.handleRightEvent(ta)
	} else if ca {
		// a split b and may not have the correct depth
		s.push(a)
	} else if rma {
		ia = s.insert(a)
	}
	if 0 <= s.point(s.front).HVCompare(s.point(tb)) {
		s.handleRightEvent(tb)
	} else if cb {
		s.push(b)
	} else if rmb {
		ib = s.insert(b)
	}

	// reinserted events that were adjacent may no longer be, with events sharing their start
	// point in between; repair the depths upward from b
	if ia && ib && s.status.Above(b) != a {
		prev := s.status.Below(b)
		for cur := b; cur != noEvent && cur != a && s.vlineCompare(cur, b) == 0; cur = s.status.Above(cur) {
			s.setDepthFromBelow(cur, prev)
			prev = cur
		}
	}
}

func (s *sweeper) String() string {
	sb := strings.Builder{}
	s.status.Print(&sb, s.eventString)
	return strings.TrimSuffix(sb.String(), "\n")
}
