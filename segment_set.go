package mcg

// SegmentSet is a set of directed segments, such as the boundary produced by a sweep or the lines
// of an infill pattern.
type SegmentSet struct {
	GeometrySet[Segment]
}

// NewSegmentSet returns an empty set.
func NewSegmentSet(ctx *Context) *SegmentSet {
	return &SegmentSet{newGeometrySet[Segment](ctx)}
}

// Clone returns a copy of the set.
func (s *SegmentSet) Clone() *SegmentSet {
	return &SegmentSet{s.clone()}
}

// Merge appends the segments of other.
func (s *SegmentSet) Merge(other *SegmentSet) {
	s.GeometrySet.Merge(&other.GeometrySet)
}

// AddPointPair adds the segment p1->p2 if the points differ.
func (s *SegmentSet) AddPointPair(p1, p2 Vector) {
	s.Add(Segment{p1, p2})
}

// PointCount is twice the number of segments.
func (s *SegmentSet) PointCount() int {
	return 2 * len(s.elements)
}

// AdjacencyMap returns a new directed adjacency map over the segments.
func (s *SegmentSet) AdjacencyMap() *AdjacencyMap {
	m := NewAdjacencyMap(s.ctx)
	for _, seg := range s.elements {
		m.AddSegment(seg)
	}
	return m
}

// ToPolygonSet joins the segments into loops and returns them as closed polygons. Open chains are
// closed implicitly.
func (s *SegmentSet) ToPolygonSet() *PolygonSet {
	ps := NewPolygonSet(s.ctx)
	for _, loop := range s.AdjacencyMap().Loops(true) {
		ps.Add(NewPolygon(s.ctx, loop))
	}
	return ps
}

// Length is the summed length of all segments.
func (s *SegmentSet) Length() float64 {
	l := 0.0
	for _, seg := range s.elements {
		l += seg.Length()
	}
	return l
}
