package mcg

// PolygonSet is a set of polygons, typically solids and the holes inside them.
type PolygonSet struct {
	GeometrySet[*Polygon]
}

// NewPolygonSet returns an empty set.
func NewPolygonSet(ctx *Context) *PolygonSet {
	return &PolygonSet{newGeometrySet[*Polygon](ctx)}
}

// Clone returns a copy of the set and its polygons.
func (s *PolygonSet) Clone() *PolygonSet {
	return &PolygonSet{s.clone()}
}

// Merge appends the polygons of other.
func (s *PolygonSet) Merge(other *PolygonSet) {
	s.GeometrySet.Merge(&other.GeometrySet)
}

// ComputeBisectors caches the bisectors of all polygons.
func (s *PolygonSet) ComputeBisectors() {
	for _, p := range s.elements {
		p.ComputeBisectors()
	}
}

// Offset returns the valid offsets of all polygons, see Polygon.Offset.
func (s *PolygonSet) Offset(dist, tol int64) *PolygonSet {
	r := NewPolygonSet(s.ctx)
	for _, p := range s.elements {
		r.Add(p.Offset(dist, tol))
	}
	return r
}

// FOffset is Offset in float space.
func (s *PolygonSet) FOffset(fdist, ftol float64) *PolygonSet {
	return s.Offset(s.ctx.Ftoi(fdist), s.ctx.Ftoi(ftol))
}

// Decimate returns the valid decimations of all polygons, see Polygon.Decimate.
func (s *PolygonSet) Decimate(tol int64) *PolygonSet {
	r := NewPolygonSet(s.ctx)
	for _, p := range s.elements {
		r.Add(p.Decimate(tol))
	}
	return r
}

// FDecimate is Decimate in float space.
func (s *PolygonSet) FDecimate(ftol float64) *PolygonSet {
	return s.Decimate(s.ctx.Ftoi(ftol))
}

// PointCount is the total number of vertices.
func (s *PolygonSet) PointCount() int {
	n := 0
	for _, p := range s.elements {
		n += p.Count()
	}
	return n
}

// Area is the summed signed area, so that holes subtract from the solids they are in.
func (s *PolygonSet) Area() float64 {
	area := 0.0
	for _, p := range s.elements {
		area += p.Area()
	}
	return area
}

// Segments returns the edges of all polygons.
func (s *PolygonSet) Segments() *SegmentSet {
	r := NewSegmentSet(s.ctx)
	s.ForEachPointPair(r.AddPointPair)
	return r
}
