package mcg

import (
	"math"
)

var (
	emptyMin = Vector{math.MaxInt64, math.MaxInt64}
	emptyMax = Vector{math.MinInt64, math.MinInt64}
)

// Polygon is a sequence of points in the plane of a context, closed by default. A closed polygon
// has a signed area that is positive for counter clockwise (solid) and negative for clockwise
// (hole) orientation. No three consecutive points are collinear. Operations that change the shape
// return a new polygon.
type Polygon struct {
	ctx    *Context
	points []Vector
	closed bool

	area     float64
	min, max Vector

	// per-vertex outward bisectors and the angle between the outgoing edge and the bisector
	bisectors []Vector
	angles    []float64
}

// NewPolygon returns a closed polygon through points. Collinear vertices are elided; with fewer
// than three points the polygon is invalid.
func NewPolygon(ctx *Context, points []Vector) *Polygon {
	return newPolygon(ctx, points, true)
}

// NewOpenPolygon returns an open polyline through points.
func NewOpenPolygon(ctx *Context, points []Vector) *Polygon {
	return newPolygon(ctx, points, false)
}

func newPolygon(ctx *Context, src []Vector, closed bool) *Polygon {
	p := &Polygon{
		ctx:    ctx,
		closed: closed,
		min:    emptyMin,
		max:    emptyMax,
	}
	if closed && len(src) < 3 {
		return p
	}

	points := make([]Vector, 0, len(src))
	for _, spt := range src {
		// if the last three points are collinear, replace the last point
		if n := len(points); 1 < n && Collinear(points[n-2], points[n-1], spt) {
			points[n-1] = spt
		} else {
			points = append(points, spt)
		}
	}
	p.points = points
	if !p.Valid() {
		return p
	}

	if closed {
		// elide the first and/or last point if collinear with their neighbors
		n := len(p.points)
		if Collinear(p.points[n-2], p.points[n-1], p.points[0]) {
			n--
			p.points = p.points[:n]
		}
		if Collinear(p.points[n-1], p.points[0], p.points[1]) {
			p.points = p.points[1:]
		}
		p.calculateArea()
	}
	if !p.Valid() {
		return p
	}
	p.calculateBounds()
	return p
}

// fromPoints returns the polygon through the points that have mk set, or all points if mk is nil,
// without eliding collinear vertices.
func (p *Polygon) fromPoints(points []Vector, mk []bool) *Polygon {
	q := &Polygon{
		ctx:    p.ctx,
		closed: p.closed,
	}
	if mk != nil {
		q.points = make([]Vector, 0, len(points))
		for i, pt := range points {
			if mk[i] {
				q.points = append(q.points, pt)
			}
		}
	} else {
		q.points = points
	}
	q.calculateArea()
	q.calculateBounds()
	return q
}

func (p *Polygon) calculateArea() {
	p.area = 0.0
	if !p.closed {
		return
	}
	for i := 1; i < len(p.points)-1; i++ {
		p.area += Area(p.points[0], p.points[i], p.points[i+1])
	}
}

func (p *Polygon) calculateBounds() {
	p.min, p.max = emptyMin, emptyMax
	for _, pt := range p.points {
		p.min = p.min.Min(pt)
		p.max = p.max.Max(pt)
	}
}

// Context returns the polygon's context.
func (p *Polygon) Context() *Context {
	return p.ctx
}

// Points returns the vertices. The slice must not be modified.
func (p *Polygon) Points() []Vector {
	return p.points
}

func (p *Polygon) Count() int {
	return len(p.points)
}

func (p *Polygon) Closed() bool {
	return p.closed
}

// Area is the signed area in fixed-point units squared, zero for open polygons.
func (p *Polygon) Area() float64 {
	return p.area
}

// Bounds returns the bounding box. It is inverted (min > max) for an empty polygon.
func (p *Polygon) Bounds() (Vector, Vector) {
	return p.min, p.max
}

// Size is the extent of the bounding box.
func (p *Polygon) Size() Vector {
	if len(p.points) == 0 {
		return Vector{}
	}
	return p.max.Sub(p.min)
}

// Valid is true for closed polygons with at least three points and open ones with at least two.
func (p *Polygon) Valid() bool {
	if p.closed {
		return 3 <= len(p.points)
	}
	return 1 < len(p.points)
}

// Invalidate returns an empty polygon with the same context and closedness.
func (p *Polygon) Invalidate() *Polygon {
	return &Polygon{
		ctx:    p.ctx,
		closed: p.closed,
		min:    emptyMin,
		max:    emptyMax,
	}
}

// ForEachPointPair calls f for every edge, including the closing edge of closed polygons.
func (p *Polygon) ForEachPointPair(f func(Vector, Vector)) {
	n := len(p.points)
	if !p.closed {
		n--
	}
	for i := 0; i < n; i++ {
		f(p.points[i], p.points[(i+1)%len(p.points)])
	}
}

// Perimeter is the summed edge length.
func (p *Polygon) Perimeter() float64 {
	l := 0.0
	p.ForEachPointPair(func(p1, p2 Vector) {
		l += p1.DistanceTo(p2)
	})
	return l
}

// IsSliver is true if the ratio of area to perimeter is below tol, which is P/100 when zero.
func (p *Polygon) IsSliver(tol float64) bool {
	if tol == 0.0 {
		tol = p.ctx.P / 100.0
	}
	return math.Abs(p.area)/p.Perimeter() < tol
}

// AreaGreaterThan is true if the absolute area exceeds tol.
func (p *Polygon) AreaGreaterThan(tol float64) bool {
	return tol < math.Abs(p.area)
}

// FAreaGreaterThan is AreaGreaterThan with ftol converted to fixed-point space like a length,
// ie. scaled by P and not by P².
func (p *Polygon) FAreaGreaterThan(ftol float64) bool {
	return p.AreaGreaterThan(float64(p.ctx.Ftoi(ftol)))
}

// Clone returns a copy that shares no mutable state.
func (p *Polygon) Clone() *Polygon {
	q := *p
	q.points = append([]Vector{}, p.points...)
	q.bisectors = nil
	q.angles = nil
	return &q
}

// Rotate returns the polygon rotated counter clockwise around the origin.
func (p *Polygon) Rotate(angle float64) *Polygon {
	q := p.Clone()
	for i, pt := range q.points {
		q.points[i] = pt.Rotate(angle)
	}
	q.calculateArea()
	q.calculateBounds()
	return q
}

// WithContext returns a copy of the polygon in another context, for example at another depth.
// The coordinates are not rescaled.
func (p *Polygon) WithContext(ctx *Context) *Polygon {
	q := p.Clone()
	q.ctx = ctx
	return q
}

// Reverse returns the polygon with opposite orientation.
func (p *Polygon) Reverse() *Polygon {
	q := p.Clone()
	for i, j := 0, len(q.points)-1; i < j; i, j = i+1, j-1 {
		q.points[i], q.points[j] = q.points[j], q.points[i]
	}
	q.area = -q.area
	return q
}

// ComputeBisectors caches for every vertex the outward bisector and its angle to the outgoing
// edge. It does nothing for open polygons or when already computed.
func (p *Polygon) ComputeBisectors() {
	if p.bisectors != nil || !p.closed {
		return
	}
	n := len(p.points)
	p.bisectors = make([]Vector, n)
	p.angles = make([]float64, n)
	for i := range n {
		p1 := p.points[(i-1+n)%n]
		p2 := p.points[i]
		p3 := p.points[(i+1)%n]

		b := p.ctx.Bisector(p1, p2, p3)
		p.bisectors[i] = b
		p.angles[i] = p3.Sub(p2).AngleTo(b)
	}
}

// Bisectors returns the cached bisectors and angles, nil if not computed.
func (p *Polygon) Bisectors() ([]Vector, []float64) {
	return p.bisectors, p.angles
}

// capThreshold is the angle between offset direction and edge above which a vertex gets a cap.
const capThreshold = 5.0 * math.Pi / 6.0

// FOffset is Offset with distance and tolerance in float space.
func (p *Polygon) FOffset(fdist, ftol float64) *Polygon {
	return p.Offset(p.ctx.Ftoi(fdist), p.ctx.Ftoi(ftol))
}

// Offset displaces every vertex along its bisector so that the edges move by dist, positive
// outward and negative inward, in fixed-point units. Vertices sharper than capThreshold are
// replaced by a two-point cap. Displaced vertices that end up on the wrong side of their
// neighbors are dropped. The result is invalid if the polygon erodes completely or its absolute
// area is below tol squared. A zero distance returns the receiver itself.
func (p *Polygon) Offset(dist, tol int64) *Polygon {
	if dist == 0 {
		return p
	}
	if !p.Valid() {
		return p.Invalidate()
	}

	size := p.Size()
	minSize := float64(min(size.H, size.V))
	if 0.0 < p.area && float64(dist) < -minSize/2.0 || p.area < 0.0 && minSize/2.0 < float64(dist) {
		return p.Invalidate()
	}

	p.ComputeBisectors()
	fdist := p.ctx.Itof(dist)
	tolSq := float64(tol) * float64(tol)

	// angle between the offset vector and the neighboring edges
	offsetAngle := func(i int) float64 {
		if 0.0 < fdist {
			return p.angles[i]
		}
		return math.Pi - p.angles[i]
	}

	rpoints := make([]Vector, 0, len(p.points))
	for i, pt := range p.points {
		a := offsetAngle(i)
		if a == 0.0 {
			continue
		}

		b := p.bisectors[i]
		ptnew := pt.Add(b.Mul(fdist / math.Sin(a)))
		if capThreshold < a {
			// cap the spike orthogonal to the displacement at distance fdist from the vertex
			hl := fdist * math.Tan((a-math.Pi/2.0)/2.0)
			ov := p.ctx.OrthogonalRight(ptnew.Sub(pt))
			mc := pt.AddScaled(b, fdist)
			p0 := mc.AddScaled(ov, -hl)
			p1 := mc.AddScaled(ov, hl)
			if 0.0 < fdist {
				rpoints = append(rpoints, p0, p1)
			} else {
				rpoints = append(rpoints, p1, p0)
			}
		} else {
			rpoints = append(rpoints, ptnew)
		}
	}

	n := len(rpoints)
	if n == 0 {
		return p.Invalidate()
	}

	// a displaced vertex is valid if its displaced neighbors lie on the correct sides of its
	// bisector ray, with sides swapped for inward offsets
	mk := make([]bool, n)
	ri := 0
	for i, pt := range p.points {
		a := offsetAngle(i)
		if a == 0.0 {
			continue
		}
		if capThreshold < a {
			mk[ri], mk[ri+1] = true, true
			ri += 2
			continue
		}

		rp := rpoints[ri]
		rpprev := rpoints[(ri-1+n)%n]
		rpnext := rpoints[(ri+1)%n]
		mk[ri] = LeftCompareStrict(pt, rp, rpprev) == -1 && LeftCompareStrict(pt, rp, rpnext) == 1
		if dist < 0 {
			mk[ri] = !mk[ri]
		}
		ri++
	}

	q := p.fromPoints(rpoints, mk)
	if math.Abs(q.area) < tolSq {
		return q.Invalidate()
	}
	return q
}
