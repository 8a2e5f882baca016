package mcg

import (
	"math"
)

// FDecimate is Decimate with the tolerance in float space.
func (p *Polygon) FDecimate(ftol float64) *Polygon {
	return p.Decimate(p.ctx.Ftoi(ftol))
}

// Decimate reduces the vertex count by vertex reduction: walking the points in order, a point is
// kept only once it lies at least tol away from the last kept point. A closed result is invalid if
// its absolute area falls below tol²/4. A non-positive tolerance returns the receiver.
func (p *Polygon) Decimate(tol int64) *Polygon {
	if tol <= 0 || len(p.points) == 0 {
		return p
	}

	tolSq := tol * tol
	ref := p.points[0]
	points := []Vector{ref}
	for _, pt := range p.points[1:] {
		if ref.DistanceToSq(pt) < tolSq {
			continue
		}
		points = append(points, pt)
		ref = pt
	}

	q := p.fromPoints(points, nil)
	if q.closed && math.Abs(q.area) < float64(tolSq)/4.0 {
		return q.Invalidate()
	}
	return q
}

// DecimateDP reduces the vertex count using Douglas-Peucker: the point farthest from the chord of
// a run is kept if it lies more than tol away, and both halves are processed recursively. The
// first and last points are always kept. The result is invalid if its absolute area falls below
// tol²/4.
func (p *Polygon) DecimateDP(tol int64) *Polygon {
	n := len(p.points)
	if tol <= 0 || n < 3 {
		return p
	}

	mk := make([]bool, n)
	mk[0], mk[n-1] = true, true
	decimateDP(p.points, mk, tol*tol, 0, n-1)

	q := p.fromPoints(p.points, mk)
	if p.closed && math.Abs(q.area) < float64(tol*tol)/4.0 {
		return q.Invalidate()
	}
	return q
}

func decimateDP(pts []Vector, mk []bool, tolSq int64, i, j int) {
	if j-1 <= i {
		return
	}

	idx := -1
	maxDistSq := int64(0)
	for k := i + 1; k < j; k++ {
		if distSq := DistanceToLineSq(pts[i], pts[j], pts[k]); maxDistSq < distSq {
			maxDistSq = distSq
			idx = k
		}
	}
	if tolSq < maxDistSq {
		mk[idx] = true
		decimateDP(pts, mk, tolSq, i, idx)
		decimateDP(pts, mk, tolSq, idx, j)
	}
}
