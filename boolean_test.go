package mcg

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/tdewolff/test"
)

func polygonSet(ctx *Context, ps ...*Polygon) *PolygonSet {
	s := NewPolygonSet(ctx)
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

func rotatedSquare(ctx *Context, cx, cy, size, angle float64) *Polygon {
	r := size / math.Sqrt2
	points := make([]Vector, 4)
	for i := range points {
		theta := angle + math.Pi/4.0 + float64(i)*math.Pi/2.0
		points[i] = ctx.Vector(cx+r*math.Cos(theta), cy+r*math.Sin(theta))
	}
	return NewPolygon(ctx, points)
}

func TestBoolean(t *testing.T) {
	ctx := DefaultContext()
	a := polygonSet(ctx, square(ctx, 0.0, 0.0, 2.0))
	b := polygonSet(ctx, square(ctx, 1.0, 1.0, 2.0))

	var tts = []struct {
		name   string
		op     func(Source, Source, *Params) *SegmentSet
		area   float64
		points int
	}{
		{"union", Union, 7e10, 8},
		{"intersection", Intersection, 1e10, 4},
		{"difference", Difference, 3e10, 6},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			ps := tt.op(a, b, nil).ToPolygonSet()
			test.T(t, ps.Count(), 1)
			test.T(t, ps.PointCount(), tt.points)
			test.Float(t, ps.Area(), tt.area)
		})
	}

	// commutative
	test.Float(t, Union(b, a, nil).ToPolygonSet().Area(), 7e10)
	test.Float(t, Intersection(b, a, nil).ToPolygonSet().Area(), 1e10)
	test.Float(t, Difference(b, a, nil).ToPolygonSet().Area(), 3e10)
}

func TestBooleanCoincident(t *testing.T) {
	ctx := DefaultContext()
	a := polygonSet(ctx, square(ctx, 0.0, 0.0, 2.0))
	test.T(t, Difference(a, a.Clone(), nil).Count(), 0)
	test.Float(t, Union(a, a.Clone(), nil).ToPolygonSet().Area(), 4e10)
	test.Float(t, Intersection(a, a.Clone(), nil).ToPolygonSet().Area(), 4e10)

	// touching along an edge
	b := polygonSet(ctx, square(ctx, 2.0, 0.0, 2.0))
	union := Union(a, b, nil).ToPolygonSet()
	test.T(t, union.Count(), 1)
	test.Float(t, union.Area(), 8e10)
	test.T(t, Intersection(a, b, nil).Count(), 0)
}

func TestBooleanEmpty(t *testing.T) {
	ctx := DefaultContext()
	a := polygonSet(ctx, square(ctx, 0.0, 0.0, 2.0))
	empty := NewPolygonSet(ctx)

	test.T(t, Union(empty, a, nil).Count(), 4)
	test.T(t, Union(a, empty, nil).Count(), 4)
	test.T(t, Intersection(a, empty, nil).Count(), 0)
	test.T(t, Intersection(empty, a, nil).Count(), 0)
	test.T(t, IntersectionOpen(empty, a, nil).Count(), 0)
	test.T(t, Difference(empty, a, nil).Count(), 0)
	test.T(t, Difference(a, empty, nil).Count(), 4)

	res := FullDifference(a, empty, nil)
	test.T(t, res.AminusB.Count(), 4)
	test.T(t, res.BminusA.Count(), 0)
	test.T(t, res.Intersection.Count(), 0)
	res = FullDifference(empty, a, nil)
	test.T(t, res.AminusB.Count(), 0)
	test.T(t, res.BminusA.Count(), 4)
}

func TestBooleanSelfUnion(t *testing.T) {
	ctx := DefaultContext()
	a := polygonSet(ctx, square(ctx, 0.0, 0.0, 2.0), square(ctx, 1.0, 1.0, 2.0))

	union := Union(a, nil, nil).ToPolygonSet()
	test.T(t, union.Count(), 1)
	test.Float(t, union.Area(), 7e10)

	// overlap of at least two
	overlap := Union(a, nil, &Params{MinDepthA: 2}).ToPolygonSet()
	test.T(t, overlap.Count(), 1)
	test.Float(t, overlap.Area(), 1e10)
}

func TestBooleanHole(t *testing.T) {
	ctx := DefaultContext()
	a := polygonSet(ctx, square(ctx, 0.0, 0.0, 4.0))
	b := polygonSet(ctx, square(ctx, 1.0, 1.0, 2.0))

	diff := Difference(a, b, nil).ToPolygonSet()
	test.T(t, diff.Count(), 2)
	test.Float(t, diff.Area(), 12e10)

	// filling the hole again
	test.Float(t, Union(diff, b, nil).ToPolygonSet().Area(), 16e10)
	test.T(t, Intersection(diff, b, nil).Count(), 0)
}

func TestFullDifference(t *testing.T) {
	ctx := DefaultContext()
	a := polygonSet(ctx, square(ctx, 0.0, 0.0, 2.0))
	b := polygonSet(ctx, square(ctx, 1.0, 1.0, 2.0))

	res := FullDifference(a, b, nil)
	test.Float(t, res.AminusB.ToPolygonSet().Area(), 3e10)
	test.Float(t, res.BminusA.ToPolygonSet().Area(), 3e10)
	test.Float(t, res.Intersection.ToPolygonSet().Area(), 1e10)
}

func TestIntersectionOpen(t *testing.T) {
	ctx := DefaultContext()
	a := polygonSet(ctx, square(ctx, 0.0, 0.0, 2.0))
	lines := NewSegmentSet(ctx)
	lines.AddPointPair(ctx.Vector(-1.0, 1.0), ctx.Vector(3.0, 1.0))
	lines.AddPointPair(ctx.Vector(-1.0, 5.0), ctx.Vector(3.0, 5.0))

	res := IntersectionOpen(a, lines, nil)
	test.T(t, res.Count(), 1)
	seg := res.Elements()[0]
	if seg.P2.HCompare(seg.P1) < 0 {
		seg = seg.Reverse()
	}
	test.T(t, seg, NewSegment(ctx.Vector(0.0, 1.0), ctx.Vector(2.0, 1.0)))
}

func star(ctx *Context, cx, cy, r0, r1 float64, n int, phase float64) *Polygon {
	points := make([]Vector, 2*n)
	for i := range points {
		r := r0
		if i%2 == 1 {
			r = r1
		}
		theta := phase + float64(i)*math.Pi/float64(n)
		points[i] = ctx.Vector(cx+r*math.Cos(theta), cy+r*math.Sin(theta))
	}
	return NewPolygon(ctx, points)
}

func sortedSegments(ss *SegmentSet) []Segment {
	segs := append([]Segment{}, ss.Elements()...)
	slices.SortFunc(segs, func(a, b Segment) int {
		if c := a.P1.HVCompare(b.P1); c != 0 {
			return c
		}
		return a.P2.HVCompare(b.P2)
	})
	return segs
}

// checkBooleanAreas verifies that the areas of the boolean results of a and b are consistent.
func checkBooleanAreas(t *testing.T, pa, pb *Polygon) {
	t.Helper()
	ctx := pa.Context()
	a, b := polygonSet(ctx, pa), polygonSet(ctx, pb)
	unionArea := Union(a, b, nil).ToPolygonSet().Area()
	intersection := Intersection(a, b, nil).ToPolygonSet().Area()
	difference := Difference(a, b, nil).ToPolygonSet().Area()
	full := FullDifference(a, b, nil)
	aMinusB := full.AminusB.ToPolygonSet().Area()
	bMinusA := full.BminusA.ToPolygonSet().Area()
	fullIntersection := full.Intersection.ToPolygonSet().Area()

	sum := pa.Area() + pb.Area()
	tol := 1e-3 * sum
	test.That(t, math.Abs(unionArea+intersection-sum) < tol, unionArea, "+", intersection, "!=", sum)
	test.That(t, math.Abs(difference+intersection-pa.Area()) < tol, difference, "+", intersection, "!=", pa.Area())
	test.That(t, math.Max(pa.Area(), pb.Area())-tol < unionArea, unionArea)
	test.That(t, math.Abs(aMinusB+bMinusA+fullIntersection-unionArea) < tol, aMinusB, "+", bMinusA, "+", fullIntersection, "!=", unionArea)
	test.That(t, math.Abs(aMinusB-difference) < tol, aMinusB, "!=", difference)
	test.That(t, math.Abs(fullIntersection-intersection) < tol, fullIntersection, "!=", intersection)
}

func TestBooleanAreas(t *testing.T) {
	// area(A∪B) + area(A∩B) = area(A) + area(B)
	for _, precision := range []int{3, 5} {
		ctx := NewContext(AxisZ, 0.0, precision)
		r := rand.New(rand.NewPCG(3, uint64(precision)))
		for i := 0; i < 25; i++ {
			pa := rotatedSquare(ctx, 2.0*r.Float64(), 2.0*r.Float64(), 1.0+3.0*r.Float64(), r.Float64()*math.Pi/2.0)
			pb := rotatedSquare(ctx, 2.0*r.Float64(), 2.0*r.Float64(), 1.0+3.0*r.Float64(), r.Float64()*math.Pi/2.0)
			t.Run(fmt.Sprint("square/", precision, "/", i), func(t *testing.T) {
				checkBooleanAreas(t, pa, pb)
			})
		}
		for i := 0; i < 25; i++ {
			pa := star(ctx, 2.0*r.Float64(), 2.0*r.Float64(), 2.0, 0.5+r.Float64(), 3+r.IntN(6), r.Float64())
			pb := star(ctx, 2.0*r.Float64(), 2.0*r.Float64(), 2.0, 0.5+r.Float64(), 3+r.IntN(6), r.Float64())
			t.Run(fmt.Sprint("star/", precision, "/", i), func(t *testing.T) {
				checkBooleanAreas(t, pa, pb)

				// union is commutative down to the segments
				a, b := polygonSet(ctx, pa), polygonSet(ctx, pb)
				test.T(t, sortedSegments(Union(b, a, nil)), sortedSegments(Union(a, b, nil)))
			})
		}
	}
}

func TestBooleanDegenerate(t *testing.T) {
	// nearly coincident, collinear and touching inputs
	for _, precision := range []int{3, 5} {
		ctx := NewContext(AxisZ, 0.0, precision)
		unit := ctx.Itof(1)
		a := square(ctx, 0.0, 0.0, 2.0)
		var tts = []struct {
			name string
			b    *Polygon
		}{
			{"shifted", square(ctx, unit, 0.0, 2.0)},
			{"diagonal", square(ctx, unit, unit, 2.0)},
			{"rotated", rotatedSquare(ctx, 1.0, 1.0, 2.0, 1e-4)},
			{"rotated_shifted", rotatedSquare(ctx, 1.0+unit, 1.0, 2.0, 1e-3)},
			{"corner", square(ctx, 0.0, 0.0, 1.0)},
			{"edge", square(ctx, 0.5, 0.0, 1.0)},
			{"adjacent", square(ctx, 2.0, 0.5, 1.0)},
			{"collinear", NewPolygon(ctx, []Vector{ctx.Vector(1.0, 0.0), ctx.Vector(3.0, 0.0), ctx.Vector(3.0, 2.0), ctx.Vector(1.0, 2.0)})},
		}
		for _, tt := range tts {
			t.Run(fmt.Sprint(tt.name, "/", precision), func(t *testing.T) {
				checkBooleanAreas(t, a, tt.b)
				checkBooleanAreas(t, tt.b, a)
			})
		}
	}
}
