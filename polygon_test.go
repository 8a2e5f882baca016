package mcg

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func square(ctx *Context, x, y, size float64) *Polygon {
	return NewPolygon(ctx, []Vector{
		ctx.Vector(x, y),
		ctx.Vector(x+size, y),
		ctx.Vector(x+size, y+size),
		ctx.Vector(x, y+size),
	})
}

func TestPolygon(t *testing.T) {
	ctx := DefaultContext()
	p := square(ctx, 0.0, 0.0, 10.0)
	test.That(t, p.Valid())
	test.That(t, p.Closed())
	test.T(t, p.Count(), 4)
	test.Float(t, p.Area(), 100e10)
	test.Float(t, p.Perimeter(), 40e5)

	min, max := p.Bounds()
	test.T(t, min, Vector{0, 0})
	test.T(t, max, Vector{1000000, 1000000})
	test.T(t, p.Size(), Vector{1000000, 1000000})

	r := p.Reverse()
	test.Float(t, r.Area(), -100e10)
	test.T(t, r.Points()[0], p.Points()[3])
	test.Float(t, p.Area(), 100e10)

	test.That(t, !NewPolygon(ctx, []Vector{{0, 0}, {10, 0}}).Valid())
	test.That(t, NewOpenPolygon(ctx, []Vector{{0, 0}, {10, 0}}).Valid())
	test.That(t, !p.Invalidate().Valid())
}

func TestPolygonCollinear(t *testing.T) {
	ctx := DefaultContext()
	p := NewPolygon(ctx, []Vector{
		ctx.Vector(5.0, 0.0), // collinear start
		ctx.Vector(10.0, 0.0),
		ctx.Vector(10.0, 5.0), // collinear middle
		ctx.Vector(10.0, 10.0),
		ctx.Vector(0.0, 10.0),
		ctx.Vector(0.0, 0.0),
	})
	test.T(t, p.Count(), 4)
	test.Float(t, p.Area(), 100e10)

	// all points on a line
	p = NewPolygon(ctx, []Vector{{0, 0}, {10, 0}, {20, 0}, {30, 0}})
	test.That(t, !p.Valid())
}

func TestPolygonOpen(t *testing.T) {
	ctx := DefaultContext()
	p := NewOpenPolygon(ctx, []Vector{{0, 0}, {100, 0}, {100, 100}})
	n := 0
	p.ForEachPointPair(func(p1, p2 Vector) {
		n++
	})
	test.T(t, n, 2)
	test.Float(t, p.Area(), 0.0)
}

func TestPolygonRotate(t *testing.T) {
	ctx := DefaultContext()
	p := square(ctx, 0.0, 0.0, 10.0).Rotate(math.Pi / 2.0)
	test.Float(t, p.Area(), 100e10)
	min, max := p.Bounds()
	test.T(t, min, Vector{-1000000, 0})
	test.T(t, max, Vector{0, 1000000})

	// snapped vertices change the area
	q := NewPolygon(ctx, []Vector{{0, 0}, {3, 0}, {0, 3}}).Rotate(math.Pi / 4.0)
	test.T(t, q.Points(), []Vector{{0, 0}, {2, 2}, {-2, 2}})
	test.Float(t, q.Area(), 4.0)
}

func TestPolygonOffset(t *testing.T) {
	ctx := DefaultContext()
	p := square(ctx, 0.0, 0.0, 10.0)

	test.T(t, p.FOffset(0.0, 0.0), p)

	var tts = []struct {
		dist float64
		area float64
	}{
		{1.0, 144e10},
		{-1.0, 64e10},
		{-4.0, 4e10},
	}
	for _, tt := range tts {
		q := p.FOffset(tt.dist, 0.0)
		test.That(t, q.Valid())
		test.T(t, q.Count(), 4)
		test.That(t, math.Abs(q.Area()-tt.area) < 1e-3*tt.area, q.Area(), "!=", tt.area)
	}

	// eroded completely
	test.That(t, !p.FOffset(-6.0, 0.0).Valid())

	// below the tolerance
	test.That(t, !p.FOffset(-4.0, 3.0).Valid())

	// holes shrink
	h := p.Reverse().FOffset(1.0, 0.0)
	test.That(t, h.Valid())
	test.That(t, math.Abs(h.Area()+64e10) < 1e-3*64e10, h.Area())
}

func TestPolygonDecimate(t *testing.T) {
	ctx := DefaultContext()
	p := NewPolygon(ctx, []Vector{
		ctx.Vector(0.0, 0.0),
		ctx.Vector(10.0, 0.0),
		ctx.Vector(10.0, 10.0),
		ctx.Vector(9.99, 10.01),
		ctx.Vector(0.0, 10.0),
	})
	test.T(t, p.Count(), 5)

	q := p.FDecimate(0.1)
	test.T(t, q.Count(), 4)
	test.Float(t, q.Area(), 100e10)
	test.T(t, p.FDecimate(0.0), p)

	// too small for the tolerance
	test.That(t, !square(ctx, 0.0, 0.0, 1.0).FDecimate(3.0).Valid())

	q = p.DecimateDP(ctx.Ftoi(0.1))
	test.T(t, q.Count(), 4)
}

func TestPolygonSliver(t *testing.T) {
	ctx := DefaultContext()
	test.That(t, !square(ctx, 0.0, 0.0, 10.0).IsSliver(0.0))

	sliver := NewPolygon(ctx, []Vector{
		ctx.Vector(0.0, 0.0),
		ctx.Vector(10.0, 0.0),
		ctx.Vector(10.0, 0.001),
		ctx.Vector(0.0, 0.001),
	})
	test.That(t, sliver.Valid())
	test.That(t, sliver.IsSliver(0.0))
	test.That(t, sliver.AreaGreaterThan(0.0))
	test.That(t, sliver.FAreaGreaterThan(1.0))  // 1e8 > 1e5
	test.That(t, !sliver.FAreaGreaterThan(1e4)) // 1e8 < 1e9
}

func TestPolygonSet(t *testing.T) {
	ctx := DefaultContext()
	ps := NewPolygonSet(ctx)
	ps.Add(square(ctx, 0.0, 0.0, 10.0))
	ps.Add(square(ctx, 2.0, 2.0, 2.0).Reverse())
	ps.Add(NewPolygon(ctx, nil))
	test.T(t, ps.Count(), 2)
	test.T(t, ps.PointCount(), 8)
	test.Float(t, ps.Area(), 96e10)
	test.T(t, ps.Segments().Count(), 8)

	min, max := ps.Bounds()
	test.T(t, min, Vector{0, 0})
	test.T(t, max, Vector{1000000, 1000000})

	c := ps.Clone()
	c.Rotate(math.Pi)
	min, _ = c.Bounds()
	test.T(t, min, Vector{-1000000, -1000000})
	min, _ = ps.Bounds()
	test.T(t, min, Vector{0, 0})

	c.Filter(func(p *Polygon) bool { return 0.0 < p.Area() })
	test.T(t, c.Count(), 1)

	ps.Merge(c)
	test.T(t, ps.Count(), 3)
	min, max = ps.Bounds()
	test.T(t, min, Vector{-1000000, -1000000})
	test.T(t, max, Vector{1000000, 1000000})

	test.T(t, ps.FOffset(-6.0, 0.0).Count(), 1) // only the hole survives

	other := ctx.WithD(1.0)
	test.Float(t, square(ctx, 0.0, 0.0, 1.0).WithContext(other).Context().D, 1.0)
	ps.SetContext(other)
	test.Float(t, ps.Context().D, 1.0)
}
