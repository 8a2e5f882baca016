package mcg

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func inBounds(s Segment, min, max Vector, tol int64) bool {
	for _, p := range []Vector{s.P1, s.P2} {
		if p.H < min.H-tol || max.H+tol < p.H || p.V < min.V-tol || max.V+tol < p.V {
			return false
		}
	}
	return true
}

func TestInfillType(t *testing.T) {
	for _, typ := range []InfillType{InfillNone, InfillLinear, InfillGrid, InfillTriangle, InfillHex} {
		r, err := ParseInfillType(typ.String())
		test.Error(t, err)
		test.T(t, r, typ)
	}
	_, err := ParseInfillType("spiral")
	test.That(t, err != nil)
	test.T(t, InfillType(9).String(), "InfillType(9)")
}

func TestInfillLinear(t *testing.T) {
	ctx := DefaultContext()
	contour := polygonSet(ctx, square(ctx, 0.0, 0.0, 10.0))

	infill := Infill(contour, InfillLinear, InfillParams{})
	test.T(t, infill.Count(), 11)
	for i, s := range infill.Elements() {
		test.T(t, s.P1.H, s.P2.H)
		test.T(t, s.Length(), 10e5)

		// alternating directions
		if i%2 == 0 {
			test.That(t, s.P1.V < s.P2.V)
		} else {
			test.That(t, s.P2.V < s.P1.V)
		}
	}

	// odd layers are horizontal
	infill = Infill(contour, InfillLinear, InfillParams{Parity: 1})
	test.T(t, infill.Count(), 11)
	for _, s := range infill.Elements() {
		test.T(t, s.P1.V, s.P2.V)
	}

	infill = Infill(contour, InfillLinear, InfillParams{Spacing: ctx.Ftoi(2.0)})
	test.T(t, infill.Count(), 6)

	test.T(t, Infill(NewPolygonSet(ctx), InfillLinear, InfillParams{}).Count(), 0)
	test.That(t, Infill(contour, InfillNone, InfillParams{}) == nil)
}

func TestInfillConnectLines(t *testing.T) {
	ctx := DefaultContext()
	contour := polygonSet(ctx, square(ctx, 0.0, 0.0, 10.0))

	infill := Infill(contour, InfillLinear, InfillParams{ConnectLines: true})
	test.T(t, infill.Count(), 21)

	// a single polyline
	test.T(t, len(infill.AdjacencyMap().Loops(true)), 1)
}

func TestInfillHole(t *testing.T) {
	ctx := DefaultContext()
	contour := polygonSet(ctx, square(ctx, 0.0, 0.0, 10.0), square(ctx, 4.0, 4.0, 2.0).Reverse())

	// lines at 4, 5 and 6 are split by the hole
	infill := Infill(contour, InfillLinear, InfillParams{})
	test.T(t, infill.Count(), 14)
	test.Float(t, infill.Length(), 11*10e5-3*2e5)
}

func TestInfillGrid(t *testing.T) {
	ctx := DefaultContext()
	contour := polygonSet(ctx, square(ctx, 0.0, 0.0, 10.0))
	infill := Infill(contour, InfillGrid, InfillParams{})
	test.T(t, infill.Count(), 22)

	vertical := 0
	for _, s := range infill.Elements() {
		if s.P1.H == s.P2.H {
			vertical++
		}
	}
	test.T(t, vertical, 11)
}

func TestInfillAngle(t *testing.T) {
	ctx := DefaultContext()
	contour := polygonSet(ctx, square(ctx, 0.0, 0.0, 10.0))
	min, max := contour.Bounds()

	for _, typ := range []InfillType{InfillLinear, InfillTriangle} {
		infill := Infill(contour, typ, InfillParams{Angle: math.Pi / 4.0})
		test.That(t, 0 < infill.Count())
		for _, s := range infill.Elements() {
			test.That(t, inBounds(s, min, max, 2), s)
		}
	}
}

func TestInfillHex(t *testing.T) {
	ctx := DefaultContext()
	contour := polygonSet(ctx, square(ctx, 0.0, 0.0, 10.0))
	min, max := contour.Bounds()

	for parity := 0; parity < 2; parity++ {
		infill := Infill(contour, InfillHex, InfillParams{Spacing: ctx.Ftoi(1.0), LineWidth: ctx.Ftoi(0.1), Parity: parity})
		test.That(t, 0 < infill.Count())
		for _, s := range infill.Elements() {
			test.That(t, inBounds(s, min, max, 2), s)
		}
	}
}

func TestLinearPattern(t *testing.T) {
	ctx := DefaultContext()
	min, max := Vector{0, 0}, ctx.Vector(10.0, 10.0)

	lines := LinearPattern(ctx, min, max, 0, 0.0, 0)
	test.T(t, lines.Count(), 10)
	for _, s := range lines.Elements() {
		test.T(t, s.P1.H, s.P2.H)
		test.T(t, s.Length(), 10e5)
	}

	lines = LinearPattern(ctx, min, max, 0, 0.0, 1)
	test.T(t, lines.Count(), 10)
	for _, s := range lines.Elements() {
		test.T(t, s.P1.V, s.P2.V)
	}

	for _, angle := range []float64{math.Pi / 4.0, 3.0 * math.Pi / 4.0, -math.Pi / 6.0} {
		lines = LinearPattern(ctx, min, max, ctx.Ftoi(0.5), angle, 0)
		test.That(t, 0 < lines.Count())
		for _, s := range lines.Elements() {
			test.That(t, inBounds(s, min, max, 1), s)
		}
	}
}

func TestHexPattern(t *testing.T) {
	ctx := DefaultContext()
	min, max := Vector{0, 0}, ctx.Vector(10.0, 10.0)
	for parity := 0; parity < 2; parity++ {
		lines := HexPattern(ctx, min, max, ctx.Ftoi(1.0), ctx.Ftoi(0.1), parity)
		test.That(t, 0 < lines.Count())

		// spans the box horizontally
		lmin, lmax := lines.Bounds()
		test.That(t, lmin.H <= min.H, lmin)
		test.That(t, max.H <= lmax.H, lmax)
		if parity == 0 {
			test.T(t, lmin.V, min.V)
			test.That(t, max.V <= lmax.V, lmax)
		}
	}
}
