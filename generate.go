package mcg

import (
	"math"
)

// LinearPattern returns parallel lines with the given spacing that cross the box min-max. An angle
// of zero gives vertical lines, positive angles rotate them clockwise. Odd parity adds a quarter
// turn. A spacing of zero means one unit.
func LinearPattern(ctx *Context, min, max Vector, spacing int64, angle float64, parity int) *SegmentSet {
	if spacing <= 0 {
		spacing = int64(ctx.P)
	}
	if parity%2 != 0 {
		angle += math.Pi / 2.0
	}
	if angle = angleNorm(angle); math.Pi <= angle {
		angle -= math.Pi
	}

	// direction of the lines and the shift between them
	d := Vector{0, int64(ctx.P)}.Rotate(-angle)
	shift := Vector{d.V, -d.H}.SetLength(float64(spacing))

	// start from the corner that is farthest back in the shift direction
	p := Vector{min.H, max.V}
	if math.Pi/2.0 <= angle {
		p = max
	}

	lines := NewSegmentSet(ctx)
	for {
		p = p.Add(shift)
		t1, t2, ok := clipLine(p, d, min, max)
		if !ok {
			break
		}
		lines.AddPointPair(p.AddScaled(d, t1), p.AddScaled(d, t2))
	}
	return lines
}

// clipLine returns the parameter range of the line p + t*d that lies inside the box min-max.
func clipLine(p, d, min, max Vector) (float64, float64, bool) {
	t1, t2 := math.Inf(-1), math.Inf(1)
	for _, c := range [2]struct{ p, d, lo, hi int64 }{
		{p.H, d.H, min.H, max.H},
		{p.V, d.V, min.V, max.V},
	} {
		if c.d == 0 {
			if c.p < c.lo || c.hi < c.p {
				return 0.0, 0.0, false
			}
			continue
		}
		ta := float64(c.lo-c.p) / float64(c.d)
		tb := float64(c.hi-c.p) / float64(c.d)
		if tb < ta {
			ta, tb = tb, ta
		}
		t1 = math.Max(t1, ta)
		t2 = math.Min(t2, tb)
	}
	return t1, t2, t1 < t2
}

// HexPattern returns a honeycomb of hexagons with the given side length covering the box min-max.
// Adjacent cells are lineWidth apart so that the walls of neighboring cells don't overlap. Zero
// parity builds the cells in vertical columns, odd parity in horizontal zigzag rows. A spacing of
// zero means one unit.
func HexPattern(ctx *Context, min, max Vector, spacing, lineWidth int64, parity int) *SegmentSet {
	if spacing <= 0 {
		spacing = int64(ctx.P)
	}
	fspacing, flineWidth := float64(spacing), float64(lineWidth)
	sqrt3 := math.Sqrt(3.0)
	dh := fspacing * sqrt3 / 2.0
	dv := fspacing / 2.0
	lines := NewSegmentSet(ctx)

	if parity%2 == 0 {
		vertical := Vector{0, spacing}
		right := NewVector(dh, dv)
		left := NewVector(-dh, dv)

		start := min
		for col := 0; start.H < max.H; col++ {
			even := col%2 == 0
			out, in := right, left
			if !even {
				out, in = left, right
			}
			for p := start; p.V < max.V; {
				p1 := p.Add(vertical)
				p2 := p1.Add(out)
				p3 := p2.Add(vertical)
				p4 := p3.Add(in)
				lines.AddPointPair(p, p1)
				lines.AddPointPair(p1, p2)
				lines.AddPointPair(p2, p3)
				lines.AddPointPair(p3, p4)
				p = p4
			}
			if even {
				start.H += round(2.0*dh + flineWidth)
			} else {
				start.H += lineWidth
			}
		}
		return lines
	}

	// zigzag rows
	dhz := dh + flineWidth
	dvz := dhz / sqrt3
	vshiftEven := 2.0*dv + fspacing + (dvz - dv)
	vshiftOdd := (2.0*fspacing + 2.0*dv) - vshiftEven
	up := NewVector(dhz, dvz)
	down := NewVector(dhz, -dvz)

	start := min.Add(Vector{0, spacing})
	start.H -= round(flineWidth / 2.0)
	start.V -= round((dvz - dv) / 2.0)
	for row := 0; start.V < max.V; row++ {
		even := row%2 == 0
		first, second := up, down
		if !even {
			first, second = down, up
		}
		for p := start; p.H < max.H; {
			p1 := p.Add(first)
			p2 := p1.Add(second)
			lines.AddPointPair(p, p1)
			lines.AddPointPair(p1, p2)
			p = p2
		}
		if even {
			start.V += round(vshiftEven)
		} else {
			start.V += round(vshiftOdd)
		}
	}
	return lines
}
