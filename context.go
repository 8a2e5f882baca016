package mcg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis is one of the three axes of 3D space.
type Axis int

// see Axis
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// next cycles x -> y -> z -> x.
func (a Axis) next() Axis {
	return (a + 1) % 3
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis parses "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("bad axis %q", s)
}

// Component returns the coordinate of p along a.
func (a Axis) Component(p r3.Vec) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	}
	return p.Z
}

func (a Axis) set(p *r3.Vec, f float64) {
	switch a {
	case AxisX:
		p.X = f
	case AxisY:
		p.Y = f
	default:
		p.Z = f
	}
}

// DefaultPrecision is the number of decimal digits retained by DefaultContext.
const DefaultPrecision = 5

// MaxCoordinate is the largest absolute fixed-point coordinate for which the orientation, distance
// and intersection predicates stay within int64. They multiply coordinate differences, reaching
// 8*MaxCoordinate² for inputs at opposite corners.
const MaxCoordinate = 1<<30 - 1

// Context defines the fixed-point plane that vectors live in: the plane is orthogonal to Axis at
// offset D, and coordinates are floats scaled by P = 10^Precision and rounded to integers. The
// horizontal and vertical axes of the plane are AH and AV. A Context must not be modified after
// construction; use WithD to obtain one at another depth.
type Context struct {
	Axis      Axis
	D         float64
	Precision int

	P       float64 // scale factor float -> fixed
	Epsilon float64 // 1/P
	AH, AV  Axis
	Up      r3.Vec // unit vector along Axis
}

// NewContext returns a context for the plane orthogonal to axis at offset d, retaining precision
// decimal digits. Coordinates must lie within ±Extent, which shrinks tenfold per digit of
// precision: about 10737 units at precision 5. Features should span a few thousand fixed-point
// units; for unit-sized geometry a precision below 3 lets snapping distort boolean results by
// percents.
func NewContext(axis Axis, d float64, precision int) *Context {
	ctx := &Context{
		Axis:      axis,
		D:         d,
		Precision: precision,
		P:         math.Pow(10.0, float64(precision)),
		Epsilon:   math.Pow(10.0, -float64(precision)),
	}
	ctx.AH = axis.next()
	ctx.AV = ctx.AH.next()
	axis.set(&ctx.Up, 1.0)
	return ctx
}

// DefaultContext returns the XY plane at z=0 with DefaultPrecision.
func DefaultContext() *Context {
	return NewContext(AxisZ, 0.0, DefaultPrecision)
}

// WithD returns a copy of the context at depth d.
func (ctx *Context) WithD(d float64) *Context {
	c := *ctx
	c.D = d
	return &c
}

// Extent returns MaxCoordinate in float space.
func (ctx *Context) Extent() float64 {
	return ctx.Itof(MaxCoordinate)
}

// Ftoi converts a float to fixed-point space.
func (ctx *Context) Ftoi(f float64) int64 {
	return round(f * ctx.P)
}

// Itof converts from fixed-point space to a float.
func (ctx *Context) Itof(i int64) float64 {
	return float64(i) / ctx.P
}

// Vector returns the fixed-point vector for float coordinates (h,v).
func (ctx *Context) Vector(h, v float64) Vector {
	return Vector{ctx.Ftoi(h), ctx.Ftoi(v)}
}

// FromVector3 projects a 3D point onto the plane.
func (ctx *Context) FromVector3(p r3.Vec) Vector {
	return Vector{ctx.Ftoi(ctx.AH.Component(p)), ctx.Ftoi(ctx.AV.Component(p))}
}

// ToVector3 returns the 3D point of v, lying at depth D along Axis.
func (ctx *Context) ToVector3(v Vector) r3.Vec {
	p := r3.Vec{}
	ctx.Axis.set(&p, ctx.D)
	ctx.AH.set(&p, ctx.Itof(v.H))
	ctx.AV.set(&p, ctx.Itof(v.V))
	return p
}

// Float returns v in float space.
func (ctx *Context) Float(v Vector) r2.Vec {
	return r2.Vec{X: ctx.Itof(v.H), Y: ctx.Itof(v.V)}
}

// Normalize returns v scaled to length P, ie. a unit vector in float space. The zero vector is
// returned unchanged.
func (ctx *Context) Normalize(v Vector) Vector {
	if v.IsZero() {
		return v
	}
	return v.SetLength(ctx.P)
}

func (ctx *Context) String() string {
	return fmt.Sprintf("Context(%v=%g, precision=%d)", ctx.Axis, ctx.D, ctx.Precision)
}
