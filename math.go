package mcg

import "fmt"

// Orientation predicates come in two flavors: the fuzzy ones (LeftCompare, Left, Collinear)
// treat a point within sqrt(2) units of a line as lying on it, which absorbs the error of
// snapping vertices to the integer grid; the strict ones compare the exact area.

// area2 returns twice the signed area of the triangle abc.
func area2(a, b, c Vector) int64 {
	return (c.H-b.H)*(a.V-b.V) - (c.V-b.V)*(a.H-b.H)
}

// Area returns the signed area of triangle abc, positive when c is left of a->b.
func Area(a, b, c Vector) float64 {
	return float64(area2(a, b, c)) / 2.0
}

// DistanceToLineSq returns the squared distance from p to the line through a and b.
func DistanceToLineSq(a, b, p Vector) int64 {
	ab := a.Sub(b)
	ap := a.Sub(p)
	dot := ab.Dot(ap)
	if dot == 0 {
		return ap.LengthSq()
	}
	proj := ab.Mul(float64(dot) / float64(ab.LengthSq()))
	return proj.DistanceToSq(ap)
}

// LeftCompare returns 1 if c is left of a->b, -1 if right, and 0 if c is (nearly) on the line.
func LeftCompare(a, b, c Vector) int {
	if DistanceToLineSq(a, b, c) <= 2 {
		return 0
	}
	return sign(area2(a, b, c))
}

// LeftCompareStrict returns the sign of the area of abc.
func LeftCompareStrict(a, b, c Vector) int {
	return sign(area2(a, b, c))
}

// Left is true if c is left of a->b.
func Left(a, b, c Vector) bool {
	return 0 < LeftCompare(a, b, c)
}

// LeftOn is true if c is left of or on a->b.
func LeftOn(a, b, c Vector) bool {
	return 0 <= LeftCompare(a, b, c)
}

// Collinear is true if the consecutive vertices a, b, c are collinear, ie. b is on a-c.
func Collinear(a, b, c Vector) bool {
	return LeftCompare(a, c, b) == 0
}

// IntersectionFlags describe how segment a0-a1 meets segment b0-b1.
type IntersectionFlags int

// see IntersectionFlags
const (
	IntersectionNone         IntersectionFlags = 0 // no intersection
	IntersectionIntermediate IntersectionFlags = 1 // intersection excludes end points
	IntersectionA0           IntersectionFlags = 2 // a0 is on b0-b1
	IntersectionA1           IntersectionFlags = 4 // a1 is on b0-b1
	IntersectionB0           IntersectionFlags = 8
	IntersectionB1           IntersectionFlags = 16

	IntersectionA         = IntersectionA0 | IntersectionA1
	IntersectionB         = IntersectionB0 | IntersectionB1
	IntersectionA0B0      = IntersectionA0 | IntersectionB0 // start of both
	IntersectionA1B1      = IntersectionA1 | IntersectionB1 // end of both
	IntersectionA0B1      = IntersectionA0 | IntersectionB1
	IntersectionA1B0      = IntersectionA1 | IntersectionB0
	IntersectionCollinear = IntersectionA0B0 | IntersectionA1B1
)

// Has is true if all bits of g are set.
func (f IntersectionFlags) Has(g IntersectionFlags) bool {
	return f&g == g
}

func (f IntersectionFlags) String() string {
	if f == IntersectionNone {
		return "none"
	} else if f == IntersectionIntermediate {
		return "intermediate"
	}
	s := ""
	for _, flag := range []struct {
		f    IntersectionFlags
		name string
	}{{IntersectionA0, "a0"}, {IntersectionA1, "a1"}, {IntersectionB0, "b0"}, {IntersectionB1, "b1"}} {
		if f&flag.f != 0 {
			s += flag.name
		}
	}
	if s == "" {
		return fmt.Sprintf("IntersectionFlags(%d)", int(f))
	}
	return s
}

// Intersect reports whether segment a-b meets segment c-d, and whether any end point lies on the
// other segment.
func Intersect(a, b, c, d Vector) IntersectionFlags {
	labc, labd := LeftCompare(a, b, c), LeftCompare(a, b, d)
	lcda, lcdb := LeftCompare(c, d, a), LeftCompare(c, d, b)

	// a-b is between the end points of c-d and vice versa
	abBetween := labc != labd || labc == 0
	cdBetween := lcda != lcdb || lcda == 0

	flags := IntersectionNone
	if labc == 0 && cdBetween {
		flags |= IntersectionB0
	}
	if labd == 0 && cdBetween {
		flags |= IntersectionB1
	}
	if lcda == 0 && abBetween {
		flags |= IntersectionA0
	}
	if lcdb == 0 && abBetween {
		flags |= IntersectionA1
	}
	if flags == IntersectionNone && abBetween && cdBetween {
		flags = IntersectionIntermediate
	}
	return flags
}

// LineIntersection returns the intersection point of the lines through a0-a1 and b0-b1. It returns
// false if they are parallel or if the point falls outside the bounding box of a0-a1.
func LineIntersection(a0, a1, b0, b1 Vector) (Vector, bool) {
	d := a0.H*(b1.V-b0.V) + a1.H*(b0.V-b1.V) + b1.H*(a1.V-a0.V) + b0.H*(a0.V-a1.V)
	if d == 0 {
		return Vector{}, false
	}
	n := a0.H*(b1.V-b0.V) + b0.H*(a0.V-b1.V) + b1.H*(b0.V-a0.V)
	pa := float64(n) / float64(d)

	ixn := a0.AddScaled(a1.Sub(a0), pa)
	if !inRange(ixn.H, min(a0.H, a1.H), max(a0.H, a1.H)) || !inRange(ixn.V, min(a0.V, a1.V), max(a0.V, a1.V)) {
		return Vector{}, false
	}
	return ixn, true
}

// OrthogonalRight returns the unit vector orthogonal to and right of direction d.
func (ctx *Context) OrthogonalRight(d Vector) Vector {
	return ctx.Normalize(Vector{d.V, -d.H})
}

// Bisector returns the unit bisector of the corner a-b-c, pointing right of both edges.
func (ctx *Context) Bisector(a, b, c Vector) Vector {
	abr := ctx.OrthogonalRight(b.Sub(a))
	bcr := ctx.OrthogonalRight(c.Sub(b))
	return ctx.Normalize(abr.Add(bcr))
}
