package mcg

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Segment is a directed edge from P1 to P2. Segments of a polygon boundary have the interior on
// their left.
type Segment struct {
	P1, P2 Vector
}

// NewSegment returns the segment p1->p2.
func NewSegment(p1, p2 Vector) Segment {
	return Segment{p1, p2}
}

// SegmentFromVector3Pair projects the mesh edge v1-v2 onto the plane of ctx. If normal is
// non-zero it is the normal of the face the edge belongs to, and the end points are ordered so
// that the face lies left of P1->P2. The segment is invalid if the points coincide after snapping.
func SegmentFromVector3Pair(ctx *Context, v1, v2, normal r3.Vec) Segment {
	p1 := ctx.FromVector3(v1)
	p2 := ctx.FromVector3(v2)
	if p1 == p2 {
		return Segment{p1, p1}
	} else if normal == (r3.Vec{}) {
		return Segment{p1, p2}
	}

	// winding direction of the face's intersection with the plane
	cross := r3.Cross(ctx.Up, normal)
	if 0.0 < r3.Dot(cross, r3.Sub(v2, v1)) {
		return Segment{p1, p2}
	}
	return Segment{p2, p1}
}

// Valid is true if the end points differ.
func (s Segment) Valid() bool {
	return s.P1 != s.P2
}

func (s Segment) Bounds() (Vector, Vector) {
	return s.P1.Min(s.P2), s.P1.Max(s.P2)
}

func (s Segment) ForEachPointPair(f func(Vector, Vector)) {
	f(s.P1, s.P2)
}

func (s Segment) Clone() Segment {
	return s
}

// Rotate rotates both end points counter clockwise around the origin.
func (s Segment) Rotate(angle float64) Segment {
	return Segment{s.P1.Rotate(angle), s.P2.Rotate(angle)}
}

// Reverse returns P2->P1.
func (s Segment) Reverse() Segment {
	return Segment{s.P2, s.P1}
}

func (s Segment) LengthSq() int64 {
	return s.P1.DistanceToSq(s.P2)
}

func (s Segment) Length() float64 {
	return s.P1.DistanceTo(s.P2)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.P1, s.P2)
}
