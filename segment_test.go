package mcg

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSegment(t *testing.T) {
	s := NewSegment(Vector{0, 0}, Vector{3, 4})
	test.That(t, s.Valid())
	test.T(t, s.LengthSq(), int64(25))
	test.Float(t, s.Length(), 5.0)
	test.T(t, s.Reverse(), NewSegment(Vector{3, 4}, Vector{0, 0}))
	test.That(t, !NewSegment(Vector{1, 1}, Vector{1, 1}).Valid())

	min, max := s.Reverse().Bounds()
	test.T(t, min, Vector{0, 0})
	test.T(t, max, Vector{3, 4})

	r := NewSegment(Vector{0, 0}, Vector{100, 0}).Rotate(math.Pi / 2.0)
	test.T(t, r, NewSegment(Vector{0, 0}, Vector{0, 100}))
}

func TestSegmentFromVector3Pair(t *testing.T) {
	ctx := DefaultContext()
	v1, v2 := r3.Vec{X: 0, Y: 0, Z: 0.5}, r3.Vec{X: 1, Y: 0, Z: 0.5}

	// face facing -Y has its interior towards +Y, ie. left of +X
	normal := r3.Vec{Y: -1}
	test.T(t, SegmentFromVector3Pair(ctx, v1, v2, normal), NewSegment(Vector{0, 0}, Vector{100000, 0}))
	test.T(t, SegmentFromVector3Pair(ctx, v2, v1, normal), NewSegment(Vector{0, 0}, Vector{100000, 0}))

	// facing +Y flips the direction
	test.T(t, SegmentFromVector3Pair(ctx, v1, v2, r3.Vec{Y: 1}), NewSegment(Vector{100000, 0}, Vector{0, 0}))

	// without a normal the input order is kept
	test.T(t, SegmentFromVector3Pair(ctx, v2, v1, r3.Vec{}), NewSegment(Vector{100000, 0}, Vector{0, 0}))

	// coincident after snapping
	test.That(t, !SegmentFromVector3Pair(ctx, v1, r3.Vec{X: 1e-7, Z: 0.5}, normal).Valid())
}
