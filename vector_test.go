package mcg

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestVectorRound(t *testing.T) {
	var tts = []struct {
		h, v float64
		r    Vector
	}{
		{0.0, 0.0, Vector{0, 0}},
		{1.5, -1.5, Vector{2, -1}},
		{0.49, -0.49, Vector{0, 0}},
		{-2.5, 2.5, Vector{-2, 3}},
		{100.7, -100.7, Vector{101, -101}},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.h, tt.v), func(t *testing.T) {
			test.T(t, NewVector(tt.h, tt.v), tt.r)
		})
	}
}

func TestVector(t *testing.T) {
	a, b := Vector{3, 4}, Vector{1, 2}
	test.T(t, a.Add(b), Vector{4, 6})
	test.T(t, a.Sub(b), Vector{2, 2})
	test.T(t, a.Neg(), Vector{-3, -4})
	test.T(t, a.Dot(b), int64(11))
	test.T(t, a.Cross(b), int64(2))
	test.T(t, a.LengthSq(), int64(25))
	test.Float(t, a.Length(), 5.0)
	test.T(t, a.DistanceToSq(b), int64(8))
	test.T(t, a.Mul(0.5), Vector{2, 2})
	test.T(t, a.Div(2.0), Vector{2, 2})
	test.T(t, a.Min(b), Vector{1, 2})
	test.T(t, a.Max(b), Vector{3, 4})
	test.T(t, a.String(), "(3, 4)")
	test.That(t, Vector{}.IsZero())
	test.That(t, a.Equals(Vector{3, 4}))
}

func TestVectorSetLength(t *testing.T) {
	test.T(t, Vector{3, 4}.SetLength(10.0), Vector{6, 8})
	test.T(t, Vector{}.SetLength(10.0), Vector{})
	test.T(t, DefaultContext().Normalize(Vector{0, 5}), Vector{0, 100000})
	test.T(t, DefaultContext().Normalize(Vector{}), Vector{})
}

func TestVectorRotate(t *testing.T) {
	var tts = []struct {
		v     Vector
		angle float64
		r     Vector
	}{
		{Vector{100000, 0}, 0.0, Vector{100000, 0}},
		{Vector{100000, 0}, math.Pi / 2.0, Vector{0, 100000}},
		{Vector{100000, 0}, math.Pi, Vector{-100000, 0}},
		{Vector{100000, 0}, -math.Pi / 2.0, Vector{0, -100000}},
		{Vector{100000, 0}, math.Pi / 4.0, Vector{70711, 70711}},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.v, tt.angle), func(t *testing.T) {
			test.T(t, tt.v.Rotate(tt.angle), tt.r)
		})
	}
}

func TestVectorAngleTo(t *testing.T) {
	test.Float(t, Vector{1, 0}.AngleTo(Vector{0, 1}), math.Pi/2.0)
	test.Float(t, Vector{1, 0}.AngleTo(Vector{0, -1}), math.Pi/2.0)
	test.Float(t, Vector{1, 0}.AngleTo(Vector{-1, 0}), math.Pi)
	test.Float(t, Vector{1, 0}.AngleTo(Vector{}), 0.0)
}

func TestVectorCompare(t *testing.T) {
	var tts = []struct {
		a, b Vector
		h, v int
		hv   int
	}{
		{Vector{0, 0}, Vector{0, 0}, 0, 0, 0},
		{Vector{0, 1}, Vector{0, 0}, 0, 1, 1},
		{Vector{0, 5}, Vector{1, 0}, -1, 1, -1},
		{Vector{2, -5}, Vector{1, 0}, 1, -1, 1},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.a, tt.b), func(t *testing.T) {
			test.T(t, tt.a.HCompare(tt.b), tt.h)
			test.T(t, tt.a.VCompare(tt.b), tt.v)
			test.T(t, tt.a.HVCompare(tt.b), tt.hv)
		})
	}
}

func TestContext(t *testing.T) {
	ctx := NewContext(AxisX, 2.0, 3)
	test.T(t, ctx.AH, AxisY)
	test.T(t, ctx.AV, AxisZ)
	test.Float(t, ctx.P, 1000.0)
	test.T(t, ctx.Ftoi(1.2346), int64(1235))
	test.Float(t, ctx.Itof(1235), 1.235)
	test.T(t, ctx.Vector(1.0, -2.0), Vector{1000, -2000})

	v := ctx.ToVector3(Vector{1000, -2000})
	test.Float(t, v.X, 2.0)
	test.Float(t, v.Y, 1.0)
	test.Float(t, v.Z, -2.0)
	test.T(t, ctx.FromVector3(v), Vector{1000, -2000})
	test.T(t, ctx.Float(Vector{1000, -2000}), r2.Vec{X: 1.0, Y: -2.0})
	test.Float(t, ctx.WithD(5.0).D, 5.0)
	test.Float(t, ctx.D, 2.0)

	axis, err := ParseAxis("y")
	test.Error(t, err)
	test.T(t, axis, AxisY)
	_, err = ParseAxis("w")
	test.That(t, err != nil)
}
