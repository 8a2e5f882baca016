package mcg

import (
	"fmt"
	"math"
)

// Vector is a point or direction in the fixed-point plane of a Context. Coordinates are integers;
// every operation that could produce a fraction rounds the result. Vectors are values: methods
// never modify the receiver.
type Vector struct {
	H, V int64
}

// NewVector rounds (h,v), which are already in fixed-point space.
func NewVector(h, v float64) Vector {
	return Vector{round(h), round(v)}
}

// IsZero is true for the zero vector.
func (a Vector) IsZero() bool {
	return a.H == 0 && a.V == 0
}

// Equals is true when both coordinates are equal.
func (a Vector) Equals(b Vector) bool {
	return a == b
}

func (a Vector) Add(b Vector) Vector {
	return Vector{a.H + b.H, a.V + b.V}
}

func (a Vector) Sub(b Vector) Vector {
	return Vector{a.H - b.H, a.V - b.V}
}

func (a Vector) Neg() Vector {
	return Vector{-a.H, -a.V}
}

// Mul multiplies by a scalar and rounds.
func (a Vector) Mul(f float64) Vector {
	return NewVector(float64(a.H)*f, float64(a.V)*f)
}

// Div divides by a scalar and rounds.
func (a Vector) Div(f float64) Vector {
	return a.Mul(1.0 / f)
}

// AddScaled returns a + b*f, rounded.
func (a Vector) AddScaled(b Vector, f float64) Vector {
	return NewVector(float64(a.H)+float64(b.H)*f, float64(a.V)+float64(b.V)*f)
}

func (a Vector) Dot(b Vector) int64 {
	return a.H*b.H + a.V*b.V
}

// Cross returns the component of the cross product normal to the plane.
func (a Vector) Cross(b Vector) int64 {
	return a.H*b.V - a.V*b.H
}

func (a Vector) LengthSq() int64 {
	return a.H*a.H + a.V*a.V
}

func (a Vector) Length() float64 {
	return math.Sqrt(float64(a.LengthSq()))
}

func (a Vector) DistanceToSq(b Vector) int64 {
	return a.Sub(b).LengthSq()
}

func (a Vector) DistanceTo(b Vector) float64 {
	return math.Sqrt(float64(a.DistanceToSq(b)))
}

// SetLength scales the vector to length l and rounds. The zero vector is returned unchanged.
func (a Vector) SetLength(l float64) Vector {
	tl := a.Length()
	if tl == 0.0 || tl == l {
		return a
	}
	return a.Mul(l / tl)
}

// AngleTo returns the unsigned angle in [0,PI] between a and b. It is zero if either is zero.
func (a Vector) AngleTo(b Vector) float64 {
	norm := math.Sqrt(float64(a.LengthSq()) * float64(b.LengthSq()))
	if norm == 0.0 {
		return 0.0
	}
	return acos(float64(a.Dot(b)) / norm)
}

// Rotate rotates counter clockwise by angle and rounds. Repeated rotations accumulate snapping
// error of up to half a unit per coordinate per rotation.
func (a Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	h, v := float64(a.H), float64(a.V)
	return NewVector(cos*h-sin*v, sin*h+cos*v)
}

func (a Vector) Min(b Vector) Vector {
	return Vector{min(a.H, b.H), min(a.V, b.V)}
}

func (a Vector) Max(b Vector) Vector {
	return Vector{max(a.H, b.H), max(a.V, b.V)}
}

// HCompare returns the sign of a.H-b.H.
func (a Vector) HCompare(b Vector) int {
	return sign(a.H - b.H)
}

// VCompare returns the sign of a.V-b.V.
func (a Vector) VCompare(b Vector) int {
	return sign(a.V - b.V)
}

// HVCompare orders by H and then by V.
func (a Vector) HVCompare(b Vector) int {
	if a.H == b.H {
		return sign(a.V - b.V)
	}
	return sign(a.H - b.H)
}

func (a Vector) String() string {
	return fmt.Sprintf("(%d, %d)", a.H, a.V)
}
