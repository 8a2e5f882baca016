package mcg

import (
	"fmt"
	"log"
	"math"
)

// InfillType is the pattern used to fill a contour.
type InfillType int

// see InfillType
const (
	InfillNone InfillType = iota
	InfillLinear
	InfillGrid
	InfillTriangle
	InfillHex
)

func (t InfillType) String() string {
	switch t {
	case InfillNone:
		return "none"
	case InfillLinear:
		return "linear"
	case InfillGrid:
		return "grid"
	case InfillTriangle:
		return "triangle"
	case InfillHex:
		return "hex"
	}
	return fmt.Sprintf("InfillType(%d)", int(t))
}

// ParseInfillType parses the name of an infill type as returned by String.
func ParseInfillType(s string) (InfillType, error) {
	for t := InfillNone; t <= InfillHex; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return InfillNone, fmt.Errorf("bad infill type %q", s)
}

// InfillParams are the options of Infill. Spacing and LineWidth are in fixed-point space, a zero
// spacing means one unit.
type InfillParams struct {
	Angle        float64 // clockwise from vertical lines
	Spacing      int64
	Parity       int // odd parity rotates linear infill by a quarter turn and flips the hex layout
	ConnectLines bool
	LineWidth    int64 // hex walls only
	Logger       *log.Logger
}

// Infill returns the segments filling the interior of contour with the given pattern. It returns
// nil for InfillNone.
func Infill(contour *PolygonSet, typ InfillType, params InfillParams) *SegmentSet {
	switch typ {
	case InfillLinear:
		angle := params.Angle
		if params.Parity%2 != 0 {
			angle += math.Pi / 2.0
		}
		return linearInfill(contour, angle, params, false)
	case InfillGrid:
		infill := linearInfill(contour, params.Angle, params, true)
		infill.Merge(linearInfill(contour, params.Angle+math.Pi/2.0, params, true))
		return infill
	case InfillTriangle:
		infill := linearInfill(contour, params.Angle, params, true)
		infill.Merge(linearInfill(contour, params.Angle+math.Pi/3.0, params, true))
		infill.Merge(linearInfill(contour, params.Angle+2.0*math.Pi/3.0, params, true))
		return infill
	case InfillHex:
		min, max := contour.Bounds()
		pattern := HexPattern(contour.Context(), min, max, params.Spacing, params.LineWidth, params.Parity)
		return IntersectionOpen(contour, pattern, &Params{Logger: params.Logger})
	}
	return nil
}

// linearInfill sweeps the contour rotated such that the lines at angle become vertical, and rotates
// the lines back.
func linearInfill(contour *PolygonSet, angle float64, params InfillParams, skipIntersections bool) *SegmentSet {
	ctx := contour.Context()
	rotated := contour.Clone()
	rotated.Rotate(angle)

	if rotated.Count() == 0 {
		return NewSegmentSet(ctx)
	}

	min, _ := rotated.Bounds()
	op := newLinearInfillOp(ctx, min, params.Spacing, params.ConnectLines)
	newSweeper(ctx, op, &Params{
		SkipIntersections: skipIntersections,
		Logger:            params.Logger,
	}).sweep(rotated, nil)
	op.infill.Rotate(-angle)
	return op.infill
}
