package mcg

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ErrUnsupportedGeometry is returned when an orb geometry has no equivalent in the plane.
var ErrUnsupportedGeometry = errors.New("unsupported geometry")

func (ctx *Context) orbPoint(v Vector) orb.Point {
	return orb.Point{ctx.Itof(v.H), ctx.Itof(v.V)}
}

func (ctx *Context) orbRing(p *Polygon) orb.Ring {
	ring := make(orb.Ring, 0, len(p.points)+1)
	for _, pt := range p.points {
		ring = append(ring, ctx.orbPoint(pt))
	}
	if 0 < len(ring) {
		ring = append(ring, ring[0])
	}
	return ring
}

// ToOrbPolygons converts the set into orb polygons in float space. Counter clockwise polygons are
// solids, clockwise polygons are holes that are put into the smallest solid containing them. Holes
// outside any solid are dropped.
func ToOrbPolygons(ps *PolygonSet) orb.MultiPolygon {
	ctx := ps.Context()
	var solids orb.MultiPolygon
	var holes []orb.Ring
	for _, p := range ps.elements {
		if !p.closed {
			continue
		}
		ring := ctx.orbRing(p)
		if 0.0 < p.Area() {
			solids = append(solids, orb.Polygon{ring})
		} else {
			holes = append(holes, ring)
		}
	}

	for _, hole := range holes {
		best, bestArea := -1, 0.0
		for i, solid := range solids {
			if !planar.RingContains(solid[0], hole[0]) {
				continue
			}
			if area := math.Abs(planar.Area(solid[0])); best == -1 || area < bestArea {
				best, bestArea = i, area
			}
		}
		if best != -1 {
			solids[best] = append(solids[best], hole)
		}
	}
	return solids
}

// ToOrbLines converts every segment into a two-point line string in float space.
func ToOrbLines(ss *SegmentSet) orb.MultiLineString {
	ctx := ss.Context()
	lines := make(orb.MultiLineString, 0, len(ss.elements))
	for _, seg := range ss.elements {
		lines = append(lines, orb.LineString{ctx.orbPoint(seg.P1), ctx.orbPoint(seg.P2)})
	}
	return lines
}

func (ctx *Context) ringPoints(ring orb.Ring) []Vector {
	points := make([]Vector, 0, len(ring))
	for _, pt := range ring {
		points = append(points, ctx.Vector(pt[0], pt[1]))
	}
	if 1 < len(points) && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	return points
}

// PolygonSetFromOrb converts polygons, multi polygons, rings and collections thereof into a
// polygon set. Outer rings become counter clockwise solids and inner rings clockwise holes,
// regardless of their original orientation.
func PolygonSetFromOrb(ctx *Context, g orb.Geometry) (*PolygonSet, error) {
	ps := NewPolygonSet(ctx)
	if err := ps.addOrb(g); err != nil {
		return nil, err
	}
	return ps, nil
}

func (ps *PolygonSet) addOrbRing(ring orb.Ring, orient orb.Orientation) {
	p := NewPolygon(ps.ctx, ps.ctx.ringPoints(ring))
	if (orient == orb.CCW) != (0.0 < p.Area()) {
		p = p.Reverse()
	}
	ps.Add(p)
}

func (ps *PolygonSet) addOrb(g orb.Geometry) error {
	switch g := g.(type) {
	case orb.Ring:
		ps.addOrbRing(g, orb.CCW)
	case orb.Polygon:
		for i, ring := range g {
			if i == 0 {
				ps.addOrbRing(ring, orb.CCW)
			} else {
				ps.addOrbRing(ring, orb.CW)
			}
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			if err := ps.addOrb(poly); err != nil {
				return err
			}
		}
	case orb.Collection:
		for _, h := range g {
			if err := ps.addOrb(h); err != nil {
				return err
			}
		}
	case nil:
		return fmt.Errorf("%w: nil geometry", ErrUnsupportedGeometry)
	default:
		return fmt.Errorf("%w: %s as polygons", ErrUnsupportedGeometry, g.GeoJSONType())
	}
	return nil
}

// SegmentSetFromOrb converts the edges of line strings, rings, polygons and collections thereof into
// a segment set. Polygon edges keep their direction.
func SegmentSetFromOrb(ctx *Context, g orb.Geometry) (*SegmentSet, error) {
	ss := NewSegmentSet(ctx)
	if err := ss.addOrb(g); err != nil {
		return nil, err
	}
	return ss, nil
}

func (ss *SegmentSet) addOrbPoints(points []orb.Point) {
	for i := 1; i < len(points); i++ {
		p1 := ss.ctx.Vector(points[i-1][0], points[i-1][1])
		p2 := ss.ctx.Vector(points[i][0], points[i][1])
		ss.AddPointPair(p1, p2)
	}
}

func (ss *SegmentSet) addOrb(g orb.Geometry) error {
	switch g := g.(type) {
	case orb.LineString:
		ss.addOrbPoints(g)
	case orb.MultiLineString:
		for _, ls := range g {
			ss.addOrbPoints(ls)
		}
	case orb.Ring:
		ss.addOrbPoints(g)
	case orb.Polygon:
		for _, ring := range g {
			ss.addOrbPoints(ring)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				ss.addOrbPoints(ring)
			}
		}
	case orb.Collection:
		for _, h := range g {
			if err := ss.addOrb(h); err != nil {
				return err
			}
		}
	case nil:
		return fmt.Errorf("%w: nil geometry", ErrUnsupportedGeometry)
	default:
		return fmt.Errorf("%w: %s as segments", ErrUnsupportedGeometry, g.GeoJSONType())
	}
	return nil
}
