// Package slicer cuts triangle meshes into layers of polygons, walls and infill.
package slicer

import (
	"context"
	"log"
	"math"
	"runtime"
	"time"

	"github.com/meshy/mcg"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a mesh face. Normal points outward; if zero it is derived from the counter clockwise
// winding of A, B and C.
type Triangle struct {
	A, B, C, Normal r3.Vec
}

func (t Triangle) normal() r3.Vec {
	if t.Normal != (r3.Vec{}) {
		return t.Normal
	}
	return r3.Cross(r3.Sub(t.B, t.A), r3.Sub(t.C, t.A))
}

// planeIntersection returns the point of a-b at level along axis.
func planeIntersection(axis mcg.Axis, level float64, a, b r3.Vec) r3.Vec {
	ca, cb := axis.Component(a), axis.Component(b)
	if ca == cb {
		return a
	}
	t := (level - ca) / (cb - ca)
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// SliceTriangles returns the segments where the triangles cross the plane of ctx, oriented such
// that the inside of the mesh is on their left. Vertices lying on the plane count as above it, so
// that faces sharing an edge in the plane yield it once.
func SliceTriangles(ctx *mcg.Context, tris []Triangle) *mcg.SegmentSet {
	axis, level := ctx.Axis, ctx.D
	ss := mcg.NewSegmentSet(ctx)
	for _, tri := range tris {
		a, b, c := tri.A, tri.B, tri.C
		if axis.Component(b) < axis.Component(a) {
			a, b = b, a
		}
		if axis.Component(c) < axis.Component(b) {
			b, c = c, b
		}
		if axis.Component(b) < axis.Component(a) {
			a, b = b, a
		}
		if level < axis.Component(a) || axis.Component(c) <= level {
			continue
		}

		var p, q r3.Vec
		if level < axis.Component(b) {
			p = planeIntersection(axis, level, a, b)
			q = planeIntersection(axis, level, a, c)
		} else {
			p = planeIntersection(axis, level, a, c)
			q = planeIntersection(axis, level, b, c)
		}
		ss.Add(mcg.SegmentFromVector3Pair(ctx, p, q, tri.normal()))
	}
	return ss
}

// Config are the slicing parameters. Lengths are in model units.
type Config struct {
	Axis        mcg.Axis
	Precision   int
	LayerHeight float64
	LineWidth   float64
	NumWalls    int

	// NumTopLayers is the number of solid layers at the top and bottom, and the number of layers
	// above and below that must cover a region for it to get inner infill. Zero fills every layer
	// with inner infill only.
	NumTopLayers int
	// OptimizeTopLayers only considers the adjacent and the farthest layers when NumTopLayers > 2.
	OptimizeTopLayers bool

	InfillType         mcg.InfillType
	InfillDensity      float64 // inner infill spacing is LineWidth/InfillDensity, zero disables it
	InfillOverlap      float64 // fraction of LineWidth by which the infill overlaps the innermost wall
	InfillConnectLines bool

	Workers int           // zero means GOMAXPROCS
	Timeout time.Duration // zero means none
	Logger  *log.Logger
}

// DefaultConfig slices along Z into layers of 0.1 with two walls of 0.1, three solid top and
// bottom layers and sparse linear infill.
var DefaultConfig = Config{
	Axis:              mcg.AxisZ,
	Precision:         mcg.DefaultPrecision,
	LayerHeight:       0.1,
	LineWidth:         0.1,
	NumWalls:          2,
	NumTopLayers:      3,
	OptimizeTopLayers: true,
	InfillType:        mcg.InfillLinear,
	InfillDensity:     0.1,
	InfillOverlap:     0.5,
}

// Layer is one slice of a mesh.
type Layer struct {
	Index   int
	D       float64 // position along the slicing axis
	Context *mcg.Context

	Source        *mcg.SegmentSet // raw intersection with the mesh
	Base          *mcg.PolygonSet // decimated union of the source
	Walls         []*mcg.PolygonSet
	InfillContour *mcg.PolygonSet

	// InfillContour split into the region covered by the neighboring layers and the region exposed
	// above or below, which is filled solid.
	InnerContour *mcg.PolygonSet
	SolidContour *mcg.PolygonSet

	Infill      *mcg.SegmentSet // inner infill
	SolidInfill *mcg.SegmentSet
}

// Slice cuts the mesh into layers at LayerHeight intervals, centered in each interval along the
// axis, and computes the walls and infill of every layer. Layers are processed concurrently in two
// passes: the contours first, then the infill, which depends on the contours of the neighboring
// layers. The first error or the timeout cancels the remaining layers.
func Slice(ctx context.Context, tris []Triangle, cfg Config) ([]*Layer, error) {
	if len(tris) == 0 {
		return nil, errors.New("no triangles")
	} else if cfg.LayerHeight <= 0.0 {
		return nil, errors.Errorf("bad layer height %v", cfg.LayerHeight)
	} else if cfg.LineWidth <= 0.0 {
		return nil, errors.Errorf("bad line width %v", cfg.LineWidth)
	} else if cfg.NumWalls < 0 {
		return nil, errors.Errorf("bad number of walls %v", cfg.NumWalls)
	} else if cfg.NumTopLayers < 0 {
		return nil, errors.Errorf("bad number of top layers %v", cfg.NumTopLayers)
	} else if cfg.InfillDensity < 0.0 {
		return nil, errors.Errorf("bad infill density %v", cfg.InfillDensity)
	} else if cfg.InfillOverlap < 0.0 || 1.0 < cfg.InfillOverlap {
		return nil, errors.Errorf("bad infill overlap %v", cfg.InfillOverlap)
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, tri := range tris {
		for _, v := range [3]r3.Vec{tri.A, tri.B, tri.C} {
			min = math.Min(min, cfg.Axis.Component(v))
			max = math.Max(max, cfg.Axis.Component(v))
		}
	}
	n := int(math.Floor((max - min) / cfg.LayerHeight))
	if n == 0 {
		return nil, nil
	}

	if 0 < cfg.Timeout {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	layers := make([]*Layer, n)
	err := forEachLayer(ctx, n, workers, func(i int) {
		d := min + (float64(i)+0.5)*cfg.LayerHeight
		layers[i] = sliceLayer(mcg.NewContext(cfg.Axis, d, cfg.Precision), i, tris, &cfg)
	})
	if err != nil {
		return nil, errors.Wrap(err, "slice")
	}
	err = forEachLayer(ctx, n, workers, func(i int) {
		fillLayer(layers, i, &cfg)
	})
	if err != nil {
		return nil, errors.Wrap(err, "infill")
	}
	return layers, nil
}

// forEachLayer calls f for every layer index on at most workers goroutines.
func forEachLayer(ctx context.Context, n, workers int, f func(int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f(i)
			return nil
		})
	}
	return g.Wait()
}

// sliceLayer computes the source, base, walls and infill contour of a layer.
func sliceLayer(ctx *mcg.Context, idx int, tris []Triangle, cfg *Config) *Layer {
	params := &mcg.Params{Logger: cfg.Logger}
	lineWidth := cfg.LineWidth
	l := &Layer{
		Index:   idx,
		D:       ctx.D,
		Context: ctx,
	}

	l.Source = SliceTriangles(ctx, tris)
	l.Base = mcg.Union(l.Source.ToPolygonSet().FDecimate(lineWidth), nil, params).ToPolygonSet()

	// the first wall is inset by half the line width, the others by a full width each
	contour := l.Base
	for w := 0; w < cfg.NumWalls; w++ {
		dist := -lineWidth
		if w == 0 {
			dist = -0.5 * lineWidth
		}
		contour = mcg.Union(contour.FOffset(dist, lineWidth), nil, params).ToPolygonSet()
		l.Walls = append(l.Walls, contour)
	}

	overlap := 1.0 - cfg.InfillOverlap
	dist := lineWidth * overlap
	if cfg.NumWalls == 0 {
		dist = lineWidth * (overlap - 0.5)
	}
	l.InfillContour = mcg.Union(contour.FOffset(-dist, lineWidth), nil, params).ToPolygonSet()
	return l
}

// splitInfillContour splits the infill contour of layer idx into the part that is covered by
// the neighboring layers and the part that needs solid infill.
func splitInfillContour(layers []*Layer, idx int, cfg *Config) (*mcg.PolygonSet, *mcg.PolygonSet) {
	l := layers[idx]
	k := cfg.NumTopLayers
	if k == 0 {
		return l.InfillContour, mcg.NewPolygonSet(l.Context)
	} else if idx < k || len(layers)-1-k < idx {
		return mcg.NewPolygonSet(l.Context), l.InfillContour
	}

	neighbors := mcg.NewPolygonSet(l.Context)
	offsets := []int{}
	if cfg.OptimizeTopLayers && 2 < k {
		offsets = append(offsets, 1, k)
	} else {
		for i := 1; i <= k; i++ {
			offsets = append(offsets, i)
		}
	}
	for _, o := range offsets {
		neighbors.Merge(layers[idx+o].InfillContour)
		neighbors.Merge(layers[idx-o].InfillContour)
	}

	res := mcg.FullDifference(l.InfillContour, neighbors, &mcg.Params{
		MinDepthB: 2 * len(offsets),
		Logger:    cfg.Logger,
	})
	notSliver := func(p *mcg.Polygon) bool { return !p.IsSliver(0.0) }
	inner := res.Intersection.ToPolygonSet()
	inner.Filter(notSliver)
	solid := res.AminusB.ToPolygonSet()
	solid.Filter(notSliver)
	return inner, solid
}

// fillLayer computes the inner and solid infill of layer idx. It reads the infill contours of the
// neighboring layers, which must not change meanwhile.
func fillLayer(layers []*Layer, idx int, cfg *Config) {
	l := layers[idx]
	ctx := l.Context
	lineWidth := ctx.Ftoi(cfg.LineWidth)
	params := mcg.InfillParams{
		Angle:        math.Pi / 4.0,
		Spacing:      lineWidth,
		Parity:       idx % 2,
		ConnectLines: cfg.InfillConnectLines,
		LineWidth:    lineWidth,
		Logger:       cfg.Logger,
	}

	typ := cfg.InfillType
	if cfg.InfillDensity == 0.0 {
		typ = mcg.InfillNone
	}
	if typ == mcg.InfillGrid && 1.0 <= cfg.InfillDensity {
		// too dense for a grid, fill everything solid
		l.InnerContour, l.SolidContour = mcg.NewPolygonSet(ctx), l.InfillContour
	} else {
		l.InnerContour, l.SolidContour = splitInfillContour(layers, idx, cfg)
	}

	l.Infill = mcg.NewSegmentSet(ctx)
	if typ != mcg.InfillNone && 0 < l.InnerContour.Count() {
		inner := params
		inner.Spacing = ctx.Ftoi(cfg.LineWidth / cfg.InfillDensity)
		if infill := mcg.Infill(l.InnerContour, typ, inner); infill != nil {
			l.Infill = infill
		}
	}
	l.SolidInfill = mcg.Infill(l.SolidContour, mcg.InfillLinear, params)

	// drop stubs shorter than half the line width
	minLengthSq := lineWidth * lineWidth / 4
	keep := func(s mcg.Segment) bool {
		return minLengthSq <= s.LengthSq()
	}
	l.Infill.Filter(keep)
	l.SolidInfill.Filter(keep)
}
